package section

// CurrentVersion is the version tag every block and v2 column writer
// stamps into its header. Readers reject any other value outright —
// there is no cross-version upgrade path.
const CurrentVersion uint16 = 1

// BlockHeaderSize is the fixed prefix size of an encoded block: u16
// version + u32 count + u64 series id.
const BlockHeaderSize = 2 + 4 + 8

// ColumnHeaderSize is the fixed prefix size of a v2 column-ordered
// writer's header: u16 version + u8 value encoding tag + u16 main
// count + u16 tail count + u64 series id.
const ColumnHeaderSize = 2 + 1 + 2 + 2 + 8
