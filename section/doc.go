// Package section defines the fixed-size wire header layouts shared by
// the block container and the v2 column writer: the version tag every
// header carries, and the BlockHeader / ColumnHeader prefixes themselves.
// The multi-series chunk has no header of its own here.
//
// # Block header (14 bytes)
//
//	offset  size  field
//	  0     u16   version
//	  2     u32   count      (backfilled once encoding finishes)
//	  6     u64   series id
//
// # Column header (v2 column-ordered writer, 15 bytes)
//
//	offset  size  field
//	  0     u16   version
//	  2     u8    value encoding (format.TypeFCM)
//	  3     u16   main size  (backfilled on Close)
//	  5     u16   tail size  (backfilled on Close)
//	  7     u64   series id
//
// Both headers are written and read through a stream.Writer/Reader
// rather than raw byte-slice indexing, so endianness and bounds
// checking stay centralized in package stream.
package section
