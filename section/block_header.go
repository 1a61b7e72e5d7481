package section

import (
	"github.com/arloliu/tskit/errs"
	"github.com/arloliu/tskit/format"
	"github.com/arloliu/tskit/stream"
)

// BlockHeader is the fixed 14-byte prefix of an encoded block: version
// tag, sample count (backfilled once encoding finishes), and series id.
// This layout is frozen at spec.md §6.1's exact byte offsets (0, 2, 6);
// unlike ColumnHeader below it carries no encoding tag, since spec.md's
// block layout has no room to add one without shifting the timestamp
// body's starting offset.
type BlockHeader struct {
	Version  uint16
	Count    uint32
	SeriesId uint64
}

// WriteBlockHeader writes the version and series id, and reserves the
// count field for a later backfill once the caller knows how many
// samples actually fit. Returns the reserved slot and false if the
// window overflowed.
func WriteBlockHeader(w *stream.Writer, seriesId uint64) (stream.Slot, bool) {
	if !w.PutUint16(CurrentVersion) {
		return stream.Slot{}, false
	}

	countSlot, ok := w.ReserveUint32()
	if !ok {
		return stream.Slot{}, false
	}

	if !w.PutUint64(seriesId) {
		return stream.Slot{}, false
	}

	return countSlot, true
}

// ReadBlockHeader reads and validates a block header, rejecting any
// version other than CurrentVersion with errs.ErrVersionMismatch.
func ReadBlockHeader(r *stream.Reader) (BlockHeader, error) {
	var h BlockHeader

	version, err := r.Uint16()
	if err != nil {
		return h, err
	}
	if version != CurrentVersion {
		return h, errs.ErrVersionMismatch
	}
	h.Version = version

	if h.Count, err = r.Uint32(); err != nil {
		return h, err
	}
	if h.SeriesId, err = r.Uint64(); err != nil {
		return h, err
	}

	return h, nil
}

// PeekBlockCount reads just the count field (the u32 immediately after
// version) without validating the version tag, matching
// number_of_elements_in_block's narrower contract.
func PeekBlockCount(r *stream.Reader) (uint32, error) {
	if _, err := r.Uint16(); err != nil {
		return 0, err
	}

	return r.Uint32()
}

// ColumnHeader is the fixed prefix of a v2 column-ordered write buffer:
// version, the codec that encoded the compressed main portion's value
// stream, main (compressed) element count, raw tail element count, and
// series id. The raw tail is always format.TypeRaw by construction and
// needs no tag of its own; Encoding describes only the main portion's
// value stream.
type ColumnHeader struct {
	Version  uint16
	Encoding format.EncodingType
	MainSize uint16
	TailSize uint16
	SeriesId uint64
}

// WriteColumnHeader writes the version, value encoding tag, and series
// id, and reserves the main/tail count fields for backfill on Close.
func WriteColumnHeader(w *stream.Writer, seriesId uint64) (mainSlot, tailSlot stream.Slot, ok bool) {
	if !w.PutUint16(CurrentVersion) {
		return stream.Slot{}, stream.Slot{}, false
	}

	if !w.PutUint8(uint8(format.TypeFCM)) {
		return stream.Slot{}, stream.Slot{}, false
	}

	mainSlot, ok = w.ReserveUint16()
	if !ok {
		return stream.Slot{}, stream.Slot{}, false
	}

	tailSlot, ok = w.ReserveUint16()
	if !ok {
		return stream.Slot{}, stream.Slot{}, false
	}

	if !w.PutUint64(seriesId) {
		return stream.Slot{}, stream.Slot{}, false
	}

	return mainSlot, tailSlot, true
}

// ReadColumnHeader reads and validates a column header.
func ReadColumnHeader(r *stream.Reader) (ColumnHeader, error) {
	var h ColumnHeader

	version, err := r.Uint16()
	if err != nil {
		return h, err
	}
	if version != CurrentVersion {
		return h, errs.ErrVersionMismatch
	}
	h.Version = version

	encoding, err := r.Uint8()
	if err != nil {
		return h, err
	}
	h.Encoding = format.EncodingType(encoding)

	if h.MainSize, err = r.Uint16(); err != nil {
		return h, err
	}
	if h.TailSize, err = r.Uint16(); err != nil {
		return h, err
	}
	if h.SeriesId, err = r.Uint64(); err != nil {
		return h, err
	}

	return h, nil
}
