package chunk

import (
	"fmt"

	"github.com/arloliu/tskit/errs"
	"github.com/arloliu/tskit/fcm"
	"github.com/arloliu/tskit/model"
	"github.com/arloliu/tskit/rle"
	"github.com/arloliu/tskit/stream"
)

// PageWriter is the collaborator boundary EncodeChunk drives instead of
// touching a page directly: it supplies a writable window and commits
// however many bytes were actually used.
type PageWriter interface {
	// Allocate returns a writable window at least large enough for the
	// caller's chunk, or an error if none is available.
	Allocate() ([]byte, error)
	// Commit finalizes the write, informing the page how many of the
	// bytes returned by Allocate were actually written.
	Commit(n int) error
}

// writeSizePrefixed reserves a u32 length slot, runs fn to write the
// section body, and backfills the slot with the number of bytes fn
// wrote. Returns false without backfilling if either the slot or the
// body write overflowed.
func writeSizePrefixed(w *stream.Writer, fn func() bool) bool {
	slot, ok := w.ReserveUint32()
	if !ok {
		return false
	}

	start := w.Size()
	if !fn() {
		return false
	}

	w.FillUint32(slot, uint32(w.Size()-start)) //nolint:gosec

	return true
}

func minMaxTimestamp(ts []model.Timestamp) (model.Timestamp, model.Timestamp) {
	if len(ts) == 0 {
		return 0, 0
	}

	minTs, maxTs := ts[0], ts[0]
	for _, t := range ts[1:] {
		if t < minTs {
			minTs = t
		}
		if t > maxTs {
			maxTs = t
		}
	}

	return minTs, maxTs
}

// EncodeChunk encodes data as a size-prefixed multi-series chunk into a
// window supplied by w. Unlike EncodeBlock this is all-or-nothing: any
// overflow aborts the whole write without committing anything to w.
func EncodeChunk(w PageWriter, data model.UncompressedChunk) (n uint32, tsBegin, tsEnd model.Timestamp, err error) {
	if !data.Valid() {
		return 0, 0, 0, fmt.Errorf("%w: paramids/timestamps/values length mismatch", errs.ErrBadArg)
	}

	buf, err := w.Allocate()
	if err != nil {
		return 0, 0, 0, err
	}

	sw := stream.NewWriter(buf, defaultEngine())

	okParamIds := writeSizePrefixed(sw, func() bool {
		pw := rle.NewWriter(sw)

		return pw.PutSlice(data.ParamIds) && pw.Commit()
	})
	if !okParamIds {
		return 0, 0, 0, fmt.Errorf("%w: paramid stream", errs.ErrOverflow)
	}

	minTs, maxTs := minMaxTimestamp(data.Timestamps)

	okTimestamps := writeSizePrefixed(sw, func() bool {
		tw := rle.NewWriter(sw)

		return tw.PutSlice(data.Timestamps) && tw.Commit()
	})
	if !okTimestamps {
		return 0, 0, 0, fmt.Errorf("%w: timestamp stream", errs.ErrOverflow)
	}

	if !sw.PutUint32(1) { // ncolumns, reserved for future use
		return 0, 0, 0, fmt.Errorf("%w: ncolumns", errs.ErrOverflow)
	}

	okValues := writeSizePrefixed(sw, func() bool {
		vw := fcm.NewWriter(sw)

		return vw.PutSlice(data.Values) && vw.Commit()
	})
	if !okValues {
		return 0, 0, 0, fmt.Errorf("%w: doubles stream", errs.ErrOverflow)
	}

	written := sw.Commit()
	if err := w.Commit(len(written)); err != nil {
		return 0, 0, 0, err
	}

	return uint32(len(data.ParamIds)), minTs, maxTs, nil //nolint:gosec
}

// readSizePrefixedRLE consumes a u32 byte-length hint (kept only for
// validation/skip purposes, per the wire format) followed by n
// delta-RLE encoded values.
func readSizePrefixedRLE(r *stream.Reader, n int) ([]uint64, error) {
	if _, err := r.Uint32(); err != nil {
		return nil, err
	}

	rr := rle.NewReader(r)
	out := make([]uint64, n)

	for i := range n {
		v, err := rr.Next()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// DecodeChunk decodes a chunk previously produced by EncodeChunk. The
// caller supplies nelements out-of-band (the chunk body carries no
// element count of its own — only byte-length hints per section).
func DecodeChunk(buf []byte, nelements uint32) (model.UncompressedChunk, error) {
	r := stream.NewReader(buf, defaultEngine())
	n := int(nelements)

	paramIds, err := readSizePrefixedRLE(r, n)
	if err != nil {
		return model.UncompressedChunk{}, fmt.Errorf("%w: paramid stream: %v", errs.ErrBadData, err)
	}

	timestampsU64, err := readSizePrefixedRLE(r, n)
	if err != nil {
		return model.UncompressedChunk{}, fmt.Errorf("%w: timestamp stream: %v", errs.ErrBadData, err)
	}

	if _, err := r.Uint32(); err != nil { // ncolumns, unused
		return model.UncompressedChunk{}, fmt.Errorf("%w: ncolumns: %v", errs.ErrBadData, err)
	}

	if _, err := r.Uint32(); err != nil { // doubles stream byte-length hint, unused
		return model.UncompressedChunk{}, fmt.Errorf("%w: doubles stream size: %v", errs.ErrBadData, err)
	}

	vr := fcm.NewReader(r)
	values := make([]model.Value, n)
	for i := range n {
		v, err := vr.Next()
		if err != nil {
			return model.UncompressedChunk{}, fmt.Errorf("%w: doubles stream: %v", errs.ErrBadData, err)
		}
		values[i] = v
	}

	return model.UncompressedChunk{
		ParamIds:   paramIds,
		Timestamps: timestampsU64,
		Values:     values,
	}, nil
}
