// Package chunk implements the block and chunk containers: the
// per-series block (version, count, series id, then interleaved
// delta-RLE timestamps and FCM values) and the multi-series,
// column-oriented chunk, plus the v2 column-ordered write buffer that
// buffers batches before committing them through the same codecs.
package chunk

import (
	"fmt"

	"github.com/arloliu/tskit/endian"
	"github.com/arloliu/tskit/errs"
	"github.com/arloliu/tskit/fcm"
	"github.com/arloliu/tskit/model"
	"github.com/arloliu/tskit/rle"
	"github.com/arloliu/tskit/section"
	"github.com/arloliu/tskit/stream"
)

// BatchSize is the number of samples encoded per batch call into the
// underlying delta-RLE and FCM writers.
const BatchSize = 16

func defaultEngine() endian.EndianEngine { return endian.GetLittleEndianEngine() }

// EncodeBlock encodes as many samples as fit from slice into buf,
// starting at slice.Offset, advancing slice.Offset by the number of
// samples actually written. Samples go out in full batches of
// BatchSize, each batch's timestamps ahead of its values; the remaining
// tail (fewer than BatchSize samples) is written only if all of it
// fits. It never returns an error for a partial
// write — the backfilled count in the header is how the caller learns
// how much fit; it only errors if the fixed header itself doesn't fit.
func EncodeBlock(slice *model.SeriesSlice, buf []byte) error {
	w := stream.NewWriter(buf, defaultEngine())

	countSlot, ok := section.WriteBlockHeader(w, slice.Id)
	if !ok {
		return fmt.Errorf("%w: block header does not fit in %d bytes", errs.ErrOverflow, len(buf))
	}

	tw := rle.NewWriter(w)
	vw := fcm.NewWriter(w)

	remaining := slice.Size - slice.Offset
	nbatches := remaining / BatchSize
	tailSize := remaining % BatchSize
	batchEnd := slice.Offset + nbatches*BatchSize

	count := 0
	fullBatchesDone := true

	for ix := slice.Offset; ix < batchEnd; ix += BatchSize {
		// Flushing the timestamp run here keeps the batch's timestamp bytes
		// ahead of its value bytes, the order DecodeBlock reads them in.
		if !tw.PutSlice(slice.Ts[ix:ix+BatchSize]) || !tw.Commit() || !vw.PutSlice(slice.Value[ix:ix+BatchSize]) {
			fullBatchesDone = false

			break
		}
		count += BatchSize
	}

	if fullBatchesDone && tailSize > 0 {
		tail := slice.Offset + count
		end := tail + tailSize
		if tw.PutSlice(slice.Ts[tail:end]) && tw.Commit() &&
			vw.PutSlice(slice.Value[tail:end]) && vw.Commit() {
			count += tailSize
		}
	}

	w.FillUint32(countSlot, uint32(count)) //nolint:gosec
	slice.Offset += count

	return nil
}

// NumberOfElementsInBlock returns the backfilled count field from an
// encoded block without decoding the rest of it.
func NumberOfElementsInBlock(buf []byte) (uint32, error) {
	r := stream.NewReader(buf, defaultEngine())

	return section.PeekBlockCount(r)
}

// DecodeBlock decodes an encoded block into dest, starting at
// dest.Offset. dest must have room (dest.Size - dest.Offset) for at
// least the block's backfilled count, or errs.ErrBadArg is returned.
func DecodeBlock(buf []byte, dest *model.SeriesSlice) error {
	r := stream.NewReader(buf, defaultEngine())

	header, err := section.ReadBlockHeader(r)
	if err != nil {
		return err
	}

	offset := dest.Offset
	if dest.Size < dest.Offset || (dest.Size-offset) < int(header.Count) {
		return fmt.Errorf("%w: destination has room for %d samples, need %d", errs.ErrBadArg, dest.Size-offset, header.Count)
	}

	dest.Id = header.SeriesId

	tr := rle.NewReader(r)
	vr := fcm.NewReader(r)

	nbatches := int(header.Count) / BatchSize
	tailSize := int(header.Count) % BatchSize
	batchEnd := offset + nbatches*BatchSize

	for ix := offset; ix < batchEnd; ix += BatchSize {
		for i := range BatchSize {
			ts, err := tr.Next()
			if err != nil {
				return fmt.Errorf("%w: %v", errs.ErrBadData, err)
			}
			dest.Ts[ix+i] = ts
		}
		for i := range BatchSize {
			v, err := vr.Next()
			if err != nil {
				return fmt.Errorf("%w: %v", errs.ErrBadData, err)
			}
			dest.Value[ix+i] = v
		}
	}

	for ix := range tailSize {
		ts, err := tr.Next()
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrBadData, err)
		}
		dest.Ts[batchEnd+ix] = ts
	}
	for ix := range tailSize {
		v, err := vr.Next()
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrBadData, err)
		}
		dest.Value[batchEnd+ix] = v
	}

	dest.Offset = batchEnd + tailSize

	return nil
}
