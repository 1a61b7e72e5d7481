package chunk

import (
	"fmt"

	"github.com/arloliu/tskit/errs"
	"github.com/arloliu/tskit/fcm"
	"github.com/arloliu/tskit/model"
	"github.com/arloliu/tskit/rle"
	"github.com/arloliu/tskit/section"
	"github.com/arloliu/tskit/stream"
)

// ChunkSize is the size of ColumnWriter's ring buffers: samples are
// batched through the delta-RLE/FCM codecs ChunkSize at a time.
const ChunkSize = 16

const chunkMask = ChunkSize - 1

// marginBytes is a conservative bound on the worst-case byte cost of
// flushing one full batch of each column. The timestamp side is
// bounded by rle's worst case: every sample's delta differs from the
// one before it, so the run never grows and every Put flushes its own
// run — a 10-byte zigzag varint delta plus a 1-byte run-length varint,
// 11 bytes/sample. The value side is bounded by fcm's worst case: a
// flag byte amortized over a pair plus up to 8 payload bytes/sample,
// 9 bytes/sample. A successful RoomForChunk check guarantees the next
// flush cannot overflow the window.
const marginBytes = 11*ChunkSize + 9*ChunkSize

// ColumnWriter buffers incoming (timestamp, value) pairs column-wise
// and flushes them through the delta-RLE/FCM codecs in full batches of
// ChunkSize. Once the remaining window is too small to safely flush
// another batch, it commits whatever main batches it has, flushes any
// partially filled batch as raw samples, and writes every sample after
// that point raw (uncompressed) instead.
type ColumnWriter struct {
	stream *stream.Writer
	tw     *rle.Writer
	vw     *fcm.Writer

	mainSlot stream.Slot
	tailSlot stream.Slot

	tsBuf  [ChunkSize]model.Timestamp
	valBuf [ChunkSize]model.Value

	writeIndex int
	mainSize   uint16
	tailSize   uint16
	rawMode    bool
	closed     bool
}

// NewColumnWriter creates a ColumnWriter over buf, writing its header
// immediately. Returns an error if buf is too small for the header.
func NewColumnWriter(seriesId model.ParamId, buf []byte) (*ColumnWriter, error) {
	sw := stream.NewWriter(buf, defaultEngine())

	mainSlot, tailSlot, ok := section.WriteColumnHeader(sw, seriesId)
	if !ok {
		return nil, fmt.Errorf("%w: column header does not fit in %d bytes", errs.ErrOverflow, len(buf))
	}

	return &ColumnWriter{
		stream:   sw,
		tw:       rle.NewWriter(sw),
		vw:       fcm.NewWriter(sw),
		mainSlot: mainSlot,
		tailSlot: tailSlot,
	}, nil
}

// RoomForChunk reports whether the remaining window is large enough
// that flushing one more full batch through the codecs is guaranteed
// not to overflow it.
func (w *ColumnWriter) RoomForChunk() bool {
	return w.stream.Remaining() >= marginBytes
}

// Put appends one sample. While there's room for a compressed batch,
// samples are buffered and flushed ChunkSize at a time; once room runs
// out, the writer switches to raw mode for the rest of the stream.
func (w *ColumnWriter) Put(ts model.Timestamp, value model.Value) error {
	if !w.rawMode && w.RoomForChunk() {
		idx := w.writeIndex & chunkMask
		w.tsBuf[idx] = ts
		w.valBuf[idx] = value
		w.writeIndex++

		if w.writeIndex&chunkMask == 0 {
			// The timestamp run is flushed before the values so the batch's
			// timestamp bytes precede its value bytes, as DecodeColumn reads them.
			if !w.tw.PutSlice(w.tsBuf[:]) || !w.tw.Commit() || !w.vw.PutSlice(w.valBuf[:]) {
				// RoomForChunk's margin guarantees this doesn't happen.
				return fmt.Errorf("%w: batch flush exceeded room_for_chunk margin", errs.ErrOverflow)
			}
			w.mainSize += ChunkSize
		}

		return nil
	}

	if !w.rawMode {
		if err := w.enterRawMode(); err != nil {
			return err
		}
	}

	if !w.stream.PutUint64(ts) || !w.stream.PutFloat64(value) {
		return fmt.Errorf("%w: raw tail sample", errs.ErrOverflow)
	}
	w.tailSize++

	return nil
}

// enterRawMode commits the main compressed streams (finalizing their
// trailing buffered state) and carries forward any samples that were
// buffered in the ring but never reached a full batch, writing them raw
// so no submitted sample is lost.
func (w *ColumnWriter) enterRawMode() error {
	w.rawMode = true

	if !w.tw.Commit() || !w.vw.Commit() {
		return fmt.Errorf("%w: committing main streams", errs.ErrOverflow)
	}

	pending := w.writeIndex & chunkMask
	for i := range pending {
		if !w.stream.PutUint64(w.tsBuf[i]) || !w.stream.PutFloat64(w.valBuf[i]) {
			return fmt.Errorf("%w: flushing pending ring buffer as raw tail", errs.ErrOverflow)
		}
		w.tailSize++
	}

	return nil
}

// Close finalizes the writer: if it never ran out of room, this commits
// the main streams and flushes any partial trailing batch as raw, just
// as enterRawMode would; then it backfills the header's main/tail
// counts, replacing the empty no-op this step used to be.
func (w *ColumnWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if !w.rawMode {
		if err := w.enterRawMode(); err != nil {
			return err
		}
	}

	w.stream.FillUint16(w.mainSlot, w.mainSize)
	w.stream.FillUint16(w.tailSlot, w.tailSize)

	return nil
}

// Bytes returns the bytes written so far. Valid after Close.
func (w *ColumnWriter) Bytes() []byte {
	return w.stream.Commit()
}
