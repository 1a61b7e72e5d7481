// Package rle implements the delta-RLE integer codec used to compress
// the monotone-ish unsigned sequences (timestamps, series ids) that
// feed the chunk and block containers. It satisfies a minimal
// collaborator contract (Put/PutSlice/Commit on the writer, Next on the
// reader); the concrete scheme is delta encoding against a running
// previous value, zigzag mapping to handle decreases, varint encoding
// of the zigzagged delta, and run-length collapsing of repeated deltas
// so perfectly regular intervals cost one delta plus one run length
// instead of one delta per sample.
package rle

import (
	"encoding/binary"

	"github.com/arloliu/tskit/errs"
	"github.com/arloliu/tskit/stream"
)

// Writer accumulates a run of pending-equal deltas and flushes the run
// (as a single zigzag-varint delta plus a varint run-length) whenever
// the next delta differs from the one being accumulated, or on Commit.
type Writer struct {
	w *stream.Writer

	started  bool
	prev     uint64
	pending  int64 // delta value of the current run
	runLen   uint64
	hasRun   bool
	overflow bool
}

// NewWriter creates a delta-RLE writer appending onto w.
func NewWriter(w *stream.Writer) *Writer {
	return &Writer{w: w}
}

// Put appends one value.
func (e *Writer) Put(v uint64) bool {
	if e.overflow {
		return false
	}

	if !e.started {
		e.started = true
		e.prev = v
		e.pending = int64(v) //nolint:gosec
		e.runLen = 1
		e.hasRun = true

		return true
	}

	delta := int64(v) - int64(e.prev) //nolint:gosec
	e.prev = v

	if e.hasRun && delta == e.pending {
		e.runLen++

		return true
	}

	if e.hasRun && !e.flushRun() {
		e.overflow = true

		return false
	}

	e.pending = delta
	e.runLen = 1
	e.hasRun = true

	return true
}

// PutSlice appends n values in order.
func (e *Writer) PutSlice(vs []uint64) bool {
	for _, v := range vs {
		if !e.Put(v) {
			return false
		}
	}

	return true
}

// Commit flushes any pending run. Values Put after Commit continue the
// same delta chain, so Commit also serves as a mid-stream flush; the
// block and column containers use it that way at the end of each batch.
func (e *Writer) Commit() bool {
	if e.overflow {
		return false
	}
	if e.hasRun && !e.flushRun() {
		return false
	}
	e.hasRun = false

	return true
}

func (e *Writer) flushRun() bool {
	var tmp [binary.MaxVarintLen64]byte

	n := binary.PutUvarint(tmp[:], zigzagEncode(e.pending))
	if !e.w.PutBytes(tmp[:n]) {
		return false
	}

	n = binary.PutUvarint(tmp[:], e.runLen)

	return e.w.PutBytes(tmp[:n])
}

func zigzagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func zigzagDecode(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// Reader yields the values written by a Writer, in write order.
type Reader struct {
	r *stream.Reader

	cur       uint64
	started   bool
	runRemain uint64
	runDelta  int64
}

// NewReader creates a delta-RLE reader consuming from r.
func NewReader(r *stream.Reader) *Reader {
	return &Reader{r: r}
}

// Next returns the next decoded value, or errs.ErrBadData if the
// underlying stream is malformed or exhausted early.
func (d *Reader) Next() (uint64, error) {
	if d.runRemain == 0 {
		zz, err := d.readUvarint()
		if err != nil {
			return 0, err
		}
		runLen, err := d.readUvarint()
		if err != nil {
			return 0, err
		}
		if runLen == 0 {
			return 0, errs.ErrBadData
		}

		d.runDelta = zigzagDecode(zz)
		d.runRemain = runLen
	}

	if !d.started {
		d.cur = uint64(d.runDelta) //nolint:gosec
		d.started = true
	} else {
		d.cur = uint64(int64(d.cur) + d.runDelta) //nolint:gosec
	}
	d.runRemain--

	return d.cur, nil
}

func (d *Reader) readUvarint() (uint64, error) {
	var buf [binary.MaxVarintLen64]byte

	n := 0
	for {
		b, err := d.r.Uint8()
		if err != nil {
			return 0, errs.ErrBadData
		}
		if n >= len(buf) {
			return 0, errs.ErrBadData
		}
		buf[n] = b
		n++
		if b < 0x80 {
			break
		}
	}

	v, consumed := binary.Uvarint(buf[:n])
	if consumed <= 0 {
		return 0, errs.ErrBadData
	}

	return v, nil
}
