// Package stream implements the bounded, non-allocating byte-stream
// writer and reader the codecs in this module are built on: a fixed
// [0, len(buf)) window that every fixed-width append/consume operation
// checks against, plus a reserve-then-backfill primitive for header
// fields whose value (a count, a size) is only known after the body that
// follows them has been written.
//
// Endianness is controlled by the caller-supplied endian.EndianEngine;
// passing endian.GetLittleEndianEngine() matches the host byte order
// design note this module assumes by default.
package stream

import (
	"math"

	"github.com/arloliu/tskit/endian"
	"github.com/arloliu/tskit/errs"
)

// Writer appends fixed-width values into a caller-owned, fixed-size
// window. It never reallocates or grows the window; once the window is
// exhausted every Put/Reserve call that does not fit returns false and
// leaves the writer's position unchanged.
type Writer struct {
	buf    []byte
	pos    int
	engine endian.EndianEngine
}

// NewWriter wraps buf as a fresh, empty write window.
func NewWriter(buf []byte, engine endian.EndianEngine) *Writer {
	return &Writer{buf: buf, engine: engine}
}

// Size returns the number of bytes written so far.
func (w *Writer) Size() int { return w.pos }

// Remaining returns the number of bytes left in the window.
func (w *Writer) Remaining() int { return len(w.buf) - w.pos }

func (w *Writer) fits(n int) bool { return w.Remaining() >= n }

// PutUint8 appends a single byte.
func (w *Writer) PutUint8(v uint8) bool {
	if !w.fits(1) {
		return false
	}
	w.buf[w.pos] = v
	w.pos++

	return true
}

// PutUint16 appends a 2-byte word.
func (w *Writer) PutUint16(v uint16) bool {
	if !w.fits(2) {
		return false
	}
	w.engine.PutUint16(w.buf[w.pos:], v)
	w.pos += 2

	return true
}

// PutUint32 appends a 4-byte word.
func (w *Writer) PutUint32(v uint32) bool {
	if !w.fits(4) {
		return false
	}
	w.engine.PutUint32(w.buf[w.pos:], v)
	w.pos += 4

	return true
}

// PutUint64 appends an 8-byte word.
func (w *Writer) PutUint64(v uint64) bool {
	if !w.fits(8) {
		return false
	}
	w.engine.PutUint64(w.buf[w.pos:], v)
	w.pos += 8

	return true
}

// PutFloat64 appends the bit-exact IEEE-754 representation of v.
func (w *Writer) PutFloat64(v float64) bool {
	return w.PutUint64(math.Float64bits(v))
}

// PutBytes appends b verbatim, used by the FCM codec to emit a
// variable (1..8) number of little-endian diff bytes.
func (w *Writer) PutBytes(b []byte) bool {
	if !w.fits(len(b)) {
		return false
	}
	copy(w.buf[w.pos:], b)
	w.pos += len(b)

	return true
}

// Slot is a handle returned by Reserve* that a later Fill* call
// backfills once the value it holds (a count, a byte length) becomes
// known. It stays valid for the lifetime of the writer's window, which
// never reallocates.
type Slot struct {
	offset int
	size   int
}

// ReserveUint16 reserves 2 bytes, to be backfilled with FillUint16.
func (w *Writer) ReserveUint16() (Slot, bool) {
	if !w.fits(2) {
		return Slot{}, false
	}
	s := Slot{offset: w.pos, size: 2}
	w.pos += 2

	return s, true
}

// ReserveUint32 reserves 4 bytes, to be backfilled with FillUint32.
func (w *Writer) ReserveUint32() (Slot, bool) {
	if !w.fits(4) {
		return Slot{}, false
	}
	s := Slot{offset: w.pos, size: 4}
	w.pos += 4

	return s, true
}

// FillUint16 backfills a slot previously returned by ReserveUint16.
func (w *Writer) FillUint16(s Slot, v uint16) {
	w.engine.PutUint16(w.buf[s.offset:s.offset+s.size], v)
}

// FillUint32 backfills a slot previously returned by ReserveUint32.
func (w *Writer) FillUint32(s Slot, v uint32) {
	w.engine.PutUint32(w.buf[s.offset:s.offset+s.size], v)
}

// Commit finalizes the write and returns the written prefix of the
// window. It exists so callers can invoke Commit uniformly across every
// stream-owning codec in a pipeline, even though Writer itself buffers
// nothing beyond what's already been appended.
func (w *Writer) Commit() []byte {
	return w.buf[:w.pos]
}

// Reader consumes fixed-width values from a caller-owned byte window.
// Reading past the end of the window fails with errs.ErrUnexpectedEOF.
type Reader struct {
	buf    []byte
	pos    int
	engine endian.EndianEngine
}

// NewReader wraps buf for sequential reads starting at offset 0.
func NewReader(buf []byte, engine endian.EndianEngine) *Reader {
	return &Reader{buf: buf, engine: engine}
}

// Pos returns the current read offset.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes left in the window.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return errs.ErrUnexpectedEOF
	}

	return nil
}

// Uint8 consumes one byte.
func (r *Reader) Uint8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++

	return v, nil
}

// Uint16 consumes a 2-byte word.
func (r *Reader) Uint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := r.engine.Uint16(r.buf[r.pos:])
	r.pos += 2

	return v, nil
}

// Uint32 consumes a 4-byte word.
func (r *Reader) Uint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := r.engine.Uint32(r.buf[r.pos:])
	r.pos += 4

	return v, nil
}

// Uint64 consumes an 8-byte word.
func (r *Reader) Uint64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := r.engine.Uint64(r.buf[r.pos:])
	r.pos += 8

	return v, nil
}

// Float64 consumes an 8-byte word and reinterprets it bit-exactly.
func (r *Reader) Float64() (float64, error) {
	bits, err := r.Uint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// Bytes consumes exactly n raw bytes. The returned slice aliases the
// reader's window and is only valid until the window is reused.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}
