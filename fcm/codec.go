package fcm

import (
	"iter"
	"math"
	"math/bits"

	"github.com/arloliu/tskit/stream"
)

// flagFor computes the 4-bit flag for a diff word: the low 3 bits are
// the serialized byte count minus one (0..7), the high bit selects
// whether the high or low end of the 64-bit diff was kept.
func flagFor(diff uint64) uint8 {
	lz, tz := 64, 64
	if diff != 0 {
		lz = bits.LeadingZeros64(diff)
		tz = bits.TrailingZeros64(diff)
	}

	if tz > lz {
		// More zero low bits than high bits: keep the high end.
		nbytes := 8 - tz/8
		if nbytes > 0 {
			nbytes--
		}

		return 8 | uint8(nbytes&7) //nolint:gosec
	}

	nbytes := 8 - lz/8
	if nbytes > 0 {
		nbytes--
	}

	return uint8(nbytes & 7) //nolint:gosec
}

// encodeValue writes the masked diff as (flag&7)+1 little-endian bytes,
// taken from the high end of the word when flag's top bit is set, the
// low end otherwise.
func encodeValue(w *stream.Writer, diff uint64, flag uint8) bool {
	nbytes := int(flag&7) + 1
	shift := (64 - nbytes*8) * int(flag>>3)
	diff >>= shift

	var tmp [8]byte
	for i := range nbytes {
		tmp[i] = byte(diff)
		diff >>= 8
	}

	return w.PutBytes(tmp[:nbytes])
}

// decodeValue is the inverse of encodeValue.
func decodeValue(r *stream.Reader, flag uint8) (uint64, error) {
	nbytes := int(flag&7) + 1

	b, err := r.Bytes(nbytes)
	if err != nil {
		return 0, err
	}

	var diff uint64
	for i := range nbytes {
		diff |= uint64(b[i]) << (8 * i)
	}

	shift := (64 - nbytes*8) * int(flag>>3)
	diff <<= shift

	return diff, nil
}

// Writer compresses a sequence of float64 samples against a Predictor's
// running hypothesis, pairing two samples' flag nibbles into one flag
// byte. It holds one pending (diff, flag) half between Put calls;
// Commit flushes it paired with a zero placeholder if the total sample
// count was odd.
type Writer struct {
	w         *stream.Writer
	predictor Predictor

	pendingDiff uint64
	pendingFlag uint8
	n           uint64
	overflow    bool
}

// NewWriter creates an FCM writer appending onto w, with a fresh
// zero-state predictor.
func NewWriter(w *stream.Writer) *Writer {
	return &Writer{w: w}
}

// Put compresses one value. Returns false on the first buffer overflow;
// once that happens the writer must not be used again except to call
// Commit, which will also fail.
func (e *Writer) Put(v float64) bool {
	if e.overflow {
		return false
	}

	b := math.Float64bits(v)
	predicted := e.predictor.PredictNext()
	e.predictor.Update(b)
	diff := b ^ predicted
	flag := flagFor(diff)

	if e.n%2 == 0 {
		e.pendingDiff = diff
		e.pendingFlag = flag
	} else {
		flagByte := (e.pendingFlag << 4) | flag
		if !e.w.PutUint8(flagByte) || !encodeValue(e.w, e.pendingDiff, e.pendingFlag) || !encodeValue(e.w, diff, flag) {
			e.overflow = true

			return false
		}
	}
	e.n++

	return true
}

// PutSlice compresses n values in order.
func (e *Writer) PutSlice(vs []float64) bool {
	for _, v := range vs {
		if !e.Put(v) {
			return false
		}
	}

	return true
}

// Commit flushes a pending odd-count half, paired with a one-byte zero
// placeholder, per the pair-framing grammar. After Commit the writer
// must not be used again.
func (e *Writer) Commit() bool {
	if e.overflow {
		return false
	}

	if e.n%2 != 0 {
		flagByte := e.pendingFlag << 4
		if !e.w.PutUint8(flagByte) || !encodeValue(e.w, e.pendingDiff, e.pendingFlag) || !encodeValue(e.w, 0, 0) {
			return false
		}
	}

	return true
}

// Reader decompresses the samples written by a Writer, in write order.
// The caller is responsible for stopping after the logical sample
// count it expects; a final odd-count placeholder is never surfaced
// because Next is only called exactly n times for n logical samples.
type Reader struct {
	r         *stream.Reader
	predictor Predictor

	flagsWord uint8
	iter      uint64
}

// NewReader creates an FCM reader consuming from r, with a fresh
// zero-state predictor matching a corresponding Writer.
func NewReader(r *stream.Reader) *Reader {
	return &Reader{r: r}
}

// Next decompresses and returns the next value.
func (d *Reader) Next() (float64, error) {
	var flag uint8
	if d.iter%2 == 0 {
		fb, err := d.r.Uint8()
		if err != nil {
			return 0, err
		}
		d.flagsWord = fb
		flag = fb >> 4
	} else {
		flag = d.flagsWord & 0xF
	}
	d.iter++

	diff, err := decodeValue(d.r, flag)
	if err != nil {
		return 0, err
	}

	predicted := d.predictor.PredictNext()
	b := predicted ^ diff
	d.predictor.Update(b)

	return math.Float64frombits(b), nil
}

// All returns an iterator yielding exactly n decompressed values,
// stopping early if the underlying stream errors.
func (d *Reader) All(n int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for range n {
			v, err := d.Next()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
