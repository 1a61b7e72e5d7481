// Package fcm implements the finite-context predictive double codec:
// the core value compressor of the compression pipeline. Each sample is
// XORed against a predictor's hypothesis for it, and the resulting diff
// is packed into a variable 1..8 byte field selected by a 4-bit flag;
// two samples share one flag byte to amortize framing cost.
package fcm

// tableSize is the number of slots in the predictor's hash table. Must
// be a power of two.
const tableSize = 1 << 10

const tableMask = tableSize - 1

// Predictor is a finite-context predictor: a hash-indexed table of
// previously observed 64-bit words. predict_next hypothesizes the next
// word as whatever was last seen at the current hash slot; update
// records the actual word and advances the hash from its top 16 bits.
//
// Zero value is ready to use (table all-zero, hash zero) and is the
// state both encoder and decoder start from — they must stay in
// lock-step, since update is applied to the same hashed slot sequence
// on both sides.
type Predictor struct {
	table [tableSize]uint64
	hash  uint64
}

// PredictNext returns the table's current hypothesis for the next word.
func (p *Predictor) PredictNext() uint64 {
	return p.table[p.hash]
}

// Update records the actual observed word and advances the hash.
func (p *Predictor) Update(v uint64) {
	p.table[p.hash] = v
	p.hash = ((p.hash << 6) ^ (v >> 48)) & tableMask
}

// DFCMPredictor is the differential variant: it predicts the next word
// as the table's hypothesis plus the last observed value, and updates
// the table with the delta rather than the absolute word. Defined for
// symmetry with Predictor; the wire format here uses Predictor only.
type DFCMPredictor struct {
	table     [tableSize]uint64
	hash      uint64
	lastValue uint64
}

// PredictNext returns the table's hypothesis for the next delta, added
// back onto the last observed value.
func (p *DFCMPredictor) PredictNext() uint64 {
	return p.table[p.hash] + p.lastValue
}

// Update records the actual observed word and advances the hash from
// the delta between it and the previous word.
func (p *DFCMPredictor) Update(v uint64) {
	delta := v - p.lastValue
	p.table[p.hash] = delta
	p.hash = ((p.hash << 2) ^ (delta >> 40)) & tableMask
	p.lastValue = v
}
