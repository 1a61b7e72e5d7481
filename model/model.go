// Package model defines the primitive types and row containers the
// compression core operates on: series identity, timestamps, values, and
// the two row containers (SeriesSlice, UncompressedChunk) that the block
// and chunk codecs read from and write into.
package model

// ParamId identifies a series. Opaque to the codec; callers that want a
// collision-resistant id derived from a human-readable name can use
// internal/hash.ID.
type ParamId = uint64

// Timestamp is a monotonic-within-series time value.
type Timestamp = uint64

// Value is an IEEE-754 binary64 sample.
type Value = float64

// SeriesSlice is a view over three parallel arrays belonging to one
// series: a read/write cursor (Offset) and a logical length (Size) track
// how much of Ts/Value has been consumed or produced. The codec advances
// Offset by the number of samples actually encoded or decoded; callers
// resume from the returned Offset when a block didn't fit everything.
//
// Invariant: len(Ts) == len(Value) >= Size >= Offset.
type SeriesSlice struct {
	Id     ParamId
	Ts     []Timestamp
	Value  []Value
	Offset int
	Size   int
}

// Len returns the number of samples still pending between Offset and Size.
func (s *SeriesSlice) Len() int {
	return s.Size - s.Offset
}

// Valid reports whether the slice satisfies its length invariant.
func (s *SeriesSlice) Valid() bool {
	return len(s.Ts) == len(s.Value) && s.Size <= len(s.Ts) && s.Offset <= s.Size
}

// UncompressedChunk holds three equal-length columns for a multi-series,
// column-oriented batch: one row per (ParamId, Timestamp, Value) tuple.
type UncompressedChunk struct {
	ParamIds   []ParamId
	Timestamps []Timestamp
	Values     []Value
}

// Len returns the row count, or -1 if the three columns disagree.
func (c *UncompressedChunk) Len() int {
	if !c.Valid() {
		return -1
	}

	return len(c.ParamIds)
}

// Valid reports whether all three columns have identical length.
func (c *UncompressedChunk) Valid() bool {
	n := len(c.ParamIds)

	return len(c.Timestamps) == n && len(c.Values) == n
}
