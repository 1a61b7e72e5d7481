package rle

import (
	"testing"

	"github.com/arloliu/tskit/endian"
	"github.com/arloliu/tskit/stream"
	"github.com/stretchr/testify/require"
)

func encodeAll(t *testing.T, buf []byte, vs []uint64) []byte {
	t.Helper()

	w := stream.NewWriter(buf, endian.GetLittleEndianEngine())
	e := NewWriter(w)
	require.True(t, e.PutSlice(vs))
	require.True(t, e.Commit())

	return w.Commit()
}

func decodeAll(t *testing.T, buf []byte, n int) []uint64 {
	t.Helper()

	r := stream.NewReader(buf, endian.GetLittleEndianEngine())
	d := NewReader(r)

	out := make([]uint64, n)
	for i := range n {
		v, err := d.Next()
		require.NoError(t, err)
		out[i] = v
	}

	return out
}

func TestRoundTrip_RegularRun(t *testing.T) {
	in := []uint64{100, 101, 102, 103, 104}
	out := decodeAll(t, encodeAll(t, make([]byte, 64), in), len(in))
	require.Equal(t, in, out)
}

func TestRoundTrip_IrregularDeltas(t *testing.T) {
	in := []uint64{5, 3, 9, 9, 1, 1000}
	out := decodeAll(t, encodeAll(t, make([]byte, 64), in), len(in))
	require.Equal(t, in, out)
}

func TestRoundTrip_SingleValue(t *testing.T) {
	in := []uint64{42}
	out := decodeAll(t, encodeAll(t, make([]byte, 16), in), len(in))
	require.Equal(t, in, out)
}

func TestOverflow_ReturnsFalse(t *testing.T) {
	w := stream.NewWriter(make([]byte, 1), endian.GetLittleEndianEngine())
	e := NewWriter(w)
	// Non-constant deltas force a run flush partway through, which the
	// 1-byte window can't fully hold.
	require.False(t, e.PutSlice([]uint64{1, 3, 2, 9, 30}))
}
