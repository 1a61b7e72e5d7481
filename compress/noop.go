package compress

// NoOpCompressor passes a framed block or chunk through chunk.Freeze/
// chunk.Thaw unchanged. Useful as a baseline when measuring whether a
// real codec is worth its CPU cost for a given series.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-op compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged. The result shares data's backing
// array; callers must not mutate data afterward.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
