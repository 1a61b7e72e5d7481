package chunk

import (
	"fmt"

	"github.com/arloliu/tskit/compress"
	"github.com/arloliu/tskit/errs"
)

// Freeze applies codec to an already-framed block or chunk (the output
// of EncodeBlock or EncodeChunk), as an optional outer compression
// layer. The framing itself never compresses its own bytes, so this is
// always a distinct, later step — never called from inside
// EncodeBlock/EncodeChunk.
func Freeze(framed []byte, codec compress.Codec) ([]byte, error) {
	out, err := codec.Compress(framed)
	if err != nil {
		return nil, fmt.Errorf("freezing framed bytes: %w", err)
	}

	return out, nil
}

// Thaw reverses Freeze, returning the original framed block or chunk
// bytes ready for DecodeBlock/DecodeChunk.
func Thaw(frozen []byte, codec compress.Codec) ([]byte, error) {
	out, err := codec.Decompress(frozen)
	if err != nil {
		return nil, fmt.Errorf("%w: thawing frozen bytes: %v", errs.ErrBadData, err)
	}

	return out, nil
}
