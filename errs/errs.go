// Package errs defines the sentinel errors returned by the tskit compression core.
//
// Call sites that need to attach dynamic detail wrap a sentinel with fmt.Errorf's
// %w verb (e.g. fmt.Errorf("%w: got %d bytes", errs.ErrBadArg, n)) so callers can
// still match with errors.Is against the sentinel below.
package errs

import "errors"

var (
	// ErrOverflow indicates a writer ran out of room in its destination buffer.
	// Codec state remains consistent with whatever was already written; callers
	// can commit the partial result and resume encoding on the next block.
	ErrOverflow = errors.New("tskit: buffer overflow")

	// ErrBadArg indicates a decode destination is too small to hold the result.
	// Returned without side effects on the destination.
	ErrBadArg = errors.New("tskit: bad argument")

	// ErrBadData indicates the underlying byte stream is malformed or truncated
	// in a way that isn't a simple end-of-stream (e.g. delta-RLE run bounds).
	ErrBadData = errors.New("tskit: bad data")

	// ErrVersionMismatch indicates a block or column header carries a version tag this
	// build does not recognize.
	ErrVersionMismatch = errors.New("tskit: version mismatch")

	// ErrUnexpectedEOF indicates a reader consumed past the end of its window.
	ErrUnexpectedEOF = errors.New("tskit: unexpected end of stream")
)
