// Package tskit provides the compression core of a time-series storage
// engine: a finite-context predictive codec for float64 values, a
// delta/run-length codec for monotonic timestamps and series
// identifiers, and the block/chunk wire containers that frame them.
//
// tskit is optimized for columnar ingestion — many (timestamp, value)
// samples per series, written in batches and read back either as a
// single series (block) or as many interleaved series (chunk).
//
// # Core Features
//
//   - Finite-context predictive compression for float64 value streams (package fcm)
//   - Delta + run-length + varint compression for monotonic integer streams (package rle)
//   - Single-series block and multi-series chunk wire containers (package chunk)
//   - Stable row reordering between chunk order and time order (package reorder)
//   - Optional secondary compression of already-framed bytes (package compress)
//
// # Basic Usage
//
// Encoding a single series into a block:
//
//	slice := &model.SeriesSlice{
//	    Id:    tskit.SeriesID("cpu.usage"),
//	    Ts:    []model.Timestamp{1, 2, 3, 4, 5},
//	    Value: []model.Value{1.0, 1.0, 1.0, 1.0, 1.0},
//	    Size:  5,
//	}
//	buf := make([]byte, 256)
//	if err := chunk.EncodeBlock(slice, buf); err != nil {
//	    // handle error
//	}
//
// Decoding it back:
//
//	dest := &model.SeriesSlice{Ts: make([]model.Timestamp, 5), Value: make([]model.Value, 5), Size: 5}
//	if err := chunk.DecodeBlock(buf, dest); err != nil {
//	    // handle error
//	}
//
// # Package Structure
//
// This file provides one convenience wrapper, SeriesID, for the most
// common case — identifying a series by name. For encoding, decoding,
// reordering, and optional compression, use the chunk, reorder, and
// compress packages directly; they are not re-exported here.
package tskit

import (
	"github.com/arloliu/tskit/internal/hash"
	"github.com/arloliu/tskit/model"
)

// SeriesID derives a model.ParamId from a human-readable series name
// via xxHash64. ParamId is otherwise an opaque caller-supplied value;
// this is offered as a convenient, collision-resistant default rather
// than the only way to produce one.
func SeriesID(name string) model.ParamId {
	return hash.ID(name)
}
