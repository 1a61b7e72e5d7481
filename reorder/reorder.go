// Package reorder permutes the rows of an UncompressedChunk between
// chunk order (grouped by series, as produced by column-wise ingestion)
// and time order (grouped by timestamp, as required before encoding a
// chunk for storage).
package reorder

import (
	"sort"

	"github.com/arloliu/tskit/model"
)

// ByTime stably sorts in's rows by ascending timestamp, converting a
// chunk-ordered (series-grouped) input into time order. Rows with equal
// timestamps keep their relative input order. Returns false without
// allocating if the three columns have mismatched lengths.
func ByTime(in model.UncompressedChunk) (model.UncompressedChunk, bool) {
	return permute(in, func(idx []int) {
		sort.SliceStable(idx, func(a, b int) bool {
			return in.Timestamps[idx[a]] < in.Timestamps[idx[b]]
		})
	})
}

// ByParamId stably sorts in's rows by ascending paramid, converting a
// time-ordered input back into chunk order (grouped by series). Rows
// with equal paramids keep their relative input order, which preserves
// each series' internal timestamp monotonicity. Returns false without
// allocating if the three columns have mismatched lengths.
func ByParamId(in model.UncompressedChunk) (model.UncompressedChunk, bool) {
	return permute(in, func(idx []int) {
		sort.SliceStable(idx, func(a, b int) bool {
			return in.ParamIds[idx[a]] < in.ParamIds[idx[b]]
		})
	})
}

// permute builds an identity index vector, lets sortIdx reorder it, and
// copies rows into freshly allocated output columns.
func permute(in model.UncompressedChunk, sortIdx func([]int)) (model.UncompressedChunk, bool) {
	if !in.Valid() {
		return model.UncompressedChunk{}, false
	}

	n := len(in.ParamIds)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sortIdx(idx)

	paramIds := make([]model.ParamId, n)
	timestamps := make([]model.Timestamp, n)
	values := make([]model.Value, n)

	for out, src := range idx {
		paramIds[out] = in.ParamIds[src]
		timestamps[out] = in.Timestamps[src]
		values[out] = in.Values[src]
	}

	return model.UncompressedChunk{
		ParamIds:   paramIds,
		Timestamps: timestamps,
		Values:     values,
	}, true
}
