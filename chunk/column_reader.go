package chunk

import (
	"fmt"

	"github.com/arloliu/tskit/errs"
	"github.com/arloliu/tskit/fcm"
	"github.com/arloliu/tskit/model"
	"github.com/arloliu/tskit/rle"
	"github.com/arloliu/tskit/section"
	"github.com/arloliu/tskit/stream"
)

// DecodeColumn decodes a buffer produced by ColumnWriter back into
// parallel timestamp/value slices: the compressed main portion followed
// by the raw tail.
func DecodeColumn(buf []byte) ([]model.Timestamp, []model.Value, model.ParamId, error) {
	r := stream.NewReader(buf, defaultEngine())

	header, err := section.ReadColumnHeader(r)
	if err != nil {
		return nil, nil, 0, err
	}

	total := int(header.MainSize) + int(header.TailSize)
	ts := make([]model.Timestamp, 0, total)
	vals := make([]model.Value, 0, total)

	tr := rle.NewReader(r)
	vr := fcm.NewReader(r)

	for range int(header.MainSize) / ChunkSize {
		for range ChunkSize {
			v, err := tr.Next()
			if err != nil {
				return nil, nil, 0, fmt.Errorf("%w: main timestamps: %v", errs.ErrBadData, err)
			}
			ts = append(ts, v)
		}
		for range ChunkSize {
			v, err := vr.Next()
			if err != nil {
				return nil, nil, 0, fmt.Errorf("%w: main values: %v", errs.ErrBadData, err)
			}
			vals = append(vals, v)
		}
	}

	for range int(header.TailSize) {
		t, err := r.Uint64()
		if err != nil {
			return nil, nil, 0, fmt.Errorf("%w: raw tail timestamp: %v", errs.ErrBadData, err)
		}
		v, err := r.Float64()
		if err != nil {
			return nil, nil, 0, fmt.Errorf("%w: raw tail value: %v", errs.ErrBadData, err)
		}
		ts = append(ts, t)
		vals = append(vals, v)
	}

	return ts, vals, header.SeriesId, nil
}
