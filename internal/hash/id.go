// Package hash turns human-readable series names into the opaque
// model.ParamId values the compression core operates on.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of name, suitable for use as a model.ParamId.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
