package noise

import "github.com/cespare/xxhash/v2"

// SeedFromString derives a stable int64 seed from a world name. The mapping
// is fixed across processes and versions, so the same name always rebuilds
// the same world.
func SeedFromString(name string) int64 {
	return int64(xxhash.Sum64String(name))
}
