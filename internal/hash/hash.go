// Package hash computes the channel-name IDs used for name lookup on decoded
// files.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a channel name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
