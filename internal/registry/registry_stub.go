//go:build !windows

package registry

// NewSystemStore returns the store for platforms without folder
// redirection. Every lookup misses, so callers always take their fallback.
func NewSystemStore() Store {
	return MapStore(nil)
}
