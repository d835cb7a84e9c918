// Package registry abstracts the OS facility that records where special
// user folders (Documents, Downloads, ...) actually live. On Windows this
// is the "User Shell Folders" registry key; elsewhere no such facility
// exists and every lookup simply misses.
package registry

// Store looks up the redirected location of a special folder.
// Lookup returns the raw stored value (which may contain unexpanded
// environment references) and whether a value was found. Implementations
// never fail hard: an inaccessible store behaves as if every key is absent.
type Store interface {
	Lookup(key string) (string, bool)
}

// MapStore is a Store backed by a plain map, used in tests and as a stand-in
// on platforms without folder redirection.
type MapStore map[string]string

// Lookup returns the value stored under key, if any.
func (m MapStore) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
