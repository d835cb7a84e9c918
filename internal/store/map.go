package store

import (
	"fmt"
	"regexp"
	"strings"
)

// namePattern is the allowed shape of a shortcut name.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidName reports whether name is a legal shortcut name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Map is the in-memory shortcut table: name to absolute path. Names are
// unique case-insensitively, but the casing supplied at add time is what
// gets stored and persisted; lookups normalize, storage does not.
//
// Mutations are in-memory only. Callers persist via Store.Save.
type Map map[string]string

// Exists performs a case-insensitive lookup and returns the name under its
// originally stored casing.
func (m Map) Exists(name string) (string, bool) {
	for k := range m {
		if strings.EqualFold(k, name) {
			return k, true
		}
	}
	return "", false
}

// Add inserts a new shortcut. The name must be valid and not collide,
// case-insensitively, with an existing entry.
func (m Map) Add(name, path string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if existing, ok := m.Exists(name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, existing)
	}
	m[name] = path
	return nil
}

// Edit replaces the path of an existing shortcut, matched
// case-insensitively. The stored casing is untouched.
func (m Map) Edit(name, path string) error {
	existing, ok := m.Exists(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	m[existing] = path
	return nil
}

// Remove deletes a shortcut, matched case-insensitively.
func (m Map) Remove(name string) error {
	existing, ok := m.Exists(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	delete(m, existing)
	return nil
}

// Names returns the stored names in unspecified order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	return names
}
