// Package app exposes the operations the hop CLI calls: list, create
// defaults, add, edit, remove, and navigate. Each operation loads the
// shortcut table, applies one change, and persists it; nothing is held
// between calls.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/hopcli/hop/internal/defaults"
	"github.com/hopcli/hop/internal/folders"
	"github.com/hopcli/hop/internal/locator"
	"github.com/hopcli/hop/internal/registry"
	"github.com/hopcli/hop/internal/store"
)

var (
	// ErrInvalidPath reports a supplied path that does not resolve to an
	// existing filesystem entry.
	ErrInvalidPath = errors.New("path does not exist")

	// ErrUnknownShortcut reports a navigation target that is not in the
	// shortcut table.
	ErrUnknownShortcut = errors.New("unknown shortcut")

	// ErrTargetMissing reports a shortcut whose stored path no longer
	// exists on disk.
	ErrTargetMissing = errors.New("shortcut target no longer exists")
)

// App wires the shortcut store to its path and folder resolution.
type App struct {
	fs       afero.Fs
	store    *store.Store
	defaults *defaults.Set
}

// New builds an App on the real filesystem and the platform's redirection
// store. It fails only when the home directory cannot be determined, the
// one unrecoverable environment error.
func New() (*App, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("determine home directory: %w", err)
	}
	return NewWith(afero.NewOsFs(), registry.NewSystemStore(), home), nil
}

// NewWith builds an App from explicit collaborators, for tests and for
// platforms where the defaults are unsuitable.
func NewWith(fs afero.Fs, reg registry.Store, home string) *App {
	resolver := folders.New(fs, reg, home)
	set := defaults.NewSet(resolver)
	loc := locator.New(fs, resolver)
	return &App{
		fs:       fs,
		store:    store.New(fs, loc, set.Generate),
		defaults: set,
	}
}

// GetShortcuts returns the shortcut table. A non-nil error is advisory
// (malformed store file recovered to an empty table); the returned map is
// always usable.
func (a *App) GetShortcuts() (store.Map, error) {
	return a.store.Load()
}

// CreateDefaults regenerates the default shortcut set and overwrites the
// store with it unconditionally. Any confirmation gate belongs to the
// caller.
func (a *App) CreateDefaults() (store.Map, error) {
	m := a.defaults.Generate()
	if err := a.store.Save(m); err != nil {
		return m, err
	}
	return m, nil
}

// AddShortcut stores a new shortcut. The path is resolved against the
// current working directory and must exist.
func (a *App) AddShortcut(name, path string) (store.Map, error) {
	abs, err := a.canonicalize(path)
	if err != nil {
		return nil, err
	}

	m, err := a.store.Load()
	if err != nil {
		return m, err
	}
	if err := m.Add(name, abs); err != nil {
		return m, err
	}
	return m, a.store.Save(m)
}

// EditShortcut repoints an existing shortcut at a new path, which must
// exist.
func (a *App) EditShortcut(name, path string) (store.Map, error) {
	abs, err := a.canonicalize(path)
	if err != nil {
		return nil, err
	}

	m, err := a.store.Load()
	if err != nil {
		return m, err
	}
	if err := m.Edit(name, abs); err != nil {
		return m, err
	}
	return m, a.store.Save(m)
}

// RemoveShortcut deletes a shortcut, matched case-insensitively.
func (a *App) RemoveShortcut(name string) (store.Map, error) {
	m, err := a.store.Load()
	if err != nil {
		return m, err
	}
	if err := m.Remove(name); err != nil {
		return m, err
	}
	return m, a.store.Save(m)
}

// NavigateTo resolves a shortcut name to its stored path for the caller to
// change into. The table is not mutated, even when the target is gone.
func (a *App) NavigateTo(name string) (string, error) {
	m, err := a.store.Load()
	if err != nil {
		return "", err
	}

	stored, ok := m.Exists(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownShortcut, name)
	}
	path := m[stored]
	if _, err := a.fs.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %q -> %s", ErrTargetMissing, stored, path)
	}
	return path, nil
}

// canonicalize resolves path against the working directory and verifies it
// exists.
func (a *App) canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	if _, err := a.fs.Stat(abs); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, abs)
	}
	return abs, nil
}
