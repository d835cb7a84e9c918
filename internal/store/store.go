// Package store owns the persisted shortcut table. The backing file is a
// flat JSON object of shortcut name to absolute path, living in the
// location computed by the locator package.
//
// There is no cross-process coordination: two invocations that both load,
// mutate, and save will race and the later save wins. That lost-update
// hazard is accepted for a single-user interactive tool.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// PathFinder yields the store file path. It is consulted on every load and
// save because the answer can change between invocations.
type PathFinder interface {
	ConfigFilePath() string
}

// Store reads and writes the shortcut table.
type Store struct {
	fs       afero.Fs
	paths    PathFinder
	defaults func() Map
}

// New creates a Store. defaults supplies the shortcut set written on first
// run, when no store file exists yet; it may be nil, in which case a first
// run starts empty.
func New(fs afero.Fs, paths PathFinder, defaults func() Map) *Store {
	return &Store{fs: fs, paths: paths, defaults: defaults}
}

// Load reads the shortcut table. The returned Map is always usable; a
// non-nil error is advisory, to be reported without aborting:
//
//   - missing file: the default set is generated, persisted, and returned
//   - unparsable or non string-to-string file: an empty map plus a
//     *MalformedError; the file is left byte-for-byte intact
func (s *Store) Load() (Map, error) {
	path := s.paths.ConfigFilePath()

	data, err := afero.ReadFile(s.fs, path)
	if os.IsNotExist(err) {
		return s.firstRun(path)
	}
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("shortcut store unreadable")
		return Map{}, fmt.Errorf("read shortcut store %s: %w", path, err)
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		log.Error().Err(err).Str("path", path).Msg("shortcut store malformed")
		return Map{}, &MalformedError{Path: path, Err: err}
	}
	if m == nil {
		// "null" decodes without error but is not an object.
		merr := &MalformedError{Path: path, Err: errTopLevelNull}
		log.Error().Str("path", path).Msg("shortcut store malformed")
		return Map{}, merr
	}
	return m, nil
}

// firstRun populates and persists the default shortcut set.
func (s *Store) firstRun(path string) (Map, error) {
	m := Map{}
	if s.defaults != nil {
		m = s.defaults()
	}
	log.Info().Str("path", path).Int("shortcuts", len(m)).
		Msg("no shortcut store found, writing defaults")
	if err := s.Save(m); err != nil {
		return m, err
	}
	return m, nil
}

// Save writes the shortcut table as a flat JSON object, overwriting the
// store file. Durability is best effort; no rename swap.
func (s *Store) Save(m Map) error {
	path := s.paths.ConfigFilePath()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode shortcut store: %w", err)
	}
	data = append(data, '\n')

	if err := afero.WriteFile(s.fs, path, data, 0o600); err != nil {
		return fmt.Errorf("write shortcut store %s: %w", path, err)
	}
	return nil
}
