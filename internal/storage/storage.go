// Package storage provides XDG-compliant paths for hop's own data (log
// file, app settings). The shortcut store itself does not live here; its
// location is Documents-derived and computed by the locator package.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"

	"github.com/hopcli/hop/internal/constants"
)

// Manager handles storage paths with filesystem abstraction.
type Manager struct {
	fs afero.Fs
}

// New creates a storage manager with the given filesystem.
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// DataDir returns the XDG data directory for hop, creating it if necessary.
func (m *Manager) DataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, constants.AppSubDir)
	if err := m.fs.MkdirAll(dataDir, 0o750); err != nil {
		return "", fmt.Errorf("create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// LogPath returns the full path to the hop log file.
func (m *Manager) LogPath() (string, error) {
	dataDir, err := m.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, constants.LogFilename), nil
}

// SettingsPath returns the full path to the optional app settings file.
// The file is not created; absence is the common case.
func (m *Manager) SettingsPath() string {
	return filepath.Join(xdg.ConfigHome, constants.AppSubDir, constants.SettingsFilename)
}
