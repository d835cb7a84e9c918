//go:build windows

package registry

import (
	"strings"

	"golang.org/x/sys/windows/registry"
)

// userShellFolders holds per-user special folder locations. Values are
// usually REG_EXPAND_SZ with %USERPROFILE%-style references.
const userShellFolders = `Software\Microsoft\Windows\CurrentVersion\Explorer\User Shell Folders`

// ShellFolderStore reads special folder locations from the current user's
// registry hive.
type ShellFolderStore struct{}

// NewSystemStore returns the registry-backed store for this platform.
func NewSystemStore() Store {
	return ShellFolderStore{}
}

// Lookup reads the value named key from the User Shell Folders registry key.
// Any failure (key missing, value missing, access denied) reports a miss.
func (ShellFolderStore) Lookup(key string) (string, bool) {
	k, err := registry.OpenKey(registry.CURRENT_USER, userShellFolders, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	v, _, err := k.GetStringValue(key)
	if err != nil || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}
