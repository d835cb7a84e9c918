package locator

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopcli/hop/internal/folders"
	"github.com/hopcli/hop/internal/logging"
	"github.com/hopcli/hop/internal/registry"
)

const testHome = "/home/alice"

func newTestLocator(t *testing.T, store registry.Store, existing ...string) (*Locator, afero.Fs) {
	t.Helper()
	logging.InitTest()

	fs := afero.NewMemMapFs()
	for _, dir := range existing {
		require.NoError(t, fs.MkdirAll(dir, 0o750))
	}
	return New(fs, folders.New(fs, store, testHome)), fs
}

func TestIsOneDrivePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "segment backslash", path: `C:\Users\alice\OneDrive\Documents`, want: true},
		{name: "org segment", path: `C:\Users\alice\OneDrive - Contoso\Documents`, want: true},
		{name: "trailing", path: `D:\OneDrive`, want: true},
		{name: "forward slashes", path: "/mnt/c/OneDrive/Documents", want: true},
		{name: "plain documents", path: `C:\Users\alice\Documents`, want: false},
		{name: "substring only", path: `C:\Users\alice\OneDriveBackup\Documents`, want: false},
		{name: "empty", path: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsOneDrivePath(tt.path))
		})
	}
}

func TestConfigFilePathHonorsOneDriveRedirection(t *testing.T) {
	t.Parallel()

	docs := "/cloud/OneDrive/Documents"
	store := registry.MapStore{"Personal": docs}
	l, _ := newTestLocator(t, store, docs)

	got := l.ConfigFilePath()
	want := filepath.Join(docs, "PowerShell", "LocationShortcuts.json")
	assert.Equal(t, want, got)
}

func TestConfigFilePathIgnoresNonCloudRedirection(t *testing.T) {
	t.Parallel()

	// A valid redirection that is not OneDrive must not move the store.
	docs := "/data/custom-docs"
	store := registry.MapStore{"Personal": docs}
	l, _ := newTestLocator(t, store, docs)

	got := l.ConfigFilePath()
	want := filepath.Join(testHome, "Documents", "PowerShell", "LocationShortcuts.json")
	assert.Equal(t, want, got)
}

func TestConfigFilePathDefault(t *testing.T) {
	t.Parallel()

	l, fs := newTestLocator(t, registry.MapStore(nil))

	got := l.ConfigFilePath()
	want := filepath.Join(testHome, "Documents", "PowerShell", "LocationShortcuts.json")
	assert.Equal(t, want, got)

	// The containing directory is created as a side effect.
	isDir, err := afero.IsDir(fs, filepath.Dir(got))
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestConfigFilePathSurvivesMkdirFailure(t *testing.T) {
	t.Parallel()

	logging.InitTest()
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	l := New(fs, folders.New(fs, registry.MapStore(nil), testHome))

	// Creation fails, but the path is still returned for the caller's
	// read or write to fail on.
	got := l.ConfigFilePath()
	want := filepath.Join(testHome, "Documents", "PowerShell", "LocationShortcuts.json")
	assert.Equal(t, want, got)
}
