package store

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopcli/hop/internal/logging"
	"github.com/hopcli/hop/internal/testutil"
)

// fixedPath is a PathFinder returning a constant location.
type fixedPath string

func (p fixedPath) ConfigFilePath() string { return string(p) }

const testStorePath = "/docs/PowerShell/LocationShortcuts.json"

func newTestStore(fs afero.Fs, defaults func() Map) *Store {
	logging.InitTest()
	return New(fs, fixedPath(testStorePath), defaults)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	defer testutil.VerifyNoLeaks(t)

	fs := afero.NewMemMapFs()
	s := newTestStore(fs, nil)

	want := Map{
		"Home":      "/home/alice",
		"Projects":  "/home/alice/Projects",
		"CamelCase": "/tmp/casing",
	}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got, "round trip must preserve entries and casing")
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	defaults := func() Map { return Map{"Home": "/home/alice"} }
	s := newTestStore(fs, defaults)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Map{"Home": "/home/alice"}, got)

	// The defaults were persisted, so a second load reads the file.
	exists, err := afero.Exists(fs, testStorePath)
	require.NoError(t, err)
	assert.True(t, exists, "first run must persist the default set")

	again, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestLoadMissingFileNoDefaults(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s := newTestStore(fs, nil)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "not JSON", content: "{{{"},
		{name: "top-level string", content: `"not an object"`},
		{name: "top-level array", content: `["a", "b"]`},
		{name: "null", content: `null`},
		{name: "non-string value", content: `{"Work": 42}`},
		{name: "nested object", content: `{"Work": {"path": "/tmp"}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t,
				afero.WriteFile(fs, testStorePath, []byte(tt.content), 0o600))

			s := newTestStore(fs, func() Map { return Map{"Home": "/h"} })

			got, err := s.Load()

			var malformed *MalformedError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, testStorePath, malformed.Path)
			assert.Empty(t, got, "malformed store recovers to an empty map")

			// The corrupt file is left byte-for-byte intact.
			data, readErr := afero.ReadFile(fs, testStorePath)
			require.NoError(t, readErr)
			assert.Equal(t, tt.content, string(data))
		})
	}
}

func TestSaveWriteFailure(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s := newTestStore(fs, nil)

	err := s.Save(Map{"Work": "/tmp/w"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), testStorePath)
}
