// Package defaults builds the initial shortcut set written on first run.
// The catalogue is fixed; which entries survive depends on what actually
// exists on the host, so the generated set is host-dependent and sparse on
// non-Windows systems. That is expected, not an error.
package defaults

import (
	"os"
	"path/filepath"

	"github.com/hopcli/hop/internal/folders"
	"github.com/hopcli/hop/internal/store"
)

// folderCandidate is a special user folder resolved through the
// redirection-aware resolver. An empty key means the folder is never
// redirected and always lives under home.
type folderCandidate struct {
	name        string
	key         string
	fallbackRel string
}

// Downloads, Pictures, Music and Videos use the value names Windows keeps
// under User Shell Folders; Downloads has only a KnownFolder GUID.
var folderCandidates = []folderCandidate{
	{name: "Downloads", key: "{374DE290-123F-4565-9164-39C4925E467B}", fallbackRel: "Downloads"},
	{name: "Documents", key: "Personal", fallbackRel: "Documents"},
	{name: "Pictures", key: "My Pictures", fallbackRel: "Pictures"},
	{name: "Music", key: "My Music", fallbackRel: "Music"},
	{name: "Videos", key: "My Video", fallbackRel: "Videos"},
	{name: "Scripts", key: "", fallbackRel: "Scripts"},
	{name: "Projects", key: "", fallbackRel: "Projects"},
}

// Set generates default shortcuts via a resolver.
type Set struct {
	resolver *folders.Resolver
}

// NewSet creates a default-set generator.
func NewSet(resolver *folders.Resolver) *Set {
	return &Set{resolver: resolver}
}

// Generate resolves every candidate and returns those whose target exists.
// It is deterministic for an unchanged filesystem.
func (s *Set) Generate() store.Map {
	m := store.Map{}
	add := func(name, path string) {
		if path != "" && s.resolver.Exists(path) {
			m[name] = path
		}
	}

	for _, c := range folderCandidates {
		add(c.name, s.resolver.Resolve(c.key, c.fallbackRel))
	}

	programs := os.Getenv("ProgramFiles")
	programs32 := os.Getenv("ProgramFiles(x86)")

	add("Home", s.resolver.Home())
	add("System", joinIfSet(os.Getenv("SystemRoot"), "System32"))
	add("Programs", programs)
	add("Programs32", programs32)
	add("ProgramData", os.Getenv("ProgramData"))
	add("Steam", joinIfSet(programs32, "Steam", "steamapps", "common"))
	add("Temp", os.TempDir())
	add("CTemp", `C:\Temp`)
	add("Root", rootCandidate(s.resolver.Home()))

	return m
}

// joinIfSet joins elem onto base, or yields nothing when base is unset.
func joinIfSet(base string, elem ...string) string {
	if base == "" {
		return ""
	}
	return filepath.Join(append([]string{base}, elem...)...)
}

// rootCandidate returns the filesystem root: the home directory's volume on
// Windows-style paths, "/" everywhere else.
func rootCandidate(home string) string {
	if vol := filepath.VolumeName(home); vol != "" {
		return vol + string(filepath.Separator)
	}
	return "/"
}
