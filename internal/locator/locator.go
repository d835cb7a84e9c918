// Package locator computes where the shortcut store file lives. The store
// follows the user's documents folder, which cloud-sync services such as
// OneDrive may have redirected away from its default location.
package locator

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/hopcli/hop/internal/constants"
	"github.com/hopcli/hop/internal/folders"
)

// documentsKey is the redirection store entry for the personal documents
// folder ("Personal" for historical reasons).
const documentsKey = "Personal"

// Locator derives the shortcut store path from the documents folder.
type Locator struct {
	fs       afero.Fs
	resolver *folders.Resolver
}

// New creates a Locator using the given resolver for documents discovery.
func New(fs afero.Fs, resolver *folders.Resolver) *Locator {
	return &Locator{fs: fs, resolver: resolver}
}

// ConfigFilePath returns the absolute path of the shortcut store file and
// ensures its parent directory exists. Redirection of the documents folder
// is honored only when it points into a OneDrive folder; any other
// redirection is ignored in favor of the plain home/Documents default, so
// the store does not follow arbitrary folder moves. A failed directory
// creation is logged and the path returned anyway; the subsequent read or
// write is the authoritative failure.
//
// The path is recomputed on every call: redirection status can change
// between invocations and must not be cached.
func (l *Locator) ConfigFilePath() string {
	docs := l.resolver.Resolve(documentsKey, "Documents")

	base := filepath.Join(l.resolver.Home(), "Documents")
	if IsOneDrivePath(docs) {
		base = docs
	}

	path := filepath.Join(base, constants.StoreDir, constants.StoreFilename)
	if err := l.fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		log.Warn().Err(err).Str("dir", filepath.Dir(path)).
			Msg("could not create shortcut store directory")
	}
	return path
}

// IsOneDrivePath reports whether path contains a recognizable OneDrive
// segment: a plain "OneDrive" component, a "OneDrive - <org>" component, or
// a trailing "OneDrive".
func IsOneDrivePath(path string) bool {
	norm := strings.ReplaceAll(path, "\\", "/")
	for _, seg := range strings.Split(norm, "/") {
		if seg == "OneDrive" || strings.HasPrefix(seg, "OneDrive - ") {
			return true
		}
	}
	return false
}
