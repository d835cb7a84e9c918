// Package folders resolves special user folders (Documents, Downloads,
// Pictures, ...) to absolute paths, honoring OS folder redirection when it
// is present and falling back to the conventional location under the home
// directory when it is not.
package folders

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/hopcli/hop/internal/registry"
)

// Resolver maps special folder keys to absolute paths. A failed or invalid
// redirection lookup is never an error; it degrades to home/fallback.
type Resolver struct {
	fs    afero.Fs
	store registry.Store
	home  string
}

// New creates a Resolver. home must be the user's home directory; it is the
// only input whose absence is fatal to the program, and callers establish
// it before constructing a Resolver.
func New(fs afero.Fs, store registry.Store, home string) *Resolver {
	return &Resolver{fs: fs, store: store, home: home}
}

// Home returns the home directory the resolver was built with.
func (r *Resolver) Home() string {
	return r.home
}

// Resolve returns the absolute path of a special folder. When key is
// non-empty the redirection store is consulted first; the stored value is
// accepted only if, after environment expansion, it is an absolute path to
// an existing filesystem entry. Everything else falls back to
// home/fallbackRel.
func (r *Resolver) Resolve(key, fallbackRel string) string {
	if key != "" && r.store != nil {
		if v, ok := r.store.Lookup(key); ok {
			expanded := ExpandEnv(v)
			if p, ok := r.accept(expanded); ok {
				return p
			}
			log.Debug().Str("key", key).Str("value", v).
				Msg("redirected folder rejected, using fallback")
		}
	}
	return filepath.Join(r.home, fallbackRel)
}

// accept validates a candidate redirection value.
func (r *Resolver) accept(p string) (string, bool) {
	p = strings.TrimSpace(p)
	if p == "" || !filepath.IsAbs(p) {
		return "", false
	}
	p = filepath.Clean(p)
	if _, err := r.fs.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

// Exists reports whether path names an existing filesystem entry.
func (r *Resolver) Exists(path string) bool {
	_, err := r.fs.Stat(path)
	return err == nil
}

var winEnvRef = regexp.MustCompile(`%([^%]+)%`)

// ExpandEnv expands both %NAME% and $NAME environment references.
// Registry values are typically REG_EXPAND_SZ with the Windows form;
// os.ExpandEnv covers the POSIX form. Unset %NAME% references are left
// as-is so validation rejects the unresolved path.
func ExpandEnv(s string) string {
	s = winEnvRef.ReplaceAllStringFunc(s, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return m
	})
	return os.ExpandEnv(s)
}
