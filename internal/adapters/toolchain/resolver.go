// Package toolchain resolves external build tools on the search path and
// derives consistent compiler toolchains.
package toolchain

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver implements ports.ToolResolver by walking the PATH directories and
// partitioning matches into preferred and other candidates.
type Resolver struct {
	platform   domain.Platform
	preferHint string
	overrides  map[string]string
	searchPath func() string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSearchPath overrides where the resolver reads the search path from.
// Used in tests.
func WithSearchPath(path string) Option {
	return func(r *Resolver) {
		r.searchPath = func() string { return path }
	}
}

// NewResolver creates a Resolver. overrides maps logical tool names to
// explicit executable paths; preferHint ranks candidates whose path contains
// the substring ahead of all others.
func NewResolver(platform domain.Platform, preferHint string, overrides map[string]string, opts ...Option) *Resolver {
	r := &Resolver{
		platform:   platform,
		preferHint: preferHint,
		overrides:  overrides,
		searchPath: func() string { return os.Getenv("PATH") },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the ordered candidate paths for name. An absolute name (or
// an operator override) is returned as the sole candidate without probing.
// Otherwise every search-path directory is probed with every platform
// executable suffix; matches whose path contains the preference hint precede
// all others, and discovery order is kept within each partition.
func (r *Resolver) Resolve(name string) ([]string, error) {
	if override := r.overrides[name]; override != "" {
		return []string{override}, nil
	}
	if filepath.IsAbs(name) {
		return []string{name}, nil
	}

	var preferred, other []string
	seen := make(map[string]bool)
	for _, dir := range filepath.SplitList(r.searchPath()) {
		if dir == "" {
			dir = "."
		}
		for _, suffix := range r.platform.ExecutableSuffixes() {
			candidate := filepath.Join(dir, name+suffix)
			if seen[candidate] || !r.isExecutable(candidate) {
				continue
			}
			seen[candidate] = true
			if r.preferHint != "" && strings.Contains(candidate, r.preferHint) {
				preferred = append(preferred, candidate)
			} else {
				other = append(other, candidate)
			}
		}
	}

	candidates := append(preferred, other...)
	if len(candidates) == 0 {
		return nil, zerr.With(domain.ErrToolNotFound, "tool", name)
	}
	return candidates, nil
}

// ResolveFirst returns the best candidate for name.
func (r *Resolver) ResolveFirst(name string) (string, error) {
	candidates, err := r.Resolve(name)
	if err != nil {
		return "", err
	}
	return candidates[0], nil
}

// isExecutable reports whether path names a regular file the current process
// could execute. On the Windows family existence suffices; elsewhere an
// execute bit is required.
func (r *Resolver) isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if r.platform.Family == domain.FamilyWindows {
		return true
	}
	return info.Mode()&0o111 != 0
}
