// Package cache implements the sentinel-file install cache.
package cache

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports"
	"go.trai.ch/zerr"
)

// Guard implements ports.InstallCache. Cached state is derived solely from
// the existence of the sentinel file under the library's install directory.
// The sentinel is a binary marker, not a content hash of the options that
// produced the install: changing a library's build flags without clearing its
// trees silently reuses the prior artifacts.
//
// Two orchestration runs racing on one install root can both observe "not
// cached" and both build; no inter-process locking exists.
type Guard struct {
	logger        ports.Logger
	configuration domain.Configuration
}

// NewGuard creates a Guard for the given configuration.
func NewGuard(logger ports.Logger, configuration domain.Configuration) *Guard {
	return &Guard{
		logger:        logger,
		configuration: configuration,
	}
}

// IsCached reports whether the library's sentinel exists. Any probe error,
// including the install directory not existing yet, is treated as "not
// cached" rather than propagated.
func (g *Guard) IsCached(lib domain.LibrarySpec) bool {
	info, err := os.Stat(lib.SentinelPath())
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// MarkCached creates the sentinel after a successful install. The body is a
// stamp of the library id and configuration for diagnostics; only the file's
// existence carries meaning.
func (g *Guard) MarkCached(lib domain.LibrarySpec) error {
	if err := os.MkdirAll(lib.InstallDir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create install directory")
	}

	stamp := fmt.Sprintf("%016x\n", xxhash.Sum64String(lib.ID+"@"+string(g.configuration)))
	if err := os.WriteFile(lib.SentinelPath(), []byte(stamp), 0o644); err != nil { //nolint:gosec // marker file
		return zerr.With(zerr.Wrap(err, "failed to write sentinel"), "library", lib.ID)
	}

	g.logger.Info("cached " + lib.ID)
	return nil
}
