package ports

import "github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"

// InstallCache guards per-library build steps with an install sentinel.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type InstallCache interface {
	// IsCached reports whether the library is already installed for the
	// current configuration. Probe errors are treated as "not cached".
	IsCached(lib domain.LibrarySpec) bool

	// MarkCached records a completed install by creating the sentinel file.
	MarkCached(lib domain.LibrarySpec) error
}
