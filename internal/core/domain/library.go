package domain

import "path/filepath"

// LibrarySpec describes one native library handled by a build step adapter:
// where its sources live, where it is configured and compiled, and where its
// artifacts are installed. Distinct libraries may share one install root; the
// sentinel file name keeps their cache states apart.
type LibrarySpec struct {
	ID         string
	SourceDir  string
	BuildDir   string
	InstallDir string
}

// SentinelPath is the marker file whose existence records "already installed
// for this configuration".
func (l LibrarySpec) SentinelPath() string {
	return filepath.Join(l.InstallDir, l.ID+"-installed.lock")
}
