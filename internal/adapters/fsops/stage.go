// Package fsops implements the filesystem fixups around the build steps:
// artifact staging and manifest patching.
package fsops

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
)

// EnsureAlias makes wantPath exist by creating it as a symbolic link to
// havePath. It is a no-op when wantPath already exists, so repeated runs are
// idempotent. There is no copy fallback: on filesystems that forbid symbolic
// links the link error surfaces (known limitation).
func EnsureAlias(havePath, wantPath string) error {
	if _, err := os.Lstat(wantPath); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to probe alias"), "path", wantPath)
	}

	if _, err := os.Stat(havePath); err != nil {
		return zerr.With(zerr.Wrap(err, "alias source missing"), "path", havePath)
	}

	if err := os.Symlink(havePath, wantPath); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create alias"), "path", wantPath)
	}
	return nil
}
