package fsops

import (
	"os"
	"strings"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"go.trai.ch/zerr"
)

// Version manifest markers. The patcher owns every line strictly between
// them; everything outside is preserved verbatim.
const (
	VersionBeginMarker = "# wscb-version-begin"
	VersionEndMarker   = "# wscb-version-end"
)

// PatchVersion replaces the lines strictly between beginMarker and endMarker
// in text with a single `version = "..."` line. The marker lines themselves
// and all surrounding text are untouched.
func PatchVersion(text, beginMarker, endMarker, version string) (string, error) {
	lines := strings.Split(text, "\n")

	begin, end := -1, -1
	for i, line := range lines {
		switch {
		case begin < 0 && line == beginMarker:
			begin = i
		case begin >= 0 && end < 0 && line == endMarker:
			end = i
		}
	}
	if begin < 0 || end < 0 {
		return "", zerr.With(zerr.With(domain.ErrMarkerNotFound,
			"begin", beginMarker),
			"end", endMarker)
	}

	patched := make([]string, 0, len(lines))
	patched = append(patched, lines[:begin+1]...)
	patched = append(patched, `version = "`+version+`"`)
	patched = append(patched, lines[end:]...)
	return strings.Join(patched, "\n"), nil
}

// PatchManifestFile rewrites the manifest at path in place.
func PatchManifestFile(path, version string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the layout
	if err != nil {
		return zerr.Wrap(err, "failed to read manifest")
	}

	patched, err := PatchVersion(string(data), VersionBeginMarker, VersionEndMarker, version)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	if err := os.WriteFile(path, []byte(patched), 0o644); err != nil { //nolint:gosec // manifest is project-readable
		return zerr.Wrap(err, "failed to write manifest")
	}
	return nil
}
