package fsops_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/fsops"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/stretchr/testify/require"
)

const manifest = `[package]
name = "wscb-type"
# wscb-version-begin
version = "0.1.0"
# wscb-version-end
edition = "2021"

[dependencies]
libc = "0.2"
`

func TestPatchVersion_ReplacesOnlyMarkedRegion(t *testing.T) {
	got, err := fsops.PatchVersion(manifest, fsops.VersionBeginMarker, fsops.VersionEndMarker, "9.9.9")
	require.NoError(t, err)

	require.Equal(t, `[package]
name = "wscb-type"
# wscb-version-begin
version = "9.9.9"
# wscb-version-end
edition = "2021"

[dependencies]
libc = "0.2"
`, got)
}

func TestPatchVersion_MultiLineRegionCollapsesToOne(t *testing.T) {
	text := "# wscb-version-begin\nold\nlines\nhere\n# wscb-version-end"

	got, err := fsops.PatchVersion(text, fsops.VersionBeginMarker, fsops.VersionEndMarker, "1.2.3")
	require.NoError(t, err)
	require.Equal(t, "# wscb-version-begin\nversion = \"1.2.3\"\n# wscb-version-end", got)
}

func TestPatchVersion_Idempotent(t *testing.T) {
	once, err := fsops.PatchVersion(manifest, fsops.VersionBeginMarker, fsops.VersionEndMarker, "2.0.0")
	require.NoError(t, err)

	twice, err := fsops.PatchVersion(once, fsops.VersionBeginMarker, fsops.VersionEndMarker, "2.0.0")
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestPatchVersion_MissingBeginMarker(t *testing.T) {
	_, err := fsops.PatchVersion("version = \"1.0\"\n# wscb-version-end",
		fsops.VersionBeginMarker, fsops.VersionEndMarker, "2.0.0")
	require.ErrorIs(t, err, domain.ErrMarkerNotFound)
}

func TestPatchVersion_MissingEndMarker(t *testing.T) {
	_, err := fsops.PatchVersion("# wscb-version-begin\nversion = \"1.0\"",
		fsops.VersionBeginMarker, fsops.VersionEndMarker, "2.0.0")
	require.ErrorIs(t, err, domain.ErrMarkerNotFound)
}

func TestPatchVersion_EndBeforeBeginIsNotARegion(t *testing.T) {
	_, err := fsops.PatchVersion("# wscb-version-end\n# wscb-version-begin",
		fsops.VersionBeginMarker, fsops.VersionEndMarker, "2.0.0")
	require.ErrorIs(t, err, domain.ErrMarkerNotFound)
}

func TestPatchManifestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	require.NoError(t, fsops.PatchManifestFile(path, "3.1.4"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `version = "3.1.4"`)
	require.NotContains(t, string(data), `version = "0.1.0"`)
}

func TestPatchManifestFile_MissingFile(t *testing.T) {
	err := fsops.PatchManifestFile(filepath.Join(t.TempDir(), "Cargo.toml"), "1.0.0")
	require.Error(t, err)
}
