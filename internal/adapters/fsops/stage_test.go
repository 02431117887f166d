package fsops_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/fsops"
	"github.com/stretchr/testify/require"
)

func TestEnsureAlias_CreatesLink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs a privilege on windows")
	}
	dir := t.TempDir()
	have := filepath.Join(dir, "zlibstatic.lib")
	want := filepath.Join(dir, "zlib.lib")
	require.NoError(t, os.WriteFile(have, []byte("archive"), 0o644))

	require.NoError(t, fsops.EnsureAlias(have, want))

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	require.Equal(t, "archive", string(data))
}

func TestEnsureAlias_NoopWhenTargetExists(t *testing.T) {
	dir := t.TempDir()
	have := filepath.Join(dir, "libpluto_ft_bind.a")
	want := filepath.Join(dir, "libwscb_native.a")
	require.NoError(t, os.WriteFile(have, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(want, []byte("existing"), 0o644))

	require.NoError(t, fsops.EnsureAlias(have, want))

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	require.Equal(t, "existing", string(data), "an existing target must not be replaced")
}

func TestEnsureAlias_SourceMissing(t *testing.T) {
	dir := t.TempDir()

	err := fsops.EnsureAlias(filepath.Join(dir, "missing.a"), filepath.Join(dir, "alias.a"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "alias source missing")
}

func TestEnsureAlias_Idempotent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs a privilege on windows")
	}
	dir := t.TempDir()
	have := filepath.Join(dir, "a.a")
	want := filepath.Join(dir, "b.a")
	require.NoError(t, os.WriteFile(have, []byte("x"), 0o644))

	require.NoError(t, fsops.EnsureAlias(have, want))
	require.NoError(t, fsops.EnsureAlias(have, want))
}
