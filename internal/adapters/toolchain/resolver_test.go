package toolchain_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/toolchain"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func writeTool(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
	return path
}

func searchPath(dirs ...string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}

func unixPlatform() domain.Platform {
	return domain.NewPlatform("linux", "")
}

func TestResolver_FindsToolOnSearchPath(t *testing.T) {
	dir := t.TempDir()
	want := writeTool(t, dir, "cmake")

	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(searchPath(dir)))

	got, err := r.ResolveFirst("cmake")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestResolver_PreferredCandidatesFirst(t *testing.T) {
	plain := t.TempDir()
	hinted := filepath.Join(t.TempDir(), "msys64")
	require.NoError(t, os.MkdirAll(hinted, 0o750))

	first := writeTool(t, plain, "cmake")
	preferred := writeTool(t, hinted, "cmake")

	r := toolchain.NewResolver(unixPlatform(), "msys64", nil,
		toolchain.WithSearchPath(searchPath(plain, hinted)))

	// The hinted match outranks the one discovered earlier on the path.
	candidates, err := r.Resolve("cmake")
	require.NoError(t, err)
	require.Equal(t, []string{preferred, first}, candidates)
}

func TestResolver_NoHintKeepsDiscoveryOrder(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	first := writeTool(t, a, "cargo")
	second := writeTool(t, b, "cargo")

	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(searchPath(a, b)))

	candidates, err := r.Resolve("cargo")
	require.NoError(t, err)
	require.Equal(t, []string{first, second}, candidates)
}

func TestResolver_ToolNotFound(t *testing.T) {
	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(t.TempDir()))

	_, err := r.Resolve("no-such-tool")
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestResolver_AbsolutePathBypassesProbing(t *testing.T) {
	// Absolute names are trusted as-is, even when nothing exists there.
	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(""))

	abs := filepath.Join(string(filepath.Separator), "opt", "cmake", "bin", "cmake")
	candidates, err := r.Resolve(abs)
	require.NoError(t, err)
	require.Equal(t, []string{abs}, candidates)
}

func TestResolver_OverrideWins(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "cmake")

	r := toolchain.NewResolver(unixPlatform(), "", map[string]string{"cmake": "/custom/cmake"},
		toolchain.WithSearchPath(searchPath(dir)))

	candidates, err := r.Resolve("cmake")
	require.NoError(t, err)
	require.Equal(t, []string{"/custom/cmake"}, candidates)
}

func TestResolver_IgnoresNonExecutableFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pipx"), []byte("data"), 0o644))

	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(searchPath(dir)))

	_, err := r.Resolve("pipx")
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestResolver_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cmake"), 0o755))

	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(searchPath(dir)))

	_, err := r.Resolve("cmake")
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}
