package toolchain_test

import (
	"path/filepath"
	"testing"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/toolchain"
	"github.com/stretchr/testify/require"
)

func TestDeriveToolchain_Clang(t *testing.T) {
	dir := t.TempDir()
	cc := writeTool(t, dir, "clang")

	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(dir))

	tc, err := r.DeriveToolchain("clang")
	require.NoError(t, err)
	require.Equal(t, cc, tc.CC)
	require.Equal(t, filepath.Join(dir, "clang++"), tc.CXX)
	require.Equal(t, filepath.Join(dir, "llvm-ar"), tc.AR)
	require.Equal(t, filepath.Join(dir, "llvm-ranlib"), tc.Ranlib)
}

func TestDeriveToolchain_VersionedClang(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "clang-17")

	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(dir))

	tc, err := r.DeriveToolchain("clang-17")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "clang++-17"), tc.CXX)
	require.Equal(t, filepath.Join(dir, "llvm-ar-17"), tc.AR)
	require.Equal(t, filepath.Join(dir, "llvm-ranlib-17"), tc.Ranlib)
}

func TestDeriveToolchain_Gcc(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "gcc")

	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(dir))

	tc, err := r.DeriveToolchain("gcc")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "g++"), tc.CXX)
	require.Equal(t, filepath.Join(dir, "gcc-ar"), tc.AR)
	require.Equal(t, filepath.Join(dir, "gcc-ranlib"), tc.Ranlib)
}

func TestDeriveToolchain_SiblingsNotProbed(t *testing.T) {
	// Only the compiler itself must exist; siblings are derived by name.
	dir := t.TempDir()
	writeTool(t, dir, "clang")

	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(dir))

	tc, err := r.DeriveToolchain("clang")
	require.NoError(t, err)
	require.NotEmpty(t, tc.CXX)
}

func TestDeriveToolchain_UnknownFamily(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "tcc")

	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(dir))

	_, err := r.DeriveToolchain("tcc")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unrecognized compiler family")
}

func TestDeriveToolchain_CompilerMissing(t *testing.T) {
	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(t.TempDir()))

	_, err := r.DeriveToolchain("clang")
	require.Error(t, err)
}

func TestToolchainEnv(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "clang")

	r := toolchain.NewResolver(unixPlatform(), "", nil, toolchain.WithSearchPath(dir))

	tc, err := r.DeriveToolchain("clang")
	require.NoError(t, err)

	env := tc.Env()
	require.Equal(t, tc.CC, env["CC"])
	require.Equal(t, tc.CXX, env["CXX"])
	require.Equal(t, tc.AR, env["AR"])
	require.Equal(t, tc.Ranlib, env["RANLIB"])
}
