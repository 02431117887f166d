package domain_test

import (
	"testing"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestPlatform_ExecutableSuffixes_Windows(t *testing.T) {
	p := domain.NewPlatform("windows", ".EXE;.CMD")

	// Registered extensions are tried both as given and lower-cased.
	require.Equal(t, []string{".EXE", ".exe", ".CMD", ".cmd"}, p.ExecutableSuffixes())
}

func TestPlatform_ExecutableSuffixes_Unix(t *testing.T) {
	p := domain.NewPlatform("linux", "")
	require.Equal(t, []string{""}, p.ExecutableSuffixes())
}

func TestPlatform_ExecutableName(t *testing.T) {
	win := domain.NewPlatform("windows", "")
	require.Equal(t, "cmake.exe", win.ExecutableName("cmake"))
	require.Equal(t, "cmake.bat", win.ExecutableName("cmake.bat"))

	linux := domain.NewPlatform("linux", "")
	require.Equal(t, "cmake", linux.ExecutableName("cmake"))
}

func TestPlatform_StaticLibName(t *testing.T) {
	require.Equal(t, "libz.a", domain.NewPlatform("linux", "").StaticLibName("z"))
	require.Equal(t, "z.lib", domain.NewPlatform("windows", "").StaticLibName("z"))
}
