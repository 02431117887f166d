package domain

import "path/filepath"

// Configuration is the build configuration selected for a run.
type Configuration string

const (
	// ConfigurationDebug selects unoptimized builds with debug info.
	ConfigurationDebug Configuration = "debug"
	// ConfigurationRelease selects optimized builds.
	ConfigurationRelease Configuration = "release"
)

// CMakeBuildType maps the configuration to CMAKE_BUILD_TYPE spelling.
func (c Configuration) CMakeBuildType() string {
	if c == ConfigurationRelease {
		return "Release"
	}
	return "Debug"
}

// MesonBuildType maps the configuration to meson's buildtype option.
func (c Configuration) MesonBuildType() string {
	if c == ConfigurationRelease {
		return "release"
	}
	return "debug"
}

// Layout derives every per-configuration directory from the repository root:
//
//	{root}/native/{id}              library source trees (submodules)
//	{root}/build-{config}/{id}      out-of-tree build directories
//	{root}/install-{config}         shared install prefix for dependencies
//	{root}/artifact-{config}/native install prefix for the glue library
type Layout struct {
	Root          string
	Configuration Configuration
}

// SourceDir is the submodule source tree for a library.
func (l Layout) SourceDir(id string) string {
	return filepath.Join(l.Root, "native", id)
}

// BuildDir is the per-library out-of-tree build directory.
func (l Layout) BuildDir(id string) string {
	return filepath.Join(l.Root, "build-"+string(l.Configuration), id)
}

// InstallDir is the install prefix shared by all dependency libraries.
func (l Layout) InstallDir() string {
	return filepath.Join(l.Root, "install-"+string(l.Configuration))
}

// ArtifactDir is the per-configuration artifact root.
func (l Layout) ArtifactDir() string {
	return filepath.Join(l.Root, "artifact-"+string(l.Configuration))
}

// NativeArtifactDir is the install prefix owned by the native glue library.
func (l Layout) NativeArtifactDir() string {
	return filepath.Join(l.ArtifactDir(), "native")
}

// Library builds the spec of a dependency library installing into the shared
// prefix.
func (l Layout) Library(id string) LibrarySpec {
	return LibrarySpec{
		ID:         id,
		SourceDir:  l.SourceDir(id),
		BuildDir:   l.BuildDir(id),
		InstallDir: l.InstallDir(),
	}
}

// GlueLibrary builds the spec of the native glue library, whose sources live
// directly under {root}/native and which owns its own install prefix.
func (l Layout) GlueLibrary(id string) LibrarySpec {
	return LibrarySpec{
		ID:         id,
		SourceDir:  filepath.Join(l.Root, "native"),
		BuildDir:   l.BuildDir(id),
		InstallDir: l.NativeArtifactDir(),
	}
}
