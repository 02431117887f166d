// Package cmake drives the CMake configure/build/install sequence for one
// native library.
package cmake

import (
	"context"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports"
	"go.trai.ch/zerr"
)

// Generator is the fixed build-file generator passed to every configure.
const Generator = "Ninja"

// Adapter composes the tool resolver, process runner, and install cache into
// the three-phase build step for CMake-built libraries.
type Adapter struct {
	runner   ports.ProcessRunner
	resolver ports.ToolResolver
	cache    ports.InstallCache
	logger   ports.Logger

	buildType string
	// toolchainFile, when set, pins compilers and flags for every library so
	// all configure runs agree on one toolchain description.
	toolchainFile string
}

// New creates an Adapter for the given configuration.
func New(
	runner ports.ProcessRunner,
	resolver ports.ToolResolver,
	cache ports.InstallCache,
	logger ports.Logger,
	configuration domain.Configuration,
	toolchainFile string,
) *Adapter {
	return &Adapter{
		runner:        runner,
		resolver:      resolver,
		cache:         cache,
		logger:        logger,
		buildType:     configuration.CMakeBuildType(),
		toolchainFile: toolchainFile,
	}
}

// Build configures, compiles, and installs the library, then marks its
// sentinel. When the cache reports the library installed, no subprocess is
// launched at all.
func (a *Adapter) Build(ctx context.Context, lib domain.LibrarySpec, defines []string) error {
	if a.cache.IsCached(lib) {
		a.logger.Info(lib.ID + " is already installed")
		return nil
	}

	cmake, err := a.resolver.ResolveFirst("cmake")
	if err != nil {
		return zerr.Wrap(err, "failed to resolve cmake")
	}

	configure := []string{
		"-S", lib.SourceDir,
		"-B", lib.BuildDir,
		"-G", Generator,
		"-DCMAKE_BUILD_TYPE=" + a.buildType,
		"-DCMAKE_INSTALL_PREFIX=" + lib.InstallDir,
	}
	if a.toolchainFile != "" {
		configure = append(configure, "--toolchain", a.toolchainFile)
	}
	configure = append(configure, defines...)

	phases := [][]string{
		configure,
		{"--build", lib.BuildDir, "--config", a.buildType},
		{"--install", lib.BuildDir},
	}
	for _, args := range phases {
		inv := domain.Invocation{Executable: cmake, Args: args}
		if err := a.runner.Run(ctx, inv); err != nil {
			return zerr.With(err, "library", lib.ID)
		}
	}

	return a.cache.MarkCached(lib)
}
