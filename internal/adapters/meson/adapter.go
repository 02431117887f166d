// Package meson drives the meson setup/compile/install sequence for one
// native library through the pipx tool runner.
package meson

import (
	"context"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports"
	"go.trai.ch/zerr"
)

// ccName is the canonical compiler the toolchain is derived from.
const ccName = "clang"

// Adapter composes the tool resolver, toolchain factory, process runner, and
// install cache into the three-phase build step for Meson-built libraries.
//
// Meson chooses compilers from the environment, so the adapter derives CC,
// CXX, AR, and RANLIB from one resolved compiler and injects them into every
// invocation. That keeps Meson-built and CMake-built libraries on a matching
// toolchain even though the two tools have separate invocation conventions.
type Adapter struct {
	runner    ports.ProcessRunner
	resolver  ports.ToolResolver
	toolchain ports.ToolchainFactory
	cache     ports.InstallCache
	logger    ports.Logger

	buildType string
}

// New creates an Adapter for the given configuration.
func New(
	runner ports.ProcessRunner,
	resolver ports.ToolResolver,
	toolchain ports.ToolchainFactory,
	cache ports.InstallCache,
	logger ports.Logger,
	configuration domain.Configuration,
) *Adapter {
	return &Adapter{
		runner:    runner,
		resolver:  resolver,
		toolchain: toolchain,
		cache:     cache,
		logger:    logger,
		buildType: configuration.MesonBuildType(),
	}
}

// Build runs meson setup, compile, and install for the library, then marks
// its sentinel. When the cache reports the library installed, no subprocess
// is launched at all.
func (a *Adapter) Build(ctx context.Context, lib domain.LibrarySpec, options []string) error {
	if a.cache.IsCached(lib) {
		a.logger.Info(lib.ID + " is already installed")
		return nil
	}

	pipx, err := a.resolver.ResolveFirst("pipx")
	if err != nil {
		return zerr.Wrap(err, "failed to resolve pipx")
	}

	tc, err := a.toolchain.DeriveToolchain(ccName)
	if err != nil {
		return err
	}
	env := tc.Env()

	setup := []string{
		"run", "meson", "setup", lib.BuildDir, lib.SourceDir,
		"--prefix", lib.InstallDir,
		"--buildtype", a.buildType,
		"--default-library", "static",
	}
	setup = append(setup, options...)

	phases := [][]string{
		setup,
		{"run", "meson", "compile", "-C", lib.BuildDir},
		{"run", "meson", "install", "-C", lib.BuildDir},
	}
	for _, args := range phases {
		inv := domain.Invocation{Executable: pipx, Args: args, Env: env}
		if err := a.runner.Run(ctx, inv); err != nil {
			return zerr.With(err, "library", lib.ID)
		}
	}

	return a.cache.MarkCached(lib)
}
