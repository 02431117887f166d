package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/cargo"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/cmake"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/fsops"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/meson"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"go.trai.ch/zerr"
)

// Orchestration target names.
const (
	TargetRestoreSubmodules  = "restore-submodules"
	TargetRestoreNative      = "restore-native"
	TargetZlib               = "zlib"
	TargetLibpng             = "libpng"
	TargetFreetype           = "freetype"
	TargetHarfbuzz           = "harfbuzz"
	TargetPlutosvg           = "plutosvg"
	TargetSDL                = "sdl"
	TargetNativeGlue         = "native-glue"
	TargetSample             = "sample"
	TargetRuntime            = "runtime"
	TargetAll                = "all"
	TargetClean              = "clean"
	TargetUpdateVersionFiles = "update-version-files"
)

// glueID is the native glue library binding the svg rasterizer into
// FreeType's ot-svg module.
const glueID = "pluto_ft_bind"

// samplePackage is the crate built by the sample target.
const samplePackage = "wscb-sample"

// buildGraph declares every orchestration target. Library specs and targets
// are constructed once per run from the immutable run context; the only
// mutable state the actions touch afterwards is the filesystem.
func (a *App) buildGraph() (*domain.Graph, error) {
	layout := a.runCtx.Layout
	cfg := a.runCtx.Configuration()

	cmakeAdapter := cmake.New(a.runner, a.resolver, a.cache, a.logger, cfg, a.toolchainFile())
	mesonAdapter := meson.New(a.runner, a.resolver, a.toolchain, a.cache, a.logger, cfg)
	cargoAdapter := cargo.New(a.runner, a.resolver, layout.Root, cfg)

	install := layout.InstallDir()
	pkgConfigDir := filepath.Join(install, "lib", "pkgconfig")

	g := domain.NewGraph()
	var firstErr error
	add := func(name string, deps []string, skip func() bool, action func(ctx context.Context) error) {
		if firstErr != nil {
			return
		}
		depNames := make([]domain.InternedString, len(deps))
		for i, d := range deps {
			depNames[i] = domain.NewInternedString(d)
		}
		firstErr = g.AddTarget(&domain.Target{
			Name:         domain.NewInternedString(name),
			Dependencies: depNames,
			Skip:         skip,
			Action:       action,
		})
	}

	add(TargetRestoreSubmodules, nil,
		func() bool {
			_, err := os.Stat(filepath.Join(layout.Root, ".gitmodules"))
			return err != nil
		},
		func(ctx context.Context) error {
			git, err := a.resolver.ResolveFirst("git")
			if err != nil {
				return zerr.Wrap(err, "failed to resolve git")
			}
			return a.runner.Run(ctx, domain.Invocation{
				Executable: git,
				Args:       []string{"submodule", "update", "--init", "--recursive"},
				Dir:        layout.Root,
			})
		})

	add(TargetRestoreNative, []string{TargetRestoreSubmodules}, nil,
		func(_ context.Context) error {
			for _, dir := range []string{
				filepath.Join(layout.Root, "build-"+string(cfg)),
				install,
				layout.NativeArtifactDir(),
			} {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return zerr.Wrap(err, "failed to create build directories")
				}
			}
			return nil
		})

	add(TargetZlib, []string{TargetRestoreNative}, nil,
		func(ctx context.Context) error {
			if err := cmakeAdapter.Build(ctx, layout.Library(TargetZlib), []string{
				"-DZLIB_BUILD_EXAMPLES=OFF",
			}); err != nil {
				return err
			}
			// MSVC builds emit zlibstatic.lib; downstream find scripts expect
			// zlib.lib.
			if a.runCtx.Platform.Family == domain.FamilyWindows {
				libDir := filepath.Join(install, "lib")
				return fsops.EnsureAlias(
					filepath.Join(libDir, "zlibstatic.lib"),
					filepath.Join(libDir, "zlib.lib"),
				)
			}
			return nil
		})

	add(TargetLibpng, []string{TargetZlib}, nil,
		func(ctx context.Context) error {
			return cmakeAdapter.Build(ctx, layout.Library(TargetLibpng), []string{
				"-DPNG_SHARED=OFF",
				"-DPNG_STATIC=ON",
				"-DPNG_TESTS=OFF",
				"-DPNG_TOOLS=OFF",
				"-DZLIB_ROOT=" + install,
			})
		})

	add(TargetFreetype, []string{TargetZlib, TargetLibpng}, nil,
		func(ctx context.Context) error {
			return cmakeAdapter.Build(ctx, layout.Library(TargetFreetype), []string{
				"-DBUILD_SHARED_LIBS=OFF",
				"-DFT_REQUIRE_ZLIB=ON",
				"-DFT_REQUIRE_PNG=ON",
				"-DFT_DISABLE_HARFBUZZ=ON",
				"-DFT_DISABLE_BZIP2=ON",
				"-DFT_DISABLE_BROTLI=ON",
				"-DCMAKE_PREFIX_PATH=" + install,
			})
		})

	add(TargetHarfbuzz, []string{TargetFreetype}, nil,
		func(ctx context.Context) error {
			return mesonAdapter.Build(ctx, layout.Library(TargetHarfbuzz), []string{
				"-Dfreetype=enabled",
				"-Dglib=disabled",
				"-Dgobject=disabled",
				"-Dcairo=disabled",
				"-Dicu=disabled",
				"-Dtests=disabled",
				"-Ddocs=disabled",
				"--pkg-config-path", pkgConfigDir,
			})
		})

	add(TargetPlutosvg, []string{TargetFreetype}, nil,
		func(ctx context.Context) error {
			return mesonAdapter.Build(ctx, layout.Library(TargetPlutosvg), []string{
				"-Dfreetype=enabled",
				"-Dexamples=disabled",
				"-Dtests=disabled",
				"--pkg-config-path", pkgConfigDir,
			})
		})

	add(TargetSDL, []string{TargetRestoreNative}, nil,
		func(ctx context.Context) error {
			return cmakeAdapter.Build(ctx, layout.Library(TargetSDL), []string{
				"-DSDL_SHARED=OFF",
				"-DSDL_STATIC=ON",
				"-DSDL_TEST_LIBRARY=OFF",
				"-DSDL_EXAMPLES=OFF",
			})
		})

	add(TargetNativeGlue, []string{TargetFreetype, TargetHarfbuzz, TargetPlutosvg, TargetSDL}, nil,
		func(ctx context.Context) error {
			glue := layout.GlueLibrary(glueID)
			if err := cmakeAdapter.Build(ctx, glue, []string{
				"-DBUILD_SHARED_LIBS=OFF",
				"-DCMAKE_PREFIX_PATH=" + install,
			}); err != nil {
				return err
			}
			// The cargo build links against wscb_native; the glue project
			// installs its archive under the upstream name.
			libDir := filepath.Join(glue.InstallDir, "lib")
			return fsops.EnsureAlias(
				filepath.Join(libDir, a.runCtx.Platform.StaticLibName(glueID)),
				filepath.Join(libDir, a.runCtx.Platform.StaticLibName("wscb_native")),
			)
		})

	add(TargetSample, []string{TargetNativeGlue},
		func() bool { return !a.runCtx.BuildSample },
		func(ctx context.Context) error {
			return cargoAdapter.BuildPackage(ctx, samplePackage)
		})

	add(TargetRuntime, []string{TargetNativeGlue}, nil,
		func(ctx context.Context) error {
			return cargoAdapter.BuildWorkspace(ctx)
		})

	add(TargetAll, []string{TargetRuntime, TargetSample}, nil, nil)

	add(TargetClean, nil, nil,
		func(_ context.Context) error {
			for _, dir := range []string{
				filepath.Join(layout.Root, "build-"+string(cfg)),
				install,
				layout.ArtifactDir(),
			} {
				if err := os.RemoveAll(dir); err != nil {
					return zerr.Wrap(err, "failed to remove directory")
				}
			}
			return nil
		})

	add(TargetUpdateVersionFiles, nil, nil,
		func(_ context.Context) error {
			if a.runCtx.Version == "" {
				return zerr.New("no version configured")
			}
			return fsops.PatchManifestFile(filepath.Join(layout.Root, "Cargo.toml"), a.runCtx.Version)
		})

	if firstErr != nil {
		return nil, firstErr
	}
	return g, nil
}

// toolchainFile returns the shared CMake toolchain description when the
// repository carries one.
func (a *App) toolchainFile() string {
	path := filepath.Join(a.runCtx.Layout.Root, "native", "toolchain.cmake")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
