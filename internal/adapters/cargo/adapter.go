// Package cargo drives the final language-runtime builds through cargo.
package cargo

import (
	"context"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports"
	"go.trai.ch/zerr"
)

// Adapter invokes cargo for the runtime workspace. Cargo performs its own
// incremental-compilation analysis, so these steps are not cache-guarded.
type Adapter struct {
	runner   ports.ProcessRunner
	resolver ports.ToolResolver

	root    string
	release bool
}

// New creates an Adapter building the workspace rooted at root.
func New(runner ports.ProcessRunner, resolver ports.ToolResolver, root string, configuration domain.Configuration) *Adapter {
	return &Adapter{
		runner:   runner,
		resolver: resolver,
		root:     root,
		release:  configuration == domain.ConfigurationRelease,
	}
}

// BuildWorkspace compiles every crate in the runtime workspace.
func (a *Adapter) BuildWorkspace(ctx context.Context) error {
	return a.build(ctx, "--workspace")
}

// BuildPackage compiles a single crate.
func (a *Adapter) BuildPackage(ctx context.Context, pkg string) error {
	return a.build(ctx, "--package", pkg)
}

func (a *Adapter) build(ctx context.Context, selector ...string) error {
	cargo, err := a.resolver.ResolveFirst("cargo")
	if err != nil {
		return zerr.Wrap(err, "failed to resolve cargo")
	}

	args := append([]string{"build"}, selector...)
	if a.release {
		args = append(args, "--release")
	}

	return a.runner.Run(ctx, domain.Invocation{
		Executable: cargo,
		Args:       args,
		Dir:        a.root,
	})
}
