// Package app implements the application layer: it owns the target graph and
// drives the scheduler.
package app

import (
	"context"
	"slices"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App wires the run context, the build step adapters, and the scheduler.
type App struct {
	runCtx    domain.RunContext
	sched     *scheduler.Scheduler
	runner    ports.ProcessRunner
	resolver  ports.ToolResolver
	toolchain ports.ToolchainFactory
	cache     ports.InstallCache
	logger    ports.Logger
	reporter  ports.Reporter
}

// New creates an App instance.
func New(
	runCtx domain.RunContext,
	sched *scheduler.Scheduler,
	runner ports.ProcessRunner,
	resolver ports.ToolResolver,
	toolchain ports.ToolchainFactory,
	cache ports.InstallCache,
	logger ports.Logger,
	reporter ports.Reporter,
) *App {
	return &App{
		runCtx:    runCtx,
		sched:     sched,
		runner:    runner,
		resolver:  resolver,
		toolchain: toolchain,
		cache:     cache,
		logger:    logger,
		reporter:  reporter,
	}
}

// Run executes the requested targets in order. Each target's transitive
// dependencies run first; any failure aborts the whole run.
func (a *App) Run(ctx context.Context, targetNames []string) error {
	defer func() { _ = a.reporter.Close() }()

	graph, err := a.buildGraph()
	if err != nil {
		return zerr.Wrap(err, "failed to build target graph")
	}

	for _, name := range targetNames {
		if err := a.sched.Execute(ctx, graph, name); err != nil {
			return err
		}
	}
	return nil
}

// TargetNames lists every declared target, sorted.
func (a *App) TargetNames() ([]string, error) {
	graph, err := a.buildGraph()
	if err != nil {
		return nil, err
	}
	if err := graph.Validate(); err != nil {
		return nil, err
	}

	names := make([]string, 0, graph.Len())
	for t := range graph.Walk() {
		names = append(names, t.Name.String())
	}
	slices.Sort(names)
	return names, nil
}
