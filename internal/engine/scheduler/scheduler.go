// Package scheduler implements the dependency-ordered target executor.
package scheduler

import (
	"context"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scheduler runs every transitive dependency of a requested target before the
// target itself, each at most once per run. Execution is strictly sequential:
// a target's action always observes the filesystem effects of its
// dependencies because those actions have already returned.
type Scheduler struct {
	logger   ports.Logger
	reporter ports.Reporter
}

// New creates a Scheduler.
func New(logger ports.Logger, reporter ports.Reporter) *Scheduler {
	return &Scheduler{
		logger:   logger,
		reporter: reporter,
	}
}

// Execute validates the whole graph, then runs the transitive closure of the
// named target in dependency order. Validation detects cycles and missing
// dependencies before any action has run. Any action failure aborts the run
// immediately; nothing is rolled back, and re-invocation resumes cheaply past
// targets whose install sentinels exist.
func (s *Scheduler) Execute(ctx context.Context, g *domain.Graph, target string) error {
	if err := g.Validate(); err != nil {
		return err
	}

	name := domain.NewInternedString(target)
	if _, ok := g.Lookup(name); !ok {
		return zerr.With(domain.ErrTargetNotFound, "target", target)
	}

	reach := g.Reachable(name)

	for t := range g.Walk() {
		if !reach[t.Name] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.runTarget(ctx, t); err != nil {
			return err
		}
	}

	return nil
}

func (s *Scheduler) runTarget(ctx context.Context, t domain.Target) error {
	// The predicate is evaluated here, not at graph construction time, so it
	// can observe state produced by dependency actions that just ran.
	if t.Skip != nil && t.Skip() {
		s.logger.Info("skipping " + t.Name.String())
		s.reporter.TargetSkipped(t.Name.String())
		return nil
	}

	if t.Action == nil {
		return nil
	}

	s.logger.Info("running " + t.Name.String())
	s.reporter.TargetStarted(t.Name.String())

	err := t.Action(ctx)
	s.reporter.TargetCompleted(t.Name.String(), err)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "target failed"), "target", t.Name.String())
	}
	return nil
}
