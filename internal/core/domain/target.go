package domain

import "context"

// Target is a named unit of orchestration work with declared upstream
// dependencies. Its action runs at most once per run, after every dependency
// has finished.
type Target struct {
	Name         InternedString
	Dependencies []InternedString

	// Skip is evaluated by the scheduler immediately before the action would
	// run, never at graph construction time, so it may observe filesystem
	// state produced by dependency actions. Nil means never skip.
	Skip func() bool

	// Action performs the target's side effects. Nil for pure aggregates.
	Action func(ctx context.Context) error
}
