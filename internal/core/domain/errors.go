package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetAlreadyExists is returned when registering a target under a name
	// that is already taken.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrMissingDependency is returned when a target references a dependency
	// that is not declared in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when graph validation revisits a target that
	// is still on the current traversal path.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTargetNotFound is returned when a requested target is not declared.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrToolNotFound is returned when tool resolution produces no candidate.
	ErrToolNotFound = zerr.New("tool not found")

	// ErrProcessFailed is returned when an invoked program exits nonzero.
	ErrProcessFailed = zerr.New("process failed")

	// ErrMarkerNotFound is returned when a manifest patch cannot locate its
	// begin or end marker line.
	ErrMarkerNotFound = zerr.New("manifest marker not found")
)
