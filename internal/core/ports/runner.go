// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
)

// ProcessRunner synchronously invokes an external program.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Run blocks until the child exits, with standard streams inherited so the
	// operator observes build output in real time. A nonzero exit code is
	// returned as an error carrying the exit code and the invoked command.
	Run(ctx context.Context, inv domain.Invocation) error
}
