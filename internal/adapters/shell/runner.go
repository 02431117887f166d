// Package shell provides the process runner adapter.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger   ports.Logger
	platform domain.Platform
}

// NewRunner creates a Runner for the given platform.
func NewRunner(logger ports.Logger, platform domain.Platform) *Runner {
	return &Runner{
		logger:   logger,
		platform: platform,
	}
}

// Run invokes the program with a literal argument vector; arguments are never
// reinterpreted by a shell. Standard streams are inherited so the operator
// sees child output in real time. Env entries are merged over the inherited
// environment. The call blocks until the child exits; no timeout exists, so a
// hung child hangs the run.
func (r *Runner) Run(ctx context.Context, inv domain.Invocation) error {
	executable := inv.Executable
	if filepath.Ext(executable) == "" {
		executable = r.platform.ExecutableName(executable)
	}

	cmd := exec.CommandContext(ctx, executable, inv.Args...) //nolint:gosec // argv is assembled by the build adapters
	cmd.Dir = inv.Dir
	cmd.Env = mergeEnvironment(os.Environ(), inv.Env)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	r.logger.Info("exec: " + inv.String())

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return zerr.With(zerr.With(domain.ErrProcessFailed,
				"command", inv.String()),
				"exit_code", exitErr.ExitCode())
		}
		return zerr.With(zerr.Wrap(err, "failed to start process"), "command", inv.String())
	}

	return nil
}

// mergeEnvironment applies the override map on top of the inherited
// environment, keyed case-sensitively.
func mergeEnvironment(inherited []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return inherited
	}

	merged := make([]string, 0, len(inherited)+len(overrides))
	seen := make(map[string]bool, len(overrides))
	for _, entry := range inherited {
		k, _, ok := strings.Cut(entry, "=")
		if ok {
			if v, replaced := overrides[k]; replaced {
				merged = append(merged, k+"="+v)
				seen[k] = true
				continue
			}
		}
		merged = append(merged, entry)
	}
	for k, v := range overrides {
		if !seen[k] {
			merged = append(merged, k+"="+v)
		}
	}
	return merged
}
