package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/adapters/shell"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRunner(t *testing.T) *shell.Runner {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests shell out to sh")
	}
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return shell.NewRunner(logger, domain.CurrentPlatform())
}

func TestRunner_Success(t *testing.T) {
	r := newRunner(t)

	err := r.Run(context.Background(), domain.Invocation{
		Executable: "sh",
		Args:       []string{"-c", "exit 0"},
	})
	require.NoError(t, err)
}

func TestRunner_NonZeroExit(t *testing.T) {
	r := newRunner(t)

	err := r.Run(context.Background(), domain.Invocation{
		Executable: "sh",
		Args:       []string{"-c", "exit 2"},
	})
	require.ErrorIs(t, err, domain.ErrProcessFailed)
}

func TestRunner_MissingExecutable(t *testing.T) {
	r := newRunner(t)

	err := r.Run(context.Background(), domain.Invocation{
		Executable: "wscb-no-such-binary",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrProcessFailed)
}

func TestRunner_WorkingDirectory(t *testing.T) {
	r := newRunner(t)
	dir := t.TempDir()

	err := r.Run(context.Background(), domain.Invocation{
		Executable: "sh",
		Args:       []string{"-c", "pwd > cwd.txt"},
		Dir:        dir,
	})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "cwd.txt"))
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "cwd.txt"))
	require.NotEmpty(t, got)
}

func TestRunner_EnvOverridesMergedOverInherited(t *testing.T) {
	r := newRunner(t)
	dir := t.TempDir()
	t.Setenv("WSCB_RUNNER_TEST", "inherited")

	err := r.Run(context.Background(), domain.Invocation{
		Executable: "sh",
		Args:       []string{"-c", `printf '%s:%s' "$WSCB_RUNNER_TEST" "$CC" > env.txt`},
		Dir:        dir,
		Env: map[string]string{
			"WSCB_RUNNER_TEST": "overridden",
			"CC":               "/usr/bin/clang",
		},
	})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "env.txt"))
	require.NoError(t, err)
	require.Equal(t, "overridden:/usr/bin/clang", string(got))
}

func TestRunner_ArgumentsAreNotShellInterpreted(t *testing.T) {
	r := newRunner(t)
	dir := t.TempDir()

	// The argument reaches the child verbatim, spaces and metacharacters
	// included.
	err := r.Run(context.Background(), domain.Invocation{
		Executable: "sh",
		Args:       []string{"-c", `printf '%s' "$1" > arg.txt`, "sh", "a b; $HOME"},
		Dir:        dir,
	})
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "arg.txt"))
	require.NoError(t, err)
	require.Equal(t, "a b; $HOME", string(got))
}

func TestRunner_ContextCancellation(t *testing.T) {
	r := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, domain.Invocation{
		Executable: "sh",
		Args:       []string{"-c", "sleep 10"},
	})
	require.Error(t, err)
}
