package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	oerrors "github.com/dslectures/coursekit/internal/errors"
	"github.com/dslectures/coursekit/internal/output"
)

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("COURSEKIT_ROOT", "")
	t.Setenv("COURSEKIT_CONFIG", "")

	var buf bytes.Buffer
	restore := output.SetStdout(&buf)
	defer restore()

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return buf.String(), err
}

// configPath returns a config path in a fresh temp dir.
func configPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %T: %v", err, err)
	require.Equal(t, code, exitErr.Code, "error: %v", err)
}
