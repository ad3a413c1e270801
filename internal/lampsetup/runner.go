package lampsetup

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external programs on the local host.
type Runner interface {
	// Run streams the command's output and returns its exit error.
	Run(ctx context.Context, name string, args ...string) error
	// Output returns the command's combined output.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	Env    []string
	Logger *slog.Logger
}

var _ Runner = (*ExecRunner)(nil)

// NewExecRunner returns a runner that writes command output to stdout and
// stderr and keeps apt from asking questions.
func NewExecRunner(stdout, stderr io.Writer, logger *slog.Logger) *ExecRunner {
	return &ExecRunner{
		Stdout: stdout,
		Stderr: stderr,
		Env:    []string{"DEBIAN_FRONTEND=noninteractive"},
		Logger: logger,
	}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := r.command(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := r.command(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func (r *ExecRunner) command(ctx context.Context, name string, args ...string) *exec.Cmd {
	if r.Logger != nil {
		r.Logger.Debug("exec", "cmd", name, "args", strings.Join(args, " "))
	}
	// #nosec G204 - program and arguments are built by the provisioning steps
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), r.Env...)
	return cmd
}
