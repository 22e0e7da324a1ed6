package run

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"barra/internal/logging"
	"barra/internal/ports"
)

// ExecRunner implements ports.CommandRunner with os/exec. Each call gets its
// own context deadline so a hung command cannot freeze the render path; the
// process is killed when the deadline passes.
type ExecRunner struct{}

// Verify interface compliance at compile time
var _ ports.CommandRunner = (*ExecRunner)(nil)

// NewExecRunner creates a new ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args in dir and returns trimmed stdout.
// Non-zero exit, timeout and spawn errors all come back as ok=false.
func (r *ExecRunner) Run(dir string, timeout time.Duration, name string, args ...string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		logging.Logger.Debug("Command failed",
			"command", name,
			"args", strings.Join(args, " "),
			"error", err)
		return "", false
	}

	return strings.TrimSpace(string(output)), true
}
