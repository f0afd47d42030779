package executor

import (
	"context"
	"errors"
	"os/exec"
	"time"
)

// CommandExecutor shells out to curl and captures stdout and stderr merged,
// the way an operator running the same command in a terminal would see it.
type CommandExecutor struct {
	Path    string
	Timeout time.Duration
}

// NewCommandExecutor creates an executor running the curl binary at path
// ("curl" when empty).
func NewCommandExecutor(path string, timeout time.Duration) *CommandExecutor {
	if path == "" {
		path = "curl"
	}
	return &CommandExecutor{Path: path, Timeout: timeout}
}

// Args returns the curl arguments for r.
func (e *CommandExecutor) Args(r Request) []string {
	args := []string{"-s", "-X", r.Method, r.URL}
	for _, h := range r.Headers {
		args = append(args, "-H", h.Name+": "+h.Value)
	}
	return args
}

// Execute runs curl to completion. Status is the exit code. A binary that
// cannot be started yields the start error as Output.
func (e *CommandExecutor) Execute(ctx context.Context, r Request) (Result, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.Path, e.Args(r)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Output: string(out), Status: exitErr.ExitCode()}, err
		}
		return Result{Output: string(out) + err.Error(), Status: -1}, err
	}
	return Result{Output: string(out)}, nil
}
