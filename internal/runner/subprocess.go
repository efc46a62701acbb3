// Package runner executes external tools (package managers, hook
// managers) as subprocesses.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Result holds the captured output of one tool invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Ok reports whether the tool exited zero.
func (r *Result) Ok() bool {
	return r.ExitCode == 0
}

// Runner runs external commands with a timeout and working directory.
type Runner struct {
	// Timeout is the max execution time.
	// Default: 5 minutes (npm installs are slow on cold caches).
	Timeout time.Duration

	// WorkDir is the working directory for every command.
	WorkDir string

	// Env is additional environment variables.
	Env map[string]string
}

// New creates a runner rooted at workDir.
func New(workDir string) *Runner {
	return &Runner{
		Timeout: 5 * time.Minute,
		WorkDir: workDir,
		Env:     make(map[string]string),
	}
}

// Run executes a command and returns its output. A non-zero exit code is
// reported through the Result, not as an error; errors mean the command
// could not be started or timed out.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if r.WorkDir != "" {
		cmd.Dir = r.WorkDir
	}
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.envSlice()...)
	}

	start := time.Now()
	stdout, err := cmd.Output()
	duration := time.Since(start)

	result := &Result{
		Stdout:   string(stdout),
		Duration: duration,
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.Stderr = string(exitErr.Stderr)
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("failed to execute %s: %w", name, err)
	}

	return result, nil
}

// LookPath reports whether name resolves to an executable on PATH.
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (r *Runner) envSlice() []string {
	result := make([]string, 0, len(r.Env))
	for k, v := range r.Env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}
