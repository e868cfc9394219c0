// Package pytool discovers the Python packaging tool (pip or uv) and runs
// it as a child process.
package pytool

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner abstracts child-process execution so installer logic can be tested
// without a Python environment.
type Runner interface {
	// Run executes the command, streaming output to the configured writers.
	// A non-zero exit surfaces as *exec.ExitError.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes the command and returns its captured stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct {
	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command, streaming output.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	return cmd.Run()
}

// Output executes the command and returns trimmed stdout. Stderr streams to
// the configured writer so tool diagnostics stay visible.
func (r ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &buf
	cmd.Stderr = r.stderr()
	err := cmd.Run()
	return strings.TrimRight(buf.String(), "\n"), err
}

func (r ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
