package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/airlift-sh/airlift/internal/pytool"
)

// cliRunner fakes child-process execution for command tests. Output calls
// answer the python version probe and successive freeze snapshots; Run
// calls fail when their argv contains a configured marker.
type cliRunner struct {
	calls         [][]string
	failOn        map[string]error
	freezes       []string
	freezeIndex   int
	pythonVersion string
}

func (r *cliRunner) matchErr(argv []string) error {
	joined := strings.Join(argv, " ")
	for marker, err := range r.failOn {
		if strings.Contains(joined, marker) {
			return err
		}
	}
	return nil
}

func (r *cliRunner) Run(_ context.Context, name string, args ...string) error {
	argv := append([]string{name}, args...)
	r.calls = append(r.calls, argv)
	return r.matchErr(argv)
}

func (r *cliRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	argv := append([]string{name}, args...)
	r.calls = append(r.calls, argv)
	joined := strings.Join(argv, " ")
	if strings.Contains(joined, "version_info") {
		version := r.pythonVersion
		if version == "" {
			version = "3.12"
		}
		return version, r.matchErr(argv)
	}
	if strings.Contains(joined, "freeze") {
		var snapshot string
		if r.freezeIndex < len(r.freezes) {
			snapshot = r.freezes[r.freezeIndex]
		}
		r.freezeIndex++
		return snapshot, r.matchErr(argv)
	}
	return "", r.matchErr(argv)
}

func (r *cliRunner) joinedCalls() []string {
	joined := make([]string, 0, len(r.calls))
	for _, call := range r.calls {
		joined = append(joined, strings.Join(call, " "))
	}
	return joined
}

// withFakeTool wires the discover and runner seams to a pip tool backed by
// the given fake runner.
func withFakeTool(t *testing.T, runner pytool.Runner) {
	t.Helper()
	origDiscover := discoverToolFunc
	origNewRunner := newRunnerFunc
	discoverToolFunc = func(bool) (*pytool.Tool, error) {
		return pytool.Pip("/usr/bin/python"), nil
	}
	newRunnerFunc = func(*cobra.Command) pytool.Runner {
		return runner
	}
	t.Cleanup(func() {
		discoverToolFunc = origDiscover
		newRunnerFunc = origNewRunner
	})
}

// runCLI executes the root command with args and returns stdout, stderr,
// and the command error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeConfigFile writes an airlift.toml fragment into a temp dir and
// returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "airlift.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
