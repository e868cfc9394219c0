package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/pytool"
)

type stubRunner struct {
	output string
	runErr error
	outErr error
}

func (r *stubRunner) Run(context.Context, string, ...string) error {
	return r.runErr
}

func (r *stubRunner) Output(context.Context, string, ...string) (string, error) {
	return r.output, r.outErr
}

func noEnv(string) (string, bool) { return "", false }

func envMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func TestCheckConfigOK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "airlift.toml")
	if err := os.WriteFile(path, []byte("[install]\nextras = \"postgres\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	results, cfg := CheckConfig(config.LoadOptions{ConfigPath: path, LookupEnv: noEnv})
	if len(results) != 1 || results[0].Status != StatusOK {
		t.Fatalf("unexpected results: %+v", results)
	}
	if cfg == nil || cfg.Install.Extras != "postgres" {
		t.Fatalf("config not returned: %+v", cfg)
	}
}

func TestCheckConfigMissingExplicitPath(t *testing.T) {
	results, cfg := CheckConfig(config.LoadOptions{
		ConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		LookupEnv:  noEnv,
	})
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("unexpected results: %+v", results)
	}
	if cfg != nil {
		t.Fatalf("missing explicit config must not return a partial config")
	}
}

func TestCheckConfigValidationFailureReturnsLenientConfig(t *testing.T) {
	results, cfg := CheckConfig(config.LoadOptions{
		LookupEnv: envMap(map[string]string{
			"AIRFLOW_INSTALLATION_METHOD": "conda",
			"AIRFLOW_EXTRAS":              "celery",
		}),
	})
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("unexpected results: %+v", results)
	}
	if !strings.Contains(results[0].Message, "conda") {
		t.Fatalf("validation error not surfaced: %q", results[0].Message)
	}
	if cfg == nil || cfg.Install.Extras != "celery" {
		t.Fatalf("lenient config not returned: %+v", cfg)
	}
}

func TestCheckConfigSyntaxErrorHasNoFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "airlift.toml")
	if err := os.WriteFile(path, []byte("[install\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	results, cfg := CheckConfig(config.LoadOptions{ConfigPath: path, LookupEnv: noEnv})
	if len(results) != 1 || results[0].Status != StatusFail {
		t.Fatalf("unexpected results: %+v", results)
	}
	if cfg != nil {
		t.Fatal("syntax errors must not return a partial config")
	}
}

func TestCheckTooling(t *testing.T) {
	orig := discoverFunc
	t.Cleanup(func() { discoverFunc = orig })

	discoverFunc = func(bool) (*pytool.Tool, error) {
		return pytool.Pip("/usr/bin/python"), nil
	}
	result, tool := CheckTooling(config.Default())
	if result.Status != StatusOK || tool == nil {
		t.Fatalf("unexpected result: %+v", result)
	}
	if !strings.Contains(result.Message, "pip") {
		t.Fatalf("tool name missing from message: %q", result.Message)
	}

	discoverFunc = func(bool) (*pytool.Tool, error) {
		return nil, errors.New("uv not on PATH")
	}
	result, tool = CheckTooling(config.Default())
	if result.Status != StatusFail || tool != nil {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Recommendation == "" {
		t.Fatal("missing tool must carry a recommendation")
	}
}

func TestCheckPython(t *testing.T) {
	tool := pytool.Pip("/usr/bin/python")

	result, version := CheckPython(context.Background(), tool, &stubRunner{output: "3.12\n"})
	if result.Status != StatusOK || version != "3.12" {
		t.Fatalf("unexpected result: %+v version=%q", result, version)
	}

	result, version = CheckPython(context.Background(), tool, &stubRunner{outErr: errors.New("no such file")})
	if result.Status != StatusFail || version != "" {
		t.Fatalf("unexpected result: %+v version=%q", result, version)
	}
}

func TestCheckConstraints(t *testing.T) {
	cfg := config.Default()
	result := CheckConstraints(cfg, "3.12")
	if result.Status != StatusOK {
		t.Fatalf("derived URL should pass: %+v", result)
	}
	if !strings.Contains(result.Message, "constraints-3.12.txt") {
		t.Fatalf("resolved location missing: %q", result.Message)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "constraints.txt")
	if err := os.WriteFile(path, []byte("apache-airflow==3.0.2\n"), 0o644); err != nil {
		t.Fatalf("write constraints: %v", err)
	}
	cfg.Constraints.Location = path
	if result := CheckConstraints(cfg, "3.12"); result.Status != StatusOK {
		t.Fatalf("existing file should pass: %+v", result)
	}

	cfg.Constraints.Location = filepath.Join(dir, "absent.txt")
	if result := CheckConstraints(cfg, "3.12"); result.Status != StatusFail {
		t.Fatalf("missing file should fail: %+v", result)
	}
}

func TestCheckConsistency(t *testing.T) {
	tool := pytool.Pip("/usr/bin/python")

	if result := CheckConsistency(context.Background(), tool, &stubRunner{}); result.Status != StatusOK {
		t.Fatalf("unexpected result: %+v", result)
	}

	result := CheckConsistency(context.Background(), tool, &stubRunner{runErr: errors.New("conflicts")})
	if result.Status != StatusFail {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Recommendation == "" {
		t.Fatal("consistency failure must carry a recommendation")
	}
}
