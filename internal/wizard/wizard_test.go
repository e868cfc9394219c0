package wizard

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/messages"
)

type fakeUI struct {
	selects  map[string]string
	inputs   map[string]string
	confirms map[string]bool
	multi    map[string][]string
	notes    []string
	err      error
}

func (f *fakeUI) Select(title string, _ []string, current *string) error {
	if f.err != nil {
		return f.err
	}
	if value, ok := f.selects[title]; ok {
		*current = value
	}
	return nil
}

func (f *fakeUI) MultiSelect(title string, _ []string, selected *[]string) error {
	if f.err != nil {
		return f.err
	}
	if value, ok := f.multi[title]; ok {
		*selected = value
	}
	return nil
}

func (f *fakeUI) Confirm(title string, value *bool) error {
	if f.err != nil {
		return f.err
	}
	if answer, ok := f.confirms[title]; ok {
		*value = answer
	}
	return nil
}

func (f *fakeUI) Input(title string, value *string) error {
	if f.err != nil {
		return f.err
	}
	if answer, ok := f.inputs[title]; ok {
		*value = answer
	}
	return nil
}

func (f *fakeUI) Note(title string, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.notes = append(f.notes, title)
	return nil
}

func registryUI() *fakeUI {
	return &fakeUI{
		selects: map[string]string{messages.WizardMethodTitle: messages.WizardMethodRegistry},
		inputs:  map[string]string{messages.WizardVersionTitle: "==3.0.2"},
		multi:   map[string][]string{messages.WizardExtrasTitle: {"postgres"}},
		confirms: map[string]bool{
			messages.WizardMySQLTitle:    false,
			messages.WizardPostgresTitle: true,
			messages.WizardUseUVTitle:    false,
			messages.WizardConfirmWrite:  true,
		},
	}
}

func TestRunWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airlift.toml")
	ui := registryUI()
	var out bytes.Buffer

	if err := Run(path, ui, &out); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigPath: path,
		LookupEnv:  noLookup,
	})
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Install.Method != config.MethodRegistry {
		t.Fatalf("method = %q", cfg.Install.Method)
	}
	if cfg.Install.VersionSpecification != "==3.0.2" {
		t.Fatalf("version specification = %q", cfg.Install.VersionSpecification)
	}
	if cfg.Install.Extras != "postgres" {
		t.Fatalf("extras = %q", cfg.Install.Extras)
	}
	if cfg.Install.MySQLClient {
		t.Fatal("mysql client should be disabled")
	}
	if len(ui.notes) != 1 {
		t.Fatalf("expected one preview note, got %v", ui.notes)
	}
	if !strings.Contains(out.String(), "Wrote "+path) {
		t.Fatalf("missing write confirmation: %q", out.String())
	}
}

func TestRunURLMethod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airlift.toml")
	ui := registryUI()
	ui.selects[messages.WizardMethodTitle] = messages.WizardMethodURL
	ui.inputs[messages.WizardURLTitle] = "https://example.com/airflow.tar.gz"
	var out bytes.Buffer

	if err := Run(path, ui, &out); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	cfg, err := config.Load(config.LoadOptions{ConfigPath: path, LookupEnv: noLookup})
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	want := "apache-airflow @ https://example.com/airflow.tar.gz"
	if cfg.Install.Method != want {
		t.Fatalf("method = %q, want %q", cfg.Install.Method, want)
	}
	if cfg.Install.VersionSpecification != want {
		t.Fatalf("version specification = %q, want %q", cfg.Install.VersionSpecification, want)
	}
}

func TestRunDeclinedWriteLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airlift.toml")
	ui := registryUI()
	ui.confirms[messages.WizardConfirmWrite] = false
	var out bytes.Buffer

	if err := Run(path, ui, &out); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("declined wizard must not write the config")
	}
	if !strings.Contains(out.String(), messages.WizardExitWithoutChanges) {
		t.Fatalf("missing exit note: %q", out.String())
	}
}

func TestRunCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airlift.toml")
	ui := &fakeUI{err: errWizardCancelled}
	var out bytes.Buffer

	if err := Run(path, ui, &out); err != nil {
		t.Fatalf("cancellation must not be an error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("cancelled wizard must not write the config")
	}
	if !strings.Contains(out.String(), messages.WizardExitWithoutChanges) {
		t.Fatalf("missing exit note: %q", out.String())
	}
}

func TestRunUnchangedConfigSkipsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airlift.toml")
	var out bytes.Buffer
	if err := Run(path, registryUI(), &out); err != nil {
		t.Fatalf("first Run error: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	out.Reset()
	ui := registryUI()
	if err := Run(path, ui, &out); err != nil {
		t.Fatalf("second Run error: %v", err)
	}
	if !strings.Contains(out.String(), messages.WizardNoChanges) {
		t.Fatalf("expected no-changes note, got %q", out.String())
	}
	if len(ui.notes) != 0 {
		t.Fatalf("no preview expected without changes, got %v", ui.notes)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Fatal("unchanged run must not rewrite the file")
	}
}
