package pytool

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/airlift-sh/airlift/internal/messages"
)

var lookPath = exec.LookPath

// Tool is the resolved packaging tool for the target environment.
type Tool struct {
	// Name is "pip" or "uv".
	Name string
	// Python is the interpreter the packages are installed into.
	Python string

	prefix         []string
	installFlags   []string
	uninstallFlags []string
}

// Discover resolves the packaging tool and python interpreter from PATH.
// useUV selects uv; otherwise pip runs through the interpreter so the
// install targets the python that is actually on PATH.
func Discover(useUV bool) (*Tool, error) {
	python, err := lookPath("python")
	if err != nil {
		python, err = lookPath("python3")
		if err != nil {
			return nil, fmt.Errorf(messages.PytoolNotFoundFmt, "python", err)
		}
	}

	if useUV {
		uv, err := lookPath("uv")
		if err != nil {
			return nil, fmt.Errorf(messages.PytoolNotFoundFmt, "uv", err)
		}
		return UV(uv, python), nil
	}
	return Pip(python), nil
}

// Pip returns the pip tool driven through the given interpreter.
func Pip(python string) *Tool {
	return &Tool{
		Name:   "pip",
		Python: python,
		prefix: []string{python, "-m", "pip"},
		// Airflow images run installs as root; pip's warning is noise there.
		installFlags:   []string{"--root-user-action", "ignore"},
		uninstallFlags: []string{"--yes"},
	}
}

// UV returns the uv tool at uvPath installing into the given interpreter.
func UV(uvPath, python string) *Tool {
	return &Tool{
		Name:   "uv",
		Python: python,
		prefix: []string{uvPath, "pip"},
		// uv needs the target interpreter pinned explicitly when no
		// virtualenv is active.
		installFlags:   []string{"--python", python},
		uninstallFlags: []string{"--python", python},
	}
}

// Command returns the argv for a packaging-tool subcommand with the
// per-tool extra flags applied.
func (t *Tool) Command(subcommand string, args ...string) []string {
	argv := append([]string{}, t.prefix...)
	argv = append(argv, subcommand)
	switch subcommand {
	case "install":
		argv = append(argv, t.installFlags...)
	case "uninstall":
		argv = append(argv, t.uninstallFlags...)
	}
	return append(argv, args...)
}

// Executable returns the argv[0] for Command results.
func (t *Tool) Executable() string {
	return t.prefix[0]
}

var pythonVersionRe = regexp.MustCompile(`^(\d+)\.(\d+)`)

// PythonVersion probes the interpreter for its MAJOR.MINOR version, which
// names the published constraints file.
func (t *Tool) PythonVersion(ctx context.Context, runner Runner) (string, error) {
	out, err := runner.Output(ctx, t.Python, "-c", "import sys; print('%d.%d' % sys.version_info[:2])")
	if err != nil {
		return "", fmt.Errorf(messages.PytoolPythonProbeFmt, err)
	}
	version := strings.TrimSpace(out)
	if !pythonVersionRe.MatchString(version) {
		return "", fmt.Errorf(messages.PytoolPythonParseFmt, out)
	}
	return version, nil
}

// Version returns the tool's own version string for display.
func (t *Tool) Version(ctx context.Context, runner Runner) (string, error) {
	argv := t.Command("--version")
	return runner.Output(ctx, argv[0], argv[1:]...)
}

// Freeze lists the installed distributions as requirement lines.
func (t *Tool) Freeze(ctx context.Context, runner Runner) ([]string, error) {
	argv := t.Command("freeze")
	out, err := runner.Output(ctx, argv[0], argv[1:]...)
	if err != nil {
		return nil, fmt.Errorf(messages.PytoolFreezeFailedFmt, err)
	}
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// Check runs the dependency-consistency check. Airflow images always use
// pip check for this, even when uv performed the install.
func (t *Tool) Check(ctx context.Context, runner Runner) error {
	return runner.Run(ctx, t.Python, "-m", "pip", "check")
}
