package installer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/airlift-sh/airlift/internal/messages"
	"github.com/airlift-sh/airlift/internal/pytool"
)

// airflowDistPrefix matches the core package and every provider package.
const airflowDistPrefix = "apache-airflow"

// AirflowDistributions extracts the apache-airflow* distribution names
// from freeze output lines.
func AirflowDistributions(freezeLines []string) []string {
	var dists []string
	for _, line := range freezeLines {
		name := distributionName(line)
		if name == airflowDistPrefix || strings.HasPrefix(name, airflowDistPrefix+"-") {
			dists = append(dists, name)
		}
	}
	return dists
}

// distributionName parses the name out of a single freeze line. Freeze
// output uses either "name==version" or "name @ location" forms; editable
// installs show up as "-e location" and are identified by the egg fragment.
func distributionName(line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "-e ") {
		if idx := strings.Index(line, "#egg="); idx >= 0 {
			return strings.TrimSpace(line[idx+len("#egg="):])
		}
		return ""
	}
	for _, sep := range []string{"==", " @ "} {
		if idx := strings.Index(line, sep); idx >= 0 {
			return strings.TrimSpace(line[:idx])
		}
	}
	return line
}

// UninstallAll removes every installed apache-airflow* distribution.
// When none are installed it prints a note and succeeds, so eager upgrades
// work on a clean environment.
func UninstallAll(ctx context.Context, tool *pytool.Tool, runner pytool.Runner, out io.Writer) error {
	frozen, err := tool.Freeze(ctx, runner)
	if err != nil {
		return err
	}
	dists := AirflowDistributions(frozen)
	if len(dists) == 0 {
		_, _ = fmt.Fprintln(out, messages.UninstallNoneInstalled)
		return nil
	}

	cmd := Command{Name: "uninstall airflow distributions", Argv: tool.Command("uninstall", dists...)}
	return runCommand(ctx, runner, out, cmd)
}
