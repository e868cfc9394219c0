// Package installer composes package-manager invocations from the airlift
// configuration and executes them with the documented one-shot fallback.
//
// Composition is pure (configuration in, argument lists out); everything
// that touches the environment goes through the pytool.Runner seam.
package installer

import (
	"fmt"
	"io"
	"strings"

	"github.com/airlift-sh/airlift/internal/messages"
)

// Command is a single composed package-manager invocation.
type Command struct {
	Name string   `json:"name"`
	Argv []string `json:"argv"`
}

// String renders the command the way a shell would see it.
func (c Command) String() string {
	return strings.Join(c.Argv, " ")
}

// Plan is the ordered set of invocations for one install or upgrade.
type Plan struct {
	// Eager marks the eager-upgrade mode: uninstall everything first, then
	// reinstall at the newest compatible versions.
	Eager bool `json:"eager"`
	// UninstallFirst precedes the install with an uninstall of all Airflow
	// distributions. The distribution list is resolved at execution time
	// from the frozen environment.
	UninstallFirst bool `json:"uninstall-first"`
	// ConstraintsLocation is the resolved constraints file or URL; empty in
	// eager mode, which deliberately ignores pins.
	ConstraintsLocation string `json:"constraints-location,omitempty"`

	Install Command `json:"install"`
	// Fallback is the one-shot unconstrained retry; nil in eager mode.
	Fallback *Command `json:"fallback,omitempty"`
	// Repin re-pins the packaging tools after the install.
	Repin Command `json:"repin"`
	// Check is the dependency-consistency check.
	Check Command `json:"check"`
}

// Render writes the plan as human-readable lines.
func (p *Plan) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, messages.PlanHeader); err != nil {
		return err
	}
	if p.UninstallFirst {
		if _, err := fmt.Fprintf(w, "  1. uninstall all installed apache-airflow* distributions\n"); err != nil {
			return err
		}
	}
	lines := []Command{p.Install}
	if p.Fallback != nil {
		lines = append(lines, *p.Fallback)
	}
	lines = append(lines, p.Repin, p.Check)
	for _, cmd := range lines {
		if _, err := fmt.Fprintf(w, "  $ %s\n", cmd); err != nil {
			return err
		}
	}
	if p.Fallback != nil {
		if _, err := fmt.Fprintln(w, "  (the second install only runs when the constrained install fails)"); err != nil {
			return err
		}
	}
	return nil
}
