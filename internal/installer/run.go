package installer

import (
	"context"
	"fmt"
	"io"

	"github.com/airlift-sh/airlift/internal/messages"
	"github.com/airlift-sh/airlift/internal/pytool"
)

// Run executes the plan: the (optional) uninstall, the install with its
// one-shot unconstrained fallback, the packaging-tool re-pinning, and the
// consistency check. Progress goes to out; command output goes wherever
// the runner sends it.
//
// A failing consistency check is reported but does not change the exit
// path the install already took.
func Run(ctx context.Context, plan *Plan, tool *pytool.Tool, runner pytool.Runner, out io.Writer) error {
	if plan.UninstallFirst {
		_, _ = fmt.Fprintln(out, messages.InstallerUninstallHeader)
		if err := UninstallAll(ctx, tool, runner, out); err != nil {
			// Nothing installed yet is the common case on first build.
			_, _ = fmt.Fprintf(out, messages.InstallerUninstallIgnoreFmt, err)
		}
	}

	if plan.Eager {
		_, _ = fmt.Fprintln(out, messages.UpgradeHeader)
	} else {
		_, _ = fmt.Fprintln(out, messages.InstallHeaderConstrained)
	}

	if err := runCommand(ctx, runner, out, plan.Install); err != nil {
		if plan.Fallback == nil {
			return err
		}
		_, _ = fmt.Fprintln(out, messages.InstallFallbackNotice)
		if err := runCommand(ctx, runner, out, *plan.Fallback); err != nil {
			return fmt.Errorf(messages.InstallerFallbackErrFmt, err)
		}
	}

	_, _ = fmt.Fprintln(out, messages.InstallerRepinHeader)
	if err := runCommand(ctx, runner, out, plan.Repin); err != nil {
		return err
	}

	if err := runCommand(ctx, runner, out, plan.Check); err != nil {
		_, _ = fmt.Fprintf(out, messages.InstallerCheckFailedFmt, err)
		return nil
	}
	_, _ = fmt.Fprintln(out, messages.InstallerCheckPassed)
	return nil
}

// runCommand logs and executes a single composed command. The underlying
// *exec.ExitError is preserved in the wrap chain so the CLI can propagate
// the child's exit status.
func runCommand(ctx context.Context, runner pytool.Runner, out io.Writer, cmd Command) error {
	_, _ = fmt.Fprintf(out, messages.InstallerRunStepFmt, cmd)
	if err := runner.Run(ctx, cmd.Argv[0], cmd.Argv[1:]...); err != nil {
		return fmt.Errorf(messages.InstallerStepFailedFmt, cmd.Name, err)
	}
	return nil
}
