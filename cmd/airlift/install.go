package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/installer"
	"github.com/airlift-sh/airlift/internal/messages"
)

func newInstallCmd(flags *rootFlags) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.loadOptions())
			if err != nil {
				return err
			}
			return runPlanned(cmd, cfg, dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.InstallFlagDryRun)
	return cmd
}

// runPlanned composes the plan for cfg and either renders it (dry run) or
// executes it.
func runPlanned(cmd *cobra.Command, cfg *config.Config, dryRun bool) error {
	out := cmd.OutOrStdout()
	tool, err := discoverToolFunc(cfg.Tools.UseUV)
	if err != nil {
		return err
	}
	runner := newRunnerFunc(cmd)

	pythonVersion, err := tool.PythonVersion(cmd.Context(), runner)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, messages.PytoolVersionLineFmt, tool.Name, "python "+pythonVersion, tool.Executable())

	plan, err := installer.BuildPlan(cfg, tool, pythonVersion)
	if err != nil {
		return err
	}
	if dryRun {
		return plan.Render(out)
	}
	return runPlanFunc(cmd.Context(), plan, tool, runner, out)
}
