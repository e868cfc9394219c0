package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/spf13/cobra"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/installer"
	"github.com/airlift-sh/airlift/internal/messages"
	"github.com/airlift-sh/airlift/internal/pytool"
)

// upgradeInvalidationManual marks upgrades requested on the command line
// rather than through an invalidation bump in the configuration.
const upgradeInvalidationManual = "manual"

func newUpgradeCmd(flags *rootFlags) *cobra.Command {
	var showDiff bool
	cmd := &cobra.Command{
		Use:   messages.UpgradeUse,
		Short: messages.UpgradeShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.loadOptions())
			if err != nil {
				return err
			}
			forceEager(cfg)
			if !showDiff {
				return runPlanned(cmd, cfg, false)
			}
			return runUpgradeWithDiff(cmd, cfg)
		},
	}
	cmd.Flags().BoolVar(&showDiff, "diff", false, messages.UpgradeFlagDiff)
	cmd.AddCommand(newUpgradePlanCmd(flags))
	return cmd
}

func newUpgradePlanCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   messages.UpgradePlanUse,
		Short: messages.UpgradePlanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.loadOptions())
			if err != nil {
				return err
			}
			forceEager(cfg)

			tool, err := discoverToolFunc(cfg.Tools.UseUV)
			if err != nil {
				return err
			}
			pythonVersion, err := tool.PythonVersion(cmd.Context(), newRunnerFunc(cmd))
			if err != nil {
				return err
			}
			plan, err := installer.BuildPlan(cfg, tool, pythonVersion)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(plan)
			}
			return plan.Render(out)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, messages.UpgradePlanJSON)
	return cmd
}

// forceEager enables eager-upgrade mode for explicit upgrade invocations.
// A configured invalidation string keeps its value so plans stay stable.
func forceEager(cfg *config.Config) {
	if !cfg.EagerUpgrade() {
		cfg.Install.UpgradeInvalidation = upgradeInvalidationManual
	}
}

// runUpgradeWithDiff snapshots the frozen environment around the upgrade
// and prints a unified diff of the changes.
func runUpgradeWithDiff(cmd *cobra.Command, cfg *config.Config) error {
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
	plan, err := installer.BuildPlan(cfg, tool, pythonVersion)
	if err != nil {
		return err
	}

	before, err := freezeLines(cmd, tool, runner)
	if err != nil {
		return err
	}
	if err := runPlanFunc(cmd.Context(), plan, tool, runner, out); err != nil {
		return err
	}
	after, err := freezeLines(cmd, tool, runner)
	if err != nil {
		return err
	}

	diff := strings.TrimSpace(udiff.Unified("before", "after", before, after))
	if diff == "" {
		_, _ = fmt.Fprintln(out, messages.UpgradeDiffEmpty)
		return nil
	}
	_, _ = fmt.Fprintln(out, messages.UpgradeDiffHeader)
	_, _ = fmt.Fprintln(out, diff)
	return nil
}

func freezeLines(cmd *cobra.Command, tool *pytool.Tool, runner pytool.Runner) (string, error) {
	lines, err := tool.Freeze(cmd.Context(), runner)
	if err != nil {
		return "", fmt.Errorf(messages.UpgradeFreezeErrFmt, err)
	}
	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}
