package main

import (
	"github.com/spf13/cobra"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/installer"
	"github.com/airlift-sh/airlift/internal/messages"
	"github.com/airlift-sh/airlift/internal/pypi"
	"github.com/airlift-sh/airlift/internal/pytool"
)

// Seams for tests; production code never swaps these.
var (
	discoverToolFunc = pytool.Discover
	runPlanFunc      = installer.Run
	checkReleaseFunc = pypi.Check
	newRunnerFunc    = newRunner
)

// rootFlags carries the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	envFile    string
}

func (f *rootFlags) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigPath: f.configPath, EnvFile: f.envFile}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", messages.RootFlagConfig)
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", messages.RootFlagEnvFile)

	cmd.AddCommand(newInstallCmd(flags))
	cmd.AddCommand(newUpgradeCmd(flags))
	cmd.AddCommand(newUninstallCmd(flags))
	cmd.AddCommand(newDoctorCmd(flags))
	cmd.AddCommand(newInitCmd(flags))
	return cmd
}

// newRunner builds the process runner wired to the command's output streams.
func newRunner(cmd *cobra.Command) pytool.Runner {
	return pytool.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
}
