package main

import (
	"github.com/spf13/cobra"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/installer"
	"github.com/airlift-sh/airlift/internal/messages"
)

func newUninstallCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.UninstallUse,
		Short: messages.UninstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.loadOptions())
			if err != nil {
				return err
			}
			tool, err := discoverToolFunc(cfg.Tools.UseUV)
			if err != nil {
				return err
			}
			return installer.UninstallAll(cmd.Context(), tool, newRunnerFunc(cmd), cmd.OutOrStdout())
		},
	}
}
