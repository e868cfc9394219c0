package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/airlift-sh/airlift/internal/config"
	"github.com/airlift-sh/airlift/internal/fsutil"
	"github.com/airlift-sh/airlift/internal/messages"
	"github.com/airlift-sh/airlift/internal/terminal"
	"github.com/airlift-sh/airlift/internal/wizard"
)

var (
	isTerminalFunc = terminal.IsInteractive
	runWizardFunc  = wizard.Run
)

func newInitCmd(flags *rootFlags) *cobra.Command {
	var noWizard, force bool
	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configPath
			if path == "" {
				path = config.DefaultConfigFile
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf(messages.InitConfigExistsFmt, path)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf(messages.InitResolveConfigPath, err)
				}
			}

			if noWizard {
				data, err := toml.Marshal(config.Default())
				if err != nil {
					return fmt.Errorf(messages.InitMarshalConfigFmt, err)
				}
				if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
					return fmt.Errorf(messages.InitWriteConfigFmt, path, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.InitWroteConfigFmt, path)
				return nil
			}

			if !isTerminalFunc() {
				return fmt.Errorf(messages.InitRequiresTerminal)
			}
			return runWizardFunc(path, wizard.NewHuhUI(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&noWizard, "no-wizard", false, messages.InitFlagNoWizard)
	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)
	return cmd
}
