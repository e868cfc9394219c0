package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "airlift"
	// RootShort is the short description for the root command.
	RootShort = "Install and upgrade Apache Airflow in a Python environment"
	RootLong  = "airlift composes and runs the package-manager commands that install Apache Airflow,\nits extras, and its providers into a Python environment, honoring version constraints\nwith a one-shot unconstrained fallback."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	RootFlagConfig  = "Path to airlift.toml (default: ./airlift.toml)"
	RootFlagEnvFile = "Path to an env file applied over airlift.toml"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Install Airflow with constraints, falling back to unconstrained on conflict"

	InstallFlagDryRun = "Print the composed package-manager commands without executing them"

	InstallHeaderConstrained = "Installing all packages with constraints"
	InstallFallbackNotice    = "Likely pinned constraints conflict with the install - falling back to no constraints"

	// UpgradeUse is the upgrade command name.
	UpgradeUse   = "upgrade"
	UpgradeShort = "Uninstall Airflow distributions and reinstall everything at the newest compatible versions"

	UpgradeHeader       = "Attempting to upgrade all packages to their newest compatible versions"
	UpgradeFlagDiff     = "Show a unified diff of the frozen environment before and after the upgrade"
	UpgradeDiffHeader   = "Environment changes:"
	UpgradeDiffEmpty    = "No installed distributions changed."
	UpgradeFreezeErrFmt = "snapshot installed distributions: %w"

	// UpgradePlanUse is the upgrade plan subcommand name.
	UpgradePlanUse   = "plan"
	UpgradePlanShort = "Print the composed upgrade commands without executing them"
	UpgradePlanJSON  = "Output the plan as JSON"

	// UninstallUse is the uninstall command name.
	UninstallUse   = "uninstall"
	UninstallShort = "Uninstall all Airflow distributions from the environment"

	UninstallNoneInstalled = "No Airflow distributions installed."

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Write an airlift.toml configuration file"

	InitFlagNoWizard      = "Write default configuration without running the interactive wizard"
	InitFlagForce         = "Overwrite an existing airlift.toml without prompting"
	InitConfigExistsFmt   = "%s already exists; re-run with --force to overwrite"
	InitWroteConfigFmt    = "Wrote %s\n"
	InitRequiresTerminal  = "init wizard requires an interactive terminal; re-run with --no-wizard"
	InitMarshalConfigFmt  = "marshal config: %w"
	InitWriteConfigFmt    = "write %s: %w"
	InitResolveConfigPath = "resolve config path: %w"

	PlanHeader = "Planned commands (dry-run): nothing was executed."
)
