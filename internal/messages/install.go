package messages

// Installer and packaging-tool messages.
const (
	InstallerRunStepFmt         = "Running: %s\n"
	InstallerStepFailedFmt      = "%s failed: %w"
	InstallerFallbackErrFmt     = "unconstrained fallback install failed: %w"
	InstallerCheckFailedFmt     = "dependency consistency check reported problems: %v\n"
	InstallerCheckPassed        = "Dependency consistency check passed."
	InstallerRepinHeader        = "Re-pinning packaging tools"
	InstallerUninstallHeader    = "Uninstalling previously installed Airflow distributions"
	InstallerUninstallIgnoreFmt = "Ignoring uninstall failure: %v\n"

	InstallerDiscoverEditableFmt = "discover editable projects under %s: %w"
	InstallerSourcesMissingFmt   = "sources root %s does not exist; the '.' installation method requires a checked-out source tree"

	PytoolNotFoundFmt     = "packaging tool %s not found on PATH: %w"
	PytoolPythonProbeFmt  = "probe python version: %w"
	PytoolPythonParseFmt  = "unexpected python version output %q"
	PytoolVersionLineFmt  = "Using %s (%s) from %s\n"
	PytoolFreezeFailedFmt = "list installed distributions: %w"
)
