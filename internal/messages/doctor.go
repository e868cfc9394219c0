package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the environment for missing tools, unreachable constraints, and dependency conflicts"

	DoctorHealthCheckFmt = "Checking the Airflow installation environment in %s...\n"

	DoctorCheckNameConfig      = "Config"
	DoctorCheckNameTooling     = "Tooling"
	DoctorCheckNamePython      = "Python"
	DoctorCheckNameConstraints = "Constraints"
	DoctorCheckNameConsistency = "Consistency"
	DoctorCheckNameRelease     = "Release"

	DoctorConfigLoadFailedFmt = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend = "Check airlift.toml and the AIRFLOW_* environment variables."
	DoctorConfigLoaded        = "Configuration loaded successfully"

	DoctorToolMissingFmt       = "Packaging tool not found: %s"
	DoctorToolMissingRecommend = "Install pip (python -m ensurepip) or uv, or unset AIRFLOW_USE_UV."
	DoctorToolFoundFmt         = "Packaging tool found: %s (%s)"

	DoctorPythonMissingFmt       = "Python interpreter not found: %v"
	DoctorPythonMissingRecommend = "Ensure python is on PATH; airlift installs into the interpreter it finds there."
	DoctorPythonFoundFmt         = "Python %s found at %s"

	DoctorConstraintsUnreachableFmt       = "Constraints location is not reachable: %s"
	DoctorConstraintsUnreachableRecommend = "Set AIRFLOW_CONSTRAINTS_LOCATION to an existing file or URL, or adjust the constraints mode/reference."
	DoctorConstraintsOKFmt                = "Constraints location resolved: %s"

	DoctorConsistencyFailedFmt = "Installed distributions have conflicting dependencies: %v"
	DoctorConsistencyRecommend = "Run 'airlift upgrade' to reinstall everything at compatible versions."
	DoctorConsistencyOK        = "Installed distributions are consistent"

	DoctorReleaseCheckFailedFmt = "Failed to check the latest Airflow release: %v"
	DoctorReleaseOutdatedFmt    = "Newer Airflow release available: %s (configured %s)"
	DoctorReleaseCurrentFmt     = "Configured Airflow version %s is the latest release"
	DoctorReleaseUnpinned       = "No version pin configured; skipping release comparison"

	DoctorStatusOKLabel   = "[OK]"
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	DoctorResultLineFmt        = "%s %s: %s\n"
	DoctorRecommendationPrefix = "       -> "

	DoctorFailureSummary = "Doctor found problems. See the failures above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "Environment looks healthy."
)
