package messages

// Configuration loading and validation messages.
const (
	ConfigReadFileFmt          = "read config %s: %w"
	ConfigInvalidConfigFmt     = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt  = "unrecognized keys in %s: %v."
	ConfigValidationGuidance   = "Run 'airlift init' to regenerate a valid configuration."
	ConfigMissingEnvFileFmt    = "read env file %s: %w"
	ConfigInvalidEnvFileFmt    = "invalid env file %s: %w"
	ConfigExpandHomeFmt        = "expand %s: %w"
	ConfigInvalidBoolFmt       = "invalid boolean %q for %s (use true/false)"
	ConfigUnsupportedMethodFmt = "unsupported installation method %q"
	ConfigSupportedMethods     = "Supported values: '.', 'apache-airflow', 'apache-airflow @ <url>'."
	ConfigInvalidVersionFmt    = "invalid version specification %q for the registry method: %w"
	ConfigMissingURLSpec       = "installation method 'apache-airflow @ <url>' requires a version specification of the same form"
	ConfigConstraintsMode      = "constraints mode must be one of constraints, constraints-source-providers, constraints-no-providers"
)

// Environment variable names recognized by airlift. These mirror the
// variables the Airflow container build scripts use, so the same build
// args drive both.
const (
	EnvInstallationMethod                 = "AIRFLOW_INSTALLATION_METHOD"
	EnvVersionSpecification               = "AIRFLOW_VERSION_SPECIFICATION"
	EnvExtras                             = "AIRFLOW_EXTRAS"
	EnvInstallMySQLClient                 = "INSTALL_MYSQL_CLIENT"
	EnvInstallPostgresClient              = "INSTALL_POSTGRES_CLIENT"
	EnvUpgradeInvalidation                = "UPGRADE_INVALIDATION_STRING"
	EnvAdditionalPipFlags                 = "ADDITIONAL_PIP_INSTALL_FLAGS"
	EnvEagerUpgradeAdditionalRequirements = "EAGER_UPGRADE_ADDITIONAL_REQUIREMENTS"
	EnvConstraintsLocation                = "AIRFLOW_CONSTRAINTS_LOCATION"
	EnvConstraintsMode                    = "AIRFLOW_CONSTRAINTS_MODE"
	EnvConstraintsReference               = "AIRFLOW_CONSTRAINTS_REFERENCE"
	EnvUseUV                              = "AIRFLOW_USE_UV"
	EnvPipVersion                         = "AIRFLOW_PIP_VERSION"
	EnvUVVersion                          = "AIRFLOW_UV_VERSION"
	EnvSetuptoolsVersion                  = "AIRFLOW_SETUPTOOLS_VERSION"
	EnvWheelVersion                       = "AIRFLOW_WHEEL_VERSION"
	EnvSourcesRoot                        = "AIRFLOW_SOURCES_ROOT"
)
