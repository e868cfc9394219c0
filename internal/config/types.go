package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/airlift-sh/airlift/internal/messages"
)

// Installation method literals. The URL form is a prefix match: the full
// value is "apache-airflow @ <url>".
const (
	MethodLocalSources = "."
	MethodRegistry     = "apache-airflow"
	MethodURLPrefix    = "apache-airflow @ "
)

// Extras whose availability depends on a database client being installed
// in the target image.
const (
	ExtraMySQL    = "mysql"
	ExtraPostgres = "postgres"
)

// Constraints modes understood by the Airflow constraints repository layout.
const (
	ConstraintsModeDefault         = "constraints"
	ConstraintsModeSourceProviders = "constraints-source-providers"
	ConstraintsModeNoProviders     = "constraints-no-providers"
)

// Config is the full airlift configuration. Values come from defaults,
// airlift.toml, an optional env file, and the process environment, in that
// order.
type Config struct {
	Install     Install     `toml:"install"`
	Constraints Constraints `toml:"constraints"`
	Tools       Tools       `toml:"tools"`
}

// Install configures what gets installed and how.
type Install struct {
	// Method is one of MethodLocalSources, MethodRegistry, or a string
	// beginning with MethodURLPrefix.
	Method string `toml:"method"`
	// VersionSpecification is appended to the registry specifier
	// (for example "==3.0.2"), or carries the full "apache-airflow @ <url>"
	// form for the URL method.
	VersionSpecification string `toml:"version-specification"`
	// Extras is the comma-separated extras list.
	Extras string `toml:"extras"`
	// MySQLClient and PostgresClient gate the corresponding extras.
	MySQLClient    bool `toml:"mysql-client"`
	PostgresClient bool `toml:"postgres-client"`
	// UpgradeInvalidation enables eager-upgrade mode when non-empty.
	// Builds bump it to force a full reinstall at the newest versions.
	UpgradeInvalidation string `toml:"upgrade-invalidation"`
	// AdditionalPipFlags are passed through verbatim to every install
	// invocation.
	AdditionalPipFlags string `toml:"additional-pip-flags"`
	// EagerUpgradeAdditionalRequirements are extra specifiers appended only
	// in eager-upgrade mode, typically to hold back known-bad releases.
	EagerUpgradeAdditionalRequirements string `toml:"eager-upgrade-additional-requirements"`
	// SourcesRoot is the root of the Airflow source tree for the editable
	// method. Defaults to the current directory.
	SourcesRoot string `toml:"sources-root"`
}

// Constraints configures the version-pinning manifest used during install.
type Constraints struct {
	// Location overrides the derived constraints URL with an explicit file
	// path or URL. A leading ~ is expanded.
	Location string `toml:"location"`
	// Mode selects the constraints flavor published by the Airflow repo.
	Mode string `toml:"mode"`
	// Reference is the git reference the constraints are published under,
	// for example "constraints-3.0.2" or "constraints-main".
	Reference string `toml:"reference"`
}

// Tools configures the packaging-tool selection and post-install re-pinning.
type Tools struct {
	// UseUV selects uv instead of pip for install and uninstall operations.
	UseUV bool `toml:"use-uv"`
	// Versions the packaging tools are re-pinned to after every install.
	PipVersion        string `toml:"pip-version"`
	UVVersion         string `toml:"uv-version"`
	SetuptoolsVersion string `toml:"setuptools-version"`
	WheelVersion      string `toml:"wheel-version"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Install: Install{
			Method:         MethodRegistry,
			MySQLClient:    true,
			PostgresClient: true,
			SourcesRoot:    ".",
		},
		Constraints: Constraints{
			Mode: ConstraintsModeDefault,
		},
		Tools: Tools{
			PipVersion:        "25.1.1",
			UVVersion:         "0.8.4",
			SetuptoolsVersion: "80.9.0",
			WheelVersion:      "0.45.1",
		},
	}
}

// ExtrasList returns the configured extras with client-gated extras removed
// when the corresponding client flag is disabled. Order is preserved and
// duplicates are dropped.
func (c *Config) ExtrasList() []string {
	seen := make(map[string]bool)
	var extras []string
	for _, extra := range strings.Split(c.Install.Extras, ",") {
		extra = strings.TrimSpace(extra)
		if extra == "" || seen[extra] {
			continue
		}
		if extra == ExtraMySQL && !c.Install.MySQLClient {
			continue
		}
		if extra == ExtraPostgres && !c.Install.PostgresClient {
			continue
		}
		seen[extra] = true
		extras = append(extras, extra)
	}
	return extras
}

// EagerUpgrade reports whether eager-upgrade mode is enabled.
func (c *Config) EagerUpgrade() bool {
	return strings.TrimSpace(c.Install.UpgradeInvalidation) != ""
}

// URLSpecifier returns the archive URL for the URL installation method,
// derived by stripping the literal "apache-airflow @ " prefix from the
// version specification.
func (c *Config) URLSpecifier() string {
	return strings.TrimSpace(strings.TrimPrefix(c.Install.VersionSpecification, MethodURLPrefix))
}

// PinnedVersion returns the bare version when the specification pins one
// with "==", and "" otherwise.
func (c *Config) PinnedVersion() string {
	spec := strings.TrimSpace(c.Install.VersionSpecification)
	if !strings.HasPrefix(spec, "==") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(spec, "=="))
}

// Validate checks the configuration for fatal errors. An unsupported
// installation method is reported with the list of supported forms.
func (c *Config) Validate() error {
	method := c.Install.Method
	switch {
	case method == MethodLocalSources, method == MethodRegistry:
	case strings.HasPrefix(method, MethodURLPrefix):
		if !strings.HasPrefix(c.Install.VersionSpecification, MethodURLPrefix) {
			return fmt.Errorf("%w: "+messages.ConfigMissingURLSpec, ErrConfigValidation)
		}
	default:
		return fmt.Errorf("%w: "+messages.ConfigUnsupportedMethodFmt+" "+messages.ConfigSupportedMethods, ErrConfigValidation, method)
	}

	if method == MethodRegistry {
		if pin := c.PinnedVersion(); pin != "" {
			if _, err := semver.NewVersion(pin); err != nil {
				return fmt.Errorf("%w: "+messages.ConfigInvalidVersionFmt, ErrConfigValidation, c.Install.VersionSpecification, err)
			}
		}
	}

	switch c.Constraints.Mode {
	case ConstraintsModeDefault, ConstraintsModeSourceProviders, ConstraintsModeNoProviders:
	default:
		return fmt.Errorf("%w: "+messages.ConfigConstraintsMode, ErrConfigValidation)
	}

	return nil
}

// AdditionalPipFlagList splits the pass-through install flags on whitespace.
func (c *Config) AdditionalPipFlagList() []string {
	return strings.Fields(c.Install.AdditionalPipFlags)
}

// EagerUpgradeRequirementList splits the eager-upgrade requirement
// specifiers on whitespace.
func (c *Config) EagerUpgradeRequirementList() []string {
	return strings.Fields(c.Install.EagerUpgradeAdditionalRequirements)
}

// KnownExtras lists the extras offered by the init wizard. The real extras
// universe lives in the Airflow project metadata; this is the commonly used
// subset.
func KnownExtras() []string {
	extras := []string{
		"amazon", "async", "celery", "cncf-kubernetes", "common-io",
		"docker", "elasticsearch", "fab", "ftp", "google", "google-auth",
		"graphviz", "grpc", "hashicorp", "http", "ldap", "microsoft-azure",
		"mysql", "odbc", "openlineage", "pandas", "postgres", "redis",
		"sendgrid", "sftp", "slack", "snowflake", "ssh", "statsd", "uv",
		"virtualenv",
	}
	sort.Strings(extras)
	return extras
}
