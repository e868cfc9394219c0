package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/airlift-sh/airlift/internal/envfile"
	"github.com/airlift-sh/airlift/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax, filesystem, or other loading errors).
// Callers can use errors.Is(err, ErrConfigValidation) to distinguish
// validation problems from other Load failure modes.
var ErrConfigValidation = errors.New("config validation failed")

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = "airlift.toml"

// LoadOptions control where configuration is read from.
type LoadOptions struct {
	// ConfigPath is the airlift.toml location; a missing file is not an
	// error, the defaults simply apply.
	ConfigPath string
	// EnvFile is an optional .env-style file applied between the config
	// file and the process environment.
	EnvFile string
	// LookupEnv overrides os.LookupEnv, for tests.
	LookupEnv func(string) (string, bool)
}

// Load builds the effective configuration: defaults, then airlift.toml,
// then the env file, then the process environment, then validation.
func Load(opts LoadOptions) (*Config, error) {
	cfg, err := loadWithoutValidation(opts)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLenient builds the effective configuration without validating it.
// Doctor uses it so a broken method value still produces a config the
// other checks can inspect.
func LoadLenient(opts LoadOptions) (*Config, error) {
	return loadWithoutValidation(opts)
}

func loadWithoutValidation(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path := opts.ConfigPath
	if path == "" {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeStrict(data, path, cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err) && opts.ConfigPath == "":
		// No airlift.toml in the working directory; env-only operation.
	default:
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}

	if opts.EnvFile != "" {
		data, err := os.ReadFile(opts.EnvFile)
		if err != nil {
			return nil, fmt.Errorf(messages.ConfigMissingEnvFileFmt, opts.EnvFile, err)
		}
		env, err := envfile.Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf(messages.ConfigInvalidEnvFileFmt, opts.EnvFile, err)
		}
		if err := applyEnv(cfg, func(key string) (string, bool) {
			value, ok := env[key]
			return value, ok
		}); err != nil {
			return nil, err
		}
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decodeStrict decodes TOML data into cfg, rejecting unknown keys so typos
// in airlift.toml surface immediately.
func decodeStrict(data []byte, source string, cfg *Config) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, strict.String())
		}
		return fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	return nil
}

// applyEnv overlays recognized environment variables onto cfg.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	setString := func(key string, dst *string) {
		if value, ok := lookup(key); ok {
			*dst = strings.TrimSpace(value)
		}
	}
	setBool := func(key string, dst *bool) error {
		value, ok := lookup(key)
		if !ok {
			return nil
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: "+messages.ConfigInvalidBoolFmt, ErrConfigValidation, value, key)
		}
		*dst = parsed
		return nil
	}

	setString(messages.EnvInstallationMethod, &cfg.Install.Method)
	setString(messages.EnvVersionSpecification, &cfg.Install.VersionSpecification)
	setString(messages.EnvExtras, &cfg.Install.Extras)
	setString(messages.EnvUpgradeInvalidation, &cfg.Install.UpgradeInvalidation)
	setString(messages.EnvAdditionalPipFlags, &cfg.Install.AdditionalPipFlags)
	setString(messages.EnvEagerUpgradeAdditionalRequirements, &cfg.Install.EagerUpgradeAdditionalRequirements)
	setString(messages.EnvSourcesRoot, &cfg.Install.SourcesRoot)
	setString(messages.EnvConstraintsLocation, &cfg.Constraints.Location)
	setString(messages.EnvConstraintsMode, &cfg.Constraints.Mode)
	setString(messages.EnvConstraintsReference, &cfg.Constraints.Reference)
	setString(messages.EnvPipVersion, &cfg.Tools.PipVersion)
	setString(messages.EnvUVVersion, &cfg.Tools.UVVersion)
	setString(messages.EnvSetuptoolsVersion, &cfg.Tools.SetuptoolsVersion)
	setString(messages.EnvWheelVersion, &cfg.Tools.WheelVersion)

	if err := setBool(messages.EnvInstallMySQLClient, &cfg.Install.MySQLClient); err != nil {
		return err
	}
	if err := setBool(messages.EnvInstallPostgresClient, &cfg.Install.PostgresClient); err != nil {
		return err
	}
	if err := setBool(messages.EnvUseUV, &cfg.Tools.UseUV); err != nil {
		return err
	}
	return nil
}
