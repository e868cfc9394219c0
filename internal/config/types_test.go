package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtrasListFiltersDisabledClients(t *testing.T) {
	cfg := Default()
	cfg.Install.Extras = "mysql,postgres"
	cfg.Install.MySQLClient = false

	assert.Equal(t, []string{"postgres"}, cfg.ExtrasList())
}

func TestExtrasListKeepsEnabledClients(t *testing.T) {
	cfg := Default()
	cfg.Install.Extras = "mysql,postgres,celery"

	assert.Equal(t, []string{"mysql", "postgres", "celery"}, cfg.ExtrasList())
}

func TestExtrasListTrimsAndDeduplicates(t *testing.T) {
	cfg := Default()
	cfg.Install.Extras = " celery , ,celery,ssh"

	assert.Equal(t, []string{"celery", "ssh"}, cfg.ExtrasList())
}

func TestEagerUpgrade(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.EagerUpgrade())

	cfg.Install.UpgradeInvalidation = "2026-08-25T10:00:00"
	assert.True(t, cfg.EagerUpgrade())
}

func TestURLSpecifier(t *testing.T) {
	cfg := Default()
	cfg.Install.Method = "apache-airflow @ https://example.com/airflow.tar.gz"
	cfg.Install.VersionSpecification = "apache-airflow @ https://example.com/airflow.tar.gz"

	assert.Equal(t, "https://example.com/airflow.tar.gz", cfg.URLSpecifier())
}

func TestPinnedVersion(t *testing.T) {
	cfg := Default()
	cfg.Install.VersionSpecification = "==3.0.2"
	assert.Equal(t, "3.0.2", cfg.PinnedVersion())

	cfg.Install.VersionSpecification = ">=2.10"
	assert.Equal(t, "", cfg.PinnedVersion())
}

func TestValidateRejectsBadRegistryPin(t *testing.T) {
	cfg := Default()
	cfg.Install.VersionSpecification = "==not-a-version"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigValidation))
}

func TestValidateURLMethodNeedsURLSpec(t *testing.T) {
	cfg := Default()
	cfg.Install.Method = "apache-airflow @ https://example.com/a.tar.gz"
	cfg.Install.VersionSpecification = "==3.0.2"

	require.Error(t, cfg.Validate())
}

func TestValidateConstraintsMode(t *testing.T) {
	cfg := Default()
	cfg.Constraints.Mode = "constraints-nightly"

	require.Error(t, cfg.Validate())
}
