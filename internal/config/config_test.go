package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/psds-microservice/db-seeder/internal/errors"
	"github.com/psds-microservice/db-seeder/pkg/constants"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		constants.EnvDatabaseURL,
		constants.EnvDBDriver,
		constants.EnvDBConnectTimeoutSec,
		constants.EnvDBStatementTimeout,
		constants.EnvSeedFile,
		constants.EnvLogLevel,
		constants.EnvLogFormat,
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfigFromEnv()

	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, constants.DriverPQ, cfg.Database.Driver)
	assert.Equal(t, constants.DefaultSeedFile, cfg.Seed.File)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout())
	assert.Zero(t, cfg.StatementTimeout())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, constants.LogFormatConsole, cfg.Logging.Format)
}

func TestApplyEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.EnvDatabaseURL, "postgres://seed:secret@db:5432/app?sslmode=disable")
	t.Setenv(constants.EnvDBDriver, constants.DriverPGX)
	t.Setenv(constants.EnvDBConnectTimeoutSec, "0")
	t.Setenv(constants.EnvDBStatementTimeout, "30")
	t.Setenv(constants.EnvSeedFile, "/tmp/plans.sql")
	t.Setenv(constants.EnvLogFormat, constants.LogFormatJSON)

	cfg := LoadConfigFromEnv()

	assert.Equal(t, "postgres://seed:secret@db:5432/app?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, constants.DriverPGX, cfg.Database.Driver)
	assert.Zero(t, cfg.ConnectTimeout())
	assert.Equal(t, 30*time.Second, cfg.StatementTimeout())
	assert.Equal(t, "/tmp/plans.sql", cfg.Seed.File)
	assert.Equal(t, constants.LogFormatJSON, cfg.Logging.Format)
}

func TestApplyEnvOverridesIgnoresBadInt(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.EnvDBConnectTimeoutSec, "soon")

	cfg := LoadConfigFromEnv()

	assert.Equal(t, 10, cfg.Database.ConnectTimeoutSec)
}

func TestLoadConfigYamlThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `database:
  url: postgres://from-yaml@localhost/app
  driver: pgx
  statement_timeout_sec: 5
seed:
  file: ./seeds/plans.sql
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv(constants.EnvDatabaseURL, "postgres://from-env@localhost/app")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://from-env@localhost/app", cfg.Database.URL)
	assert.Equal(t, constants.DriverPGX, cfg.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.StatementTimeout())
	// значения, которых нет в YAML, остаются дефолтными
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout())
	assert.Equal(t, "./seeds/plans.sql", cfg.Seed.File)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, constants.LogFormatConsole, cfg.Logging.Format)
}

func TestLoadConfigMissingFileFallsBackToEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.EnvDatabaseURL, "postgres://env@localhost/app")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env@localhost/app", cfg.Database.URL)
}

func TestLoadConfigBrokenYaml(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [unterminated"), 0o600))

	cfg, err := LoadConfig(path)
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, constants.DefaultSeedFile, cfg.Seed.File)
}

func TestValidate(t *testing.T) {
	cfg := GetDefaultConfig()
	err := cfg.Validate()
	require.ErrorIs(t, err, apperrors.ErrConfigurationMissing)
	assert.Contains(t, err.Error(), constants.EnvDatabaseURL)

	cfg.Database.URL = "   "
	require.ErrorIs(t, cfg.Validate(), apperrors.ErrConfigurationMissing)

	cfg.Database.URL = "postgres://localhost/app"
	require.NoError(t, cfg.Validate())

	cfg.Database.Driver = "mysql"
	require.ErrorIs(t, cfg.Validate(), apperrors.ErrConfigurationMissing)

	cfg.Database.Driver = constants.DriverPGX
	cfg.Seed.File = ""
	require.ErrorIs(t, cfg.Validate(), apperrors.ErrConfigurationMissing)
}

func TestRedactedURL(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Database.URL = "postgres://seed:secret@db:5432/app"
	assert.NotContains(t, cfg.RedactedURL(), "secret")
	assert.Contains(t, cfg.RedactedURL(), "db:5432/app")

	cfg.Database.URL = "host=db password=secret"
	assert.Equal(t, "[redacted]", cfg.RedactedURL())

	cfg.Database.URL = ""
	assert.Empty(t, cfg.RedactedURL())
}
