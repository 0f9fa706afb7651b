package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/psds-microservice/db-seeder/internal/errors"
	"github.com/psds-microservice/db-seeder/pkg/constants"
)

// Validate проверяет обязательные поля. Пустой URL — ErrConfigurationMissing.
func (c YamlConfig) Validate() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return fmt.Errorf("%w: %s is not set", apperrors.ErrConfigurationMissing, constants.EnvDatabaseURL)
	}
	if strings.TrimSpace(c.Seed.File) == "" {
		return fmt.Errorf("%w: seed file path is not set", apperrors.ErrConfigurationMissing)
	}
	switch c.Database.Driver {
	case constants.DriverPQ, constants.DriverPGX:
	default:
		return fmt.Errorf("%w: unsupported database driver %q", apperrors.ErrConfigurationMissing, c.Database.Driver)
	}
	return nil
}

// ConnectTimeout возвращает таймаут подключения (0 — без таймаута)
func (c YamlConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.Database.ConnectTimeoutSec) * time.Second
}

// StatementTimeout возвращает таймаут выполнения скрипта (0 — без таймаута)
func (c YamlConfig) StatementTimeout() time.Duration {
	return time.Duration(c.Database.StatementTimeoutSec) * time.Second
}

// RedactedURL возвращает DATABASE_URL без пароля (для логов)
func (c YamlConfig) RedactedURL() string {
	return redactURL(c.Database.URL)
}
