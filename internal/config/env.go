package config

import (
	"os"
	"strconv"

	"github.com/psds-microservice/db-seeder/pkg/constants"
)

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// ApplyEnvOverrides применяет переменные окружения поверх конфига (env переопределяет YAML)
func ApplyEnvOverrides(cfg *YamlConfig) {
	if v := getEnv(constants.EnvDatabaseURL, ""); v != "" {
		cfg.Database.URL = v
	}
	if v := getEnv(constants.EnvDBDriver, ""); v != "" {
		cfg.Database.Driver = v
	}
	if p := getEnvInt(constants.EnvDBConnectTimeoutSec, -1); p >= 0 {
		cfg.Database.ConnectTimeoutSec = p
	}
	if p := getEnvInt(constants.EnvDBStatementTimeout, -1); p >= 0 {
		cfg.Database.StatementTimeoutSec = p
	}

	if v := getEnv(constants.EnvSeedFile, ""); v != "" {
		cfg.Seed.File = v
	}

	if v := getEnv(constants.EnvLogLevel, ""); v != "" {
		cfg.Logging.Level = v
	}
	if v := getEnv(constants.EnvLogFormat, ""); v != "" {
		cfg.Logging.Format = v
	}
}

// LoadConfigFromEnv собирает конфиг только из переменных окружения (для работы без YAML)
func LoadConfigFromEnv() *YamlConfig {
	cfg := GetDefaultYamlConfig()
	ApplyEnvOverrides(cfg)
	return cfg
}
