package config

import (
	"errors"
	"io/fs"
)

// Config — алиас для YamlConfig
type Config = YamlConfig

// LoadConfig загружает конфигурацию: сначала YAML (если файл есть), затем применяет переопределения из env.
// Отсутствующий файл не ошибка — конфиг собирается из env и дефолтов.
// Битый YAML возвращается как ошибка вместе с конфигом из env.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return LoadConfigFromEnv(), nil
	}
	cfg, err := LoadYamlConfig(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadConfigFromEnv(), nil
		}
		return LoadConfigFromEnv(), err
	}
	ApplyEnvOverrides(cfg)
	return cfg, nil
}

// GetDefaultConfig возвращает конфигурацию по умолчанию
func GetDefaultConfig() *Config {
	return GetDefaultYamlConfig()
}
