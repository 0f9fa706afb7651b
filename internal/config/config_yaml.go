package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/psds-microservice/db-seeder/pkg/constants"
)

// YamlConfig представляет конфигурацию сидера из YAML
type YamlConfig struct {
	Database struct {
		URL                 string `yaml:"url"`
		Driver              string `yaml:"driver"`
		ConnectTimeoutSec   int    `yaml:"connect_timeout_sec"`
		StatementTimeoutSec int    `yaml:"statement_timeout_sec"`
	} `yaml:"database"`

	Seed struct {
		File string `yaml:"file"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// LoadYamlConfig загружает конфигурацию из YAML файла поверх значений по умолчанию
func LoadYamlConfig(path string) (*YamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := GetDefaultYamlConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDefaultYamlConfig возвращает конфигурацию по умолчанию.
// URL базы намеренно пуст: без DATABASE_URL сид не запускается.
func GetDefaultYamlConfig() *YamlConfig {
	cfg := &YamlConfig{}
	cfg.Database.Driver = constants.DriverPQ
	cfg.Database.ConnectTimeoutSec = 10
	cfg.Database.StatementTimeoutSec = 0
	cfg.Seed.File = constants.DefaultSeedFile
	cfg.Logging.Level = "info"
	cfg.Logging.Format = constants.LogFormatConsole
	return cfg
}
