package constants

// Пути по умолчанию (относительно рабочей директории)
const (
	DefaultConfigPath = "./config/config.yaml"
	DefaultSeedFile   = "./database/seeds/seed.sql"
	DefaultEnvFile    = ".env"
)
