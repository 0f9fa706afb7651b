package constants

// Переменные окружения
const (
	EnvDatabaseURL         = "DATABASE_URL"
	EnvDBDriver            = "DB_DRIVER"
	EnvDBConnectTimeoutSec = "DB_CONNECT_TIMEOUT_SEC"
	EnvDBStatementTimeout  = "DB_STATEMENT_TIMEOUT_SEC"
	EnvSeedFile            = "SEED_FILE"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
)
