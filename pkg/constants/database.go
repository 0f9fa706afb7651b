package constants

// Имена драйверов database/sql
const (
	DriverPQ  = "postgres" // github.com/lib/pq
	DriverPGX = "pgx"      // github.com/jackc/pgx/v5/stdlib
)

// SQLSTATE коды, по которым выдаётся подсказка о правах/RLS
const (
	SQLStateInsufficientPrivilege = "42501"
	SQLStateInvalidAuthorization  = "28000"
	SQLStateInvalidPassword       = "28P01"
)

// Форматы логов
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)
