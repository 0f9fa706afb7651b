package errors

import "errors"

// Доменные ошибки сида. CLI маппит их в коды выхода (ExitCode), seeder — в Result.Kind.
var (
	ErrConfigurationMissing = errors.New("configuration missing")
	ErrFileNotFound         = errors.New("sql file not found")
	ErrEmptyScript          = errors.New("sql file is empty")
	ErrDatabase             = errors.New("database error")
	ErrUnexpected           = errors.New("unexpected error")
)

// Имена видов ошибок (для логов и Result.Kind)
const (
	KindNone                 = ""
	KindConfigurationMissing = "ConfigurationMissing"
	KindFileNotFound         = "FileNotFound"
	KindEmptyScript          = "EmptyScript"
	KindDatabase             = "DatabaseError"
	KindUnexpected           = "UnexpectedError"
)

// Коды выхода процесса
const (
	ExitOK                   = 0
	ExitUnexpected           = 1
	ExitConfigurationMissing = 2
	ExitFileNotFound         = 3
	ExitDatabase             = 4
)

// Kind возвращает имя вида ошибки; ошибки вне таксономии считаются UnexpectedError
func Kind(err error) string {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrConfigurationMissing):
		return KindConfigurationMissing
	case errors.Is(err, ErrFileNotFound):
		return KindFileNotFound
	case errors.Is(err, ErrEmptyScript):
		return KindEmptyScript
	case errors.Is(err, ErrDatabase):
		return KindDatabase
	default:
		return KindUnexpected
	}
}

// ExitCode возвращает код выхода для ошибки
func ExitCode(err error) int {
	switch Kind(err) {
	case KindNone:
		return ExitOK
	case KindConfigurationMissing:
		return ExitConfigurationMissing
	case KindFileNotFound, KindEmptyScript:
		return ExitFileNotFound
	case KindDatabase:
		return ExitDatabase
	default:
		return ExitUnexpected
	}
}
