package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	apperrors "github.com/psds-microservice/db-seeder/internal/errors"
	"github.com/psds-microservice/db-seeder/pkg/constants"
)

// PermissionHint — подсказка, которую выводим вместе с любой ошибкой БД
const PermissionHint = "if the database enforces row-level security or restricted grants, " +
	"run the script as the table owner or a role with BYPASSRLS, or apply it from the provider's SQL editor"

// Error — ошибка драйвера, приведённая к общему виду для lib/pq и pgx.
// errors.Is(err, apperrors.ErrDatabase) всегда true.
type Error struct {
	Op      string
	Code    string
	Message string
	Detail  string
	Hint    string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Code != "" {
		fmt.Fprintf(&b, " (SQLSTATE %s)", e.Code)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	return []error{apperrors.ErrDatabase, e.Err}
}

// PermissionDenied сообщает, что сервер отклонил операцию по правам (в т.ч. политикой RLS)
func (e *Error) PermissionDenied() bool {
	switch e.Code {
	case constants.SQLStateInsufficientPrivilege,
		constants.SQLStateInvalidAuthorization,
		constants.SQLStateInvalidPassword:
		return true
	}
	return strings.Contains(strings.ToLower(e.Message), "row-level security")
}

// Classify оборачивает ошибку драйвера в *Error, вытаскивая SQLSTATE и текст сервера
func Classify(op string, err error) *Error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return de
	}

	e := &Error{Op: op, Message: err.Error(), Err: err}

	var pqErr *pq.Error
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pqErr):
		e.Code = string(pqErr.Code)
		e.Message = pqErr.Message
		e.Detail = pqErr.Detail
		e.Hint = pqErr.Hint
	case errors.As(err, &pgErr):
		e.Code = pgErr.Code
		e.Message = pgErr.Message
		e.Detail = pgErr.Detail
		e.Hint = pgErr.Hint
	}
	return e
}
