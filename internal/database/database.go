package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"

	apperrors "github.com/psds-microservice/db-seeder/internal/errors"
	"github.com/psds-microservice/db-seeder/pkg/constants"
)

// Options параметры подключения
type Options struct {
	Driver           string
	URL              string
	ConnectTimeout   time.Duration
	StatementTimeout time.Duration
}

// DB — одно выделенное соединение с PostgreSQL на время запуска сида
type DB struct {
	db               *sql.DB
	conn             *sql.Conn
	statementTimeout time.Duration

	closeOnce sync.Once
	closeErr  error
}

// Open открывает соединение с PostgreSQL через lib/pq ("postgres") или pgx ("pgx") и проверяет его ping'ом
func Open(ctx context.Context, opts Options) (*DB, error) {
	switch opts.Driver {
	case constants.DriverPQ, constants.DriverPGX:
	default:
		return nil, fmt.Errorf("%w: unsupported driver %q", apperrors.ErrDatabase, opts.Driver)
	}

	db, err := sql.Open(opts.Driver, opts.URL)
	if err != nil {
		return nil, Classify("open", err)
	}
	// Пул не нужен: сид работает в одном соединении
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	connCtx := ctx
	if opts.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connCtx, cancel = context.WithTimeout(ctx, opts.ConnectTimeout)
		defer cancel()
	}

	conn, err := db.Conn(connCtx)
	if err != nil {
		db.Close()
		return nil, Classify("connect", err)
	}
	if err := conn.PingContext(connCtx); err != nil {
		conn.Close()
		db.Close()
		return nil, Classify("ping", err)
	}

	return &DB{
		db:               db,
		conn:             conn,
		statementTimeout: opts.StatementTimeout,
	}, nil
}

// ExecScript выполняет скрипт целиком в одной транзакции: commit при успехе, rollback при любой ошибке.
// Скрипт уходит одним вызовом без аргументов (simple query), поэтому может содержать несколько statement'ов.
func (d *DB) ExecScript(ctx context.Context, script string) (err error) {
	tx, err := d.conn.BeginTx(ctx, nil)
	if err != nil {
		return Classify("begin", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		// ErrTxDone: транзакцию уже завершил database/sql (отмена ctx) или сервер (неудачный COMMIT)
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) && err != nil {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	if d.statementTimeout > 0 {
		q := fmt.Sprintf("SET LOCAL statement_timeout = %d", d.statementTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return Classify("statement_timeout", err)
		}
	}

	if _, err := tx.ExecContext(ctx, script); err != nil {
		return Classify("exec", err)
	}

	if err := tx.Commit(); err != nil {
		return Classify("commit", err)
	}
	committed = true
	return nil
}

// Close закрывает соединение; повторные вызовы ничего не делают и возвращают результат первого
func (d *DB) Close() error {
	d.closeOnce.Do(func() {
		var errs []error
		if d.conn != nil {
			if err := d.conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
				errs = append(errs, err)
			}
		}
		if d.db != nil {
			if err := d.db.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		d.closeErr = errors.Join(errs...)
	})
	return d.closeErr
}
