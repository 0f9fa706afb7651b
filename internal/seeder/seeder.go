package seeder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/psds-microservice/db-seeder/internal/config"
	"github.com/psds-microservice/db-seeder/internal/database"
	apperrors "github.com/psds-microservice/db-seeder/internal/errors"
)

// Store — соединение, в котором выполняется скрипт. Реализуется *database.DB.
type Store interface {
	// ExecScript выполняет скрипт одной транзакцией; ошибка означает, что изменения откатены
	ExecScript(ctx context.Context, script string) error
	Close() error
}

// Connector открывает Store по конфигурации
type Connector func(ctx context.Context, cfg config.Config) (Store, error)

// Seeder применяет SQL-скрипт к базе одной транзакцией
type Seeder struct {
	cfg      config.Config
	logger   *zap.Logger
	connect  Connector
	readFile func(name string) ([]byte, error)
}

// Option настраивает Seeder
type Option func(*Seeder)

// WithConnector подменяет способ открытия соединения
func WithConnector(c Connector) Option {
	return func(s *Seeder) { s.connect = c }
}

// WithReadFile подменяет чтение файла скрипта
func WithReadFile(fn func(name string) ([]byte, error)) Option {
	return func(s *Seeder) { s.readFile = fn }
}

// New создаёт Seeder. cfg копируется и дальше не меняется.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Seeder{
		cfg:      cfg,
		logger:   logger,
		connect:  OpenDatabase,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenDatabase — Connector по умолчанию: одно соединение через internal/database
func OpenDatabase(ctx context.Context, cfg config.Config) (Store, error) {
	db, err := database.Open(ctx, database.Options{
		Driver:           cfg.Database.Driver,
		URL:              cfg.Database.URL,
		ConnectTimeout:   cfg.ConnectTimeout(),
		StatementTimeout: cfg.StatementTimeout(),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Run выполняет сид: конфиг → файл → соединение → скрипт → commit/rollback → close.
// Соединение, если оно было открыто, закрывается ровно один раз на любом пути, включая панику.
func (s *Seeder) Run(ctx context.Context) (res Result) {
	start := time.Now()
	res = Result{File: s.cfg.Seed.File, States: []State{StateNotStarted}}
	defer func() {
		res.Duration = time.Since(start)
	}()

	if err := s.cfg.Validate(); err != nil {
		res.Err = err
		s.report(res)
		return res
	}

	script, err := s.loadScript()
	if err != nil {
		res.Err = err
		s.report(res)
		return res
	}
	res.Bytes = len(script)

	s.logger.Info("Connecting to database",
		zap.String("driver", s.cfg.Database.Driver),
		zap.String("url", s.cfg.RedactedURL()))

	s.execute(ctx, script, &res)
	return res
}

// loadScript читает файл целиком. Читаем до подключения: отсутствующий файл не открывает соединение.
func (s *Seeder) loadScript() (string, error) {
	data, err := s.readFile(s.cfg.Seed.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", apperrors.ErrFileNotFound, s.cfg.Seed.File)
		}
		return "", fmt.Errorf("%w: read %s: %w", apperrors.ErrUnexpected, s.cfg.Seed.File, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s", apperrors.ErrEmptyScript, s.cfg.Seed.File)
	}
	return string(data), nil
}

func (s *Seeder) execute(ctx context.Context, script string, res *Result) {
	var store Store
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("%w: panic: %v", apperrors.ErrUnexpected, r)
			if res.Final() == StateExecuted {
				// ExecScript не вернулся — транзакция откатится при закрытии соединения
				res.enter(StateRolledBack)
			}
		}
		s.report(*res)
		if store == nil {
			return
		}
		if err := store.Close(); err != nil {
			s.logger.Warn("Failed to close database connection", zap.Error(err))
		}
		res.Closed = true
		res.enter(StateClosed)
		s.logger.Info("Database connection closed")
	}()

	var err error
	store, err = s.connect(ctx, s.cfg)
	if err != nil {
		store = nil
		res.Err = asDatabaseError(err)
		return
	}
	res.enter(StateConnected)
	s.logger.Info("Connected to database, executing SQL",
		zap.String("file", s.cfg.Seed.File),
		zap.Int("bytes", len(script)))

	res.enter(StateExecuted)
	if err := store.ExecScript(ctx, script); err != nil {
		res.enter(StateRolledBack)
		res.Err = asDatabaseError(err)
		return
	}
	res.enter(StateCommitted)
}

// asDatabaseError гарантирует, что ошибка соединения/выполнения попадёт в DatabaseError.
// Отмена по ctx остаётся в той же категории: откат уже произошёл.
func asDatabaseError(err error) error {
	if errors.Is(err, apperrors.ErrDatabase) {
		return err
	}
	return fmt.Errorf("%w: %w", apperrors.ErrDatabase, err)
}

// report пишет статусную строку по итогу запуска
func (s *Seeder) report(res Result) {
	switch res.Kind() {
	case apperrors.KindConfigurationMissing:
		s.logger.Error("Configuration missing", zap.Error(res.Err))
	case apperrors.KindNone:
		s.logger.Info("Successfully executed SQL script",
			zap.String("file", res.File),
			zap.Int("bytes", res.Bytes))
	case apperrors.KindFileNotFound:
		s.logger.Error("SQL file not found", zap.String("file", res.File))
	case apperrors.KindEmptyScript:
		s.logger.Error("SQL file is empty", zap.String("file", res.File))
	case apperrors.KindDatabase:
		fields := []zap.Field{zap.Error(res.Err), zap.String("hint", database.PermissionHint)}
		var dbErr *database.Error
		if errors.As(res.Err, &dbErr) {
			if dbErr.Code != "" {
				fields = append(fields, zap.String("sqlstate", dbErr.Code))
			}
			if dbErr.Hint != "" {
				fields = append(fields, zap.String("server_hint", dbErr.Hint))
			}
			fields = append(fields, zap.Bool("permission_denied", dbErr.PermissionDenied()))
		}
		s.logger.Error("Database error", fields...)
	default:
		s.logger.Error("Unexpected error", zap.Error(res.Err))
	}
}
