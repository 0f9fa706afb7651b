package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/psds-microservice/db-seeder/internal/config"
	"github.com/psds-microservice/db-seeder/pkg/constants"
)

// New создаёт zap-логгер: при debug — development-конфиг, иначе production
// с уровнем и форматом из cfg.Logging. Статусные строки сида идут в stdout.
func New(cfg config.Config, debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Logging.Level, err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stdout"}
	zc.Sampling = nil
	switch cfg.Logging.Format {
	case constants.LogFormatJSON:
	case constants.LogFormatConsole, "":
		zc.Encoding = constants.LogFormatConsole
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Logging.Format)
	}

	return zc.Build()
}
