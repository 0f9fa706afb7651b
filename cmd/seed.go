package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psds-microservice/db-seeder/internal/config"
	"github.com/psds-microservice/db-seeder/internal/logger"
	"github.com/psds-microservice/db-seeder/internal/seeder"
)

var (
	seedFile    string
	seedDriver  string
	seedTimeout int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Execute the seed SQL file in one transaction",
	RunE:  runSeed,
}

func init() {
	addSeedFlags(seedCmd)
}

func addSeedFlags(c *cobra.Command) {
	c.Flags().StringVar(&seedFile, "file", "", "Path to the SQL file (overrides SEED_FILE)")
	c.Flags().StringVar(&seedDriver, "driver", "", "database/sql driver: postgres (lib/pq) or pgx")
	c.Flags().IntVar(&seedTimeout, "timeout", 0, "Statement timeout in seconds, 0 = none (overrides DB_STATEMENT_TIMEOUT_SEC)")
}

// reportedError — ошибка, о которой сидер уже написал в лог
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Reported сообщает, что ошибка уже выведена в лог и печатать её повторно не нужно
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

func runSeed(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(flagEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("env file: %w", err)
	}

	cfg, cfgErr := config.LoadConfig(flagConfig)
	if seedFile != "" {
		cfg.Seed.File = seedFile
	}
	if seedDriver != "" {
		cfg.Database.Driver = seedDriver
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Database.StatementTimeoutSec = seedTimeout
	}

	log, err := logger.New(*cfg, flagDebug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	if cfgErr != nil {
		log.Warn("Failed to load config file, using env", zap.String("path", flagConfig), zap.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res := seeder.New(*cfg, log).Run(ctx)
	if res.Err != nil {
		log.Debug("Seed failed",
			zap.String("kind", res.Kind()),
			zap.Any("states", res.States),
			zap.Duration("duration", res.Duration))
		return reportedError{err: res.Err}
	}
	log.Info("seed: ok", zap.Duration("duration", res.Duration))
	return nil
}
