package cmd

import (
	"github.com/spf13/cobra"

	"github.com/psds-microservice/db-seeder/pkg/constants"
)

var (
	flagDebug   bool
	flagConfig  string
	flagEnvFile string
)

var rootCmd = &cobra.Command{
	Use:           "db-seeder",
	Short:         "Apply a SQL seed script to PostgreSQL in a single transaction",
	RunE:          runSeed, // по умолчанию — сид
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute запускает корневую команду (Cobra CLI)
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagDebug, "debug", false, "Debug logging")
	pf.StringVar(&flagConfig, "config", constants.DefaultConfigPath, "Path to config.yaml (optional)")
	pf.StringVar(&flagEnvFile, "env-file", constants.DefaultEnvFile, "Path to .env file (optional)")

	addSeedFlags(rootCmd)

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}
