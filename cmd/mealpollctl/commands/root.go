package commands

import (
	"fmt"
	"os"

	"mealpoll-go/internal/config"
	"mealpoll-go/internal/db"
	"mealpoll-go/pkg/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "mealpollctl",
	Short: "Operator tooling for the meal poll service",
	Long: `mealpollctl manages the meal poll service from the command line.

It reads the same environment (and .env file) as the service itself, so it
can be run from the service's working directory without extra flags.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// connect loads config and opens the database the same way the service does.
func connect() (*gorm.DB, config.Config, error) {
	log := logger.NewFromEnv()

	cfg, err := config.Load(log)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("load config: %w", err)
	}

	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("connect: %w", err)
	}

	return dbConn, cfg, nil
}

func closeDB(dbConn *gorm.DB) {
	sqlDB, err := dbConn.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
