package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hperssn/drill/internal/catalog"
	"github.com/hperssn/drill/internal/config"
	"github.com/hperssn/drill/internal/storage"
)

var (
	configPath string
	userFlag   string
	levelFlag  string
	version    = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "drill",
	Short: "Timed football training drills",
	Long: `drill runs timed football exercises from the catalog, shows the
current instruction step as time passes, and keeps a history of
completed drills and points earned.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "Path to config file")
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "Player ID to record completions for")
	rootCmd.PersistentFlags().StringVar(&levelFlag, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(exercisesCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles what every subcommand needs.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	userID  string
	catalog *catalog.Catalog
	repo    storage.Repository
}

// loadApp reads configuration and opens the catalog. The repository is only
// opened when withStorage is set.
func loadApp(withStorage bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if levelFlag != "" {
		cfg.LogLevel = levelFlag
	}

	a := &app{
		cfg: cfg,
		log: newLogger(cfg.LogLevel),
	}
	a.userID = resolveUserID(userFlag, cfg, a.log)

	a.catalog, err = catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	if withStorage {
		a.repo, err = storage.Open(cfg.Storage.Driver, cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("opening %s storage: %w", cfg.Storage.Driver, err)
		}
	}
	return a, nil
}

func (a *app) Close() {
	if a.repo == nil {
		return
	}
	if err := a.repo.Close(); err != nil {
		a.log.Warn().Err(err).Msg("failed to close storage")
	}
}

func newLogger(level string) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(logLevel).With().Timestamp().Logger()
}
