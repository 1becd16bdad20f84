package main

import (
	"fmt"
	"os"

	"github.com/newthinker/overlay/internal/config"
	"github.com/newthinker/overlay/internal/logger"
	"github.com/newthinker/overlay/internal/storage/archive"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	debug    bool
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "overlay",
	Short: "Overlay - options-overlay backtest report service",
	Long: `Overlay renders the results of covered call/put backtests on ETFs as an
interactive performance chart and comparison tables.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "minimum log level (debug, info, warn, error)")
}

// newLogger builds the process logger from --debug and --log-level.
func newLogger() (*zap.Logger, error) {
	log, err := logger.NewWithLevel(debug, logLevel)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return log, nil
}

// loadConfig reads --config when given, otherwise falls back to defaults,
// and validates the result.
func loadConfig(log *zap.Logger) (*config.Config, error) {
	var cfg *config.Config

	if cfgFile != "" {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Defaults()
		log.Warn("no config file specified, using defaults")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (archive.Storage, error) {
	s := cfg.Storage
	return archive.New(archive.Config{
		Type: s.Type,
		Path: s.Path,
		S3: archive.S3Config{
			Bucket:    s.S3.Bucket,
			Endpoint:  s.S3.Endpoint,
			Region:    s.S3.Region,
			AccessKey: s.S3.AccessKey,
			SecretKey: s.S3.SecretKey,
			Prefix:    s.S3.Prefix,
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
