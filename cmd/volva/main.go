// volva is a tile exploration game set on a Norse coast.
//
// Usage:
//
//	volva play      - Explore in the terminal
//	volva map       - Generate an area and print it
//	volva phases    - Show the day phases
//
// Global flags:
//
//	--config <path>     - Config YAML (default search: ~/.volva/config.yaml, ./configs/volva.yaml)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/volvasvoyage/internal/config"
	"github.com/samdwyer/volvasvoyage/internal/telemetry"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		stdlog.Printf("Note: .env file not loaded: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "volva",
	Short: "Völva's Voyage - explore a Norse coast in your terminal",
	Long: `Völva's Voyage is a tile exploration game. Walk the paths of a
generated coast, meet what waits on them, pass through doorways into new
areas and rest through the night.

Examples:
  volva play --kin female --path volva
  volva map --area "Dark Cavern"
  volva phases`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(phasesCmd)
}

// loadConfig loads the configuration and applies the --log-level flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newLogger builds the structured logger writing to w.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "volva",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// setupTelemetry starts the OTLP exporter when enabled and returns its
// shutdown function. Failures are logged and the game runs without traces.
func setupTelemetry(ctx context.Context, cfg config.Config, logger *log.Logger) func() {
	if !cfg.Telemetry.Enabled {
		return func() {}
	}

	setupOTelEnv()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without observability", "err", err)
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			logger.Error("error shutting down telemetry", "err", err)
		}
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	env := telemetry.HoneycombEnv(os.Getenv("VOLVA_HONEYCOMB_API_KEY"), os.Getenv("VOLVA_HONEYCOMB_DATASET"))
	for k, v := range env {
		os.Setenv(k, v)
	}
}
