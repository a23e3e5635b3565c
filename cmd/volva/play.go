package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/volvasvoyage/internal/entity"
	"github.com/samdwyer/volvasvoyage/internal/game"
	"github.com/samdwyer/volvasvoyage/internal/gamedata"
	"github.com/samdwyer/volvasvoyage/internal/ui"
)

var (
	flagKin  string
	flagPath string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore in the terminal",
	Long: `Start a new voyage at the configured starting area.

Controls:
  Arrows/hjkl/click  - Move one step
  E                  - Interact with an encounter
  T                  - Travel through a doorway
  R                  - Rest until morning (23:00 or at night)
  Q/Esc              - Quit

Logs are written to the configured log file while playing.

Examples:
  volva play
  volva play --kin female --path skirmisher`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagKin, "kin", "", "Kin: male or female (default from config)")
	playCmd.Flags().StringVar(&flagPath, "path", "", "Path: huscarl, volva or skirmisher (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	kinName, pathID := cfg.Player.Kin, cfg.Player.Path
	if flagKin != "" {
		kinName = flagKin
	}
	if flagPath != "" {
		pathID = flagPath
	}

	kin, err := entity.ParseKin(kinName)
	if err != nil {
		return err
	}
	paths, err := gamedata.LoadPaths()
	if err != nil {
		return err
	}
	path := gamedata.FindPath(paths, pathID)
	if path == nil {
		return fmt.Errorf("unknown path %q", pathID)
	}

	// The terminal belongs to tcell while playing
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := newLogger(logFile, cfg.Log.Level)

	ctx := context.Background()
	defer setupTelemetry(ctx, cfg, logger)()

	player := entity.NewPlayer(kin, path, cfg.Player.MaxHealth)
	w, err := game.NewWorld(cfg, player, game.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	arrival, err := w.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", cfg.Map.StartArea, err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}

	session := ui.NewSession(screen, w, logger)
	session.Messages().Add(fmt.Sprintf("Welcome, %s! You start your journey at %s. Select an adjacent tile to move.",
		player.Name, arrival.Name))
	session.Messages().Add(arrival.Messages...)

	logger.Info("voyage started", "kin", kin, "path", path.ID, "area", arrival.Name, "area_id", arrival.AreaID)
	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	logger.Info("voyage ended", "day", w.Time().Day, "hour", w.Time().Hour, "health", player.Health)
	return nil
}
