package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/volvasvoyage/internal/game"
	"github.com/samdwyer/volvasvoyage/internal/ui"
)

var (
	flagArea   string
	flagWidth  int
	flagHeight int
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Generate an area and print it",
	Long: `Generate one area and print it as text followed by its generation report.
Width and height default to the area's own size; for the starting area they
default to the configured map size.

Examples:
  volva map
  volva map --area "Trader's Hut"
  volva map --width 30 --height 30`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().StringVar(&flagArea, "area", "", "Area name (default: the configured start area)")
	mapCmd.Flags().IntVar(&flagWidth, "width", 0, "Area width")
	mapCmd.Flags().IntVar(&flagHeight, "height", 0, "Area height")
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg.Log.Level)

	ctx := context.Background()
	defer setupTelemetry(ctx, cfg, logger)()

	w, err := game.NewWorld(cfg, nil, game.Options{Logger: logger})
	if err != nil {
		return err
	}

	name, width, height := flagArea, flagWidth, flagHeight
	if name == "" || name == cfg.Map.StartArea {
		name = cfg.Map.StartArea
		if width == 0 {
			width = cfg.Map.Width
		}
		if height == 0 {
			height = cfg.Map.Height
		}
	}

	arrival, err := w.GenerateArea(ctx, name, width, height)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%dx%d) %s\n\n", arrival.Name, arrival.Width, arrival.Height, arrival.AreaID)
	fmt.Fprint(out, ui.RenderText(w.Area(), w.Position()))

	r := arrival.Report
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-16s %d (%d pruned)\n", "Path cells", r.PathCells, r.PrunedCells)
	fmt.Fprintf(out, "  %-16s %v\n", "Castle", r.CastlePlaced)
	fmt.Fprintf(out, "  %-16s %d placed, %d doorless stamps, %d failed\n", "Houses", r.HousesPlaced, r.DoorlessStamps, r.HousesFailed)
	fmt.Fprintf(out, "  %-16s %d\n", "Barriers", r.Barriers)
	fmt.Fprintf(out, "  %-16s %d\n", "Encounters", r.Encounters)
	if r.HasExit() {
		fmt.Fprintf(out, "  %-16s (%d, %d)\n", "Exit", r.Exit.X, r.Exit.Y)
	} else {
		fmt.Fprintf(out, "  %-16s none\n", "Exit")
	}
	fmt.Fprintf(out, "  %-16s (%d, %d)\n", "Start", arrival.Start.X, arrival.Start.Y)
	return nil
}
