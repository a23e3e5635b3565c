package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/volvasvoyage/internal/daycycle"
	"github.com/samdwyer/volvasvoyage/internal/gamedata"
	"github.com/samdwyer/volvasvoyage/internal/telemetry"
	"github.com/samdwyer/volvasvoyage/internal/world"
)

const stepHours = 1

// MoveResult reports the outcome of a move request. A rejected move changes
// nothing.
type MoveResult struct {
	Accepted      bool
	Reason        string // Why the move was rejected
	From, To      world.Point
	Time          daycycle.Time
	PhaseChanged  bool
	Action        TileAction
	RestAvailable bool
	Messages      []string
}

// Move steps the player onto target, which must be one cardinal step away
// and walkable. A successful step takes one hour.
func (w *World) Move(ctx context.Context, target world.Point) MoveResult {
	_, span := telemetry.Tracer("game").Start(ctx, "player.move")
	defer span.End()
	span.SetAttributes(w.spanAttrs()...)
	span.SetAttributes(
		attribute.Int("move.target_x", target.X),
		attribute.Int("move.target_y", target.Y),
	)

	result := MoveResult{From: w.pos, To: w.pos, Time: w.clock, Action: w.action, RestAvailable: w.restAvailable}

	if reason := w.rejectMove(target); reason != "" {
		result.Reason = reason
		result.Messages = []string{reason}
		span.SetAttributes(attribute.Bool("move.accepted", false), attribute.String("move.reason", reason))
		w.logger.Debug("move rejected", "x", target.X, "y", target.Y, "reason", reason)
		return result
	}

	w.pos = target
	w.area.Tiles[target.Y][target.X].Visited = true
	change, timeMessages := w.advance(stepHours)

	result.Accepted = true
	result.To = target
	result.Time = w.clock
	result.PhaseChanged = change.PhaseChanged
	result.Action = w.action
	result.RestAvailable = w.restAvailable
	result.Messages = append([]string{fmt.Sprintf("Moved to (%d, %d).", target.X, target.Y)}, timeMessages...)
	result.Messages = append(result.Messages, w.actionMessages()...)

	span.SetAttributes(
		attribute.Bool("move.accepted", true),
		attribute.String("move.action", w.action.Kind.String()),
		attribute.Bool("time.phase_changed", change.PhaseChanged),
	)
	return result
}

// rejectMove returns a reason the move is not allowed, or "".
func (w *World) rejectMove(target world.Point) string {
	if w.area == nil {
		return "No area has been generated yet."
	}
	if !w.pos.IsCardinalStep(target) {
		return "You can only move one step (Up, Down, Left, or Right)."
	}
	tile := w.area.TileAt(target.X, target.Y)
	if tile == nil {
		return "You cannot walk beyond the edge of the area."
	}
	if !tile.Kind.IsPassable() {
		return fmt.Sprintf("You cannot walk on %s.", tile.Kind.ID)
	}
	return ""
}

// EncounterResult reports the outcome of an interaction.
type EncounterResult struct {
	Cleared       bool
	Encounter     *gamedata.EncounterDef // The encounter cleared, if any
	Action        TileAction
	RestAvailable bool
	Message       string
}

// InteractEncounter resolves the encounter on the player's own tile and
// removes it for good. Any other cell, or a tile with nothing on it, is a
// no-op.
func (w *World) InteractEncounter(ctx context.Context, x, y int) EncounterResult {
	_, span := telemetry.Tracer("game").Start(ctx, "player.interact")
	defer span.End()
	span.SetAttributes(w.spanAttrs()...)

	result := EncounterResult{Action: w.action, RestAvailable: w.restAvailable}

	switch {
	case w.area == nil:
		result.Message = "No area has been generated yet."
	case (world.Point{X: x, Y: y}) != w.pos:
		result.Message = "You can only interact with the tile you stand on."
	case !w.area.Tiles[y][x].HasEncounter():
		result.Message = "There is no encounter here."
	}
	if result.Message != "" {
		span.SetAttributes(attribute.Bool("interact.cleared", false))
		return result
	}

	e := w.area.Tiles[y][x].ClearEncounter()
	w.refresh()

	result.Cleared = true
	result.Encounter = e
	result.Action = w.action
	result.RestAvailable = w.restAvailable
	result.Message = fmt.Sprintf("You interact with the %s. The encounter fades.", e.Name)

	span.SetAttributes(
		attribute.Bool("interact.cleared", true),
		attribute.String("encounter.id", e.ID),
		attribute.String("encounter.type", string(e.Type)),
	)
	w.logger.Debug("encounter cleared", "encounter", e.ID, "x", x, "y", y)
	return result
}
