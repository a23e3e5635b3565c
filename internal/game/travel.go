package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/volvasvoyage/internal/telemetry"
	"github.com/samdwyer/volvasvoyage/internal/world"
)

// ErrNotOnDoorway is returned by TravelHere when the player's tile offers no travel.
var ErrNotOnDoorway = errors.New("not standing on a doorway")

// Travel discards the current area and generates the destination behind the
// doorway kind. The clock and the player carry over. When the doorway leads
// nowhere, or generation fails, the current area is kept.
func (w *World) Travel(ctx context.Context, doorway world.KindID) (Arrival, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "area.travel")
	defer span.End()
	span.SetAttributes(w.spanAttrs()...)
	span.SetAttributes(attribute.String("travel.doorway", string(doorway)))

	def := w.areas.ByDoorway(string(doorway))
	if def == nil {
		span.SetAttributes(attribute.Bool("failed", true))
		w.logger.Warn("unhandled doorway", "doorway", doorway)
		return Arrival{}, fmt.Errorf("%w: %s", ErrUnknownDoorway, doorway)
	}

	arrival, err := w.enter(ctx, def, 0, 0)
	if err != nil {
		span.SetAttributes(attribute.Bool("failed", true))
		return Arrival{}, fmt.Errorf("travel through %s: %w", doorway, err)
	}

	arrival.Messages = append([]string{fmt.Sprintf("You step through the %s.", doorway)}, arrival.Messages...)
	span.SetAttributes(
		attribute.String("travel.destination", def.Name),
		attribute.String("travel.area_id", arrival.AreaID.String()),
	)
	return arrival, nil
}

// TravelHere travels through the doorway the player stands on.
func (w *World) TravelHere(ctx context.Context) (Arrival, error) {
	if w.area == nil {
		return Arrival{}, ErrNoArea
	}
	if w.action.Kind != ActionTravel {
		return Arrival{}, ErrNotOnDoorway
	}
	return w.Travel(ctx, w.action.Doorway)
}
