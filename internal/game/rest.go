package game

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/volvasvoyage/internal/daycycle"
	"github.com/samdwyer/volvasvoyage/internal/telemetry"
)

// RestResult reports the outcome of a rest.
type RestResult struct {
	Hours     int // Hours skipped
	Healed    int // Health actually restored
	Damage    int // Damage taken from a disturbance
	Disturbed bool
	Fallen    bool
	Time      daycycle.Time
	Messages  []string
}

// Rest sleeps until the morning hour. It is only allowed at the last hour of
// the evening or during the night. A night rest may be disturbed, which
// deals damage and forfeits the healing; the time is spent either way.
func (w *World) Rest(ctx context.Context) (RestResult, error) {
	_, span := telemetry.Tracer("game").Start(ctx, "player.rest")
	defer span.End()
	span.SetAttributes(w.spanAttrs()...)

	phase := w.clock.Phase()
	if !daycycle.RestEligible(w.clock.Hour, phase) {
		span.SetAttributes(attribute.Bool("rest.allowed", false))
		return RestResult{Time: w.clock}, fmt.Errorf("%w: it is %02d:00 (%s)", ErrRestUnavailable, w.clock.Hour, phase.ID)
	}

	rc := w.cfg.Rest
	hours := daycycle.HoursUntil(w.clock.Hour, rc.MorningHour)
	heal := int(math.Round(float64(w.player.MaxHealth*rc.HealPercentPerHour*hours) / 100))

	var result RestResult
	result.Hours = hours

	if phase.Danger {
		result.Messages = append(result.Messages, fmt.Sprintf("You attempt to rest during the dangerous %s hours...", phase.ID))
		if w.rng.Intn(100) < rc.NightAttackChance {
			result.Disturbed = true
			result.Messages = append(result.Messages, "A shadow attacks while you rest! You are jolted awake!")
			result.Damage = w.player.TakeDamage(rc.AttackDamage)
			result.Messages = append(result.Messages, fmt.Sprintf("You took %d damage.", result.Damage))
		}
	} else {
		result.Messages = append(result.Messages, fmt.Sprintf("You settle down for a safe rest during the late %s.", phase.ID))
	}

	if result.Disturbed {
		result.Messages = append(result.Messages, "The attack disturbed your rest! You gain no healing from this attempt.")
	} else {
		result.Healed = w.player.Heal(heal)
		result.Messages = append(result.Messages, fmt.Sprintf("You feel well-rested and recover %d HP.", result.Healed))
	}

	_, timeMessages := w.advance(hours)
	result.Time = w.clock
	result.Messages = append(result.Messages, fmt.Sprintf("It is now Day %d, %02d:00 (%s).", w.clock.Day, w.clock.Hour, w.clock.Phase().ID))
	result.Messages = append(result.Messages, timeMessages...)

	if w.player.IsFallen() {
		result.Fallen = true
		result.Messages = append(result.Messages, "The warrior has fallen!")
		w.logger.Warn("player fallen", "day", w.clock.Day, "hour", w.clock.Hour)
	}

	span.SetAttributes(
		attribute.Bool("rest.allowed", true),
		attribute.Int("rest.hours", hours),
		attribute.Int("rest.healed", result.Healed),
		attribute.Bool("rest.disturbed", result.Disturbed),
		attribute.Bool("player.fallen", result.Fallen),
	)
	return result, nil
}
