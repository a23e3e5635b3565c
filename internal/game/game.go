package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/volvasvoyage/internal/config"
	"github.com/samdwyer/volvasvoyage/internal/daycycle"
	"github.com/samdwyer/volvasvoyage/internal/entity"
	"github.com/samdwyer/volvasvoyage/internal/gamedata"
	"github.com/samdwyer/volvasvoyage/internal/world"
)

var (
	// ErrUnknownDoorway is returned when a doorway kind leads nowhere.
	ErrUnknownDoorway = errors.New("unknown doorway")
	// ErrUnknownArea is returned for an area name with no definition.
	ErrUnknownArea = errors.New("unknown area")
	// ErrNoArea is returned when an operation needs a live area.
	ErrNoArea = errors.New("no area generated")
	// ErrRestUnavailable is returned by Rest outside the rest window.
	ErrRestUnavailable = errors.New("rest is not available now")
)

// World is the live game state: the current area, the player's position on
// it, the clock and the player. A World is not safe for concurrent use.
type World struct {
	cfg    config.Config
	gen    *world.Generator
	areas  *gamedata.AreaRegistry
	rng    *rand.Rand
	logger *log.Logger

	area   *world.Area
	pos    world.Point
	clock  daycycle.Time
	player *entity.Player

	action        TileAction
	restAvailable bool
}

// NewWorld creates a world with no area yet. Call Start or GenerateArea
// before moving.
func NewWorld(cfg config.Config, player *entity.Player, opts Options) (*World, error) {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Encounters == nil {
		registry, err := gamedata.LoadEncounterRegistry()
		if err != nil {
			return nil, fmt.Errorf("load encounters: %w", err)
		}
		opts.Encounters = registry
	}
	if opts.Areas == nil {
		registry, err := gamedata.LoadAreaRegistry()
		if err != nil {
			return nil, fmt.Errorf("load areas: %w", err)
		}
		opts.Areas = registry
	}
	if player == nil {
		player = entity.NewPlayer(entity.KinMale, nil, cfg.Player.MaxHealth)
	}

	w := &World{
		cfg:    cfg,
		gen:    world.NewGenerator(cfg.GenParams(), opts.Encounters, opts.Rand, opts.Logger),
		areas:  opts.Areas,
		rng:    opts.Rand,
		logger: opts.Logger,
		pos:    world.NoPosition,
		clock:  daycycle.Time{Hour: cfg.Clock.StartHour, Day: cfg.Clock.StartDay}.Normalize(),
		player: player,
		action: clearAction(),
	}
	w.restAvailable = daycycle.RestEligible(w.clock.Hour, w.clock.Phase())
	return w, nil
}

// Arrival describes a freshly generated area.
type Arrival struct {
	AreaID   uuid.UUID
	Name     string
	Width    int
	Height   int
	Start    world.Point
	Report   world.Report
	Action   TileAction
	Messages []string
}

// Start generates the configured starting area.
func (w *World) Start(ctx context.Context) (Arrival, error) {
	return w.GenerateArea(ctx, w.cfg.Map.StartArea, w.cfg.Map.Width, w.cfg.Map.Height)
}

// GenerateArea replaces the current area with a newly generated one and
// places the player on it. Non-positive sizes are rolled from the area
// definition. On error the current area is left untouched.
func (w *World) GenerateArea(ctx context.Context, name string, width, height int) (Arrival, error) {
	def := w.areas.ByName(name)
	if def == nil {
		return Arrival{}, fmt.Errorf("%w: %s", ErrUnknownArea, name)
	}
	return w.enter(ctx, def, width, height)
}

func (w *World) enter(ctx context.Context, def *gamedata.AreaDef, width, height int) (Arrival, error) {
	if width <= 0 {
		width = def.Width.Roll(w.rng)
	}
	if height <= 0 {
		height = def.Height.Roll(w.rng)
	}

	area, start, err := w.gen.Generate(ctx, def.Name, width, height, world.StyleOf(def))
	if err != nil {
		return Arrival{}, err
	}
	w.load(area, start)

	var messages []string
	if def.Arrival != "" {
		messages = append(messages, def.Arrival)
	}
	messages = append(messages, fmt.Sprintf("You arrive at %s.", def.Name))
	messages = append(messages, w.actionMessages()...)

	w.logger.Info("arrived", "area", def.Name, "id", area.ID, "x", start.X, "y", start.Y)

	return Arrival{
		AreaID:   area.ID,
		Name:     area.Name,
		Width:    area.Width,
		Height:   area.Height,
		Start:    start,
		Report:   area.Report,
		Action:   w.action,
		Messages: messages,
	}, nil
}

// load installs an area and position together and re-evaluates the tile.
func (w *World) load(area *world.Area, pos world.Point) {
	w.area = area
	w.pos = pos
	w.refresh()
}

// refresh recomputes the current tile action and rest availability.
func (w *World) refresh() {
	var tile *world.Tile
	if w.area != nil {
		tile = w.area.TileAt(w.pos.X, w.pos.Y)
	}
	w.action = evaluateTileAction(tile)
	w.restAvailable = daycycle.RestEligible(w.clock.Hour, w.clock.Phase())
}

// actionMessages narrates the current tile action.
func (w *World) actionMessages() []string {
	switch w.action.Kind {
	case ActionInteract:
		e := w.action.Encounter
		return []string{fmt.Sprintf("You have found a %s: %s!", e.Type, e.Name)}
	case ActionTravel:
		return []string{"A path to another realm lies before you."}
	default:
		return nil
	}
}

// advance moves the clock and narrates phase and rest changes.
func (w *World) advance(hours int) (daycycle.Change, []string) {
	restBefore := w.restAvailable
	change := w.clock.Advance(hours)
	w.refresh()

	var messages []string
	if change.PhaseChanged {
		phase := w.clock.Phase()
		msg := fmt.Sprintf("The time changes. It is now %s.", phase.ID)
		if phase.Danger {
			msg += " Be wary of the shadows!"
		}
		messages = append(messages, msg)
	}
	if w.restAvailable && !restBefore {
		messages = append(messages, "It is time to rest. You may rest to recover health.")
	}
	return change, messages
}

// Area returns the live area, or nil before the first generation.
func (w *World) Area() *world.Area { return w.area }

// Position returns the player's position, or world.NoPosition.
func (w *World) Position() world.Point { return w.pos }

// Player returns the player.
func (w *World) Player() *entity.Player { return w.player }

// Time returns a snapshot of the clock.
func (w *World) Time() daycycle.Time { return w.clock }

// Phase returns the current phase.
func (w *World) Phase() daycycle.Phase { return w.clock.Phase() }

// CurrentAction returns what the player's tile offers.
func (w *World) CurrentAction() TileAction { return w.action }

// RestAvailable returns true if Rest would be accepted.
func (w *World) RestAvailable() bool { return w.restAvailable }

// AdjacentWalkable returns the cells the player can step to.
func (w *World) AdjacentWalkable() []world.Point {
	if w.area == nil {
		return nil
	}
	return w.area.AdjacentWalkable(w.pos)
}

func (w *World) spanAttrs() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.Int("player.x", w.pos.X),
		attribute.Int("player.y", w.pos.Y),
		attribute.Int("time.day", w.clock.Day),
		attribute.Int("time.hour", w.clock.Hour),
		attribute.Int("player.health", w.player.Health),
	}
	if w.area != nil {
		attrs = append(attrs,
			attribute.String("area.id", w.area.ID.String()),
			attribute.String("area.name", w.area.Name),
		)
	}
	return attrs
}
