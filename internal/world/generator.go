package world

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/volvasvoyage/internal/gamedata"
	"github.com/samdwyer/volvasvoyage/internal/telemetry"
)

const (
	// Default area dimensions
	DefaultWidth  = 20
	DefaultHeight = 40

	// minDimension is the smallest side that still has an interior cell.
	minDimension = 3
)

var (
	// ErrInvalidDimensions is returned for areas too small to hold a path.
	ErrInvalidDimensions = errors.New("area dimensions too small")
	// ErrNoReachablePath is returned when no walkable path cell is left for
	// the player to start on.
	ErrNoReachablePath = errors.New("no reachable path cells")
	// ErrInvalidStyle is returned for a style that references unusable kinds.
	ErrInvalidStyle = errors.New("invalid area style")
)

// GenParams holds the tunables of the generation algorithm.
// Chances are percentages in [0, 100].
type GenParams struct {
	PathCoverage    float64 // Walk length as a fraction of width*height
	CastleChance    int
	CastleSize      int
	HouseCount      int
	HouseAttempts   int
	HouseMinSize    int
	HouseMaxSize    int
	DoorChance      int
	BarrierChance   int
	EncounterChance int
	ExitAttempts    int
	ExitBand        float64 // Exit rows start at this fraction of the height
}

// DefaultGenParams returns the generation tunables of the original game.
func DefaultGenParams() GenParams {
	return GenParams{
		PathCoverage:    0.6,
		CastleChance:    25,
		CastleSize:      7,
		HouseCount:      4,
		HouseAttempts:   50,
		HouseMinSize:    4,
		HouseMaxSize:    6,
		DoorChance:      50,
		BarrierChance:   10,
		EncounterChance: 3,
		ExitAttempts:    10,
		ExitBand:        0.75,
	}
}

// EncounterSource picks encounter templates for seeding.
type EncounterSource interface {
	SpawnRandom(rng *rand.Rand) *gamedata.EncounterDef
}

// Generator builds areas with a random walk plus structure stamping.
// A Generator is not safe for concurrent use.
type Generator struct {
	params     GenParams
	encounters EncounterSource
	rng        *rand.Rand
	logger     *log.Logger
}

// NewGenerator creates a generator. A nil rng is replaced by a time-seeded
// source and a nil logger by one that discards output.
func NewGenerator(params GenParams, encounters EncounterSource, rng *rand.Rand, logger *log.Logger) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		params:     params,
		encounters: encounters,
		rng:        rng,
		logger:     logger,
	}
}

// Validate checks that the style's kinds exist and fit its fill policy.
func (s Style) Validate() error {
	for _, id := range []KindID{s.Baseline, s.Ground, s.Border} {
		if _, ok := Lookup(id); !ok {
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidStyle, id)
		}
	}
	if !MustKind(s.Ground).Walkable {
		return fmt.Errorf("%w: ground kind %q is not walkable", ErrInvalidStyle, s.Ground)
	}
	if MustKind(s.Border).Walkable {
		return fmt.Errorf("%w: border kind %q is walkable", ErrInvalidStyle, s.Border)
	}
	switch s.Fill {
	case FillOpen:
		if s.Baseline != s.Ground {
			return fmt.Errorf("%w: open fill needs baseline %q to equal ground %q", ErrInvalidStyle, s.Baseline, s.Ground)
		}
	case FillSolid:
		if MustKind(s.Baseline).Walkable {
			return fmt.Errorf("%w: solid fill needs an impassable baseline, got %q", ErrInvalidStyle, s.Baseline)
		}
	default:
		return fmt.Errorf("%w: unknown fill policy %q", ErrInvalidStyle, s.Fill)
	}
	return nil
}

// Generate builds a new area and returns it with the player's start position.
func (g *Generator) Generate(ctx context.Context, name string, width, height int, style Style) (*Area, Point, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "area.generate")
	defer span.End()

	if width < minDimension || height < minDimension {
		return nil, NoPosition, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrInvalidDimensions, width, height, minDimension, minDimension)
	}
	if err := style.Validate(); err != nil {
		return nil, NoPosition, err
	}

	startTime := time.Now()

	area := NewArea(name, width, height, style.Baseline)
	area.Style = style

	g.carvePath(area)

	if style.Castle && g.roll(g.params.CastleChance) {
		g.placeCastle(area)
	}

	for i := 0; i < g.params.HouseCount; i++ {
		g.placeHouse(area)
	}

	if style.Fill == FillOpen {
		g.scatterBarriers(area)
	}

	g.seedEncounters(area)
	g.finalizeBorder(area)
	g.placeExit(area)

	// Structures stamped over the walk leave wall cells in the set.
	area.Report.PrunedCells = area.Path.Retain(func(p Point) bool {
		return area.IsPassable(p.X, p.Y)
	})
	area.Report.PathCells = area.Path.Len()

	start, err := g.placePlayer(area)

	span.SetAttributes(
		attribute.String("area.id", area.ID.String()),
		attribute.String("area.name", name),
		attribute.Int("area.width", width),
		attribute.Int("area.height", height),
		attribute.String("area.fill", string(style.Fill)),
		attribute.Int("area.path_cells", area.Report.PathCells),
		attribute.Bool("area.castle", area.Report.CastlePlaced),
		attribute.Int("area.houses", area.Report.HousesPlaced),
		attribute.Int("area.doorless_stamps", area.Report.DoorlessStamps),
		attribute.Int("area.encounters", area.Report.Encounters),
		attribute.Bool("area.exit", area.Report.Exit != nil),
		attribute.Int64("area.generation_ms", time.Since(startTime).Milliseconds()),
	)

	if err != nil {
		span.SetAttributes(attribute.Bool("failed", true))
		return nil, NoPosition, fmt.Errorf("generate %s: %w", name, err)
	}

	for _, w := range area.Report.Warnings() {
		g.logger.Warn(w, "area", name, "id", area.ID)
	}
	g.logger.Debug("area generated",
		"area", name,
		"size", fmt.Sprintf("%dx%d", width, height),
		"path_cells", area.Report.PathCells,
		"houses", area.Report.HousesPlaced,
		"castle", area.Report.CastlePlaced,
		"encounters", area.Report.Encounters,
	)

	return area, start, nil
}

// carvePath performs the bounded random walk from the center.
func (g *Generator) carvePath(a *Area) {
	current := Point{a.Width / 2, a.Height / 2}
	g.visit(a, current)

	steps := int(float64(a.Width*a.Height) * g.params.PathCoverage)
	for i := 0; i < steps; i++ {
		moves := current.Neighbors()
		next := moves[g.rng.Intn(len(moves))]

		// Stay off the outer ring
		if next.X > 0 && next.X < a.Width-1 && next.Y > 0 && next.Y < a.Height-1 {
			current = next
			g.visit(a, current)
		}
	}
}

// visit records a walk cell, carving it in solid areas.
func (g *Generator) visit(a *Area, p Point) {
	a.Path.Add(p)
	if a.Style.Fill == FillSolid {
		a.SetKind(p.X, p.Y, a.Style.Ground)
	}
}

// placeCastle tries once to stamp a castle at the area center.
func (g *Generator) placeCastle(a *Area) bool {
	size := g.params.CastleSize
	r := Rect{
		X:      a.Width/2 - size/2,
		Y:      a.Height/2 - size/2,
		Width:  size,
		Height: size,
	}

	if !a.isSiteClear(r.Expand(1), a.Style.Ground) {
		a.Report.CastleFailed = true
		return false
	}

	a.stamp(r, castleBlueprint)

	// Main gate at the bottom wall midpoint
	gate := Point{r.X + size/2, r.Y + size - 1}
	a.SetKind(gate.X, gate.Y, castleBlueprint.door)

	a.Structures = append(a.Structures, Structure{Type: StructureCastle, Rect: r, Door: &gate})
	a.Report.CastlePlaced = true
	g.logger.Debug("castle placed", "area", a.Name, "x", r.X, "y", r.Y)
	return true
}

// placeHouse tries up to HouseAttempts origins for one house. A stamp whose
// door roll fails stays on the map without a door and the search continues.
func (g *Generator) placeHouse(a *Area) bool {
	hw := g.randInt(g.params.HouseMinSize, g.params.HouseMaxSize)
	hh := g.randInt(g.params.HouseMinSize, g.params.HouseMaxSize)

	maxX := a.Width - hw - 2
	maxY := a.Height - hh - 2
	if maxX < 2 || maxY < 2 {
		a.Report.HousesFailed++
		return false
	}

	for attempt := 0; attempt < g.params.HouseAttempts; attempt++ {
		r := Rect{X: g.randInt(2, maxX), Y: g.randInt(2, maxY), Width: hw, Height: hh}
		if !a.isSiteClear(r.Expand(1), a.Style.Ground) {
			continue
		}

		a.stamp(r, houseBlueprint)

		candidates := perimeterDoorCandidates(r)
		door := candidates[g.rng.Intn(len(candidates))]
		if g.roll(g.params.DoorChance) {
			a.SetKind(door.X, door.Y, houseBlueprint.door)
			a.Structures = append(a.Structures, Structure{Type: StructureHouse, Rect: r, Door: &door})
			a.Report.HousesPlaced++
			g.logger.Debug("house placed", "area", a.Name, "x", r.X, "y", r.Y, "door_x", door.X, "door_y", door.Y)
			return true
		}

		a.Structures = append(a.Structures, Structure{Type: StructureHouse, Rect: r})
		a.Report.DoorlessStamps++
	}

	a.Report.HousesFailed++
	return false
}

// scatterBarriers turns stray ground into rock, away from the walk and structures.
func (g *Generator) scatterBarriers(a *Area) {
	for y := 1; y < a.Height-1; y++ {
		for x := 1; x < a.Width-1; x++ {
			tile := a.Tiles[y][x]
			if tile.Kind.ID != a.Style.Ground || a.Path.Has(Point{x, y}) || a.inStructure(x, y) {
				continue
			}
			if g.roll(g.params.BarrierChance) {
				a.SetKind(x, y, KindWallRock)
				a.Report.Barriers++
			}
		}
	}
}

// seedEncounters attaches encounters to plain ground on the walk.
func (g *Generator) seedEncounters(a *Area) {
	if g.encounters == nil {
		return
	}
	a.Path.Each(func(p Point) {
		tile := a.Tiles[p.Y][p.X]
		if tile.Kind.ID != a.Style.Ground || !g.roll(g.params.EncounterChance) {
			return
		}
		if e := g.encounters.SpawnRandom(g.rng); e != nil {
			tile.SetEncounter(e)
			a.Report.Encounters++
		}
	})
}

// finalizeBorder forces the outer ring to the border kind.
func (g *Generator) finalizeBorder(a *Area) {
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.IsBorder(x, y) {
				a.SetKind(x, y, a.Style.Border)
			}
		}
	}
}

// placeExit converts a walkable, non-doorway cell in the lower band into the
// area exit.
func (g *Generator) placeExit(a *Area) {
	minY := int(float64(a.Height) * g.params.ExitBand)
	maxY := a.Height - 2
	if minY > maxY {
		minY = maxY
	}
	if minY < 1 {
		minY = 1
	}

	for i := 0; i < g.params.ExitAttempts; i++ {
		x := g.randInt(1, a.Width-2)
		y := g.randInt(minY, maxY)
		if a.IsPassable(x, y) && !a.Tiles[y][x].Kind.IsDoorway() {
			a.SetKind(x, y, KindDoorCave)
			exit := Point{x, y}
			a.Report.Exit = &exit
			g.logger.Debug("world exit placed", "area", a.Name, "x", x, "y", y)
			return
		}
	}
}

// placePlayer picks the start cell uniformly from the walk.
func (g *Generator) placePlayer(a *Area) (Point, error) {
	cells := a.Path.Points()
	if len(cells) == 0 {
		return NoPosition, ErrNoReachablePath
	}
	start := cells[g.rng.Intn(len(cells))]
	a.Tiles[start.Y][start.X].Visited = true
	return start, nil
}

// roll returns true with the given percent chance.
func (g *Generator) roll(percent int) bool {
	return g.rng.Intn(100) < percent
}

// randInt returns a random integer in [min, max].
func (g *Generator) randInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rng.Intn(max-min+1)
}
