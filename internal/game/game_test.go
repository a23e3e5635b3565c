package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/volvasvoyage/internal/config"
	"github.com/samdwyer/volvasvoyage/internal/daycycle"
	"github.com/samdwyer/volvasvoyage/internal/entity"
	"github.com/samdwyer/volvasvoyage/internal/gamedata"
	"github.com/samdwyer/volvasvoyage/internal/world"
)

var draugr = &gamedata.EncounterDef{ID: "draugr", Type: gamedata.EncounterEnemy, Name: "Draugr", Description: "A restless undead warrior."}

func newTestWorld(t *testing.T, mutate func(*config.Config)) *World {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := NewWorld(cfg, entity.NewPlayer(entity.KinFemale, nil, cfg.Player.MaxHealth), Options{Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

// testArea builds a 7x7 field with a rock ring:
//
//	(3,2) lava        above the start
//	(3,4) draugr      below the start
//	(4,3) door_cave   right of the start
//	(5,5) door_house  holding a draugr
func testArea() *world.Area {
	a := world.NewArea("Test", 7, 7, world.KindGroundField)
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			if a.IsBorder(x, y) {
				a.SetKind(x, y, world.KindWallRock)
			}
		}
	}
	a.SetKind(3, 2, world.KindLava)
	a.TileAt(3, 4).SetEncounter(draugr)
	a.SetKind(4, 3, world.KindDoorCave)
	a.SetKind(5, 5, world.KindDoorHouse)
	a.TileAt(5, 5).SetEncounter(draugr)
	return a
}

func loadedWorld(t *testing.T) *World {
	t.Helper()
	w := newTestWorld(t, nil)
	w.load(testArea(), world.Point{X: 3, Y: 3})
	return w
}

func TestMoveBeforeArea(t *testing.T) {
	w := newTestWorld(t, nil)
	before := w.Time()

	res := w.Move(context.Background(), world.Point{X: 0, Y: 0})
	if res.Accepted {
		t.Fatal("move without an area should be rejected")
	}
	if w.Position() != world.NoPosition {
		t.Errorf("position = %v, want NoPosition", w.Position())
	}
	if w.Time() != before {
		t.Errorf("time advanced on a rejected move: %+v", w.Time())
	}
	if w.AdjacentWalkable() != nil {
		t.Error("AdjacentWalkable should be nil before an area exists")
	}
}

func TestMoveRejections(t *testing.T) {
	tests := []struct {
		name   string
		target world.Point
	}{
		{"same cell", world.Point{X: 3, Y: 3}},
		{"diagonal", world.Point{X: 4, Y: 4}},
		{"two steps", world.Point{X: 1, Y: 3}},
		{"lava", world.Point{X: 3, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := loadedWorld(t)
			before := w.Time()

			res := w.Move(context.Background(), tt.target)
			if res.Accepted {
				t.Fatalf("Move(%v) accepted", tt.target)
			}
			if res.Reason == "" {
				t.Error("rejection without a reason")
			}
			if w.Position() != (world.Point{X: 3, Y: 3}) {
				t.Errorf("position changed to %v", w.Position())
			}
			if w.Time() != before {
				t.Errorf("time changed to %+v", w.Time())
			}
			if w.Area().TileAt(tt.target.X, tt.target.Y).Visited {
				t.Error("rejected target marked visited")
			}
		})
	}
}

func TestMoveEdgeOfArea(t *testing.T) {
	w := newTestWorld(t, nil)
	w.load(testArea(), world.Point{X: 0, Y: 3})

	if res := w.Move(context.Background(), world.Point{X: -1, Y: 3}); res.Accepted {
		t.Error("move off the grid accepted")
	}
}

func TestMoveAdvancesTime(t *testing.T) {
	w := loadedWorld(t)

	res := w.Move(context.Background(), world.Point{X: 2, Y: 3})
	if !res.Accepted {
		t.Fatalf("move rejected: %s", res.Reason)
	}
	if w.Position() != (world.Point{X: 2, Y: 3}) {
		t.Errorf("position = %v", w.Position())
	}
	if w.Time() != (daycycle.Time{Hour: 7, Day: 1}) {
		t.Errorf("time = %+v, want 07:00 day 1", w.Time())
	}
	if !w.Area().TileAt(2, 3).Visited {
		t.Error("target not marked visited")
	}
	if res.Action.Kind != ActionNone || res.Action.Description != "The area is clear. You see only the landscape." {
		t.Errorf("action = %+v", res.Action)
	}
}

func TestAdjacentWalkable(t *testing.T) {
	w := loadedWorld(t)
	got := w.AdjacentWalkable()
	want := []world.Point{{X: 3, Y: 4}, {X: 2, Y: 3}, {X: 4, Y: 3}}
	if len(got) != len(want) {
		t.Fatalf("AdjacentWalkable() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AdjacentWalkable()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEncounterLifecycle(t *testing.T) {
	ctx := context.Background()
	w := loadedWorld(t)

	res := w.Move(ctx, world.Point{X: 3, Y: 4})
	if res.Action.Kind != ActionInteract || res.Action.Encounter != draugr {
		t.Fatalf("action = %+v, want interact with draugr", res.Action)
	}

	// Only the player's own cell
	if r := w.InteractEncounter(ctx, 5, 5); r.Cleared {
		t.Error("interacted with a distant tile")
	}
	if !w.Area().TileAt(5, 5).HasEncounter() {
		t.Error("distant encounter was cleared")
	}

	first := w.InteractEncounter(ctx, 3, 4)
	if !first.Cleared || first.Encounter != draugr {
		t.Fatalf("first interaction = %+v", first)
	}
	if first.Action.Kind != ActionNone {
		t.Errorf("action after clearing = %s, want none", first.Action.Kind)
	}

	second := w.InteractEncounter(ctx, 3, 4)
	if second.Cleared || second.Message != "There is no encounter here." {
		t.Errorf("second interaction = %+v", second)
	}

	// Leaving and returning does not respawn it
	w.Move(ctx, world.Point{X: 3, Y: 3})
	res = w.Move(ctx, world.Point{X: 3, Y: 4})
	if res.Action.Kind != ActionNone {
		t.Errorf("encounter came back: %+v", res.Action)
	}
	if w.Area().TileAt(3, 4).InitialEncounter != draugr {
		t.Error("initial encounter should be kept")
	}
}

func TestTileActionPriority(t *testing.T) {
	area := testArea()

	door := evaluateTileAction(area.TileAt(4, 3))
	if door.Kind != ActionTravel || door.Doorway != world.KindDoorCave {
		t.Errorf("door_cave action = %+v", door)
	}
	if door.Title != "door cave" {
		t.Errorf("door title = %q", door.Title)
	}

	both := evaluateTileAction(area.TileAt(5, 5))
	if both.Kind != ActionInteract {
		t.Errorf("encounter on a doorway should win, got %s", both.Kind)
	}

	area.TileAt(5, 5).ClearEncounter()
	if got := evaluateTileAction(area.TileAt(5, 5)); got.Kind != ActionTravel || got.Doorway != world.KindDoorHouse {
		t.Errorf("cleared doorway action = %+v", got)
	}

	if got := evaluateTileAction(nil); got.Kind != ActionNone {
		t.Errorf("nil tile action = %s", got.Kind)
	}
}

func TestTravel(t *testing.T) {
	tests := []struct {
		doorway    world.KindID
		name       string
		minW, maxW int
		minH, maxH int
	}{
		{world.KindDoorHouse, "Trader's Hut", 8, 12, 8, 12},
		{world.KindDoorCave, "Dark Cavern", 20, 20, 60, 60},
		{world.KindDoorGate, "Castle Courtyard", 10, 10, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := loadedWorld(t)
			w.Move(context.Background(), world.Point{X: 2, Y: 3})
			w.player.TakeDamage(25)
			before := w.Time()
			oldArea := w.Area()

			arrival, err := w.Travel(context.Background(), tt.doorway)
			if err != nil {
				t.Fatalf("Travel(%s) failed: %v", tt.doorway, err)
			}
			a := w.Area()
			if a == oldArea || a.Name != tt.name || arrival.Name != tt.name {
				t.Errorf("arrived at %q", a.Name)
			}
			if a.Width < tt.minW || a.Width > tt.maxW || a.Height < tt.minH || a.Height > tt.maxH {
				t.Errorf("size %dx%d outside %d-%d x %d-%d", a.Width, a.Height, tt.minW, tt.maxW, tt.minH, tt.maxH)
			}
			if w.Time() != before {
				t.Errorf("travel changed time: %+v -> %+v", before, w.Time())
			}
			if w.Player().Health != 75 {
				t.Errorf("health = %d, want 75", w.Player().Health)
			}
			pos := w.Position()
			if pos != arrival.Start || !a.Path.Has(pos) || !a.IsPassable(pos.X, pos.Y) {
				t.Errorf("start %v is not a walkable path cell", pos)
			}
			if arrival.AreaID != a.ID {
				t.Error("arrival ID does not match the area")
			}
		})
	}
}

func TestTravelUnknownDoorway(t *testing.T) {
	for _, kind := range []world.KindID{world.KindStairsUp, world.KindStairsDown, world.KindBridge} {
		w := loadedWorld(t)
		area := w.Area()

		_, err := w.Travel(context.Background(), kind)
		if !errors.Is(err, ErrUnknownDoorway) {
			t.Errorf("Travel(%s) error = %v, want ErrUnknownDoorway", kind, err)
		}
		if w.Area() != area || w.Position() != (world.Point{X: 3, Y: 3}) {
			t.Errorf("Travel(%s) changed the world", kind)
		}
	}
}

func TestTravelHere(t *testing.T) {
	ctx := context.Background()
	w := loadedWorld(t)

	if _, err := w.TravelHere(ctx); !errors.Is(err, ErrNotOnDoorway) {
		t.Errorf("TravelHere on open ground = %v, want ErrNotOnDoorway", err)
	}

	w.Move(ctx, world.Point{X: 4, Y: 3})
	arrival, err := w.TravelHere(ctx)
	if err != nil {
		t.Fatalf("TravelHere failed: %v", err)
	}
	if arrival.Name != "Dark Cavern" {
		t.Errorf("arrived at %q", arrival.Name)
	}

	if _, err := newTestWorld(t, nil).TravelHere(ctx); !errors.Is(err, ErrNoArea) {
		t.Errorf("TravelHere without an area = %v, want ErrNoArea", err)
	}
}

func TestStart(t *testing.T) {
	w := newTestWorld(t, nil)
	arrival, err := w.Start(context.Background())
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	a := w.Area()
	if a.Name != "Landfall" || a.Width != 20 || a.Height != 40 {
		t.Errorf("start area %q %dx%d", a.Name, a.Width, a.Height)
	}
	if !a.TileAt(arrival.Start.X, arrival.Start.Y).Visited {
		t.Error("start tile not visited")
	}
	if len(arrival.Messages) == 0 {
		t.Error("arrival without narrative")
	}

	if _, err := w.GenerateArea(context.Background(), "Asgard", 0, 0); !errors.Is(err, ErrUnknownArea) {
		t.Errorf("unknown area error = %v", err)
	}
	if w.Area() != a {
		t.Error("failed generation replaced the area")
	}
}

func TestRestUnavailable(t *testing.T) {
	w := loadedWorld(t)
	if w.RestAvailable() {
		t.Fatal("rest offered at 06:00")
	}
	if _, err := w.Rest(context.Background()); !errors.Is(err, ErrRestUnavailable) {
		t.Errorf("Rest at 06:00 = %v, want ErrRestUnavailable", err)
	}
	if w.Time() != (daycycle.Time{Hour: 6, Day: 1}) {
		t.Errorf("failed rest moved time to %+v", w.Time())
	}
}

func TestRest(t *testing.T) {
	tests := []struct {
		name          string
		hour          int
		attackChance  int
		startHealth   int
		wantHours     int
		wantHealed    int
		wantDamage    int
		wantDisturbed bool
		wantFallen    bool
		wantHealth    int
		wantDay       int
	}{
		{"late evening", 23, 100, 50, 7, 35, 0, false, false, 85, 2},
		{"midnight calm", 0, 0, 50, 6, 30, 0, false, false, 80, 1},
		{"heal capped", 0, 0, 90, 6, 10, 0, false, false, 100, 1},
		{"night attack", 2, 100, 50, 4, 0, 10, true, false, 40, 1},
		{"fallen", 4, 100, 5, 2, 0, 5, true, true, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, func(c *config.Config) { c.Rest.NightAttackChance = tt.attackChance })
			w.load(testArea(), world.Point{X: 3, Y: 3})
			w.clock = daycycle.Time{Hour: tt.hour, Day: 1}
			w.refresh()
			w.player.Health = tt.startHealth

			if !w.RestAvailable() {
				t.Fatalf("rest not offered at %02d:00", tt.hour)
			}

			res, err := w.Rest(context.Background())
			if err != nil {
				t.Fatalf("Rest failed: %v", err)
			}
			if res.Hours != tt.wantHours {
				t.Errorf("Hours = %d, want %d", res.Hours, tt.wantHours)
			}
			if res.Healed != tt.wantHealed {
				t.Errorf("Healed = %d, want %d", res.Healed, tt.wantHealed)
			}
			if res.Damage != tt.wantDamage {
				t.Errorf("Damage = %d, want %d", res.Damage, tt.wantDamage)
			}
			if res.Disturbed != tt.wantDisturbed {
				t.Errorf("Disturbed = %v, want %v", res.Disturbed, tt.wantDisturbed)
			}
			if res.Fallen != tt.wantFallen {
				t.Errorf("Fallen = %v, want %v", res.Fallen, tt.wantFallen)
			}
			if w.Player().Health != tt.wantHealth {
				t.Errorf("Health = %d, want %d", w.Player().Health, tt.wantHealth)
			}
			want := daycycle.Time{Hour: 6, Day: tt.wantDay}
			if w.Time() != want || res.Time != want {
				t.Errorf("time after rest = %+v, want %+v", w.Time(), want)
			}
			if w.RestAvailable() {
				t.Error("rest still offered in the morning")
			}
			if tt.wantFallen && res.Messages[len(res.Messages)-1] != "The warrior has fallen!" {
				t.Errorf("last message = %q", res.Messages[len(res.Messages)-1])
			}
		})
	}
}

func TestMoveAcrossMidnight(t *testing.T) {
	w := loadedWorld(t)
	w.clock = daycycle.Time{Hour: 22, Day: 1}
	w.refresh()

	res := w.Move(context.Background(), world.Point{X: 2, Y: 3})
	if !res.RestAvailable || !w.RestAvailable() {
		t.Error("rest should open at 23:00")
	}
	if res.PhaseChanged {
		t.Error("22:00 -> 23:00 stays in Evening")
	}

	res = w.Move(context.Background(), world.Point{X: 3, Y: 3})
	if w.Time() != (daycycle.Time{Hour: 0, Day: 2}) {
		t.Errorf("time = %+v, want 00:00 day 2", w.Time())
	}
	if !res.PhaseChanged || w.Phase().ID != daycycle.Night {
		t.Errorf("phase = %s, changed = %v", w.Phase().ID, res.PhaseChanged)
	}
	if !w.RestAvailable() {
		t.Error("rest should be offered at night")
	}
}
