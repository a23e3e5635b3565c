package ui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/volvasvoyage/internal/config"
	"github.com/samdwyer/volvasvoyage/internal/game"
	"github.com/samdwyer/volvasvoyage/internal/gamedata"
	"github.com/samdwyer/volvasvoyage/internal/world"
)

// fakeCanvas records drawn cells in memory.
type fakeCanvas struct {
	w, h  int
	cells map[[2]int]rune
	shown int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (c *fakeCanvas) SetContent(x, y int, r rune, _ tcell.Style) {
	if x >= 0 && y >= 0 && x < c.w && y < c.h {
		c.cells[[2]int{x, y}] = r
	}
}
func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }
func (c *fakeCanvas) Clear()           { c.cells = make(map[[2]int]rune) }
func (c *fakeCanvas) Show()            { c.shown++ }

func (c *fakeCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		if r, ok := c.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func TestMessageLog(t *testing.T) {
	var l MessageLog
	l.Add("one", "", "two")
	if got := l.Recent(5); len(got) != 2 || got[0] != "two" || got[1] != "one" {
		t.Errorf("Recent() = %v, want [two one]", got)
	}

	for i := 0; i < 30; i++ {
		l.Add(fmt.Sprintf("msg %d", i))
	}
	if l.Len() != MaxMessages {
		t.Errorf("Len() = %d, want %d", l.Len(), MaxMessages)
	}
	if got := l.Recent(1)[0]; got != "msg 29" {
		t.Errorf("newest = %q, want msg 29", got)
	}
}

func TestViewportOrigin(t *testing.T) {
	tests := []struct {
		name         string
		pos          world.Point
		areaW, areaH int
		vw, vh       int
		wantX, wantY int
	}{
		{"centered", world.Point{X: 10, Y: 20}, 20, 40, 10, 10, 5, 15},
		{"clamped low", world.Point{X: 1, Y: 1}, 20, 40, 10, 10, 0, 0},
		{"clamped high", world.Point{X: 19, Y: 39}, 20, 40, 10, 10, 10, 30},
		{"view larger than area", world.Point{X: 3, Y: 3}, 8, 8, 40, 20, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := viewportOrigin(tt.pos, tt.areaW, tt.areaH, tt.vw, tt.vh)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("viewportOrigin() = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		ch   rune
		want command
	}{
		{tcell.KeyUp, 0, cmdUp},
		{tcell.KeyRune, 'j', cmdDown},
		{tcell.KeyRune, 'h', cmdLeft},
		{tcell.KeyRune, 'l', cmdRight},
		{tcell.KeyRune, 'e', cmdInteract},
		{tcell.KeyRune, 't', cmdTravel},
		{tcell.KeyRune, 'r', cmdRest},
		{tcell.KeyRune, 'q', cmdQuit},
		{tcell.KeyEscape, 0, cmdQuit},
		{tcell.KeyRune, 'x', cmdNone},
	}

	for _, tt := range tests {
		if got := commandFor(tt.key, tt.ch); got != tt.want {
			t.Errorf("commandFor(%v, %q) = %v, want %v", tt.key, tt.ch, got, tt.want)
		}
	}
}

func smallArea() *world.Area {
	a := world.NewArea("Tiny", 4, 3, world.KindGroundField)
	a.SetKind(0, 0, world.KindWallRock)
	a.TileAt(2, 1).SetEncounter(&gamedata.EncounterDef{ID: "gilded_chest", Type: gamedata.EncounterTreasure})
	return a
}

func TestRenderText(t *testing.T) {
	got := RenderText(smallArea(), world.Point{X: 1, Y: 1})
	want := "^...\n.@T.\n....\n"
	if got != want {
		t.Errorf("RenderText() =\n%s\nwant\n%s", got, want)
	}

	if out := RenderText(smallArea(), world.NoPosition); strings.ContainsRune(out, playerGlyph) {
		t.Error("player drawn without a position")
	}
}

func TestRendererDrawsPlayerAndPanel(t *testing.T) {
	w, err := game.NewWorld(config.Default(), nil, game.Options{Rand: rand.New(rand.NewSource(4))})
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	if _, err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	c := newFakeCanvas(80, 30)
	r := NewRenderer(c)
	var messages MessageLog
	messages.Add("You arrive at Landfall.")
	r.Render(w, &messages)

	if c.shown != 1 {
		t.Errorf("Show called %d times", c.shown)
	}

	pos := w.Position()
	cell, ok := r.CellAt(pos.X-r.originX, pos.Y-r.originY)
	if !ok || cell != pos {
		t.Fatalf("CellAt maps player to %v (%v), want %v", cell, ok, pos)
	}
	if got := c.cells[[2]int{pos.X - r.originX, pos.Y - r.originY}]; got != playerGlyph {
		t.Errorf("player cell shows %q", got)
	}

	if !strings.Contains(c.row(0), "The Huscarl") {
		t.Errorf("panel header = %q", c.row(0))
	}
	if !strings.Contains(c.row(30-consoleLines), "> You arrive at Landfall.") {
		t.Errorf("console row = %q", c.row(30-consoleLines))
	}

	if _, ok := r.CellAt(79, 0); ok {
		t.Error("panel column mapped to a cell")
	}
}
