package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/volvasvoyage/internal/game"
	"github.com/samdwyer/volvasvoyage/internal/gamedata"
	"github.com/samdwyer/volvasvoyage/internal/world"
)

const (
	panelWidth   = 36
	consoleLines = 6
	playerGlyph  = '@'
)

var (
	adjacentBg  = tcell.NewRGBColor(40, 60, 40)
	panelStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	headerStyle = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen canvas
	colors map[string]tcell.Color

	// Last drawn viewport, used to map clicks back to cells
	originX, originY int
	viewW, viewH     int
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen canvas) *Renderer {
	return &Renderer{screen: screen, colors: make(map[string]tcell.Color)}
}

// Render draws the area, status panel and console.
func (r *Renderer) Render(w *game.World, messages *MessageLog) {
	r.screen.Clear()

	sw, sh := r.screen.Size()
	r.viewW = max(0, sw-panelWidth-1)
	r.viewH = max(0, sh-consoleLines-1)

	if area := w.Area(); area != nil {
		r.renderArea(area, w.Position(), w.AdjacentWalkable())
	}
	r.renderPanel(w, r.viewW+1, sw-r.viewW-1)
	r.renderConsole(messages, sh-consoleLines, sw)

	r.screen.Show()
}

// CellAt maps a screen position to the area cell drawn there.
func (r *Renderer) CellAt(sx, sy int) (world.Point, bool) {
	if sx < 0 || sy < 0 || sx >= r.viewW || sy >= r.viewH {
		return world.Point{}, false
	}
	return world.Point{X: r.originX + sx, Y: r.originY + sy}, true
}

// viewportOrigin centers a view of size (vw, vh) on pos, clamped to the area.
func viewportOrigin(pos world.Point, areaW, areaH, vw, vh int) (int, int) {
	clamp := func(v, size, view int) int {
		origin := v - view/2
		if origin > size-view {
			origin = size - view
		}
		if origin < 0 {
			origin = 0
		}
		return origin
	}
	return clamp(pos.X, areaW, vw), clamp(pos.Y, areaH, vh)
}

func (r *Renderer) renderArea(area *world.Area, pos world.Point, adjacent []world.Point) {
	r.originX, r.originY = viewportOrigin(pos, area.Width, area.Height, r.viewW, r.viewH)

	near := make(map[world.Point]bool, len(adjacent))
	for _, p := range adjacent {
		near[p] = true
	}

	for sy := 0; sy < r.viewH; sy++ {
		for sx := 0; sx < r.viewW; sx++ {
			x, y := r.originX+sx, r.originY+sy
			tile := area.TileAt(x, y)
			if tile == nil {
				continue
			}
			glyph, style := r.tileStyle(tile)
			if near[world.Point{X: x, Y: y}] {
				style = style.Background(adjacentBg)
			}
			r.screen.SetContent(sx, sy, glyph, style)
		}
	}

	if sx, sy := pos.X-r.originX, pos.Y-r.originY; sx >= 0 && sy >= 0 && sx < r.viewW && sy < r.viewH {
		r.screen.SetContent(sx, sy, playerGlyph, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
}

// tileStyle returns the glyph and style for a tile.
func (r *Renderer) tileStyle(tile *world.Tile) (rune, tcell.Style) {
	if e := tile.CurrentEncounter; e != nil {
		return e.Marker(), tcell.StyleDefault.Foreground(encounterColor(e.Type)).Bold(true)
	}
	style := tcell.StyleDefault.Foreground(r.color(tile.Kind.Color))
	if !tile.Visited {
		style = style.Dim(true)
	}
	return tile.Rune(), style
}

func (r *Renderer) color(hex string) tcell.Color {
	if c, ok := r.colors[hex]; ok {
		return c
	}
	c, err := gamedata.ParseHexColor(hex)
	if err != nil {
		c = tcell.ColorWhite
	}
	r.colors[hex] = c
	return c
}

func encounterColor(t gamedata.EncounterType) tcell.Color {
	switch t {
	case gamedata.EncounterEnemy:
		return tcell.ColorRed
	case gamedata.EncounterTreasure:
		return tcell.ColorGold
	case gamedata.EncounterNPC:
		return tcell.ColorAqua
	default:
		return tcell.ColorWhite
	}
}

func (r *Renderer) renderPanel(w *game.World, x, width int) {
	if width <= 0 {
		return
	}
	p := w.Player()
	clock := w.Time()
	phase := w.Phase()
	action := w.CurrentAction()

	y := 0
	line := func(style tcell.Style, format string, args ...any) {
		drawText(r.screen, x, y, width, fmt.Sprintf(format, args...), style)
		y++
	}

	line(headerStyle, "%s", p.Name)
	line(panelStyle, "Path: %s  Level %d", p.PathName(), p.Level)
	line(healthStyle(p.HealthPercent()), "HP: %d / %d", p.Health, p.MaxHealth)
	line(dimStyle, "STR %d  INT %d  AGI %d  STA %d", p.Stats.Strength, p.Stats.Intellect, p.Stats.Agility, p.Stats.Stamina)
	y++

	if area := w.Area(); area != nil {
		line(headerStyle, "%s", area.Name)
	}
	phaseColor := r.color(phase.Color)
	line(tcell.StyleDefault.Foreground(phaseColor), "%s - Day %d, %02d:00", phase.ID, clock.Day, clock.Hour)
	y++

	line(headerStyle, "%s", action.Title)
	line(panelStyle, "%s", action.Description)
	if action.Prompt != "" {
		key := "e"
		if action.Kind == game.ActionTravel {
			key = "t"
		}
		line(panelStyle, "[%s] %s", key, action.Prompt)
	}
	if w.RestAvailable() {
		line(panelStyle, "[r] Rest until Morning (Heal & Skip)")
	}
	if p.IsFallen() {
		line(tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true), "The warrior has fallen!")
	}
	y++

	line(dimStyle, "arrows/hjkl/click move  q quit")
}

func healthStyle(percent int) tcell.Style {
	switch {
	case percent > 60:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case percent > 25:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
}

func (r *Renderer) renderConsole(messages *MessageLog, top, width int) {
	if top < 0 || messages == nil {
		return
	}
	for i, msg := range messages.Recent(consoleLines) {
		style := panelStyle
		if i > 0 {
			style = dimStyle
		}
		drawText(r.screen, 0, top+i, width, "> "+msg, style)
	}
}
