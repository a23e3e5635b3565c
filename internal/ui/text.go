package ui

import (
	"strings"

	"github.com/samdwyer/volvasvoyage/internal/world"
)

// RenderText draws an area as plain text, one line per row, with the player
// as '@' and active encounters as their markers. pos may be world.NoPosition.
func RenderText(area *world.Area, pos world.Point) string {
	var b strings.Builder
	for y := 0; y < area.Height; y++ {
		for x := 0; x < area.Width; x++ {
			tile := area.Tiles[y][x]
			switch {
			case x == pos.X && y == pos.Y:
				b.WriteRune(playerGlyph)
			case tile.HasEncounter():
				b.WriteRune(tile.CurrentEncounter.Marker())
			default:
				b.WriteRune(tile.Rune())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
