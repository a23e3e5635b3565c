package world

import (
	"github.com/google/uuid"

	"github.com/samdwyer/volvasvoyage/internal/gamedata"
)

// FillPolicy selects how an area's baseline relates to its walkable path.
type FillPolicy string

const (
	// FillOpen starts from ground and scatters barriers over it.
	FillOpen FillPolicy = "open"
	// FillSolid starts from a wall kind and carves the path out of it.
	FillSolid FillPolicy = "solid"
)

// Style parameterises generation per area.
type Style struct {
	Fill     FillPolicy
	Baseline KindID // Initial fill; must be Ground for FillOpen
	Ground   KindID // Kind carved by the walk and required for building sites
	Border   KindID // Forced onto the outer ring
	Castle   bool   // Whether a castle may be attempted
}

// DefaultStyle is the open-field style used by the starting area.
func DefaultStyle() Style {
	return Style{
		Fill:     FillOpen,
		Baseline: KindGroundField,
		Ground:   KindGroundField,
		Border:   KindWallRock,
		Castle:   true,
	}
}

// StyleOf builds the generation style described by an area definition.
// The result is checked by Generate.
func StyleOf(def *gamedata.AreaDef) Style {
	return Style{
		Fill:     FillPolicy(def.Fill),
		Baseline: KindID(def.Baseline),
		Ground:   KindID(def.Ground),
		Border:   KindID(def.Border),
		Castle:   def.Castle,
	}
}

// Area is one generated map instance.
type Area struct {
	ID         uuid.UUID
	Name       string
	Width      int
	Height     int
	Tiles      [][]*Tile
	Path       *PathSet
	Structures []Structure
	Style      Style
	Report     Report
}

// NewArea creates an area filled with the given kind.
func NewArea(name string, width, height int, fill KindID) *Area {
	kind := MustKind(fill)
	tiles := make([][]*Tile, height)
	for y := range tiles {
		tiles[y] = make([]*Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = NewTile(x, y, kind)
		}
	}

	return &Area{
		ID:     uuid.New(),
		Name:   name,
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Path:   NewPathSet(),
	}
}

// InBounds returns true if (x, y) addresses a cell of the area.
func (a *Area) InBounds(x, y int) bool {
	return x >= 0 && x < a.Width && y >= 0 && y < a.Height
}

// IsPassable returns true if the given position can be walked on.
func (a *Area) IsPassable(x, y int) bool {
	if !a.InBounds(x, y) {
		return false
	}
	return a.Tiles[y][x].Kind.IsPassable()
}

// TileAt returns the tile at the given position, or nil when out of bounds.
func (a *Area) TileAt(x, y int) *Tile {
	if !a.InBounds(x, y) {
		return nil
	}
	return a.Tiles[y][x]
}

// SetKind overwrites the kind of the tile at (x, y).
func (a *Area) SetKind(x, y int, id KindID) {
	if a.InBounds(x, y) {
		a.Tiles[y][x].Kind = MustKind(id)
	}
}

// IsBorder returns true if (x, y) lies on the outer ring.
func (a *Area) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == a.Width-1 || y == a.Height-1
}

// AdjacentWalkable returns the in-bounds, walkable cardinal neighbors of p
// in up, down, left, right order.
func (a *Area) AdjacentWalkable(p Point) []Point {
	var out []Point
	for _, n := range p.Neighbors() {
		if a.IsPassable(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}

// isSiteClear checks that every cell of r lies strictly inside the border and
// has the required kind.
func (a *Area) isSiteClear(r Rect, required KindID) bool {
	if r.X < 1 || r.Y < 1 || r.X+r.Width > a.Width-1 || r.Y+r.Height > a.Height-1 {
		return false
	}
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if a.Tiles[y][x].Kind.ID != required {
				return false
			}
		}
	}
	return true
}

// stamp draws a hollow structure: wall on the perimeter, floor inside.
func (a *Area) stamp(r Rect, bp blueprint) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if r.OnPerimeter(x, y) {
				a.SetKind(x, y, bp.wall)
			} else {
				a.SetKind(x, y, bp.floor)
			}
		}
	}
}

// inStructure returns true if (x, y) falls inside any stamped structure.
func (a *Area) inStructure(x, y int) bool {
	for _, s := range a.Structures {
		if s.Rect.Contains(x, y) {
			return true
		}
	}
	return false
}
