package world

// Rect is a rectangular region of the grid.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int
}

// Center returns the center coordinates of the rect.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this rect overlaps with another rect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Expand returns the rect grown by n tiles on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// OnPerimeter returns true if (x, y) lies on the rect's outer ring.
func (r Rect) OnPerimeter(x, y int) bool {
	if !r.Contains(x, y) {
		return false
	}
	return x == r.X || x == r.X+r.Width-1 || y == r.Y || y == r.Y+r.Height-1
}

// IsCorner returns true if (x, y) is one of the rect's four corners.
func (r Rect) IsCorner(x, y int) bool {
	return (x == r.X || x == r.X+r.Width-1) && (y == r.Y || y == r.Y+r.Height-1)
}

// StructureType distinguishes stamped buildings.
type StructureType string

const (
	StructureCastle StructureType = "castle"
	StructureHouse  StructureType = "house"
)

// Structure is a building stamped onto an area.
type Structure struct {
	Type StructureType
	Rect Rect
	Door *Point // nil for a doorless stamp
}

// HasDoor returns true if the structure got a doorway.
func (s Structure) HasDoor() bool {
	return s.Door != nil
}

// blueprint describes how a structure is drawn.
type blueprint struct {
	wall  KindID
	floor KindID
	door  KindID
}

var (
	castleBlueprint = blueprint{wall: KindWallCastle, floor: KindGroundStone, door: KindDoorGate}
	houseBlueprint  = blueprint{wall: KindWallHouse, floor: KindGroundWoodenFloor, door: KindDoorHouse}
)

// perimeterDoorCandidates returns the non-corner wall cells of r in row-major order.
func perimeterDoorCandidates(r Rect) []Point {
	var cells []Point
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if r.OnPerimeter(x, y) && !r.IsCorner(x, y) {
				cells = append(cells, Point{x, y})
			}
		}
	}
	return cells
}
