package world

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// NoPosition marks the player position before any area exists.
var NoPosition = Point{X: -1, Y: -1}

// Add returns the point offset by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Neighbors returns the four cardinal neighbors in up, down, left, right order.
func (p Point) Neighbors() []Point {
	return []Point{
		{p.X, p.Y - 1},
		{p.X, p.Y + 1},
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
	}
}

// IsCardinalStep returns true if q is exactly one up/down/left/right step from p.
func (p Point) IsCardinalStep(q Point) bool {
	dx, dy := abs(q.X-p.X), abs(q.Y-p.Y)
	return dx+dy == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
