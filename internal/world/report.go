package world

import "fmt"

// Report summarises what a generation run managed to place.
type Report struct {
	PathCells      int  // Reachable cells left after pruning
	PrunedCells    int  // Walk cells lost under structure walls
	CastlePlaced   bool
	CastleFailed   bool // A castle was rolled but its site was not clear
	HousesPlaced   int  // Houses with a door
	DoorlessStamps int  // Houses stamped whose door roll failed
	HousesFailed   int  // Houses that never got a door
	Barriers       int
	Encounters     int
	Exit           *Point // nil when no exit could be placed
}

// HasExit returns true if the area got a world exit.
func (r Report) HasExit() bool {
	return r.Exit != nil
}

// Warnings lists the generation shortfalls worth surfacing.
func (r Report) Warnings() []string {
	var out []string
	if r.Exit == nil {
		out = append(out, "no world exit placed")
	}
	if r.CastleFailed {
		out = append(out, "castle site was not clear")
	}
	if r.DoorlessStamps > 0 {
		out = append(out, fmt.Sprintf("%d house(s) stamped without a door", r.DoorlessStamps))
	}
	if r.HousesFailed > 0 {
		out = append(out, fmt.Sprintf("%d house(s) could not be placed with a door", r.HousesFailed))
	}
	return out
}
