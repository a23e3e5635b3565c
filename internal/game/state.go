// Package game provides the world state and the movement, interaction,
// travel and rest rules that act on it.
package game

import (
	"strings"

	"github.com/samdwyer/volvasvoyage/internal/gamedata"
	"github.com/samdwyer/volvasvoyage/internal/world"
)

// ActionKind is the kind of action a tile offers.
type ActionKind int

const (
	// ActionNone means the tile is clear.
	ActionNone ActionKind = iota
	// ActionInteract means the tile holds an encounter.
	ActionInteract
	// ActionTravel means the tile is a doorway to another area.
	ActionTravel
)

// String returns a human-readable action name.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionInteract:
		return "interact"
	case ActionTravel:
		return "travel"
	default:
		return "unknown"
	}
}

// TileAction is what the player's current tile offers.
type TileAction struct {
	Kind        ActionKind
	Encounter   *gamedata.EncounterDef // Set for ActionInteract
	Doorway     world.KindID           // Set for ActionTravel
	Title       string
	Description string
	Prompt      string // Button-style label, empty for ActionNone
}

// evaluateTileAction decides what the tile offers. An active encounter wins
// over a doorway.
func evaluateTileAction(tile *world.Tile) TileAction {
	if tile == nil {
		return clearAction()
	}
	if e := tile.CurrentEncounter; e != nil {
		return TileAction{
			Kind:        ActionInteract,
			Encounter:   e,
			Title:       e.Name,
			Description: e.Description,
			Prompt:      "Interact with " + e.Name,
		}
	}
	if tile.Kind.IsDoorway() {
		id := tile.Kind.ID
		return TileAction{
			Kind:        ActionTravel,
			Doorway:     id,
			Title:       strings.ReplaceAll(string(id), "_", " "),
			Description: "This " + string(id) + " leads to a new area.",
			Prompt:      "Enter the " + string(id),
		}
	}
	return clearAction()
}

func clearAction() TileAction {
	return TileAction{
		Kind:        ActionNone,
		Title:       "Empty",
		Description: "The area is clear. You see only the landscape.",
	}
}
