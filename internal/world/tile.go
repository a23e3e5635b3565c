// Package world provides the tile catalog, area grids and map generation.
package world

import "github.com/samdwyer/volvasvoyage/internal/gamedata"

// KindID identifies a tile kind. Kinds are always compared by ID.
type KindID string

const (
	// Walls
	KindWallCastle KindID = "wall_castle"
	KindWallHouse  KindID = "wall_house"
	KindWallCave   KindID = "wall_cave"
	KindWallRock   KindID = "wall_rock"

	// Hazards
	KindLava      KindID = "lava"
	KindWaterLake KindID = "water_lake"

	// Ground
	KindGroundField       KindID = "ground_field"
	KindGroundStone       KindID = "ground_stone"
	KindGroundWoodenFloor KindID = "ground_wooden_floor"
	KindGroundRoad        KindID = "ground_road"
	KindGroundRiver       KindID = "ground_river"

	// Doorways
	KindDoorHouse  KindID = "door_house"
	KindDoorCave   KindID = "door_cave"
	KindDoorGate   KindID = "door_gate"
	KindStairsUp   KindID = "stairs_up"
	KindStairsDown KindID = "stairs_down"
	KindBridge     KindID = "bridge"

	// KindBlankWall is the filler used by solid areas before carving.
	KindBlankWall KindID = "blank_wall"
)

// Action is the interaction tag a tile kind carries.
type Action string

const (
	ActionNone   Action = ""
	ActionTravel Action = "travel"
	ActionBlock  Action = "block"
)

// Kind is an immutable tile catalog entry.
type Kind struct {
	ID       KindID
	Symbol   string // Display symbol for rich front ends
	Glyph    rune   // Single-cell glyph for the terminal
	Color    string // Hex color
	Walkable bool
	Action   Action
	Ground   bool // Ground-like: a legal building site
}

// IsPassable returns true if the tile kind can be walked on.
func (k Kind) IsPassable() bool {
	return k.Walkable
}

// IsDoorway returns true if stepping on the kind offers travel.
func (k Kind) IsDoorway() bool {
	return k.Action == ActionTravel
}

var catalog = map[KindID]Kind{
	KindWallCastle: {ID: KindWallCastle, Symbol: "🏰", Glyph: '#', Color: "#8d8d99"},
	KindWallHouse:  {ID: KindWallHouse, Symbol: "🏠", Glyph: 'H', Color: "#b5651d"},
	KindWallCave:   {ID: KindWallCave, Symbol: "🪨", Glyph: '%', Color: "#5a4e44"},
	KindWallRock:   {ID: KindWallRock, Symbol: "⛰️", Glyph: '^', Color: "#777777", Action: ActionBlock},

	KindLava:      {ID: KindLava, Symbol: "🔥", Glyph: '~', Color: "#ff4500", Action: ActionBlock},
	KindWaterLake: {ID: KindWaterLake, Symbol: "💧", Glyph: '≈', Color: "#1e90ff", Action: ActionBlock},

	KindGroundField:       {ID: KindGroundField, Symbol: ".", Glyph: '.', Color: "#6b8e23", Walkable: true, Ground: true},
	KindGroundStone:       {ID: KindGroundStone, Symbol: "=", Glyph: '=', Color: "#a9a9a9", Walkable: true, Ground: true},
	KindGroundWoodenFloor: {ID: KindGroundWoodenFloor, Symbol: "⬜", Glyph: '_', Color: "#deb887", Walkable: true, Ground: true},
	KindGroundRoad:        {ID: KindGroundRoad, Symbol: "🛣️", Glyph: ':', Color: "#c2b280", Walkable: true, Ground: true},
	KindGroundRiver:       {ID: KindGroundRiver, Symbol: "~", Glyph: '-', Color: "#4682b4", Walkable: true},

	KindDoorHouse:  {ID: KindDoorHouse, Symbol: "🚪", Glyph: '+', Color: "#ffd700", Walkable: true, Action: ActionTravel},
	KindDoorCave:   {ID: KindDoorCave, Symbol: "🕳️", Glyph: 'O', Color: "#ff8c00", Walkable: true, Action: ActionTravel},
	KindDoorGate:   {ID: KindDoorGate, Symbol: "🚧", Glyph: 'Π', Color: "#ffa500", Walkable: true, Action: ActionTravel},
	KindStairsUp:   {ID: KindStairsUp, Symbol: "▲", Glyph: '<', Color: "#ffffff", Walkable: true, Action: ActionTravel},
	KindStairsDown: {ID: KindStairsDown, Symbol: "▼", Glyph: '>', Color: "#ffffff", Walkable: true, Action: ActionTravel},
	KindBridge:     {ID: KindBridge, Symbol: "🌉", Glyph: '=', Color: "#8b4513", Walkable: true, Action: ActionTravel},

	KindBlankWall: {ID: KindBlankWall, Symbol: "█", Glyph: '█', Color: "#333333"},
}

// catalogOrder lists kinds in declaration order for stable iteration.
var catalogOrder = []KindID{
	KindWallCastle, KindWallHouse, KindWallCave, KindWallRock,
	KindLava, KindWaterLake,
	KindGroundField, KindGroundStone, KindGroundWoodenFloor, KindGroundRoad, KindGroundRiver,
	KindDoorHouse, KindDoorCave, KindDoorGate, KindStairsUp, KindStairsDown, KindBridge,
	KindBlankWall,
}

// Lookup returns the catalog entry for id.
func Lookup(id KindID) (Kind, bool) {
	k, ok := catalog[id]
	return k, ok
}

// MustKind returns the catalog entry for id, panicking if it is unknown.
func MustKind(id KindID) Kind {
	k, ok := catalog[id]
	if !ok {
		panic("world: unknown tile kind " + string(id))
	}
	return k
}

// Kinds returns every catalog entry in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		kinds = append(kinds, catalog[id])
	}
	return kinds
}

// GroundLike returns the IDs of kinds that count as ground for building sites.
func GroundLike() []KindID {
	var ids []KindID
	for _, id := range catalogOrder {
		if catalog[id].Ground {
			ids = append(ids, id)
		}
	}
	return ids
}

// Tile is a single mutable grid cell.
type Tile struct {
	X, Y int
	Kind Kind

	InitialEncounter *gamedata.EncounterDef // Set once at generation
	CurrentEncounter *gamedata.EncounterDef // nil once interacted with

	Visited bool
	// ActionTaken is reserved for per-tile interactions beyond encounters
	// (chest opened, trade done). Nothing sets it yet.
	ActionTaken bool
}

// NewTile creates a tile of the given kind.
func NewTile(x, y int, kind Kind) *Tile {
	return &Tile{X: x, Y: y, Kind: kind}
}

// SetEncounter attaches an encounter as both initial and current.
func (t *Tile) SetEncounter(e *gamedata.EncounterDef) {
	t.InitialEncounter = e
	t.CurrentEncounter = e
}

// HasEncounter returns true if the tile still holds an active encounter.
func (t *Tile) HasEncounter() bool {
	return t.CurrentEncounter != nil
}

// ClearEncounter removes the current encounter and returns it.
// Returns nil if there was nothing to clear.
func (t *Tile) ClearEncounter() *gamedata.EncounterDef {
	e := t.CurrentEncounter
	t.CurrentEncounter = nil
	return e
}

// Rune returns the tile's display glyph.
func (t *Tile) Rune() rune {
	return t.Kind.Glyph
}
