package gamedata

import "math/rand"

// SizeRange is an inclusive dimension range.
type SizeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Roll returns a random size in the range. A fixed range always returns Min.
func (s SizeRange) Roll(rng *rand.Rand) int {
	if s.Max <= s.Min {
		return s.Min
	}
	return s.Min + rng.Intn(s.Max-s.Min+1)
}

// AreaDef defines a named area and how it is generated.
type AreaDef struct {
	Name     string    `json:"name"`              // Display name (e.g., "Dark Cavern")
	Doorway  string    `json:"doorway,omitempty"` // Tile kind that leads here; empty for the start area
	Fill     string    `json:"fill"`              // "open" or "solid"
	Baseline string    `json:"baseline"`          // Initial fill kind
	Ground   string    `json:"ground"`            // Walkable kind carved and built on
	Border   string    `json:"border"`            // Outer ring kind
	Castle   bool      `json:"castle"`            // Whether a castle may be attempted
	Width    SizeRange `json:"width"`
	Height   SizeRange `json:"height"`
	Arrival  string    `json:"arrival"` // Narrative line shown on arrival
}

// AreasFile represents the structure of areas.json.
type AreasFile struct {
	Areas []AreaDef `json:"areas"`
}

// LoadAreas loads area definitions from the embedded areas.json file.
func LoadAreas() ([]AreaDef, error) {
	file, err := Load[AreasFile]("areas.json")
	if err != nil {
		return nil, err
	}
	return file.Areas, nil
}
