package gamedata

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EncounterType classifies an encounter template.
type EncounterType string

const (
	EncounterEnemy    EncounterType = "enemy"
	EncounterTreasure EncounterType = "treasure"
	EncounterNPC      EncounterType = "npc"
)

// EncounterDef defines an encounter template loaded from JSON.
type EncounterDef struct {
	ID          string        `json:"id"`          // Unique identifier (e.g., "draugr")
	Type        EncounterType `json:"type"`        // enemy, treasure or npc
	Name        string        `json:"name"`        // Display name (e.g., "Draugr")
	Description string        `json:"description"` // Flavour text
	Challenge   int           `json:"challenge"`   // Difficulty rating, 0 for harmless
	SpawnWeight int           `json:"spawnWeight"` // Relative spawn frequency
}

// Marker returns the map marker for the encounter: the upper-cased first
// letter of its type.
func (e *EncounterDef) Marker() rune {
	r, _ := utf8.DecodeRuneInString(string(e.Type))
	if r == utf8.RuneError {
		return '?'
	}
	return unicode.ToUpper(r)
}

// Title returns the encounter type capitalised for display (e.g., "Enemy").
func (e *EncounterDef) Title() string {
	t := string(e.Type)
	if t == "" {
		return ""
	}
	return strings.ToUpper(t[:1]) + t[1:]
}

// EncountersFile represents the structure of encounters.json.
type EncountersFile struct {
	Encounters []EncounterDef `json:"encounters"`
}

// LoadEncounters loads encounter templates from the embedded encounters.json file.
func LoadEncounters() ([]EncounterDef, error) {
	file, err := Load[EncountersFile]("encounters.json")
	if err != nil {
		return nil, err
	}
	return file.Encounters, nil
}
