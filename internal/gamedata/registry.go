package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// EncounterRegistry holds loaded encounter templates and provides spawning utilities.
type EncounterRegistry struct {
	encounters  []EncounterDef
	totalWeight int
}

// NewEncounterRegistry creates a registry from loaded encounter templates.
func NewEncounterRegistry(encounters []EncounterDef) *EncounterRegistry {
	totalWeight := 0
	for _, e := range encounters {
		totalWeight += e.SpawnWeight
	}
	return &EncounterRegistry{
		encounters:  encounters,
		totalWeight: totalWeight,
	}
}

// LoadEncounterRegistry loads and creates a registry from the embedded encounters.json.
func LoadEncounterRegistry() (*EncounterRegistry, error) {
	encounters, err := LoadEncounters()
	if err != nil {
		return nil, err
	}
	if len(encounters) == 0 {
		return nil, errors.New("no encounters loaded from encounters.json")
	}
	return NewEncounterRegistry(encounters), nil
}

// MustLoadEncounterRegistry loads a registry, panicking on error.
func MustLoadEncounterRegistry() *EncounterRegistry {
	registry, err := LoadEncounterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random encounter template using weighted probability.
// Equal weights give a uniform pick.
func (r *EncounterRegistry) SpawnRandom(rng *rand.Rand) *EncounterDef {
	if r.totalWeight <= 0 || len(r.encounters) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.encounters {
		cumulative += r.encounters[i].SpawnWeight
		if roll < cumulative {
			return &r.encounters[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.encounters[0]
}

// GetByID returns the encounter template with the given ID, or nil if not found.
func (r *EncounterRegistry) GetByID(id string) *EncounterDef {
	for i := range r.encounters {
		if r.encounters[i].ID == id {
			return &r.encounters[i]
		}
	}
	return nil
}

// All returns all encounter templates.
func (r *EncounterRegistry) All() []EncounterDef {
	return r.encounters
}

// Count returns the number of encounter templates in the registry.
func (r *EncounterRegistry) Count() int {
	return len(r.encounters)
}

// =============================================================================
// AreaRegistry
// =============================================================================

// AreaRegistry indexes area definitions by name and by the doorway that leads there.
type AreaRegistry struct {
	byName    map[string]*AreaDef
	byDoorway map[string]*AreaDef
	all       []AreaDef
}

// NewAreaRegistry creates a registry from loaded area definitions.
// Duplicate names or doorways are an error.
func NewAreaRegistry(areas []AreaDef) (*AreaRegistry, error) {
	registry := &AreaRegistry{
		byName:    make(map[string]*AreaDef),
		byDoorway: make(map[string]*AreaDef),
		all:       areas,
	}
	for i := range areas {
		a := &areas[i]
		if a.Name == "" {
			return nil, fmt.Errorf("area %d has no name", i)
		}
		if _, dup := registry.byName[a.Name]; dup {
			return nil, fmt.Errorf("duplicate area %q", a.Name)
		}
		registry.byName[a.Name] = a

		if a.Doorway == "" {
			continue
		}
		if other, dup := registry.byDoorway[a.Doorway]; dup {
			return nil, fmt.Errorf("doorway %q leads to both %q and %q", a.Doorway, other.Name, a.Name)
		}
		registry.byDoorway[a.Doorway] = a
	}
	return registry, nil
}

// LoadAreaRegistry loads and creates a registry from the embedded areas.json.
func LoadAreaRegistry() (*AreaRegistry, error) {
	areas, err := LoadAreas()
	if err != nil {
		return nil, err
	}
	if len(areas) == 0 {
		return nil, errors.New("no areas loaded from areas.json")
	}
	return NewAreaRegistry(areas)
}

// MustLoadAreaRegistry loads a registry, panicking on error.
func MustLoadAreaRegistry() *AreaRegistry {
	registry, err := LoadAreaRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// ByName returns the area with the given name, or nil if not found.
func (r *AreaRegistry) ByName(name string) *AreaDef {
	return r.byName[name]
}

// ByDoorway returns the destination reached through the given doorway kind,
// or nil if that doorway leads nowhere.
func (r *AreaRegistry) ByDoorway(kind string) *AreaDef {
	return r.byDoorway[kind]
}

// All returns all area definitions.
func (r *AreaRegistry) All() []AreaDef {
	return r.all
}
