package game

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/volvasvoyage/internal/gamedata"
	"github.com/samdwyer/volvasvoyage/internal/world"
)

// Options holds the collaborators of a World. Zero values fall back to
// defaults: a time-seeded source, a discarding logger and the embedded
// encounter and area data.
type Options struct {
	// Rand drives generation and rest rolls. Inject a seeded source in tests.
	Rand *rand.Rand
	// Logger receives arrivals, rejections and generation warnings.
	Logger *log.Logger
	// Encounters seeds tile encounters.
	Encounters world.EncounterSource
	// Areas maps area names and doorways to definitions.
	Areas *gamedata.AreaRegistry
}
