package config

import (
	_ "embed"

	"github.com/samdwyer/volvasvoyage/internal/world"
)

//go:embed defaults/volva.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	gen := world.DefaultGenParams()
	return Config{
		Map: MapConfig{
			StartArea: "Landfall",
			Width:     world.DefaultWidth,
			Height:    world.DefaultHeight,
		},
		Generation: GenerationConfig{
			PathCoverage:    gen.PathCoverage,
			CastleChance:    gen.CastleChance,
			CastleSize:      gen.CastleSize,
			HouseCount:      gen.HouseCount,
			HouseAttempts:   gen.HouseAttempts,
			HouseMinSize:    gen.HouseMinSize,
			HouseMaxSize:    gen.HouseMaxSize,
			DoorChance:      gen.DoorChance,
			BarrierChance:   gen.BarrierChance,
			EncounterChance: gen.EncounterChance,
			ExitAttempts:    gen.ExitAttempts,
			ExitBand:        gen.ExitBand,
		},
		Player: PlayerConfig{
			MaxHealth: 100,
			Kin:       "male",
			Path:      "huscarl",
		},
		Clock: ClockConfig{
			StartHour: 6,
			StartDay:  1,
		},
		Rest: RestConfig{
			MorningHour:        6,
			HealPercentPerHour: 5,
			NightAttackChance:  20,
			AttackDamage:       10,
		},
		Log: LogConfig{
			Level: "info",
			File:  "volva.log",
		},
	}
}
