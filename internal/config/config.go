// Package config loads game configuration from YAML.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/volvasvoyage/internal/world"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full game configuration.
type Config struct {
	Map        MapConfig        `yaml:"map"`
	Generation GenerationConfig `yaml:"generation"`
	Player     PlayerConfig     `yaml:"player"`
	Clock      ClockConfig      `yaml:"clock"`
	Rest       RestConfig       `yaml:"rest"`
	Log        LogConfig        `yaml:"log"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// MapConfig selects the starting area.
type MapConfig struct {
	StartArea string `yaml:"start_area"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
}

// GenerationConfig holds the map generator tunables. Chances are percentages.
type GenerationConfig struct {
	PathCoverage    float64 `yaml:"path_coverage"`
	CastleChance    int     `yaml:"castle_chance"`
	CastleSize      int     `yaml:"castle_size"`
	HouseCount      int     `yaml:"house_count"`
	HouseAttempts   int     `yaml:"house_attempts"`
	HouseMinSize    int     `yaml:"house_min_size"`
	HouseMaxSize    int     `yaml:"house_max_size"`
	DoorChance      int     `yaml:"door_chance"`
	BarrierChance   int     `yaml:"barrier_chance"`
	EncounterChance int     `yaml:"encounter_chance"`
	ExitAttempts    int     `yaml:"exit_attempts"`
	ExitBand        float64 `yaml:"exit_band"`
}

// PlayerConfig holds the default character profile.
type PlayerConfig struct {
	MaxHealth int    `yaml:"max_health"`
	Kin       string `yaml:"kin"`
	Path      string `yaml:"path"`
}

// ClockConfig sets the starting time.
type ClockConfig struct {
	StartHour int `yaml:"start_hour"`
	StartDay  int `yaml:"start_day"`
}

// RestConfig tunes resting.
type RestConfig struct {
	MorningHour        int `yaml:"morning_hour"`
	HealPercentPerHour int `yaml:"heal_percent_per_hour"`
	NightAttackChance  int `yaml:"night_attack_chance"`
	AttackDamage       int `yaml:"attack_damage"`
}

// LogConfig configures the log file written during play.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// TelemetryConfig toggles the OTLP exporter.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// GenParams converts the generation section to generator parameters.
func (c Config) GenParams() world.GenParams {
	g := c.Generation
	return world.GenParams{
		PathCoverage:    g.PathCoverage,
		CastleChance:    g.CastleChance,
		CastleSize:      g.CastleSize,
		HouseCount:      g.HouseCount,
		HouseAttempts:   g.HouseAttempts,
		HouseMinSize:    g.HouseMinSize,
		HouseMaxSize:    g.HouseMaxSize,
		DoorChance:      g.DoorChance,
		BarrierChance:   g.BarrierChance,
		EncounterChance: g.EncounterChance,
		ExitAttempts:    g.ExitAttempts,
		ExitBand:        g.ExitBand,
	}
}

// Validate rejects out-of-range values.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}
	percent := func(name string, v int) {
		check(v >= 0 && v <= 100, "%s must be in [0, 100], got %d", name, v)
	}

	check(c.Map.StartArea != "", "map.start_area is required")
	check(c.Map.Width >= 3 && c.Map.Height >= 3, "map size must be at least 3x3, got %dx%d", c.Map.Width, c.Map.Height)

	g := c.Generation
	check(g.PathCoverage > 0 && g.PathCoverage <= 1, "generation.path_coverage must be in (0, 1], got %v", g.PathCoverage)
	percent("generation.castle_chance", g.CastleChance)
	percent("generation.door_chance", g.DoorChance)
	percent("generation.barrier_chance", g.BarrierChance)
	percent("generation.encounter_chance", g.EncounterChance)
	check(g.CastleSize >= 3, "generation.castle_size must be at least 3, got %d", g.CastleSize)
	check(g.HouseCount >= 0 && g.HouseAttempts >= 0 && g.ExitAttempts >= 0, "generation counts must not be negative")
	check(g.HouseMinSize >= 3 && g.HouseMaxSize >= g.HouseMinSize,
		"generation house sizes must satisfy 3 <= min <= max, got %d..%d", g.HouseMinSize, g.HouseMaxSize)
	check(g.ExitBand >= 0 && g.ExitBand <= 1, "generation.exit_band must be in [0, 1], got %v", g.ExitBand)

	check(c.Player.MaxHealth > 0, "player.max_health must be positive, got %d", c.Player.MaxHealth)

	check(c.Clock.StartHour >= 0 && c.Clock.StartHour < 24, "clock.start_hour must be in [0, 23], got %d", c.Clock.StartHour)
	check(c.Clock.StartDay >= 1, "clock.start_day must be at least 1, got %d", c.Clock.StartDay)

	check(c.Rest.MorningHour >= 0 && c.Rest.MorningHour < 24, "rest.morning_hour must be in [0, 23], got %d", c.Rest.MorningHour)
	percent("rest.heal_percent_per_hour", c.Rest.HealPercentPerHour)
	percent("rest.night_attack_chance", c.Rest.NightAttackChance)
	check(c.Rest.AttackDamage >= 0, "rest.attack_damage must not be negative, got %d", c.Rest.AttackDamage)

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err))
	}

	return errors.Join(errs...)
}
