// Package entity provides the player character and its vitals.
package entity

import (
	"fmt"

	"github.com/samdwyer/volvasvoyage/internal/gamedata"
)

// Kin is the player's chosen kin.
type Kin string

const (
	KinMale   Kin = "male"
	KinFemale Kin = "female"
)

// ParseKin converts a flag value to a Kin.
func ParseKin(s string) (Kin, error) {
	switch Kin(s) {
	case KinMale, KinFemale:
		return Kin(s), nil
	default:
		return "", fmt.Errorf("unknown kin %q (want male or female)", s)
	}
}

// Title returns the name the kin is known by.
func (k Kin) Title() string {
	if k == KinMale {
		return "The Huscarl"
	}
	return "The Shieldmaiden"
}

const (
	// DefaultMaxHealth is the starting health pool.
	DefaultMaxHealth = 100
	baseStat         = 10
)

// Stats are the player's base attributes.
type Stats struct {
	Strength  int
	Intellect int
	Agility   int
	Stamina   int
}

// Player is the single explorer.
type Player struct {
	Name  string
	Kin   Kin
	Path  *gamedata.PathDef
	Level int
	Stats Stats

	Health, MaxHealth int
}

// NewPlayer creates a level 1 player with base stats and full health.
// A nil path gives a pathless wanderer. maxHealth <= 0 uses DefaultMaxHealth.
func NewPlayer(kin Kin, path *gamedata.PathDef, maxHealth int) *Player {
	if maxHealth <= 0 {
		maxHealth = DefaultMaxHealth
	}
	return &Player{
		Name:  kin.Title(),
		Kin:   kin,
		Path:  path,
		Level: 1,
		Stats: Stats{
			Strength:  baseStat,
			Intellect: baseStat,
			Agility:   baseStat,
			Stamina:   baseStat,
		},
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// PathName returns the display name of the player's path.
func (p *Player) PathName() string {
	if p.Path == nil {
		return "Wanderer"
	}
	return p.Path.Name
}

// IsFallen returns true once health has run out.
func (p *Player) IsFallen() bool { return p.Health <= 0 }

// TakeDamage reduces health by amount, clamped at 0.
// Returns the actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > p.Health {
		amount = p.Health
	}
	p.Health -= amount
	return amount
}

// Heal restores health, clamped at MaxHealth.
// Returns the actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	missing := p.MaxHealth - p.Health
	if amount > missing {
		amount = missing
	}
	p.Health += amount
	return amount
}

// HealthPercent returns health as a percentage of MaxHealth.
func (p *Player) HealthPercent() int {
	if p.MaxHealth <= 0 {
		return 0
	}
	return p.Health * 100 / p.MaxHealth
}
