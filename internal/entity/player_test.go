package entity

import (
	"testing"

	"github.com/samdwyer/volvasvoyage/internal/gamedata"
)

func TestNewPlayer(t *testing.T) {
	path := &gamedata.PathDef{ID: "volva", Name: "Völva", Focus: "Intellect"}

	tests := []struct {
		kin      Kin
		wantName string
	}{
		{KinMale, "The Huscarl"},
		{KinFemale, "The Shieldmaiden"},
	}

	for _, tt := range tests {
		p := NewPlayer(tt.kin, path, 0)
		if p.Name != tt.wantName {
			t.Errorf("kin %s: name = %q, want %q", tt.kin, p.Name, tt.wantName)
		}
		if p.Level != 1 {
			t.Errorf("kin %s: level = %d, want 1", tt.kin, p.Level)
		}
		if p.Stats != (Stats{10, 10, 10, 10}) {
			t.Errorf("kin %s: stats = %+v", tt.kin, p.Stats)
		}
		if p.Health != DefaultMaxHealth || p.MaxHealth != DefaultMaxHealth {
			t.Errorf("kin %s: health %d/%d", tt.kin, p.Health, p.MaxHealth)
		}
		if p.PathName() != "Völva" {
			t.Errorf("kin %s: path = %q", tt.kin, p.PathName())
		}
	}

	if got := NewPlayer(KinMale, nil, 40).PathName(); got != "Wanderer" {
		t.Errorf("nil path name = %q", got)
	}
}

func TestParseKin(t *testing.T) {
	for _, s := range []string{"male", "female"} {
		if _, err := ParseKin(s); err != nil {
			t.Errorf("ParseKin(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseKin("troll"); err == nil {
		t.Error("ParseKin(troll) should fail")
	}
}

func TestDamageAndHeal(t *testing.T) {
	p := NewPlayer(KinFemale, nil, 100)

	tests := []struct {
		name       string
		damage     int
		heal       int
		wantDealt  int
		wantHealed int
		wantHealth int
	}{
		{"hit", 30, 0, 30, 0, 70},
		{"heal partial", 0, 20, 0, 20, 90},
		{"heal overflow clamps", 0, 50, 0, 10, 100},
		{"negative ignored", -5, -5, 0, 0, 100},
		{"overkill clamps", 250, 0, 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.TakeDamage(tt.damage); got != tt.wantDealt {
				t.Errorf("TakeDamage(%d) = %d, want %d", tt.damage, got, tt.wantDealt)
			}
			if got := p.Heal(tt.heal); got != tt.wantHealed {
				t.Errorf("Heal(%d) = %d, want %d", tt.heal, got, tt.wantHealed)
			}
			if p.Health != tt.wantHealth {
				t.Errorf("Health = %d, want %d", p.Health, tt.wantHealth)
			}
		})
	}

	if !p.IsFallen() {
		t.Error("player at 0 health should be fallen")
	}
	if p.HealthPercent() != 0 {
		t.Errorf("HealthPercent = %d", p.HealthPercent())
	}
}
