// Package character defines the Fantasy AGE character aggregate and the
// statistics derived from it.
package character

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/fage2e/internal/game/modifier"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// MaxLevel is the highest level a character may reach.
const MaxLevel = 20

// ErrLevelOutOfRange is returned by SetLevel outside 0..MaxLevel.
var ErrLevelOutOfRange = errors.New("level out of range")

// Flavor holds the non-mechanical description of a character.
type Flavor struct {
	Name        string  `json:"name" yaml:"name"`
	Background  *string `json:"background,omitempty" yaml:"background,omitempty"`
	SocialClass *string `json:"social_class,omitempty" yaml:"social_class,omitempty"`
	Backstory   *string `json:"backstory,omitempty" yaml:"backstory,omitempty"`
}

// MechanicalProperties holds every rules-relevant property of a character.
//
// Level is written only by a level advancement. Ancestry and Class are
// written only by their selection advancements. Health and defense totals are
// derived from the advancement lists and never stored.
type MechanicalProperties struct {
	Level               int                              `json:"level" yaml:"level"`
	Ancestry            rules.Ancestry                   `json:"ancestry,omitzero" yaml:"ancestry,omitempty"`
	Class               rules.Class                      `json:"class,omitempty" yaml:"class,omitempty"`
	Abilities           AbilityScores                    `json:"abilities" yaml:"abilities"`
	Focuses             map[rules.Focus]rules.FocusLevel `json:"focuses,omitempty" yaml:"focuses,omitempty"`
	WeaponTraining      WeaponTraining                   `json:"weapon_training,omitempty" yaml:"weapon_training,omitempty"`
	BaseArmor           int                              `json:"base_armor" yaml:"base_armor"`
	HealthAdvancements  []modifier.Additive              `json:"health_advancements,omitempty" yaml:"health_advancements,omitempty"`
	DefenseAdvancements []modifier.Additive              `json:"defense_advancements,omitempty" yaml:"defense_advancements,omitempty"`
	Powers              Powers                           `json:"powers" yaml:"powers"`
}

// SetLevel records the character level.
//
// Postcondition: returns ErrLevelOutOfRange and leaves m unchanged unless
// 0 <= n <= MaxLevel.
func (m *MechanicalProperties) SetLevel(n int) error {
	if n < 0 || n > MaxLevel {
		return fmt.Errorf("level %d: %w", n, ErrLevelOutOfRange)
	}
	m.Level = n
	return nil
}

// FocusLevel returns the investment in f, NoFocus when untrained.
func (m *MechanicalProperties) FocusLevel(f rules.Focus) rules.FocusLevel {
	return m.Focuses[f]
}

// HasFocus reports whether f is trained at any level.
func (m *MechanicalProperties) HasFocus(f rules.Focus) bool {
	return m.Focuses[f] > rules.NoFocus
}

// SetFocus records the investment in f.
//
// Postcondition: FocusLevel(f) == level.
func (m *MechanicalProperties) SetFocus(f rules.Focus, level rules.FocusLevel) {
	if m.Focuses == nil {
		m.Focuses = make(map[rules.Focus]rules.FocusLevel)
	}
	m.Focuses[f] = level
}

// Equipment lists what the character carries.
type Equipment struct {
	Weapons []rules.Weapon `json:"weapons,omitempty" yaml:"weapons,omitempty"`
}

// Status holds the character's ongoing state.
type Status struct {
	Experience int `json:"experience" yaml:"experience"`
	Health     int `json:"health" yaml:"health"`
}

// Character is the aggregate that advancements mutate.
type Character struct {
	Flavor    Flavor               `json:"flavor" yaml:"flavor"`
	Mechanics MechanicalProperties `json:"mechanics" yaml:"mechanics"`
	Equipment Equipment            `json:"equipment" yaml:"equipment"`
	Status    Status               `json:"status" yaml:"status"`
}
