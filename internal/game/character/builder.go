package character

import (
	"maps"
	"slices"

	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// New returns a blank character: level 0, no class or ancestry, every ability
// at zero and nothing trained.
//
// Postcondition: The returned character shares no memory with any other.
func New() *Character {
	return &Character{
		Mechanics: MechanicalProperties{
			Focuses: make(map[rules.Focus]rules.FocusLevel),
		},
	}
}

// Clone returns a deep copy of c.
//
// Precondition: c must be non-nil.
// Postcondition: Mutating the copy never affects c.
func (c *Character) Clone() *Character {
	out := *c
	out.Flavor.Background = clonePtr(c.Flavor.Background)
	out.Flavor.SocialClass = clonePtr(c.Flavor.SocialClass)
	out.Flavor.Backstory = clonePtr(c.Flavor.Backstory)
	out.Mechanics.Focuses = maps.Clone(c.Mechanics.Focuses)
	if out.Mechanics.Focuses == nil {
		out.Mechanics.Focuses = make(map[rules.Focus]rules.FocusLevel)
	}
	out.Mechanics.WeaponTraining = slices.Clone(c.Mechanics.WeaponTraining)
	out.Mechanics.HealthAdvancements = slices.Clone(c.Mechanics.HealthAdvancements)
	out.Mechanics.DefenseAdvancements = slices.Clone(c.Mechanics.DefenseAdvancements)
	out.Mechanics.Powers = c.Mechanics.Powers.clone()
	out.Equipment.Weapons = slices.Clone(c.Equipment.Weapons)
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
