// Package class holds the level 1 selections each class asks of the player.
package class

import (
	"fmt"

	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// Selections is a class's level 1 choice subtree.
type Selections interface {
	advancement.Advancement
	// Class names the class these selections belong to.
	Class() rules.Class
}

// New returns empty selections for c.
//
// Postcondition: returns an error wrapping advancement.ErrUnknownChoice for an unknown class.
func New(c rules.Class) (Selections, error) {
	switch c {
	case rules.Envoy:
		return &EnvoySelections{}, nil
	case rules.Mage:
		return &MageSelections{}, nil
	case rules.Rogue:
		return &RogueSelections{}, nil
	case rules.Warrior:
		return &WarriorSelections{}, nil
	}
	return nil, fmt.Errorf("class %q: %w", string(c), advancement.ErrUnknownChoice)
}

// WeaponGroupsOf returns the weapon-group selection inside s.
func WeaponGroupsOf(s Selections) advancement.WeaponGroups {
	switch v := s.(type) {
	case *EnvoySelections:
		return &v.WeaponGroups
	case *MageSelections:
		return &v.WeaponGroups
	case *RogueSelections:
		return &v.WeaponGroups
	case *WarriorSelections:
		return &v.WeaponGroups
	}
	return nil
}

// Pick sets slot i of the weapon-group selection in s.
//
// Precondition: 0 <= i < NumChoices.
func Pick(s Selections, i int, g rules.WeaponGroup) error {
	w := WeaponGroupsOf(s)
	if w == nil || i < 0 || i >= w.NumChoices() {
		return fmt.Errorf("weapon group slot %d: out of range", i+1)
	}
	w.Choices()[i] = g
	return nil
}

const weaponGroupsNode = "weapon_groups"
