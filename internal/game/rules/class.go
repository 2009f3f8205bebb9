package rules

import "slices"

// Class is a character class. The zero value means no class.
type Class string

const (
	Envoy   Class = "Envoy"
	Mage    Class = "Mage"
	Rogue   Class = "Rogue"
	Warrior Class = "Warrior"
)

type classInfo struct {
	primary        []Ability
	secondary      []Ability
	startingHealth int
}

var classTable = map[Class]classInfo{
	Envoy: {
		primary:        []Ability{Communication, Fighting, Intelligence, Willpower},
		secondary:      []Ability{Accuracy, Constitution, Dexterity, Perception, Strength},
		startingHealth: 25,
	},
	Mage: {
		primary:        []Ability{Accuracy, Intelligence, Perception, Willpower},
		secondary:      []Ability{Communication, Constitution, Dexterity, Fighting, Strength},
		startingHealth: 20,
	},
	Rogue: {
		primary:        []Ability{Accuracy, Communication, Dexterity, Perception},
		secondary:      []Ability{Constitution, Fighting, Intelligence, Strength, Willpower},
		startingHealth: 25,
	},
	Warrior: {
		primary:        []Ability{Constitution, Dexterity, Fighting, Strength},
		secondary:      []Ability{Accuracy, Communication, Intelligence, Perception, Willpower},
		startingHealth: 30,
	},
}

// Classes returns every class.
func Classes() []Class {
	return []Class{Envoy, Mage, Rogue, Warrior}
}

// Valid reports whether c names a known class.
func (c Class) Valid() bool {
	_, ok := classTable[c]
	return ok
}

func (c Class) String() string { return string(c) }

// PrimaryAbilities returns the four abilities the class advances on even levels.
func (c Class) PrimaryAbilities() []Ability {
	return slices.Clone(classTable[c].primary)
}

// SecondaryAbilities returns the five abilities the class advances on odd levels.
func (c Class) SecondaryAbilities() []Ability {
	return slices.Clone(classTable[c].secondary)
}

// IsPrimary reports whether a is one of c's primary abilities.
func (c Class) IsPrimary(a Ability) bool {
	return slices.Contains(classTable[c].primary, a)
}

// IsSecondary reports whether a is one of c's secondary abilities.
func (c Class) IsSecondary(a Ability) bool {
	return slices.Contains(classTable[c].secondary, a)
}

// StartingHealth returns the level 1 health of the class before Constitution.
func (c Class) StartingHealth() int {
	return classTable[c].startingHealth
}
