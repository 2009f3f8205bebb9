// Package rules holds the read-only Fantasy AGE reference tables: abilities,
// focuses, weapon groups and weapons, classes and ancestries.
package rules

// Ability is one of the nine primary attributes of a character.
type Ability string

const (
	Accuracy      Ability = "Accuracy"
	Communication Ability = "Communication"
	Constitution  Ability = "Constitution"
	Dexterity     Ability = "Dexterity"
	Fighting      Ability = "Fighting"
	Intelligence  Ability = "Intelligence"
	Perception    Ability = "Perception"
	Strength      Ability = "Strength"
	Willpower     Ability = "Willpower"
)

var allAbilities = []Ability{
	Accuracy, Communication, Constitution, Dexterity, Fighting,
	Intelligence, Perception, Strength, Willpower,
}

// Abilities returns every ability in sheet order.
//
// Postcondition: The returned slice is a fresh copy of length 9.
func Abilities() []Ability {
	out := make([]Ability, len(allAbilities))
	copy(out, allAbilities)
	return out
}

// Valid reports whether a names a known ability.
func (a Ability) Valid() bool {
	for _, x := range allAbilities {
		if x == a {
			return true
		}
	}
	return false
}

// String returns the display name.
func (a Ability) String() string { return string(a) }

// Focuses returns the focuses keyed to a, in table order.
func (a Ability) Focuses() []Focus {
	var out []Focus
	for _, f := range focusOrder {
		if focusTable[f].ability == a {
			out = append(out, f)
		}
	}
	return out
}
