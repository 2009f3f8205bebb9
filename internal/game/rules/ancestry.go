package rules

import "fmt"

// AncestryKind is a playable ancestry without its sub-choices.
type AncestryKind string

const (
	Draak    AncestryKind = "Draak"
	Dwarf    AncestryKind = "Dwarf"
	Elf      AncestryKind = "Elf"
	Gnome    AncestryKind = "Gnome"
	Goblin   AncestryKind = "Goblin"
	Halfling AncestryKind = "Halfling"
	Human    AncestryKind = "Human"
	Orc      AncestryKind = "Orc"
	Wildfolk AncestryKind = "Wildfolk"
)

var baseSpeed = map[AncestryKind]int{
	Draak:    10,
	Dwarf:    8,
	Elf:      12,
	Gnome:    8,
	Goblin:   10,
	Halfling: 8,
	Human:    10,
	Orc:      10,
	Wildfolk: 10,
}

// AncestryKinds returns every ancestry in table order.
func AncestryKinds() []AncestryKind {
	return []AncestryKind{Draak, Dwarf, Elf, Gnome, Goblin, Halfling, Human, Orc, Wildfolk}
}

// Valid reports whether k names a known ancestry.
func (k AncestryKind) Valid() bool {
	_, ok := baseSpeed[k]
	return ok
}

// BaseSpeed returns the ancestry's speed in yards before Dexterity.
func (k AncestryKind) BaseSpeed() int {
	return baseSpeed[k]
}

// Species is the Wildfolk sub-choice.
type Species string

const (
	Avian       Species = "Avian"
	Canine      Species = "Canine"
	Vulpine     Species = "Vulpine"
	Feline      Species = "Feline"
	Herpestidae Species = "Herpestidae"
	Rodent      Species = "Rodent"
	Leporidae   Species = "Leporidae"
	Ungulate    Species = "Ungulate"
	Ursine      Species = "Ursine"
)

// AllSpecies returns every Wildfolk species.
func AllSpecies() []Species {
	return []Species{Avian, Canine, Vulpine, Feline, Herpestidae, Rodent, Leporidae, Ungulate, Ursine}
}

// Valid reports whether s names a known species.
func (s Species) Valid() bool {
	for _, x := range AllSpecies() {
		if x == s {
			return true
		}
	}
	return false
}

// Ancestry is a character's ancestry. The zero value means none chosen.
// Species is meaningful only for Wildfolk and may be "" while undecided.
type Ancestry struct {
	Kind    AncestryKind `json:"kind" yaml:"kind"`
	Species Species      `json:"species,omitempty" yaml:"species,omitempty"`
}

// IsZero reports whether no ancestry has been chosen.
func (a Ancestry) IsZero() bool {
	return a.Kind == ""
}

// SameChoice reports whether a and b are the same top-level ancestry,
// ignoring sub-choices such as the Wildfolk species.
func (a Ancestry) SameChoice(b Ancestry) bool {
	return a.Kind == b.Kind
}

// BaseSpeed returns the ancestry's base speed in yards.
func (a Ancestry) BaseSpeed() int {
	return a.Kind.BaseSpeed()
}

func (a Ancestry) String() string {
	if a.Kind == Wildfolk && a.Species != "" {
		return fmt.Sprintf("%s (%s)", a.Kind, a.Species)
	}
	return string(a.Kind)
}
