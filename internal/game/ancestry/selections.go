package ancestry

import (
	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// ElfSelections are the level 1 choices of elves.
type ElfSelections struct {
	AbilityFocus rules.Focus `json:"ability_focus,omitempty" yaml:"ability_focus,omitempty"`
}

func (*ElfSelections) Kind() rules.AncestryKind { return rules.Elf }
func (*ElfSelections) Ancestry() rules.Ancestry { return rules.Ancestry{Kind: rules.Elf} }

func (*ElfSelections) ApplySelf(*character.Character) (bool, error) {
	return true, nil
}

func (s *ElfSelections) ForEach(visit func(advancement.Advancement)) {
	visit(focusChoice(rules.Elf, &s.AbilityFocus))
}

func (*ElfSelections) NodeName() string { return "elf" }

// GnomeSelections are the level 1 choices of gnomes.
type GnomeSelections struct {
	AbilityFocus rules.Focus `json:"ability_focus,omitempty" yaml:"ability_focus,omitempty"`
}

func (*GnomeSelections) Kind() rules.AncestryKind { return rules.Gnome }
func (*GnomeSelections) Ancestry() rules.Ancestry { return rules.Ancestry{Kind: rules.Gnome} }

func (*GnomeSelections) ApplySelf(*character.Character) (bool, error) {
	return true, nil
}

func (s *GnomeSelections) ForEach(visit func(advancement.Advancement)) {
	visit(focusChoice(rules.Gnome, &s.AbilityFocus))
}

func (*GnomeSelections) NodeName() string { return "gnome" }

// GoblinSelections are the level 1 choices of goblins.
type GoblinSelections struct {
	AbilityFocus rules.Focus `json:"ability_focus,omitempty" yaml:"ability_focus,omitempty"`
}

func (*GoblinSelections) Kind() rules.AncestryKind { return rules.Goblin }
func (*GoblinSelections) Ancestry() rules.Ancestry { return rules.Ancestry{Kind: rules.Goblin} }

// ApplySelf grants Dark Sight.
func (*GoblinSelections) ApplySelf(c *character.Character) (bool, error) {
	c.Mechanics.Powers.DarkSight = &character.DarkSight{}
	return true, nil
}

func (s *GoblinSelections) ForEach(visit func(advancement.Advancement)) {
	visit(focusChoice(rules.Goblin, &s.AbilityFocus))
}

func (*GoblinSelections) NodeName() string { return "goblin" }

// HalflingSelections are the level 1 choices of halflings.
type HalflingSelections struct {
	AbilityFocus rules.Focus `json:"ability_focus,omitempty" yaml:"ability_focus,omitempty"`
}

func (*HalflingSelections) Kind() rules.AncestryKind { return rules.Halfling }
func (*HalflingSelections) Ancestry() rules.Ancestry { return rules.Ancestry{Kind: rules.Halfling} }

func (*HalflingSelections) ApplySelf(*character.Character) (bool, error) {
	return true, nil
}

func (s *HalflingSelections) ForEach(visit func(advancement.Advancement)) {
	visit(focusChoice(rules.Halfling, &s.AbilityFocus))
}

func (*HalflingSelections) NodeName() string { return "halfling" }

// HumanSelections are the level 1 choices of humans.
type HumanSelections struct {
	AbilityFocus rules.Focus `json:"ability_focus,omitempty" yaml:"ability_focus,omitempty"`
}

func (*HumanSelections) Kind() rules.AncestryKind { return rules.Human }
func (*HumanSelections) Ancestry() rules.Ancestry { return rules.Ancestry{Kind: rules.Human} }

func (*HumanSelections) ApplySelf(*character.Character) (bool, error) {
	return true, nil
}

func (s *HumanSelections) ForEach(visit func(advancement.Advancement)) {
	visit(focusChoice(rules.Human, &s.AbilityFocus))
}

func (*HumanSelections) NodeName() string { return "human" }

// OrcSelections are the level 1 choices of orcs.
type OrcSelections struct {
	AbilityFocus rules.Focus `json:"ability_focus,omitempty" yaml:"ability_focus,omitempty"`
}

func (*OrcSelections) Kind() rules.AncestryKind { return rules.Orc }
func (*OrcSelections) Ancestry() rules.Ancestry { return rules.Ancestry{Kind: rules.Orc} }

func (*OrcSelections) ApplySelf(*character.Character) (bool, error) {
	return true, nil
}

func (s *OrcSelections) ForEach(visit func(advancement.Advancement)) {
	visit(focusChoice(rules.Orc, &s.AbilityFocus))
}

func (*OrcSelections) NodeName() string { return "orc" }

// DwarfSelections are empty; dwarves make no level 1 ancestry choices.
type DwarfSelections struct{}

func (*DwarfSelections) Kind() rules.AncestryKind                     { return rules.Dwarf }
func (*DwarfSelections) Ancestry() rules.Ancestry                     { return rules.Ancestry{Kind: rules.Dwarf} }
func (*DwarfSelections) ApplySelf(*character.Character) (bool, error) { return true, nil }
func (*DwarfSelections) ForEach(func(advancement.Advancement))        {}
func (*DwarfSelections) NodeName() string                             { return "dwarf" }

// WildfolkSelections are the level 1 choices of wildfolk. The species is read
// by the ancestry choice itself; the focus is a child step.
type WildfolkSelections struct {
	Species      rules.Species `json:"species,omitempty" yaml:"species,omitempty"`
	AbilityFocus rules.Focus   `json:"ability_focus,omitempty" yaml:"ability_focus,omitempty"`
}

func (*WildfolkSelections) Kind() rules.AncestryKind { return rules.Wildfolk }

func (s *WildfolkSelections) Ancestry() rules.Ancestry {
	return rules.Ancestry{Kind: rules.Wildfolk, Species: s.Species}
}

func (*WildfolkSelections) ApplySelf(*character.Character) (bool, error) {
	return true, nil
}

func (s *WildfolkSelections) ForEach(visit func(advancement.Advancement)) {
	visit(focusChoice(rules.Wildfolk, &s.AbilityFocus))
}

func (*WildfolkSelections) NodeName() string { return "wildfolk" }
