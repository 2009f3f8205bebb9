// Package level assembles the per-level advancement trees a character is
// built from.
package level

import (
	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/character"
)

// Level1 is every choice made when creating a character.
//
// Children apply in field order: the health roll reads the Constitution set
// by the ability step.
type Level1 struct {
	Name      advancement.SelectName                 `json:"name" yaml:"name"`
	Abilities advancement.AbilityDetermination       `json:"abilities" yaml:"abilities"`
	Class     ClassSelections                        `json:"class" yaml:"class"`
	Ancestry  AncestrySelections                     `json:"ancestry" yaml:"ancestry"`
	Health    advancement.DiceBasedHealthAdvancement `json:"health" yaml:"health"`
}

// ApplySelf sets the character to level 1.
func (*Level1) ApplySelf(c *character.Character) (bool, error) {
	if err := c.Mechanics.SetLevel(1); err != nil {
		return false, err
	}
	return true, nil
}

func (l *Level1) ForEach(visit func(advancement.Advancement)) {
	visit(advancement.Leaf(&l.Name))
	visit(&l.Abilities)
	visit(&l.Class)
	visit(&l.Ancestry)
	visit(advancement.Leaf(&l.Health))
}

func (*Level1) NodeName() string { return "level1" }

// Build applies l to a fresh character.
//
// Postcondition: the returned character reflects every selection made so far,
// even when the tree is incomplete or invalid.
func (l *Level1) Build() (*character.Character, bool, error) {
	c := character.New()
	done, err := advancement.ApplyAll(l, c)
	return c, done, err
}
