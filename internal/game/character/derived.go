package character

import (
	"slices"

	"github.com/cory-johannsen/fage2e/internal/game/dice"
	"github.com/cory-johannsen/fage2e/internal/game/modifier"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// BaseDefense is the core defense before Dexterity and advancements.
const BaseDefense = 10

// MaxHealth returns the class starting health, or 0 from Core when no class
// is chosen, plus every health advancement.
func (c *Character) MaxHealth() modifier.Value {
	v := modifier.NewValue(0, modifier.Core())
	if cls := c.Mechanics.Class; cls != "" {
		v = modifier.NewValue(cls.StartingHealth(), modifier.Class(cls))
	}
	v.Modifiers.Additive = slices.Clone(c.Mechanics.HealthAdvancements)
	return v
}

// Speed returns the ancestry base speed, or 0 from Core when no ancestry is
// chosen, plus Dexterity.
func (c *Character) Speed() modifier.Value {
	v := modifier.NewValue(0, modifier.Core())
	if anc := c.Mechanics.Ancestry; !anc.IsZero() {
		v = modifier.NewValue(anc.BaseSpeed(), modifier.Ancestry(anc))
	}
	v.Modifiers.Add(c.Mechanics.Abilities.Dexterity.Score, modifier.Ability(rules.Dexterity))
	return v
}

// MoveSpeedYards returns Speed floored at zero.
//
// Postcondition: result >= 0.
func (c *Character) MoveSpeedYards() int {
	return max(0, c.Speed().FinalValue())
}

// RunSpeedYards is twice the move speed.
func (c *Character) RunSpeedYards() int {
	return c.MoveSpeedYards() * 2
}

// ChargeSpeedYards is half the move speed, rounded up.
func (c *Character) ChargeSpeedYards() int {
	return (c.MoveSpeedYards() + 1) / 2
}

// Defense returns 10 from Core plus defense advancements plus Dexterity.
func (c *Character) Defense() modifier.Value {
	v := modifier.NewValue(BaseDefense, modifier.Core())
	v.Modifiers.Additive = slices.Clone(c.Mechanics.DefenseAdvancements)
	v.Modifiers.Add(c.Mechanics.Abilities.Dexterity.Score, modifier.Ability(rules.Dexterity))
	return v
}

// Armor is a stub: base 0 from Core and no modifiers. Armor rating from
// worn armor or powers such as Armored (Draak) is not modelled yet.
func (c *Character) Armor() modifier.Value {
	return modifier.NewValue(0, modifier.Core())
}

// AttackBonus is the bonus added to a 3d6 attack roll with w: the group's
// attack ability plus any focus in the group.
func (c *Character) AttackBonus(w rules.Weapon) modifier.Value {
	g := w.Group()
	a := g.AttackAbility()
	v := modifier.NewValue(c.Mechanics.Abilities.Get(a).Score, modifier.Ability(a))
	if lvl := c.Mechanics.FocusLevel(g.Focus()); lvl > rules.NoFocus {
		v.Modifiers.Add(lvl.Bonus(), modifier.Focus(g.Focus()))
	}
	return v
}

// Damage is the damage roll of w from catalog: its damage dice plus the
// group's damage ability.
func (c *Character) Damage(catalog *rules.WeaponCatalog, w rules.Weapon) modifier.DiceRoll {
	props := catalog.Properties(w)
	a := w.Group().DamageAbility()
	d := modifier.DiceRoll{Base: modifier.Base[dice.Expression]{Value: props.Damage, Source: modifier.Core()}}
	d.Modifiers.Add(c.Mechanics.Abilities.Get(a).Score, modifier.Ability(a))
	return d
}
