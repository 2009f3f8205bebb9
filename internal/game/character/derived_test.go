package character_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/modifier"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

func TestNew_IsBlank(t *testing.T) {
	c := character.New()
	assert.Equal(t, 0, c.Mechanics.Level)
	assert.True(t, c.Mechanics.Ancestry.IsZero())
	assert.Equal(t, rules.Class(""), c.Mechanics.Class)
	assert.Equal(t, character.AbilityScores{}, c.Mechanics.Abilities)
	assert.Empty(t, c.Mechanics.Focuses)
	assert.Empty(t, c.Mechanics.WeaponTraining)
	assert.Empty(t, c.Mechanics.Powers.All())
}

func TestMaxHealth(t *testing.T) {
	c := character.New()
	assert.Equal(t, 0, c.MaxHealth().FinalValue())
	assert.Equal(t, modifier.FromCore, c.MaxHealth().Base.Source.Kind)

	c.Mechanics.Class = rules.Warrior
	c.Mechanics.HealthAdvancements = append(c.Mechanics.HealthAdvancements,
		modifier.Additive{Value: 4, Source: modifier.Level(2)})
	h := c.MaxHealth()
	assert.Equal(t, 34, h.FinalValue())
	assert.Equal(t, modifier.Class(rules.Warrior), h.Base.Source)
}

func TestSpeed(t *testing.T) {
	c := character.New()
	c.Mechanics.Abilities.Dexterity.Score = 2
	assert.Equal(t, 2, c.Speed().FinalValue())

	c.Mechanics.Ancestry = rules.Ancestry{Kind: rules.Elf}
	assert.Equal(t, 14, c.MoveSpeedYards())
	assert.Equal(t, 28, c.RunSpeedYards())
	assert.Equal(t, 7, c.ChargeSpeedYards())

	c.Mechanics.Ancestry = rules.Ancestry{Kind: rules.Dwarf}
	c.Mechanics.Abilities.Dexterity.Score = -1
	assert.Equal(t, 7, c.MoveSpeedYards())
	assert.Equal(t, 4, c.ChargeSpeedYards(), "charge rounds up")
}

func TestMoveSpeed_NeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := character.New()
		c.Mechanics.Abilities.Dexterity.Score = rapid.IntRange(-20, 10).Draw(rt, "dex")
		if rapid.Bool().Draw(rt, "hasAncestry") {
			c.Mechanics.Ancestry = rules.Ancestry{Kind: rapid.SampledFrom(rules.AncestryKinds()).Draw(rt, "kind")}
		}
		assert.GreaterOrEqual(rt, c.MoveSpeedYards(), 0)
		assert.Equal(rt, 2*c.MoveSpeedYards(), c.RunSpeedYards())
	})
}

func TestDefense(t *testing.T) {
	c := character.New()
	c.Mechanics.Abilities.Dexterity.Score = 3
	c.Mechanics.DefenseAdvancements = []modifier.Additive{{Value: 1, Source: modifier.Level(4)}}
	d := c.Defense()
	assert.Equal(t, 14, d.FinalValue())
	assert.Equal(t, []string{"10 (Core)", "+1 (Level 4)", "+3 (Dexterity)"}, d.Breakdown())
	assert.Equal(t, 0, c.Armor().FinalValue())

	c.Mechanics.Powers.Draak.Armored = &character.DraakArmored{}
	assert.Equal(t, 0, c.Armor().FinalValue())
	assert.Equal(t, []string{"0 (Core)"}, c.Armor().Breakdown())
}

func TestAttackBonus(t *testing.T) {
	c := character.New()
	c.Mechanics.Abilities.Fighting.Score = 2
	assert.Equal(t, 2, c.AttackBonus(rules.LongSword).FinalValue())

	c.Mechanics.SetFocus(rules.FightingHeavyBlades, rules.DoubleFocus)
	a := c.AttackBonus(rules.LongSword)
	assert.Equal(t, 6, a.FinalValue())
	assert.Equal(t, []string{"2 (Fighting)", "+4 (Fighting (Heavy Blades))"}, a.Breakdown())
}

func TestDamage(t *testing.T) {
	c := character.New()
	c.Mechanics.Abilities.Strength.Score = 3
	c.Mechanics.Abilities.Perception.Score = 1
	catalog := rules.DefaultCatalog()

	sword := c.Damage(catalog, rules.LongSword)
	assert.Equal(t, 2, sword.Dice().Count)
	assert.Equal(t, 10, sword.FinalValue(7))

	bow := c.Damage(catalog, rules.ShortBow)
	assert.Equal(t, 1, bow.Dice().Count)
	assert.Equal(t, 6, bow.FinalValue(4), "1d6+1 plus Perception")
}

func TestClone_IsDeep(t *testing.T) {
	bg := "Scholar"
	c := character.New()
	c.Flavor.Background = &bg
	c.Mechanics.SetFocus(rules.ConstitutionStamina, rules.SingleFocus)
	c.Mechanics.WeaponTraining.Insert(rules.Brawling)
	c.Mechanics.Powers.DarkSight = &character.DarkSight{}

	cp := c.Clone()
	require.Equal(t, c, cp)

	*cp.Flavor.Background = "Noble"
	cp.Mechanics.SetFocus(rules.ConstitutionStamina, rules.DoubleFocus)
	cp.Mechanics.WeaponTraining.Insert(rules.Axes)
	cp.Mechanics.Powers.DarkSight = nil

	assert.Equal(t, "Scholar", *c.Flavor.Background)
	assert.Equal(t, rules.SingleFocus, c.Mechanics.FocusLevel(rules.ConstitutionStamina))
	assert.Equal(t, character.WeaponTraining{rules.Brawling}, c.Mechanics.WeaponTraining)
	assert.NotNil(t, c.Mechanics.Powers.DarkSight)
}

func TestWeaponTraining_SortedSet(t *testing.T) {
	var w character.WeaponTraining
	w.Insert(rules.Staves)
	w.Insert(rules.Axes)
	w.Insert(rules.Staves)
	w.Insert(rules.Brawling)
	assert.Equal(t, character.WeaponTraining{rules.Axes, rules.Brawling, rules.Staves}, w)
	assert.True(t, w.Contains(rules.Axes))
	assert.False(t, w.Contains(rules.Bows))
}

func TestPowers_All(t *testing.T) {
	p := character.Powers{
		DarkSight: &character.DarkSight{},
		Draak: character.DraakPowers{
			Armored:           &character.DraakArmored{},
			MagicalResistance: &character.DraakMagicalResistance{Focus: rules.IntelligenceArcaneLore},
		},
	}
	all := p.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Dark Sight", all[0].Name())
	assert.Equal(t, "Armored (Draak)", all[1].Name())
	assert.Equal(t, "Use Intelligence (Arcane Lore) to resist or reduce the effects of a spell.", all[2].Description())
}

func TestWeaponTraining_UnmarshalRestoresOrder(t *testing.T) {
	var m character.MechanicalProperties
	require.NoError(t, json.Unmarshal([]byte(`{"weapon_training":["Staves","Axes","Brawling","Axes"]}`), &m))
	assert.Equal(t, character.WeaponTraining{rules.Axes, rules.Brawling, rules.Staves}, m.WeaponTraining)
	for _, g := range []rules.WeaponGroup{rules.Axes, rules.Brawling, rules.Staves} {
		assert.True(t, m.WeaponTraining.Contains(g), g)
	}
	assert.False(t, m.WeaponTraining.Contains(rules.Bows))
}

func TestSetLevel_Range(t *testing.T) {
	c := character.New()
	require.NoError(t, c.Mechanics.SetLevel(character.MaxLevel))
	assert.Equal(t, character.MaxLevel, c.Mechanics.Level)

	for _, n := range []int{-1, character.MaxLevel + 1} {
		err := c.Mechanics.SetLevel(n)
		assert.ErrorIs(t, err, character.ErrLevelOutOfRange)
		assert.Equal(t, character.MaxLevel, c.Mechanics.Level)
	}
}
