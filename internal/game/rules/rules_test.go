package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

func TestFocus_String(t *testing.T) {
	assert.Equal(t, "Constitution (Stamina)", rules.ConstitutionStamina.String())
	assert.Equal(t, "Willpower (Self-Discipline)", rules.WillpowerSelfDiscipline.String())
	assert.Equal(t, "Intelligence (Thieves' Lore)", rules.IntelligenceThievesLore.String())
}

func TestFocus_EveryFocusBelongsToItsAbility(t *testing.T) {
	total := 0
	for _, a := range rules.Abilities() {
		for _, f := range a.Focuses() {
			assert.Equal(t, a, f.Ability(), "focus %s", f)
			total++
		}
	}
	assert.Equal(t, len(rules.Focuses()), total)
}

func TestFocus_Unknown(t *testing.T) {
	f := rules.Focus("NotAFocus")
	assert.False(t, f.Valid())
	assert.Equal(t, rules.Ability(""), f.Ability())
	assert.Equal(t, "NotAFocus", f.String())
}

func TestFocusLevel_Bonus(t *testing.T) {
	assert.Equal(t, 0, rules.NoFocus.Bonus())
	assert.Equal(t, 2, rules.SingleFocus.Bonus())
	assert.Equal(t, 4, rules.DoubleFocus.Bonus())
}

func TestWeaponGroup_DamageAbility(t *testing.T) {
	for _, g := range rules.WeaponGroups() {
		switch g.AttackAbility() {
		case rules.Accuracy:
			assert.Equal(t, rules.Perception, g.DamageAbility(), "group %s", g)
		case rules.Fighting:
			assert.Equal(t, rules.Strength, g.DamageAbility(), "group %s", g)
		default:
			t.Fatalf("group %s has attack ability %s", g, g.AttackAbility())
		}
	}
	assert.Equal(t, "Heavy Blades", rules.HeavyBlades.Name())
}

func TestDefaultCatalog_CoversEveryGroup(t *testing.T) {
	c := rules.DefaultCatalog()
	assert.Len(t, c.All(), 40)
	assert.ElementsMatch(t, rules.WeaponGroups(), c.Groups())
	for _, g := range rules.WeaponGroups() {
		assert.Len(t, g.Weapons(), 3+boolToInt(g == rules.BlackPowder), "group %s", g)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestDefaultCatalog_Entries(t *testing.T) {
	p := rules.Musket.Properties()
	assert.Equal(t, rules.BlackPowder, p.Group)
	assert.Equal(t, "3d6 + 1", p.Damage.String())
	require.NotNil(t, p.MinStrength)
	assert.Equal(t, 1, *p.MinStrength)
	assert.True(t, p.TwoHanded)
	require.NotNil(t, p.Missile)
	assert.Equal(t, 24, p.Missile.ShortRangeYards)
	require.NotNil(t, p.Missile.LongRangeYards)
	assert.Equal(t, 48, *p.Missile.LongRangeYards)
	assert.True(t, p.Missile.ReloadIsMajorAction)

	b := rules.Blunderbuss.Properties()
	require.NotNil(t, b.Missile)
	assert.Nil(t, b.Missile.LongRangeYards)

	assert.Nil(t, rules.Dagger.Properties().MinStrength)
	assert.Equal(t, "Two-handed Spear", rules.TwoHandedSpear.Name())
	assert.Equal(t, rules.Staves, rules.Quarterstaff.Group())
}

func TestLoadWeaponCatalog_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad yaml":      "weapons: [",
		"missing id":    "weapons:\n  - name: X\n    group: Axes\n    damage: 1d6\n",
		"unknown group": "weapons:\n  - id: X\n    group: Whips\n    damage: 1d6\n",
		"bad damage":    "weapons:\n  - id: X\n    group: Axes\n    damage: lots\n",
		"duplicate":     "weapons:\n  - id: X\n    group: Axes\n    damage: 1d6\n  - id: X\n    group: Axes\n    damage: 1d6\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rules.LoadWeaponCatalog([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestClass_AbilitiesPartition(t *testing.T) {
	for _, c := range rules.Classes() {
		assert.Len(t, c.PrimaryAbilities(), 4, "class %s", c)
		assert.Len(t, c.SecondaryAbilities(), 5, "class %s", c)
		for _, a := range rules.Abilities() {
			assert.NotEqual(t, c.IsPrimary(a), c.IsSecondary(a), "class %s ability %s", c, a)
		}
	}
	assert.Equal(t, 30, rules.Warrior.StartingHealth())
	assert.Equal(t, 20, rules.Mage.StartingHealth())
	assert.Equal(t, 0, rules.Class("").StartingHealth())
}

func TestAncestry_SameChoiceIgnoresSpecies(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		species := rapid.SampledFrom(append(rules.AllSpecies(), "")).Draw(rt, "a")
		other := rapid.SampledFrom(append(rules.AllSpecies(), "")).Draw(rt, "b")
		a := rules.Ancestry{Kind: rules.Wildfolk, Species: species}
		b := rules.Ancestry{Kind: rules.Wildfolk, Species: other}
		assert.True(rt, a.SameChoice(b))
		assert.False(rt, a.SameChoice(rules.Ancestry{Kind: rules.Elf}))
	})
}

func TestAncestry_Display(t *testing.T) {
	assert.Equal(t, "Wildfolk (Avian)", rules.Ancestry{Kind: rules.Wildfolk, Species: rules.Avian}.String())
	assert.Equal(t, "Wildfolk", rules.Ancestry{Kind: rules.Wildfolk}.String())
	assert.True(t, rules.Ancestry{}.IsZero())
	assert.Equal(t, 12, rules.Ancestry{Kind: rules.Elf}.BaseSpeed())
	assert.Equal(t, 8, rules.Dwarf.BaseSpeed())
}
