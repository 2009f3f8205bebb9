package class_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/class"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

func TestNew_EveryClass(t *testing.T) {
	for _, c := range rules.Classes() {
		s, err := class.New(c)
		require.NoError(t, err)
		assert.Equal(t, c, s.Class())
	}
	_, err := class.New("Bard")
	assert.ErrorIs(t, err, advancement.ErrUnknownChoice)
}

func TestWeaponGroupTables(t *testing.T) {
	cases := []struct {
		class  rules.Class
		always []rules.WeaponGroup
		picks  int
		offers int
	}{
		{rules.Envoy, nil, 3, 8},
		{rules.Mage, []rules.WeaponGroup{rules.Brawling, rules.Staves}, 0, 0},
		{rules.Rogue, []rules.WeaponGroup{rules.LightBlades, rules.Staves}, 2, 5},
		{rules.Warrior, []rules.WeaponGroup{rules.Brawling}, 4, 12},
	}
	for _, tc := range cases {
		t.Run(string(tc.class), func(t *testing.T) {
			s, err := class.New(tc.class)
			require.NoError(t, err)
			w := class.WeaponGroupsOf(s)
			assert.Equal(t, tc.always, w.AlwaysGet())
			assert.Equal(t, tc.picks, w.NumChoices())
			assert.Len(t, w.Choices(), tc.picks)
			assert.Len(t, w.ChooseBetween(), tc.offers)
		})
	}
}

func TestMage_CompleteWithoutPicks(t *testing.T) {
	c := character.New()
	done, err := advancement.ApplyAll(&class.MageSelections{}, c)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, character.WeaponTraining{rules.Brawling, rules.Staves}, c.Mechanics.WeaponTraining)
}

func TestPick(t *testing.T) {
	s := &class.RogueSelections{}
	require.NoError(t, class.Pick(s, 0, rules.Bows))
	require.NoError(t, class.Pick(s, 1, rules.Dueling))
	assert.Error(t, class.Pick(s, 2, rules.Slings))
	assert.Error(t, class.Pick(&class.MageSelections{}, 0, rules.Slings))

	c := character.New()
	done, err := advancement.ApplyAll(s, c)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, character.WeaponTraining{rules.Bows, rules.Dueling, rules.LightBlades, rules.Staves}, c.Mechanics.WeaponTraining)
}

func TestWeaponGroups_Legality(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cls := rapid.SampledFrom([]rules.Class{rules.Envoy, rules.Rogue, rules.Warrior}).Draw(rt, "class")
		s, err := class.New(cls)
		require.NoError(rt, err)
		w := class.WeaponGroupsOf(s)

		slot := rapid.IntRange(0, w.NumChoices()-1).Draw(rt, "slot")
		var outside []rules.WeaponGroup
		for _, g := range rules.WeaponGroups() {
			if !slices.Contains(w.ChooseBetween(), g) {
				outside = append(outside, g)
			}
		}
		require.NotEmpty(rt, outside)
		require.NoError(rt, class.Pick(s, slot, rapid.SampledFrom(outside).Draw(rt, "group")))

		_, err = advancement.ApplyAll(s, character.New())
		assert.ErrorIs(rt, err, advancement.ErrIllegalWeaponGroup)
	})
}

func TestWarrior_PartialPicksIncomplete(t *testing.T) {
	s := &class.WarriorSelections{}
	s.WeaponGroups.Picks[1] = rules.Polearms
	reports := advancement.Inspect(s, character.New())
	require.Len(t, reports, 2)
	assert.Equal(t, "warrior/weapon_groups", reports[1].Path)
	assert.Equal(t, advancement.Incomplete, reports[1].Status)
}
