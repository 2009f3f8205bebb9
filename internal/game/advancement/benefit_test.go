package advancement_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/dice"
	"github.com/cory-johannsen/fage2e/internal/game/modifier"
)

// perk is a four-row benefit table. Row 1 counts as two; row 3 needs a
// sub-choice before it is complete.
type perk struct {
	Row    int
	Choice string
}

func (p perk) DisplayName() string { return fmt.Sprintf("perk %d", p.Row) }
func (p perk) CountsAsTwo() bool   { return p.Row == 1 }

func (perk) FromRoll(roll int) (perk, error) {
	switch {
	case roll >= 2 && roll <= 4:
		return perk{Row: 1}, nil
	case roll <= 7 && roll >= 5:
		return perk{Row: 2}, nil
	case roll <= 10 && roll >= 8:
		return perk{Row: 3}, nil
	case roll == 11 || roll == 12:
		return perk{Row: 4}, nil
	}
	return perk{}, advancement.ErrInvalidRoll
}

func (p perk) Apply(c *character.Character) bool {
	c.Mechanics.DefenseAdvancements = append(c.Mechanics.DefenseAdvancements,
		modifier.Additive{Value: p.Row, Source: modifier.Core()})
	return p.Row != 3 || p.Choice != ""
}

func (p perk) Same(o perk) bool { return p.Row == o.Row }

func (perk) Options() []perk { return []perk{{Row: 1}, {Row: 2}, {Row: 3}, {Row: 4}} }

func sel(p1, p2 *perk, rolled bool) *advancement.BenefitSelections[perk] {
	return &advancement.BenefitSelections[perk]{Selection1: p1, Selection2: p2, SelectionsWereRolled: rolled}
}

func TestBenefitSelections_Apply(t *testing.T) {
	double := &perk{Row: 1}
	plain := &perk{Row: 2}
	open := &perk{Row: 3}
	other := &perk{Row: 4}

	cases := []struct {
		name    string
		s       *advancement.BenefitSelections[perk]
		done    bool
		wantErr error
	}{
		{"empty", sel(nil, nil, false), false, nil},
		{"duplicate", sel(plain, &perk{Row: 2}, false), false, advancement.ErrDuplicateBenefit},
		{"duplicate with same sub-choice", sel(&perk{Row: 3, Choice: "a"}, &perk{Row: 3, Choice: "a"}, true), false, advancement.ErrDuplicateBenefit},
		{"same row different sub-choices", sel(&perk{Row: 3, Choice: "a"}, &perk{Row: 3, Choice: "b"}, true), true, nil},
		{"same row one sub-choice open", sel(&perk{Row: 3, Choice: "a"}, open, true), false, nil},
		{"double alone", sel(double, nil, false), true, nil},
		{"double then another", sel(double, plain, false), false, advancement.ErrBenefitAfterDouble},
		{"double rolled with another", sel(double, plain, true), true, nil},
		{"double rolled alone", sel(double, nil, true), false, nil},
		{"single awaiting second", sel(plain, nil, false), false, nil},
		{"two singles", sel(plain, other, false), true, nil},
		{"second incomplete", sel(plain, open, false), false, nil},
		{"lone double in slot two", sel(nil, double, false), true, nil},
		{"lone double in slot two rolled", sel(nil, double, true), false, nil},
		{"lone single in slot two", sel(nil, plain, false), false, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			done, err := tc.s.Apply(character.New())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.done, done)
		})
	}
}

func TestBenefitSelections_AppliesBoth(t *testing.T) {
	c := character.New()
	done, err := sel(&perk{Row: 2}, &perk{Row: 4}, false).Apply(c)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 16, c.Defense().FinalValue())
}

func TestRollBenefits_NeverDuplicates(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		// Front-load repeats of the same die faces to force rerolls, then let
		// the sequence vary so the loop can terminate.
		repeat := rapid.IntRange(0, 20).Draw(rt, "repeat")
		face := rapid.IntRange(0, 5).Draw(rt, "face")
		vals := make([]int, 0, 2*repeat+64)
		for i := 0; i < 2*(repeat+1); i++ {
			vals = append(vals, face)
		}
		vals = append(vals, rapid.SliceOfN(rapid.IntRange(0, 5), 64, 64).Draw(rt, "tail")...)
		vals = append(vals, 0, 0, 5, 5)

		s := &advancement.BenefitSelections[perk]{}
		err := advancement.RollBenefits(s, dice.NewLoggedRoller(&seqSource{vals: vals}, nil))
		require.NoError(rt, err)
		require.NotNil(rt, s.Selection1)
		require.NotNil(rt, s.Selection2)
		assert.False(rt, s.Selection1.Same(*s.Selection2))
		assert.True(rt, s.SelectionsWereRolled)
	})
}
