package advancement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/dice"
	"github.com/cory-johannsen/fage2e/internal/game/modifier"
)

func intPtr(v int) *int { return &v }

func TestDiceBasedHealth_ClampsToOne(t *testing.T) {
	h := &advancement.DiceBasedHealthAdvancement{RollResult: intPtr(1)}
	v, clamped := h.Calculated(-2)
	assert.Equal(t, 1, v)
	assert.True(t, clamped)

	c := character.New()
	c.Mechanics.Level = 1
	c.Mechanics.Abilities.Constitution.Score = -2
	done, err := h.Apply(c)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, []modifier.Additive{{Value: 1, Source: modifier.Level(1)}}, c.Mechanics.HealthAdvancements)
}

func TestDiceBasedHealth_Calculated(t *testing.T) {
	h := &advancement.DiceBasedHealthAdvancement{}
	v, clamped := h.Calculated(3)
	assert.Equal(t, 3, v, "unrolled counts as 0")
	assert.False(t, clamped)

	h.RollResult = intPtr(4)
	v, clamped = h.Calculated(2)
	assert.Equal(t, 6, v)
	assert.False(t, clamped)
}

func TestDiceBasedHealth_ApplyStates(t *testing.T) {
	done, err := (&advancement.DiceBasedHealthAdvancement{}).Apply(character.New())
	assert.NoError(t, err)
	assert.False(t, done)

	for _, roll := range []int{0, 7, -3} {
		_, err := (&advancement.DiceBasedHealthAdvancement{RollResult: intPtr(roll)}).Apply(character.New())
		assert.ErrorIs(t, err, advancement.ErrRollOutOfRange, "roll %d", roll)
	}
}

func TestDiceBasedHealth_OneModifierPerFreshCharacter(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := &advancement.DiceBasedHealthAdvancement{RollResult: intPtr(rapid.IntRange(1, 6).Draw(rt, "roll"))}
		con := rapid.IntRange(-3, 6).Draw(rt, "con")
		var results [][]modifier.Additive
		for i := 0; i < 2; i++ {
			c := character.New()
			c.Mechanics.Abilities.Constitution.Score = con
			_, err := h.Apply(c)
			require.NoError(rt, err)
			require.Len(rt, c.Mechanics.HealthAdvancements, 1)
			assert.GreaterOrEqual(rt, c.Mechanics.HealthAdvancements[0].Value, 1)
			results = append(results, c.Mechanics.HealthAdvancements)
		}
		assert.Equal(rt, results[0], results[1])
	})
}

func TestDiceBasedHealth_Roll(t *testing.T) {
	h := &advancement.DiceBasedHealthAdvancement{}
	h.Roll(dice.NewLoggedRoller(&seqSource{vals: []int{3}}, nil))
	require.NotNil(t, h.RollResult)
	assert.Equal(t, 4, *h.RollResult)
	assert.Equal(t, dice.D6(1), h.Dice())
}
