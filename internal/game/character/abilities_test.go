package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

func TestAbilityScore_ThresholdBands(t *testing.T) {
	var s character.AbilityScore
	for i := 0; i < 5; i++ {
		s.Add(1)
	}
	assert.Equal(t, character.AbilityScore{Score: 5}, s, "one advancement per point up to 5")

	s.Add(1)
	assert.Equal(t, character.AbilityScore{Score: 5, Partial: 1}, s)
	s.Add(1)
	assert.Equal(t, character.AbilityScore{Score: 6}, s, "two advancements per point from 6")

	s = character.AbilityScore{Score: 8}
	s.Add(2)
	assert.Equal(t, character.AbilityScore{Score: 8, Partial: 2}, s)
	s.Add(1)
	assert.Equal(t, character.AbilityScore{Score: 9}, s, "three advancements per point from 9")
}

func TestAbilityScore_NegativeSettling(t *testing.T) {
	s := character.AbilityScore{Score: 9}
	s.Sub(1)
	assert.Equal(t, character.AbilityScore{Score: 8, Partial: 2}, s)

	s = character.AbilityScore{Score: 0}
	s.Sub(1)
	assert.Equal(t, character.AbilityScore{Score: -1}, s)
}

func TestAbilityScore_String(t *testing.T) {
	assert.Equal(t, "9++", character.AbilityScore{Score: 9, Partial: 2}.String())
	assert.Equal(t, "-1", character.AbilityScore{Score: -1}.String())
}

func TestAbilityScore_RoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		steps := rapid.SliceOfN(rapid.SampledFrom([]int{1, -1}), 0, 60).Draw(rt, "steps")
		var s character.AbilityScore
		for _, d := range steps {
			if d > 0 {
				s.Add(1)
			} else {
				s.Sub(1)
			}
		}
		for i := len(steps) - 1; i >= 0; i-- {
			if steps[i] > 0 {
				s.Sub(1)
			} else {
				s.Add(1)
			}
		}
		assert.Equal(rt, character.AbilityScore{}, s)
	})
}

func TestAbilityScores_GetSet(t *testing.T) {
	var scores character.AbilityScores
	for i, a := range rules.Abilities() {
		scores.Set(a, character.AbilityScore{Score: i})
	}
	for i, a := range rules.Abilities() {
		assert.Equal(t, i, scores.Get(a).Score, "ability %s", a)
	}
	scores.Mut(rules.Strength).Add(1)
	assert.Equal(t, 8, scores.Strength.Score)
	assert.Panics(t, func() { scores.Get(rules.Ability("Luck")) })
}
