package character

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// AbilityScore is a whole score plus progress toward the next point.
//
// Invariant: after Add or Sub, 0 <= Partial < threshold(Score+1).
type AbilityScore struct {
	Score   int `json:"score" yaml:"score"`
	Partial int `json:"partial" yaml:"partial"`
}

// threshold returns the number of advancements needed to move through score.
func threshold(score int) int {
	switch {
	case score >= 9:
		return 3
	case score >= 6:
		return 2
	default:
		return 1
	}
}

func (s *AbilityScore) settle() {
	for s.Partial < 0 {
		s.Partial += threshold(s.Score)
		s.Score--
	}
	for s.Partial > 0 {
		t := threshold(s.Score + 1)
		if s.Partial < t {
			break
		}
		s.Partial -= t
		s.Score++
	}
}

// Add invests n advancements and settles partials into whole points.
func (s *AbilityScore) Add(n int) {
	s.Partial += n
	s.settle()
}

// Sub removes n advancements and settles partials.
//
// Postcondition: Add(n) followed by Sub(n) restores the original score.
func (s *AbilityScore) Sub(n int) {
	s.Partial -= n
	s.settle()
}

// String renders the score with one "+" per pending partial, e.g. "9++".
func (s AbilityScore) String() string {
	if s.Partial <= 0 {
		return fmt.Sprintf("%d", s.Score)
	}
	return fmt.Sprintf("%d%s", s.Score, strings.Repeat("+", s.Partial))
}

// AbilityScores holds one AbilityScore per ability.
type AbilityScores struct {
	Accuracy      AbilityScore `json:"accuracy" yaml:"accuracy"`
	Communication AbilityScore `json:"communication" yaml:"communication"`
	Constitution  AbilityScore `json:"constitution" yaml:"constitution"`
	Dexterity     AbilityScore `json:"dexterity" yaml:"dexterity"`
	Fighting      AbilityScore `json:"fighting" yaml:"fighting"`
	Intelligence  AbilityScore `json:"intelligence" yaml:"intelligence"`
	Perception    AbilityScore `json:"perception" yaml:"perception"`
	Strength      AbilityScore `json:"strength" yaml:"strength"`
	Willpower     AbilityScore `json:"willpower" yaml:"willpower"`
}

// Mut returns a pointer to the score for a.
//
// Precondition: a must be valid; panics otherwise.
func (s *AbilityScores) Mut(a rules.Ability) *AbilityScore {
	switch a {
	case rules.Accuracy:
		return &s.Accuracy
	case rules.Communication:
		return &s.Communication
	case rules.Constitution:
		return &s.Constitution
	case rules.Dexterity:
		return &s.Dexterity
	case rules.Fighting:
		return &s.Fighting
	case rules.Intelligence:
		return &s.Intelligence
	case rules.Perception:
		return &s.Perception
	case rules.Strength:
		return &s.Strength
	case rules.Willpower:
		return &s.Willpower
	}
	panic(fmt.Sprintf("character: unknown ability %q", string(a)))
}

// Get returns the score for a.
func (s AbilityScores) Get(a rules.Ability) AbilityScore {
	return *s.Mut(a)
}

// Set replaces the score for a.
func (s *AbilityScores) Set(a rules.Ability, v AbilityScore) {
	*s.Mut(a) = v
}
