package advancement

import (
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/dice"
)

// BenefitRollDice is the pool rolled on an ancestry benefit table.
var BenefitRollDice = dice.D6(2)

// Benefit is one entry of an ancestry benefit table.
type Benefit[B any] interface {
	comparable
	DisplayName() string
	// CountsAsTwo reports whether the benefit uses both picks when chosen by hand.
	CountsAsTwo() bool
	// FromRoll maps a 2d6 total to a table entry.
	FromRoll(roll int) (B, error)
	// Apply grants the benefit, reporting whether any sub-choice is complete.
	Apply(c *character.Character) bool
	// Same reports whether two entries are the same table row, ignoring
	// sub-choices. Only rolling uses it; hand-picked duplicates must be equal.
	Same(other B) bool
	// Options lists one value per table row.
	Options() []B
}

// BenefitSelections holds up to two ancestry benefits.
type BenefitSelections[B Benefit[B]] struct {
	Selection1           *B   `json:"selection1,omitempty" yaml:"selection1,omitempty"`
	Selection2           *B   `json:"selection2,omitempty" yaml:"selection2,omitempty"`
	SelectionsWereRolled bool `json:"selections_were_rolled" yaml:"selections_were_rolled"`
}

// Apply grants the selected benefits.
//
// Hand-picked selections are either two distinct benefits or one benefit that
// counts as two. Rolled selections are always two distinct benefits. The same
// row with different sub-choices is two distinct benefits.
func (s *BenefitSelections[B]) Apply(c *character.Character) (bool, error) {
	if s.Selection1 == nil {
		if s.Selection2 == nil {
			return false, nil
		}
		b2 := *s.Selection2
		done := b2.Apply(c)
		return done && b2.CountsAsTwo() && !s.SelectionsWereRolled, nil
	}

	b1 := *s.Selection1
	if s.Selection2 != nil && b1 == *s.Selection2 {
		return false, Violate(ErrDuplicateBenefit, b1.DisplayName())
	}
	if b1.CountsAsTwo() && !s.SelectionsWereRolled {
		if s.Selection2 != nil {
			return false, Violatef(ErrBenefitAfterDouble, "%s then %s", b1.DisplayName(), (*s.Selection2).DisplayName())
		}
		return b1.Apply(c), nil
	}
	done1 := b1.Apply(c)
	if s.Selection2 == nil {
		return false, nil
	}
	done2 := (*s.Selection2).Apply(c)
	return done1 && done2, nil
}

func (s *BenefitSelections[B]) NodeName() string { return "benefits" }

// RollBenefits fills both slots from the table with r, rerolling the second
// until it differs from the first, and marks the selections as rolled.
//
// Precondition: the table must have at least two distinct rows reachable on 2d6.
func RollBenefits[B Benefit[B]](s *BenefitSelections[B], r *dice.Roller) error {
	var zero B
	first, err := zero.FromRoll(r.Sum(BenefitRollDice))
	if err != nil {
		return err
	}
	var second B
	for {
		second, err = zero.FromRoll(r.Sum(BenefitRollDice))
		if err != nil {
			return err
		}
		if !second.Same(first) {
			break
		}
	}
	s.Selection1 = &first
	s.Selection2 = &second
	s.SelectionsWereRolled = true
	return nil
}
