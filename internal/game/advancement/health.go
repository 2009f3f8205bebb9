package advancement

import (
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/dice"
	"github.com/cory-johannsen/fage2e/internal/game/modifier"
)

// MinHealthGain is the smallest health a level can add.
const MinHealthGain = 1

// DiceBasedHealthAdvancement adds Constitution plus a die roll to max health.
type DiceBasedHealthAdvancement struct {
	// RollResult is the raw die result before Constitution, nil until rolled.
	RollResult *int `json:"roll_result,omitempty" yaml:"roll_result,omitempty"`
}

// Dice returns the pool rolled for this advancement.
func (*DiceBasedHealthAdvancement) Dice() dice.Dice {
	return dice.D6(1)
}

// Calculated returns constitution plus the roll (0 when unrolled). When that
// total is below 1 it returns 1 and clamped == true.
//
// The roll itself is not range checked.
func (h *DiceBasedHealthAdvancement) Calculated(constitution int) (value int, clamped bool) {
	total := constitution
	if h.RollResult != nil {
		total += *h.RollResult
	}
	if total < MinHealthGain {
		return MinHealthGain, true
	}
	return total, false
}

// Roll fills RollResult from r.
func (h *DiceBasedHealthAdvancement) Roll(r *dice.Roller) {
	v := r.Sum(h.Dice())
	h.RollResult = &v
}

// Apply pushes the calculated gain tagged with the current level.
func (h *DiceBasedHealthAdvancement) Apply(c *character.Character) (bool, error) {
	if h.RollResult == nil {
		return false, nil
	}
	d := h.Dice()
	if roll := *h.RollResult; roll < d.MinValue() || roll > d.MaxValue() {
		return false, Violatef(ErrRollOutOfRange, "%d on %s", roll, d)
	}
	gain, _ := h.Calculated(c.Mechanics.Abilities.Constitution.Score)
	c.Mechanics.HealthAdvancements = append(c.Mechanics.HealthAdvancements,
		modifier.Additive{Value: gain, Source: modifier.Level(c.Mechanics.Level)})
	return true, nil
}

func (h *DiceBasedHealthAdvancement) NodeName() string { return "health" }
