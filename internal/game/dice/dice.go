// Package dice provides the randomness abstraction, dice notation and roll
// results used by the character builder.
package dice

import "fmt"

// Dice is a homogeneous pool of dice, e.g. 2d6.
//
// Invariant: Count >= 1 and Sides >= 2 for any Dice produced by this package.
type Dice struct {
	Count int `json:"count" yaml:"count"`
	Sides int `json:"sides" yaml:"sides"`
}

// D6 returns a pool of n six-sided dice.
func D6(n int) Dice { return Dice{Count: n, Sides: 6} }

// D3 returns a pool of n three-sided dice.

// MinValue returns the smallest possible sum of the pool.
//
// Postcondition: Returns d.Count.
func (d Dice) MinValue() int {
	return d.Count
}

// MaxValue returns the largest possible sum of the pool.
//
// Postcondition: Returns d.Count * d.Sides.
func (d Dice) MaxValue() int {
	return d.Count * d.Sides
}

// String renders the pool in NdS notation.
func (d Dice) String() string {
	return fmt.Sprintf("%dd%d", d.Count, d.Sides)
}

// RollResult holds the full audit trail for a single dice roll evaluation.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type RollResult struct {
	Expression string // original expression string, e.g. "2d6+3"
	Dice       []int  // individual die results before modifier
	Modifier   int    // flat modifier (may be negative)
}

// Total returns the sum of all die results plus the modifier.
//
// Postcondition: return value == sum(r.Dice) + r.Modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"2d6+3 → [4 5] +3 = 12"
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	return fmt.Sprintf("%s → %v %+d = %d", r.Expression, r.Dice, r.Modifier, r.Total())
}

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
