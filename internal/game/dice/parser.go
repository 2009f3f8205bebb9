package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is a dice pool plus a flat modifier, e.g. "2d6+3".
//
// Precondition: Count >= 1, Sides >= 2 after successful Parse.
type Expression struct {
	Raw      string // original input string
	Count    int    // number of dice
	Sides    int    // faces per die
	Modifier int    // flat modifier (may be negative)
}

// Dice returns the pool part of the expression.
func (e Expression) Dice() Dice {
	return Dice{Count: e.Count, Sides: e.Sides}
}

// MinValue returns the smallest possible total of the expression.
func (e Expression) MinValue() int {
	return e.Dice().MinValue() + e.Modifier
}

// MaxValue returns the largest possible total of the expression.
func (e Expression) MaxValue() int {
	return e.Dice().MaxValue() + e.Modifier
}

// String renders the expression for character sheets, e.g. "2d6 + 3" or "1d6 - 1".
func (e Expression) String() string {
	if e.Modifier < 0 {
		return fmt.Sprintf("%s - %d", e.Dice(), -e.Modifier)
	}
	return fmt.Sprintf("%s + %d", e.Dice(), e.Modifier)
}

// Parse parses a dice expression string into an Expression.
// Supported forms: "d6", "2d6", "2d6+3", "1d6-1".
//
// Precondition: expr must be a non-empty string.
// Postcondition: Returns a valid Expression or a descriptive error.
func Parse(expr string) (Expression, error) {
	if expr == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}

	raw := expr
	s := strings.ToLower(strings.ReplaceAll(expr, " ", ""))

	dIdx := strings.Index(s, "d")
	if dIdx < 0 {
		return Expression{}, fmt.Errorf("dice: missing 'd' in expression %q", raw)
	}

	// Count defaults to 1 when omitted.
	count := 1
	if countStr := s[:dIdx]; countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", raw, err)
		}
		if count <= 0 {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", raw)
		}
	}

	rest := s[dIdx+1:]
	sidesStr, modStr := rest, ""
	if i := strings.IndexAny(rest, "+-"); i >= 0 {
		sidesStr, modStr = rest[:i], rest[i:]
	}

	sides, err := strconv.Atoi(sidesStr)
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", raw, err)
	}
	if sides < 2 {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 2", raw)
	}

	modifier := 0
	if modStr != "" {
		modifier, err = strconv.Atoi(modStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", raw, err)
		}
	}

	return Expression{
		Raw:      raw,
		Count:    count,
		Sides:    sides,
		Modifier: modifier,
	}, nil
}

// MustParse parses expr and panics on error. Useful for package-level tables.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}
