// Package modifier tracks numeric values together with the sources of every
// adjustment, so a character sheet can explain where a number comes from.
package modifier

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/fage2e/internal/game/dice"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// SourceKind discriminates the origin of a modifier.
type SourceKind string

const (
	FromAbility  SourceKind = "ability"
	FromAncestry SourceKind = "ancestry"
	FromClass    SourceKind = "class"
	FromCore     SourceKind = "core"
	FromFocus    SourceKind = "focus"
	FromLevel    SourceKind = "level"
	FromPower    SourceKind = "power"
)

// Source names the origin of a base value, override or additive modifier.
// Only the field matching Kind is meaningful.
type Source struct {
	Kind     SourceKind     `json:"kind" yaml:"kind"`
	Ability  rules.Ability  `json:"ability,omitempty" yaml:"ability,omitempty"`
	Ancestry rules.Ancestry `json:"ancestry,omitzero" yaml:"ancestry,omitempty"`
	Class    rules.Class    `json:"class,omitempty" yaml:"class,omitempty"`
	Focus    rules.Focus    `json:"focus,omitempty" yaml:"focus,omitempty"`
	Level    int            `json:"level,omitempty" yaml:"level,omitempty"`
	Power    string         `json:"power,omitempty" yaml:"power,omitempty"`
}

// Core is the source for values fixed by the core rules.
func Core() Source { return Source{Kind: FromCore} }

// Ability returns a source naming an ability score.
func Ability(a rules.Ability) Source { return Source{Kind: FromAbility, Ability: a} }

// Ancestry returns a source naming an ancestry.
func Ancestry(a rules.Ancestry) Source { return Source{Kind: FromAncestry, Ancestry: a} }

// Class returns a source naming a class.
func Class(c rules.Class) Source { return Source{Kind: FromClass, Class: c} }

// Focus returns a source naming a focus.
func Focus(f rules.Focus) Source { return Source{Kind: FromFocus, Focus: f} }

// Level returns a source naming the level at which an advancement was taken.
func Level(n int) Source { return Source{Kind: FromLevel, Level: n} }

// Power returns a source naming a power by display name.
func Power(name string) Source { return Source{Kind: FromPower, Power: name} }

// String renders the source for display, e.g. "Level 3" or "Dexterity".
func (s Source) String() string {
	switch s.Kind {
	case FromAbility:
		return s.Ability.String()
	case FromAncestry:
		return s.Ancestry.String()
	case FromClass:
		return s.Class.String()
	case FromCore:
		return "Core"
	case FromFocus:
		return s.Focus.String()
	case FromLevel:
		return fmt.Sprintf("Level %d", s.Level)
	case FromPower:
		return s.Power
	default:
		return string(s.Kind)
	}
}

// Base is a starting value and its source.
type Base[T any] struct {
	Value  T      `json:"value" yaml:"value"`
	Source Source `json:"source" yaml:"source"`
}

// Additive is a signed adjustment and its source.
type Additive struct {
	Value  int    `json:"value" yaml:"value"`
	Source Source `json:"source" yaml:"source"`
}

func (a Additive) String() string {
	return fmt.Sprintf("%+d (%s)", a.Value, a.Source)
}

// Set is an optional override plus an ordered list of additive modifiers.
// Order is preserved for display; it never changes the arithmetic.
type Set[T any] struct {
	Override *Base[T]   `json:"override,omitempty" yaml:"override,omitempty"`
	Additive []Additive `json:"additive,omitempty" yaml:"additive,omitempty"`
}

// Sum returns the total of all additive modifiers.
func (s Set[T]) Sum() int {
	total := 0
	for _, a := range s.Additive {
		total += a.Value
	}
	return total
}

// Add appends an additive modifier.
func (s *Set[T]) Add(value int, src Source) {
	s.Additive = append(s.Additive, Additive{Value: value, Source: src})
}

// Value is an integer with a sourced base and modifiers.
type Value struct {
	Base      Base[int] `json:"base" yaml:"base"`
	Modifiers Set[int]  `json:"modifiers" yaml:"modifiers"`
}

// NewValue returns a Value with the given base and no modifiers.
func NewValue(base int, src Source) Value {
	return Value{Base: Base[int]{Value: base, Source: src}}
}

// FinalValue returns override-or-base plus the sum of additive modifiers.
//
// Postcondition: The result does not depend on the order of Modifiers.Additive.
func (v Value) FinalValue() int {
	start := v.Base.Value
	if v.Modifiers.Override != nil {
		start = v.Modifiers.Override.Value
	}
	return start + v.Modifiers.Sum()
}

// Breakdown lists the contributions to the final value in order, starting
// with the effective base.
func (v Value) Breakdown() []string {
	base := v.Base
	if v.Modifiers.Override != nil {
		base = *v.Modifiers.Override
	}
	lines := []string{fmt.Sprintf("%d (%s)", base.Value, base.Source)}
	for _, a := range v.Modifiers.Additive {
		lines = append(lines, a.String())
	}
	return lines
}

func (v Value) String() string {
	return fmt.Sprintf("%d = %s", v.FinalValue(), strings.Join(v.Breakdown(), " "))
}

// DiceRoll is a dice expression with a sourced base and modifiers. Rolling the
// dice is the caller's concern; FinalValue takes the rolled sum.
type DiceRoll struct {
	Base      Base[dice.Expression] `json:"base" yaml:"base"`
	Modifiers Set[dice.Expression]  `json:"modifiers" yaml:"modifiers"`
}

func (d DiceRoll) effective() dice.Expression {
	if d.Modifiers.Override != nil {
		return d.Modifiers.Override.Value
	}
	return d.Base.Value
}

// Dice returns the pool to roll.
func (d DiceRoll) Dice() dice.Dice {
	return d.effective().Dice()
}

// FinalValue returns diceSum plus the effective flat modifier and all additive
// modifiers.
func (d DiceRoll) FinalValue(diceSum int) int {
	return diceSum + d.effective().Modifier + d.Modifiers.Sum()
}
