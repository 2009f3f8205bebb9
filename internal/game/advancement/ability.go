package advancement

import (
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// PrimaryAbilityAdvancement invests one advancement in a primary ability of
// the character's class.
type PrimaryAbilityAdvancement struct {
	Ability rules.Ability `json:"ability,omitempty" yaml:"ability,omitempty"`
}

// Apply adds one partial point to the chosen ability.
//
// Precondition: the class must already be set on c.
func (p *PrimaryAbilityAdvancement) Apply(c *character.Character) (bool, error) {
	return advanceAbility(c, p.Ability, rules.Class.IsPrimary)
}

// SecondaryAbilityAdvancement invests one advancement in a secondary ability
// of the character's class.
type SecondaryAbilityAdvancement struct {
	Ability rules.Ability `json:"ability,omitempty" yaml:"ability,omitempty"`
}

func (s *SecondaryAbilityAdvancement) Apply(c *character.Character) (bool, error) {
	return advanceAbility(c, s.Ability, rules.Class.IsSecondary)
}

func advanceAbility(c *character.Character, a rules.Ability, allowed func(rules.Class, rules.Ability) bool) (bool, error) {
	if a == "" {
		return false, nil
	}
	class := c.Mechanics.Class
	if class == "" {
		return false, Violate(ErrNoClass, string(a))
	}
	if !allowed(class, a) {
		return false, Violatef(ErrAbilityNotAllowed, "%s for %s", a, class)
	}
	c.Mechanics.Abilities.Mut(a).Add(1)
	return true, nil
}

// PrimaryFocusAdvancement takes or doubles a focus of a primary ability.
type PrimaryFocusAdvancement struct {
	Focus rules.Focus `json:"focus,omitempty" yaml:"focus,omitempty"`
}

func (p *PrimaryFocusAdvancement) Apply(c *character.Character) (bool, error) {
	return advanceClassFocus(c, p.Focus, rules.Class.IsPrimary)
}

// SecondaryFocusAdvancement takes or doubles a focus of a secondary ability.
type SecondaryFocusAdvancement struct {
	Focus rules.Focus `json:"focus,omitempty" yaml:"focus,omitempty"`
}

func (s *SecondaryFocusAdvancement) Apply(c *character.Character) (bool, error) {
	return advanceClassFocus(c, s.Focus, rules.Class.IsSecondary)
}

func advanceClassFocus(c *character.Character, f rules.Focus, allowed func(rules.Class, rules.Ability) bool) (bool, error) {
	if f == "" {
		return false, nil
	}
	class := c.Mechanics.Class
	if class == "" {
		return false, Violate(ErrNoClass, f.String())
	}
	if !allowed(class, f.Ability()) {
		return false, Violatef(ErrFocusNotAllowed, "%s for %s", f, class)
	}
	if err := AdvanceFocus(c, f); err != nil {
		return false, err
	}
	return true, nil
}

// DoubleFocusLevel is the first level at which a focus may be doubled.
const DoubleFocusLevel = 11

// AdvanceFocus raises f by one step: untrained to single, or single to double
// from level 11.
//
// Postcondition: on error c is unchanged.
func AdvanceFocus(c *character.Character, f rules.Focus) error {
	switch c.Mechanics.FocusLevel(f) {
	case rules.NoFocus:
		c.Mechanics.SetFocus(f, rules.SingleFocus)
	case rules.SingleFocus:
		if c.Mechanics.Level < DoubleFocusLevel {
			return Violatef(ErrDoubleFocusTooEarly, "%s at level %d", f, c.Mechanics.Level)
		}
		c.Mechanics.SetFocus(f, rules.DoubleFocus)
	default:
		return Violate(ErrTripleFocus, f.String())
	}
	return nil
}
