package level

import (
	"fmt"

	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/ancestry"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/class"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// ClassSelections is the class choice. A nil Selected means no class has been
// chosen.
type ClassSelections struct {
	Selected class.Selections
}

// Choose replaces the selection with empty selections for c.
func (s *ClassSelections) Choose(c rules.Class) error {
	sel, err := class.New(c)
	if err != nil {
		return err
	}
	s.Selected = sel
	return nil
}

// ApplySelf records the class and sets current health to its starting health.
func (s *ClassSelections) ApplySelf(c *character.Character) (bool, error) {
	if s.Selected == nil {
		return false, nil
	}
	cls := s.Selected.Class()
	c.Mechanics.Class = cls
	c.Status.Health = cls.StartingHealth()
	return true, nil
}

func (s *ClassSelections) ForEach(visit func(advancement.Advancement)) {
	if s.Selected != nil {
		visit(s.Selected)
	}
}

func (*ClassSelections) NodeName() string { return "class" }

func (s ClassSelections) MarshalJSON() ([]byte, error) {
	if s.Selected == nil {
		return advancement.MarshalTagged(advancement.KindNone, nil)
	}
	return advancement.MarshalTagged(string(s.Selected.Class()), s.Selected)
}

func (s *ClassSelections) UnmarshalJSON(data []byte) error {
	kind, raw, err := advancement.UnmarshalTagged(data)
	if err != nil {
		return err
	}
	if kind == advancement.KindNone {
		s.Selected = nil
		return nil
	}
	sel, err := class.New(rules.Class(kind))
	if err != nil {
		return err
	}
	if err := advancement.DecodeSelections(raw, sel); err != nil {
		return fmt.Errorf("decoding %s selections: %w", kind, err)
	}
	s.Selected = sel
	return nil
}

// AncestrySelections is the ancestry choice. A nil Selected means no ancestry
// has been chosen.
type AncestrySelections struct {
	Selected ancestry.Selections
}

// Choose replaces the selection with empty selections for k.
func (s *AncestrySelections) Choose(k rules.AncestryKind) error {
	sel, err := ancestry.New(k)
	if err != nil {
		return err
	}
	s.Selected = sel
	return nil
}

// ApplySelf records the ancestry. Wildfolk stays incomplete until a species
// is chosen; the ancestry is still recorded so speed and powers resolve.
func (s *AncestrySelections) ApplySelf(c *character.Character) (bool, error) {
	if s.Selected == nil {
		return false, nil
	}
	a := s.Selected.Ancestry()
	if a.Species != "" && !a.Species.Valid() {
		return false, advancement.Violate(advancement.ErrUnknownChoice, string(a.Species))
	}
	c.Mechanics.Ancestry = a
	return a.Kind != rules.Wildfolk || a.Species != "", nil
}

func (s *AncestrySelections) ForEach(visit func(advancement.Advancement)) {
	if s.Selected != nil {
		visit(s.Selected)
	}
}

func (*AncestrySelections) NodeName() string { return "ancestry" }

func (s AncestrySelections) MarshalJSON() ([]byte, error) {
	if s.Selected == nil {
		return advancement.MarshalTagged(advancement.KindNone, nil)
	}
	return advancement.MarshalTagged(string(s.Selected.Kind()), s.Selected)
}

func (s *AncestrySelections) UnmarshalJSON(data []byte) error {
	kind, raw, err := advancement.UnmarshalTagged(data)
	if err != nil {
		return err
	}
	if kind == advancement.KindNone {
		s.Selected = nil
		return nil
	}
	sel, err := ancestry.New(rules.AncestryKind(kind))
	if err != nil {
		return err
	}
	if err := advancement.DecodeSelections(raw, sel); err != nil {
		return fmt.Errorf("decoding %s selections: %w", kind, err)
	}
	s.Selected = sel
	return nil
}
