// Package ancestry holds the level 1 selections each ancestry asks of the
// player: starting focus choices, ancestry benefits and granted powers.
package ancestry

import (
	"fmt"
	"slices"

	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// Selections is an ancestry's level 1 choice subtree.
type Selections interface {
	advancement.Advancement
	// Kind names the ancestry these selections belong to.
	Kind() rules.AncestryKind
	// Ancestry is the ancestry recorded on the character, including any
	// sub-choice such as a Wildfolk species.
	Ancestry() rules.Ancestry
}

// New returns empty selections for k.
func New(k rules.AncestryKind) (Selections, error) {
	switch k {
	case rules.Draak:
		return &DraakSelections{}, nil
	case rules.Dwarf:
		return &DwarfSelections{}, nil
	case rules.Elf:
		return &ElfSelections{}, nil
	case rules.Gnome:
		return &GnomeSelections{}, nil
	case rules.Goblin:
		return &GoblinSelections{}, nil
	case rules.Halfling:
		return &HalflingSelections{}, nil
	case rules.Human:
		return &HumanSelections{}, nil
	case rules.Orc:
		return &OrcSelections{}, nil
	case rules.Wildfolk:
		return &WildfolkSelections{}, nil
	}
	return nil, fmt.Errorf("ancestry %q: %w", string(k), advancement.ErrUnknownChoice)
}

var focusOptions = map[rules.AncestryKind][]rules.Focus{
	rules.Draak:    {rules.StrengthIntimidation, rules.WillpowerSelfDiscipline},
	rules.Elf:      {rules.IntelligenceNaturalLore, rules.PerceptionSeeing},
	rules.Gnome:    {rules.AccuracyArcaneBlast, rules.ConstitutionStamina},
	rules.Goblin:   {rules.CommunicationInvestigation, rules.DexterityStealth},
	rules.Halfling: {rules.CommunicationPersuasion, rules.PerceptionHearing},
	rules.Human:    {rules.DexterityRiding, rules.StrengthMight},
	rules.Orc:      {rules.ConstitutionStamina, rules.StrengthIntimidation},
	rules.Wildfolk: {rules.ConstitutionStamina, rules.PerceptionSeeing},
}

// FocusOptions lists the starting focuses an ancestry offers. Dwarves have none.
func FocusOptions(k rules.AncestryKind) []rules.Focus {
	return slices.Clone(focusOptions[k])
}

// FocusChoice is the starting ability focus picked from an ancestry's options.
type FocusChoice struct {
	Focus   *rules.Focus
	Options []rules.Focus
}

// Apply grants the chosen focus at single level. A focus the character
// already holds leaves the choice incomplete so the player can pick the other.
func (f *FocusChoice) Apply(c *character.Character) (bool, error) {
	focus := *f.Focus
	if focus == "" {
		return false, nil
	}
	if !slices.Contains(f.Options, focus) {
		return false, advancement.Violate(advancement.ErrFocusNotAllowed, focus.String())
	}
	if c.Mechanics.HasFocus(focus) {
		return false, nil
	}
	c.Mechanics.SetFocus(focus, rules.SingleFocus)
	return true, nil
}

func (*FocusChoice) NodeName() string { return "ability_focus" }

func focusChoice(k rules.AncestryKind, f *rules.Focus) advancement.Advancement {
	return advancement.Leaf(&FocusChoice{Focus: f, Options: focusOptions[k]})
}
