package ancestry

import (
	"fmt"
	"slices"

	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// DraakBenefitKind names a row of the Draak benefit table.
type DraakBenefitKind string

const (
	DraakConstitution      DraakBenefitKind = "constitution"
	DraakArmored           DraakBenefitKind = "armored"
	DraakStamina           DraakBenefitKind = "stamina"
	DraakMagicalResistance DraakBenefitKind = "magical_resistance"
	DraakIntelligence      DraakBenefitKind = "intelligence"
	DraakFlameBreath       DraakBenefitKind = "flame_breath"
	DraakResearch          DraakBenefitKind = "research"
	DraakWillpower         DraakBenefitKind = "willpower"
	DraakStrength          DraakBenefitKind = "strength"
)

// MagicalResistanceFocuses are the focuses a Draak may resist spells with.
var MagicalResistanceFocuses = []rules.Focus{
	rules.ConstitutionStamina,
	rules.IntelligenceArcaneLore,
	rules.WillpowerSelfDiscipline,
}

// DraakBenefit is one entry of the Draak benefit table. Resistance is only
// read for DraakMagicalResistance and may be "" while undecided.
type DraakBenefit struct {
	Kind       DraakBenefitKind `json:"kind" yaml:"kind"`
	Resistance rules.Focus      `json:"resistance,omitempty" yaml:"resistance,omitempty"`
}

var draakNames = map[DraakBenefitKind]string{
	DraakConstitution:      "+1 Constitution",
	DraakArmored:           "Power: Armored",
	DraakStamina:           "Constitution (Stamina)",
	DraakMagicalResistance: "Power: Magical Resistance",
	DraakIntelligence:      "+1 Intelligence",
	DraakFlameBreath:       "Ancestry Stunt: Flame Breath",
	DraakResearch:          "Intelligence (Research)",
	DraakWillpower:         "+1 Willpower",
	DraakStrength:          "+1 Strength",
}

var draakAbilityBumps = map[DraakBenefitKind]rules.Ability{
	DraakConstitution: rules.Constitution,
	DraakIntelligence: rules.Intelligence,
	DraakWillpower:    rules.Willpower,
	DraakStrength:     rules.Strength,
}

func (b DraakBenefit) DisplayName() string {
	if name, ok := draakNames[b.Kind]; ok {
		return name
	}
	return string(b.Kind)
}

func (b DraakBenefit) String() string { return b.DisplayName() }

func (b DraakBenefit) CountsAsTwo() bool {
	_, ok := draakAbilityBumps[b.Kind]
	return ok
}

// FromRoll maps a 2d6 total onto the table.
//
// Postcondition: returns an error wrapping advancement.ErrInvalidRoll outside 2..12.
func (DraakBenefit) FromRoll(roll int) (DraakBenefit, error) {
	var k DraakBenefitKind
	switch roll {
	case 2:
		k = DraakConstitution
	case 3, 4:
		k = DraakArmored
	case 5:
		k = DraakStamina
	case 6:
		k = DraakMagicalResistance
	case 7, 8:
		k = DraakIntelligence
	case 9:
		k = DraakFlameBreath
	case 10:
		k = DraakResearch
	case 11:
		k = DraakWillpower
	case 12:
		k = DraakStrength
	default:
		return DraakBenefit{}, advancement.Violate(advancement.ErrInvalidRoll, fmt.Sprintf("draak benefit roll %d", roll))
	}
	return DraakBenefit{Kind: k}, nil
}

// Apply grants the benefit. Magical Resistance is incomplete until a
// resistance focus from MagicalResistanceFocuses is chosen.
func (b DraakBenefit) Apply(c *character.Character) bool {
	if a, ok := draakAbilityBumps[b.Kind]; ok {
		c.Mechanics.Abilities.Mut(a).Add(1)
		return true
	}
	switch b.Kind {
	case DraakArmored:
		c.Mechanics.Powers.Draak.Armored = &character.DraakArmored{}
	case DraakStamina:
		c.Mechanics.SetFocus(rules.ConstitutionStamina, rules.SingleFocus)
	case DraakResearch:
		c.Mechanics.SetFocus(rules.IntelligenceResearch, rules.SingleFocus)
	case DraakMagicalResistance:
		if !slices.Contains(MagicalResistanceFocuses, b.Resistance) {
			return false
		}
		c.Mechanics.Powers.Draak.MagicalResistance = &character.DraakMagicalResistance{Focus: b.Resistance}
	case DraakFlameBreath:
	default:
		return false
	}
	return true
}

func (b DraakBenefit) Same(other DraakBenefit) bool { return b.Kind == other.Kind }

func (DraakBenefit) Options() []DraakBenefit {
	return []DraakBenefit{
		{Kind: DraakConstitution},
		{Kind: DraakArmored},
		{Kind: DraakStamina},
		{Kind: DraakMagicalResistance},
		{Kind: DraakIntelligence},
		{Kind: DraakFlameBreath},
		{Kind: DraakResearch},
		{Kind: DraakWillpower},
		{Kind: DraakStrength},
	}
}

// DraakSelections are the level 1 choices of the draak.
type DraakSelections struct {
	AbilityFocus rules.Focus                                 `json:"ability_focus,omitempty" yaml:"ability_focus,omitempty"`
	Benefits     advancement.BenefitSelections[DraakBenefit] `json:"benefits" yaml:"benefits"`
}

func (*DraakSelections) Kind() rules.AncestryKind { return rules.Draak }
func (*DraakSelections) Ancestry() rules.Ancestry { return rules.Ancestry{Kind: rules.Draak} }

// ApplySelf grants Dark Sight.
func (*DraakSelections) ApplySelf(c *character.Character) (bool, error) {
	c.Mechanics.Powers.DarkSight = &character.DarkSight{}
	return true, nil
}

func (s *DraakSelections) ForEach(visit func(advancement.Advancement)) {
	visit(focusChoice(rules.Draak, &s.AbilityFocus))
	visit(advancement.Leaf(&s.Benefits))
}

func (*DraakSelections) NodeName() string { return "draak" }
