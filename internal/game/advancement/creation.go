package advancement

import (
	"encoding/json"
	"fmt"

	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/dice"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// SelectName sets the character's name.
type SelectName struct {
	Name string `json:"name" yaml:"name"`
}

// Apply is complete once the name is non-empty.
func (s *SelectName) Apply(c *character.Character) (bool, error) {
	c.Flavor.Name = s.Name
	return s.Name != "", nil
}

func (s *SelectName) NodeName() string { return "name" }

// SelectAbilityPoints is the number of points spent when selecting abilities.
const SelectAbilityPoints = 13

// SelectAbilityCap is the highest score reachable by selecting abilities.
const SelectAbilityCap = 3

// SelectAbilities spends thirteen points, one per slot, on raw ability scores.
type SelectAbilities struct {
	Advancements [SelectAbilityPoints]rules.Ability `json:"advancements" yaml:"advancements"`
}

// Apply adds one to the raw score for every filled slot. A slot naming an
// unknown ability, or an ability already at 3, is invalid.
func (s *SelectAbilities) Apply(c *character.Character) (bool, error) {
	abilities := &c.Mechanics.Abilities
	allDone := true
	for i, a := range s.Advancements {
		if a == "" {
			allDone = false
			continue
		}
		if !a.Valid() {
			return false, Violatef(ErrUnknownChoice, "slot %d: %s", i+1, a)
		}
		score := abilities.Mut(a)
		if score.Score >= SelectAbilityCap {
			return false, Violatef(ErrAbilityCapped, "slot %d: %s", i+1, a)
		}
		score.Score++
	}
	return allDone, nil
}

// ManuallyEnterAbilities overwrites every ability with externally determined
// scores. Scores are not validated.
type ManuallyEnterAbilities struct {
	Accuracy      int `json:"accuracy" yaml:"accuracy"`
	Communication int `json:"communication" yaml:"communication"`
	Constitution  int `json:"constitution" yaml:"constitution"`
	Dexterity     int `json:"dexterity" yaml:"dexterity"`
	Fighting      int `json:"fighting" yaml:"fighting"`
	Intelligence  int `json:"intelligence" yaml:"intelligence"`
	Perception    int `json:"perception" yaml:"perception"`
	Strength      int `json:"strength" yaml:"strength"`
	Willpower     int `json:"willpower" yaml:"willpower"`
}

func (m *ManuallyEnterAbilities) Apply(c *character.Character) (bool, error) {
	c.Mechanics.Abilities = character.AbilityScores{
		Accuracy:      character.AbilityScore{Score: m.Accuracy},
		Communication: character.AbilityScore{Score: m.Communication},
		Constitution:  character.AbilityScore{Score: m.Constitution},
		Dexterity:     character.AbilityScore{Score: m.Dexterity},
		Fighting:      character.AbilityScore{Score: m.Fighting},
		Intelligence:  character.AbilityScore{Score: m.Intelligence},
		Perception:    character.AbilityScore{Score: m.Perception},
		Strength:      character.AbilityScore{Score: m.Strength},
		Willpower:     character.AbilityScore{Score: m.Willpower},
	}
	return true, nil
}

// RollAbilities determines each ability from a 3d6 roll, in sheet order.
type RollAbilities struct {
	Rolls [9]*int `json:"rolls" yaml:"rolls"`
}

// AbilityRollDice is the pool rolled per ability.
var AbilityRollDice = dice.D6(3)

// ScoreForRoll maps a 3d6 total to a starting score.
//
// Precondition: 3 <= roll <= 18.
func ScoreForRoll(roll int) int {
	switch {
	case roll <= 3:
		return -2
	case roll <= 5:
		return -1
	case roll <= 8:
		return 0
	case roll <= 11:
		return 1
	case roll <= 14:
		return 2
	case roll <= 17:
		return 3
	default:
		return 4
	}
}

// Roll fills every empty slot using r.
func (ra *RollAbilities) Roll(r *dice.Roller) {
	for i := range ra.Rolls {
		if ra.Rolls[i] == nil {
			v := r.Sum(AbilityRollDice)
			ra.Rolls[i] = &v
		}
	}
}

// Apply sets each ability whose roll is known. A roll outside 3..18 is invalid.
func (ra *RollAbilities) Apply(c *character.Character) (bool, error) {
	allDone := true
	for i, a := range rules.Abilities() {
		roll := ra.Rolls[i]
		if roll == nil {
			allDone = false
			continue
		}
		if *roll < AbilityRollDice.MinValue() || *roll > AbilityRollDice.MaxValue() {
			return false, Violatef(ErrRollOutOfRange, "%s roll %d", a, *roll)
		}
		c.Mechanics.Abilities.Set(a, character.AbilityScore{Score: ScoreForRoll(*roll)})
	}
	return allDone, nil
}

// AbilityMethod is one way of determining starting abilities.
type AbilityMethod interface {
	Applier
	abilityMethod() string
}

func (*SelectAbilities) abilityMethod() string        { return "select" }
func (*ManuallyEnterAbilities) abilityMethod() string { return "manual" }
func (*RollAbilities) abilityMethod() string          { return "roll" }

// AbilityDetermination is the choice of ability method. A nil Method means no
// choice has been made.
type AbilityDetermination struct {
	Method AbilityMethod
}

// ApplySelf does nothing; the chosen method carries the logic.
func (d *AbilityDetermination) ApplySelf(*character.Character) (bool, error) {
	return true, nil
}

func (d *AbilityDetermination) ForEach(visit func(Advancement)) {
	if d.Method != nil {
		visit(Leaf(d.Method))
	}
}

func (d *AbilityDetermination) NodeName() string { return "abilities" }

func (d AbilityDetermination) MarshalJSON() ([]byte, error) {
	if d.Method == nil {
		return MarshalTagged(KindNone, nil)
	}
	return MarshalTagged(d.Method.abilityMethod(), d.Method)
}

func (d *AbilityDetermination) UnmarshalJSON(data []byte) error {
	kind, raw, err := UnmarshalTagged(data)
	if err != nil {
		return err
	}
	var m AbilityMethod
	switch kind {
	case KindNone:
		d.Method = nil
		return nil
	case "select":
		m = &SelectAbilities{}
	case "manual":
		m = &ManuallyEnterAbilities{}
	case "roll":
		m = &RollAbilities{}
	default:
		return fmt.Errorf("ability method %q: %w", kind, ErrUnknownChoice)
	}
	if err := DecodeSelections(raw, m); err != nil {
		return fmt.Errorf("decoding %s abilities: %w", kind, err)
	}
	d.Method = m
	return nil
}

var _ json.Marshaler = AbilityDetermination{}
