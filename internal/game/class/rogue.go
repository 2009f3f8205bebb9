package class

import (
	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

var (
	rogueAlwaysGet = []rules.WeaponGroup{
		rules.LightBlades, rules.Staves,
	}
	rogueChooseBetween = []rules.WeaponGroup{
		rules.BlackPowder, rules.Bows, rules.Brawling, rules.Slings, rules.Dueling,
	}
)

// RogueWeaponGroups trains Light Blades and Staves plus two picks.
type RogueWeaponGroups struct {
	Picks [2]rules.WeaponGroup `json:"choices" yaml:"choices"`
}

func (*RogueWeaponGroups) AlwaysGet() []rules.WeaponGroup     { return rogueAlwaysGet }
func (*RogueWeaponGroups) ChooseBetween() []rules.WeaponGroup { return rogueChooseBetween }
func (*RogueWeaponGroups) NumChoices() int                    { return 2 }
func (w *RogueWeaponGroups) Choices() []rules.WeaponGroup     { return w.Picks[:] }

func (w *RogueWeaponGroups) Apply(c *character.Character) (bool, error) {
	return advancement.TrainWeaponGroups(w, c)
}

func (*RogueWeaponGroups) NodeName() string { return weaponGroupsNode }

// RogueSelections are the level 1 choices of a rogue.
type RogueSelections struct {
	WeaponGroups RogueWeaponGroups `json:"weapon_groups" yaml:"weapon_groups"`
}

func (*RogueSelections) Class() rules.Class { return rules.Rogue }

// ApplySelf has no effect of its own.
func (*RogueSelections) ApplySelf(*character.Character) (bool, error) { return true, nil }

func (s *RogueSelections) ForEach(visit func(advancement.Advancement)) {
	visit(advancement.Leaf(&s.WeaponGroups))
}

func (*RogueSelections) NodeName() string { return "rogue" }
