package class

import (
	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

var (
	warriorAlwaysGet = []rules.WeaponGroup{
		rules.Brawling,
	}
	warriorChooseBetween = []rules.WeaponGroup{
		rules.Axes, rules.BlackPowder, rules.Bludgeons, rules.Bows, rules.Dueling, rules.HeavyBlades, rules.Lances, rules.LightBlades, rules.Polearms, rules.Slings, rules.Spears, rules.Staves,
	}
)

// WarriorWeaponGroups trains Brawling plus four picks.
type WarriorWeaponGroups struct {
	Picks [4]rules.WeaponGroup `json:"choices" yaml:"choices"`
}

func (*WarriorWeaponGroups) AlwaysGet() []rules.WeaponGroup     { return warriorAlwaysGet }
func (*WarriorWeaponGroups) ChooseBetween() []rules.WeaponGroup { return warriorChooseBetween }
func (*WarriorWeaponGroups) NumChoices() int                    { return 4 }
func (w *WarriorWeaponGroups) Choices() []rules.WeaponGroup     { return w.Picks[:] }

func (w *WarriorWeaponGroups) Apply(c *character.Character) (bool, error) {
	return advancement.TrainWeaponGroups(w, c)
}

func (*WarriorWeaponGroups) NodeName() string { return weaponGroupsNode }

// WarriorSelections are the level 1 choices of a warrior.
type WarriorSelections struct {
	WeaponGroups WarriorWeaponGroups `json:"weapon_groups" yaml:"weapon_groups"`
}

func (*WarriorSelections) Class() rules.Class { return rules.Warrior }

// ApplySelf has no effect of its own.
func (*WarriorSelections) ApplySelf(*character.Character) (bool, error) { return true, nil }

func (s *WarriorSelections) ForEach(visit func(advancement.Advancement)) {
	visit(advancement.Leaf(&s.WeaponGroups))
}

func (*WarriorSelections) NodeName() string { return "warrior" }
