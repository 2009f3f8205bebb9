package class

import (
	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

var (
	mageAlwaysGet = []rules.WeaponGroup{
		rules.Brawling, rules.Staves,
	}
	mageChooseBetween []rules.WeaponGroup
)

// MageWeaponGroups trains Brawling and Staves with no picks.
type MageWeaponGroups struct {
	Picks [0]rules.WeaponGroup `json:"choices" yaml:"choices"`
}

func (*MageWeaponGroups) AlwaysGet() []rules.WeaponGroup     { return mageAlwaysGet }
func (*MageWeaponGroups) ChooseBetween() []rules.WeaponGroup { return mageChooseBetween }
func (*MageWeaponGroups) NumChoices() int                    { return 0 }
func (w *MageWeaponGroups) Choices() []rules.WeaponGroup     { return w.Picks[:] }

func (w *MageWeaponGroups) Apply(c *character.Character) (bool, error) {
	return advancement.TrainWeaponGroups(w, c)
}

func (*MageWeaponGroups) NodeName() string { return weaponGroupsNode }

// MageSelections are the level 1 choices of a mage.
type MageSelections struct {
	WeaponGroups MageWeaponGroups `json:"weapon_groups" yaml:"weapon_groups"`
}

func (*MageSelections) Class() rules.Class { return rules.Mage }

// ApplySelf has no effect of its own.
func (*MageSelections) ApplySelf(*character.Character) (bool, error) { return true, nil }

func (s *MageSelections) ForEach(visit func(advancement.Advancement)) {
	visit(advancement.Leaf(&s.WeaponGroups))
}

func (*MageSelections) NodeName() string { return "mage" }
