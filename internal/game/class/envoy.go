package class

import (
	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

var (
	envoyAlwaysGet     []rules.WeaponGroup
	envoyChooseBetween = []rules.WeaponGroup{
		rules.BlackPowder, rules.Bludgeons, rules.Bows, rules.Brawling, rules.HeavyBlades, rules.LightBlades, rules.Slings, rules.Spears,
	}
)

// EnvoyWeaponGroups picks three weapon groups; envoys get no fixed training.
type EnvoyWeaponGroups struct {
	Picks [3]rules.WeaponGroup `json:"choices" yaml:"choices"`
}

func (*EnvoyWeaponGroups) AlwaysGet() []rules.WeaponGroup     { return envoyAlwaysGet }
func (*EnvoyWeaponGroups) ChooseBetween() []rules.WeaponGroup { return envoyChooseBetween }
func (*EnvoyWeaponGroups) NumChoices() int                    { return 3 }
func (w *EnvoyWeaponGroups) Choices() []rules.WeaponGroup     { return w.Picks[:] }

func (w *EnvoyWeaponGroups) Apply(c *character.Character) (bool, error) {
	return advancement.TrainWeaponGroups(w, c)
}

func (*EnvoyWeaponGroups) NodeName() string { return weaponGroupsNode }

// EnvoySelections are the level 1 choices of a envoy.
type EnvoySelections struct {
	WeaponGroups EnvoyWeaponGroups `json:"weapon_groups" yaml:"weapon_groups"`
}

func (*EnvoySelections) Class() rules.Class { return rules.Envoy }

// ApplySelf has no effect of its own.
func (*EnvoySelections) ApplySelf(*character.Character) (bool, error) { return true, nil }

func (s *EnvoySelections) ForEach(visit func(advancement.Advancement)) {
	visit(advancement.Leaf(&s.WeaponGroups))
}

func (*EnvoySelections) NodeName() string { return "envoy" }
