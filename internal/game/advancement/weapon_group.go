package advancement

import (
	"slices"

	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// WeaponGroups is a class's starting weapon training: fixed groups plus a
// number of picks from a list.
type WeaponGroups interface {
	// AlwaysGet lists the groups every member of the class is trained in.
	AlwaysGet() []rules.WeaponGroup
	// ChooseBetween lists the groups a pick may name.
	ChooseBetween() []rules.WeaponGroup
	// NumChoices is the number of picks.
	NumChoices() int
	// Choices returns the picks; "" marks an empty slot.
	Choices() []rules.WeaponGroup
}

// TrainWeaponGroups trains the always-granted groups and every legal pick.
// Every slot is examined even after an illegal one is found.
//
// Postcondition: returns ErrIllegalWeaponGroup if any pick is outside
// ChooseBetween, else (true, nil) when no slot is empty.
func TrainWeaponGroups(w WeaponGroups, c *character.Character) (bool, error) {
	for _, g := range w.AlwaysGet() {
		c.Mechanics.WeaponTraining.Insert(g)
	}
	allowed := w.ChooseBetween()
	anyUnselected := false
	var illegal error
	for i, g := range w.Choices() {
		if g == "" {
			anyUnselected = true
			continue
		}
		if !slices.Contains(allowed, g) {
			if illegal == nil {
				illegal = Violatef(ErrIllegalWeaponGroup, "slot %d: %s", i+1, g)
			}
			continue
		}
		c.Mechanics.WeaponTraining.Insert(g)
	}
	if illegal != nil {
		return false, illegal
	}
	return !anyUnselected, nil
}
