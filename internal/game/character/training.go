package character

import (
	"encoding/json"
	"slices"

	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// WeaponTraining is the set of trained weapon groups, kept sorted so that it
// serializes deterministically.
type WeaponTraining []rules.WeaponGroup

// UnmarshalJSON decodes a list of groups in any order, restoring the sorted
// set invariant.
func (w *WeaponTraining) UnmarshalJSON(data []byte) error {
	var groups []rules.WeaponGroup
	if err := json.Unmarshal(data, &groups); err != nil {
		return err
	}
	slices.Sort(groups)
	*w = slices.Compact(groups)
	return nil
}

// Contains reports whether g is trained.
func (w WeaponTraining) Contains(g rules.WeaponGroup) bool {
	_, found := slices.BinarySearch(w, g)
	return found
}

// Insert adds g if it is not already present.
//
// Postcondition: w.Contains(g) and w remains sorted without duplicates.
func (w *WeaponTraining) Insert(g rules.WeaponGroup) {
	i, found := slices.BinarySearch(*w, g)
	if found {
		return
	}
	*w = slices.Insert(*w, i, g)
}
