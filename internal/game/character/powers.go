package character

import (
	"fmt"

	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// PowerMechanics describes a power a character holds.
type PowerMechanics interface {
	Name() string
	Description() string
}

// DarkSight lets the character see without light.
type DarkSight struct{}

func (DarkSight) Name() string { return "Dark Sight" }

func (DarkSight) Description() string {
	return "You can see up to 20 yards in darkness without a light source."
}

// DraakArmored is the Draak scaled hide.
type DraakArmored struct{}

func (DraakArmored) Name() string        { return "Armored (Draak)" }
func (DraakArmored) Description() string { return "+2 Armor Rating" }

// DraakMagicalResistance lets a Draak resist spells with a chosen focus.
type DraakMagicalResistance struct {
	Focus rules.Focus `json:"focus" yaml:"focus"`
}

func (DraakMagicalResistance) Name() string { return "Magical Resistance (Draak)" }

func (m DraakMagicalResistance) Description() string {
	return fmt.Sprintf("Use %s to resist or reduce the effects of a spell.", m.Focus)
}

// DraakPowers holds the Draak-only powers.
type DraakPowers struct {
	Armored           *DraakArmored           `json:"armored,omitempty" yaml:"armored,omitempty"`
	MagicalResistance *DraakMagicalResistance `json:"magical_resistance,omitempty" yaml:"magical_resistance,omitempty"`
}

// Powers holds every power slot a character may fill.
type Powers struct {
	DarkSight *DarkSight  `json:"dark_sight,omitempty" yaml:"dark_sight,omitempty"`
	Draak     DraakPowers `json:"draak" yaml:"draak"`
}

// All returns the held powers in sheet order.
func (p Powers) All() []PowerMechanics {
	var out []PowerMechanics
	if p.DarkSight != nil {
		out = append(out, *p.DarkSight)
	}
	if p.Draak.Armored != nil {
		out = append(out, *p.Draak.Armored)
	}
	if p.Draak.MagicalResistance != nil {
		out = append(out, *p.Draak.MagicalResistance)
	}
	return out
}

func (p Powers) clone() Powers {
	return Powers{
		DarkSight: clonePtr(p.DarkSight),
		Draak: DraakPowers{
			Armored:           clonePtr(p.Draak.Armored),
			MagicalResistance: clonePtr(p.Draak.MagicalResistance),
		},
	}
}
