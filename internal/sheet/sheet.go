// Package sheet renders characters and advancement reports as plain text.
package sheet

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/cory-johannsen/fage2e/internal/game/advancement"
	"github.com/cory-johannsen/fage2e/internal/game/character"
	"github.com/cory-johannsen/fage2e/internal/game/rules"
)

// Render writes a character sheet for c to w.
func Render(w io.Writer, c *character.Character, catalog *rules.WeaponCatalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	m := &c.Mechanics

	name := c.Flavor.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(tw, "Name\t%s\n", name)
	fmt.Fprintf(tw, "Level\t%d\n", m.Level)
	fmt.Fprintf(tw, "Ancestry\t%s\n", orNone(m.Ancestry.String()))
	fmt.Fprintf(tw, "Class\t%s\n", orNone(m.Class.String()))
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Abilities")
	for _, a := range rules.Abilities() {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", a, m.Abilities.Get(a), focusesOf(m, a))
	}
	fmt.Fprintln(tw)

	maxHealth := c.MaxHealth()
	fmt.Fprintf(tw, "Health\t%d / %d\t%s\n", c.Status.Health, maxHealth.FinalValue(), strings.Join(maxHealth.Breakdown(), " "))
	defense := c.Defense()
	fmt.Fprintf(tw, "Defense\t%d\t%s\n", defense.FinalValue(), strings.Join(defense.Breakdown(), " "))
	armor := c.Armor()
	fmt.Fprintf(tw, "Armor\t%d\t%s\n", armor.FinalValue(), strings.Join(armor.Breakdown(), " "))
	fmt.Fprintf(tw, "Speed\t%d\tmove %d, run %d, charge %d yards\n",
		c.Speed().FinalValue(), c.MoveSpeedYards(), c.RunSpeedYards(), c.ChargeSpeedYards())
	fmt.Fprintln(tw)

	groups := make([]string, 0, len(m.WeaponTraining))
	for _, g := range m.WeaponTraining {
		groups = append(groups, g.Name())
	}
	fmt.Fprintf(tw, "Weapon groups\t%s\n", orNone(strings.Join(groups, ", ")))

	powers := m.Powers.All()
	names := make([]string, 0, len(powers))
	for _, p := range powers {
		names = append(names, p.Name())
	}
	fmt.Fprintf(tw, "Powers\t%s\n", orNone(strings.Join(names, ", ")))

	if len(c.Equipment.Weapons) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Weapons")
		for _, wpn := range c.Equipment.Weapons {
			dmg := c.Damage(catalog, wpn)
			fmt.Fprintf(tw, "  %s\tattack %+d\tdamage %s%+d\n",
				wpn.Name(), c.AttackBonus(wpn).FinalValue(), dmg.Dice(), dmg.FinalValue(0))
		}
	}
	return tw.Flush()
}

// RenderReports writes one line per advancement node with its status.
func RenderReports(w io.Writer, reports []advancement.NodeReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t%s\t%v\n", r.Path, r.Status, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", r.Path, r.Status)
	}
	return tw.Flush()
}

func focusesOf(m *character.MechanicalProperties, a rules.Ability) string {
	var out []string
	for _, f := range a.Focuses() {
		switch m.FocusLevel(f) {
		case rules.SingleFocus:
			out = append(out, f.BaseName())
		case rules.DoubleFocus:
			out = append(out, f.BaseName()+" (double)")
		}
	}
	slices.Sort(out)
	return strings.Join(out, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
