package rules

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/fage2e/internal/game/dice"
)

// WeaponGroup is a family of weapons trained together.
type WeaponGroup string

const (
	Axes        WeaponGroup = "Axes"
	BlackPowder WeaponGroup = "BlackPowder"
	Bludgeons   WeaponGroup = "Bludgeons"
	Bows        WeaponGroup = "Bows"
	Brawling    WeaponGroup = "Brawling"
	Dueling     WeaponGroup = "Dueling"
	HeavyBlades WeaponGroup = "HeavyBlades"
	Lances      WeaponGroup = "Lances"
	LightBlades WeaponGroup = "LightBlades"
	Polearms    WeaponGroup = "Polearms"
	Slings      WeaponGroup = "Slings"
	Spears      WeaponGroup = "Spears"
	Staves      WeaponGroup = "Staves"
)

var groupFocus = map[WeaponGroup]Focus{
	Axes:        FightingAxes,
	BlackPowder: AccuracyBlackPowder,
	Bludgeons:   FightingBludgeons,
	Bows:        AccuracyBows,
	Brawling:    AccuracyBrawling,
	Dueling:     AccuracyDueling,
	HeavyBlades: FightingHeavyBlades,
	Lances:      FightingLances,
	LightBlades: AccuracyLightBlades,
	Polearms:    FightingPolearms,
	Slings:      AccuracySlings,
	Spears:      FightingSpears,
	Staves:      AccuracyStaves,
}

var allWeaponGroups = []WeaponGroup{
	Axes, BlackPowder, Bludgeons, Bows, Brawling, Dueling, HeavyBlades,
	Lances, LightBlades, Polearms, Slings, Spears, Staves,
}

// WeaponGroups returns every weapon group in table order.
func WeaponGroups() []WeaponGroup {
	out := make([]WeaponGroup, len(allWeaponGroups))
	copy(out, allWeaponGroups)
	return out
}

// Valid reports whether g names a known weapon group.
func (g WeaponGroup) Valid() bool {
	_, ok := groupFocus[g]
	return ok
}

// Focus returns the focus used to attack with weapons of group g.
func (g WeaponGroup) Focus() Focus {
	return groupFocus[g]
}

// Name returns the display name, e.g. "Heavy Blades".
func (g WeaponGroup) Name() string {
	return g.Focus().BaseName()
}

func (g WeaponGroup) String() string { return g.Name() }

// AttackAbility returns the ability rolled to attack with group g.
func (g WeaponGroup) AttackAbility() Ability {
	return g.Focus().Ability()
}

// DamageAbility returns the ability added to damage: Perception for
// Accuracy groups and Strength for Fighting groups.
//
// Precondition: g must be valid.
func (g WeaponGroup) DamageAbility() Ability {
	switch g.AttackAbility() {
	case Accuracy:
		return Perception
	case Fighting:
		return Strength
	default:
		panic(fmt.Sprintf("rules: weapon group %q has no damage ability", string(g)))
	}
}

// Weapons returns the catalog entries belonging to g.
func (g WeaponGroup) Weapons() []Weapon {
	var out []Weapon
	for _, w := range DefaultCatalog().All() {
		if w.Group() == g {
			out = append(out, w)
		}
	}
	return out
}

// Weapon identifies a catalog weapon.
type Weapon string

const (
	BattleAxe    Weapon = "BattleAxe"
	ThrowingAxe  Weapon = "ThrowingAxe"
	TwoHandedAxe Weapon = "TwoHandedAxe"

	Arquebus    Weapon = "Arquebus"
	Blunderbuss Weapon = "Blunderbuss"
	Musket      Weapon = "Musket"
	Pistol      Weapon = "Pistol"

	Mace          Weapon = "Mace"
	Maul          Weapon = "Maul"
	TwoHandedMaul Weapon = "TwoHandedMaul"

	Crossbow Weapon = "Crossbow"
	ShortBow Weapon = "ShortBow"
	LongBow  Weapon = "LongBow"

	Fist             Weapon = "Fist"
	Gauntlet         Weapon = "Gauntlet"
	ImprovisedWeapon Weapon = "ImprovisedWeapon"

	MainGauche    Weapon = "MainGauche"
	Rapier        Weapon = "Rapier"
	SpikedBuckler Weapon = "SpikedBuckler"

	BastardSword   Weapon = "BastardSword"
	LongSword      Weapon = "LongSword"
	TwoHandedSword Weapon = "TwoHandedSword"

	HeavyLance    Weapon = "HeavyLance"
	JoustingLance Weapon = "JoustingLance"
	LightLance    Weapon = "LightLance"

	Dagger        Weapon = "Dagger"
	ShortSword    Weapon = "ShortSword"
	ThrowingKnife Weapon = "ThrowingKnife"

	Glaive       Weapon = "Glaive"
	Halberd      Weapon = "Halberd"
	MilitaryFork Weapon = "MilitaryFork"

	Fustibale    Weapon = "Fustibale"
	HuntingSling Weapon = "HuntingSling"
	Slingshot    Weapon = "Slingshot"

	Spear          Weapon = "Spear"
	ThrowingSpear  Weapon = "ThrowingSpear"
	TwoHandedSpear Weapon = "TwoHandedSpear"

	Club         Weapon = "Club"
	Morningstar  Weapon = "Morningstar"
	Quarterstaff Weapon = "Quarterstaff"
)

// Group returns the weapon group of w from the default catalog.
func (w Weapon) Group() WeaponGroup {
	return DefaultCatalog().Properties(w).Group
}

// Name returns the display name of w from the default catalog.
func (w Weapon) Name() string {
	return DefaultCatalog().Properties(w).Name
}

// Properties returns the stat block of w from the default catalog.
func (w Weapon) Properties() WeaponProperties {
	return DefaultCatalog().Properties(w)
}

func (w Weapon) String() string { return w.Name() }

// MissileProperties describes a ranged weapon.
type MissileProperties struct {
	ShortRangeYards     int  `yaml:"short_range_yards" json:"short_range_yards"`
	LongRangeYards      *int `yaml:"long_range_yards,omitempty" json:"long_range_yards,omitempty"`
	ReloadIsMajorAction bool `yaml:"reload_is_major_action" json:"reload_is_major_action"`
}

// WeaponProperties is the stat block of one weapon.
type WeaponProperties struct {
	ID          Weapon
	Name        string
	Group       WeaponGroup
	Damage      dice.Expression
	MinStrength *int
	TwoHanded   bool
	Missile     *MissileProperties
}

type weaponDef struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Group       string             `yaml:"group"`
	Damage      string             `yaml:"damage"`
	MinStrength *int               `yaml:"min_strength"`
	TwoHanded   bool               `yaml:"two_handed"`
	Missile     *MissileProperties `yaml:"missile"`
}

type weaponFile struct {
	Weapons []weaponDef `yaml:"weapons"`
}

// WeaponCatalog is an immutable index of weapon stat blocks.
type WeaponCatalog struct {
	order []Weapon
	byID  map[Weapon]WeaponProperties
}

// LoadWeaponCatalog parses a YAML weapon document.
//
// Precondition: data must be a YAML document with a top-level "weapons" list.
// Postcondition: Returns a catalog in which every entry has a unique id, a
// known group and a parseable damage expression, or a non-nil error.
func LoadWeaponCatalog(data []byte) (*WeaponCatalog, error) {
	var f weaponFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing weapon catalog: %w", err)
	}
	c := &WeaponCatalog{byID: make(map[Weapon]WeaponProperties, len(f.Weapons))}
	for _, def := range f.Weapons {
		id := Weapon(def.ID)
		if def.ID == "" {
			return nil, fmt.Errorf("weapon %q: missing id", def.Name)
		}
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("weapon %q: duplicate id", def.ID)
		}
		group := WeaponGroup(def.Group)
		if !group.Valid() {
			return nil, fmt.Errorf("weapon %q: unknown group %q", def.ID, def.Group)
		}
		dmg, err := dice.Parse(def.Damage)
		if err != nil {
			return nil, fmt.Errorf("weapon %q: %w", def.ID, err)
		}
		c.byID[id] = WeaponProperties{
			ID:          id,
			Name:        def.Name,
			Group:       group,
			Damage:      dmg,
			MinStrength: def.MinStrength,
			TwoHanded:   def.TwoHanded,
			Missile:     def.Missile,
		}
		c.order = append(c.order, id)
	}
	return c, nil
}

// All returns every weapon in document order.
func (c *WeaponCatalog) All() []Weapon {
	out := make([]Weapon, len(c.order))
	copy(out, c.order)
	return out
}

// Lookup returns the stat block for id.
func (c *WeaponCatalog) Lookup(id Weapon) (WeaponProperties, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Properties returns the stat block for id, or the zero value for an unknown id.
func (c *WeaponCatalog) Properties(id Weapon) WeaponProperties {
	return c.byID[id]
}

// Groups returns the distinct groups present in the catalog, sorted.
func (c *WeaponCatalog) Groups() []WeaponGroup {
	seen := make(map[WeaponGroup]bool)
	var out []WeaponGroup
	for _, id := range c.order {
		g := c.byID[id].Group
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

//go:embed content/weapons.yaml
var weaponsYAML []byte

var (
	defaultCatalog     *WeaponCatalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the catalog built from the embedded weapon table.
//
// Postcondition: Panics if the embedded table is malformed.
func DefaultCatalog() *WeaponCatalog {
	defaultCatalogOnce.Do(func() {
		c, err := LoadWeaponCatalog(weaponsYAML)
		if err != nil {
			panic("rules: embedded weapon catalog: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
