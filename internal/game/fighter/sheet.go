package fighter

import (
	"github.com/cory-johannsen/gangsheet/internal/game/catalog"
	"github.com/cory-johannsen/gangsheet/internal/game/inventory"
	"github.com/cory-johannsen/gangsheet/internal/game/reference"
	"github.com/cory-johannsen/gangsheet/internal/game/ruleset"
	"github.com/cory-johannsen/gangsheet/internal/game/stats"
)

// WeaponLine is one row of the weapons block on a sheet.
type WeaponLine struct {
	stats.WeaponOverride
	Traits []reference.Described `json:"traits"`
}

// Sheet is the fully derived, read-only view of a fighter.
type Sheet struct {
	FighterID string `json:"fighter_id,omitempty"`
	Name      string `json:"name"`
	Gang      string `json:"gang,omitempty"`
	Type      string `json:"type,omitempty"`

	Base      ruleset.Profile                                 `json:"base"`
	Current   ruleset.Profile                                 `json:"current"`
	Deltas    ruleset.Profile                                 `json:"deltas"`
	Breakdown map[ruleset.Characteristic][]stats.Contribution `json:"breakdown,omitempty"`

	Armour    inventory.ArmourSave  `json:"armour"`
	Weapons   []WeaponLine          `json:"weapons"`
	Skills    []reference.Described `json:"skills"`
	Equipment []reference.Described `json:"equipment"`
	// Cost is the summed credit cost of equipment and weapons.
	Cost int `json:"cost"`
}

// BuildSheet derives every view of f against c. Weapons keep the fighter's
// order; each weapon's traits are resolved against the trait table with any
// parenthetical qualifier stripped when needed.
//
// Precondition: f must have passed Validate; c must be non-nil.
// Postcondition: f is not modified.
func BuildSheet(f *Fighter, c *catalog.Catalog) Sheet {
	overrides := stats.ResolveWeaponOverrides(f.Weapons, f.Effects)
	weapons := make([]WeaponLine, 0, len(f.Weapons))
	for _, w := range f.Weapons {
		o := overrides[w.Key()]
		weapons = append(weapons, WeaponLine{
			WeaponOverride: o,
			Traits:         reference.Describe(o.Weapon.Traits, c.Traits),
		})
	}

	equipment := make([]reference.Described, 0, len(f.Equipment))
	for _, item := range f.Equipment {
		equipment = append(equipment, c.DescribeItem(item.Name))
	}

	return Sheet{
		FighterID: f.ID,
		Name:      f.Name,
		Gang:      f.Gang,
		Type:      f.Type,
		Base:      f.Base.Clone(),
		Current:   stats.ComputeCurrent(f.Base, f.Effects),
		Deltas:    stats.Deltas(f.Effects),
		Breakdown: stats.Breakdown(f.Effects),
		Armour:    inventory.ResolveArmourSave(f.Equipment, c.Armour),
		Weapons:   weapons,
		Skills:    reference.Describe(f.Skills, c.Skills),
		Equipment: equipment,
		Cost:      inventory.Cost(f.Equipment, f.Weapons),
	}
}
