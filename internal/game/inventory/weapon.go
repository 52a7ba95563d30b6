package inventory

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/gangsheet/internal/game/ruleset"
)

// WeaponProfile is the stat line of a weapon carried by a fighter.
type WeaponProfile struct {
	ID                string   `yaml:"id" json:"id"`
	Name              string   `yaml:"name" json:"name"`
	RangeShort        int      `yaml:"range_short" json:"range_short"`
	RangeLong         int      `yaml:"range_long" json:"range_long"` // 0 = melee
	AccuracyShort     int      `yaml:"accuracy_short" json:"accuracy_short"`
	AccuracyLong      int      `yaml:"accuracy_long" json:"accuracy_long"`
	Strength          int      `yaml:"strength" json:"strength"`
	ArmourPenetration int      `yaml:"armour_penetration" json:"armour_penetration"`
	Damage            int      `yaml:"damage" json:"damage"`
	Ammo              int      `yaml:"ammo" json:"ammo"` // N+, 0 = no ammo check
	Traits            []string `yaml:"traits" json:"traits"`
	Cost              int      `yaml:"cost,omitempty" json:"cost,omitempty"`
}

// Key returns the identifier weapon overrides are keyed by: ID, or Name when ID is blank.
func (w WeaponProfile) Key() string {
	if w.ID != "" {
		return w.ID
	}
	return w.Name
}

// IsMelee reports whether the weapon is a melee weapon (RangeLong == 0).
func (w WeaponProfile) IsMelee() bool {
	return w.RangeLong == 0
}

// Field returns the value of f.
//
// Precondition: f.Valid().
func (w WeaponProfile) Field(f ruleset.WeaponField) int {
	if p := w.fieldPtr(f); p != nil {
		return *p
	}
	return 0
}

// WithDelta returns a copy of w with delta added to field f. Traits are
// copied so the result shares no state with w.
func (w WeaponProfile) WithDelta(f ruleset.WeaponField, delta int) WeaponProfile {
	out := w.Clone()
	if p := out.fieldPtr(f); p != nil {
		*p += delta
	}
	return out
}

// Clone returns a deep copy of w.
func (w WeaponProfile) Clone() WeaponProfile {
	out := w
	if w.Traits != nil {
		out.Traits = make([]string, len(w.Traits))
		copy(out.Traits, w.Traits)
	}
	return out
}

func (w *WeaponProfile) fieldPtr(f ruleset.WeaponField) *int {
	switch f {
	case ruleset.FieldRangeShort:
		return &w.RangeShort
	case ruleset.FieldRangeLong:
		return &w.RangeLong
	case ruleset.FieldAccuracyShort:
		return &w.AccuracyShort
	case ruleset.FieldAccuracyLong:
		return &w.AccuracyLong
	case ruleset.FieldStrength:
		return &w.Strength
	case ruleset.FieldArmourPenetration:
		return &w.ArmourPenetration
	case ruleset.FieldDamage:
		return &w.Damage
	case ruleset.FieldAmmo:
		return &w.Ammo
	}
	return nil
}

// Validate checks that the WeaponProfile satisfies its invariants.
// Postcondition: returns nil iff all fields are valid.
func (w WeaponProfile) Validate() error {
	var errs []error
	if w.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if w.RangeShort < 0 || w.RangeLong < 0 {
		errs = append(errs, errors.New("ranges must be >= 0"))
	}
	if w.RangeShort > w.RangeLong {
		errs = append(errs, fmt.Errorf("range_short %d must not exceed range_long %d", w.RangeShort, w.RangeLong))
	}
	if w.Ammo < 0 || w.Ammo > WorstSave {
		errs = append(errs, fmt.Errorf("ammo must be 0-%d, got %d", WorstSave, w.Ammo))
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon %q validation failed: %v", w.Name, errs)
	}
	return nil
}
