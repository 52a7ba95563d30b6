package ruleset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownWeaponField is returned when a name does not identify a WeaponField.
var ErrUnknownWeaponField = errors.New("unknown weapon field")

// WeaponField names an adjustable numeric field of a weapon profile.
type WeaponField string

const (
	FieldStrength          WeaponField = "strength"
	FieldArmourPenetration WeaponField = "armour_penetration"
	FieldDamage            WeaponField = "damage"
	FieldAmmo              WeaponField = "ammo"
	FieldAccuracyShort     WeaponField = "accuracy_short"
	FieldAccuracyLong      WeaponField = "accuracy_long"
	FieldRangeShort        WeaponField = "range_short"
	FieldRangeLong         WeaponField = "range_long"
)

var weaponFields = []WeaponField{
	FieldRangeShort, FieldRangeLong, FieldAccuracyShort, FieldAccuracyLong,
	FieldStrength, FieldArmourPenetration, FieldDamage, FieldAmmo,
}

// WeaponFields returns every WeaponField in weapon-profile column order.
func WeaponFields() []WeaponField {
	out := make([]WeaponField, len(weaponFields))
	copy(out, weaponFields)
	return out
}

// Valid reports whether f is a member of the closed set.
func (f WeaponField) Valid() bool {
	for _, w := range weaponFields {
		if w == f {
			return true
		}
	}
	return false
}

// ParseWeaponField resolves a weapon field by name, ignoring case and surrounding whitespace.
//
// Postcondition: returns a valid WeaponField, or an error wrapping ErrUnknownWeaponField.
func ParseWeaponField(s string) (WeaponField, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if key == "ap" {
		return FieldArmourPenetration, nil
	}
	if f := WeaponField(key); f.Valid() {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeaponField, s)
}

// WeaponFieldFor returns the weapon field a characteristic modifier adjusts
// when the modifier is aimed at a weapon. Only strength has a weapon-profile
// counterpart.
func WeaponFieldFor(c Characteristic) (WeaponField, bool) {
	if c == Strength {
		return FieldStrength, true
	}
	return "", false
}
