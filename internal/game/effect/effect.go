package effect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cory-johannsen/gangsheet/internal/game/reference"
	"github.com/cory-johannsen/gangsheet/internal/game/ruleset"
)

var (
	// ErrInvalidModifier is returned for a modifier with no target, two
	// targets, or a weapon field on an effect that targets no weapon.
	ErrInvalidModifier = errors.New("invalid modifier")
	// ErrInvalidEffect is returned for structural problems such as a blank weapon target.
	ErrInvalidEffect = errors.New("invalid effect")
)

// Modifier is a single additive adjustment. Exactly one of Characteristic
// and WeaponField is set.
type Modifier struct {
	Characteristic ruleset.Characteristic
	WeaponField    ruleset.WeaponField
	Delta          int
}

// String renders m the way a stat line annotates it, e.g. "+1 S" or "-1 AP".
func (m Modifier) String() string {
	label := string(m.WeaponField)
	if m.Characteristic != "" {
		label = m.Characteristic.Abbreviation()
	} else if m.WeaponField == ruleset.FieldArmourPenetration {
		label = "AP"
	}
	return fmt.Sprintf("%+d %s", m.Delta, label)
}

func (m Modifier) validate(targetsWeapons bool) error {
	switch {
	case m.Characteristic == "" && m.WeaponField == "":
		return fmt.Errorf("%w: no characteristic or weapon field", ErrInvalidModifier)
	case m.Characteristic != "" && m.WeaponField != "":
		return fmt.Errorf("%w: both characteristic %q and weapon field %q set", ErrInvalidModifier, m.Characteristic, m.WeaponField)
	case m.Characteristic != "" && !m.Characteristic.Valid():
		return fmt.Errorf("%w: %q", ruleset.ErrUnknownCharacteristic, m.Characteristic)
	case m.WeaponField != "" && !m.WeaponField.Valid():
		return fmt.Errorf("%w: %q", ruleset.ErrUnknownWeaponField, m.WeaponField)
	case m.WeaponField != "" && !targetsWeapons:
		return fmt.Errorf("%w: weapon field %q on an effect with no target weapons", ErrInvalidModifier, m.WeaponField)
	}
	return nil
}

// Effect is an immutable, validated modifier bundle owned by a fighter.
// The zero value is not valid; construct with New or Spec.Build.
type Effect struct {
	id        string
	name      string
	category  Category
	modifiers []Modifier
	targets   []string
}

// New validates and constructs an Effect. A blank id is replaced by a fresh UUID.
//
// Postcondition: Returns a valid Effect, or an error wrapping ErrUnknownCategory,
// ruleset.ErrUnknownCharacteristic, ruleset.ErrUnknownWeaponField,
// ErrInvalidModifier or ErrInvalidEffect. A malformed effect is never partially built.
func New(id, name string, category Category, modifiers []Modifier, targetWeapons ...string) (Effect, error) {
	var errs []error
	if !category.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownCategory, category))
	}
	targets := make([]string, 0, len(targetWeapons))
	for _, t := range targetWeapons {
		t = strings.TrimSpace(t)
		if t == "" {
			errs = append(errs, fmt.Errorf("%w: blank target weapon name", ErrInvalidEffect))
			continue
		}
		targets = append(targets, t)
	}
	for i, m := range modifiers {
		if err := m.validate(len(targetWeapons) > 0); err != nil {
			errs = append(errs, fmt.Errorf("modifier %d: %w", i, err))
		}
	}
	id = strings.TrimSpace(id)
	if len(errs) > 0 {
		label := id
		if label == "" {
			label = name
		}
		return Effect{}, fmt.Errorf("effect %q: %w", label, errors.Join(errs...))
	}
	if id == "" {
		id = uuid.NewString()
	}
	mods := make([]Modifier, len(modifiers))
	copy(mods, modifiers)
	return Effect{
		id:        id,
		name:      strings.TrimSpace(name),
		category:  category,
		modifiers: mods,
		targets:   targets,
	}, nil
}

// ID returns the effect identifier.
func (e Effect) ID() string { return e.id }

// Name returns the display name, falling back to the ID when none was given.
func (e Effect) Name() string {
	if e.name == "" {
		return e.id
	}
	return e.name
}

// Category returns the provenance tag.
func (e Effect) Category() Category { return e.category }

// Modifiers returns a copy of the ordered modifiers.
func (e Effect) Modifiers() []Modifier {
	out := make([]Modifier, len(e.modifiers))
	copy(out, e.modifiers)
	return out
}

// TargetWeapons returns a copy of the weapon names this effect applies to.
func (e Effect) TargetWeapons() []string {
	out := make([]string, len(e.targets))
	copy(out, e.targets)
	return out
}

// TargetsWeapons reports whether e modifies specific weapons rather than the fighter.
func (e Effect) TargetsWeapons() bool { return len(e.targets) > 0 }

// Targets reports whether e applies to the weapon named weaponName.
// Each target is the lookup key and weaponName is resolved against it through
// reference.Matches, so case and a qualifier on the weapon's name do not cause
// a miss, while a qualified target only hits that exact version.
func (e Effect) Targets(weaponName string) bool {
	for _, t := range e.targets {
		if reference.Matches(t, weaponName) {
			return true
		}
	}
	return false
}
