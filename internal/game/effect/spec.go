package effect

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/gangsheet/internal/game/ruleset"
)

// ModifierSpec is the serialized form of a Modifier.
type ModifierSpec struct {
	Characteristic string `yaml:"characteristic,omitempty" json:"characteristic,omitempty"`
	WeaponField    string `yaml:"weapon_field,omitempty" json:"weapon_field,omitempty"`
	Delta          int    `yaml:"delta" json:"delta"`
}

// Spec is the serialized form of an Effect, as recorded by the callers that
// store advancements, injuries and equipment grants.
type Spec struct {
	ID            string         `yaml:"id,omitempty" json:"id,omitempty"`
	Name          string         `yaml:"name,omitempty" json:"name,omitempty"`
	Category      string         `yaml:"category" json:"category"`
	Modifiers     []ModifierSpec `yaml:"modifiers" json:"modifiers"`
	TargetWeapons []string       `yaml:"target_weapons,omitempty" json:"target_weapons,omitempty"`
}

// Build parses and validates s into an Effect.
//
// Postcondition: Returns a valid Effect or a non-nil error describing every violation.
func (s Spec) Build() (Effect, error) {
	var errs []error
	category, err := ParseCategory(s.Category)
	if err != nil {
		errs = append(errs, err)
	}
	mods := make([]Modifier, 0, len(s.Modifiers))
	for i, ms := range s.Modifiers {
		m := Modifier{Delta: ms.Delta}
		if ms.Characteristic != "" {
			c, err := ruleset.ParseCharacteristic(ms.Characteristic)
			if err != nil {
				errs = append(errs, fmt.Errorf("modifier %d: %w", i, err))
				continue
			}
			m.Characteristic = c
		}
		if ms.WeaponField != "" {
			f, err := ruleset.ParseWeaponField(ms.WeaponField)
			if err != nil {
				errs = append(errs, fmt.Errorf("modifier %d: %w", i, err))
				continue
			}
			m.WeaponField = f
		}
		mods = append(mods, m)
	}
	if len(errs) > 0 {
		label := s.ID
		if label == "" {
			label = s.Name
		}
		return Effect{}, fmt.Errorf("effect %q: %w", label, errors.Join(errs...))
	}
	return New(s.ID, s.Name, category, mods, s.TargetWeapons...)
}
