// Package inventory defines the equipment a fighter carries (armour, weapon
// profiles and other equipped items) and resolves the fighter's armour save.
package inventory

import (
	"errors"
	"fmt"
)

// Armour save bounds, using the "N+" dice convention: lower is better.
const (
	BestSave  = 2
	WorstSave = 6
)

// ArmourDef is one row of the armour reference table. An entry may supply a
// base save, a save modifier, or both. A negative Modifier improves the save.
type ArmourDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Save        *int   `yaml:"save"`
	Modifier    int    `yaml:"modifier"`
}

// HasSave reports whether a contributes a base save.
func (a ArmourDef) HasSave() bool { return a.Save != nil }

// Validate reports an error if the ArmourDef is missing its name or carries an
// illegal save value.
// Postcondition: Returns nil iff the def is well-formed.
func (a ArmourDef) Validate() error {
	var errs []error
	if a.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if a.Save != nil && (*a.Save < BestSave || *a.Save > WorstSave) {
		errs = append(errs, fmt.Errorf("save must be %d-%d, got %d", BestSave, WorstSave, *a.Save))
	}
	if len(errs) > 0 {
		return fmt.Errorf("armour validation failed: %v", errs)
	}
	return nil
}

// EquippedItem is an item on a fighter's card. Name is an opaque key into the
// reference tables; unmatched names contribute nothing.
type EquippedItem struct {
	Name string `yaml:"name" json:"name"`
	Cost int    `yaml:"cost,omitempty" json:"cost,omitempty"`
}

// Items wraps plain names as EquippedItems.
func Items(names ...string) []EquippedItem {
	out := make([]EquippedItem, len(names))
	for i, n := range names {
		out[i] = EquippedItem{Name: n}
	}
	return out
}
