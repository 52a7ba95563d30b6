// Package fighter defines the snapshot of a fighter handed to the rules
// engine and the read-only sheet derived from it.
package fighter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/gangsheet/internal/game/effect"
	"github.com/cory-johannsen/gangsheet/internal/game/inventory"
	"github.com/cory-johannsen/gangsheet/internal/game/ruleset"
)

// Fighter is a validated snapshot of one fighter's state as assembled by the
// caller from storage. The rules engine reads it and never modifies it.
type Fighter struct {
	ID   string
	Name string
	Gang string
	Type string // e.g. "Leader", "Ganger", "Juve"

	Base      ruleset.Profile
	Effects   effect.Set
	Equipment []inventory.EquippedItem
	Weapons   []inventory.WeaponProfile
	Skills    []string
}

// Validate checks the fighter's invariants.
//
// Postcondition: Returns nil iff the name is set, every base characteristic is
// in the closed set, every weapon is valid and weapon keys are unique.
func (f *Fighter) Validate() error {
	var errs []string
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, "name must not be empty")
	}
	if err := f.Base.Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	keys := make(map[string]bool, len(f.Weapons))
	for _, w := range f.Weapons {
		if err := w.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
		if keys[w.Key()] {
			errs = append(errs, fmt.Sprintf("duplicate weapon key %q", w.Key()))
		}
		keys[w.Key()] = true
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidFighter, strings.Join(errs, "; "))
	}
	return nil
}

// ErrInvalidFighter is returned when a fighter snapshot violates its invariants.
var ErrInvalidFighter = errors.New("invalid fighter")
