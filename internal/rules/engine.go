// Package rules binds the resolution operations to one loaded catalog. It is
// the entry point callers use to derive a fighter's effective state.
package rules

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/gangsheet/internal/config"
	"github.com/cory-johannsen/gangsheet/internal/game/catalog"
	"github.com/cory-johannsen/gangsheet/internal/game/effect"
	"github.com/cory-johannsen/gangsheet/internal/game/fighter"
	"github.com/cory-johannsen/gangsheet/internal/game/inventory"
	"github.com/cory-johannsen/gangsheet/internal/game/reference"
	"github.com/cory-johannsen/gangsheet/internal/game/ruleset"
	"github.com/cory-johannsen/gangsheet/internal/game/stats"
	"github.com/cory-johannsen/gangsheet/internal/observability"
)

// ErrNilCatalog is returned by NewEngine when no catalog is supplied.
var ErrNilCatalog = errors.New("catalog must not be nil")

// Engine resolves fighter state against a fixed set of reference tables.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewEngine creates an Engine over c.
//
// Precondition: c must be non-nil; logger may be nil.
// Postcondition: Returns a ready Engine or ErrNilCatalog.
func NewEngine(c *catalog.Catalog, logger *zap.Logger) (*Engine, error) {
	if c == nil {
		return nil, ErrNilCatalog
	}
	logger = observability.Component(logger, "rules")
	logger.Info("reference tables loaded",
		zap.Int("armour", c.Armour.Len()),
		zap.Int("traits", c.Traits.Len()),
		zap.Int("skills", c.Skills.Len()),
		zap.Int("equipment", c.Equipment.Len()),
	)
	return &Engine{catalog: c, logger: logger}, nil
}

// FromConfig loads the catalog selected by cfg and returns an Engine over it.
//
// Postcondition: Returns a ready Engine or the catalog load error.
func FromConfig(cfg config.ContentConfig, logger *zap.Logger) (*Engine, error) {
	var (
		c   *catalog.Catalog
		err error
	)
	if cfg.Embedded() {
		c, err = catalog.Default()
	} else {
		c, err = catalog.LoadDir(cfg.Dir)
	}
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return NewEngine(c, logger)
}

// Catalog returns the reference tables the engine resolves against.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// ResolveArmourSave derives the armour save for the equipped items.
func (e *Engine) ResolveArmourSave(items []inventory.EquippedItem) inventory.ArmourSave {
	return inventory.ResolveArmourSave(items, e.catalog.Armour)
}

// ComputeCurrentAttributes applies every fighter-wide effect in effects to base.
func (e *Engine) ComputeCurrentAttributes(base ruleset.Profile, effects effect.Set) ruleset.Profile {
	return stats.ComputeCurrent(base, effects)
}

// ResolveWeaponOverrides applies weapon-targeted effects to each weapon.
func (e *Engine) ResolveWeaponOverrides(weapons []inventory.WeaponProfile, effects effect.Set) map[string]stats.WeaponOverride {
	return stats.ResolveWeaponOverrides(weapons, effects)
}

// LookupDescription resolves name in the table for kind.
//
// Postcondition: An unmatched name yields (zero, false, nil); only an unknown
// kind is an error.
func (e *Engine) LookupDescription(kind catalog.Kind, name string) (reference.Description, bool, error) {
	return e.catalog.Describe(kind, name)
}

// Sheet derives the full read-only sheet for f.
//
// Precondition: f must be non-nil and valid.
func (e *Engine) Sheet(f *fighter.Fighter) fighter.Sheet {
	return fighter.BuildSheet(f, e.catalog)
}
