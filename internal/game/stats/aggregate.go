// Package stats derives a fighter's effective characteristics and weapon
// profiles from base values and layered effects. Every function is pure: the
// inputs are never mutated and each call returns fresh values.
package stats

import (
	"github.com/cory-johannsen/gangsheet/internal/game/effect"
	"github.com/cory-johannsen/gangsheet/internal/game/ruleset"
)

// Contribution is one effect's share of a characteristic's net modifier.
type Contribution struct {
	EffectID string          `json:"effect_id"`
	Name     string          `json:"name"`
	Category effect.Category `json:"category"`
	Delta    int             `json:"delta"`
}

// Deltas returns the net modifier per characteristic from every fighter-wide
// effect in set. Weapon-targeted effects are excluded.
//
// Postcondition: the result depends only on the multiset of effects, not on
// category or insertion order.
func Deltas(set effect.Set) ruleset.Profile {
	out := make(ruleset.Profile)
	for _, e := range set.All() {
		if e.TargetsWeapons() {
			continue
		}
		for _, m := range e.Modifiers() {
			if m.Characteristic == "" {
				continue
			}
			out[m.Characteristic] += m.Delta
		}
	}
	return out
}

// ComputeCurrent returns base plus the net modifier of every fighter-wide
// effect. No floor or ceiling is applied; callers that need one (for example
// a characteristic that must not drop below 1) apply it when presenting.
//
// Postcondition: characteristics untouched by any modifier equal their base
// value; an empty set yields a copy of base.
func ComputeCurrent(base ruleset.Profile, set effect.Set) ruleset.Profile {
	out := base.Clone()
	for c, d := range Deltas(set) {
		out[c] += d
	}
	return out
}

// Breakdown lists, per characteristic, the fighter-wide effects that modify
// it, in display category order.
func Breakdown(set effect.Set) map[ruleset.Characteristic][]Contribution {
	out := make(map[ruleset.Characteristic][]Contribution)
	for _, e := range set.All() {
		if e.TargetsWeapons() {
			continue
		}
		for _, m := range e.Modifiers() {
			if m.Characteristic == "" {
				continue
			}
			out[m.Characteristic] = append(out[m.Characteristic], Contribution{
				EffectID: e.ID(),
				Name:     e.Name(),
				Category: e.Category(),
				Delta:    m.Delta,
			})
		}
	}
	return out
}
