package stats

import (
	"github.com/cory-johannsen/gangsheet/internal/game/effect"
	"github.com/cory-johannsen/gangsheet/internal/game/inventory"
	"github.com/cory-johannsen/gangsheet/internal/game/ruleset"
)

// AppliedEffect names an effect that targets a weapon.
type AppliedEffect struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  effect.Category `json:"category"`
	Modifiers []string        `json:"modifiers,omitempty"`
}

// WeaponOverride is the derived view of one equipped weapon.
type WeaponOverride struct {
	// Weapon is a fresh copy of the input profile with weapon-field deltas applied.
	Weapon inventory.WeaponProfile `json:"weapon"`
	// Effects lists every effect targeting this weapon.
	Effects []AppliedEffect `json:"effects"`
	// Deltas is the net adjustment applied to each weapon field.
	Deltas map[ruleset.WeaponField]int `json:"deltas,omitempty"`
	// Characteristics holds characteristic modifiers aimed at this weapon that
	// have no weapon-profile counterpart; they are reported, not applied.
	Characteristics ruleset.Profile `json:"characteristics,omitempty"`
}

// Modified reports whether any effect targets the weapon.
func (o WeaponOverride) Modified() bool { return len(o.Effects) > 0 }

// ResolveWeaponOverrides matches weapon-targeted effects to weapons by name and
// returns one override per weapon keyed by WeaponProfile.Key. A weapon with no
// matching effect is returned as an unmodified copy.
//
// Strength modifiers on a weapon-targeted effect adjust the weapon's Strength;
// weapon-field modifiers adjust their field.
//
// Postcondition: len(result) equals the number of distinct weapon keys; the
// input weapons are not mutated.
func ResolveWeaponOverrides(weapons []inventory.WeaponProfile, set effect.Set) map[string]WeaponOverride {
	var targeted []effect.Effect
	for _, e := range set.All() {
		if e.TargetsWeapons() {
			targeted = append(targeted, e)
		}
	}

	out := make(map[string]WeaponOverride, len(weapons))
	for _, w := range weapons {
		o := WeaponOverride{
			Weapon:  w.Clone(),
			Effects: []AppliedEffect{},
		}
		for _, e := range targeted {
			if !e.Targets(w.Name) {
				continue
			}
			applied := AppliedEffect{ID: e.ID(), Name: e.Name(), Category: e.Category()}
			for _, m := range e.Modifiers() {
				applied.Modifiers = append(applied.Modifiers, m.String())
				field := m.WeaponField
				if field == "" {
					f, ok := ruleset.WeaponFieldFor(m.Characteristic)
					if !ok {
						if o.Characteristics == nil {
							o.Characteristics = make(ruleset.Profile)
						}
						o.Characteristics[m.Characteristic] += m.Delta
						continue
					}
					field = f
				}
				if o.Deltas == nil {
					o.Deltas = make(map[ruleset.WeaponField]int)
				}
				o.Deltas[field] += m.Delta
			}
			o.Effects = append(o.Effects, applied)
		}
		for f, d := range o.Deltas {
			o.Weapon = o.Weapon.WithDelta(f, d)
		}
		out[w.Key()] = o
	}
	return out
}
