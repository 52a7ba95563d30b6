// Package ruleset defines the closed enumerations shared by every rules
// component: fighter characteristics, weapon profile fields and the Profile
// mapping used for base and effective values.
package ruleset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCharacteristic is returned when a name does not identify a Characteristic.
var ErrUnknownCharacteristic = errors.New("unknown characteristic")

// Characteristic is one of the fixed numeric attributes of a fighter.
type Characteristic string

const (
	Movement       Characteristic = "movement"
	WeaponSkill    Characteristic = "weapon_skill"
	BallisticSkill Characteristic = "ballistic_skill"
	Strength       Characteristic = "strength"
	Toughness      Characteristic = "toughness"
	Wounds         Characteristic = "wounds"
	Initiative     Characteristic = "initiative"
	Attacks        Characteristic = "attacks"
	Leadership     Characteristic = "leadership"
	Cool           Characteristic = "cool"
	Willpower      Characteristic = "willpower"
	Intelligence   Characteristic = "intelligence"
)

// characteristics lists every Characteristic in stat-line order.
var characteristics = []Characteristic{
	Movement, WeaponSkill, BallisticSkill, Strength, Toughness, Wounds,
	Initiative, Attacks, Leadership, Cool, Willpower, Intelligence,
}

var abbreviations = map[Characteristic]string{
	Movement:       "M",
	WeaponSkill:    "WS",
	BallisticSkill: "BS",
	Strength:       "S",
	Toughness:      "T",
	Wounds:         "W",
	Initiative:     "I",
	Attacks:        "A",
	Leadership:     "Ld",
	Cool:           "Cl",
	Willpower:      "Wil",
	Intelligence:   "Int",
}

// Characteristics returns every Characteristic in stat-line order.
//
// Postcondition: the returned slice is a fresh copy of length 12.
func Characteristics() []Characteristic {
	out := make([]Characteristic, len(characteristics))
	copy(out, characteristics)
	return out
}

// Valid reports whether c is a member of the closed set.
func (c Characteristic) Valid() bool {
	_, ok := abbreviations[c]
	return ok
}

// Abbreviation returns the stat-line label for c, e.g. "WS" for weapon_skill.
// Unknown values are rendered as "<value>".
func (c Characteristic) Abbreviation() string {
	if a, ok := abbreviations[c]; ok {
		return a
	}
	return fmt.Sprintf("<%s>", string(c))
}

// ParseCharacteristic resolves a characteristic from its canonical name or its
// stat-line abbreviation, ignoring case and surrounding whitespace. Hyphens and
// spaces are accepted in place of underscores.
//
// Postcondition: returns a valid Characteristic, or an error wrapping ErrUnknownCharacteristic.
func ParseCharacteristic(s string) (Characteristic, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if c := Characteristic(key); c.Valid() {
		return c, nil
	}
	for c, abbr := range abbreviations {
		if strings.EqualFold(abbr, key) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCharacteristic, s)
}

// Profile maps characteristics to integer values. It is used both for a
// fighter's base values and for computed effective values.
type Profile map[Characteristic]int

// Clone returns an independent copy of p. A nil Profile clones to an empty one.
func (p Profile) Clone() Profile {
	out := make(Profile, len(p))
	for c, v := range p {
		out[c] = v
	}
	return out
}

// Validate reports every key of p that is outside the closed set.
func (p Profile) Validate() error {
	var bad []string
	for c := range p {
		if !c.Valid() {
			bad = append(bad, string(c))
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return fmt.Errorf("%w: %s", ErrUnknownCharacteristic, strings.Join(bad, ", "))
	}
	return nil
}

// Keys returns the characteristics present in p in stat-line order.
func (p Profile) Keys() []Characteristic {
	out := make([]Characteristic, 0, len(p))
	for _, c := range characteristics {
		if _, ok := p[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
