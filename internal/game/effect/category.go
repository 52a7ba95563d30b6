// Package effect defines the validated, immutable modifiers layered on top of
// a fighter's base characteristics: advancements, injuries, bionics,
// equipment grants and the like.
//
// Category records provenance only. Aggregation treats every category the
// same way, so a new source of effects is a new Category tag, not a new type.
package effect

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when an effect names a category outside the closed set.
var ErrUnknownCategory = errors.New("unknown effect category")

// Category tags where an Effect came from.
type Category string

const (
	Injury       Category = "injury"
	Advancement  Category = "advancement"
	Bionic       Category = "bionic"
	Cyberteknika Category = "cyberteknika"
	GeneSmithing Category = "gene-smithing"
	RigGlitch    Category = "rig-glitch"
	Augmentation Category = "augmentation"
	Equipment    Category = "equipment"
	User         Category = "user"
	Skill        Category = "skill"
	PowerBoost   Category = "power-boost"
)

var categories = []Category{
	Advancement, Injury, Bionic, Cyberteknika, GeneSmithing, RigGlitch,
	Augmentation, Equipment, Skill, PowerBoost, User,
}

// Categories returns every Category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	return c.rank() >= 0
}

// rank is the position of c in display order, or -1.
func (c Category) rank() int {
	for i, k := range categories {
		if k == c {
			return i
		}
	}
	return -1
}

// ParseCategory resolves a category name, ignoring case and treating
// underscores and spaces as hyphens.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	if c := Category(key); c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
