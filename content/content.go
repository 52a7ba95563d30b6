// Package content embeds the default reference tables: armour, weapon
// traits, skills and equipment.
package content

import "embed"

// FS holds armour.yaml, weapon_traits.yaml, skills.yaml and equipment.yaml.
//
//go:embed *.yaml
var FS embed.FS
