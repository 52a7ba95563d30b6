package inventory

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/gangsheet/internal/game/reference"
)

// NoArmour is the breakdown reported when no equipped item is recognized armour.
const NoArmour = "No armour"

// ArmourSave is the derived armour save of a fighter.
type ArmourSave struct {
	// FinalSave is the clamped effective save, or nil when the fighter has no armour.
	FinalSave *int `json:"final_save"`
	// BaseSave is the best pre-modifier save, or nil when the fighter has no armour.
	BaseSave *int `json:"base_save"`
	// Breakdown names the base-save source and each modifier source.
	Breakdown string `json:"breakdown"`
}

// String renders the final save as "4+", or "-" when there is none.
func (s ArmourSave) String() string {
	if s.FinalSave == nil {
		return "-"
	}
	return fmt.Sprintf("%d+", *s.FinalSave)
}

type saveSource struct {
	name  string
	value int
}

// ResolveArmourSave computes a fighter's single effective armour save from
// its equipped items.
//
// The best (lowest) base save wins, first seen on ties. Modifiers are summed
// once per distinct armour entry. With no base save but a negative modifier
// the base is taken as 6, sourced from the first modifier item.
//
// Postcondition: FinalSave is nil or in [BestSave, WorstSave]; Breakdown is never empty.
func ResolveArmourSave(items []EquippedItem, table *reference.Table[ArmourDef]) ArmourSave {
	var (
		base     *saveSource
		mods     []saveSource
		seen     = make(map[string]bool)
		negative bool
	)
	for _, it := range items {
		canonical, ok := table.Canonical(it.Name)
		if !ok {
			continue
		}
		def, _ := table.Lookup(canonical)
		if def.Save != nil && (base == nil || *def.Save < base.value) {
			base = &saveSource{name: canonical, value: *def.Save}
		}
		if def.Modifier != 0 && !seen[canonical] {
			seen[canonical] = true
			mods = append(mods, saveSource{name: canonical, value: def.Modifier})
			negative = negative || def.Modifier < 0
		}
	}

	if base == nil {
		if !negative {
			return ArmourSave{Breakdown: NoArmour}
		}
		base = &saveSource{name: mods[0].name, value: WorstSave}
	}

	total := 0
	for _, m := range mods {
		total += m.value
	}
	final := clampSave(base.value + total)
	baseSave := base.value

	parts := []string{fmt.Sprintf("%s: %d+", base.name, base.value)}
	if !(len(mods) == 1 && mods[0].name == base.name) {
		for _, m := range mods {
			parts = append(parts, fmt.Sprintf("%s: %+d", m.name, m.value))
		}
	}

	return ArmourSave{
		FinalSave: &final,
		BaseSave:  &baseSave,
		Breakdown: strings.Join(parts, ", "),
	}
}

func clampSave(v int) int {
	return max(BestSave, min(v, WorstSave))
}
