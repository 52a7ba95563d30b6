package fighter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cory-johannsen/gangsheet/internal/game/inventory"
	"github.com/cory-johannsen/gangsheet/internal/game/reference"
	"github.com/cory-johannsen/gangsheet/internal/game/ruleset"
	"github.com/cory-johannsen/gangsheet/internal/game/stats"
)

// WriteJSON writes s as indented JSON.
func (s Sheet) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteText writes s as a plain-text fighter card.
//
// Postcondition: Returns the first write error, if any.
func (s Sheet) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := s.Name
	if s.Type != "" {
		header += " [" + s.Type + "]"
	}
	if s.Gang != "" {
		header += " - " + s.Gang
	}
	fmt.Fprintln(tw, header)
	fmt.Fprintln(tw)

	keys := statKeys(s.Base, s.Current)
	row := func(label string, cell func(c ruleset.Characteristic) string) {
		cells := make([]string, 0, len(keys)+1)
		cells = append(cells, label)
		for _, c := range keys {
			cells = append(cells, cell(c))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	row("", func(c ruleset.Characteristic) string { return c.Abbreviation() })
	row("base", func(c ruleset.Characteristic) string { return fmt.Sprint(s.Base[c]) })
	row("current", func(c ruleset.Characteristic) string { return fmt.Sprint(s.Current[c]) })
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.Breakdown) > 0 {
		fmt.Fprintln(tw)
		for _, c := range breakdownKeys(s.Breakdown) {
			fmt.Fprintf(tw, "%s\t%s\n", c.Abbreviation(), formatContributions(s.Breakdown[c]))
		}
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Armour save\t%s\t%s\n", s.Armour.String(), s.Armour.Breakdown)
	fmt.Fprintf(tw, "Cost\t%s\t\n", inventory.FormatCredits(s.Cost))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.Weapons) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Weapon\tRng S\tRng L\tAcc S\tAcc L\tStr\tAP\tD\tAm\tTraits\t")
		for _, line := range s.Weapons {
			p := line.Weapon
			name := p.Name
			if line.Modified() {
				name += "*"
			}
			fmt.Fprintf(tw, "%s\t%d\t%d\t%+d\t%+d\t%d\t%d\t%d\t%s\t%s\t\n",
				name, p.RangeShort, p.RangeLong, p.AccuracyShort, p.AccuracyLong,
				p.Strength, p.ArmourPenetration, p.Damage, ammo(p.Ammo), strings.Join(p.Traits, ", "))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	writeDescribed(tw, "Skills", s.Skills)
	writeDescribed(tw, "Equipment", s.Equipment)
	return tw.Flush()
}

func writeDescribed(w io.Writer, title string, entries []reference.Described) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	for _, d := range entries {
		text := d.Description
		if !d.Found {
			text = "(no description)"
		}
		fmt.Fprintf(w, "  %s\t%s\n", d.Name, text)
	}
}

func statKeys(profiles ...ruleset.Profile) []ruleset.Characteristic {
	merged := make(ruleset.Profile)
	for _, p := range profiles {
		for c := range p {
			merged[c] = 0
		}
	}
	return merged.Keys()
}

func breakdownKeys(b map[ruleset.Characteristic][]stats.Contribution) []ruleset.Characteristic {
	p := make(ruleset.Profile, len(b))
	for c := range b {
		p[c] = 0
	}
	return p.Keys()
}

func formatContributions(cs []stats.Contribution) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, fmt.Sprintf("%+d %s (%s)", c.Delta, c.Name, c.Category))
	}
	return strings.Join(parts, ", ")
}

func ammo(v int) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%d+", v)
}
