package reference

// Description is the free-text payload of the trait, skill and equipment tables.
type Description struct {
	Name string `yaml:"name"`
	Text string `yaml:"description"`
}

// Described pairs a name as it appears on a fighter with its resolved description.
type Described struct {
	Name        string `json:"name"`
	Canonical   string `json:"canonical,omitempty"`
	Description string `json:"description,omitempty"`
	Found       bool   `json:"found"`
}

// LookupDescription resolves name in table. An unmatched name is not an
// error; it yields (Description{}, false).
func LookupDescription(name string, table *Table[Description]) (Description, bool) {
	return table.Lookup(name)
}

// Describe resolves each name in table, keeping input order.
//
// Postcondition: len(result) == len(names).
func Describe(names []string, table *Table[Description]) []Described {
	out := make([]Described, 0, len(names))
	for _, n := range names {
		d := Described{Name: n}
		if canonical, ok := table.Canonical(n); ok {
			payload, _ := table.Lookup(canonical)
			d.Canonical = canonical
			d.Description = payload.Text
			d.Found = true
		}
		out = append(out, d)
	}
	return out
}
