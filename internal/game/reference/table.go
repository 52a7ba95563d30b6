// Package reference resolves free-text names against static reference tables.
//
// Source data carries inconsistent casing and house or parameter suffixes
// ("Rapid Fire (2)", "Mesh Armour (Escher)"), so every table shares one
// normalization routine: case-fold, try a direct match, then retry with a
// trailing parenthesized qualifier stripped.
package reference

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// qualifierPattern matches a name made of letters, spaces, apostrophes and
// hyphens followed by a parenthesized group at the end.
var qualifierPattern = regexp.MustCompile(`^([A-Za-z\s'\-]+?)\s*\(.*\)$`)

// Table is an immutable reference table keyed by canonical display name.
// The case-folded index is built once in NewTable; afterwards the table is
// read-only and safe for concurrent use.
type Table[T any] struct {
	entries map[string]T
	index   map[string]string // folded name -> canonical name
}

// NewTable builds a Table from canonical name to payload.
//
// Precondition: no two canonical names may fold to the same key.
// Postcondition: Returns a Table whose index covers every entry, or a non-nil error.
func NewTable[T any](entries map[string]T) (*Table[T], error) {
	t := &Table[T]{
		entries: make(map[string]T, len(entries)),
		index:   make(map[string]string, len(entries)),
	}
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		k := fold(name)
		if k == "" {
			return nil, fmt.Errorf("reference: NewTable: empty name")
		}
		if prev, dup := t.index[k]; dup {
			return nil, fmt.Errorf("reference: NewTable: %q and %q collide after case folding", prev, name)
		}
		t.index[k] = name
		t.entries[name] = entries[name]
	}
	return t, nil
}

// Lookup resolves name to its payload.
//
// Postcondition: ok is false when neither the folded name nor its
// qualifier-stripped base name is in the table.
func (t *Table[T]) Lookup(name string) (payload T, ok bool) {
	canonical, ok := t.Canonical(name)
	if !ok {
		return payload, false
	}
	return t.entries[canonical], true
}

// Canonical resolves name to the table's canonical display name.
func (t *Table[T]) Canonical(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	if canonical, ok := t.index[fold(name)]; ok {
		return canonical, true
	}
	base, stripped := StripQualifier(name)
	if !stripped {
		return "", false
	}
	canonical, ok := t.index[fold(base)]
	return canonical, ok
}

// Len returns the number of entries.
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Names returns the canonical names in sorted order.
func (t *Table[T]) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.entries))
	for name := range t.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// StripQualifier removes a trailing parenthesized qualifier, e.g.
// "Rapid Fire (2)" becomes "Rapid Fire".
//
// Postcondition: stripped is false and base == name when name has no qualifier.
func StripQualifier(name string) (base string, stripped bool) {
	m := qualifierPattern.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return name, false
	}
	return strings.TrimSpace(m[1]), true
}

// Matches reports whether name resolves to key the way Lookup resolves a name
// against a table entry: case is ignored and a trailing qualifier is stripped
// from name only. "Lasgun (Hotshot)" matches key "Lasgun", but key
// "Lasgun (Hotshot)" matches neither "Lasgun" nor "Lasgun (Standard)".
func Matches(key, name string) bool {
	k := fold(key)
	if fold(name) == k {
		return true
	}
	return fold(baseName(name)) == k
}

func baseName(name string) string {
	base, _ := StripQualifier(name)
	return base
}

// fold returns the case-folded, whitespace-trimmed key for name.
// A Caser is stateful, so one is created per call.
func fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
