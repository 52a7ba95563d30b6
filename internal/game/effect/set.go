package effect

import (
	"fmt"
	"sort"
)

// Set groups a fighter's effects by category. Absent and empty categories
// are equivalent. A Set holds only validated Effects.
type Set map[Category][]Effect

// NewSet builds a Set from serialized effects.
//
// Postcondition: Returns a Set containing every effect, or an error for the
// first malformed spec; a partially built Set is never returned.
func NewSet(specs ...Spec) (Set, error) {
	s := make(Set)
	for i, spec := range specs {
		e, err := spec.Build()
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		s.Add(e)
	}
	return s, nil
}

// Add appends e under its category.
//
// Precondition: e was constructed by New or Spec.Build.
func (s Set) Add(e Effect) {
	s[e.category] = append(s[e.category], e)
}

// All flattens the set in display category order, preserving insertion order
// within a category. Effects filed under a key outside the closed set (only
// possible when a Set literal is built by hand) follow in key order.
func (s Set) All() []Effect {
	out := make([]Effect, 0, s.Len())
	for _, c := range categories {
		out = append(out, s[c]...)
	}
	var stray []string
	for c := range s {
		if !c.Valid() {
			stray = append(stray, string(c))
		}
	}
	sort.Strings(stray)
	for _, c := range stray {
		out = append(out, s[Category(c)]...)
	}
	return out
}

// Len returns the total number of effects across all categories.
func (s Set) Len() int {
	n := 0
	for _, es := range s {
		n += len(es)
	}
	return n
}

// Clone returns a Set whose category slices are independent of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for c, es := range s {
		cp := make([]Effect, len(es))
		copy(cp, es)
		out[c] = cp
	}
	return out
}
