package settings

import (
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// StringSet is an unordered set of identifiers. It is written as a sorted
// list so that repeated runs produce identical documents.
type StringSet map[string]struct{}

// NewStringSet returns a set holding items.
func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item into the set.
func (s StringSet) Add(item string) {
	s[item] = struct{}{}
}

// Has reports whether item is in the set.
func (s StringSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Sorted returns the members in lexical order.
func (s StringSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// IsZero reports whether the set is absent.
func (s StringSet) IsZero() bool {
	return s == nil
}

func (s StringSet) MarshalYAML() (any, error) {
	return s.Sorted(), nil
}

func (s *StringSet) UnmarshalYAML(node *yaml.Node) error {
	var items []string
	if err := node.Decode(&items); err != nil {
		return err
	}
	*s = NewStringSet(items...)
	return nil
}
