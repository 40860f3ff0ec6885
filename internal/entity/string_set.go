package entity

import "sort"

// StringSet keeps the processed-document invariant explicit: membership is
// set-semantic, ordering only exists at the serialization boundary.
type StringSet struct {
	items map[string]struct{}
}

func NewStringSet(values ...string) StringSet {
	s := StringSet{items: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.items[v] = struct{}{}
	}
	return s
}

// Add inserts value and reports whether it was newly added.
func (s *StringSet) Add(value string) bool {
	if s.items == nil {
		s.items = make(map[string]struct{})
	}
	if _, ok := s.items[value]; ok {
		return false
	}
	s.items[value] = struct{}{}
	return true
}

func (s StringSet) Contains(value string) bool {
	_, ok := s.items[value]
	return ok
}

func (s StringSet) Len() int {
	return len(s.items)
}

// Values returns the members as a sorted list for stable serialization.
func (s StringSet) Values() []string {
	values := make([]string, 0, len(s.items))
	for v := range s.items {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
