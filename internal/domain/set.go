package domain

import (
	"encoding/json"
	"sort"
)

// IDSet is a set of catalog ids with idempotent add. It serializes as a
// sorted JSON array of strings so snapshot output is order-independent.
type IDSet map[string]struct{}

// NewIDSet returns an empty set
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts the id; adding an existing id is a no-op
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Has reports membership
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Remove deletes the id if present
func (s IDSet) Remove(id string) {
	delete(s, id)
}

// Values returns the members sorted for deterministic output
func (s IDSet) Values() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted string array
func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON decodes a string array into the set. A null or malformed
// value yields an empty set rather than an error so corrupted snapshot
// fields degrade to defaults.
func (s *IDSet) UnmarshalJSON(data []byte) error {
	*s = NewIDSet()
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil
	}
	for _, id := range ids {
		(*s)[id] = struct{}{}
	}
	return nil
}
