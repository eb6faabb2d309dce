package config

import "sort"

type storeKey struct {
	group string
	key   string
}

// Store is an in-memory settings container keyed by (group name, setting key).
// Values are of mixed semantic type: bool, int, float64, string, []string or
// []float64 depending on the setting. A read of a pair that was never set
// returns nil rather than an error; callers that need a guaranteed value go
// through Settings, which falls back to the schema default.
//
// All access happens on the UI event loop; Store performs no locking of its own.
type Store struct {
	values map[storeKey]any
}

// NewStore creates an empty settings store
func NewStore() *Store {
	return &Store{values: make(map[storeKey]any)}
}

// Get returns the current value for (group, key), or nil if the pair was
// never set. It has no side effects.
func (s *Store) Get(group, key string) any {
	return s.values[storeKey{group: group, key: key}]
}

// GetOK returns the current value for (group, key) and whether it was set.
func (s *Store) GetOK(group, key string) (any, bool) {
	v, ok := s.values[storeKey{group: group, key: key}]
	return v, ok
}

// Set writes a value for (group, key). The write is visible to every
// subsequent reader of the pair. No validation is performed here; typed
// access goes through Settings.
func (s *Store) Set(group, key string, value any) {
	s.values[storeKey{group: group, key: key}] = value
}

// Delete removes every setting belonging to the given group.
func (s *Store) Delete(group string) {
	for k := range s.values {
		if k.group == group {
			delete(s.values, k)
		}
	}
}

// Groups returns the sorted list of group names that hold at least one value.
func (s *Store) Groups() []string {
	seen := make(map[string]bool)
	for k := range s.values {
		seen[k.group] = true
	}

	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// Keys returns the sorted setting keys present in the given group.
func (s *Store) Keys(group string) []string {
	var keys []string
	for k := range s.values {
		if k.group == group {
			keys = append(keys, k.key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Len returns the total number of stored (group, key) pairs.
func (s *Store) Len() int {
	return len(s.values)
}
