package vdf

import "fmt"

// entry is one key/value assignment in an OrderedMultiMap. Value is either
// a string (a leaf) or *OrderedMultiMap (a nested block).
type entry struct {
	key   string
	value interface{}
}

// OrderedMultiMap is an insertion-ordered, multi-valued map, grounded on
// original_source/src/scvdf.py's SCVDFDict. A single-key access returns the
// last assigned value for that key; Nth/All give positional and full
// access. Deleting a key removes every assignment of that key. Iteration
// yields one pair per assignment, in insertion order.
type OrderedMultiMap struct {
	entries []entry
}

// NewOMM returns an empty OrderedMultiMap.
func NewOMM() *OrderedMultiMap {
	return &OrderedMultiMap{}
}

// Set appends a new key/value assignment (does not overwrite prior
// assignments of the same key — matching SCVDFDict's list-like semantics
// for repeated keys).
func (m *OrderedMultiMap) Set(key string, value interface{}) {
	m.entries = append(m.entries, entry{key, value})
}

// Get returns the value of the LAST assignment of key, and whether it was
// present at all.
func (m *OrderedMultiMap) Get(key string) (interface{}, bool) {
	var found interface{}
	ok := false
	for _, e := range m.entries {
		if e.key == key {
			found = e.value
			ok = true
		}
	}
	return found, ok
}

// GetString is a convenience wrapper for leaf string values.
func (m *OrderedMultiMap) GetString(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetBlock is a convenience wrapper for nested-block values.
func (m *OrderedMultiMap) GetBlock(key string) (*OrderedMultiMap, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.(*OrderedMultiMap)
	return b, ok
}

// All returns every value assigned to key, in insertion order.
func (m *OrderedMultiMap) All(key string) []interface{} {
	var out []interface{}
	for _, e := range m.entries {
		if e.key == key {
			out = append(out, e.value)
		}
	}
	return out
}

// Nth returns the n'th (0-based) value assigned to key.
func (m *OrderedMultiMap) Nth(key string, n int) (interface{}, bool) {
	vals := m.All(key)
	if n < 0 || n >= len(vals) {
		return nil, false
	}
	return vals[n], true
}

// Delete removes every assignment of key, returning whether any existed.
func (m *OrderedMultiMap) Delete(key string) bool {
	out := m.entries[:0]
	removed := false
	for _, e := range m.entries {
		if e.key == key {
			removed = true
			continue
		}
		out = append(out, e)
	}
	m.entries = out
	return removed
}

// Keys returns the distinct keys in first-occurrence order.
func (m *OrderedMultiMap) Keys() []string {
	seen := make(map[string]bool, len(m.entries))
	var out []string
	for _, e := range m.entries {
		if !seen[e.key] {
			seen[e.key] = true
			out = append(out, e.key)
		}
	}
	return out
}

// Len returns the total number of assignments (including repeats).
func (m *OrderedMultiMap) Len() int { return len(m.entries) }

// Each calls fn for every key/value assignment in insertion order.
func (m *OrderedMultiMap) Each(fn func(key string, value interface{})) {
	for _, e := range m.entries {
		fn(e.key, e.value)
	}
}

func (m *OrderedMultiMap) String() string {
	return fmt.Sprintf("OrderedMultiMap(%d entries)", len(m.entries))
}
