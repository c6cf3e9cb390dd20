// Package constraint implements the constrained-assignment settings engine
// shared by binding.Activator and scconfig.Group, grounded on
// original_source/src/scconfig.py's SettingsBase and its per-class
// _CONSTRAINTS tables (bool / int-range tuple / enum-list / enum-namespace).
package constraint

import "fmt"

// Kind distinguishes the four constraint shapes the Python source supports.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindIntRange
	KindEnum
)

// Constraint describes the legal values of one settings key.
type Constraint struct {
	Kind   Kind
	Lo, Hi int           // KindIntRange
	Enum   map[string]int // KindEnum: legal symbolic names -> wire values
}

func Bool() Constraint                { return Constraint{Kind: KindBool} }
func Int() Constraint                 { return Constraint{Kind: KindInt} }
func IntRange(lo, hi int) Constraint  { return Constraint{Kind: KindIntRange, Lo: lo, Hi: hi} }
func Enum(values map[string]int) Constraint {
	return Constraint{Kind: KindEnum, Enum: values}
}

// ErrViolation is returned when an assignment violates its key's
// constraint, mirroring SettingsBase's raise-on-violation semantics.
type ErrViolation struct {
	Key        string
	Value      interface{}
	Constraint Constraint
}

func (e *ErrViolation) Error() string {
	return fmt.Sprintf("constraint: %q cannot accept value %v", e.Key, e.Value)
}

// Table maps a settings key to its constraint, and Keys reports the
// declaration order for deterministic encoding.
type Table struct {
	order []string
	byKey map[string]Constraint
}

// NewTable builds a Table from key/constraint pairs in declaration order.
func NewTable(pairs ...interface{}) *Table {
	t := &Table{byKey: map[string]Constraint{}}
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i].(string)
		c := pairs[i+1].(Constraint)
		t.order = append(t.order, key)
		t.byKey[key] = c
	}
	return t
}

func (t *Table) Lookup(key string) (Constraint, bool) {
	c, ok := t.byKey[key]
	return c, ok
}

func (t *Table) Keys() []string { return t.order }

// Settings is an ordered, constrained key/value store. Values are stored
// exactly as passed to Set (bool, int, or an enum's symbolic name or
// integer); EncodeString converts them to VDF-ready leaf strings.
type Settings struct {
	table  *Table
	order  []string
	values map[string]interface{}
}

// NewSettings returns an empty Settings bound to table.
func NewSettings(table *Table) *Settings {
	return &Settings{table: table, values: map[string]interface{}{}}
}

// Set validates value against key's constraint and stores it. Unknown keys
// (not present in the table) are rejected, matching the Python source's
// strict _CONSTRAINTS lookup.
func (s *Settings) Set(key string, value interface{}) error {
	c, ok := s.table.Lookup(key)
	if !ok {
		return fmt.Errorf("constraint: unknown settings key %q", key)
	}
	switch c.Kind {
	case KindBool:
		switch value.(type) {
		case bool:
		default:
			return &ErrViolation{key, value, c}
		}
	case KindInt:
		switch value.(type) {
		case int:
		default:
			return &ErrViolation{key, value, c}
		}
	case KindIntRange:
		n, ok := value.(int)
		if !ok || n < c.Lo || n > c.Hi {
			return &ErrViolation{key, value, c}
		}
	case KindEnum:
		switch v := value.(type) {
		case string:
			if _, ok := c.Enum[v]; !ok {
				return &ErrViolation{key, value, c}
			}
		case int:
			found := false
			for _, n := range c.Enum {
				if n == v {
					found = true
					break
				}
			}
			if !found {
				return &ErrViolation{key, value, c}
			}
		default:
			return &ErrViolation{key, value, c}
		}
	}
	if _, exists := s.values[key]; !exists {
		s.order = append(s.order, key)
	}
	s.values[key] = value
	return nil
}

// Get returns the raw stored value for key.
func (s *Settings) Get(key string) (interface{}, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns assigned keys in assignment order.
func (s *Settings) Keys() []string { return s.order }

// Len reports how many keys have been assigned.
func (s *Settings) Len() int { return len(s.order) }

// EncodeString renders key's stored value the way scvdf expects a leaf
// string: bools as "0"/"1", ints and enum wire-values as decimal.
func (s *Settings) EncodeString(key string) (string, bool) {
	v, ok := s.values[key]
	if !ok {
		return "", false
	}
	switch x := v.(type) {
	case bool:
		if x {
			return "1", true
		}
		return "0", true
	case int:
		return fmt.Sprintf("%d", x), true
	case string:
		c := s.table.byKey[key]
		if c.Kind == KindEnum {
			if n, ok := c.Enum[x]; ok {
				return fmt.Sprintf("%d", n), true
			}
		}
		return x, true
	default:
		return fmt.Sprintf("%v", x), true
	}
}
