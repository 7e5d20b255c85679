package mergeengine

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Value is a value object holding either a single scalar string or an
// ordered list of strings. A value is never both at once: accumulate
// operations promote a scalar to a list instead of mutating it in place.
type Value struct {
	scalar string
	list   []string
	isList bool
}

// ScalarValue creates a scalar Value
func ScalarValue(s string) Value {
	return Value{scalar: s}
}

// ListValue creates a list Value with the given elements, in order
func ListValue(elems ...string) Value {
	list := make([]string, len(elems))
	copy(list, elems)
	return Value{list: list, isList: true}
}

// IsList reports whether the value is a list
func (v Value) IsList() bool {
	return v.isList
}

// Scalar returns the scalar string; empty for list values
func (v Value) Scalar() string {
	return v.scalar
}

// List returns a copy of the list elements; nil for scalar values
func (v Value) List() []string {
	if !v.isList {
		return nil
	}
	list := make([]string, len(v.list))
	copy(list, v.list)
	return list
}

// Strings returns the value as a slice: the list elements, or a
// one-element slice holding the scalar
func (v Value) Strings() []string {
	if v.isList {
		return v.List()
	}
	return []string{v.scalar}
}

// Equal reports value-level equality, including list order
func (v Value) Equal(other Value) bool {
	if v.isList != other.isList {
		return false
	}
	if !v.isList {
		return v.scalar == other.scalar
	}
	if len(v.list) != len(other.list) {
		return false
	}
	for i := range v.list {
		if v.list[i] != other.list[i] {
			return false
		}
	}
	return true
}

// String implements the Stringer interface
func (v Value) String() string {
	if v.isList {
		return fmt.Sprintf("[%s]", strings.Join(v.list, ", "))
	}
	return v.scalar
}

// MarshalJSON encodes scalars as JSON strings and lists as JSON arrays
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		return json.Marshal(v.list)
	}
	return json.Marshal(v.scalar)
}

// contains reports whether s is among the value's elements, treating a
// scalar as a one-element list
func (v Value) contains(s string) bool {
	if !v.isList {
		return v.scalar == s
	}
	for _, elem := range v.list {
		if elem == s {
			return true
		}
	}
	return false
}

// accumulate is the pure transform behind the += operator: with no prior
// value it begins a one-element list, a prior scalar is promoted to a
// two-element list, and a prior list grows by one element at the end.
func accumulate(old Value, exists bool, s string) Value {
	if !exists {
		return ListValue(s)
	}
	if !old.isList {
		return ListValue(old.scalar, s)
	}
	list := make([]string, 0, len(old.list)+1)
	list = append(list, old.list...)
	list = append(list, s)
	return Value{list: list, isList: true}
}
