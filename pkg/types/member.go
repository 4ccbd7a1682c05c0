package types

import (
	"reflect"
	"strings"
)

// Modifier is a set of declared member modifiers.
type Modifier uint8

// Member modifiers, rendered in this order by String.
const (
	Public Modifier = 1 << iota
	Private
	Static
	Final
	Embedded
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{Public, "public"},
	{Private, "private"},
	{Static, "static"},
	{Final, "final"},
	{Embedded, "embedded"},
}

// String renders the modifiers separated by single spaces, for example
// "public static final". Returns "" when no modifier is set.
func (m Modifier) String() string {
	var parts []string
	for _, n := range modifierNames {
		if m&n.mod != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, " ")
}

// Has reports whether every modifier in o is set in m.
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}

// Member describes one inspectable slot of a type: its name, declared type,
// modifiers, and how to read and write it given an owner. A Member is
// immutable once obtained.
//
// Static members ignore the owner; instance members return ErrMissingOwner
// when the owner is invalid or a nil pointer.
type Member interface {
	Name() string
	Type() reflect.Type
	Modifiers() Modifier

	// Get reads the member from owner.
	Get(owner reflect.Value) (reflect.Value, error)

	// Set writes v, which must already be of Type(), into owner.
	Set(owner reflect.Value, v reflect.Value) error
}
