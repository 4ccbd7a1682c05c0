package types

import "reflect"

// Inspectable is implemented by every navigable slot kind: struct fields,
// registered variables, array and slice elements, and map entries.
type Inspectable interface {
	// Describe returns a one-line summary of the slot: modifiers, type name,
	// member name and, when readable, " = " followed by the rendered value.
	// Describe never fails.
	Describe() string

	// ValueToOutput renders the current value as text.
	// Returns ErrAccessDenied or ErrMissingOwner if the value cannot be read.
	ValueToOutput() (string, error)

	// Inspect returns the child slots of the current value.
	// Returns ErrNullInspection if the value is absent and
	// ErrPrimitiveInspection if the slot holds a scalar.
	Inspect() ([]Inspectable, error)
}

// Writeable is implemented by every slot kind whose storage is mutable.
type Writeable interface {
	// SetValue stores v in the slot. Returns ErrIllegalNullAssignment when v
	// is nil and the declared type cannot hold nil; the storage is untouched.
	SetValue(v any) error

	// SetValueFromInput parses text into the declared type and stores it.
	// Returns ErrFormat when text cannot be parsed.
	SetValueFromInput(text string) error
}

// Slot binds one member of an owner to an inspectable value of the member's
// declared type. It is the unit navigated by a driver.
type Slot interface {
	Inspectable
	Writeable

	// Name returns the member name as displayed by Describe.
	Name() string

	// Type returns the declared type of the member.
	Type() reflect.Type

	// Value reads the current value from the owner.
	// Returns nil when the slot holds an invalid value.
	Value() (any, error)
}
