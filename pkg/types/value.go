package types

import "reflect"

// ValueKind identifies the variant of a Value. The variant is chosen once
// from the declared type and never from the runtime value.
type ValueKind int

// Value variants.
const (
	KindPrimitive ValueKind = iota
	KindText
	KindTextual
	KindObject
	KindArray
	KindCollection
	KindMap
)

var valueKindNames = map[ValueKind]string{
	KindPrimitive:  "primitive",
	KindText:       "text",
	KindTextual:    "textual",
	KindObject:     "object",
	KindArray:      "array",
	KindCollection: "collection",
	KindMap:        "map",
}

// String returns the lower-case variant name.
func (k ValueKind) String() string {
	if name, ok := valueKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is a typed wrapper that knows how to render, parse and expand a
// runtime value of one declared type. A Value holds the instance bound by
// the most recent Bind or successful ParseInput.
type Value interface {
	// Kind returns the variant.
	Kind() ValueKind

	// Type returns the declared type the variant was classified from.
	Type() reflect.Type

	// Bind stores v for subsequent rendering and inspection.
	Bind(v reflect.Value)

	// Bound returns the currently bound value; it is invalid until the
	// first Bind.
	Bound() reflect.Value

	// Output renders the bound value. Scalars render their literal form;
	// composites render a short synopsis.
	Output() string

	// ParseInput converts text to the declared type and binds the result.
	// On failure the previous binding is kept.
	ParseInput(text string) error

	// Children enumerates the child slots of the bound value in a stable
	// order: declaration order for struct fields, index order for arrays and
	// slices, sorted key order for maps.
	Children() ([]Slot, error)
}
