package inspect

import (
	"fmt"
	"reflect"

	"github.com/mesh-intelligence/inspector/pkg/types"
)

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// Inspector classifies declared types and creates slots. The registry it
// holds supplies the static members of inspected struct types.
type Inspector struct {
	registry *Registry
}

// New returns an Inspector over reg. A nil reg gets a fresh empty registry.
func New(reg *Registry) *Inspector {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Inspector{registry: reg}
}

var defaultInspector = New(DefaultRegistry)

// Default returns the Inspector backed by DefaultRegistry.
func Default() *Inspector {
	return defaultInspector
}

// Registry returns the registry consulted for static members.
func (in *Inspector) Registry() *Registry {
	return in.registry
}

// Classify returns a new unbound Value for declared type t. It never fails:
// types with no dedicated variant are treated as generic objects.
func (in *Inspector) Classify(t reflect.Type) types.Value {
	if t == nil {
		return &objectValue{binding: binding{typ: anyType}, in: in}
	}
	b := binding{typ: t}
	switch {
	case isTextual(t):
		return &textualValue{binding: b}
	case isPrimitive(t):
		return &primitiveValue{binding: b}
	case t.Kind() == reflect.String:
		return &textValue{binding: b}
	case t.Kind() == reflect.Array:
		return &sequenceValue{binding: b, in: in, kind: types.KindArray}
	case t.Kind() == reflect.Slice:
		return &sequenceValue{binding: b, in: in, kind: types.KindCollection}
	case t.Kind() == reflect.Map:
		return &mapValue{binding: b, in: in}
	}
	return &objectValue{binding: b, in: in}
}

// Slot binds member m of owner. Pass an invalid owner for static members.
func (in *Inspector) Slot(m types.Member, owner reflect.Value) types.Slot {
	return &slot{in: in, member: m, owner: owner}
}

// Root returns an ownerless slot named name holding target. The slot's
// declared type is the dynamic type of target, or any when target is nil.
// Writing the root replaces the slot's own copy, not the caller's variable.
func (in *Inspector) Root(name string, target any) types.Slot {
	t := reflect.TypeOf(target)
	if t == nil {
		t = anyType
	}
	cell := reflect.New(t)
	if target != nil {
		cell.Elem().Set(reflect.ValueOf(target))
	}
	return in.Slot(&VariableMember{name: name, ptr: cell}, reflect.Value{})
}

// Variable returns an ownerless slot over the variable ptr points to, so
// writes through the slot reach the caller's variable.
func (in *Inspector) Variable(name string, ptr any, mods types.Modifier) (types.Slot, error) {
	m, err := NewVariableMember(name, ptr, mods)
	if err != nil {
		return nil, err
	}
	return in.Slot(m, reflect.Value{}), nil
}

// Members returns the slots of owner: its fields in declaration order, then
// its registered statics. owner must be a struct or a pointer to one; pass a
// pointer to get writable fields.
func (in *Inspector) Members(owner any) ([]types.Slot, error) {
	v := reflect.ValueOf(owner)
	for i := 0; i < maxDeref && v.IsValid(); i++ {
		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			break
		}
		if v.IsNil() {
			return nil, types.ErrNullInspection
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil, types.ErrNullInspection
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("members of %s: %w", typeName(v.Type()), types.ErrPrimitiveInspection)
	}
	return in.structSlots(v), nil
}

// Field returns the slot for the field called name on owner, a struct or a
// pointer to one. A nil owner of a pointer type yields a slot whose reads
// fail with ErrMissingOwner.
func (in *Inspector) Field(owner any, name string) (types.Slot, error) {
	v := reflect.ValueOf(owner)
	if !v.IsValid() {
		return nil, fmt.Errorf("field %s of nil: %w", name, types.ErrInvalidMember)
	}
	t := v.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("field %s of %s: %w", name, typeName(t), types.ErrInvalidMember)
	}
	for _, m := range fieldMembers(t) {
		if m.Name() == name {
			return in.Slot(m, v), nil
		}
	}
	for _, m := range in.registry.Statics(t) {
		if m.Name() == name {
			return in.Slot(m, reflect.Value{}), nil
		}
	}
	return nil, fmt.Errorf("no member %s in %s: %w", name, typeName(t), types.ErrInvalidMember)
}

// structSlots lists the fields of struct value v followed by its statics.
func (in *Inspector) structSlots(v reflect.Value) []types.Slot {
	t := v.Type()
	fields := fieldMembers(t)
	statics := in.registry.Statics(t)
	slots := make([]types.Slot, 0, len(fields)+len(statics))
	for _, m := range fields {
		slots = append(slots, in.Slot(m, v))
	}
	for _, m := range statics {
		slots = append(slots, in.Slot(m, reflect.Value{}))
	}
	return slots
}

// Classify classifies t with the default Inspector.
func Classify(t reflect.Type) types.Value {
	return defaultInspector.Classify(t)
}

// Root creates a root slot with the default Inspector.
func Root(name string, target any) types.Slot {
	return defaultInspector.Root(name, target)
}
