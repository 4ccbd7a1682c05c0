package inspect

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/mesh-intelligence/inspector/pkg/types"
)

// guard turns a reflect panic raised while touching the graph into
// ErrAccessDenied so no operation can crash the driver.
func guard(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", types.ErrAccessDenied, r)
	}
}

// FieldMember is an instance member: one field of a struct type.
//
// Exported fields are public and unexported fields private. Private fields
// are readable: Get returns a read-only value that renders and expands like
// any other but cannot be extracted with Interface or written, so Value and
// every write return ErrAccessDenied. Exported fields promoted through an
// unexported embedded struct stay writable, as they are in Go source. A field
// tagged `inspect:"readonly"` is final and rejects writes; `inspect:"-"` hides
// it.
type FieldMember struct {
	owner reflect.Type
	field reflect.StructField
	mods  types.Modifier
}

// NewFieldMember describes field i of struct type t.
func NewFieldMember(t reflect.Type, i int) *FieldMember {
	f := t.Field(i)
	mods := types.Private
	if f.IsExported() {
		mods = types.Public
	}
	if f.Anonymous {
		mods |= types.Embedded
	}
	if hasTagOption(f.Tag, "readonly") {
		mods |= types.Final
	}
	return &FieldMember{owner: t, field: f, mods: mods}
}

func (f *FieldMember) Name() string              { return f.field.Name }
func (f *FieldMember) Type() reflect.Type        { return f.field.Type }
func (f *FieldMember) Modifiers() types.Modifier { return f.mods }

// Get reads the field from owner, which may be the struct or a pointer to it.
func (f *FieldMember) Get(owner reflect.Value) (reflect.Value, error) {
	s, err := f.resolve(owner)
	if err != nil {
		return reflect.Value{}, err
	}
	return s.Field(f.field.Index[0]), nil
}

// Set writes v into the field. The owner must be addressable.
func (f *FieldMember) Set(owner reflect.Value, v reflect.Value) error {
	s, err := f.resolve(owner)
	if err != nil {
		return err
	}
	if !f.field.IsExported() {
		return fmt.Errorf("field %s is unexported: %w", f.field.Name, types.ErrAccessDenied)
	}
	if f.mods.Has(types.Final) {
		return fmt.Errorf("field %s is read-only: %w", f.field.Name, types.ErrAccessDenied)
	}
	field := s.Field(f.field.Index[0])
	if !field.CanSet() {
		return fmt.Errorf("field %s of %s is read-only here: %w", f.field.Name, typeName(f.owner), types.ErrAccessDenied)
	}
	field.Set(v)
	return nil
}

// resolve unwraps pointers and interfaces down to the owning struct.
func (f *FieldMember) resolve(owner reflect.Value) (reflect.Value, error) {
	for i := 0; i < maxDeref && owner.IsValid(); i++ {
		if owner.Kind() != reflect.Pointer && owner.Kind() != reflect.Interface {
			break
		}
		if owner.IsNil() {
			return reflect.Value{}, fmt.Errorf("field %s: %w", f.field.Name, types.ErrMissingOwner)
		}
		owner = owner.Elem()
	}
	if !owner.IsValid() {
		return reflect.Value{}, fmt.Errorf("field %s: %w", f.field.Name, types.ErrMissingOwner)
	}
	if owner.Type() != f.owner {
		return reflect.Value{}, fmt.Errorf("field %s: owner is %s, want %s: %w",
			f.field.Name, typeName(owner.Type()), typeName(f.owner), types.ErrMissingOwner)
	}
	return owner, nil
}

func hasTagOption(tag reflect.StructTag, option string) bool {
	for _, opt := range strings.Split(tag.Get("inspect"), ",") {
		if strings.TrimSpace(opt) == option {
			return true
		}
	}
	return false
}

// fieldCache holds the visible field members of each struct type.
var fieldCache sync.Map // map[reflect.Type][]*FieldMember

// fieldMembers returns the members of struct type t in declaration order,
// skipping fields tagged `inspect:"-"`.
func fieldMembers(t reflect.Type) []*FieldMember {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]*FieldMember)
	}
	members := make([]*FieldMember, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("inspect") == "-" {
			continue
		}
		members = append(members, NewFieldMember(t, i))
	}
	actual, _ := fieldCache.LoadOrStore(t, members)
	return actual.([]*FieldMember)
}

// VariableMember is a member with no owner: a package-level variable or a
// driver-held root, reached through a pointer.
type VariableMember struct {
	name string
	ptr  reflect.Value
	mods types.Modifier
}

// NewVariableMember describes the variable ptr points to.
// Returns ErrInvalidMember if ptr is not a non-nil pointer.
func NewVariableMember(name string, ptr any, mods types.Modifier) (*VariableMember, error) {
	pv := reflect.ValueOf(ptr)
	if !pv.IsValid() || pv.Kind() != reflect.Pointer || pv.IsNil() {
		return nil, fmt.Errorf("variable %s: need a non-nil pointer, got %T: %w", name, ptr, types.ErrInvalidMember)
	}
	return &VariableMember{name: name, ptr: pv, mods: mods}, nil
}

func (m *VariableMember) Name() string              { return m.name }
func (m *VariableMember) Type() reflect.Type        { return m.ptr.Type().Elem() }
func (m *VariableMember) Modifiers() types.Modifier { return m.mods }

// Get ignores owner.
func (m *VariableMember) Get(reflect.Value) (reflect.Value, error) {
	return m.ptr.Elem(), nil
}

func (m *VariableMember) Set(_ reflect.Value, v reflect.Value) error {
	if m.mods.Has(types.Final) {
		return fmt.Errorf("variable %s is read-only: %w", m.name, types.ErrAccessDenied)
	}
	m.ptr.Elem().Set(v)
	return nil
}

// ElementMember is one index of an array or slice.
type ElementMember struct {
	seq   reflect.Type
	index int
}

func NewElementMember(seq reflect.Type, index int) *ElementMember {
	return &ElementMember{seq: seq, index: index}
}

func (e *ElementMember) Name() string              { return fmt.Sprintf("[%d]", e.index) }
func (e *ElementMember) Type() reflect.Type        { return e.seq.Elem() }
func (e *ElementMember) Modifiers() types.Modifier { return 0 }

func (e *ElementMember) Get(owner reflect.Value) (reflect.Value, error) {
	if isNil(owner) {
		return reflect.Value{}, fmt.Errorf("element %s: %w", e.Name(), types.ErrMissingOwner)
	}
	if e.index >= owner.Len() {
		return reflect.Value{}, fmt.Errorf("element %s of %d: %w", e.Name(), owner.Len(), types.ErrElementGone)
	}
	return owner.Index(e.index), nil
}

// Set writes into the element. Slice elements are always settable; array
// elements only when the array itself is addressable.
func (e *ElementMember) Set(owner reflect.Value, v reflect.Value) error {
	elem, err := e.Get(owner)
	if err != nil {
		return err
	}
	if !elem.CanSet() {
		return fmt.Errorf("element %s of a non-addressable %s: %w", e.Name(), typeName(e.seq), types.ErrAccessDenied)
	}
	elem.Set(v)
	return nil
}

// EntryMember is the value stored under one key of a map.
type EntryMember struct {
	m    reflect.Type
	key  reflect.Value
	name string
}

// NewEntryMember describes the entry under key; keyText is the rendered key
// used in the entry name.
func NewEntryMember(m reflect.Type, key reflect.Value, keyText string) *EntryMember {
	return &EntryMember{m: m, key: key, name: "[" + keyText + "]"}
}

func (e *EntryMember) Name() string              { return e.name }
func (e *EntryMember) Type() reflect.Type        { return e.m.Elem() }
func (e *EntryMember) Modifiers() types.Modifier { return 0 }

func (e *EntryMember) Get(owner reflect.Value) (reflect.Value, error) {
	if isNil(owner) {
		return reflect.Value{}, fmt.Errorf("entry %s: %w", e.name, types.ErrMissingOwner)
	}
	v := owner.MapIndex(e.key)
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("entry %s: %w", e.name, types.ErrElementGone)
	}
	return v, nil
}

// Set stores v under the key, creating the entry if it was deleted meanwhile.
// A key that is not equal to itself (NaN) would add a new entry instead, so
// it is refused with ErrElementGone.
func (e *EntryMember) Set(owner reflect.Value, v reflect.Value) error {
	if isNil(owner) {
		return fmt.Errorf("entry %s: %w", e.name, types.ErrMissingOwner)
	}
	if e.key.Comparable() && !e.key.Equal(e.key) {
		return fmt.Errorf("entry %s: %w", e.name, types.ErrElementGone)
	}
	if !owner.CanInterface() {
		return fmt.Errorf("entry %s: %w", e.name, types.ErrAccessDenied)
	}
	owner.SetMapIndex(e.key, v)
	return nil
}
