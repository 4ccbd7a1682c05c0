package inspect

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/inspector/pkg/types"
)

// maxDeref bounds pointer and interface unwrapping so self-referential
// pointer types cannot loop forever.
const maxDeref = 32

// objectValue is the fallback variant: structs, pointers, interfaces,
// channels and functions. Its children come from the runtime value.
type objectValue struct {
	binding
	in *Inspector
}

func (o *objectValue) Kind() types.ValueKind { return types.KindObject }

func (o *objectValue) Output() string {
	return o.in.synopsis(o.bound)
}

func (o *objectValue) ParseInput(text string) error {
	v, err := parseNil(o.typ, text)
	if err != nil {
		return err
	}
	o.bound = v
	return nil
}

func (o *objectValue) Children() ([]types.Slot, error) {
	v := o.bound
	for i := 0; i < maxDeref; i++ {
		if isNil(v) {
			return nil, types.ErrNullInspection
		}
		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			break
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if isTextual(v.Type()) {
			return nil, types.ErrPrimitiveInspection
		}
		return o.in.structSlots(v), nil
	case reflect.Array, reflect.Slice, reflect.Map:
		c := o.in.Classify(v.Type())
		c.Bind(v)
		return c.Children()
	}
	return nil, types.ErrPrimitiveInspection
}

// sequenceValue covers fixed arrays (KindArray) and slices (KindCollection).
type sequenceValue struct {
	binding
	in   *Inspector
	kind types.ValueKind
}

func (s *sequenceValue) Kind() types.ValueKind { return s.kind }

func (s *sequenceValue) Output() string {
	return s.in.synopsis(s.bound)
}

func (s *sequenceValue) ParseInput(text string) error {
	v, err := parseNil(s.typ, text)
	if err != nil {
		return err
	}
	s.bound = v
	return nil
}

func (s *sequenceValue) Children() ([]types.Slot, error) {
	v := s.bound
	if isNil(v) {
		return nil, types.ErrNullInspection
	}
	slots := make([]types.Slot, v.Len())
	for i := range slots {
		slots[i] = s.in.Slot(NewElementMember(s.typ, i), v)
	}
	return slots, nil
}

// mapValue lists one entry per key, ordered by the key's rendered text.
//
// A NaN key is listed but can never be looked up again, since NaN != NaN:
// its entry reads and writes fail with ErrElementGone and Describe shows "?".
type mapValue struct {
	binding
	in *Inspector
}

func (m *mapValue) Kind() types.ValueKind { return types.KindMap }

func (m *mapValue) Output() string {
	return m.in.synopsis(m.bound)
}

func (m *mapValue) ParseInput(text string) error {
	v, err := parseNil(m.typ, text)
	if err != nil {
		return err
	}
	m.bound = v
	return nil
}

func (m *mapValue) Children() ([]types.Slot, error) {
	v := m.bound
	if isNil(v) {
		return nil, types.ErrNullInspection
	}

	type keyed struct {
		key  reflect.Value
		text string
		raw  string
	}
	keys := make([]keyed, 0, v.Len())
	for _, k := range v.MapKeys() {
		keys = append(keys, keyed{key: k, text: m.in.keyText(k), raw: fmt.Sprint(k)})
	}
	slices.SortFunc(keys, func(a, b keyed) int {
		if c := strings.Compare(a.text, b.text); c != 0 {
			return c
		}
		return strings.Compare(a.raw, b.raw)
	})

	slots := make([]types.Slot, len(keys))
	for i, k := range keys {
		slots[i] = m.in.Slot(NewEntryMember(m.typ, k.key, k.text), v)
	}
	return slots, nil
}

// keyText renders a map key for ordering and for the entry name.
func (in *Inspector) keyText(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return strconv.Quote(k.String())
	}
	return in.synopsis(k)
}

// parseNil accepts the literal "nil" for nullable types; composites take no
// other text input.
func parseNil(t reflect.Type, text string) (reflect.Value, error) {
	if strings.TrimSpace(text) == "nil" && nullable(t) {
		return reflect.Zero(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%s: %w", typeName(t), types.ErrUnsupportedInput)
}

// synopsis renders a short summary of v: scalars in literal form, composites
// as their type name and size.
func (in *Inspector) synopsis(v reflect.Value) string {
	prefix := ""
	for i := 0; i < maxDeref; i++ {
		if isNil(v) {
			return prefix + "nil"
		}
		switch v.Kind() {
		case reflect.Interface:
			v = v.Elem()
			continue
		case reflect.Pointer:
			prefix += "&"
			v = v.Elem()
			continue
		}
		break
	}

	t := v.Type()
	switch v.Kind() {
	case reflect.Struct:
		if isTextual(t) {
			return prefix + marshalText(v)
		}
		return fmt.Sprintf("%s%s{%s}", prefix, typeName(t), plural(t.NumField(), "field"))
	case reflect.Array, reflect.Slice, reflect.Map, reflect.Chan:
		if isTextual(t) {
			return prefix + marshalText(v)
		}
		return fmt.Sprintf("%s%s{len %d}", prefix, typeName(t), v.Len())
	case reflect.Func, reflect.UnsafePointer, reflect.Pointer:
		return prefix + typeName(t)
	}

	c := in.Classify(t)
	c.Bind(v)
	return prefix + c.Output()
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
