package inspect

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unsafe"

	"github.com/mesh-intelligence/inspector/pkg/types"
)

var (
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// binding holds the declared type and the currently bound instance shared by
// every variant.
type binding struct {
	typ   reflect.Type
	bound reflect.Value
}

func (b *binding) Type() reflect.Type   { return b.typ }
func (b *binding) Bind(v reflect.Value) { b.bound = v }
func (b *binding) Bound() reflect.Value { return b.bound }

func (b *binding) formatErr(text string) error {
	return fmt.Errorf("%w: %q is not a valid %s", types.ErrFormat, text, typeName(b.typ))
}

// primitiveValue renders and parses booleans and numbers.
type primitiveValue struct {
	binding
}

func (p *primitiveValue) Kind() types.ValueKind { return types.KindPrimitive }

func (p *primitiveValue) Output() string {
	if !p.bound.IsValid() {
		return "nil"
	}
	return formatScalar(p.bound)
}

func (p *primitiveValue) ParseInput(text string) error {
	v, err := parseScalar(p.typ, strings.TrimSpace(text))
	if err != nil {
		return p.formatErr(text)
	}
	p.bound = v
	return nil
}

func (p *primitiveValue) Children() ([]types.Slot, error) {
	return nil, types.ErrPrimitiveInspection
}

// formatScalar renders v in the literal form parseScalar accepts.
func formatScalar(v reflect.Value) string {
	if v.Type() == durationType {
		return time.Duration(v.Int()).String()
	}
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits())
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits())
	}
	return fmt.Sprint(v)
}

// parseScalar parses s into a new value of type t, rejecting out-of-range
// input for the type's bit size.
func parseScalar(t reflect.Type, s string) (reflect.Value, error) {
	v := reflect.New(t).Elem()
	if t == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(int64(d))
		return v, nil
	}
	switch t.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(s, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetComplex(c)
	default:
		return reflect.Value{}, fmt.Errorf("unsupported kind %s", t.Kind())
	}
	return v, nil
}

// textValue holds string kinds. Input is taken verbatim.
type textValue struct {
	binding
}

func (x *textValue) Kind() types.ValueKind { return types.KindText }

func (x *textValue) Output() string {
	if !x.bound.IsValid() {
		return "nil"
	}
	return x.bound.String()
}

func (x *textValue) ParseInput(text string) error {
	v := reflect.New(x.typ).Elem()
	v.SetString(text)
	x.bound = v
	return nil
}

func (x *textValue) Children() ([]types.Slot, error) {
	return nil, types.ErrPrimitiveInspection
}

// isTextual reports whether t round-trips through encoding.TextMarshaler and
// encoding.TextUnmarshaler, as time.Time, uuid.UUID and net.IP do.
func isTextual(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return false
	}
	pt := reflect.PointerTo(t)
	return pt.Implements(textMarshalerType) && pt.Implements(textUnmarshalerType)
}

// textualValue is a leaf rendered with MarshalText and parsed with
// UnmarshalText.
type textualValue struct {
	binding
}

func (x *textualValue) Kind() types.ValueKind { return types.KindTextual }

func (x *textualValue) Output() string {
	if !x.bound.IsValid() {
		return "nil"
	}
	return marshalText(x.bound)
}

func (x *textualValue) ParseInput(text string) error {
	p := reflect.New(x.typ)
	u := p.Interface().(encoding.TextUnmarshaler)
	if err := u.UnmarshalText([]byte(strings.TrimSpace(text))); err != nil {
		return x.formatErr(text)
	}
	x.bound = p.Elem()
	return nil
}

func (x *textualValue) Children() ([]types.Slot, error) {
	return nil, types.ErrPrimitiveInspection
}

// marshalText renders v through its TextMarshaler, falling back to fmt when
// the value cannot be copied out or fails to marshal. A read-only value
// reached through an unexported field is re-read from its address so private
// uuids and times still render in text form.
func marshalText(v reflect.Value) string {
	if !v.CanInterface() {
		if !v.CanAddr() {
			return fmt.Sprint(v)
		}
		v = reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	b, err := p.Interface().(encoding.TextMarshaler).MarshalText()
	if err != nil {
		return fmt.Sprint(v.Interface())
	}
	return string(b)
}
