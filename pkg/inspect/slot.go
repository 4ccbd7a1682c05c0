package inspect

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"reflect"
	"strings"

	"github.com/mesh-intelligence/inspector/pkg/types"
)

// slot binds one member of an owner to a Value classified from the member's
// declared type. The owner is borrowed; the slot never copies or locks it.
type slot struct {
	in     *Inspector
	member types.Member
	owner  reflect.Value
	value  types.Value
}

func (s *slot) Name() string       { return s.member.Name() }
func (s *slot) Type() reflect.Type { return s.member.Type() }

// inspectable classifies the declared type on first use.
func (s *slot) inspectable() types.Value {
	if s.value == nil {
		s.value = s.in.Classify(s.member.Type())
	}
	return s.value
}

func (s *slot) read() (v reflect.Value, err error) {
	defer guard(&err)
	return s.member.Get(s.owner)
}

func (s *slot) write(v reflect.Value) (err error) {
	defer guard(&err)
	return s.member.Set(s.owner, v)
}

// Describe renders "modifiers type name = value". An unreadable value shows
// as "?"; a missing owner drops the value part.
func (s *slot) Describe() string {
	var b strings.Builder
	if mods := s.member.Modifiers().String(); mods != "" {
		b.WriteString(mods)
		b.WriteByte(' ')
	}
	b.WriteString(typeName(s.member.Type()))
	b.WriteByte(' ')
	b.WriteString(s.member.Name())

	out, err := s.ValueToOutput()
	switch {
	case err == nil:
		b.WriteString(" = ")
		b.WriteString(out)
	case errors.Is(err, types.ErrMissingOwner):
	default:
		b.WriteString(" = ?")
	}
	return b.String()
}

func (s *slot) Value() (any, error) {
	v, err := s.read()
	if err != nil {
		return nil, err
	}
	if v.IsValid() && !v.CanInterface() {
		return nil, fmt.Errorf("%s: %w", s.Name(), types.ErrAccessDenied)
	}
	s.inspectable().Bind(v)
	if !v.IsValid() {
		return nil, nil
	}
	return v.Interface(), nil
}

func (s *slot) ValueToOutput() (out string, err error) {
	defer guard(&err)
	v, err := s.read()
	if err != nil {
		return "", err
	}
	val := s.inspectable()
	val.Bind(v)
	return val.Output(), nil
}

func (s *slot) Inspect() (children []types.Inspectable, err error) {
	defer guard(&err)
	v, err := s.read()
	if err != nil {
		return nil, err
	}
	if isNil(v) {
		return nil, fmt.Errorf("%s: %w", s.Name(), types.ErrNullInspection)
	}
	if isPrimitive(s.member.Type()) {
		return nil, fmt.Errorf("%s: %w", s.Name(), types.ErrPrimitiveInspection)
	}

	val := s.inspectable()
	val.Bind(v)
	slots, err := val.Children()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Name(), err)
	}
	children = make([]types.Inspectable, len(slots))
	for i, c := range slots {
		children[i] = c
	}
	return children, nil
}

// SetValue checks for nil before touching the storage, then converts v to the
// declared type and writes it.
func (s *slot) SetValue(v any) error {
	t := s.member.Type()
	if v == nil || isNil(reflect.ValueOf(v)) {
		if !nullable(t) {
			return fmt.Errorf("%s: %w", s.Name(), types.ErrIllegalNullAssignment)
		}
		if v == nil {
			return s.store(reflect.Zero(t))
		}
	}
	rv, err := convert(reflect.ValueOf(v), t)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name(), err)
	}
	return s.store(rv)
}

func (s *slot) store(v reflect.Value) error {
	if err := s.write(v); err != nil {
		return err
	}
	s.inspectable().Bind(v)
	return nil
}

// SetValueFromInput parses text with the slot's Value and writes the result.
// A failed write restores the Value's previous binding. A panic raised by a
// user type's UnmarshalText is returned as ErrAccessDenied.
func (s *slot) SetValueFromInput(text string) (err error) {
	defer guard(&err)
	val := s.inspectable()
	prev := val.Bound()
	if err := val.ParseInput(text); err != nil {
		return fmt.Errorf("%s: %w", s.Name(), err)
	}
	if err := s.write(val.Bound()); err != nil {
		val.Bind(prev)
		return err
	}
	return nil
}

// convert makes v assignable to t. Numeric values convert between numeric
// kinds when the value survives: integer targets must round-trip exactly and
// float or complex targets must not overflow to infinity. Named types convert
// from values of the same kind.
func convert(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if isNumeric(v.Kind()) && isNumeric(t.Kind()) && v.Type().ConvertibleTo(t) {
		c := v.Convert(t)
		if overflows(v, c) {
			return reflect.Value{}, fmt.Errorf("%w: %v overflows %s", types.ErrFormat, v, typeName(t))
		}
		return c, nil
	}
	if v.Kind() == t.Kind() && v.Type().ConvertibleTo(t) {
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: cannot assign %s to %s", types.ErrFormat, typeName(v.Type()), typeName(t))
}

// overflows reports whether converting from into to lost the value.
func overflows(from, to reflect.Value) bool {
	switch k := to.Kind(); {
	case isInteger(k):
		return !to.Convert(from.Type()).Equal(from) || signFlipped(from, to)
	case k == reflect.Float32 || k == reflect.Float64:
		return !isInf(from) && math.IsInf(to.Float(), 0)
	case k == reflect.Complex64 || k == reflect.Complex128:
		return !isInf(from) && cmplx.IsInf(to.Complex())
	}
	return false
}

func isInf(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsInf(v.Float(), 0)
	case reflect.Complex64, reflect.Complex128:
		return cmplx.IsInf(v.Complex())
	}
	return false
}

// signFlipped reports whether converting between signed and unsigned integer
// kinds changed the sign, as -1 becoming MaxUint64 does.
func signFlipped(from, to reflect.Value) bool {
	return isNegative(from) != isNegative(to)
}

func isNegative(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	case reflect.Float32, reflect.Float64:
		return v.Float() < 0
	}
	return false
}

func isInteger(k reflect.Kind) bool {
	return (k >= reflect.Int && k <= reflect.Int64) || (k >= reflect.Uint && k <= reflect.Uintptr)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return isInteger(k)
}
