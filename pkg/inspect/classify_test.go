package inspect

import (
	"net"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/inspector/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want types.ValueKind
	}{
		{"int", reflect.TypeOf(0), types.KindPrimitive},
		{"bool", reflect.TypeOf(false), types.KindPrimitive},
		{"float32", reflect.TypeOf(float32(0)), types.KindPrimitive},
		{"complex128", reflect.TypeOf(complex128(0)), types.KindPrimitive},
		{"duration", reflect.TypeOf(time.Duration(0)), types.KindPrimitive},
		{"string", reflect.TypeOf(""), types.KindText},
		{"time", reflect.TypeOf(time.Time{}), types.KindTextual},
		{"uuid", reflect.TypeOf(uuid.UUID{}), types.KindTextual},
		{"ip", reflect.TypeOf(net.IP{}), types.KindTextual},
		{"array", reflect.TypeOf([3]int{}), types.KindArray},
		{"slice", reflect.TypeOf([]int{}), types.KindCollection},
		{"map", reflect.TypeOf(map[string]int{}), types.KindMap},
		{"struct", reflect.TypeOf(triple{}), types.KindObject},
		{"pointer", reflect.TypeOf(&triple{}), types.KindObject},
		{"interface", anyType, types.KindObject},
		{"chan", reflect.TypeOf(make(chan int)), types.KindObject},
		{"func", reflect.TypeOf(func() {}), types.KindObject},
		{"nil type", nil, types.KindObject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(tt.typ)
			assert.Equal(t, tt.want, v.Kind())
			assert.False(t, v.Bound().IsValid(), "fresh value must be unbound")
		})
	}
}

func TestClassifyIsStable(t *testing.T) {
	typ := reflect.TypeOf(map[string][]int{})
	a, b := Classify(typ), Classify(typ)
	assert.Equal(t, a.Kind(), b.Kind())
	assert.Equal(t, a.Type(), b.Type())
	assert.NotSame(t, a, b)
}

func TestValueOutput(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"int", 42, "42"},
		{"negative", int8(-128), "-128"},
		{"bool", true, "true"},
		{"float", 3.25, "3.25"},
		{"float32", float32(0.1), "0.1"},
		{"complex", complex(1, 2), "(1+2i)"},
		{"duration", 1500 * time.Millisecond, "1.5s"},
		{"string", "hello world", "hello world"},
		{"uuid", uuid.MustParse("0190b6a4-7c1e-7d2a-9f00-3a1b2c3d4e5f"), "0190b6a4-7c1e-7d2a-9f00-3a1b2c3d4e5f"},
		{"slice", []string{"a", "b"}, "[]string{len 2}"},
		{"nil slice", []string(nil), "nil"},
		{"array", [3]int{}, "[3]int{len 3}"},
		{"map", map[string]int{"a": 1}, "map[string]int{len 1}"},
		{"struct", triple{}, "inspect.triple{3 fields}"},
		{"pointer", &Base{}, "&inspect.Base{1 field}"},
		{"nil pointer", (*triple)(nil), "nil"},
		{"func", func() {}, "func()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(reflect.TypeOf(tt.v))
			v.Bind(reflect.ValueOf(tt.v))
			assert.Equal(t, tt.want, v.Output())
		})
	}
}

func TestObjectOutputUsesRuntimeValue(t *testing.T) {
	v := Classify(anyType)

	holder := struct{ V any }{V: 5}
	v.Bind(reflect.ValueOf(holder).Field(0))
	assert.Equal(t, "5", v.Output())

	holder.V = &triple{}
	v.Bind(reflect.ValueOf(holder).Field(0))
	assert.Equal(t, "&inspect.triple{3 fields}", v.Output())

	v.Bind(reflect.Value{})
	assert.Equal(t, "nil", v.Output())
}

func TestParseInputKeepsBindingOnError(t *testing.T) {
	tests := []struct {
		name  string
		v     any
		input string
	}{
		{"int", 7, "abc"},
		{"int8 overflow", int8(1), "300"},
		{"uint negative", uint(1), "-1"},
		{"bool", true, "maybe"},
		{"float", 1.5, "1.5.5"},
		{"duration", time.Second, "soon"},
		{"uuid", uuid.New(), "not-a-uuid"},
		{"time", time.Now(), "yesterday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(reflect.TypeOf(tt.v))
			v.Bind(reflect.ValueOf(tt.v))
			before := v.Output()

			err := v.ParseInput(tt.input)
			assert.ErrorIs(t, err, types.ErrFormat)
			assert.Equal(t, before, v.Output())
		})
	}
}

func TestCompositeParseInput(t *testing.T) {
	slice := Classify(reflect.TypeOf([]int{}))
	slice.Bind(reflect.ValueOf([]int{1}))
	assert.ErrorIs(t, slice.ParseInput("[1 2]"), types.ErrUnsupportedInput)
	assert.NoError(t, slice.ParseInput("nil"))
	assert.Equal(t, "nil", slice.Output())

	arr := Classify(reflect.TypeOf([2]int{}))
	assert.ErrorIs(t, arr.ParseInput("nil"), types.ErrUnsupportedInput)

	obj := Classify(reflect.TypeOf(triple{}))
	assert.ErrorIs(t, obj.ParseInput("nil"), types.ErrUnsupportedInput)

	ptr := Classify(reflect.TypeOf(&triple{}))
	assert.NoError(t, ptr.ParseInput(" nil "))
}

func TestScalarChildrenArePrimitive(t *testing.T) {
	for _, v := range []any{1, "s", time.Now(), uuid.New()} {
		val := Classify(reflect.TypeOf(v))
		val.Bind(reflect.ValueOf(v))
		_, err := val.Children()
		assert.ErrorIs(t, err, types.ErrPrimitiveInspection, "%T", v)
	}
}

func TestMapChildrenSortedByKey(t *testing.T) {
	m := map[int]string{10: "ten", 2: "two", 1: "one"}
	v := Classify(reflect.TypeOf(m))
	v.Bind(reflect.ValueOf(m))

	children, err := v.Children()
	assert.NoError(t, err)
	var got []string
	for _, c := range children {
		got = append(got, c.Name())
	}
	// Keys order by rendered text, so "10" sorts before "2".
	assert.Equal(t, []string{"[1]", "[10]", "[2]"}, got)
}
