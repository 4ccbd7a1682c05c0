package types

import (
	"fmt"
	"testing"
)

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{0, ""},
		{Public, "public"},
		{Public | Static, "public static"},
		{Static | Public | Final, "public static final"},
		{Private | Embedded, "private embedded"},
	}
	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierHas(t *testing.T) {
	m := Public | Static
	if !m.Has(Static) {
		t.Error("Has(Static) = false, want true")
	}
	if m.Has(Static | Final) {
		t.Error("Has(Static|Final) = true, want false")
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrAccessDenied, "AccessDenied"},
		{fmt.Errorf("field x: %w", ErrMissingOwner), "MissingOwner"},
		{ErrIllegalNullAssignment, "IllegalNullAssignment"},
		{ErrNullInspection, "NullInspection"},
		{ErrPrimitiveInspection, "PrimitiveInspection"},
		{fmt.Errorf("parse %q: %w", "abc", ErrFormat), "FormatError"},
		{fmt.Errorf("other"), ""},
	}
	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestValueKindString(t *testing.T) {
	if got := KindCollection.String(); got != "collection" {
		t.Errorf("KindCollection.String() = %q", got)
	}
	if got := ValueKind(99).String(); got != "unknown" {
		t.Errorf("ValueKind(99).String() = %q", got)
	}
}
