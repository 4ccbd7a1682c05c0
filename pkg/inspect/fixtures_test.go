package inspect

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/inspector/pkg/types"
)

type triple struct {
	A int
	B string
	C bool
}

type person struct {
	Name string
	age  int
}

type Base struct {
	ID int
}

type derived struct {
	Base
	Label string
}

type inner struct {
	X int
}

type outer struct {
	inner
	Y int
}

type wrapper struct {
	inner person
}

type tagged struct {
	id uuid.UUID
}

// brittle panics when parsed, like a careless third-party unmarshaler.
type brittle struct {
	s string
}

func (b brittle) MarshalText() ([]byte, error) { return []byte(b.s), nil }

func (b *brittle) UnmarshalText([]byte) error { panic("brittle: cannot parse") }

type node struct {
	Name     string
	Count    int
	Small    int8
	Ratio    float64
	Next     *node
	Tags     []string
	Attrs    map[string]int
	Grid     [2]int
	Any      any
	ID       uuid.UUID
	Created  time.Time
	Timeout  time.Duration
	Version  string `inspect:"readonly"`
	secret   int
	Internal string `inspect:"-"`
}

func newNode() *node {
	return &node{
		Name:    "root",
		Count:   7,
		Tags:    []string{"a", "b"},
		Attrs:   map[string]int{"b": 2, "a": 1},
		Grid:    [2]int{10, 20},
		ID:      uuid.MustParse("0190b6a4-7c1e-7d2a-9f00-3a1b2c3d4e5f"),
		Created: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		Timeout: 1500 * time.Millisecond,
		Version: "v1",
		secret:  42,
	}
}

// child returns the child slot of parent called name.
func child(t *testing.T, parent types.Inspectable, name string) types.Slot {
	t.Helper()
	children, err := parent.Inspect()
	require.NoError(t, err)
	for _, c := range children {
		s, ok := c.(types.Slot)
		require.True(t, ok, "child %T is not a Slot", c)
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("no child %q", name)
	return nil
}

// names lists the names of children.
func names(t *testing.T, children []types.Inspectable) []string {
	t.Helper()
	out := make([]string, len(children))
	for i, c := range children {
		out[i] = c.(types.Slot).Name()
	}
	return out
}
