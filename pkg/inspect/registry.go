package inspect

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/mesh-intelligence/inspector/pkg/types"
)

// Registry attaches package-level variables to struct types. Go has no static
// members, so a type's statics are whatever was registered against it; they
// are listed after the instance fields whenever a value of that type is
// inspected. Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	statics map[reflect.Type][]*VariableMember
	count   int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{statics: make(map[reflect.Type][]*VariableMember)}
}

// DefaultRegistry backs the package-level Register and the default Inspector.
var DefaultRegistry = NewRegistry()

// Register attaches the variable ptr points to as a static member named name
// of owner. Pointer owner types are reduced to their element type. The Static
// modifier is always added to mods.
//
// Returns ErrInvalidMember for a nil owner, an empty name or a ptr that is not
// a non-nil pointer, and ErrDuplicateMember when owner already has a static
// with that name.
func (r *Registry) Register(owner reflect.Type, name string, ptr any, mods types.Modifier) error {
	if owner == nil || name == "" {
		return fmt.Errorf("register %q: %w", name, types.ErrInvalidMember)
	}
	for owner.Kind() == reflect.Pointer {
		owner = owner.Elem()
	}
	m, err := NewVariableMember(name, ptr, mods|types.Static)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.statics[owner] {
		if existing.Name() == name {
			return fmt.Errorf("register %s.%s: %w", typeName(owner), name, types.ErrDuplicateMember)
		}
	}
	r.statics[owner] = append(r.statics[owner], m)
	r.count++
	return nil
}

// Statics returns the members registered against owner in registration order.
func (r *Registry) Statics(owner reflect.Type) []types.Member {
	if owner == nil {
		return nil
	}
	for owner.Kind() == reflect.Pointer {
		owner = owner.Elem()
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	registered := r.statics[owner]
	members := make([]types.Member, len(registered))
	for i, m := range registered {
		members[i] = m
	}
	return members
}

// Count returns the number of registered statics across all types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Reset removes every registration.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statics = make(map[reflect.Type][]*VariableMember)
	r.count = 0
}

// Register attaches a static member to owner in DefaultRegistry.
func Register(owner reflect.Type, name string, ptr any, mods types.Modifier) error {
	return DefaultRegistry.Register(owner, name, ptr, mods)
}
