package registry

import (
	"reflect"
	"sync"
)

// ── Suppliers ─────────────────────────────────────────────────────────────────

// Supplier produces a value on demand. It is invoked on every resolution;
// nothing is cached unless the supplier itself captures a fixed value.
type Supplier func() any

// NullSupplier is the supplier returned for tolerant misses. It yields nil.
func NullSupplier() any { return nil }

// NewSupplier picks a supplier for a binding that did not bring its own:
// a constant supplier when value is non-nil, a constructing supplier when
// only the type is known, and NullSupplier otherwise.
func NewSupplier(t reflect.Type, value any, c Constructor) Supplier {
	switch {
	case value != nil:
		return func() any { return value }
	case t != nil:
		return func() any { return c.Construct(t) }
	default:
		return NullSupplier
	}
}

// ── Construction ──────────────────────────────────────────────────────────────

// Constructor builds a fresh instance of a type.
type Constructor interface {
	Construct(t reflect.Type) any
}

// ConstructorFunc adapts a function to the Constructor interface.
type ConstructorFunc func(t reflect.Type) any

func (f ConstructorFunc) Construct(t reflect.Type) any { return f(t) }

// Allocate returns a fresh zero instance of t: a pointer to a new zero value
// for pointer types, nil for interfaces, and the zero value otherwise.
func Allocate(t reflect.Type) any {
	switch t.Kind() {
	case reflect.Pointer:
		return reflect.New(t.Elem()).Interface()
	case reflect.Interface:
		return nil
	default:
		return reflect.Zero(t).Interface()
	}
}

// Constructors is a table of per-type factory functions. Types without an
// entry fall back to Allocate.
//
//	ctors := registry.NewConstructors()
//	registry.Factory(ctors, func() *Mailer { return &Mailer{Retries: 3} })
//	reg := registry.New(bindings, registry.WithConstructor(ctors))
type Constructors struct {
	mu    sync.RWMutex
	table map[reflect.Type]func() any
}

// NewConstructors creates an empty table.
func NewConstructors() *Constructors {
	return &Constructors{table: make(map[reflect.Type]func() any)}
}

// Register sets the factory used for t, replacing any previous one.
func (c *Constructors) Register(t reflect.Type, fn func() any) *Constructors {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table[t] = fn
	return c
}

// Construct runs the factory registered for t, or allocates a zero instance.
func (c *Constructors) Construct(t reflect.Type) any {
	c.mu.RLock()
	fn, ok := c.table[t]
	c.mu.RUnlock()
	if ok {
		return fn()
	}
	return Allocate(t)
}

// Factory registers fn as the constructor of T.
func Factory[T any](c *Constructors, fn func() T) *Constructors {
	return c.Register(reflect.TypeFor[T](), func() any { return fn() })
}
