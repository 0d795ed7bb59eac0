package registry

import (
	"reflect"
	"slices"
	"sync"
)

// Builder collects bindings before they are frozen into a Registry.
// It is safe for concurrent use; Build snapshots whatever has been added.
//
//	b := registry.NewBuilder()
//	b.Instance("config", cfg)
//	b.Bind(reflect.TypeFor[*Mailer](), func() any { return NewMailer() })
//	reg := b.Build()
type Builder struct {
	mu       sync.RWMutex
	bindings []Binding
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends bindings as they are.
func (b *Builder) Add(bindings ...Binding) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bindings = append(b.bindings, bindings...)
	return b
}

// Bind registers supplier under t. A nil supplier constructs t on demand.
func (b *Builder) Bind(t reflect.Type, supplier Supplier) *Builder {
	return b.Add(Binding{Type: t, Supplier: supplier})
}

// Instance registers a fixed value under name and under the value's type.
func (b *Builder) Instance(name string, value any) *Builder {
	return b.Add(Binding{Name: name, Value: value})
}

// Named registers supplier under name and t. A nil t makes the entry a
// wildcard for name.
func (b *Builder) Named(name string, t reflect.Type, supplier Supplier) *Builder {
	return b.Add(Binding{Name: name, Type: t, Supplier: supplier})
}

// Len returns the number of bindings added so far.
func (b *Builder) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.bindings)
}

// Bindings returns a copy of the bindings added so far.
func (b *Builder) Bindings() []Binding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.bindings)
}

// Build freezes the current bindings into a Registry. The builder stays
// usable; later additions do not affect registries already built.
func (b *Builder) Build(opts ...Option) *Registry {
	return New(b.Bindings(), opts...)
}

// Provide registers fn as the supplier of T. fn runs on every resolution.
//
//	registry.Provide(b, func() *Mailer { return NewMailer() })
func Provide[T any](b *Builder, fn func() T) *Builder {
	return b.Bind(reflect.TypeFor[T](), func() any { return fn() })
}
