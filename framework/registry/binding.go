package registry

import "reflect"

// Binding describes one registration. At least one of Type and Value should
// be set; Type is inferred from Value when absent. An empty Name means the
// binding is only reachable by name if the Namer derives one.
type Binding struct {
	Type     reflect.Type
	Name     string
	Value    any
	Supplier Supplier
}

// Bind starts a binding for type t.
func Bind(t reflect.Type) Binding { return Binding{Type: t} }

// Named starts a binding for a name.
func Named(name string) Binding { return Binding{Name: name} }

// Value starts a binding for a fixed value; the type is the value's own.
func Value(v any) Binding { return Binding{Value: v} }

func (b Binding) WithType(t reflect.Type) Binding { b.Type = t; return b }
func (b Binding) WithName(name string) Binding    { b.Name = name; return b }
func (b Binding) WithValue(v any) Binding         { b.Value = v; return b }
func (b Binding) WithSupplier(s Supplier) Binding { b.Supplier = s; return b }

// NamedEntry is what a name resolves to. A nil Type marks a wildcard entry,
// usable as a fallback whatever type is requested.
type NamedEntry struct {
	Name     string
	Type     reflect.Type
	Supplier Supplier

	seq  int
	keys map[reflect.Type]struct{}
}

// Wildcard reports whether the entry carries no type.
func (e NamedEntry) Wildcard() bool { return e.Type == nil }

// satisfies reports whether the entry's type is t or one of t's subtypes.
// keys holds every type the binding was registered under.
func (e NamedEntry) satisfies(t reflect.Type) bool {
	if e.Type == t {
		return true
	}
	if _, ok := e.keys[t]; ok {
		return true
	}
	return e.Type.AssignableTo(t)
}
