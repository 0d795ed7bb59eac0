// Package registry provides a type-and-name keyed service registry.
//
// # Overview
//
// A Registry binds lookup keys (a type identity, a string name, or both) to
// suppliers: zero-argument functions invoked on every resolution. It is
// built once from an ordered list of Bindings and is read-only afterwards,
// so any number of goroutines may query it without locking.
//
// Every binding is reachable under its own type, under every "super" type
// the Walker reports for it (embedded structs by default), and under every
// interface implemented along that chain. A binding with a name (explicit, or
// derived through the Namer) is also reachable by that name.
//
// # Building
//
//	reg := registry.New([]registry.Binding{
//	    registry.Value(&Config{Port: 8000}),
//	    registry.Bind(reflect.TypeFor[*Mailer]()).WithSupplier(func() any { return NewMailer() }),
//	    registry.Named("greeting").WithValue("hello"),
//	})
//
//	// From a plain key → value map; keys become names.
//	reg := registry.FromMap(map[string]any{"port": 8000, "host": "localhost"})
//
//	// Incrementally, then frozen.
//	b := registry.NewBuilder()
//	registry.Provide(b, func() *Mailer { return NewMailer() })
//	b.Instance("greeting", "hello")
//	reg := b.Build()
//
// # Resolving
//
//	cfg := reg.Get(reflect.TypeFor[*Config]()).(*Config) // panics when unbound
//	cfg := registry.Get[*Config](reg)                     // same, typed
//	s := reg.Supplier(reflect.TypeFor[*Cache]())          // never fails; may yield nil
//	v := reg.GetByName("greeting")
//
//	// Name and type together: the first entry under the name whose type is
//	// assignable to the requested one wins, then an untyped (wildcard) entry,
//	// then a supplier yielding nil.
//	m, err := registry.GetNamed[Sender](reg, "mailer")
//
// # Hierarchies
//
// Go has no class inheritance, so the Walker decides what a "super" type is.
// The default Hierarchy follows the first embedded struct field and reports
// the interfaces it has been told about:
//
//	h := registry.NewHierarchy().
//	    Known(reflect.TypeFor[Sender]()).
//	    Extends(reflect.TypeFor[*SMTPMailer](), reflect.TypeFor[*Mailer]())
//
//	reg := registry.New(bindings, registry.WithWalker(h))
package registry
