package registry

import (
	"cmp"
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/km-arc/go-registry/framework/logging"
)

// ── Lookup ────────────────────────────────────────────────────────────────────

// Lookup is the read side of a registry, consumed by whatever assembles
// dependency graphs. *Registry implements it.
type Lookup interface {
	Get(t reflect.Type) any
	GetByName(name string) any
	GetNamed(t reflect.Type, name string) (any, error)
	Supplier(t reflect.Type) Supplier
	SupplierFor(t reflect.Type, name string) (Supplier, error)
	Has(t reflect.Type) bool
	HasName(name string) bool
}

var _ Lookup = (*Registry)(nil)

// ── Options ───────────────────────────────────────────────────────────────────

type options struct {
	walker  Walker
	namer   Namer
	ctor    Constructor
	onFault ErrorHandler
	log     *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithWalker sets how binding types are expanded into super types and interfaces.
func WithWalker(w Walker) Option { return func(o *options) { o.walker = w } }

// WithNamer sets how names are derived for bindings without an explicit one.
func WithNamer(n Namer) Option { return func(o *options) { o.namer = n } }

// WithConstructor sets how type-only bindings build their instances.
func WithConstructor(c Constructor) Option { return func(o *options) { o.ctor = c } }

// WithErrorHandler sets the handler that receives resolution faults.
func WithErrorHandler(h ErrorHandler) Option { return func(o *options) { o.onFault = h } }

// WithLogger sets the logger used for construction and fault messages.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.log = l } }

// ── Registry ──────────────────────────────────────────────────────────────────

// Registry resolves suppliers by type, by name, or by both.
// It is immutable once New returns.
type Registry struct {
	types typeIndex
	names nameIndex

	walker  Walker
	namer   Namer
	ctor    Constructor
	onFault ErrorHandler
	log     *slog.Logger
}

// New builds a registry from bindings, in order.
func New(bindings []Binding, opts ...Option) *Registry {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.log == nil {
		o.log = logging.With("component", "registry")
	}
	if o.walker == nil {
		o.walker = NewHierarchy()
	}
	if o.namer == nil {
		o.namer = MethodNamer
	}
	if o.ctor == nil {
		o.ctor = NewConstructors()
	}
	if o.onFault == nil {
		o.onFault = LogErrors(o.log)
	}

	r := &Registry{
		types:   newTypeIndex(o.log),
		names:   newNameIndex(),
		walker:  o.walker,
		namer:   o.namer,
		ctor:    o.ctor,
		onFault: o.onFault,
		log:     o.log,
	}
	for i, b := range bindings {
		r.register(i, b)
	}

	r.log.Debug("registry built",
		"bindings", len(bindings),
		"types", len(r.types.suppliers),
		"names", len(r.names.entries))
	return r
}

// FromMap builds a registry with one value binding per pair. Keys become
// names: strings as-is, fmt.Stringers through String, anything else through
// fmt.Sprint. Pairs are registered in ascending name order.
func FromMap[K comparable, V any](m map[K]V, opts ...Option) *Registry {
	bindings := make([]Binding, 0, len(m))
	for k, v := range m {
		bindings = append(bindings, Binding{Name: keyName(k), Value: v})
	}
	slices.SortFunc(bindings, func(a, b Binding) int { return cmp.Compare(a.Name, b.Name) })
	return New(bindings, opts...)
}

func keyName(k any) string {
	switch k := k.(type) {
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprint(k)
	}
}

func (r *Registry) register(seq int, b Binding) {
	t := b.Type
	if t == nil && b.Value != nil {
		t = reflect.TypeOf(b.Value)
	}

	supplier := b.Supplier
	if supplier == nil {
		supplier = NewSupplier(t, b.Value, r.ctor)
	}

	name, found := b.Name, b.Name != ""
	var keys map[reflect.Type]struct{}
	if t != nil {
		keys = map[reflect.Type]struct{}{}
		r.put(keys, t, supplier)
		if !found {
			name, found = r.namer.NameFor(t)
		}
		if derived, ok := r.expand(keys, t, supplier, found); ok {
			name, found = derived, true
		}
	}

	if found {
		r.names.put(NamedEntry{Name: name, Type: t, Supplier: supplier, seq: seq, keys: keys})
	}
}

// expand registers supplier under every super type of t and every interface
// along the chain. When nameFound is false, the first super type the Namer
// can name supplies the binding's name.
func (r *Registry) expand(keys map[reflect.Type]struct{}, t reflect.Type, supplier Supplier, nameFound bool) (derived string, ok bool) {
	for _, i := range r.walker.Interfaces(t) {
		r.put(keys, i, supplier)
	}
	for _, super := range r.walker.Supers(t) {
		r.put(keys, super, supplier)
		if !nameFound {
			if n, named := r.namer.NameFor(super); named {
				derived, ok, nameFound = n, true, true
			}
		}
		for _, i := range r.walker.Interfaces(super) {
			r.put(keys, i, supplier)
		}
	}
	return derived, ok
}

func (r *Registry) put(keys map[reflect.Type]struct{}, t reflect.Type, s Supplier) {
	keys[t] = struct{}{}
	r.types.put(t, s)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get invokes the supplier registered for exactly t.
// It panics with a *MissingBindingError when there is none; use Supplier
// when absence is expected.
func (r *Registry) Get(t reflect.Type) any {
	s, ok := r.types.get(t)
	if !ok {
		panic(&MissingBindingError{Type: t})
	}
	return s()
}

// Has reports whether t itself was registered as a key. Super types and
// interfaces count only if they were keys of some binding.
func (r *Registry) Has(t reflect.Type) bool {
	_, ok := r.types.get(t)
	return ok
}

// Supplier returns the supplier registered for exactly t, or NullSupplier.
func (r *Registry) Supplier(t reflect.Type) Supplier {
	if s, ok := r.types.get(t); ok {
		return s
	}
	return NullSupplier
}

// GetByName invokes the first supplier registered under name.
// It panics with a *MissingBindingError when there is none.
func (r *Registry) GetByName(name string) any {
	e, ok := r.names.first(name)
	if !ok {
		panic(&MissingBindingError{Name: name})
	}
	return e.Supplier()
}

// HasName reports whether anything is registered under name.
func (r *Registry) HasName(name string) bool {
	return r.names.has(name)
}

// SupplierFor resolves name and type together. Entries under name are
// scanned in registration order and the first whose type is t, a subtype of
// t, or assignable to t wins. Otherwise the wildcard entry for name is used,
// and failing that NullSupplier.
//
// A panic during the scan (for example a nil t meeting a typed entry) is
// recovered and passed to the ErrorHandler as ErrResolutionFault; the call
// then returns a nil Supplier and whatever the handler returned.
func (r *Registry) SupplierFor(t reflect.Type, name string) (s Supplier, err error) {
	defer func() {
		if p := recover(); p != nil {
			s = nil
			err = r.onFault(fmt.Errorf("%w: resolving [%s] as [%s]: %v", ErrResolutionFault, name, TypeKey(t), p))
		}
	}()

	var wildcard Supplier
	for _, e := range r.names.all(name) {
		if e.Wildcard() {
			wildcard = e.Supplier
			continue
		}
		if e.satisfies(t) {
			return e.Supplier, nil
		}
	}
	if wildcard != nil {
		return wildcard, nil
	}
	return NullSupplier, nil
}

// GetNamed invokes the supplier SupplierFor selects.
func (r *Registry) GetNamed(t reflect.Type, name string) (any, error) {
	s, err := r.SupplierFor(t, name)
	if err != nil || s == nil {
		return nil, err
	}
	return s(), nil
}

// ── Introspection ─────────────────────────────────────────────────────────────

// Types returns every registered type key, ordered by TypeKey.
func (r *Registry) Types() []reflect.Type { return r.types.types() }

// Names returns every registered name in lexical order.
func (r *Registry) Names() []string { return r.names.names() }

// Entries returns the entries registered under name, in registration order.
func (r *Registry) Entries(name string) []NamedEntry { return r.names.all(name) }

// LookupType finds a registered type by its TypeKey.
func (r *Registry) LookupType(key string) (reflect.Type, bool) {
	for t := range r.types.suppliers {
		if TypeKey(t) == key {
			return t, true
		}
	}
	return nil, false
}

// TypeKey returns a stable, package-qualified name for t.
//
//	registry.TypeKey(reflect.TypeFor[*Mailer]())  // "*github.com/acme/mail.Mailer"
func TypeKey(t reflect.Type) string {
	switch {
	case t == nil:
		return "<nil>"
	case t.Kind() == reflect.Pointer:
		return "*" + TypeKey(t.Elem())
	case t.Name() != "" && t.PkgPath() != "":
		return t.PkgPath() + "." + t.Name()
	default:
		return t.String()
	}
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Get resolves T strictly and type-asserts the result. A nil result yields
// the zero T.
func Get[T any](l Lookup) T {
	v := l.Get(reflect.TypeFor[T]())
	typed, ok := v.(T)
	if !ok && v != nil {
		panic(fmt.Sprintf("registry: Get[%s]: resolved to %T", TypeKey(reflect.TypeFor[T]()), v))
	}
	return typed
}

// Has reports whether T is a registered type key.
func Has[T any](l Lookup) bool {
	return l.Has(reflect.TypeFor[T]())
}

// GetNamed resolves name as T. A value that is not a T is reported as an error.
func GetNamed[T any](l Lookup, name string) (T, error) {
	var zero T
	v, err := l.GetNamed(reflect.TypeFor[T](), name)
	if err != nil || v == nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("registry: [%s] resolved to %T, not %s", name, v, TypeKey(reflect.TypeFor[T]()))
	}
	return typed, nil
}
