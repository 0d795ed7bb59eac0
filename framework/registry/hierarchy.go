package registry

import (
	"reflect"
	"sync"
)

// rootType is the universal root. Every type satisfies it, so it is never
// used as a registration key.
var rootType = reflect.TypeFor[any]()

// Walker reports the type relationships a binding is expanded along.
type Walker interface {
	// Supers returns the ancestor chain of t, nearest first, excluding the
	// universal root.
	Supers(t reflect.Type) []reflect.Type

	// Interfaces returns the interfaces t directly implements.
	Interfaces(t reflect.Type) []reflect.Type
}

// Hierarchy is the default Walker. Ancestors come from Extends declarations
// and, for undeclared types, from the first embedded struct field. Interfaces
// come from Implements declarations plus every Known interface the type
// satisfies.
//
// Declarations are expected before the Hierarchy is handed to New; reads
// after that are safe from any goroutine.
type Hierarchy struct {
	mu         sync.RWMutex
	extends    map[reflect.Type]reflect.Type
	implements map[reflect.Type][]reflect.Type
	known      []reflect.Type
}

// NewHierarchy creates a Hierarchy with no declarations.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{
		extends:    make(map[reflect.Type]reflect.Type),
		implements: make(map[reflect.Type][]reflect.Type),
	}
}

// Extends declares parent as the direct super type of child, overriding
// whatever embedding would imply.
func (h *Hierarchy) Extends(child, parent reflect.Type) *Hierarchy {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.extends[child] = parent
	return h
}

// Implements declares interfaces t directly implements. Interfaces t does
// not satisfy are ignored.
func (h *Hierarchy) Implements(t reflect.Type, ifaces ...reflect.Type) *Hierarchy {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, i := range ifaces {
		if i.Kind() == reflect.Interface && i != rootType && t.Implements(i) {
			h.implements[t] = appendUnique(h.implements[t], i)
		}
	}
	return h
}

// Known adds interfaces that are reported for every type satisfying them.
func (h *Hierarchy) Known(ifaces ...reflect.Type) *Hierarchy {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, i := range ifaces {
		if i.Kind() == reflect.Interface && i != rootType {
			h.known = appendUnique(h.known, i)
		}
	}
	return h
}

func (h *Hierarchy) Supers(t reflect.Type) []reflect.Type {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var chain []reflect.Type
	seen := map[reflect.Type]bool{t: true}
	for p := h.parent(t); p != nil && p != rootType && !seen[p]; p = h.parent(p) {
		seen[p] = true
		chain = append(chain, p)
	}
	return chain
}

func (h *Hierarchy) Interfaces(t reflect.Type) []reflect.Type {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := append([]reflect.Type(nil), h.implements[t]...)
	for _, i := range h.known {
		if i != t && t.Implements(i) {
			out = appendUnique(out, i)
		}
	}
	return out
}

func (h *Hierarchy) parent(t reflect.Type) reflect.Type {
	if p, ok := h.extends[t]; ok {
		return p
	}
	return embeddedSuper(t)
}

// embeddedSuper returns the first embedded struct of t (or of *t's element),
// keeping t's pointer-ness: *Dog embedding Animal yields *Animal.
func embeddedSuper(t reflect.Type) reflect.Type {
	elem, ptr := t, false
	if t.Kind() == reflect.Pointer {
		elem, ptr = t.Elem(), true
	}
	if elem.Kind() != reflect.Struct {
		return nil
	}
	for i := range elem.NumField() {
		f := elem.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() != reflect.Struct {
			continue
		}
		if ptr {
			return reflect.PointerTo(ft)
		}
		return ft
	}
	return nil
}

func appendUnique(list []reflect.Type, t reflect.Type) []reflect.Type {
	for _, x := range list {
		if x == t {
			return list
		}
	}
	return append(list, t)
}
