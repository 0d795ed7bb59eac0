package registry

import "reflect"

// Namer derives a registration name from a type's own metadata.
type Namer interface {
	NameFor(t reflect.Type) (string, bool)
}

// NamerFunc adapts a function to the Namer interface.
type NamerFunc func(t reflect.Type) (string, bool)

func (f NamerFunc) NameFor(t reflect.Type) (string, bool) { return f(t) }

// NamedService is implemented by types that carry a type-level service name.
// The name must not depend on instance state: it is read from a zero value.
//
//	type Mailer struct{ ... }
//	func (*Mailer) ServiceName() string { return "mailer" }
type NamedService interface {
	ServiceName() string
}

var namedType = reflect.TypeFor[NamedService]()

// MethodNamer reads names from the ServiceName method of a zero instance.
// Pointer types are probed with a freshly allocated element so pointer
// receivers never see nil.
var MethodNamer Namer = NamerFunc(methodName)

func methodName(t reflect.Type) (name string, ok bool) {
	if t == nil || t.Kind() == reflect.Interface || !t.Implements(namedType) {
		return "", false
	}
	defer func() {
		if recover() != nil {
			name, ok = "", false
		}
	}()

	var v reflect.Value
	if t.Kind() == reflect.Pointer {
		v = reflect.New(t.Elem())
	} else {
		v = reflect.Zero(t)
	}
	name = v.Interface().(NamedService).ServiceName()
	return name, name != ""
}

// NameTable is a fixed type → name mapping.
type NameTable map[reflect.Type]string

func (n NameTable) NameFor(t reflect.Type) (string, bool) {
	name, ok := n[t]
	return name, ok && name != ""
}

// Namers tries each Namer in order and returns the first name found.
type Namers []Namer

func (ns Namers) NameFor(t reflect.Type) (string, bool) {
	for _, n := range ns {
		if name, ok := n.NameFor(t); ok {
			return name, true
		}
	}
	return "", false
}
