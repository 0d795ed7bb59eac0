package registry

import (
	"log/slog"
	"reflect"
	"slices"
	"strings"
)

// typeIndex maps exact type identities to suppliers. Last write wins.
type typeIndex struct {
	suppliers map[reflect.Type]Supplier
	log       *slog.Logger
}

func newTypeIndex(log *slog.Logger) typeIndex {
	return typeIndex{suppliers: make(map[reflect.Type]Supplier), log: log}
}

func (x typeIndex) put(t reflect.Type, s Supplier) {
	if _, exists := x.suppliers[t]; exists {
		x.log.Debug("type binding replaced", "type", TypeKey(t))
	}
	x.suppliers[t] = s
}

func (x typeIndex) get(t reflect.Type) (Supplier, bool) {
	s, ok := x.suppliers[t]
	return s, ok
}

func (x typeIndex) types() []reflect.Type {
	out := make([]reflect.Type, 0, len(x.suppliers))
	for t := range x.suppliers {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b reflect.Type) int {
		return strings.Compare(TypeKey(a), TypeKey(b))
	})
	return out
}

// nameIndex maps names to the entries sharing them, in registration order.
// An entry is stored at most once per name.
type nameIndex struct {
	entries map[string][]NamedEntry
}

func newNameIndex() nameIndex {
	return nameIndex{entries: make(map[string][]NamedEntry)}
}

func (x nameIndex) put(e NamedEntry) {
	for _, existing := range x.entries[e.Name] {
		if existing.seq == e.seq {
			return
		}
	}
	x.entries[e.Name] = append(x.entries[e.Name], e)
}

func (x nameIndex) all(name string) []NamedEntry {
	return slices.Clone(x.entries[name])
}

func (x nameIndex) first(name string) (NamedEntry, bool) {
	list := x.entries[name]
	if len(list) == 0 {
		return NamedEntry{}, false
	}
	return list[0], true
}

func (x nameIndex) has(name string) bool {
	return len(x.entries[name]) > 0
}

func (x nameIndex) names() []string {
	out := make([]string, 0, len(x.entries))
	for name := range x.entries {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
