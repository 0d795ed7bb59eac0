package registry_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/go-registry/framework/registry"
)

type Base struct{}

type Middle struct {
	Label string
	*Base
}

type Leaf struct{ Middle }

type Loop struct{}

type Other struct{}

func TestHierarchy_SupersFollowEmbedding(t *testing.T) {
	h := registry.NewHierarchy()

	assert.Equal(t,
		[]reflect.Type{reflect.TypeFor[*Middle](), reflect.TypeFor[*Base]()},
		h.Supers(reflect.TypeFor[*Leaf]()))
	assert.Equal(t,
		[]reflect.Type{reflect.TypeFor[Middle](), reflect.TypeFor[Base]()},
		h.Supers(reflect.TypeFor[Leaf]()),
		"value types keep their value-ness")
}

func TestHierarchy_SupersOfNonStructs(t *testing.T) {
	h := registry.NewHierarchy()

	assert.Empty(t, h.Supers(reflect.TypeFor[int]()))
	assert.Empty(t, h.Supers(reflect.TypeFor[*string]()))
	assert.Empty(t, h.Supers(reflect.TypeFor[*Base]()))
}

func TestHierarchy_ExtendsOverridesEmbedding(t *testing.T) {
	h := registry.NewHierarchy().Extends(reflect.TypeFor[*Leaf](), reflect.TypeFor[*Other]())

	assert.Equal(t, []reflect.Type{reflect.TypeFor[*Other]()}, h.Supers(reflect.TypeFor[*Leaf]()))
}

func TestHierarchy_ExtendsStopsAtRootAndCycles(t *testing.T) {
	loop, other := reflect.TypeFor[*Loop](), reflect.TypeFor[*Other]()
	h := registry.NewHierarchy().
		Extends(loop, other).
		Extends(other, loop)

	assert.Equal(t, []reflect.Type{other}, h.Supers(loop))

	h = registry.NewHierarchy().Extends(loop, reflect.TypeFor[any]())
	assert.Empty(t, h.Supers(loop))
}

func TestHierarchy_Interfaces(t *testing.T) {
	stringer := reflect.TypeFor[fmt.Stringer]()
	h := registry.NewHierarchy().
		Known(speaker, reflect.TypeFor[any]()).
		Implements(dogT, stringer, reflect.TypeFor[error]())

	assert.Equal(t, []reflect.Type{speaker}, h.Interfaces(dogT), "unsatisfied declarations are dropped")
	assert.Equal(t, []reflect.Type{speaker}, h.Interfaces(puppyT))
	assert.Empty(t, h.Interfaces(catT))
	assert.Empty(t, h.Interfaces(speaker), "an interface is not its own interface")
}

func TestHierarchy_DeclaredInterfacesComeFirst(t *testing.T) {
	stringer := reflect.TypeFor[fmt.Stringer]()
	named := reflect.TypeFor[labelled]()
	h := registry.NewHierarchy().
		Known(named).
		Implements(reflect.TypeFor[*Tag](), stringer)

	assert.Equal(t, []reflect.Type{stringer, named}, h.Interfaces(reflect.TypeFor[*Tag]()))
}

type labelled interface{ Label() string }

type Tag struct{ name string }

func (t *Tag) String() string { return t.name }
func (t *Tag) Label() string  { return "tag:" + t.name }
