package weft

import (
	"fmt"
	"reflect"
	"unsafe"
)

// ComponentID is a unique identifier for a registered component type.
type ComponentID uint8

// The component registry is process-global: a component type registered once
// keeps the same ID in every World. Identity is the reflect.Type of the
// component struct, never a name string.
var (
	nextComponentID uint16
	typeToID        = make(map[reflect.Type]ComponentID, MaxComponentTypes)
	idToType        [MaxComponentTypes]reflect.Type
	componentSizes  [MaxComponentTypes]uintptr
)

// ResetRegistry resets the global component registry. This is useful for
// tests or applications that need to re-initialize the ECS state. Worlds
// created before a reset must not be used afterwards.
func ResetRegistry() {
	nextComponentID = 0
	typeToID = make(map[reflect.Type]ComponentID, MaxComponentTypes)
	idToType = [MaxComponentTypes]reflect.Type{}
	componentSizes = [MaxComponentTypes]uintptr{}
}

// RegisterComponent registers a component type and returns its unique ID.
// Registration is idempotent: the same type always yields the same ID.
// Component types must be plain-data structs with trivial copy semantics;
// rows are moved between archetypes with a byte copy.
//
// It panics wrapping ErrComponentSpaceExhausted if more than
// MaxComponentTypes distinct types are registered.
func RegisterComponent[T any]() ComponentID {
	var zero T
	return registerType(reflect.TypeOf(zero), unsafe.Sizeof(zero))
}

// ComponentIDFor returns the ComponentID for a given component type.
// It panics if the component type has not been registered.
func ComponentIDFor[T any]() ComponentID {
	var zero T
	typ := reflect.TypeOf(zero)
	id, ok := typeToID[typ]
	if !ok {
		panic(fmt.Sprintf("weft: component type %s not registered", typ))
	}
	return id
}

// TryComponentIDFor returns the ComponentID for a given component type and
// whether it was found. It never panics.
func TryComponentIDFor[T any]() (ComponentID, bool) {
	var zero T
	id, ok := typeToID[reflect.TypeOf(zero)]
	return id, ok
}

// registeredComponentCount reports how many component types are registered.
func registeredComponentCount() int {
	return int(nextComponentID)
}

// registerType is the untyped registration path shared by RegisterComponent
// and the spawn builder.
func registerType(t reflect.Type, size uintptr) ComponentID {
	if id, ok := typeToID[t]; ok {
		return id
	}
	if int(nextComponentID) >= MaxComponentTypes {
		panic(fmt.Errorf("%w: cannot register component %s, limit is %d",
			ErrComponentSpaceExhausted, t, MaxComponentTypes))
	}
	id := ComponentID(nextComponentID)
	typeToID[t] = id
	idToType[id] = t
	componentSizes[id] = size
	nextComponentID++
	return id
}

// specFor rebuilds the compSpec for a registered id.
func specFor(id ComponentID) compSpec {
	return compSpec{typ: idToType[id], size: componentSizes[id], id: id}
}
