// Package weft implements the entity-component world that widget systems are
// built on: generational entity identity, archetype-based column storage with
// structural mutation, a cached query engine, a synchronous event bus, a
// parent/child hierarchy relation, and the memory tracker that reports on all
// of them.
//
// Features:
// - Archetype-based storage with max 256 component types.
// - Bitmask for fast archetype lookup.
// - Unsafe pointers for zero-GC overhead on component access.
// - Generational entity handles; stale handles never report alive.
// - Staged Spawn/With/Build construction and generic Filter queries.
//
// The World is single-threaded by contract: all operations are synchronous,
// never block, and take no internal locks. Callers that need access from
// multiple goroutines must serialize it externally.
package weft

import "reflect"

// MaxComponentTypes defines the maximum number of unique component types that
// can be registered in a process. This value is fixed at 256.
const MaxComponentTypes = 256

// Entity is a unique ID + generation tag. The zero value is NullEntity and
// never denotes a live entity. Entities are immutable value handles; the
// World owns all storage they refer to.
type Entity struct {
	ID         uint32
	Generation uint32
}

// NullEntity is the zero entity handle. IsAlive reports false for it in
// every world.
var NullEntity = Entity{}

// IsNull reports whether e is the null handle.
func (e Entity) IsNull() bool {
	return e == NullEntity
}

// entityMeta holds where an entity lives and its current generation.
// It doubles as the location-table entry: archetypeIndex/row are kept in
// sync with every archetype mutation and are -1 while the id is dead.
type entityMeta struct {
	archetypeIndex int32  // index in World.archetypes, -1 if dead
	row            int32  // row inside the archetype's columns
	generation     uint32 // stored generation for this id
}

// compSpec bundles a component type's ID, reflect.Type and size.
type compSpec struct {
	typ  reflect.Type
	size uintptr
	id   ComponentID
}
