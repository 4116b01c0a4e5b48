package weft

import "reflect"

// EntityBuilder accumulates the component set of a not-yet-spawned entity so
// that Build can perform a single archetype placement instead of one
// structural move per component.
//
// Example usage:
//
//	entity := world.Spawn().
//	    With(Position{X: 4, Y: 2}).
//	    With(Velocity{VX: 1}).
//	    Build()
type EntityBuilder struct {
	world  *World
	ids    []ComponentID
	values []reflect.Value
	built  bool
}

// Spawn starts building a new entity. Nothing is stored in the world until
// Build is called.
func (w *World) Spawn() *EntityBuilder {
	return &EntityBuilder{world: w}
}

// With stages a component value for the entity being built. It may be called
// repeatedly; staging a second value of the same type replaces the first
// (the component set is deduplicated). The component type is registered on
// first use. Panics if called after Build.
func (b *EntityBuilder) With(component any) *EntityBuilder {
	if b.built {
		panic("weft: With called after Build")
	}
	v := reflect.ValueOf(component)
	id := registerType(v.Type(), v.Type().Size())
	for i, existing := range b.ids {
		if existing == id {
			b.values[i] = v
			return b
		}
	}
	b.ids = append(b.ids, id)
	b.values = append(b.values, v)
	return b
}

// Build chooses the archetype matching the staged component set (creating it
// on first use of the signature), appends a row there, writes the staged
// values, and returns the new entity handle. The builder cannot be reused.
func (b *EntityBuilder) Build() Entity {
	if b.built {
		panic("weft: Build called twice")
	}
	b.built = true
	b.sortStaged()
	mask := makeMask(b.ids)
	target, ok := b.world.archetypeByMask(mask)
	if !ok {
		specs := make([]compSpec, len(b.ids))
		for i, id := range b.ids {
			specs[i] = specFor(id)
		}
		target = b.world.getOrCreateArchetype(mask, specs)
	}
	e := b.world.spawnInto(target)
	row := int(b.world.metas[e.ID].row)
	for i, id := range b.ids {
		target.writeValue(id, row, b.values[i])
	}
	return e
}

// sortStaged orders the staged ids/values by component ID. Component sets
// are tiny, so insertion sort.
func (b *EntityBuilder) sortStaged() {
	for i := 1; i < len(b.ids); i++ {
		for j := i; j > 0 && b.ids[j] < b.ids[j-1]; j-- {
			b.ids[j], b.ids[j-1] = b.ids[j-1], b.ids[j]
			b.values[j], b.values[j-1] = b.values[j-1], b.values[j]
		}
	}
}
