package weft

import "fmt"

// GetComponent retrieves a pointer to the component of type T for the given
// entity. The pointer aliases the owning archetype's column and stays valid
// until the next structural mutation touching that entity or archetype.
//
// Accessing a dead handle or an absent component is a programmer error and
// panics, wrapping ErrEntityNotFound or ErrMissingComponent; handing out a
// pointer into recycled rows would silently corrupt another entity. Widget
// layers that tolerate dead-entity races use TryGetComponent instead.
func GetComponent[T any](w *World, e Entity) *T {
	if !w.IsAlive(e) {
		panic(fmt.Errorf("%w: get %T on dead handle (id=%d gen=%d)",
			ErrEntityNotFound, *new(T), e.ID, e.Generation))
	}
	id, ok := TryComponentIDFor[T]()
	meta := w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if !ok || !a.mask.containsBit(id) {
		panic(fmt.Errorf("%w: %T not present on entity id=%d",
			ErrMissingComponent, *new(T), e.ID))
	}
	return (*T)(a.componentPtr(id, int(meta.row)))
}

// TryGetComponent is the soft counterpart of GetComponent: it returns the
// component pointer and true, or nil and false if the entity is dead or
// lacks the component. It never panics.
func TryGetComponent[T any](w *World, e Entity) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	id, ok := TryComponentIDFor[T]()
	if !ok {
		return nil, false
	}
	meta := w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if !a.mask.containsBit(id) {
		return nil, false
	}
	return (*T)(a.componentPtr(id, int(meta.row))), true
}

// HasComponent reports whether the entity is alive and its current archetype
// contains a component of type T. It never fails.
func HasComponent[T any](w *World, e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	id, ok := TryComponentIDFor[T]()
	if !ok {
		return false
	}
	return w.archetypeOf(e).mask.containsBit(id)
}

// AddComponent adds a component of type T with the given value to an entity.
// If the entity already has T the value is overwritten in place with no
// structural move. Otherwise the entity's row moves to the archetype for its
// current signature plus T: all existing column values are copied across,
// the old row is swap-removed, and the location table is updated in the same
// operation. Adding to a dead handle is a no-op.
func AddComponent[T any](w *World, e Entity, val T) {
	if !w.IsAlive(e) {
		return
	}
	id := RegisterComponent[T]()
	meta := &w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if a.mask.containsBit(id) {
		*(*T)(a.componentPtr(id, int(meta.row))) = val
		return
	}
	newMask := a.mask
	newMask.set(id)
	target, ok := w.archetypeByMask(newMask)
	if !ok {
		target = w.getOrCreateArchetype(newMask, specsWith(a, id))
	}
	w.moveEntity(meta, target)
	*(*T)(target.componentPtr(id, int(meta.row))) = val
}

// RemoveComponent removes the component of type T from the entity, moving
// its row to the archetype without T. Removing an absent component, or
// removing from a dead handle, is a no-op.
func RemoveComponent[T any](w *World, e Entity) {
	if !w.IsAlive(e) {
		return
	}
	id, ok := TryComponentIDFor[T]()
	if !ok {
		return
	}
	meta := &w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	if !a.mask.containsBit(id) {
		return
	}
	newMask := a.mask
	newMask.unset(id)
	target, found := w.archetypeByMask(newMask)
	if !found {
		target = w.getOrCreateArchetype(newMask, specsWithout(a, id))
	}
	w.moveEntity(meta, target)
}

// GetComponent2 retrieves pointers to two components of the entity with one
// liveness check. Same failure contract as GetComponent.
func GetComponent2[T1, T2 any](w *World, e Entity) (*T1, *T2) {
	p1 := GetComponent[T1](w, e)
	p2 := GetComponent[T2](w, e)
	return p1, p2
}

// archetypeByMask is the lookup half of getOrCreateArchetype, split out so
// mutation paths can avoid building specs when the target already exists.
func (w *World) archetypeByMask(mask bitmask256) (*archetype, bool) {
	if idx, ok := w.maskToArchIndex[mask]; ok {
		return w.archetypes[idx], true
	}
	return nil, false
}

// specsWith returns a's component specs with id inserted in sorted order.
func specsWith(a *archetype, id ComponentID) []compSpec {
	specs := make([]compSpec, 0, len(a.ids)+1)
	inserted := false
	for _, cid := range a.ids {
		if !inserted && id < cid {
			specs = append(specs, specFor(id))
			inserted = true
		}
		specs = append(specs, specFor(cid))
	}
	if !inserted {
		specs = append(specs, specFor(id))
	}
	return specs
}

// specsWithout returns a's component specs with id removed.
func specsWithout(a *archetype, id ComponentID) []compSpec {
	specs := make([]compSpec, 0, len(a.ids)-1)
	for _, cid := range a.ids {
		if cid == id {
			continue
		}
		specs = append(specs, specFor(cid))
	}
	return specs
}
