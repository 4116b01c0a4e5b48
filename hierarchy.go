package weft

// hierarchy stores the parent/child relation as ID-indexed links outside
// archetype storage, so reparenting never causes a structural move.
// Invariant while both ends are alive: a child's recorded parent is exactly
// the entity whose child list contains it.
type hierarchy struct {
	parents  []Entity   // by child ID; NullEntity if untracked
	children [][]Entity // by parent ID, insertion order
}

// grow extends the link tables to the world's ID capacity.
func (h *hierarchy) grow(capacity int) {
	for len(h.parents) < capacity {
		h.parents = append(h.parents, NullEntity)
	}
	for len(h.children) < capacity {
		h.children = append(h.children, nil)
	}
}

// detach unlinks a despawning entity: it leaves its parent's child list and
// drops its own child list. Its children stay alive and keep the now-dead
// parent handle; generation checks report that handle dead.
func (h *hierarchy) detach(e Entity) {
	if p := h.parents[e.ID]; !p.IsNull() {
		h.children[p.ID] = removeEntityOrdered(h.children[p.ID], e)
	}
	h.parents[e.ID] = NullEntity
	h.children[e.ID] = nil
}

// SetParent makes child a child of parent: child leaves any prior parent's
// child list, is appended to parent's list, and records parent as its own.
// Passing NullEntity as parent detaches the child. Re-parenting to the
// current parent keeps the child's position in the list. The call is a
// no-op when child is dead, child == parent, or parent is a dead non-null
// handle.
func (w *World) SetParent(child, parent Entity) {
	if !w.IsAlive(child) || child == parent {
		return
	}
	if !parent.IsNull() && !w.IsAlive(parent) {
		return
	}
	h := &w.hierarchy
	old := h.parents[child.ID]
	if old == parent {
		return
	}
	if !old.IsNull() {
		h.children[old.ID] = removeEntityOrdered(h.children[old.ID], child)
	}
	h.parents[child.ID] = parent
	if !parent.IsNull() {
		h.children[parent.ID] = append(h.children[parent.ID], child)
	}
}

// Parent returns the entity's recorded parent, or NullEntity if the entity
// is dead or untracked. The returned handle may itself be dead when the
// parent was despawned after the link was made; check IsAlive.
func (w *World) Parent(e Entity) Entity {
	if !w.IsAlive(e) {
		return NullEntity
	}
	return w.hierarchy.parents[e.ID]
}

// Children returns the entity's children in insertion order, or nil if the
// entity is dead or has none. The slice is owned by the World and is
// invalidated by SetParent and Despawn; copy it for long-term use.
func (w *World) Children(e Entity) []Entity {
	if !w.IsAlive(e) {
		return nil
	}
	return w.hierarchy.children[e.ID]
}

// removeEntityOrdered removes the first occurrence of e, preserving order.
func removeEntityOrdered(list []Entity, e Entity) []Entity {
	for i, c := range list {
		if c == e {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
