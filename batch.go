package weft

// CreateEntities creates count entities with no components and returns their
// handles. Bulk counterpart of CreateEntity.
func (w *World) CreateEntities(count int) []Entity {
	if count <= 0 {
		return nil
	}
	a := w.archetypes[w.maskToArchIndex[bitmask256{}]]
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = w.spawnInto(a)
	}
	return ents
}

// RemoveEntities despawns a batch of entities. Dead handles are skipped.
func (w *World) RemoveEntities(ents []Entity) {
	for _, e := range ents {
		w.Despawn(e)
	}
}

// ClearEntities despawns every live entity, recycling all IDs and emptying
// every archetype without deallocating column memory. Hierarchy links are
// dropped; registered component types, archetypes, query caches, extensions
// and systems are kept.
func (w *World) ClearEntities() {
	for id := range w.metas {
		meta := &w.metas[id]
		if meta.archetypeIndex < 0 {
			continue
		}
		meta.archetypeIndex = -1
		meta.row = -1
		meta.generation++
		w.entitiesRecycled++
	}
	w.freeIDs = w.freeIDs[:0]
	for i := w.capacity - 1; i >= 0; i-- {
		w.freeIDs = append(w.freeIDs, uint32(i))
	}
	for _, a := range w.archetypes {
		a.entities = a.entities[:0]
		for i := range a.columns {
			a.columns[i] = a.columns[i][:0]
		}
	}
	for i := range w.hierarchy.parents {
		w.hierarchy.parents[i] = NullEntity
		w.hierarchy.children[i] = nil
	}
}
