package weft

// World contains all entity, component and relation storage, plus the event
// bus, extension slots and system scheduler that widget systems consume.
// A World is not safe for concurrent use.
type World struct {
	metas            []entityMeta       // location table + generations, indexed by entity ID
	freeIDs          []uint32           // stack of recycled entity IDs (LIFO reuse)
	archetypes       []*archetype       // all archetypes, in creation order
	maskToArchIndex  map[bitmask256]int // lookup mask -> archetype index
	queryCaches      map[bitmask256]*archetypeCache
	hierarchy        hierarchy
	bus              EventBus
	extensions       Extensions
	systems          []*systemEntry
	capacity         int
	archetypeVersion uint32 // incremented when a new archetype is created
	entitiesIssued   uint64 // handles ever issued, cumulative
	entitiesRecycled uint64 // ids ever returned to the free list, cumulative
	cacheHits        uint64
	cacheMisses      uint64
	disposed         bool
}

// NewWorld creates and initializes a new World with a specified initial
// capacity for entities. Memory for the entity metadata, free-ID list and
// hierarchy links is pre-allocated; the capacity grows automatically when
// exceeded.
func NewWorld(initialCapacity int) *World {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	w := &World{
		capacity:        initialCapacity,
		freeIDs:         make([]uint32, initialCapacity),
		metas:           make([]entityMeta, initialCapacity),
		archetypes:      make([]*archetype, 0, 16),
		maskToArchIndex: make(map[bitmask256]int),
		queryCaches:     make(map[bitmask256]*archetypeCache),
	}
	for i := range w.freeIDs {
		// fill freeIDs with [cap-1 .. 0] so IDs are issued in ascending order
		w.freeIDs[i] = uint32(initialCapacity - 1 - i)
	}
	for i := range w.metas {
		w.metas[i].archetypeIndex = -1
		w.metas[i].row = -1
	}
	w.hierarchy.grow(initialCapacity)
	// Pre-create the empty archetype
	w.getOrCreateArchetype(bitmask256{}, nil)
	return w
}

// IsAlive checks whether the entity handle is currently alive. A handle is
// alive iff the stored generation for its ID equals the handle's generation;
// a freed handle never reports alive again, even after its ID is reused,
// because reallocation carries a strictly greater generation.
func (w *World) IsAlive(e Entity) bool {
	if int(e.ID) >= len(w.metas) {
		return false
	}
	meta := w.metas[e.ID]
	return meta.archetypeIndex >= 0 && meta.generation == e.Generation
}

// CreateEntity creates a new entity with no components.
func (w *World) CreateEntity() Entity {
	return w.spawnInto(w.archetypes[w.maskToArchIndex[bitmask256{}]])
}

// Despawn removes the entity's row from its archetype (swap-remove), detaches
// its hierarchy links, and frees the ID with a generation increment. Freed
// IDs are reused in LIFO order. Despawning a dead handle is a no-op.
//
// Despawning a parent does not despawn its children: they remain alive with
// a dangling parent handle that IsAlive reports dead. Callers needing a
// cascade walk Children themselves first.
func (w *World) Despawn(e Entity) {
	if !w.IsAlive(e) {
		return
	}
	w.hierarchy.detach(e)
	meta := &w.metas[e.ID]
	a := w.archetypes[meta.archetypeIndex]
	moved := a.swapRemove(int(meta.row))
	if !moved.IsNull() {
		w.metas[moved.ID].row = meta.row
	}
	meta.archetypeIndex = -1
	meta.row = -1
	meta.generation++
	w.freeIDs = append(w.freeIDs, e.ID)
	w.entitiesRecycled++
}

// getOrCreateArchetype returns the archetype for the given mask, creating it
// on first use of the signature. Archetypes are never destroyed.
func (w *World) getOrCreateArchetype(mask bitmask256, specs []compSpec) *archetype {
	if idx, ok := w.maskToArchIndex[mask]; ok {
		return w.archetypes[idx]
	}
	a := newArchetype(len(w.archetypes), mask, specs)
	w.archetypes = append(w.archetypes, a)
	w.maskToArchIndex[mask] = a.index
	w.archetypeVersion++
	return a
}

// spawnInto pops a free ID (or grows the ID space) and appends a zeroed row
// for it in the given archetype. Generations start at 1.
func (w *World) spawnInto(a *archetype) Entity {
	if len(w.freeIDs) == 0 {
		w.expand(1)
	}
	last := len(w.freeIDs) - 1
	id := w.freeIDs[last]
	w.freeIDs = w.freeIDs[:last]
	meta := &w.metas[id]
	if meta.generation == 0 {
		meta.generation = 1
	}
	e := Entity{ID: id, Generation: meta.generation}
	row := a.appendRow(e)
	meta.archetypeIndex = int32(a.index)
	meta.row = int32(row)
	w.entitiesIssued++
	return e
}

// moveEntity relocates a live entity's row from its current archetype to
// target, copying every shared component value across and fixing up the
// location table for both the moved entity and the row swapped into its old
// slot. The cost is proportional to the number of components on the entity.
func (w *World) moveEntity(meta *entityMeta, target *archetype) {
	src := w.archetypes[meta.archetypeIndex]
	srcRow := int(meta.row)
	e := src.entities[srcRow]
	dstRow := target.appendRow(e)
	src.copyRowTo(target, srcRow, dstRow)
	moved := src.swapRemove(srcRow)
	if !moved.IsNull() {
		w.metas[moved.ID].row = meta.row
	}
	meta.archetypeIndex = int32(target.index)
	meta.row = int32(dstRow)
}

// expand automatically increases ID capacity when the free list runs dry.
func (w *World) expand(additional int) {
	oldCap := w.capacity
	newCap := oldCap * 2
	if newCap == 0 {
		newCap = 1
	}
	if newCap < oldCap+additional {
		newCap = oldCap + additional
	}
	delta := newCap - oldCap
	newMetas := make([]entityMeta, delta)
	for i := range newMetas {
		newMetas[i].archetypeIndex = -1
		newMetas[i].row = -1
	}
	w.metas = append(w.metas, newMetas...)
	newFree := make([]uint32, delta)
	for i := 0; i < delta; i++ {
		newFree[i] = uint32(newCap - 1 - i)
	}
	w.freeIDs = append(w.freeIDs, newFree...)
	w.hierarchy.grow(newCap)
	w.capacity = newCap
}

// archetypeOf returns the archetype a live entity currently occupies.
func (w *World) archetypeOf(e Entity) *archetype {
	return w.archetypes[w.metas[e.ID].archetypeIndex]
}
