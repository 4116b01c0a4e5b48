package weft

// The multi-component filters below follow Filter mechanically; only the
// number of component pointers returned by Get differs. For component sets
// wider than four, or sets only known at runtime, use FilterIDs.

// Filter2 iterates entities whose signature contains both T1 and T2.
type Filter2[T1, T2 any] struct {
	world   *World
	cache   *archetypeCache
	cur     *archetype
	include bitmask256
	archIdx int
	row     int
	curEnt  Entity
	id1     ComponentID
	id2     ComponentID
}

// NewFilter2 creates a filter over all entities possessing at least T1 and T2.
func NewFilter2[T1, T2 any](w *World) *Filter2[T1, T2] {
	f := &Filter2[T1, T2]{
		world: w,
		id1:   RegisterComponent[T1](),
		id2:   RegisterComponent[T2](),
	}
	f.include.set(f.id1)
	f.include.set(f.id2)
	f.Reset()
	return f
}

// Reset rewinds the iterator, refreshing the matching set if stale.
func (f *Filter2[T1, T2]) Reset() {
	f.cache = f.world.matchingArchetypes(f.include)
	f.archIdx = 0
	f.row = -1
	f.cur = nil
}

// Next advances to the next matching entity.
func (f *Filter2[T1, T2]) Next() bool {
	if f.cur != nil {
		f.row++
		if f.row < len(f.cur.entities) {
			f.curEnt = f.cur.entities[f.row]
			return true
		}
	}
	for f.archIdx < len(f.cache.arches) {
		a := f.cache.arches[f.archIdx]
		f.archIdx++
		if len(a.entities) == 0 {
			continue
		}
		f.cur = a
		f.row = 0
		f.curEnt = a.entities[0]
		return true
	}
	return false
}

// Entity returns the current entity.
func (f *Filter2[T1, T2]) Entity() Entity {
	return f.curEnt
}

// Get returns pointers to the current entity's T1 and T2 components.
func (f *Filter2[T1, T2]) Get() (*T1, *T2) {
	return (*T1)(f.cur.componentPtr(f.id1, f.row)),
		(*T2)(f.cur.componentPtr(f.id2, f.row))
}

// Entities collects all currently matching entities into a fresh slice.
func (f *Filter2[T1, T2]) Entities() []Entity {
	f.Reset()
	var out []Entity
	for _, a := range f.cache.arches {
		out = append(out, a.entities...)
	}
	return out
}

// Filter3 iterates entities whose signature contains T1, T2 and T3.
type Filter3[T1, T2, T3 any] struct {
	world   *World
	cache   *archetypeCache
	cur     *archetype
	include bitmask256
	archIdx int
	row     int
	curEnt  Entity
	id1     ComponentID
	id2     ComponentID
	id3     ComponentID
}

// NewFilter3 creates a filter over all entities possessing at least T1, T2
// and T3.
func NewFilter3[T1, T2, T3 any](w *World) *Filter3[T1, T2, T3] {
	f := &Filter3[T1, T2, T3]{
		world: w,
		id1:   RegisterComponent[T1](),
		id2:   RegisterComponent[T2](),
		id3:   RegisterComponent[T3](),
	}
	f.include.set(f.id1)
	f.include.set(f.id2)
	f.include.set(f.id3)
	f.Reset()
	return f
}

// Reset rewinds the iterator, refreshing the matching set if stale.
func (f *Filter3[T1, T2, T3]) Reset() {
	f.cache = f.world.matchingArchetypes(f.include)
	f.archIdx = 0
	f.row = -1
	f.cur = nil
}

// Next advances to the next matching entity.
func (f *Filter3[T1, T2, T3]) Next() bool {
	if f.cur != nil {
		f.row++
		if f.row < len(f.cur.entities) {
			f.curEnt = f.cur.entities[f.row]
			return true
		}
	}
	for f.archIdx < len(f.cache.arches) {
		a := f.cache.arches[f.archIdx]
		f.archIdx++
		if len(a.entities) == 0 {
			continue
		}
		f.cur = a
		f.row = 0
		f.curEnt = a.entities[0]
		return true
	}
	return false
}

// Entity returns the current entity.
func (f *Filter3[T1, T2, T3]) Entity() Entity {
	return f.curEnt
}

// Get returns pointers to the current entity's T1, T2 and T3 components.
func (f *Filter3[T1, T2, T3]) Get() (*T1, *T2, *T3) {
	return (*T1)(f.cur.componentPtr(f.id1, f.row)),
		(*T2)(f.cur.componentPtr(f.id2, f.row)),
		(*T3)(f.cur.componentPtr(f.id3, f.row))
}

// Entities collects all currently matching entities into a fresh slice.
func (f *Filter3[T1, T2, T3]) Entities() []Entity {
	f.Reset()
	var out []Entity
	for _, a := range f.cache.arches {
		out = append(out, a.entities...)
	}
	return out
}

// Filter4 iterates entities whose signature contains T1..T4.
type Filter4[T1, T2, T3, T4 any] struct {
	world   *World
	cache   *archetypeCache
	cur     *archetype
	include bitmask256
	archIdx int
	row     int
	curEnt  Entity
	id1     ComponentID
	id2     ComponentID
	id3     ComponentID
	id4     ComponentID
}

// NewFilter4 creates a filter over all entities possessing at least T1..T4.
func NewFilter4[T1, T2, T3, T4 any](w *World) *Filter4[T1, T2, T3, T4] {
	f := &Filter4[T1, T2, T3, T4]{
		world: w,
		id1:   RegisterComponent[T1](),
		id2:   RegisterComponent[T2](),
		id3:   RegisterComponent[T3](),
		id4:   RegisterComponent[T4](),
	}
	f.include.set(f.id1)
	f.include.set(f.id2)
	f.include.set(f.id3)
	f.include.set(f.id4)
	f.Reset()
	return f
}

// Reset rewinds the iterator, refreshing the matching set if stale.
func (f *Filter4[T1, T2, T3, T4]) Reset() {
	f.cache = f.world.matchingArchetypes(f.include)
	f.archIdx = 0
	f.row = -1
	f.cur = nil
}

// Next advances to the next matching entity.
func (f *Filter4[T1, T2, T3, T4]) Next() bool {
	if f.cur != nil {
		f.row++
		if f.row < len(f.cur.entities) {
			f.curEnt = f.cur.entities[f.row]
			return true
		}
	}
	for f.archIdx < len(f.cache.arches) {
		a := f.cache.arches[f.archIdx]
		f.archIdx++
		if len(a.entities) == 0 {
			continue
		}
		f.cur = a
		f.row = 0
		f.curEnt = a.entities[0]
		return true
	}
	return false
}

// Entity returns the current entity.
func (f *Filter4[T1, T2, T3, T4]) Entity() Entity {
	return f.curEnt
}

// Get returns pointers to the current entity's T1..T4 components.
func (f *Filter4[T1, T2, T3, T4]) Get() (*T1, *T2, *T3, *T4) {
	return (*T1)(f.cur.componentPtr(f.id1, f.row)),
		(*T2)(f.cur.componentPtr(f.id2, f.row)),
		(*T3)(f.cur.componentPtr(f.id3, f.row)),
		(*T4)(f.cur.componentPtr(f.id4, f.row))
}

// Entities collects all currently matching entities into a fresh slice.
func (f *Filter4[T1, T2, T3, T4]) Entities() []Entity {
	f.Reset()
	var out []Entity
	for _, a := range f.cache.arches {
		out = append(out, a.entities...)
	}
	return out
}

// FilterIDs iterates entities matching a component set assembled at runtime.
// It trades the typed Get accessors for arbitrary width; pair it with
// GetComponent, or with TryComponentIDFor plus your own column walks.
type FilterIDs struct {
	world   *World
	cache   *archetypeCache
	cur     *archetype
	include bitmask256
	archIdx int
	row     int
	curEnt  Entity
}

// NewFilterIDs creates a filter over all entities whose signature contains
// every given component ID.
func NewFilterIDs(w *World, ids ...ComponentID) *FilterIDs {
	f := &FilterIDs{world: w, include: makeMask(ids)}
	f.Reset()
	return f
}

// Reset rewinds the iterator, refreshing the matching set if stale.
func (f *FilterIDs) Reset() {
	f.cache = f.world.matchingArchetypes(f.include)
	f.archIdx = 0
	f.row = -1
	f.cur = nil
}

// Next advances to the next matching entity.
func (f *FilterIDs) Next() bool {
	if f.cur != nil {
		f.row++
		if f.row < len(f.cur.entities) {
			f.curEnt = f.cur.entities[f.row]
			return true
		}
	}
	for f.archIdx < len(f.cache.arches) {
		a := f.cache.arches[f.archIdx]
		f.archIdx++
		if len(a.entities) == 0 {
			continue
		}
		f.cur = a
		f.row = 0
		f.curEnt = a.entities[0]
		return true
	}
	return false
}

// Entity returns the current entity.
func (f *FilterIDs) Entity() Entity {
	return f.curEnt
}

// Entities collects all currently matching entities into a fresh slice.
func (f *FilterIDs) Entities() []Entity {
	f.Reset()
	var out []Entity
	for _, a := range f.cache.arches {
		out = append(out, a.entities...)
	}
	return out
}
