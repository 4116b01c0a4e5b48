package weft

// archetypeCache is the cached list of archetypes matching one requested
// component set, stamped with the archetype version it was computed at.
// An archetype's membership in a match set never changes once established,
// so the cache only goes stale when a new archetype is created.
type archetypeCache struct {
	arches  []*archetype
	version uint32
}

// matchingArchetypes returns the cache entry for the requested include mask,
// recomputing it only when an archetype has been created since the last
// computation. Hit/miss counters feed the memory tracker.
func (w *World) matchingArchetypes(include bitmask256) *archetypeCache {
	c, ok := w.queryCaches[include]
	if ok && c.version == w.archetypeVersion {
		w.cacheHits++
		return c
	}
	w.cacheMisses++
	if !ok {
		c = &archetypeCache{}
		w.queryCaches[include] = c
	}
	c.arches = c.arches[:0]
	for _, a := range w.archetypes {
		if a.mask.contains(include) {
			c.arches = append(c.arches, a)
		}
	}
	c.version = w.archetypeVersion
	return c
}

// Filter is a lazy iterator over every entity whose archetype signature is a
// superset of {T}. Matching archetypes are visited in creation order and
// rows in storage order.
//
// Iteration reads live storage: bounds are re-checked on every step, so a
// structural mutation of a matched archetype mid-iteration is never unsafe,
// but it leaves the remaining sequence unspecified. Snapshot with Entities
// when mutating while walking.
type Filter[T any] struct {
	world   *World
	cache   *archetypeCache
	cur     *archetype
	include bitmask256
	archIdx int
	row     int
	curEnt  Entity
	id1     ComponentID
}

// NewFilter creates a filter over all entities possessing at least the
// component T, registering T if needed. The matching archetype set is cached
// per component set and shared between filters.
func NewFilter[T any](w *World) *Filter[T] {
	id := RegisterComponent[T]()
	var m bitmask256
	m.set(id)
	f := &Filter[T]{world: w, include: m, id1: id}
	f.Reset()
	return f
}

// Reset rewinds the iterator and refreshes the matching-archetype set if new
// archetypes were created since the filter last looked.
func (f *Filter[T]) Reset() {
	f.cache = f.world.matchingArchetypes(f.include)
	f.archIdx = 0
	f.row = -1
	f.cur = nil
}

// Next advances to the next matching entity. It must return true before
// Entity or Get are called.
//
//	q := weft.NewFilter[Position](world)
//	for q.Next() {
//	    q.Get().X += 1
//	}
func (f *Filter[T]) Next() bool {
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

// Entity returns the current entity. Valid only after Next reported true.
func (f *Filter[T]) Entity() Entity {
	return f.curEnt
}

// Get returns a pointer to the current entity's T component. Valid only
// after Next reported true, and only until the next structural mutation.
func (f *Filter[T]) Get() *T {
	return (*T)(f.cur.componentPtr(f.id1, f.row))
}

// Entities collects all currently matching entities into a fresh slice, in
// iteration order. Safe to hold across mutations.
func (f *Filter[T]) Entities() []Entity {
	f.Reset()
	var out []Entity
	for _, a := range f.cache.arches {
		out = append(out, a.entities...)
	}
	return out
}
