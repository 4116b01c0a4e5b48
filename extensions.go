package weft

import "reflect"

// Extensions holds one optional service instance per distinct interface type:
// the cross-cutting dependencies (input, renderer, clipboard) that live
// outside the component model. Slots are last-writer-wins and have no
// lifecycle hooks; callers dispose replaced or removed instances themselves.
// Instances live for the World's lifetime unless replaced or removed.
type Extensions struct {
	items   []any
	types   map[reflect.Type]int
	freeIDs []int
}

func (x *Extensions) set(t reflect.Type, impl any) {
	if x.types == nil {
		x.types = make(map[reflect.Type]int)
	}
	if id, ok := x.types[t]; ok {
		x.items[id] = impl
		return
	}
	var id int
	if n := len(x.freeIDs); n > 0 {
		id = x.freeIDs[n-1]
		x.freeIDs = x.freeIDs[:n-1]
		x.items[id] = impl
	} else {
		x.items = append(x.items, impl)
		id = len(x.items) - 1
	}
	x.types[t] = id
}

func (x *Extensions) get(t reflect.Type) (any, bool) {
	id, ok := x.types[t]
	if !ok {
		return nil, false
	}
	return x.items[id], true
}

func (x *Extensions) remove(t reflect.Type) {
	id, ok := x.types[t]
	if !ok {
		return
	}
	delete(x.types, t)
	x.items[id] = nil
	x.freeIDs = append(x.freeIDs, id)
}

// SetExtension registers impl as the world's instance for the interface type
// I, replacing any previous instance (last writer wins).
func SetExtension[I any](w *World, impl I) {
	w.extensions.set(reflect.TypeOf((*I)(nil)).Elem(), impl)
}

// TryGetExtension returns the instance registered for the interface type I,
// and whether one is present.
func TryGetExtension[I any](w *World) (I, bool) {
	v, ok := w.extensions.get(reflect.TypeOf((*I)(nil)).Elem())
	if !ok || v == nil {
		var zero I
		return zero, false
	}
	return v.(I), true
}

// RemoveExtension clears the slot for the interface type I. Removing an
// empty slot is a no-op.
func RemoveExtension[I any](w *World) {
	w.extensions.remove(reflect.TypeOf((*I)(nil)).Elem())
}
