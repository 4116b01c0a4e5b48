package weft

import (
	"reflect"
	"slices"
	"unsafe"
)

// archetype holds storage for one unique component-set signature: one dense
// byte column per component type plus a dense array of owning entities.
// Invariant: every column holds exactly len(entities) rows, and row i across
// all columns belongs to entities[i].
type archetype struct {
	slots    [MaxComponentTypes]int16 // component ID -> column index, -1 if absent
	ids      []ComponentID            // sorted component IDs in this archetype
	columns  [][]byte                 // parallel to ids; row r spans [r*size, (r+1)*size)
	entities []Entity                 // owning entity per row
	mask     bitmask256               // which component bits this archetype uses
	index    int                      // position in World.archetypes (creation order)
}

// zeroSizedBase backs pointers to zero-size components such as tag structs.
var zeroSizedBase struct{}

// extendColumn lengthens a column by n bytes, reallocating if needed.
func extendColumn(col []byte, n int) []byte {
	col = slices.Grow(col, n)
	return col[:len(col)+n]
}

func newArchetype(index int, mask bitmask256, specs []compSpec) *archetype {
	a := &archetype{
		mask:    mask,
		index:   index,
		ids:     make([]ComponentID, len(specs)),
		columns: make([][]byte, len(specs)),
	}
	for i := range a.slots {
		a.slots[i] = -1
	}
	for i, sp := range specs {
		a.ids[i] = sp.id
		a.slots[sp.id] = int16(i)
	}
	return a
}

// rows returns the number of entities stored in this archetype.
func (a *archetype) rows() int {
	return len(a.entities)
}

// rowBytes returns the per-row byte footprint across all columns.
func (a *archetype) rowBytes() uintptr {
	var total uintptr
	for _, id := range a.ids {
		total += componentSizes[id]
	}
	return total
}

// appendRow adds a zeroed row owned by e and returns its index.
func (a *archetype) appendRow(e Entity) int {
	row := len(a.entities)
	a.entities = append(a.entities, e)
	for i, id := range a.ids {
		size := int(componentSizes[id])
		a.columns[i] = extendColumn(a.columns[i], size)
		clear(a.columns[i][row*size:])
	}
	return row
}

// swapRemove removes row by overwriting it with the last row and shrinking
// every column by one. It returns the entity that moved into row so the
// caller can fix its location-table entry in the same operation, or
// NullEntity if the removed row was the last one.
func (a *archetype) swapRemove(row int) Entity {
	last := len(a.entities) - 1
	moved := NullEntity
	if row < last {
		moved = a.entities[last]
		a.entities[row] = moved
		for i, id := range a.ids {
			size := int(componentSizes[id])
			if size == 0 {
				continue
			}
			col := a.columns[i]
			copy(col[row*size:(row+1)*size], col[last*size:(last+1)*size])
		}
	}
	a.entities = a.entities[:last]
	for i, id := range a.ids {
		size := int(componentSizes[id])
		a.columns[i] = a.columns[i][:last*size]
	}
	return moved
}

// componentPtr returns a pointer to the component with the given id at row.
// The caller must have checked membership via the mask; the pointer stays
// valid until the next structural mutation of this archetype.
func (a *archetype) componentPtr(id ComponentID, row int) unsafe.Pointer {
	size := componentSizes[id]
	if size == 0 {
		return unsafe.Pointer(&zeroSizedBase)
	}
	col := a.columns[a.slots[id]]
	return unsafe.Pointer(&col[uintptr(row)*size])
}

// copyRowTo copies every component both archetypes share from row srcRow of
// a into row dstRow of dst. Components absent from dst are dropped.
func (a *archetype) copyRowTo(dst *archetype, srcRow, dstRow int) {
	for i, id := range a.ids {
		slot := dst.slots[id]
		if slot < 0 {
			continue
		}
		size := int(componentSizes[id])
		if size == 0 {
			continue
		}
		copy(dst.columns[slot][dstRow*size:(dstRow+1)*size],
			a.columns[i][srcRow*size:(srcRow+1)*size])
	}
}

// writeValue stores a reflect-boxed component value into row. Used by the
// spawn builder, which carries heterogeneous values; typed paths write
// through componentPtr instead.
func (a *archetype) writeValue(id ComponentID, row int, v reflect.Value) {
	size := componentSizes[id]
	if size == 0 {
		return
	}
	tmp := reflect.New(v.Type())
	tmp.Elem().Set(v)
	src := unsafe.Slice((*byte)(tmp.UnsafePointer()), size)
	copy(a.columns[a.slots[id]][uintptr(row)*size:], src)
}
