package weft

// bitmask256 represents a set of up to 256 component IDs. It is the identity
// of an archetype: each bit corresponds to a component ID, and a set bit
// means the component is present in the archetype's signature.
type bitmask256 [4]uint64

// set enables the bit corresponding to the given component ID.
func (m *bitmask256) set(bit ComponentID) {
	m[bit>>6] |= 1 << (bit & 63)
}

// unset disables the bit corresponding to the given component ID.
func (m *bitmask256) unset(bit ComponentID) {
	m[bit>>6] &^= 1 << (bit & 63)
}

// contains checks if all the bits set in sub are also set in m. This is how
// an archetype signature is tested for being a superset of a query's
// required component set.
func (m bitmask256) contains(sub bitmask256) bool {
	return (m[0]&sub[0]) == sub[0] &&
		(m[1]&sub[1]) == sub[1] &&
		(m[2]&sub[2]) == sub[2] &&
		(m[3]&sub[3]) == sub[3]
}

// containsBit checks if a specific bit is set in the mask.
func (m bitmask256) containsBit(bit ComponentID) bool {
	return m[bit>>6]&(1<<(bit&63)) != 0
}

// makeMask builds a mask from a slice of component IDs.
func makeMask(ids []ComponentID) bitmask256 {
	var m bitmask256
	for _, id := range ids {
		m.set(id)
	}
	return m
}
