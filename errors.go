package weft

import "errors"

// Sentinel errors for the hard-failure paths. Read-only checks (IsAlive,
// HasComponent) never fail, and mutating calls on a dead entity are silent
// no-ops; only the accessors that would otherwise hand out a pointer into
// reused storage panic, wrapping one of these so a recovering caller can
// classify the failure with errors.Is.
var (
	// ErrEntityNotFound marks access through a dead or never-issued handle.
	ErrEntityNotFound = errors.New("weft: entity not found")
	// ErrMissingComponent marks access to a component the entity's current
	// archetype does not contain.
	ErrMissingComponent = errors.New("weft: missing component")
	// ErrDuplicateRegistration marks a component type re-registered with
	// conflicting metadata. The reflect-keyed registry cannot produce this
	// in normal use; it exists so the contract has an explicit failure mode.
	ErrDuplicateRegistration = errors.New("weft: duplicate component registration")
	// ErrComponentSpaceExhausted marks registration past MaxComponentTypes.
	ErrComponentSpaceExhausted = errors.New("weft: component id space exhausted")
)
