package weft

import "reflect"

// MaxEventTypes defines the maximum number of unique event types that can be
// keyed through one EventBus. This value is fixed at 256.
const MaxEventTypes = 256

// EventBus provides a type-keyed, synchronous publish/subscribe channel for
// decoupled communication between systems. Handlers for an event type run in
// subscription order, on the publisher's goroutine, and Publish does not
// return until every handler has run.
//
// Dispatch iterates a stable snapshot: handlers subscribed during a Publish
// are not invoked for that same Publish, and handlers disposed during
// dispatch are skipped for the remainder of it. Publish may be called from
// inside a handler; nested dispatches for the same or different event types
// do not corrupt the subscriber lists.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]*Subscription
	pendingSweep    []uint8
	nextEventTypeID uint16
	dispatchDepth   int
}

// Subscription is the revocable handle returned by Subscribe.
type Subscription struct {
	bus      *EventBus
	handler  any // func(T)
	typeID   uint8
	disposed bool
}

// Dispose removes exactly this handler from the bus. It is idempotent, and
// safe to call from inside a dispatch that is currently invoking it.
func (s *Subscription) Dispose() {
	if s == nil || s.disposed {
		return
	}
	s.disposed = true
	bus := s.bus
	if bus.dispatchDepth > 0 {
		// compacting now would shift entries under an in-progress snapshot
		bus.pendingSweep = append(bus.pendingSweep, s.typeID)
		return
	}
	bus.sweep(s.typeID)
}

// Subscribe registers a handler to be called whenever an event of type T is
// published. Handlers run in subscription order. The returned Subscription
// revokes exactly this handler.
func Subscribe[T any](bus *EventBus, handler func(T)) *Subscription {
	t := reflect.TypeOf((*T)(nil)).Elem()
	id := bus.getEventTypeID(t)
	s := &Subscription{bus: bus, typeID: id, handler: handler}
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]*Subscription, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], s)
	return s
}

// Publish broadcasts an event of type T to every handler currently
// subscribed for it, synchronously and in subscription order.
func Publish[T any](bus *EventBus, event T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	id, ok := bus.eventTypeMap[t]
	if !ok {
		return
	}
	// the captured slice header is the snapshot: late subscribers land
	// beyond its length, disposals only mark the flag
	hs := bus.handlers[id]
	bus.dispatchDepth++
	for _, s := range hs {
		if s.disposed {
			continue
		}
		s.handler.(func(T))(event)
	}
	bus.dispatchDepth--
	if bus.dispatchDepth == 0 && len(bus.pendingSweep) > 0 {
		for _, tid := range bus.pendingSweep {
			bus.sweep(tid)
		}
		bus.pendingSweep = bus.pendingSweep[:0]
	}
}

// sweep compacts the handler list for one event type, dropping disposed
// entries. Never called while a dispatch is in progress.
func (bus *EventBus) sweep(id uint8) {
	hs := bus.handlers[id]
	kept := hs[:0]
	for _, s := range hs {
		if !s.disposed {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(hs); i++ {
		hs[i] = nil
	}
	bus.handlers[id] = kept
}

// getEventTypeID retrieves or assigns the ID for an event type.
func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if int(bus.nextEventTypeID) >= MaxEventTypes {
		panic("weft: too many event types")
	}
	id := uint8(bus.nextEventTypeID)
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}

// Events returns the world's event bus.
func (w *World) Events() *EventBus {
	return &w.bus
}
