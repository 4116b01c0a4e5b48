package weft

import "time"

// System is a long-lived unit of logic driven by the World every frame.
type System interface {
	// Initialize is called exactly once, before the system's first Update.
	// Event subscriptions a system needs are typically taken here.
	Initialize(w *World)
	// Update is called every frame, in registration order.
	Update(dt time.Duration)
	// Dispose releases everything the system owns, including event
	// subscriptions taken during Initialize. A system's methods must be
	// safe no-ops after its Dispose returns.
	Dispose()
}

// systemEntry tracks one registered system and whether it has been
// initialized yet.
type systemEntry struct {
	system      System
	initialized bool
}

// AddSystem appends a system to the world's ordered registry. Systems added
// after updates have begun are initialized at the start of the next Update.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, &systemEntry{system: s})
}

// Update initializes any newly added systems, then calls Update on every
// system in registration order. A no-op after Dispose.
func (w *World) Update(dt time.Duration) {
	if w.disposed {
		return
	}
	for _, entry := range w.systems {
		if !entry.initialized {
			entry.initialized = true
			entry.system.Initialize(w)
		}
	}
	for _, entry := range w.systems {
		entry.system.Update(dt)
	}
}

// Dispose disposes every system in reverse registration order and drops the
// registry. Idempotent; subsequent Update calls do nothing.
func (w *World) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true
	for i := len(w.systems) - 1; i >= 0; i-- {
		w.systems[i].system.Dispose()
	}
	w.systems = nil
}
