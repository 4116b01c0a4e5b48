package weft_test

import (
	"errors"
	"testing"

	"github.com/softbind/weft"
)

// --- Test Components ---
type Position struct{ X, Y float32 }
type Velocity struct{ VX, VY float32 }
type Health struct{ Current, Max int }
type Tag struct{}

func newTestWorld(_ *testing.T) *weft.World {
	weft.ResetRegistry()
	return weft.NewWorld(16)
}

func mustPanicWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v, got none", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic wrapping %v, got %v", target, r)
		}
	}()
	fn()
}

func TestSpawnAndIsAlive(t *testing.T) {
	world := newTestWorld(t)
	e := world.Spawn().With(Position{X: 1, Y: 2}).Build()

	if !world.IsAlive(e) {
		t.Fatal("freshly built entity should be alive")
	}
	if e.Generation != 1 {
		t.Errorf("expected first generation 1, got %d", e.Generation)
	}
	if world.IsAlive(weft.NullEntity) {
		t.Error("NullEntity must never be alive")
	}
	p := weft.GetComponent[Position](world, e)
	if p.X != 1 || p.Y != 2 {
		t.Errorf("component data incorrect, got %+v", p)
	}
}

func TestGenerationsPreventAliasing(t *testing.T) {
	world := newTestWorld(t)
	e := world.Spawn().With(Position{X: 7}).Build()
	world.Despawn(e)

	if world.IsAlive(e) {
		t.Fatal("despawned handle still reports alive")
	}
	// Double despawn is an ignored no-op.
	world.Despawn(e)

	reborn := world.Spawn().With(Position{X: 9}).Build()
	if reborn.ID != e.ID {
		t.Fatalf("expected freed ID %d to be reused, got %d", e.ID, reborn.ID)
	}
	if reborn.Generation <= e.Generation {
		t.Fatalf("reused ID must carry a strictly greater generation: old %d new %d",
			e.Generation, reborn.Generation)
	}
	if world.IsAlive(e) {
		t.Error("stale handle reports alive after its ID was reused")
	}
	if !world.IsAlive(reborn) {
		t.Error("reborn entity should be alive")
	}
}

// Freed IDs are reused in LIFO order: the most recently despawned ID is the
// next one issued.
func TestFreeIDReuseIsLIFO(t *testing.T) {
	world := newTestWorld(t)
	a := world.CreateEntity()
	world.CreateEntity()
	c := world.CreateEntity()

	world.Despawn(a)
	world.Despawn(c)

	first := world.CreateEntity()
	second := world.CreateEntity()
	if first.ID != c.ID {
		t.Errorf("expected last-freed ID %d first, got %d", c.ID, first.ID)
	}
	if second.ID != a.ID {
		t.Errorf("expected ID %d second, got %d", a.ID, second.ID)
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	world := newTestWorld(t)
	e := world.Spawn().
		With(Position{X: 3, Y: 4}).
		With(Health{Current: 50, Max: 100}).
		Build()

	weft.AddComponent(world, e, Velocity{VX: 1, VY: 2})
	if !weft.HasComponent[Velocity](world, e) {
		t.Fatal("velocity missing after add")
	}
	weft.RemoveComponent[Velocity](world, e)

	if weft.HasComponent[Velocity](world, e) {
		t.Error("velocity still present after remove")
	}
	p := weft.GetComponent[Position](world, e)
	if p.X != 3 || p.Y != 4 {
		t.Errorf("position corrupted by round trip: %+v", p)
	}
	h := weft.GetComponent[Health](world, e)
	if h.Current != 50 || h.Max != 100 {
		t.Errorf("health corrupted by round trip: %+v", h)
	}
	// Removing an absent component is a no-op.
	weft.RemoveComponent[Velocity](world, e)
}

func TestAddComponentOverwritesInPlace(t *testing.T) {
	world := newTestWorld(t)
	e := world.Spawn().With(Position{X: 1}).Build()

	weft.AddComponent(world, e, Position{X: 42, Y: 43})
	p := weft.GetComponent[Position](world, e)
	if p.X != 42 || p.Y != 43 {
		t.Errorf("expected overwrite {42 43}, got %+v", p)
	}
}

func TestDespawnSwapRemoveKeepsSurvivors(t *testing.T) {
	world := newTestWorld(t)
	var ents []weft.Entity
	for i := 1; i <= 3; i++ {
		ents = append(ents, world.Spawn().With(Health{Current: i}).Build())
	}

	world.Despawn(ents[1])

	for _, i := range []int{0, 2} {
		if !world.IsAlive(ents[i]) {
			t.Fatalf("survivor %d died", i)
		}
		h := weft.GetComponent[Health](world, ents[i])
		if h.Current != i+1 {
			t.Errorf("survivor %d value corrupted: got %d", i, h.Current)
		}
	}
}

func TestGetComponentFailsLoudly(t *testing.T) {
	world := newTestWorld(t)
	e := world.Spawn().With(Position{}).Build()

	t.Run("DeadHandle", func(t *testing.T) {
		dead := world.Spawn().With(Position{}).Build()
		world.Despawn(dead)
		mustPanicWith(t, weft.ErrEntityNotFound, func() {
			weft.GetComponent[Position](world, dead)
		})
	})

	t.Run("MissingComponent", func(t *testing.T) {
		mustPanicWith(t, weft.ErrMissingComponent, func() {
			weft.GetComponent[Velocity](world, e)
		})
	})
}

func TestDeadEntityAccessIsSoftOutsideGet(t *testing.T) {
	world := newTestWorld(t)
	e := world.Spawn().With(Position{X: 1}).Build()
	world.Despawn(e)

	// None of these may panic or have side effects.
	weft.AddComponent(world, e, Velocity{VX: 1})
	weft.RemoveComponent[Position](world, e)
	world.Despawn(e)
	world.SetParent(e, weft.NullEntity)

	if weft.HasComponent[Position](world, e) {
		t.Error("HasComponent true for dead handle")
	}
	if _, ok := weft.TryGetComponent[Position](world, e); ok {
		t.Error("TryGetComponent ok for dead handle")
	}
	if got := world.MemoryStats().EntitiesActive; got != 0 {
		t.Errorf("dead-entity mutations leaked storage: %d active", got)
	}
}

func TestBuilderDeduplicatesComponentTypes(t *testing.T) {
	world := newTestWorld(t)
	e := world.Spawn().
		With(Position{X: 1}).
		With(Position{X: 2}).
		Build()

	p := weft.GetComponent[Position](world, e)
	if p.X != 2 {
		t.Errorf("expected last staged value to win, got %+v", p)
	}
}

func TestZeroSizeComponent(t *testing.T) {
	world := newTestWorld(t)
	e := world.Spawn().With(Tag{}).With(Position{X: 5}).Build()

	if !weft.HasComponent[Tag](world, e) {
		t.Fatal("tag missing")
	}
	q := weft.NewFilter[Tag](world)
	count := 0
	for q.Next() {
		count++
	}
	if count != 1 {
		t.Errorf("expected 1 tagged entity, got %d", count)
	}
	weft.RemoveComponent[Tag](world, e)
	if weft.HasComponent[Tag](world, e) {
		t.Error("tag still present after remove")
	}
	if weft.GetComponent[Position](world, e).X != 5 {
		t.Error("position corrupted by tag removal")
	}
}

func TestRegistryIsIdempotent(t *testing.T) {
	weft.ResetRegistry()
	id1 := weft.RegisterComponent[Position]()
	id2 := weft.RegisterComponent[Position]()
	if id1 != id2 {
		t.Fatalf("re-registration changed the ID: %d vs %d", id1, id2)
	}
	if got := weft.ComponentIDFor[Position](); got != id1 {
		t.Errorf("ComponentIDFor disagrees with registration: %d vs %d", got, id1)
	}
	if _, ok := weft.TryComponentIDFor[Velocity](); ok {
		t.Error("TryComponentIDFor found an unregistered type")
	}
}

func TestClearEntities(t *testing.T) {
	world := newTestWorld(t)
	ents := world.CreateEntities(10)
	weft.AddComponent(world, ents[0], Position{X: 1})

	world.ClearEntities()

	for _, e := range ents {
		if world.IsAlive(e) {
			t.Fatalf("entity %d alive after clear", e.ID)
		}
	}
	if got := world.MemoryStats().EntitiesActive; got != 0 {
		t.Errorf("expected 0 active after clear, got %d", got)
	}
	// Storage stays usable.
	e := world.Spawn().With(Position{X: 2}).Build()
	if !world.IsAlive(e) {
		t.Error("spawn after clear failed")
	}
}

func TestCreateEntitiesBatch(t *testing.T) {
	world := newTestWorld(t)
	ents := world.CreateEntities(40) // forces capacity growth past 16
	if len(ents) != 40 {
		t.Fatalf("expected 40 entities, got %d", len(ents))
	}
	seen := make(map[uint32]bool)
	for _, e := range ents {
		if !world.IsAlive(e) {
			t.Fatalf("batch entity %d not alive", e.ID)
		}
		if seen[e.ID] {
			t.Fatalf("duplicate ID %d issued", e.ID)
		}
		seen[e.ID] = true
	}
	world.RemoveEntities(ents)
	if got := world.MemoryStats().EntitiesActive; got != 0 {
		t.Errorf("expected 0 active after batch remove, got %d", got)
	}
}
