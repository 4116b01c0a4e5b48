package weft_test

import (
	"testing"
	"time"

	"github.com/softbind/weft"
)

func BenchmarkSpawnBuild(b *testing.B) {
	weft.ResetRegistry()
	world := weft.NewWorld(b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Spawn().With(Position{X: 1}).With(Velocity{VX: 2}).Build()
	}
}

func BenchmarkCreateEntity(b *testing.B) {
	weft.ResetRegistry()
	world := weft.NewWorld(b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.CreateEntity()
	}
}

func BenchmarkAddRemoveComponent(b *testing.B) {
	weft.ResetRegistry()
	world := weft.NewWorld(1)
	e := world.Spawn().With(Position{}).Build()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		weft.AddComponent(world, e, Velocity{VX: 1})
		weft.RemoveComponent[Velocity](world, e)
	}
}

func BenchmarkGetComponent(b *testing.B) {
	weft.ResetRegistry()
	world := weft.NewWorld(1)
	e := world.Spawn().With(Position{X: 1}).Build()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = weft.GetComponent[Position](world, e)
	}
}

func BenchmarkFilterIteration(b *testing.B) {
	weft.ResetRegistry()
	world := weft.NewWorld(10000)
	for i := 0; i < 10000; i++ {
		world.Spawn().With(Position{X: 1}).With(Velocity{VX: 2}).Build()
	}
	q := weft.NewFilter2[Position, Velocity](world)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Reset()
		for q.Next() {
			pos, vel := q.Get()
			pos.X += vel.VX
		}
	}
}

func BenchmarkPublish(b *testing.B) {
	bus := &weft.EventBus{}
	sink := 0
	for i := 0; i < 8; i++ {
		weft.Subscribe(bus, func(e TestEvent) { sink += e.Value })
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		weft.Publish(bus, TestEvent{Value: 1})
	}
}

func BenchmarkWorldUpdate(b *testing.B) {
	weft.ResetRegistry()
	world := weft.NewWorld(1024)
	world.AddSystem(&benchSystem{world: world})
	world.Update(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.Update(16 * time.Millisecond)
	}
}

type benchSystem struct {
	world *weft.World
	q     *weft.Filter[Position]
}

func (s *benchSystem) Initialize(w *weft.World) {
	for i := 0; i < 1024; i++ {
		w.Spawn().With(Position{}).Build()
	}
	s.q = weft.NewFilter[Position](w)
}

func (s *benchSystem) Update(_ time.Duration) {
	s.q.Reset()
	for s.q.Next() {
		s.q.Get().X++
	}
}

func (s *benchSystem) Dispose() {}
