// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/softbind/weft"
)

type position struct {
	X, Y float64
}

type velocity struct {
	VX, VY float64
}

func main() {
	rounds := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run churns entity creation and removal through the structural-mutation
// paths: spawn, component add, query, despawn.
func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := weft.NewWorld(numEntities)
		query := weft.NewFilter2[position, velocity](w)

		for it := 0; it < iters; it++ {
			ents := w.CreateEntities(numEntities)
			for _, e := range ents {
				weft.AddComponent(w, e, position{X: 1, Y: 2})
				weft.AddComponent(w, e, velocity{VX: 3, VY: 4})
			}
			query.Reset()
			for query.Next() {
				pos, vel := query.Get()
				pos.X += vel.VX
				pos.Y += vel.VY
			}
			w.RemoveEntities(ents)
		}
	}
}
