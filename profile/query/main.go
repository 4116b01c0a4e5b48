// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.pprof

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

type size struct {
	W, H float64
}

func main() {
	rounds := 50
	iters := 10000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := weft.NewWorld(numEntities)
		for n := 0; n < numEntities; n++ {
			w.Spawn().
				With(position{X: 1, Y: 2}).
				With(velocity{VX: 3, VY: 4}).
				With(size{W: 5, H: 6}).
				Build()
		}
		query := weft.NewFilter2[position, velocity](w)

		for it := 0; it < iters; it++ {
			query.Reset()
			for query.Next() {
				pos, vel := query.Get()
				pos.X += vel.VX
				pos.Y += vel.VY
			}
		}
	}
}
