// Package chaos implements the chaos game: repeatedly jumping a fraction of
// the distance from a current point toward a vertex chosen by some rule,
// emitting each point along the way. The four fractal presets wire specific
// polygons, jump distances and vertex selection rules into the engine.
package chaos

import (
	"fmt"
	"io"
	"math/rand"
)

// Play runs the chaos game on a polygon, writing one "x y" line per
// iteration to w. The current point starts at a randomly chosen medial
// point of the polygon, and each step emits the current point before
// jumping, so the line count always equals iterations and the result of the
// final jump is never printed.
//
// next supplies the reference vertex for each jump; the fractal-specific
// selection policy (see sampler.go) lives entirely behind it. rng picks the
// starting medial point, so callers control seeding and tests can be
// deterministic.
func Play(w io.Writer, poly Polygon, iterations int, jumpDistance float64, next func() Point, rng *rand.Rand) {
	medials := MedialPoints(poly)
	current := medials[rng.Intn(len(medials))]

	for i := 0; i < iterations; i++ {
		fmt.Fprintf(w, "%v %v\n", current.X, current.Y)
		reference := next()
		current = current.JumpTowards(reference, jumpDistance)
	}
}
