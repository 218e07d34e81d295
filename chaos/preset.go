package chaos

import (
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Side length shared by every preset shape.
const shapeSide = 100.0

// A Preset is a fully parameterized chaos game: the polygon that anchors the
// starting point, the jump distance, and a factory for the vertex selection
// policy. The factory takes the run's rng so that a fresh sampler (with
// fresh rejection state) is built per run.
type Preset struct {
	Polygon      Polygon
	JumpDistance float64
	Sampler      func(rng *rand.Rand) Sampler
}

// Play runs the preset's chaos game with the supplied rng, which drives
// both the starting point choice and the vertex sampler.
func (p Preset) Play(w io.Writer, iterations int, rng *rand.Rand) {
	Play(w, p.Polygon, iterations, p.JumpDistance, p.Sampler(rng).Next, rng)
}

var presets = newPresets()

func newPresets() map[string]Preset {
	triangle := Triangle{
		A: Point{0, 0},
		B: Point{shapeSide, 0},
		C: Point{shapeSide / 2, shapeSide},
	}
	square := NewSquare(shapeSide)
	corners := square.Vertices()

	// The vicsek reference set is the square's corners plus its center.
	center := corners[0].Midpoint(corners[2])
	vicsekCandidates := append(append([]Point{}, corners...), center)

	return map[string]Preset{
		"sierpinski-triangle": {
			Polygon:      triangle,
			JumpDistance: 0.5,
			Sampler: func(rng *rand.Rand) Sampler {
				return NewUniformSampler(triangle.Vertices(), rng)
			},
		},
		"square-one": {
			Polygon:      square,
			JumpDistance: 0.5,
			Sampler: func(rng *rand.Rand) Sampler {
				return NewNoRepeatSampler(corners, rng)
			},
		},
		"square-two": {
			Polygon:      square,
			JumpDistance: 0.5,
			Sampler: func(rng *rand.Rand) Sampler {
				return NewSharedAxisSampler(corners, rng)
			},
		},
		// The historical vicsek rule tracked a previous vertex but never
		// rejected a draw, so it reduces to independent uniform sampling;
		// implemented as such rather than guessing at a rejection rule.
		"vicsek": {
			Polygon:      square,
			JumpDistance: 0.66666666667,
			Sampler: func(rng *rand.Rand) Sampler {
				return NewUniformSampler(vicsekCandidates, rng)
			},
		},
	}
}

// Run plays the named preset for the given number of iterations, writing
// the generated points to w. Unknown names are an error naming the value;
// nothing is written in that case.
func Run(w io.Writer, name string, iterations int) error {
	preset, ok := presets[name]
	if !ok {
		return errors.Errorf("%s is not yet implemented", name)
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	preset.Play(w, iterations, rng)
	return nil
}
