package chaos

import (
	"fmt"
	"math/rand"

	"github.com/logrusorgru/aurora"

	"chaosgame/dbg"
)

// A Sampler picks the reference vertex for each step of the chaos game.
// Samplers that reject candidates keep the previously accepted vertex as
// state, so a sampler belongs to exactly one run.
type Sampler interface {
	Next() Point
}

// UniformSampler draws independently and uniformly from its candidates.
type UniformSampler struct {
	candidates []Point
	rng        *rand.Rand
}

func NewUniformSampler(candidates []Point, rng *rand.Rand) *UniformSampler {
	return &UniformSampler{candidates: candidates, rng: rng}
}

func (s *UniformSampler) Next() Point {
	return s.candidates[s.rng.Intn(len(s.candidates))]
}

func (s *UniformSampler) String() string {
	return fmt.Sprintf("Sampler %s uniform over %d candidates", dbgName(s), len(s.candidates))
}

// NoRepeatSampler draws uniformly but resamples whenever the draw equals
// the previously accepted vertex (both coordinates). The initial "previous"
// vertex is itself a uniform draw, so the very first call is already
// constrained.
type NoRepeatSampler struct {
	candidates []Point
	rng        *rand.Rand
	prev       Point
}

func NewNoRepeatSampler(candidates []Point, rng *rand.Rand) *NoRepeatSampler {
	return &NoRepeatSampler{
		candidates: candidates,
		rng:        rng,
		prev:       candidates[rng.Intn(len(candidates))],
	}
}

func (s *NoRepeatSampler) Next() Point {
	for {
		candidate := s.candidates[s.rng.Intn(len(s.candidates))]
		if candidate != s.prev {
			s.prev = candidate
			return candidate
		}
	}
}

func (s *NoRepeatSampler) String() string {
	return fmt.Sprintf("Sampler %s no-repeat over %d candidates, last (%v, %v)",
		dbgName(s), len(s.candidates), s.prev.X, s.prev.Y)
}

// SharedAxisSampler draws uniformly but resamples unless the draw shares at
// least one coordinate with the previously accepted vertex. On a square's
// corners this restricts each step to the previous corner or one of its two
// edge neighbors. The initial "previous" vertex is a uniform draw.
type SharedAxisSampler struct {
	candidates []Point
	rng        *rand.Rand
	prev       Point
}

func NewSharedAxisSampler(candidates []Point, rng *rand.Rand) *SharedAxisSampler {
	return &SharedAxisSampler{
		candidates: candidates,
		rng:        rng,
		prev:       candidates[rng.Intn(len(candidates))],
	}
}

func (s *SharedAxisSampler) Next() Point {
	for {
		candidate := s.candidates[s.rng.Intn(len(s.candidates))]
		if candidate.X == s.prev.X || candidate.Y == s.prev.Y {
			s.prev = candidate
			return candidate
		}
	}
}

func (s *SharedAxisSampler) String() string {
	return fmt.Sprintf("Sampler %s shared-axis over %d candidates, last (%v, %v)",
		dbgName(s), len(s.candidates), s.prev.X, s.prev.Y)
}

// Colored readable name for sampler debug transcripts.
func dbgName(obj interface{}) string {
	return aurora.Cyan(dbg.Name(obj)).String()
}
