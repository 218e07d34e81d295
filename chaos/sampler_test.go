package chaos

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformSamplerCoversAllCandidates(t *testing.T) {
	candidates := NewSquare(100).Vertices()
	s := NewUniformSampler(candidates, rand.New(rand.NewSource(7)))

	seen := map[Point]int{}
	for i := 0; i < 1000; i++ {
		draw := s.Next()
		require.Contains(t, candidates, draw)
		seen[draw]++
	}
	assert.Len(t, seen, len(candidates))
}

func TestUniformSamplerAllowsRepeats(t *testing.T) {
	// One candidate is degenerate but legal; every draw repeats it.
	s := NewUniformSampler([]Point{{1, 2}}, rand.New(rand.NewSource(7)))
	assert.Equal(t, Point{1, 2}, s.Next())
	assert.Equal(t, Point{1, 2}, s.Next())
}

func TestNoRepeatSamplerNeverRepeats(t *testing.T) {
	s := NewNoRepeatSampler(NewSquare(100).Vertices(), rand.New(rand.NewSource(7)))

	prev := s.Next()
	for i := 0; i < 1000; i++ {
		next := s.Next()
		require.NotEqual(t, prev, next)
		prev = next
	}
}

func TestSharedAxisSamplerSharesACoordinate(t *testing.T) {
	s := NewSharedAxisSampler(NewSquare(100).Vertices(), rand.New(rand.NewSource(7)))

	prev := s.Next()
	for i := 0; i < 1000; i++ {
		next := s.Next()
		require.True(t, next.X == prev.X || next.Y == prev.Y,
			"consecutive draws (%v, %v) and (%v, %v) share no coordinate",
			prev.X, prev.Y, next.X, next.Y)
		prev = next
	}
}

func TestSamplerStrings(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	corners := NewSquare(100).Vertices()

	assert.Contains(t, NewUniformSampler(corners, rng).String(), "uniform over 4 candidates")
	assert.Contains(t, NewNoRepeatSampler(corners, rng).String(), "no-repeat over 4 candidates")
	assert.Contains(t, NewSharedAxisSampler(corners, rng).String(), "shared-axis over 4 candidates")
}
