package chaos

// Point is a 2D coordinate. Points are plain values with no identity beyond
// their coordinates; equality is exact floating point comparison, which the
// samplers rely on because every candidate vertex is constructed once and
// only ever copied afterwards.
type Point struct {
	X, Y float64
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{
		X: (p.X + q.X) / 2,
		Y: (p.Y + q.Y) / 2,
	}
}

// JumpTowards returns the point at the given fraction of the way from p to
// q. The distance is not clamped, so values outside [0, 1] extrapolate past
// the endpoints.
func (p Point) JumpTowards(q Point, distance float64) Point {
	return Point{
		X: p.X*(1-distance) + q.X*distance,
		Y: p.Y*(1-distance) + q.Y*distance,
	}
}
