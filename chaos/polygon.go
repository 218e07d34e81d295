package chaos

// Polygon is any shape with an ordered, cyclic vertex sequence of at least
// three points. Adjacent vertices must be next to each other in the slice
// that comes out of Vertices.
type Polygon interface {
	Vertices() []Point
}

type Triangle struct {
	A, B, C Point
}

func (t Triangle) Vertices() []Point {
	return []Point{t.A, t.B, t.C}
}

type Quadrilateral struct {
	A, B, C, D Point
}

func (q Quadrilateral) Vertices() []Point {
	return []Point{q.A, q.B, q.C, q.D}
}

// NewSquare returns an axis-aligned square with one corner at the origin,
// vertices in adjacency order.
func NewSquare(side float64) Quadrilateral {
	return Quadrilateral{
		A: Point{0, 0},
		B: Point{side, 0},
		C: Point{side, side},
		D: Point{0, side},
	}
}

// MedialPoints returns the midpoint of each edge, pairing every vertex with
// its cyclic successor. The chaos game starts from one of these so it never
// starts exactly on a vertex.
func MedialPoints(poly Polygon) []Point {
	vertices := poly.Vertices()
	medials := make([]Point, len(vertices))
	for i, vertex := range vertices {
		next := vertices[CircularIndex(i+1, len(vertices))]
		medials[i] = vertex.Midpoint(next)
	}
	return medials
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
