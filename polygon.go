package main

// Polygon represents a simple, non-self-intersecting polygon as a list of
// vertices in counter-clockwise order (y-axis up). Edge i connects vertex i
// and vertex (i+1) mod n.
type Polygon struct {
	Vertices []Point `json:"vertices"`
}

// AddVert appends a vertex to the polygon's ring.
func (p *Polygon) AddVert(v Point) {
	p.Vertices = append(p.Vertices, v)
}

// Size returns the number of vertices in the polygon.
func (p Polygon) Size() int {
	return len(p.Vertices)
}

// Edge constructs the polygon edge starting at vertex i.
func (p Polygon) Edge(i int) Segment {
	n := len(p.Vertices)
	return NewSegment(p.Vertices[i], p.Vertices[(i+1)%n])
}

// Adjacent reports whether two polygons share a full boundary edge under
// undirected segment equality, returning the shared edge's index in each
// polygon. This is the O(nm) scan, which is fine at subregion scale.
func (p Polygon) Adjacent(other Polygon) (int, int, bool) {
	for i := 0; i < p.Size(); i++ {
		e1 := p.Edge(i)
		for j := 0; j < other.Size(); j++ {
			if e1.Equal(other.Edge(j)) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

// Center returns the midpoint of the polygon's bounding box. This is an
// approximation of the center, not a centroid.
func (p Polygon) Center() Point {
	xMin, xMax := p.Vertices[0].X, p.Vertices[0].X
	yMin, yMax := p.Vertices[0].Y, p.Vertices[0].Y
	for _, v := range p.Vertices[1:] {
		if v.X < xMin {
			xMin = v.X
		}
		if v.X > xMax {
			xMax = v.X
		}
		if v.Y < yMin {
			yMin = v.Y
		}
		if v.Y > yMax {
			yMax = v.Y
		}
	}
	return Point{X: (xMin + xMax) / 2, Y: (yMin + yMax) / 2}
}

// concave reports whether vertex i is concave (reflex). Vertices are CCW, so
// i is concave iff the cross product of (i -> prev) and (i -> next) is
// positive. The index must already be validated.
func (p Polygon) concave(i int) bool {
	n := len(p.Vertices)
	prev := i - 1
	for prev < 0 {
		prev += n
	}
	ba := p.Vertices[prev%n].Sub(p.Vertices[i])
	bc := p.Vertices[(i+1)%n].Sub(p.Vertices[i])
	return Cross(ba, bc) > 0
}

// IsConcave reports whether vertex i of the polygon is concave.
func (p Polygon) IsConcave(i int) (bool, error) {
	if i < 0 || i >= p.Size() {
		return false, ErrIndexOutOfRange
	}
	return p.concave(i), nil
}

// ConcaveCount returns the number of concave vertices in the polygon.
func (p Polygon) ConcaveCount() int {
	count := 0
	for i := range p.Vertices {
		if p.concave(i) {
			count++
		}
	}
	return count
}

// Width finds the minimum-length vertex-to-edge span of a convex polygon.
// For each edge, the vertex with maximum perpendicular distance (excluding
// the edge's own two vertices) forms a candidate span; the shortest
// candidate is the width. O(n^2), acceptable because subregions are small.
// Convexity is the caller's responsibility.
func (p Polygon) Width() (Span, error) {
	n := p.Size()
	if n < 3 {
		return Span{}, ErrDegeneratePolygon
	}
	spans := make([]Span, 0, n)
	for i := 0; i < n; i++ {
		e := p.Edge(i)
		var maxVert Point
		maxDistance := -1.0
		for j := 2; j < n; j++ {
			d := DistanceToSegment(p.Vertices[(i+j)%n], e)
			if d > maxDistance {
				maxDistance = d
				maxVert = p.Vertices[(i+j)%n]
			}
		}
		spans = append(spans, Span{V: maxVert, E: e})
	}
	minSpan := 0
	minLength := -1.0
	for i := range spans {
		if l := spans[i].Length(); l < minLength || minLength == -1 {
			minLength = l
			minSpan = i
		}
	}
	return spans[minSpan], nil
}

// Split partitions the vertex ring by the diagonal (v1, v2) into the arc
// [v1..v2] and the complementary arc [v2..v1], both still CCW since they are
// contiguous sub-arcs of a CCW ring. The indices are order-independent.
// Diagonals whose indices are within 1 of each other are a zero-area split
// and rejected.
func (p Polygon) Split(v1, v2 int) (Polygon, Polygon, error) {
	n := p.Size()
	if v1 < 0 || v2 < 0 || v1 >= n || v2 >= n {
		return Polygon{}, Polygon{}, ErrIndexOutOfRange
	}
	if v1-v2 < 2 && v2-v1 < 2 {
		return Polygon{}, Polygon{}, ErrInvalidSplit
	}
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	var p1, p2 Polygon
	for i := v1; i <= v2; i++ {
		p1.AddVert(p.Vertices[i])
	}
	for i := v2; i%n != v1+1; i++ {
		p2.AddVert(p.Vertices[i%n])
	}
	return p1, p2, nil
}

// Clockwise reports whether a vertex ring is in clockwise order, assuming
// the +y axis points up.
func Clockwise(v []Point) bool {
	sum := 0.0
	n := len(v)
	for i := 0; i < n; i++ {
		sum += (v[(i+1)%n].X - v[i].X) * (v[(i+1)%n].Y + v[i].Y)
	}
	return sum > 0
}

// ReversePoints reverses a vertex ring in place, flipping its winding.
func ReversePoints(v []Point) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
