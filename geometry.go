package main

import "math"

// epsilon is the smallest representable double-precision delta. Callers that
// need a looser tolerance scale their distances before comparing.
var epsilon = math.Nextafter(1, 2) - 1

// inf is an effective infinity that stays well clear of float64 overflow
// when used in coordinate arithmetic.
const inf = 1000000.0

// Point represents a 2D coordinate in planar meters. It doubles as the
// positional vector from the origin to the coordinate. Equality is exact
// (==), never tolerance based, so shared vertices can be identified.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the vector sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the vector difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a scalar.
func (p Point) Scale(m float64) Point {
	return Point{X: m * p.X, Y: m * p.Y}
}

// Dot returns the dot product of two points treated as vectors.
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Length returns the length of the vector from the origin to the point.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance calculates the Euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Cross calculates the z-component of the cross product of two vectors.
// Used for orientation and concavity tests.
func Cross(c1, c2 Point) float64 {
	return c1.X*c2.Y - c2.X*c1.Y
}

// Segment represents a line segment between two points, together with the
// coefficients of its line in standard form (a*x + b*y + c = 0).
type Segment struct {
	V1, V2  Point
	A, B, C float64
}

// NewSegment constructs a segment and derives its standard-form line.
func NewSegment(v1, v2 Point) Segment {
	var m float64
	if v1.X == v2.X {
		// Perfectly vertical: the slope value is only a placeholder here and
		// vertical segments are special-cased wherever it would matter.
		m = math.Inf(1)
	} else {
		m = (v2.Y - v1.Y) / (v2.X - v1.X)
	}
	return Segment{
		V1: v1,
		V2: v2,
		A:  -m,
		B:  1,
		C:  m*v1.X - v1.Y,
	}
}

// Slope returns the slope of the segment.
func (s Segment) Slope() float64 {
	return -s.A
}

// IsVertical reports whether the segment is perfectly vertical.
func (s Segment) IsVertical() bool {
	return s.V1.X == s.V2.X
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.V1.Distance(s.V2)
}

// Theta returns the angle of the segment from the horizontal in radians,
// in [-pi, pi]. Horizontal and vertical segments get exact values rather
// than whatever atan2 rounds to.
func (s Segment) Theta() float64 {
	if s.IsVertical() {
		if s.V1.Y < s.V2.Y {
			return math.Pi / 2.0
		}
		return -(math.Pi / 2.0)
	}
	if s.V1.Y == s.V2.Y {
		if s.V1.X < s.V2.X {
			return 0
		}
		return math.Pi
	}
	return math.Atan2(s.V2.Y-s.V1.Y, s.V2.X-s.V1.X)
}

// Equal reports whether two segments cover the same pair of vertices.
// Equality is undirected: a segment equals its reverse.
func (s Segment) Equal(other Segment) bool {
	return (s.V1 == other.V1 && s.V2 == other.V2) ||
		(s.V1 == other.V2 && s.V2 == other.V1)
}

// DistanceToSegment finds the perpendicular distance from a point to the
// segment's infinite line. Vertical segments are special-cased to avoid
// dividing by the line coefficients when the slope is undefined.
func DistanceToSegment(v Point, s Segment) float64 {
	if s.IsVertical() {
		return math.Abs(s.V1.X - v.X)
	}
	numer := math.Abs(s.A*v.X + s.B*v.Y + s.C)
	denom := math.Sqrt(s.A*s.A + s.B*s.B)
	return numer / denom
}

// Intersection finds the intersection of two line segments via the
// cross-product parametrization p1 + t*r = q1 + u*s. Collinear segments are
// treated as non-intersecting even if they overlap; parallel non-collinear
// segments never intersect. Otherwise an intersection exists iff both t and
// u land in [0, 1].
func Intersection(s1, s2 Segment) (Point, bool) {
	p1, p2 := s1.V1, s1.V2
	q1, q2 := s2.V1, s2.V2
	r := p2.Sub(p1)
	s := q2.Sub(q1)
	rxs := Cross(r, s)
	qpxr := Cross(q1.Sub(p1), r)
	if math.Abs(rxs) < epsilon && math.Abs(qpxr) < epsilon {
		// Collinear. Treat as no intersection even if overlapping.
		return Point{}, false
	}
	if math.Abs(rxs) < epsilon {
		// Parallel and non-intersecting.
		return Point{}, false
	}
	t := Cross(q1.Sub(p1), s) / rxs
	u := Cross(q1.Sub(p1), r) / rxs
	if 0 <= t && t <= 1 && 0 <= u && u <= 1 {
		return p1.Add(r.Scale(t)), true
	}
	return Point{}, false
}

// Span represents a vertex-to-edge span of a polygon: the antipodal vertex
// paired with the edge it spans to.
type Span struct {
	V Point
	E Segment
}

// Length returns the perpendicular distance from the span's vertex to its
// edge's infinite line.
func (sp Span) Length() float64 {
	return DistanceToSegment(sp.V, sp.E)
}

// Theta returns the angle of the span from the horizontal. The span is
// perpendicular to its edge, so this is the edge angle plus a quarter turn.
func (sp Span) Theta() float64 {
	return sp.E.Theta() + math.Pi/2.0
}
