package main

import "math"

// Decompose recursively splits a concave polygon into convex pieces.
// At each level it considers diagonals from a concave vertex to another
// non-adjacent concave vertex (falling back to convex targets when no
// concave-to-concave diagonal is valid, or when only one concave vertex
// exists), keeps the diagonal minimizing the sum of the two resulting
// subregion widths, and recurses on both halves.
func Decompose(p Polygon) ([]Polygon, error) {
	n := p.Size()
	if n < 3 {
		return nil, ErrDegeneratePolygon
	}
	var concaveVerts []int
	for i := 0; i < n; i++ {
		if p.concave(i) {
			concaveVerts = append(concaveVerts, i)
		}
	}
	if len(concaveVerts) == 0 {
		// Base case: already convex.
		return []Polygon{p}, nil
	}
	// Split by convex vertices directly if there is only one concave vertex.
	acceptConvex := len(concaveVerts) == 1
	v1, v2 := 0, 0
	minWidthSum := -1.0
	for minWidthSum == -1 {
		for _, c := range concaveVerts {
			for j := 0; j < n; j++ {
				adjacent := (c+1)%n == j
				prev := c - 1
				for prev < 0 {
					prev += n
				}
				if prev == j {
					adjacent = true
				}
				if c == j || adjacent || !(p.concave(j) || acceptConvex) {
					continue
				}
				// Check the diagonal against the interior angle at c: the
				// diagonal must leave the polygon's interior, not re-cross an
				// incident edge.
				splitTheta := NewSegment(p.Vertices[c], p.Vertices[j]).Theta()
				theta1 := p.Edge(c).Theta()
				theta2 := p.Edge(prev % n).Theta()
				if theta2-math.Pi < epsilon {
					theta2 = 0
				} else {
					theta2 += math.Pi
				}
				var valid bool
				if theta1 > theta2 {
					valid = true
					if splitTheta > theta2 && splitTheta < theta1 {
						valid = false
					}
				} else {
					valid = false
					if splitTheta >= theta1 && splitTheta <= theta2 {
						valid = true
					}
				}
				if !valid {
					continue
				}
				p1, p2, err := p.Split(c, j)
				if err != nil {
					return nil, err
				}
				w1, err := p1.Width()
				if err != nil {
					return nil, err
				}
				w2, err := p2.Width()
				if err != nil {
					return nil, err
				}
				widthSum := w1.Length() + w2.Length()
				if widthSum < minWidthSum || minWidthSum < 0 {
					minWidthSum = widthSum
					v1 = c
					v2 = j
				}
			}
		}
		if minWidthSum == -1 {
			if acceptConvex {
				return nil, ErrNoValidSplit
			}
			// No concave-to-concave diagonal worked; retry allowing
			// concave-to-convex splits.
			acceptConvex = true
		}
	}
	p1, p2, err := p.Split(v1, v2)
	if err != nil {
		return nil, err
	}
	left, err := Decompose(p1)
	if err != nil {
		return nil, err
	}
	right, err := Decompose(p2)
	if err != nil {
		return nil, err
	}
	return append(left, right...), nil
}

// mergePolygons joins two polygons along their shared edge, index i in p1
// and j in p2. The walk starts just after the shared edge in each ring and
// skips the two shared endpoints, which collapse into the seam.
func mergePolygons(p1, p2 Polygon, i, j int) Polygon {
	var result Polygon
	n1, n2 := p1.Size(), p2.Size()
	for z := 0; z < n1; z++ {
		result.AddVert(p1.Vertices[(i+1+z)%n1])
	}
	for z := 1; z < n2-1; z++ {
		result.AddVert(p2.Vertices[(j+1+z)%n2])
	}
	return result
}

// MergeSubregions greedily recombines adjacent subregions whose union is
// still convex, repeating until a full pass finds no further merge.
func MergeSubregions(l []Polygon) []Polygon {
	for {
		merged := false
	scan:
		for i1 := 0; i1 < len(l); i1++ {
			for i2 := 0; i2 < len(l); i2++ {
				if i1 == i2 {
					continue
				}
				i, j, ok := l[i1].Adjacent(l[i2])
				if !ok {
					continue
				}
				m := mergePolygons(l[i1], l[i2], i, j)
				if m.ConcaveCount() == 0 {
					l[i1] = m
					l = append(l[:i2], l[i2+1:]...)
					merged = true
					break scan
				}
			}
		}
		if !merged {
			return l
		}
	}
}
