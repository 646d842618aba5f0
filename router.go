package main

import (
	"math"
	"sort"
)

// crossing records where a candidate path segment crosses a boundary edge.
type crossing struct {
	edge int
	at   Point
}

// PathTo computes a path from p1 to p2 that does not cross the boundary
// polygon, by repeatedly unfolding crossings: every intersection of a
// sub-segment with a boundary edge is offset outward by Radius
// perpendicular to the edge it crossed, and the offset points are inserted
// into the path in order of distance from the sub-segment's start. The loop
// runs on an explicit worklist with an iteration cap, since boundary
// features small relative to the turn radius can re-intersect after each
// offset. Both endpoints are stripped from the result; only the inserted
// intermediate waypoints are reported. Assumes both points are inside the
// boundary polygon.
func PathTo(p1, p2 Point, boundary Polygon, cfg PlannerConfig) ([]Point, error) {
	if boundary.Size() < 3 {
		return nil, ErrDegeneratePolygon
	}
	index := NewBoundaryIndex(boundary)
	path := []Point{p1, p2}
	for iter := 0; ; iter++ {
		if iter >= cfg.RouterIterationCap {
			return nil, ErrRouterDiverged
		}
		unfolded := false
		for i := 0; i+1 < len(path); i++ {
			line := NewSegment(path[i], path[i+1])
			var crossings []crossing
			for _, cand := range index.Candidates(line) {
				if at, hit := Intersection(line, cand.Seg); hit {
					crossings = append(crossings, crossing{edge: cand.Index, at: at})
				}
			}
			if len(crossings) == 0 {
				continue
			}
			from := path[i]
			sort.SliceStable(crossings, func(a, b int) bool {
				return from.Distance(crossings[a].at) < from.Distance(crossings[b].at)
			})
			// Push each crossing outward, perpendicular to the boundary edge
			// it crossed.
			for k := range crossings {
				theta := boundary.Edge(crossings[k].edge).Theta() + math.Pi/2.0
				crossings[k].at.X += cfg.Radius * math.Cos(theta)
				crossings[k].at.Y += cfg.Radius * math.Sin(theta)
			}
			inserted := make([]Point, 0, len(crossings))
			for _, c := range crossings {
				inserted = append(inserted, c.at)
			}
			next := make([]Point, 0, len(path)+len(inserted))
			next = append(next, path[:i+1]...)
			next = append(next, inserted...)
			next = append(next, path[i+1:]...)
			path = next
			unfolded = true
			break
		}
		if !unfolded {
			break
		}
	}
	// Strip the terminal points.
	return path[1 : len(path)-1], nil
}
