package main

import "fmt"

// emitPath appends a subregion path's vertices in the order and reading
// direction its start state dictates.
func emitPath(path []Segment, state StartState, out []Point) []Point {
	switch state {
	case StartAtV1:
		// Read the path as stored. End point is the final segment's V2.
		for _, s := range path {
			out = append(out, s.V1, s.V2)
		}
	case StartAtV2:
		// Segments in order, vertices swapped. End point is the final V1.
		for _, s := range path {
			out = append(out, s.V2, s.V1)
		}
	case EndAtV1:
		// Segments in reverse, vertices in order. End point is the first
		// segment's V2.
		for i := len(path) - 1; i >= 0; i-- {
			out = append(out, path[i].V1, path[i].V2)
		}
	case EndAtV2:
		// Segments in reverse, vertices swapped. End point is the first V1.
		for i := len(path) - 1; i >= 0; i-- {
			out = append(out, path[i].V2, path[i].V1)
		}
	}
	return out
}

// SearchPath generates the coverage path for an arbitrary simple CCW
// polygon: decompose into convex subregions, merge what recombines
// convexly, traverse each subregion, then stitch the subregion paths
// together along the minimum-cost visiting order with per-subregion
// orientations resolved greedily.
func SearchPath(p Polygon, cfg PlannerConfig) ([]Point, error) {
	if p.Size() < 3 {
		return nil, fmt.Errorf("search area: %w", ErrDegeneratePolygon)
	}
	subregions, err := Decompose(p)
	if err != nil {
		return nil, fmt.Errorf("decompose search area: %w", err)
	}
	subregions = MergeSubregions(subregions)
	if p.ConcaveCount() == 0 {
		// Already convex: no graph machinery needed.
		trav, err := Traverse(p, cfg)
		if err != nil {
			return nil, fmt.Errorf("traverse search area: %w", err)
		}
		var path []Point
		for _, s := range trav {
			path = append(path, s.V1, s.V2)
		}
		return path, nil
	}
	g, err := NewSubregionGraph(subregions, cfg)
	if err != nil {
		return nil, fmt.Errorf("build subregion graph: %w", err)
	}
	order, err := g.MinTraversal(cfg.MaxSubregions)
	if err != nil {
		return nil, fmt.Errorf("visiting order: %w", err)
	}
	g.ComputeStates(order)
	var path []Point
	for _, idx := range order {
		node := g.Nodes[idx]
		if len(node.Path) > 0 {
			path = emitPath(node.Path, node.State, path)
		}
	}
	return path, nil
}

// NaivePath generates a coverage path using the simple east-west traversal,
// skipping decomposition entirely.
func NaivePath(p Polygon, cfg PlannerConfig) ([]Point, error) {
	waypoints, err := NaiveTraverse(p, cfg)
	if err != nil {
		return nil, fmt.Errorf("naive traverse: %w", err)
	}
	var path []Point
	for _, s := range waypoints {
		path = append(path, s.V1, s.V2)
	}
	return path, nil
}
