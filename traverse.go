package main

import (
	"math"
	"sort"
)

// Traverse generates the back-and-forth parallel-sweep coverage path for one
// convex polygon. The polygon's minimum-width span picks the sweep
// direction; the span's edge, extended to effective infinity, is the sweep
// line. Each pass is pulled inward by the turn-radius correction, and the
// emitted endpoint order alternates so consecutive passes chain into a
// continuous path.
func Traverse(p Polygon, cfg PlannerConfig) ([]Segment, error) {
	if p.Size() < 3 {
		return nil, ErrDegeneratePolygon
	}
	if cfg.Offset <= 0 {
		return nil, ErrInvalidOffset
	}
	width, err := p.Width()
	if err != nil {
		return nil, err
	}
	sweepLine := width.E
	// Extend the sweep line to effective infinity in both directions.
	if sweepLine.IsVertical() {
		sweepLine.V1.Y = -inf
		sweepLine.V2.Y = inf
	} else if sweepLine.V1.X < sweepLine.V2.X {
		// The edge points left to right.
		sweepLine.V1.X -= inf
		sweepLine.V1.Y -= inf * sweepLine.Slope()
		sweepLine.V2.X += inf
		sweepLine.V2.Y += inf * sweepLine.Slope()
	} else {
		// The edge points right to left.
		sweepLine.V2.X -= inf
		sweepLine.V2.Y -= inf * sweepLine.Slope()
		sweepLine.V1.X += inf
		sweepLine.V1.Y += inf * sweepLine.Slope()
	}
	stepX := cfg.Offset * math.Cos(width.Theta())
	stepY := cfg.Offset * math.Sin(width.Theta())
	sweepLine.V1.X += stepX
	sweepLine.V2.X += stepX
	sweepLine.V1.Y += stepY
	sweepLine.V2.Y += stepY
	var waypoints []Segment
	var inter1, inter2 Point
	found1 := false
	// Advance the sweep line in fixed offsets, recording the two boundary
	// crossings per position, until the sweep exits the polygon.
	for j := 0; ; j++ {
		i := 0
		found1 = false
		found2 := false
		for {
			inter1, found1 = Intersection(sweepLine, p.Edge(i))
			i++
			if i >= p.Size() || found1 {
				break
			}
		}
		for i < p.Size() && !found2 {
			inter2, found2 = Intersection(sweepLine, p.Edge(i))
			i++
		}
		if found1 && found2 {
			valid := true
			beforeCorr := NewSegment(inter1, inter2)
			corrX := math.Abs(cfg.Correction * math.Cos(sweepLine.Theta()))
			corrY := math.Abs(cfg.Correction * math.Sin(sweepLine.Theta()))
			// Shift the waypoints inward along the sweep line to account for
			// the turn radius.
			if inter2.X > inter1.X {
				inter2.X -= corrX
				inter1.X += corrX
			} else {
				inter2.X += corrX
				inter1.X -= corrX
			}
			if inter2.Y > inter1.Y {
				inter2.Y -= corrY
				inter1.Y += corrY
			} else {
				inter2.Y += corrY
				inter1.Y -= corrY
			}
			// Discard the pass if correction made the waypoints cross.
			afterCorr := NewSegment(inter1, inter2)
			if math.Abs(beforeCorr.Theta()) < epsilon {
				// Horizontal pass: just compare the x order. Endpoints that
				// collapse to exact equality have not crossed and stay valid.
				if (beforeCorr.V1.X > beforeCorr.V2.X && afterCorr.V1.X < afterCorr.V2.X) ||
					(beforeCorr.V1.X < beforeCorr.V2.X && afterCorr.V1.X > afterCorr.V2.X) {
					valid = false
				}
			} else if (beforeCorr.Theta() > 0 && afterCorr.Theta() < 0) ||
				(beforeCorr.Theta() < 0 && afterCorr.Theta() > 0) {
				valid = false
			}
			if valid {
				// Alternate endpoint order per pass for a continuous
				// back-and-forth path.
				if j%2 == 0 {
					waypoints = append(waypoints, NewSegment(inter1, inter2))
				} else {
					waypoints = append(waypoints, NewSegment(inter2, inter1))
				}
			}
		}
		sweepLine.V1.X += stepX
		sweepLine.V2.X += stepX
		sweepLine.V1.Y += stepY
		sweepLine.V2.Y += stepY
		if !found1 {
			break
		}
	}
	// Require at least Radius of clearance past both endpoints of the last
	// pass in the sweep direction; drop the pass otherwise.
	if len(waypoints) > 0 {
		last := waypoints[len(waypoints)-1]
		probe := Point{
			X: last.V1.X + cfg.Radius*math.Cos(width.Theta()),
			Y: last.V1.Y + cfg.Radius*math.Sin(width.Theta()),
		}
		testEdge := NewSegment(last.V1, probe)
		for i := 0; i < p.Size(); i++ {
			if _, hit := Intersection(testEdge, p.Edge(i)); hit {
				return waypoints[:len(waypoints)-1], nil
			}
		}
		probe = Point{
			X: last.V2.X + cfg.Radius*math.Cos(width.Theta()),
			Y: last.V2.Y + cfg.Radius*math.Sin(width.Theta()),
		}
		testEdge = NewSegment(last.V2, probe)
		for i := 0; i < p.Size(); i++ {
			if _, hit := Intersection(testEdge, p.Edge(i)); hit {
				waypoints = waypoints[:len(waypoints)-1]
				break
			}
		}
	}
	return waypoints, nil
}

// NaiveTraverse sweeps a horizontal line upward from the polygon's lowest
// vertex in Offset/2 increments, taking the leftmost and rightmost boundary
// crossings per position. It needs no convexity or decomposition and skips
// the trailing-edge clearance check.
func NaiveTraverse(p Polygon, cfg PlannerConfig) ([]Segment, error) {
	if p.Size() < 3 {
		return nil, ErrDegeneratePolygon
	}
	if cfg.Offset <= 0 {
		return nil, ErrInvalidOffset
	}
	minY := p.Vertices[0].Y
	for _, v := range p.Vertices[1:] {
		if v.Y < minY {
			minY = v.Y
		}
	}
	sweepLine := NewSegment(Point{X: -inf, Y: minY}, Point{X: inf, Y: minY})
	sweepLine.V1.Y += cfg.Offset / 2.0
	sweepLine.V2.Y += cfg.Offset / 2.0
	var waypoints []Segment
	for j := 0; ; j++ {
		found := false
		var intersections []Point
		for i := 0; i < p.Size(); i++ {
			if inter, hit := Intersection(p.Edge(i), sweepLine); hit {
				found = true
				intersections = append(intersections, inter)
			}
		}
		if len(intersections) >= 2 {
			// Only the min and max x crossings matter when the sweep cuts the
			// boundary more than twice.
			sort.Slice(intersections, func(a, b int) bool {
				return intersections[a].X < intersections[b].X
			})
			inter1 := intersections[0]
			inter2 := intersections[len(intersections)-1]
			// The sort guarantees left-to-right order, so the correction is
			// purely along the x axis. A pass whose endpoints collapse to
			// the same point has not crossed and is kept.
			inter2.X -= cfg.Correction
			inter1.X += cfg.Correction
			if inter1.X <= inter2.X {
				if j%2 == 0 {
					waypoints = append(waypoints, NewSegment(inter1, inter2))
				} else {
					waypoints = append(waypoints, NewSegment(inter2, inter1))
				}
			}
		}
		sweepLine.V1.Y += cfg.Offset / 2.0
		sweepLine.V2.Y += cfg.Offset / 2.0
		if !found {
			break
		}
	}
	return waypoints, nil
}
