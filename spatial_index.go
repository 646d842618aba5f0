package main

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// rectPad keeps degenerate (axis-aligned) edge rectangles valid for the
// R-tree, which requires positive extents.
const rectPad = 1e-9

// boundaryEdge wraps one boundary polygon edge for R-tree storage.
type boundaryEdge struct {
	Index int
	Seg   Segment
	BBox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *boundaryEdge) Bounds() rtreego.Rect {
	return e.BBox
}

// BoundaryIndex manages spatial queries over a boundary polygon's edges so
// the router only intersection-tests edges near a candidate segment.
type BoundaryIndex struct {
	tree     *rtreego.Rtree
	boundary Polygon
}

// NewBoundaryIndex builds an R-tree over the boundary polygon's edges.
func NewBoundaryIndex(boundary Polygon) *BoundaryIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for i := 0; i < boundary.Size(); i++ {
		seg := boundary.Edge(i)
		bbox, err := segmentRect(seg, rectPad)
		if err == nil {
			tree.Insert(&boundaryEdge{Index: i, Seg: seg, BBox: bbox})
		}
	}
	return &BoundaryIndex{tree: tree, boundary: boundary}
}

// Candidates returns the boundary edges whose bounding boxes overlap the
// given segment's, sorted by edge index. Any edge actually crossing the
// segment is guaranteed to be among them.
func (bi *BoundaryIndex) Candidates(seg Segment) []*boundaryEdge {
	bbox, err := segmentRect(seg, rectPad)
	if err != nil {
		return nil
	}
	results := bi.tree.SearchIntersect(bbox)
	edges := make([]*boundaryEdge, 0, len(results))
	for _, item := range results {
		edges = append(edges, item.(*boundaryEdge))
	}
	sort.Slice(edges, func(a, b int) bool {
		return edges[a].Index < edges[b].Index
	})
	return edges
}

// segmentRect computes the axis-aligned bounding rectangle of a segment,
// padded on every side.
func segmentRect(seg Segment, pad float64) (rtreego.Rect, error) {
	minX := minFloat(seg.V1.X, seg.V2.X) - pad
	maxX := maxFloat(seg.V1.X, seg.V2.X) + pad
	minY := minFloat(seg.V1.Y, seg.V2.Y) - pad
	maxY := maxFloat(seg.V1.Y, seg.V2.Y) + pad
	return rtreego.NewRect(
		rtreego.Point{minX, minY},
		[]float64{maxX - minX, maxY - minY},
	)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
