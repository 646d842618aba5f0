package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bigArrow is the arrow pentagon scaled up so its subregions fit several
// sweep passes at the test offset.
func bigArrow() Polygon {
	p := Polygon{}
	p.AddVert(Point{X: 0, Y: 0})
	p.AddVert(Point{X: 100, Y: 0})
	p.AddVert(Point{X: 100, Y: 50})
	p.AddVert(Point{X: 50, Y: 25})
	p.AddVert(Point{X: 0, Y: 100})
	return p
}

func TestSearchPathConvex(t *testing.T) {
	p := Polygon{}
	p.AddVert(Point{X: 0, Y: 0})
	p.AddVert(Point{X: 100, Y: 0})
	p.AddVert(Point{X: 100, Y: 100})
	p.AddVert(Point{X: 0, Y: 100})
	cfg := testConfig()

	path, err := SearchPath(p, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	// A convex area takes the single-traversal shortcut.
	trav, err := Traverse(p, cfg)
	require.NoError(t, err)
	var want []Point
	for _, s := range trav {
		want = append(want, s.V1, s.V2)
	}
	assert.Equal(t, want, path)
}

func TestSearchPathConcave(t *testing.T) {
	p := bigArrow()
	cfg := testConfig()

	path, err := SearchPath(p, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Zero(t, len(path)%2, "waypoints come in pass-endpoint pairs")

	for i, v := range path {
		assert.GreaterOrEqual(t, v.X, 0.0, "waypoint %d", i)
		assert.LessOrEqual(t, v.X, 100.0, "waypoint %d", i)
		assert.GreaterOrEqual(t, v.Y, 0.0, "waypoint %d", i)
		assert.LessOrEqual(t, v.Y, 100.0, "waypoint %d", i)
	}
}

func TestSearchPathGreedyJunction(t *testing.T) {
	// The second subregion's entry vertex is the candidate closest to the
	// first subregion's exit vertex.
	cfg := testConfig()
	subregions, err := Decompose(bigArrow())
	require.NoError(t, err)
	subregions = MergeSubregions(subregions)
	require.Len(t, subregions, 2)

	g, err := NewSubregionGraph(subregions, cfg)
	require.NoError(t, err)
	order, err := g.MinTraversal(cfg.MaxSubregions)
	require.NoError(t, err)
	g.ComputeStates(order)

	exit := g.exitVertex(order[0])
	next := g.Nodes[order[1]]
	require.NotEmpty(t, next.Path)
	front := next.Path[0]
	back := next.Path[len(next.Path)-1]

	var entry Point
	switch next.State {
	case StartAtV1:
		entry = front.V1
	case StartAtV2:
		entry = front.V2
	case EndAtV1:
		entry = back.V1
	case EndAtV2:
		entry = back.V2
	}

	got := exit.Distance(entry)
	for _, cand := range []Point{front.V1, front.V2, back.V1, back.V2} {
		assert.LessOrEqual(t, got, exit.Distance(cand))
	}
}

func TestSearchPathDegenerate(t *testing.T) {
	p := Polygon{}
	p.AddVert(Point{X: 0, Y: 0})
	p.AddVert(Point{X: 10, Y: 0})

	_, err := SearchPath(p, testConfig())
	assert.ErrorIs(t, err, ErrDegeneratePolygon)
}

func TestNaivePath(t *testing.T) {
	p := bigArrow()
	cfg := testConfig()

	path, err := NaivePath(p, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Zero(t, len(path)%2)

	trav, err := NaiveTraverse(p, cfg)
	require.NoError(t, err)
	assert.Len(t, path, 2*len(trav))
}
