package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notched is a CCW pentagon whose top edge dips to a reflex vertex at
// (50,60), so a straight line between the upper corners clips the notch.
func notched() Polygon {
	p := Polygon{}
	p.AddVert(Point{X: 0, Y: 0})
	p.AddVert(Point{X: 100, Y: 0})
	p.AddVert(Point{X: 100, Y: 100})
	p.AddVert(Point{X: 50, Y: 60})
	p.AddVert(Point{X: 0, Y: 100})
	return p
}

func TestPathToDirect(t *testing.T) {
	boundary := notched()
	// The straight segment stays inside, so no intermediate waypoints.
	wp, err := PathTo(Point{X: 10, Y: 10}, Point{X: 90, Y: 10}, boundary, testConfig())
	require.NoError(t, err)
	assert.Empty(t, wp)
}

func TestPathToRoutesAroundNotch(t *testing.T) {
	boundary := notched()
	p1 := Point{X: 10, Y: 85}
	p2 := Point{X: 90, Y: 85}

	wp, err := PathTo(p1, p2, boundary, testConfig())
	require.NoError(t, err)
	require.NotEmpty(t, wp)

	// The full route, endpoints included, must not cross the boundary.
	full := append([]Point{p1}, wp...)
	full = append(full, p2)
	for i := 0; i+1 < len(full); i++ {
		leg := NewSegment(full[i], full[i+1])
		for e := 0; e < boundary.Size(); e++ {
			_, hit := Intersection(leg, boundary.Edge(e))
			assert.False(t, hit, "leg %d crosses boundary edge %d", i, e)
		}
	}
}

func TestPathToIterationCap(t *testing.T) {
	// A slot narrower than the unfold can clear: the offset waypoints land
	// on either side of the slot and the segment between them re-crosses
	// it forever, so the router must give up at the cap.
	boundary := Polygon{}
	boundary.AddVert(Point{X: 0, Y: 0})
	boundary.AddVert(Point{X: 100, Y: 0})
	boundary.AddVert(Point{X: 100, Y: 100})
	boundary.AddVert(Point{X: 60, Y: 100})
	boundary.AddVert(Point{X: 60, Y: 40})
	boundary.AddVert(Point{X: 40, Y: 40})
	boundary.AddVert(Point{X: 40, Y: 100})
	boundary.AddVert(Point{X: 0, Y: 100})
	cfg := testConfig()
	cfg.RouterIterationCap = 50

	_, err := PathTo(Point{X: 20, Y: 80}, Point{X: 80, Y: 80}, boundary, cfg)
	assert.ErrorIs(t, err, ErrRouterDiverged)
}

func TestPathToDegenerateBoundary(t *testing.T) {
	boundary := Polygon{}
	boundary.AddVert(Point{X: 0, Y: 0})
	boundary.AddVert(Point{X: 10, Y: 0})

	_, err := PathTo(Point{X: 1, Y: 1}, Point{X: 2, Y: 2}, boundary, testConfig())
	assert.ErrorIs(t, err, ErrDegeneratePolygon)
}
