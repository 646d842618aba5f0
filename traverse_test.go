package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() PlannerConfig {
	return PlannerConfig{
		Radius:             5,
		Offset:             5,
		Correction:         5,
		Altitude:           DefaultAltitude,
		MaxSubregions:      DefaultMaxSubregions,
		RouterIterationCap: DefaultRouterIterationCap,
	}
}

func TestTraverseRectangle(t *testing.T) {
	p := Polygon{}
	p.AddVert(Point{X: 0, Y: 0})
	p.AddVert(Point{X: 100, Y: 0})
	p.AddVert(Point{X: 100, Y: 40})
	p.AddVert(Point{X: 0, Y: 40})
	cfg := testConfig()

	passes, err := Traverse(p, cfg)
	require.NoError(t, err)

	// 40 units of width at a 5 unit offset gives 8 sweep positions; the
	// last one hugs the far edge and is dropped by the clearance check.
	require.Len(t, passes, 7)

	for i, pass := range passes {
		wantY := 5.0 * float64(i+1)
		assert.InDelta(t, wantY, pass.V1.Y, 1e-9, "pass %d", i)
		assert.InDelta(t, wantY, pass.V2.Y, 1e-9, "pass %d", i)
		// The turn-radius correction pulls both ends in from the boundary.
		lo, hi := pass.V1.X, pass.V2.X
		if lo > hi {
			lo, hi = hi, lo
		}
		assert.InDelta(t, cfg.Correction, lo, 1e-9, "pass %d", i)
		assert.InDelta(t, 100-cfg.Correction, hi, 1e-9, "pass %d", i)
	}

	// Endpoint order alternates so the passes chain into one path.
	for i := 1; i < len(passes); i++ {
		prevLTR := passes[i-1].V1.X < passes[i-1].V2.X
		curLTR := passes[i].V1.X < passes[i].V2.X
		assert.NotEqual(t, prevLTR, curLTR, "passes %d and %d", i-1, i)
	}
}

func TestTraverseSweepsAcrossNarrowDimension(t *testing.T) {
	// A tall thin rectangle must be swept horizontally, crossing the short
	// dimension, not along it.
	p := Polygon{}
	p.AddVert(Point{X: 0, Y: 0})
	p.AddVert(Point{X: 40, Y: 0})
	p.AddVert(Point{X: 40, Y: 100})
	p.AddVert(Point{X: 0, Y: 100})
	cfg := testConfig()

	passes, err := Traverse(p, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, passes)

	for i, pass := range passes {
		assert.InDelta(t, pass.V1.X, pass.V2.X, 1e-9, "pass %d is not vertical", i)
	}
}

func TestTraverseTooSmall(t *testing.T) {
	// A polygon narrower than a single offset yields no passes.
	p := Polygon{}
	p.AddVert(Point{X: 0, Y: 0})
	p.AddVert(Point{X: 100, Y: 0})
	p.AddVert(Point{X: 100, Y: 3})
	p.AddVert(Point{X: 0, Y: 3})

	passes, err := Traverse(p, testConfig())
	require.NoError(t, err)
	assert.Empty(t, passes)
}

func TestTraverseRejectsNonPositiveOffset(t *testing.T) {
	// A zero offset would leave the sweep line in place forever.
	cfg := testConfig()
	cfg.Offset = 0

	_, err := Traverse(square(), cfg)
	assert.ErrorIs(t, err, ErrInvalidOffset)
	_, err = NaiveTraverse(square(), cfg)
	assert.ErrorIs(t, err, ErrInvalidOffset)

	cfg.Offset = -5
	_, err = Traverse(square(), cfg)
	assert.ErrorIs(t, err, ErrInvalidOffset)
	_, err = NaiveTraverse(square(), cfg)
	assert.ErrorIs(t, err, ErrInvalidOffset)
}

func TestTraverseDegenerate(t *testing.T) {
	p := Polygon{}
	p.AddVert(Point{X: 0, Y: 0})
	p.AddVert(Point{X: 10, Y: 0})

	_, err := Traverse(p, testConfig())
	assert.ErrorIs(t, err, ErrDegeneratePolygon)
}

func TestNaiveTraverseSquare(t *testing.T) {
	p := square()
	cfg := testConfig()
	cfg.Offset = 4
	cfg.Correction = 1

	passes, err := NaiveTraverse(p, cfg)
	require.NoError(t, err)

	// Half-offset steps from y=0: sweeps at 2, 4, 6, 8 and 10.
	require.Len(t, passes, 5)
	for i, pass := range passes {
		wantY := 2.0 * float64(i+1)
		assert.InDelta(t, wantY, pass.V1.Y, 1e-9, "pass %d", i)
		lo, hi := pass.V1.X, pass.V2.X
		if lo > hi {
			lo, hi = hi, lo
		}
		assert.InDelta(t, 1.0, lo, 1e-9, "pass %d", i)
		assert.InDelta(t, 9.0, hi, 1e-9, "pass %d", i)
	}
}

func TestNaiveTraverseConcave(t *testing.T) {
	// The naive sweep spans a concave polygon edge to edge, covering the
	// notch as if it were filled.
	p := arrow()
	cfg := testConfig()
	cfg.Offset = 4
	cfg.Correction = 1

	passes, err := NaiveTraverse(p, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, passes)

	for i, pass := range passes {
		assert.Less(t, pass.V1.X, 10.0, "pass %d", i)
		assert.Greater(t, pass.V2.X, 0.0, "pass %d", i)
	}
}

func TestNaiveTraverseKeepsCollapsedPass(t *testing.T) {
	// Correction of exactly half the pass length collapses the endpoints
	// onto one point; a collapsed pass has not crossed and is kept.
	p := square()
	cfg := testConfig()
	cfg.Offset = 4
	cfg.Correction = 5

	passes, err := NaiveTraverse(p, cfg)
	require.NoError(t, err)
	require.Len(t, passes, 5)
	for i, pass := range passes {
		assert.Equal(t, pass.V1, pass.V2, "pass %d", i)
		assert.Equal(t, 5.0, pass.V1.X, "pass %d", i)
	}
}

func TestNaiveTraverseDropsCrossedPass(t *testing.T) {
	// Correction larger than half the polygon width invalidates every pass.
	p := square()
	cfg := testConfig()
	cfg.Offset = 4
	cfg.Correction = 6

	passes, err := NaiveTraverse(p, cfg)
	require.NoError(t, err)
	assert.Empty(t, passes)
}
