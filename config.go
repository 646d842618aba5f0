package main

// Default planning parameters. The turn radius matches the airframe this
// planner was tuned for; sweep spacing and the inward correction both
// default to it.
const (
	// DefaultRadius is the vehicle turn radius in meters.
	DefaultRadius = 36.6
	// DefaultAltitude is the output altitude for search waypoints in feet.
	DefaultAltitude = 150
	// DefaultMaxSubregions bounds the factorial visiting-order search.
	DefaultMaxSubregions = 9
	// DefaultRouterIterationCap bounds the boundary router's unfold loop.
	DefaultRouterIterationCap = 1000
)

// PlannerConfig carries the tunable planning parameters. A zero value is
// not usable; start from DefaultConfig.
type PlannerConfig struct {
	// Radius is the vehicle turn radius in meters.
	Radius float64 `json:"radius"`
	// Offset is the spacing between sweep lines in meters. The minimum
	// sensible value is Radius.
	Offset float64 `json:"offset"`
	// Correction is the distance waypoints are pulled inward along the
	// sweep line to keep the turn path inside the polygon.
	Correction float64 `json:"correction"`
	// Altitude is the output altitude in feet.
	Altitude float64 `json:"altitude"`
	// MaxSubregions rejects decompositions too large for the brute-force
	// visiting-order search.
	MaxSubregions int `json:"maxSubregions"`
	// RouterIterationCap bounds the boundary router worklist; pathological
	// boundary geometry fails explicitly instead of recursing forever.
	RouterIterationCap int `json:"routerIterationCap"`
}

// DefaultConfig returns the standard planning parameters.
func DefaultConfig() PlannerConfig {
	return PlannerConfig{
		Radius:             DefaultRadius,
		Offset:             DefaultRadius,
		Correction:         DefaultRadius,
		Altitude:           DefaultAltitude,
		MaxSubregions:      DefaultMaxSubregions,
		RouterIterationCap: DefaultRouterIterationCap,
	}
}
