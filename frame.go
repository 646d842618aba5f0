package main

import "math"

// earthRadius is the radius of the Earth in meters (spherical model).
const earthRadius = 6378137.0

// vec3 is a 3D vector in Earth-centered Cartesian coordinates.
type vec3 struct {
	X, Y, Z float64
}

func (v vec3) add(other vec3) vec3 {
	return vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v vec3) sub(other vec3) vec3 {
	return vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v vec3) scale(m float64) vec3 {
	return vec3{m * v.X, m * v.Y, m * v.Z}
}

func (v vec3) dot(other vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v vec3) cross(other vec3) vec3 {
	return vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

func (v vec3) normalize() vec3 {
	return v.scale(1 / math.Sqrt(v.dot(v)))
}

// gpsToCartesian converts a GPS coordinate in radians to Earth-centered
// Cartesian coordinates with standard basis vectors.
func gpsToCartesian(lonRad, latRad float64) vec3 {
	return vec3{
		X: earthRadius * math.Cos(latRad) * math.Cos(lonRad),
		Y: earthRadius * math.Cos(latRad) * math.Sin(lonRad),
		Z: earthRadius * math.Sin(latRad),
	}
}

// PlaneFrame is a local tangent-plane coordinate frame anchored at one
// reference GPS point. The basis vectors are computed once at construction
// and reused for every conversion; x runs east-west and y runs north-south,
// both in meters.
type PlaneFrame struct {
	refLon, refLat float64
	ref            vec3
	east, north    vec3
}

// NewPlaneFrame fixes a local tangent-plane origin and orthonormal basis
// from one reference GPS point given in radians.
func NewPlaneFrame(lonRad, latRad float64) *PlaneFrame {
	ref := gpsToCartesian(lonRad, latRad)
	up := ref.normalize()
	east := vec3{-math.Sin(lonRad), math.Cos(lonRad), 0}
	return &PlaneFrame{
		refLon: lonRad,
		refLat: latRad,
		ref:    ref,
		east:   east,
		north:  up.cross(east),
	}
}

// ToPlane converts a GPS coordinate in radians to the frame's planar meters.
func (f *PlaneFrame) ToPlane(lonRad, latRad float64) Point {
	d := gpsToCartesian(lonRad, latRad).sub(f.ref)
	return Point{X: d.dot(f.east), Y: d.dot(f.north)}
}

// ToGPS converts a planar coordinate back to GPS longitude and latitude in
// radians.
func (f *PlaneFrame) ToGPS(p Point) (lonRad, latRad float64) {
	s := f.ref.add(f.east.scale(p.X)).add(f.north.scale(p.Y))
	lonRad = math.Atan2(s.Y, s.X)
	latRad = math.Asin(s.Z / earthRadius)
	return lonRad, latRad
}

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180.0)
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float64) float64 {
	return radians * (180.0 / math.Pi)
}

// ToMeters converts feet to meters.
func ToMeters(feet float64) float64 {
	return feet * 0.3048
}

// ToFeet converts meters to feet.
func ToFeet(meters float64) float64 {
	return meters * 3.28084
}
