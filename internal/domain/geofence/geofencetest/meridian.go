// Package geofencetest places test coordinates at exact WGS84 distances.
// It measures along a meridian with the closed-form arc length series, so it
// does not share code with the distance the geofence computes.
package geofencetest

import "math"

const (
	semiMajor  = 6378137.0
	flattening = 1 / 298.257223563
)

// meridianArc returns the WGS84 meridian arc length from the equator to lat (radians).
func meridianArc(lat float64) float64 {
	e2 := flattening * (2 - flattening)
	e4 := e2 * e2
	e6 := e4 * e2

	return semiMajor * ((1-e2/4-3*e4/64-5*e6/256)*lat -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*lat) +
		(15*e4/256+45*e6/1024)*math.Sin(4*lat) -
		(35*e6/3072)*math.Sin(6*lat))
}

// NorthOf returns the latitude lying meters due north of lat (degrees) on the WGS84 ellipsoid.
func NorthOf(lat, meters float64) float64 {
	start := lat * math.Pi / 180
	target := meridianArc(start) + meters

	lo, hi := start, start+meters/6.3e6+1e-6
	for range 200 {
		mid := (lo + hi) / 2
		if meridianArc(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2 * 180 / math.Pi
}
