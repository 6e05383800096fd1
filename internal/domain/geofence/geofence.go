// Package geofence decides whether a customer stands close enough to a shop to rate it.
package geofence

import (
	"math"

	domainerrors "shopscore/internal/domain/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// DefaultMaxMeters is the rating radius around a shop.
const DefaultMaxMeters = 100.0

// boundaryTolerance absorbs floating-point noise so a point measured at exactly
// maxMeters stays inside.
const boundaryTolerance = 1e-6

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Validate reports InvalidInput for coordinates outside the valid ranges.
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return domainerrors.ErrInvalidInput.WithDetails("coordinates must be numbers")
	}
	if p.Lat < -90 || p.Lat > 90 {
		return domainerrors.ErrInvalidInput.WithDetails("latitude must be within [-90, 90]")
	}
	if p.Lng < -180 || p.Lng > 180 {
		return domainerrors.ErrInvalidInput.WithDetails("longitude must be within [-180, 180]")
	}

	return nil
}

func (p Point) orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// Distance returns the WGS84 ellipsoidal surface distance between two points in meters.
// Nearly antipodal pairs, where Vincenty does not converge, fall back to the spherical distance.
func Distance(a, b Point) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	if meters, ok := vincentyDistance(a.orb(), b.orb()); ok {
		return meters, nil
	}

	return geo.Distance(a.orb(), b.orb()), nil
}

// WithinRange reports whether customer is at most maxMeters from shop. The bound is inclusive.
func WithinRange(customer, shop Point, maxMeters float64) (bool, error) {
	distance, err := Distance(customer, shop)
	if err != nil {
		return false, err
	}

	return distance <= maxMeters+boundaryTolerance, nil
}
