package geofence

import (
	"math"

	"github.com/paulmach/orb"
)

// WGS84 ellipsoid parameters.
const (
	wgs84SemiMajor  = 6378137.0
	wgs84Flattening = 1 / 298.257223563
	wgs84SemiMinor  = (1 - wgs84Flattening) * wgs84SemiMajor
	vincentyMaxIter = 200
	vincentyEpsilon = 1e-12
)

// vincentyDistance returns the WGS84 geodesic length between a and b in meters
// using Vincenty's inverse formula. ok is false when the iteration does not
// converge, which only happens for nearly antipodal points.
func vincentyDistance(a, b orb.Point) (meters float64, ok bool) {
	const f = wgs84Flattening

	lat1, lat2 := deg2rad(a.Lat()), deg2rad(b.Lat())
	l := deg2rad(b.Lon() - a.Lon())

	u1 := math.Atan((1 - f) * math.Tan(lat1))
	u2 := math.Atan((1 - f) * math.Tan(lat2))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	lambda := l
	var sinSigma, cosSigma, sigma, cos2Alpha, cos2SigmaM float64
	converged := false
	for range vincentyMaxIter {
		sinLambda, cosLambda := math.Sincos(lambda)
		sinSigma = math.Hypot(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
		if sinSigma == 0 {
			return 0, true
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cos2Alpha = 1 - sinAlpha*sinAlpha
		cos2SigmaM = 0
		if cos2Alpha != 0 {
			// Equatorial lines have cos2Alpha == 0.
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cos2Alpha
		}

		c := f / 16 * cos2Alpha * (4 + f*(4-3*cos2Alpha))
		prev := lambda
		lambda = l + (1-c)*f*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda-prev) < vincentyEpsilon {
			converged = true

			break
		}
	}
	if !converged {
		return 0, false
	}

	uSq := cos2Alpha * (wgs84SemiMajor*wgs84SemiMajor - wgs84SemiMinor*wgs84SemiMinor) /
		(wgs84SemiMinor * wgs84SemiMinor)
	bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := bigB * sinSigma * (cos2SigmaM + bigB/4*
		(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			bigB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return wgs84SemiMinor * bigA * (sigma - deltaSigma), true
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
