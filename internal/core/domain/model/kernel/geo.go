package kernel

import (
	"errors"
	"fmt"

	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

const (
	// GeoLatMin is the minimum valid latitude in degrees.
	GeoLatMin = -90.0
	// GeoLatMax is the maximum valid latitude in degrees.
	GeoLatMax = 90.0
	// GeoLngMin is the minimum valid longitude in degrees.
	GeoLngMin = -180.0
	// GeoLngMax is the maximum valid longitude in degrees.
	GeoLngMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when validating a zero-value GeoPoint.
// GeoPoints must be created via NewGeoPoint to guarantee valid coordinates.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding validated geographic
// coordinates. It locates printshops for the dashboard's map consumers.
// The zero value is invalid; use NewGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(52.37, 4.89)
//	if err != nil {
//	    // handle validation error
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given latitude and longitude.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual reports whether two points hold identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// String returns a "GeoPoint(lat,lng)" representation for logs.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lat, p.lng)
}

// Validate returns ErrGeoPointIsNotConstructed for a zero-value GeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < GeoLatMin || lat > GeoLatMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, GeoLatMin, GeoLatMax)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < GeoLngMin || lng > GeoLngMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, GeoLngMin, GeoLngMax)
	}
	p.lng = lng
	return nil
}
