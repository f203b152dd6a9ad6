// Package geodesy resolves UTM zones for geographic coordinates and builds
// the matching WGS84 <-> UTM transformer pairs used for metric buffering.
package geodesy

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoordinate is returned when a longitude/latitude pair is
	// outside the geographic domain.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrUnresolvedZone is returned when a latitude falls outside the UTM
	// band-letter table ([-80, 84]).
	ErrUnresolvedZone = errors.New("unresolved utm zone")
)

// Coordinate is a geographic (lon, lat) pair in degrees, WGS84 datum.
type Coordinate struct {
	Lon float64 // degrees, [-180, 180)
	Lat float64 // degrees, [-90, 90]
}

// Validate checks that the coordinate is within the geographic domain.
func (c Coordinate) Validate() error {
	if c.Lon < -180 || c.Lon >= 180 {
		return fmt.Errorf("%w: longitude %.6f out of [-180, 180)", ErrInvalidCoordinate, c.Lon)
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %.6f out of [-90, 90]", ErrInvalidCoordinate, c.Lat)
	}
	return nil
}

// String returns the coordinate as "lon,lat".
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lon, c.Lat)
}
