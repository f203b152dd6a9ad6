package geodesy

import (
	"fmt"
	"math"
)

// bandLetters is the MGRS latitude band alphabet. Index with
// floor((lat+80)/8); the doubled X covers the stretched 72..84 band.
const bandLetters = "CDEFGHJKLMNPQRSTUVWXX"

// Zone identifies a UTM zone: number 1-60 plus the latitude band letter.
// North reports the hemisphere used for the projected CRS.
type Zone struct {
	Number int
	Band   byte
	North  bool
}

// String returns the zone in the usual "32U" notation.
func (z Zone) String() string {
	return fmt.Sprintf("%d%c", z.Number, z.Band)
}

// EPSG returns the EPSG code of the zone's projected CRS
// (326xx north, 327xx south).
func (z Zone) EPSG() int {
	if z.North {
		return 32600 + z.Number
	}
	return 32700 + z.Number
}

// ResolveZone derives the UTM zone for a coordinate, applying the Norway
// and Svalbard exceptions to the default 6-degree slicing.
func ResolveZone(c Coordinate) (Zone, error) {
	if err := c.Validate(); err != nil {
		return Zone{}, err
	}

	band, err := zoneBand(c.Lat)
	if err != nil {
		return Zone{}, err
	}

	return Zone{
		Number: zoneNumber(c),
		Band:   band,
		North:  c.Lat > 0,
	}, nil
}

func zoneNumber(c Coordinate) int {
	// Norway: zone 32 is widened westward over the coast.
	if 56 <= c.Lat && c.Lat < 64 && 3 <= c.Lon && c.Lon < 12 {
		return 32
	}

	// Svalbard: zones 32, 34 and 36 are skipped entirely.
	if 72 <= c.Lat && c.Lat < 84 && 0 <= c.Lon && c.Lon < 42 {
		switch {
		case c.Lon < 9:
			return 31
		case c.Lon < 21:
			return 33
		case c.Lon < 33:
			return 35
		default:
			return 37
		}
	}

	return int(math.Floor((c.Lon+180)/6)) + 1
}

func zoneBand(lat float64) (byte, error) {
	idx := int(math.Floor((lat + 80) / 8))
	if idx < 0 || idx >= len(bandLetters) {
		return 0, fmt.Errorf("%w: latitude %.6f outside band table [-80, 84]", ErrUnresolvedZone, lat)
	}
	return bandLetters[idx], nil
}
