package aoi

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/geoharvest/tilescout/internal/geodesy"
)

// BoundingBox builds a closed square around a geographic centroid with the
// given half-width in meters. The square is axis-aligned in the centroid's
// UTM zone and returned in geographic coordinates, ring order bottom-left,
// bottom-right, top-right, top-left, bottom-left.
func BoundingBox(centroid orb.Point, distance float64) (orb.Polygon, error) {
	if distance <= 0 {
		return nil, fmt.Errorf("%w: %.3f m", ErrInvalidBufferDistance, distance)
	}

	tr, err := geodesy.TransformerFor(geodesy.Coordinate{Lon: centroid.Lon(), Lat: centroid.Lat()})
	if err != nil {
		return nil, err
	}

	x, y := tr.ToPlanar(centroid.Lon(), centroid.Lat())
	x0, y0 := x-distance, y-distance
	x1, y1 := x+distance, y+distance

	corner := func(px, py float64) orb.Point {
		lon, lat := tr.ToGeographic(px, py)
		return orb.Point{lon, lat}
	}

	ring := orb.Ring{
		corner(x0, y0),
		corner(x1, y0),
		corner(x1, y1),
		corner(x0, y1),
		corner(x0, y0),
	}
	return orb.Polygon{ring}, nil
}
