package pyramid

import (
	"fmt"
	"math"

	"github.com/geoharvest/tilescout/internal/geodesy"
)

// Slippy is the OSM slippy-map pyramid (origin top-left). Unlike Mercator it
// maps lat/lon straight to fractional tile coordinates on a unit sphere,
// with no intermediate metric projection.
type Slippy struct{}

// NewSlippy returns the slippy-map pyramid.
func NewSlippy() Slippy {
	return Slippy{}
}

// NumTiles returns the tile count per axis at a zoom level.
func (s Slippy) NumTiles(zoom int) float64 {
	return math.Exp2(float64(zoom))
}

// LatLonToRelativeXY maps a geographic point into the unit square covering
// the world, x eastward from -180 and y southward from the north clip edge.
func (s Slippy) LatLonToRelativeXY(lat, lon float64) (x, y float64) {
	latRad := lat * math.Pi / 180.0
	x = (lon + 180.0) / 360.0
	y = (1.0 - math.Log(math.Tan(latRad)+1.0/math.Cos(latRad))/math.Pi) / 2.0
	return x, y
}

// LatLonToXY returns fractional tile coordinates at a zoom level.
func (s Slippy) LatLonToXY(lat, lon float64, zoom int) (x, y float64) {
	n := s.NumTiles(zoom)
	x, y = s.LatLonToRelativeXY(lat, lon)
	return n * x, n * y
}

// LatLonToTile returns the tile containing a geographic point.
func (s Slippy) LatLonToTile(lat, lon float64, zoom int) (Tile, error) {
	if err := validZoom(zoom); err != nil {
		return Tile{}, err
	}
	if math.Abs(lat) > MaxLatitude {
		return Tile{}, fmt.Errorf("%w: latitude %.6f beyond ±%v", geodesy.ErrInvalidCoordinate, lat, MaxLatitude)
	}
	x, y := s.LatLonToXY(lat, lon, zoom)
	return Tile{X: int(x), Y: int(y), Zoom: zoom}, nil
}

// XYToLatLon recovers the geographic point at fractional tile coordinates.
func (s Slippy) XYToLatLon(x, y float64, zoom int) (lat, lon float64) {
	n := s.NumTiles(zoom)
	lat = mercatorToLat(math.Pi * (1 - 2*y/n))
	lon = -180.0 + 360.0*x/n
	return lat, lon
}

// LatBounds returns the north and south latitude edges of tile row y.
func (s Slippy) LatBounds(y, zoom int) (north, south float64) {
	n := s.NumTiles(zoom)
	unit := 1.0 / n
	north = mercatorToLat(math.Pi * (1 - 2*float64(y)*unit))
	south = mercatorToLat(math.Pi * (1 - 2*(float64(y)*unit+unit)))
	return north, south
}

// LonBounds returns the west and east longitude edges of tile column x.
func (s Slippy) LonBounds(x, zoom int) (west, east float64) {
	n := s.NumTiles(zoom)
	unit := 360.0 / n
	west = -180.0 + float64(x)*unit
	return west, west + unit
}

// TileBounds returns the geographic edges of a tile as (south, west,
// north, east).
func (s Slippy) TileBounds(t Tile) (south, west, north, east float64, err error) {
	if err := t.Validate(); err != nil {
		return 0, 0, 0, 0, err
	}
	north, south = s.LatBounds(t.Y, t.Zoom)
	west, east = s.LonBounds(t.X, t.Zoom)
	return south, west, north, east, nil
}

// mercatorToLat converts a unit-sphere Mercator y to latitude degrees.
func mercatorToLat(mercatorY float64) float64 {
	return 180.0 / math.Pi * math.Atan(math.Sinh(mercatorY))
}
