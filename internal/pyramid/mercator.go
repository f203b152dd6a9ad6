package pyramid

import (
	"fmt"
	"math"

	"github.com/geoharvest/tilescout/internal/geodesy"
)

const (
	// EarthRadius is the WGS84 semi-major axis, used as sphere radius by
	// the spherical-Mercator projection (EPSG:3857).
	EarthRadius = 6378137.0

	// MaxLatitude is the latitude at which the square Mercator extent is
	// clipped. Coordinates beyond it are outside the projection.
	MaxLatitude = 85.05112878

	// DefaultTileSize is the usual tile edge in pixels.
	DefaultTileSize = 256
)

// Mercator is the TMS global spherical-Mercator pyramid. Pixel and tile
// coordinates use TMS notation: origin [0,0] at the bottom-left.
//
// All conversions are pure functions; a Mercator value is safe to share.
type Mercator struct {
	tileSize          float64
	initialResolution float64
	originShift       float64
}

// NewMercator initializes the pyramid for a tile edge length in pixels.
// A non-positive size falls back to DefaultTileSize.
func NewMercator(tileSize int) Mercator {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return Mercator{
		tileSize:          float64(tileSize),
		initialResolution: 2 * math.Pi * EarthRadius / float64(tileSize), // 156543.03392804062 for 256px
		originShift:       math.Pi * EarthRadius,                         // 20037508.342789244
	}
}

// TileSize returns the tile edge in pixels.
func (m Mercator) TileSize() int {
	return int(m.tileSize)
}

// LatLonToMeters converts WGS84 lat/lon degrees to spherical-Mercator
// meters. Latitudes beyond MaxLatitude are outside the projection and must
// be rejected or clamped by the caller.
func (m Mercator) LatLonToMeters(lat, lon float64) (mx, my float64) {
	mx = lon * m.originShift / 180.0
	my = math.Log(math.Tan((90+lat)*math.Pi/360.0)) / (math.Pi / 180.0)
	my = my * m.originShift / 180.0
	return mx, my
}

// MetersToLatLon converts spherical-Mercator meters back to WGS84 degrees.
func (m Mercator) MetersToLatLon(mx, my float64) (lat, lon float64) {
	lon = (mx / m.originShift) * 180.0
	lat = (my / m.originShift) * 180.0
	lat = 180 / math.Pi * (2*math.Atan(math.Exp(lat*math.Pi/180.0)) - math.Pi/2.0)
	return lat, lon
}

// Resolution returns meters per pixel at the equator for a zoom level.
func (m Mercator) Resolution(zoom int) float64 {
	return m.initialResolution / math.Exp2(float64(zoom))
}

// ZoomForPixelSize returns the smallest zoom whose resolution is finer than
// the given pixel size in meters, never scaling up past zoom 0. A size finer
// than every level yields the deepest level.
func (m Mercator) ZoomForPixelSize(pixelSize float64) int {
	for z := 0; z < MaxZoom; z++ {
		if m.Resolution(z) < pixelSize {
			return z
		}
	}
	return MaxZoom - 1
}

// PixelsToMeters converts pyramid pixel coordinates at a zoom level to
// spherical-Mercator meters.
func (m Mercator) PixelsToMeters(px, py float64, zoom int) (mx, my float64) {
	res := m.Resolution(zoom)
	mx = px*res - m.originShift
	my = py*res - m.originShift
	return mx, my
}

// MetersToPixels converts spherical-Mercator meters to pyramid pixel
// coordinates at a zoom level.
func (m Mercator) MetersToPixels(mx, my float64, zoom int) (px, py float64) {
	res := m.Resolution(zoom)
	px = (mx + m.originShift) / res
	py = (my + m.originShift) / res
	return px, py
}

// PixelsToTile returns the TMS tile covering the given pixel coordinates.
func (m Mercator) PixelsToTile(px, py float64) (tx, ty int) {
	tx = int(math.Ceil(px/m.tileSize) - 1)
	ty = int(math.Ceil(py/m.tileSize) - 1)
	return tx, ty
}

// PixelsToRaster moves the pixel origin from bottom-left to top-left.
func (m Mercator) PixelsToRaster(px, py float64, zoom int) (rx, ry float64) {
	mapSize := m.tileSize * math.Exp2(float64(zoom))
	return px, mapSize - py
}

// MetersToTile returns the TMS tile containing a spherical-Mercator point.
func (m Mercator) MetersToTile(mx, my float64, zoom int) (tx, ty int) {
	px, py := m.MetersToPixels(mx, my, zoom)
	return m.PixelsToTile(px, py)
}

// LatLonToTile returns the TMS tile containing a geographic point.
func (m Mercator) LatLonToTile(lat, lon float64, zoom int) (Tile, error) {
	if err := validZoom(zoom); err != nil {
		return Tile{}, err
	}
	if math.Abs(lat) > MaxLatitude {
		return Tile{}, fmt.Errorf("%w: latitude %.6f beyond ±%v", geodesy.ErrInvalidCoordinate, lat, MaxLatitude)
	}
	mx, my := m.LatLonToMeters(lat, lon)
	tx, ty := m.MetersToTile(mx, my, zoom)
	return Tile{X: tx, Y: ty, Zoom: zoom}, nil
}

// TileBounds returns the spherical-Mercator bounds of a TMS tile as
// (minx, miny, maxx, maxy).
func (m Mercator) TileBounds(t Tile) (minx, miny, maxx, maxy float64, err error) {
	if err := t.Validate(); err != nil {
		return 0, 0, 0, 0, err
	}
	minx, miny = m.PixelsToMeters(float64(t.X)*m.tileSize, float64(t.Y)*m.tileSize, t.Zoom)
	maxx, maxy = m.PixelsToMeters(float64(t.X+1)*m.tileSize, float64(t.Y+1)*m.tileSize, t.Zoom)
	return minx, miny, maxx, maxy, nil
}

// TileLatLonBounds returns the geographic bounds of a TMS tile as
// (minLat, minLon, maxLat, maxLon).
func (m Mercator) TileLatLonBounds(t Tile) (minLat, minLon, maxLat, maxLon float64, err error) {
	minx, miny, maxx, maxy, err := m.TileBounds(t)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	minLat, minLon = m.MetersToLatLon(minx, miny)
	maxLat, maxLon = m.MetersToLatLon(maxx, maxy)
	return minLat, minLon, maxLat, maxLon, nil
}

// GoogleTile converts a TMS tile to the Google convention (origin top-left).
func (m Mercator) GoogleTile(t Tile) (Tile, error) {
	if err := t.Validate(); err != nil {
		return Tile{}, err
	}
	return t.FlipY(), nil
}
