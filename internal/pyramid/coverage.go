package pyramid

import (
	"math"

	"github.com/paulmach/orb"
)

// Coverage enumerates the tiles covering a geographic bound at a zoom level,
// row-major, under the requested convention. Latitudes beyond the Mercator
// clip edge are clamped to it, so a world-spanning bound stays addressable.
func Coverage(b orb.Bound, zoom int, conv Convention) ([]Tile, error) {
	if err := validZoom(zoom); err != nil {
		return nil, err
	}

	s := NewSlippy()
	n := int(s.NumTiles(zoom))

	minX, maxY := clampedXY(s, b.Min.Lat(), b.Min.Lon(), zoom, n)
	maxX, minY := clampedXY(s, b.Max.Lat(), b.Max.Lon(), zoom, n)

	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	tiles := make([]Tile, 0, (maxX-minX+1)*(maxY-minY+1))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			t := Tile{X: x, Y: y, Zoom: zoom}
			if conv == ConventionTMS {
				t = t.FlipY()
			}
			tiles = append(tiles, t)
		}
	}
	return tiles, nil
}

func clampedXY(s Slippy, lat, lon float64, zoom, n int) (x, y int) {
	lat = math.Max(-MaxLatitude, math.Min(MaxLatitude, lat))
	fx, fy := s.LatLonToXY(lat, lon, zoom)
	x = clampIndex(int(fx), n)
	y = clampIndex(int(fy), n)
	return x, y
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
