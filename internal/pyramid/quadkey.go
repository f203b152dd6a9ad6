package pyramid

import (
	"fmt"
)

// QuadKey is the Microsoft base-4 tile address: one digit per zoom level,
// most significant level first. It encodes a Google-convention tile.
type QuadKey string

// ToQuadKey encodes a TMS tile as a quadkey.
func ToQuadKey(t Tile) (QuadKey, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	g := t.FlipY()
	buf := make([]byte, 0, t.Zoom)
	for i := t.Zoom; i > 0; i-- {
		digit := byte('0')
		mask := 1 << (i - 1)
		if g.X&mask != 0 {
			digit++
		}
		if g.Y&mask != 0 {
			digit += 2
		}
		buf = append(buf, digit)
	}
	return QuadKey(buf), nil
}

// FromQuadKey decodes a quadkey back to the TMS tile it addresses.
func FromQuadKey(q QuadKey) (Tile, error) {
	zoom := len(q)
	if zoom >= MaxZoom {
		return Tile{}, fmt.Errorf("%w: quadkey length %d outside [0, %d)", ErrTileIndexOutOfRange, zoom, MaxZoom)
	}

	var x, y int
	for i, c := range []byte(q) {
		mask := 1 << (zoom - 1 - i)
		switch c {
		case '0':
		case '1':
			x |= mask
		case '2':
			y |= mask
		case '3':
			x |= mask
			y |= mask
		default:
			return Tile{}, fmt.Errorf("invalid quadkey digit %q in %q", c, q)
		}
	}

	return Tile{X: x, Y: y, Zoom: zoom}.FlipY(), nil
}
