// Package pyramid implements the two global tile pyramids used for imagery
// addressing: a TMS/Google-compatible spherical-Mercator pyramid and the
// OSM-style slippy-map pyramid. The two keep deliberately different sphere
// approximations; downstream tile services depend on each exact convention.
package pyramid

import (
	"errors"
	"fmt"
)

// MaxZoom is the exclusive upper bound of the pyramid depth.
const MaxZoom = 30

// ErrTileIndexOutOfRange is returned for a zoom outside [0, 30) or an x/y
// outside [0, 2^zoom).
var ErrTileIndexOutOfRange = errors.New("tile index out of range")

// Convention tags the origin convention of a tile coordinate.
type Convention string

const (
	// ConventionTMS counts tiles from the bottom-left corner.
	ConventionTMS Convention = "tms"
	// ConventionGoogle counts tiles from the top-left corner.
	ConventionGoogle Convention = "google"
	// ConventionSlippy is the OSM naming scheme; numerically identical to
	// the Google convention.
	ConventionSlippy Convention = "slippy"
)

// ParseConvention returns the Convention for a user-supplied string.
func ParseConvention(s string) (Convention, error) {
	switch Convention(s) {
	case ConventionTMS, ConventionGoogle, ConventionSlippy:
		return Convention(s), nil
	}
	return "", fmt.Errorf("unknown tile convention %q (want tms, google or slippy)", s)
}

// Tile is an integer tile address at a zoom level. The convention (TMS or
// Google/slippy) is tracked by the caller; FlipY converts between the two.
type Tile struct {
	X    int
	Y    int
	Zoom int
}

// String returns the tile as "z/x/y".
func (t Tile) String() string {
	return fmt.Sprintf("%d/%d/%d", t.Zoom, t.X, t.Y)
}

// Validate checks the tile indices against the pyramid extent.
func (t Tile) Validate() error {
	if t.Zoom < 0 || t.Zoom >= MaxZoom {
		return fmt.Errorf("%w: zoom %d outside [0, %d)", ErrTileIndexOutOfRange, t.Zoom, MaxZoom)
	}
	n := 1 << t.Zoom
	if t.X < 0 || t.X >= n || t.Y < 0 || t.Y >= n {
		return fmt.Errorf("%w: tile %d/%d at zoom %d outside [0, %d)", ErrTileIndexOutOfRange, t.X, t.Y, t.Zoom, n)
	}
	return nil
}

// FlipY mirrors the row index, converting a TMS tile to the Google
// convention or back. The flip is its own inverse.
func (t Tile) FlipY() Tile {
	return Tile{X: t.X, Y: (1 << t.Zoom) - 1 - t.Y, Zoom: t.Zoom}
}

func validZoom(zoom int) error {
	if zoom < 0 || zoom >= MaxZoom {
		return fmt.Errorf("%w: zoom %d outside [0, %d)", ErrTileIndexOutOfRange, zoom, MaxZoom)
	}
	return nil
}
