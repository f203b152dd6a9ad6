// Package aoi normalizes input geometries into buffered Areas of Interest
// expressed in geographic coordinates. Metric operations happen in the local
// UTM zone; results always come back as WGS84 lon/lat.
package aoi

import (
	"errors"

	"github.com/paulmach/orb"
)

// Default buffer radii in meters.
const (
	DefaultPointDistance  = 1000.0 // square half-width for point features
	DefaultBufferDistance = 10.0   // offset for line/polygon features
)

var (
	// ErrNullGeometry is returned when a feature has no usable geometry.
	ErrNullGeometry = errors.New("null geometry")

	// ErrInvalidBufferDistance is returned for a non-positive buffer radius.
	ErrInvalidBufferDistance = errors.New("invalid buffer distance")
)

// SourceType is the geometry kind an AOI was derived from.
type SourceType string

const (
	SourcePoint        SourceType = "Point"
	SourceLineString   SourceType = "LineString"
	SourcePolygon      SourceType = "Polygon"
	SourceMultiPolygon SourceType = "MultiPolygon"
)

// AreaOfInterest is a normalized search region: a valid polygon or
// multipolygon in geographic coordinates, never mutated after construction.
type AreaOfInterest struct {
	Name       string
	SourceType SourceType
	Distance   float64 // buffer radius in meters
	Geometry   orb.Geometry
}

// Config carries the recognized AOI build options.
type Config struct {
	// Name is the default AOI name when no usable property value exists.
	// Empty means generate a short random identifier.
	Name string

	// Field is the property key whose value, once sanitized, names the AOI.
	Field string

	// Distance is the buffer radius in meters. Zero means use the
	// per-geometry default; negative is an error.
	Distance float64

	// BBox forces centroid bounding-box mode for line/polygon input.
	BBox bool
}
