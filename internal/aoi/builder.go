package aoi

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/geoharvest/tilescout/internal/geodesy"
)

// Build converts a geographic geometry plus its feature properties into a
// normalized AOI. Points become a square box around the point; lines and
// polygons are projected to the local UTM zone, buffered in meters and
// reprojected, unless cfg.BBox forces a centroid box instead.
func Build(geom orb.Geometry, props map[string]interface{}, cfg Config) (*AreaOfInterest, error) {
	if geom == nil {
		return nil, ErrNullGeometry
	}
	if cfg.Distance < 0 {
		return nil, fmt.Errorf("%w: %.3f m", ErrInvalidBufferDistance, cfg.Distance)
	}

	var (
		result   orb.Geometry
		distance float64
		err      error
	)

	switch g := geom.(type) {
	case orb.Point:
		distance = defaultDistance(cfg.Distance, DefaultPointDistance)
		result, err = boxGeometry(g, distance)

	default:
		if cfg.BBox {
			centroid, _ := planar.CentroidArea(geom)
			distance = defaultDistance(cfg.Distance, DefaultPointDistance)
			result, err = boxGeometry(centroid, distance)
			break
		}

		distance = defaultDistance(cfg.Distance, DefaultBufferDistance)
		result, err = bufferGeometry(g, distance)
	}
	if err != nil {
		return nil, err
	}

	return &AreaOfInterest{
		Name:       ResolveName(props, cfg),
		SourceType: SourceType(geom.GeoJSONType()),
		Distance:   distance,
		Geometry:   result,
	}, nil
}

func boxGeometry(centroid orb.Point, distance float64) (orb.Geometry, error) {
	poly, err := BoundingBox(centroid, distance)
	if err != nil {
		return nil, err
	}
	return poly, nil
}

// bufferGeometry resolves the zone from the geometry's lower-left bound,
// buffers in that zone's planar meters and brings the result back to
// geographic coordinates.
func bufferGeometry(geom orb.Geometry, distance float64) (orb.Geometry, error) {
	lowerLeft := geom.Bound().Min
	tr, err := geodesy.TransformerFor(geodesy.Coordinate{Lon: lowerLeft.Lon(), Lat: lowerLeft.Lat()})
	if err != nil {
		return nil, err
	}

	buffered, err := Buffer(tr.Project(geom), distance)
	if err != nil {
		return nil, err
	}
	return tr.Unproject(buffered), nil
}

func defaultDistance(configured, fallback float64) float64 {
	if configured > 0 {
		return configured
	}
	return fallback
}
