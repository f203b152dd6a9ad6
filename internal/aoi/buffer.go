package aoi

import (
	"fmt"
	"math"

	"github.com/engelsjk/polygol"
	"github.com/paulmach/orb"
)

// arcSegments is the number of chords approximating a full buffer circle.
const arcSegments = 32

// Buffer offsets a planar geometry outward by distance meters with
// Minkowski-sum-with-disk semantics: the union of the input with a disc
// swept along every edge. Arcs are discretized at arcSegments chords per
// circle. The input must already be in a planar (metric) CRS.
func Buffer(g orb.Geometry, distance float64) (orb.Geometry, error) {
	if distance <= 0 {
		return nil, fmt.Errorf("%w: %.3f m", ErrInvalidBufferDistance, distance)
	}

	var pieces []polygol.Geom
	switch geom := g.(type) {
	case orb.LineString:
		pieces = pathPieces(geom, false, distance)
	case orb.MultiLineString:
		for _, ls := range geom {
			pieces = append(pieces, pathPieces(ls, false, distance)...)
		}
	case orb.Polygon:
		pieces = polygonPieces(geom, distance)
	case orb.MultiPolygon:
		for _, poly := range geom {
			pieces = append(pieces, polygonPieces(poly, distance)...)
		}
	default:
		return nil, fmt.Errorf("cannot buffer geometry type %s", g.GeoJSONType())
	}
	if len(pieces) == 0 {
		return nil, ErrNullGeometry
	}

	union, err := polygol.Union(pieces[0], pieces[1:]...)
	if err != nil {
		return nil, fmt.Errorf("buffer union: %w", err)
	}
	return multiPolygonFromGeom(union), nil
}

// polygonPieces covers the polygon interior plus a disc sweep along every
// ring, so the exterior grows and holes shrink by the offset.
func polygonPieces(poly orb.Polygon, distance float64) []polygol.Geom {
	pieces := []polygol.Geom{polygonGeom(poly)}
	for _, ring := range poly {
		pieces = append(pieces, pathPieces(orb.LineString(ring), true, distance)...)
	}
	return pieces
}

// pathPieces builds the sweep cover of a point sequence: a disc at every
// vertex and a rectangle along every segment.
func pathPieces(points orb.LineString, closed bool, distance float64) []polygol.Geom {
	if len(points) == 0 {
		return nil
	}

	pieces := make([]polygol.Geom, 0, 2*len(points))
	for _, p := range points {
		pieces = append(pieces, discGeom(p, distance))
	}

	last := len(points) - 1
	for i := 0; i < last; i++ {
		if quad, ok := segmentQuad(points[i], points[i+1], distance); ok {
			pieces = append(pieces, quad)
		}
	}
	if closed && last > 0 {
		if quad, ok := segmentQuad(points[last], points[0], distance); ok {
			pieces = append(pieces, quad)
		}
	}
	return pieces
}

// segmentQuad is the rectangle of half-width distance along segment p-q.
// Degenerate segments report ok=false; the vertex discs already cover them.
func segmentQuad(p, q orb.Point, distance float64) (polygol.Geom, bool) {
	dx, dy := q[0]-p[0], q[1]-p[1]
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil, false
	}

	// unit normal scaled to the offset
	nx := -dy / length * distance
	ny := dx / length * distance

	ring := [][]float64{
		{p[0] + nx, p[1] + ny},
		{q[0] + nx, q[1] + ny},
		{q[0] - nx, q[1] - ny},
		{p[0] - nx, p[1] - ny},
		{p[0] + nx, p[1] + ny},
	}
	return polygol.Geom{{ring}}, true
}

func discGeom(center orb.Point, radius float64) polygol.Geom {
	ring := make([][]float64, 0, arcSegments+1)
	for i := 0; i < arcSegments; i++ {
		angle := 2 * math.Pi * float64(i) / arcSegments
		ring = append(ring, []float64{
			center[0] + radius*math.Cos(angle),
			center[1] + radius*math.Sin(angle),
		})
	}
	ring = append(ring, ring[0])
	return polygol.Geom{{ring}}
}

func polygonGeom(poly orb.Polygon) polygol.Geom {
	rings := make([][][]float64, 0, len(poly))
	for _, ring := range poly {
		pts := make([][]float64, 0, len(ring)+1)
		for _, p := range ring {
			pts = append(pts, []float64{p[0], p[1]})
		}
		if len(pts) > 0 && (pts[0][0] != pts[len(pts)-1][0] || pts[0][1] != pts[len(pts)-1][1]) {
			pts = append(pts, []float64{pts[0][0], pts[0][1]})
		}
		rings = append(rings, pts)
	}
	return polygol.Geom{rings}
}

// multiPolygonFromGeom converts a clipping result back to orb, collapsing a
// single-polygon result to orb.Polygon.
func multiPolygonFromGeom(g polygol.Geom) orb.Geometry {
	mp := make(orb.MultiPolygon, 0, len(g))
	for _, poly := range g {
		rings := make(orb.Polygon, 0, len(poly))
		for _, ring := range poly {
			r := make(orb.Ring, 0, len(ring)+1)
			for _, pt := range ring {
				r = append(r, orb.Point{pt[0], pt[1]})
			}
			if len(r) > 0 && r[0] != r[len(r)-1] {
				r = append(r, r[0])
			}
			rings = append(rings, r)
		}
		mp = append(mp, rings)
	}
	if len(mp) == 1 {
		return mp[0]
	}
	return mp
}
