package geodesy

import (
	"fmt"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/paulmach/orb"
	"github.com/wroge/wgs84"
)

// UTM projection parameters (WGS84 datum).
const (
	utmScaleFactor    = 0.9996
	utmFalseEasting   = 500000.0
	utmFalseNorthing  = 10000000.0
	utmCentralLatOrig = 0.0
)

// Transformer holds a paired forward/inverse transformation between
// geographic WGS84 coordinates and a single UTM zone. Both directions are
// exact inverses to double-precision round-trip tolerance. A Transformer is
// immutable and safe for concurrent use.
type Transformer struct {
	zone    Zone
	forward func(a, b, c float64) (a2, b2, c2 float64)
	inverse func(a, b, c float64) (a2, b2, c2 float64)
}

// transformers caches one Transformer per zone+hemisphere key. Construction
// is side-effect-free, so a racing duplicate build is harmless.
var transformers = cmap.New[*Transformer]()

// NewTransformer builds the transformer pair for a zone.
func NewTransformer(zone Zone) *Transformer {
	datum := wgs84.WGS84()

	centralMeridian := float64(zone.Number)*6 - 183
	falseNorthing := utmFalseNorthing
	if zone.North {
		falseNorthing = 0
	}
	utm := datum.TransverseMercator(centralMeridian, utmCentralLatOrig, utmScaleFactor, utmFalseEasting, falseNorthing)

	return &Transformer{
		zone:    zone,
		forward: wgs84.Transform(datum.LonLat(), utm),
		inverse: wgs84.Transform(utm, datum.LonLat()),
	}
}

// TransformerFor resolves the UTM zone of a coordinate and returns the
// cached transformer for it, constructing it on first use.
func TransformerFor(c Coordinate) (*Transformer, error) {
	zone, err := ResolveZone(c)
	if err != nil {
		return nil, err
	}

	key := hemisphereKey(zone)
	if t, ok := transformers.Get(key); ok {
		return t, nil
	}

	t := NewTransformer(zone)
	transformers.SetIfAbsent(key, t)
	t, _ = transformers.Get(key)
	return t, nil
}

// hemisphereKey ignores the band letter: bands within a hemisphere share
// one projected CRS.
func hemisphereKey(z Zone) string {
	if z.North {
		return fmt.Sprintf("%dN", z.Number)
	}
	return fmt.Sprintf("%dS", z.Number)
}

// Zone returns the zone this transformer is bound to.
func (t *Transformer) Zone() Zone {
	return t.zone
}

// ToPlanar projects a geographic coordinate to UTM easting/northing meters.
func (t *Transformer) ToPlanar(lon, lat float64) (x, y float64) {
	x, y, _ = t.forward(lon, lat, 0)
	return x, y
}

// ToGeographic converts UTM easting/northing meters back to lon/lat degrees.
func (t *Transformer) ToGeographic(x, y float64) (lon, lat float64) {
	lon, lat, _ = t.inverse(x, y, 0)
	return lon, lat
}

// Project applies the forward transformation to every coordinate of a
// geometry, returning a new geometry in planar meters.
func (t *Transformer) Project(g orb.Geometry) orb.Geometry {
	return mapGeometry(g, func(p orb.Point) orb.Point {
		x, y := t.ToPlanar(p[0], p[1])
		return orb.Point{x, y}
	})
}

// Unproject applies the inverse transformation to every coordinate of a
// geometry, returning a new geometry in geographic degrees.
func (t *Transformer) Unproject(g orb.Geometry) orb.Geometry {
	return mapGeometry(g, func(p orb.Point) orb.Point {
		lon, lat := t.ToGeographic(p[0], p[1])
		return orb.Point{lon, lat}
	})
}

// mapGeometry rebuilds a geometry with fn applied to each point. Inputs are
// never mutated.
func mapGeometry(g orb.Geometry, fn func(orb.Point) orb.Point) orb.Geometry {
	switch geom := g.(type) {
	case orb.Point:
		return fn(geom)
	case orb.MultiPoint:
		out := make(orb.MultiPoint, len(geom))
		for i, p := range geom {
			out[i] = fn(p)
		}
		return out
	case orb.LineString:
		out := make(orb.LineString, len(geom))
		for i, p := range geom {
			out[i] = fn(p)
		}
		return out
	case orb.MultiLineString:
		out := make(orb.MultiLineString, len(geom))
		for i, ls := range geom {
			out[i] = mapGeometry(ls, fn).(orb.LineString)
		}
		return out
	case orb.Ring:
		out := make(orb.Ring, len(geom))
		for i, p := range geom {
			out[i] = fn(p)
		}
		return out
	case orb.Polygon:
		out := make(orb.Polygon, len(geom))
		for i, r := range geom {
			out[i] = mapGeometry(r, fn).(orb.Ring)
		}
		return out
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, len(geom))
		for i, poly := range geom {
			out[i] = mapGeometry(poly, fn).(orb.Polygon)
		}
		return out
	default:
		return g
	}
}
