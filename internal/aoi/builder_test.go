package aoi

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/geoharvest/tilescout/internal/geodesy"
)

func TestBuildPointAOI(t *testing.T) {
	a, err := Build(orb.Point{10, 50}, nil, Config{Name: "pt", Distance: 1000})
	if err != nil {
		t.Fatal(err)
	}

	if a.Name != "pt" {
		t.Errorf("Name = %q, want pt", a.Name)
	}
	if a.SourceType != SourcePoint {
		t.Errorf("SourceType = %s, want Point", a.SourceType)
	}
	if a.Distance != 1000 {
		t.Errorf("Distance = %v, want 1000", a.Distance)
	}

	poly, ok := a.Geometry.(orb.Polygon)
	if !ok {
		t.Fatalf("geometry type %T, want Polygon", a.Geometry)
	}
	ring := poly[0]
	if len(ring) != 5 {
		t.Fatalf("ring has %d points, want 5", len(ring))
	}
	if ring[0] != ring[4] {
		t.Error("ring is not closed")
	}

	// reprojected into the local zone the square must be 2000 m x 2000 m
	tr, err := geodesy.TransformerFor(geodesy.Coordinate{Lon: 10, Lat: 50})
	if err != nil {
		t.Fatal(err)
	}
	var xs, ys [4]float64
	for i := 0; i < 4; i++ {
		xs[i], ys[i] = tr.ToPlanar(ring[i].Lon(), ring[i].Lat())
	}

	width := xs[1] - xs[0]  // bottom-left -> bottom-right
	height := ys[3] - ys[0] // bottom-left -> top-left
	if math.Abs(width-2000) > 1 {
		t.Errorf("width = %.3f m, want 2000 within 1 m", width)
	}
	if math.Abs(height-2000) > 1 {
		t.Errorf("height = %.3f m, want 2000 within 1 m", height)
	}
	if diag := math.Hypot(xs[2]-xs[0], ys[2]-ys[0]); math.Abs(diag-2000*math.Sqrt2) > 1.5 {
		t.Errorf("diagonal = %.3f m, want %.3f within 1.5 m", diag, 2000*math.Sqrt2)
	}
}

func TestBuildPointDefaultDistance(t *testing.T) {
	a, err := Build(orb.Point{10, 50}, nil, Config{Name: "pt"})
	if err != nil {
		t.Fatal(err)
	}
	if a.Distance != DefaultPointDistance {
		t.Errorf("Distance = %v, want %v", a.Distance, DefaultPointDistance)
	}
}

func TestBuildLineBuffers(t *testing.T) {
	line := orb.LineString{{9.70, 52.30}, {9.72, 52.31}, {9.74, 52.30}}

	a, err := Build(line, nil, Config{Name: "track"})
	if err != nil {
		t.Fatal(err)
	}

	if a.SourceType != SourceLineString {
		t.Errorf("SourceType = %s, want LineString", a.SourceType)
	}
	if a.Distance != DefaultBufferDistance {
		t.Errorf("Distance = %v, want %v", a.Distance, DefaultBufferDistance)
	}

	// the buffered region must cover every input vertex
	for _, p := range line {
		if !containsPoint(a.Geometry, p) {
			t.Errorf("buffered AOI should contain input vertex %v", p)
		}
	}

	// result stays geographic: near the input coordinates, not UTM meters
	b := a.Geometry.Bound()
	if b.Min.Lon() < 9.6 || b.Max.Lon() > 9.9 || b.Min.Lat() < 52.2 || b.Max.Lat() > 52.4 {
		t.Errorf("AOI bound %v is not in geographic coordinates", b)
	}
}

func TestBuildPolygonBuffers(t *testing.T) {
	square := orb.Polygon{orb.Ring{
		{9.70, 52.30}, {9.75, 52.30}, {9.75, 52.33}, {9.70, 52.33}, {9.70, 52.30},
	}}

	a, err := Build(square, nil, Config{Name: "field", Distance: 50})
	if err != nil {
		t.Fatal(err)
	}

	if a.SourceType != SourcePolygon {
		t.Errorf("SourceType = %s, want Polygon", a.SourceType)
	}
	for _, p := range square[0] {
		if !containsPoint(a.Geometry, p) {
			t.Errorf("buffered AOI should contain input vertex %v", p)
		}
	}
	if !a.Geometry.Bound().Contains(orb.Point{9.725, 52.315}) {
		t.Error("AOI bound should cover the square's interior")
	}
}

func TestBuildBBoxOverride(t *testing.T) {
	square := orb.Polygon{orb.Ring{
		{9.70, 52.30}, {9.75, 52.30}, {9.75, 52.33}, {9.70, 52.33}, {9.70, 52.30},
	}}

	a, err := Build(square, nil, Config{Name: "box", BBox: true})
	if err != nil {
		t.Fatal(err)
	}

	if a.Distance != DefaultPointDistance {
		t.Errorf("Distance = %v, want centroid-box default %v", a.Distance, DefaultPointDistance)
	}
	poly, ok := a.Geometry.(orb.Polygon)
	if !ok {
		t.Fatalf("geometry type %T, want Polygon", a.Geometry)
	}
	if len(poly[0]) != 5 {
		t.Errorf("bbox ring has %d points, want 5", len(poly[0]))
	}

	// the box is centered on the centroid, not the lower-left corner
	centroid := orb.Point{9.725, 52.315}
	if !poly.Bound().Contains(centroid) {
		t.Error("bbox should contain the centroid")
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build(nil, nil, Config{}); !errors.Is(err, ErrNullGeometry) {
		t.Errorf("nil geometry error = %v, want ErrNullGeometry", err)
	}

	if _, err := Build(orb.Point{10, 50}, nil, Config{Distance: -1}); !errors.Is(err, ErrInvalidBufferDistance) {
		t.Errorf("negative distance error = %v, want ErrInvalidBufferDistance", err)
	}

	// an AOI in unresolvable latitudes propagates the zone error
	if _, err := Build(orb.Point{10, 88}, nil, Config{}); !errors.Is(err, geodesy.ErrUnresolvedZone) {
		t.Errorf("polar point error = %v, want ErrUnresolvedZone", err)
	}
}

func TestBoundingBoxRingOrder(t *testing.T) {
	poly, err := BoundingBox(orb.Point{10, 50}, 500)
	if err != nil {
		t.Fatal(err)
	}
	ring := poly[0]

	bl, br, tr, tl := ring[0], ring[1], ring[2], ring[3]
	if !(bl.Lon() < br.Lon() && tl.Lon() < tr.Lon()) {
		t.Error("left corners should be west of right corners")
	}
	if !(bl.Lat() < tl.Lat() && br.Lat() < tr.Lat()) {
		t.Error("bottom corners should be south of top corners")
	}
}
