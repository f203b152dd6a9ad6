package geodesy

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestTransformerRoundTrip(t *testing.T) {
	coords := []Coordinate{
		{Lon: 9.73, Lat: 52.37},
		{Lon: 10, Lat: 50},
		{Lon: 151.2, Lat: -33.87},
		{Lon: -70.66, Lat: -33.45},
		{Lon: 0.1, Lat: 0.1},
		{Lon: 10, Lat: 60},
	}

	for _, c := range coords {
		tr, err := TransformerFor(c)
		if err != nil {
			t.Fatalf("TransformerFor(%v) error: %v", c, err)
		}

		x, y := tr.ToPlanar(c.Lon, c.Lat)
		lon, lat := tr.ToGeographic(x, y)

		if math.Abs(lon-c.Lon) > 1e-6 || math.Abs(lat-c.Lat) > 1e-6 {
			t.Errorf("round trip %v -> (%.3f, %.3f) -> (%.8f, %.8f): drift beyond 1e-6 deg",
				c, x, y, lon, lat)
		}

		// and back again in meters
		x2, y2 := tr.ToPlanar(lon, lat)
		if math.Abs(x2-x) > 1e-2 || math.Abs(y2-y) > 1e-2 {
			t.Errorf("planar round trip for %v drifts beyond 1e-2 m: (%.4f, %.4f) vs (%.4f, %.4f)",
				c, x, y, x2, y2)
		}
	}
}

func TestTransformerPlausibleUTM(t *testing.T) {
	// Hanover sits east of zone 32's central meridian (9E): easting just
	// above 500km, northing around 5.8e6 in the northern hemisphere.
	tr, err := TransformerFor(Coordinate{Lon: 9.73, Lat: 52.37})
	if err != nil {
		t.Fatal(err)
	}

	x, y := tr.ToPlanar(9.73, 52.37)
	if x < 500000 || x > 600000 {
		t.Errorf("easting %.1f outside plausible zone 32 range", x)
	}
	if y < 5.7e6 || y > 5.9e6 {
		t.Errorf("northing %.1f outside plausible range for lat 52.37", y)
	}
}

func TestTransformerSouthernFalseNorthing(t *testing.T) {
	tr, err := TransformerFor(Coordinate{Lon: 151.2, Lat: -33.87})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Zone().North {
		t.Fatal("expected southern hemisphere zone")
	}

	_, y := tr.ToPlanar(151.2, -33.87)
	if y < 6.0e6 || y > 6.5e6 {
		t.Errorf("southern northing %.1f should carry the 10e6 false northing", y)
	}
}

func TestTransformerCache(t *testing.T) {
	a, err := TransformerFor(Coordinate{Lon: 9.73, Lat: 52.37})
	if err != nil {
		t.Fatal(err)
	}
	b, err := TransformerFor(Coordinate{Lon: 10.5, Lat: 48.1}) // same zone 32, north
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("expected cached transformer for repeated zone+hemisphere")
	}

	c, err := TransformerFor(Coordinate{Lon: 151.2, Lat: -33.87})
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Error("different zones must not share a transformer")
	}
}

func TestProjectGeometryRoundTrip(t *testing.T) {
	tr, err := TransformerFor(Coordinate{Lon: 9.7, Lat: 52.3})
	if err != nil {
		t.Fatal(err)
	}

	poly := orb.Polygon{orb.Ring{
		{9.70, 52.30}, {9.75, 52.30}, {9.75, 52.33}, {9.70, 52.33}, {9.70, 52.30},
	}}

	back := tr.Unproject(tr.Project(poly)).(orb.Polygon)
	for i, p := range poly[0] {
		q := back[0][i]
		if math.Abs(p[0]-q[0]) > 1e-6 || math.Abs(p[1]-q[1]) > 1e-6 {
			t.Errorf("ring point %d drifted: %v vs %v", i, p, q)
		}
	}

	// input must not be mutated
	if poly[0][0] != (orb.Point{9.70, 52.30}) {
		t.Error("Project mutated its input")
	}
}
