// Package uri expands tile-service URL templates and output pathnames from
// tile addresses.
package uri

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/geoharvest/tilescout/internal/pyramid"
)

// Vars holds the substitution values for one tile. Tokens recognized in
// templates: {x}, {y}, {z}, {q} (quadkey) and {bbox}.
type Vars struct {
	Tile    pyramid.Tile
	QuadKey pyramid.QuadKey
	BBox    [4]float64 // minx, miny, maxx, maxy in template-native units
	HasBBox bool
}

// TileVars derives the substitution set for a TMS tile: the requested
// convention's x/y/z, the quadkey and the Mercator meter bounds.
func TileVars(m pyramid.Mercator, tms pyramid.Tile, conv pyramid.Convention) (Vars, error) {
	if err := tms.Validate(); err != nil {
		return Vars{}, err
	}

	q, err := pyramid.ToQuadKey(tms)
	if err != nil {
		return Vars{}, err
	}

	minx, miny, maxx, maxy, err := m.TileBounds(tms)
	if err != nil {
		return Vars{}, err
	}

	out := tms
	if conv != pyramid.ConventionTMS {
		out = tms.FlipY()
	}

	return Vars{
		Tile:    out,
		QuadKey: q,
		BBox:    [4]float64{minx, miny, maxx, maxy},
		HasBBox: true,
	}, nil
}

// Expand substitutes the tile variables into a URL template.
func Expand(template string, v Vars) string {
	pairs := []string{
		"{x}", strconv.Itoa(v.Tile.X),
		"{y}", strconv.Itoa(v.Tile.Y),
		"{z}", strconv.Itoa(v.Tile.Zoom),
		"{q}", string(v.QuadKey),
	}
	if v.HasBBox {
		pairs = append(pairs, "{bbox}", formatBBox(v.BBox))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// TilePath builds the nested output path <name>/<z>/<x>/<y>.<ext> for a
// tile retrieved over an AOI.
func TilePath(aoiName string, t pyramid.Tile, ext string) string {
	return path.Join(
		aoiName,
		strconv.Itoa(t.Zoom),
		strconv.Itoa(t.X),
		strconv.Itoa(t.Y)+"."+strings.TrimPrefix(ext, "."),
	)
}

func formatBBox(b [4]float64) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%f", v)
	}
	return strings.Join(parts, ",")
}
