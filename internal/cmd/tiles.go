package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geoharvest/tilescout/internal/pyramid"
	"github.com/geoharvest/tilescout/internal/uri"
)

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Enumerate tiles covering areas of interest",
	Long: `Read AOI polygons (GeoJSON) and list the tiles covering each one at
a zoom level, as JSON lines with tile coordinates, quadkey and, when a
template is given, the expanded tile-service URI.`,
	RunE: runTiles,
}

// tileRecord is one output line of the tiles command.
type tileRecord struct {
	AOI     string `json:"aoi"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Zoom    int    `json:"z"`
	QuadKey string `json:"quadkey"`
	URI     string `json:"uri,omitempty"`
	Path    string `json:"path,omitempty"`
}

func init() {
	rootCmd.AddCommand(tilesCmd)

	tilesCmd.Flags().StringP("input", "i", "", "Input AOI GeoJSON file (\"-\" for stdin)")
	tilesCmd.Flags().StringP("output", "o", "-", "Output file (\"-\" for stdout)")
	tilesCmd.Flags().IntP("zoom", "z", 15, "Zoom level")
	tilesCmd.Flags().String("convention", "google", "Tile convention: tms, google or slippy")
	tilesCmd.Flags().String("template", "", "Tile URI template with {x}/{y}/{z}/{q}/{bbox} tokens")
	tilesCmd.Flags().String("ext", "", "Emit per-tile output paths with this extension (e.g. tif)")
	tilesCmd.Flags().Int("tile-size", pyramid.DefaultTileSize, "Tile size in pixels")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"tiles.input", "input"},
		{"tiles.output", "output"},
		{"tiles.zoom", "zoom"},
		{"tiles.convention", "convention"},
		{"tiles.template", "template"},
		{"tiles.ext", "ext"},
		{"tiles.tile_size", "tile-size"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, tilesCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runTiles(cmd *cobra.Command, args []string) error {
	log := newLogger()

	input := viper.GetString("tiles.input")
	if input == "" {
		return fmt.Errorf("--input is required")
	}

	conv, err := pyramid.ParseConvention(viper.GetString("tiles.convention"))
	if err != nil {
		return err
	}
	zoom := viper.GetInt("tiles.zoom")
	template := viper.GetString("tiles.template")
	ext := viper.GetString("tiles.ext")
	mercator := pyramid.NewMercator(viper.GetInt("tiles.tile_size"))

	aois, err := readFeatures(input)
	if err != nil {
		return err
	}

	out := os.Stdout
	if output := viper.GetString("tiles.output"); output != "" && output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)

	total := 0
	for idx, a := range aois {
		if a.Geometry == nil {
			log.Warn().Int("feature", idx).Msg("skipping aoi without geometry")
			continue
		}
		name, _ := a.Properties["name"].(string)
		if name == "" {
			name = fmt.Sprintf("aoi-%d", idx)
		}

		tiles, err := pyramid.Coverage(a.Geometry.Bound(), zoom, conv)
		if err != nil {
			return fmt.Errorf("aoi %q: %w", name, err)
		}

		for _, t := range tiles {
			tms := t
			if conv != pyramid.ConventionTMS {
				tms = t.FlipY()
			}
			vars, err := uri.TileVars(mercator, tms, conv)
			if err != nil {
				return fmt.Errorf("aoi %q tile %s: %w", name, t, err)
			}

			rec := tileRecord{
				AOI:     name,
				X:       vars.Tile.X,
				Y:       vars.Tile.Y,
				Zoom:    vars.Tile.Zoom,
				QuadKey: string(vars.QuadKey),
			}
			if template != "" {
				rec.URI = uri.Expand(template, vars)
			}
			if ext != "" {
				rec.Path = uri.TilePath(name, vars.Tile, ext)
			}
			if err := enc.Encode(rec); err != nil {
				return err
			}
		}
		total += len(tiles)
		log.Debug().Str("aoi", name).Int("tiles", len(tiles)).Msg("covered aoi")
	}

	log.Info().Int("aois", len(aois)).Int("tiles", total).Int("zoom", zoom).Msg("coverage complete")
	return nil
}
