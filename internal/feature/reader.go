// Package feature reads vector features from GeoJSON and drives the batch
// conversion of features into AOIs with per-feature failure recovery.
package feature

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/geoharvest/tilescout/internal/aoi"
)

// Feature is one input vector feature: a geographic geometry plus its
// property mapping. Geometry may be nil when the source feature had none.
type Feature struct {
	Geometry   orb.Geometry
	Properties map[string]interface{}
}

// ReadCollection decodes a GeoJSON FeatureCollection into features.
func ReadCollection(r io.Reader) ([]Feature, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read features: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode feature collection: %w", err)
	}

	features := make([]Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		props := map[string]interface{}(f.Properties)
		if props == nil {
			props = map[string]interface{}{}
		}
		features = append(features, Feature{
			Geometry:   f.Geometry,
			Properties: props,
		})
	}
	return features, nil
}

// Collection renders AOIs as a GeoJSON FeatureCollection, carrying name,
// source type and buffer distance as properties.
func Collection(aois []*aoi.AreaOfInterest) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, a := range aois {
		f := geojson.NewFeature(a.Geometry)
		f.Properties["name"] = a.Name
		f.Properties["source_type"] = string(a.SourceType)
		f.Properties["distance"] = a.Distance
		fc.Append(f)
	}
	return fc
}
