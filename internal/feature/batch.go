package feature

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/geoharvest/tilescout/internal/aoi"
)

// BatchError records a failed feature by its input index.
type BatchError struct {
	Index int
	Err   error
}

func (e BatchError) Error() string {
	return fmt.Sprintf("feature %d: %v", e.Index, e.Err)
}

func (e BatchError) Unwrap() error {
	return e.Err
}

// BatchResult is the outcome of a batch build. AOIs holds one entry per
// successful feature in input order; Errors the skipped ones.
type BatchResult struct {
	AOIs   []*aoi.AreaOfInterest
	Errors []BatchError
}

// BuildBatch converts features to AOIs with partial-failure semantics: a
// feature that fails (null geometry, unresolved zone, ...) is logged,
// recorded against its index and skipped; the rest of the batch proceeds.
// Features without a usable name property default to "aoi-<index>" unless
// cfg.Name is set.
func BuildBatch(features []Feature, cfg aoi.Config, log zerolog.Logger) BatchResult {
	result := BatchResult{
		AOIs: make([]*aoi.AreaOfInterest, 0, len(features)),
	}

	for idx, f := range features {
		a, err := BuildOne(f, idx, cfg)
		if err != nil {
			log.Warn().Int("feature", idx).Err(err).Msg("skipping feature")
			result.Errors = append(result.Errors, BatchError{Index: idx, Err: err})
			continue
		}

		log.Debug().
			Int("feature", idx).
			Str("name", a.Name).
			Str("source_type", string(a.SourceType)).
			Float64("distance", a.Distance).
			Msg("built aoi")
		result.AOIs = append(result.AOIs, a)
	}
	return result
}

// BuildOne converts a single feature, falling back to an index-derived
// default name when the config has none.
func BuildOne(f Feature, index int, cfg aoi.Config) (*aoi.AreaOfInterest, error) {
	if cfg.Name == "" {
		cfg.Name = fmt.Sprintf("aoi-%d", index)
	}
	return aoi.Build(f.Geometry, f.Properties, cfg)
}
