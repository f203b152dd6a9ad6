package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geoharvest/tilescout/internal/aoi"
	"github.com/geoharvest/tilescout/internal/feature"
	"github.com/geoharvest/tilescout/internal/worker"
)

var aoiCmd = &cobra.Command{
	Use:   "aoi",
	Short: "Build buffered areas of interest from vector features",
	Long: `Read a GeoJSON FeatureCollection and emit one normalized AOI per
feature: points become metric squares, lines and polygons are buffered in
their local UTM zone. Features without a usable geometry are skipped.`,
	RunE: runAoi,
}

func init() {
	rootCmd.AddCommand(aoiCmd)

	aoiCmd.Flags().StringP("input", "i", "", "Input GeoJSON file (\"-\" for stdin)")
	aoiCmd.Flags().StringP("output", "o", "-", "Output GeoJSON file (\"-\" for stdout)")
	aoiCmd.Flags().String("field", "", "Property key used to derive AOI names")
	aoiCmd.Flags().String("name", "", "Default AOI name when no property value applies")
	aoiCmd.Flags().Float64P("distance", "d", 0, "Buffer radius in meters (0 = per-geometry default)")
	aoiCmd.Flags().Bool("bbox", false, "Force centroid bounding-box mode for lines/polygons")
	aoiCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	aoiCmd.Flags().Bool("progress", false, "Show progress bar")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"aoi.input", "input"},
		{"aoi.output", "output"},
		{"aoi.field", "field"},
		{"aoi.name", "name"},
		{"aoi.distance", "distance"},
		{"aoi.bbox", "bbox"},
		{"aoi.workers", "workers"},
		{"aoi.progress", "progress"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, aoiCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runAoi(cmd *cobra.Command, args []string) error {
	log := newLogger()

	input := viper.GetString("aoi.input")
	if input == "" {
		return fmt.Errorf("--input is required")
	}

	cfg := aoi.Config{
		Name:     viper.GetString("aoi.name"),
		Field:    viper.GetString("aoi.field"),
		Distance: viper.GetFloat64("aoi.distance"),
		BBox:     viper.GetBool("aoi.bbox"),
	}

	workers := viper.GetInt("aoi.workers")
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	features, err := readFeatures(input)
	if err != nil {
		return err
	}
	log.Info().Int("features", len(features)).Str("input", input).Msg("loaded features")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tasks := make([]worker.Task, len(features))
	for i, f := range features {
		tasks[i] = worker.Task{Index: i, Feature: f}
	}

	progress := worker.NewProgress(len(tasks), viper.GetBool("aoi.progress"))
	pool := worker.New(worker.Config{
		Workers: workers,
		Builder: worker.BuilderFunc(func(_ context.Context, f feature.Feature, index int) (*aoi.AreaOfInterest, error) {
			return feature.BuildOne(f, index, cfg)
		}),
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	aois := make([]*aoi.AreaOfInterest, 0, len(results))
	skipped := 0
	for _, r := range results {
		if r.Err != nil {
			skipped++
			log.Warn().Int("feature", r.Task.Index).Err(r.Err).Msg("skipping feature")
			continue
		}
		aois = append(aois, r.AOI)
	}
	log.Info().Int("aois", len(aois)).Int("skipped", skipped).Msg("batch complete")

	data, err := json.MarshalIndent(feature.Collection(aois), "", "  ")
	if err != nil {
		return fmt.Errorf("encode aois: %w", err)
	}
	return writeOutput(viper.GetString("aoi.output"), append(data, '\n'))
}

func readFeatures(input string) ([]feature.Feature, error) {
	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return feature.ReadCollection(r)
}

func writeOutput(output string, data []byte) error {
	if output == "" || output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(output, data, 0o644)
}
