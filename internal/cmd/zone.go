package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geoharvest/tilescout/internal/geodesy"
)

var zoneCmd = &cobra.Command{
	Use:   "zone",
	Short: "Resolve the UTM zone and EPSG code for a coordinate",
	RunE:  runZone,
}

func init() {
	rootCmd.AddCommand(zoneCmd)

	zoneCmd.Flags().Float64("lon", 0, "Longitude in degrees")
	zoneCmd.Flags().Float64("lat", 0, "Latitude in degrees")

	for _, name := range []string{"lon", "lat"} {
		if err := viper.BindPFlag("zone."+name, zoneCmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", name, err))
		}
	}
}

func runZone(cmd *cobra.Command, args []string) error {
	c := geodesy.Coordinate{
		Lon: viper.GetFloat64("zone.lon"),
		Lat: viper.GetFloat64("zone.lat"),
	}

	zone, err := geodesy.ResolveZone(c)
	if err != nil {
		return err
	}

	fmt.Printf("coordinate: %s\n", c)
	fmt.Printf("zone:       %s\n", zone)
	fmt.Printf("epsg:       %d\n", zone.EPSG())
	return nil
}
