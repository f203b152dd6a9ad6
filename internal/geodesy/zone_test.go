package geodesy

import (
	"errors"
	"testing"
)

func TestResolveZoneNumber(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want int
	}{
		{"greenwich", Coordinate{Lon: 0, Lat: 0}, 31},
		{"west edge", Coordinate{Lon: -180, Lat: 0}, 1},
		{"hanover", Coordinate{Lon: 9.73, Lat: 52.37}, 32},
		{"sydney", Coordinate{Lon: 151.2, Lat: -33.87}, 56},
		// Norway exception: default formula would give 31
		{"norway coast", Coordinate{Lon: 10, Lat: 60}, 32},
		{"norway window west", Coordinate{Lon: 5, Lat: 60}, 32},
		{"below norway window", Coordinate{Lon: 5, Lat: 55}, 31},
		{"west of norway window", Coordinate{Lon: 2.9, Lat: 60}, 31},
		// Svalbard exception
		{"svalbard 31", Coordinate{Lon: 8, Lat: 75}, 31},
		{"svalbard 33", Coordinate{Lon: 15, Lat: 78}, 33},
		{"svalbard 35", Coordinate{Lon: 25, Lat: 78}, 35},
		{"svalbard 37", Coordinate{Lon: 40, Lat: 75}, 37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone, err := ResolveZone(tt.c)
			if err != nil {
				t.Fatalf("ResolveZone(%v) error: %v", tt.c, err)
			}
			if zone.Number != tt.want {
				t.Errorf("ResolveZone(%v).Number = %d, want %d", tt.c, zone.Number, tt.want)
			}
		})
	}
}

func TestResolveZoneBand(t *testing.T) {
	tests := []struct {
		c    Coordinate
		want byte
	}{
		{Coordinate{Lon: 0, Lat: 0}, 'N'},
		{Coordinate{Lon: 0, Lat: -80}, 'C'},
		{Coordinate{Lon: 9.73, Lat: 52.37}, 'U'},
		{Coordinate{Lon: 15, Lat: 78}, 'X'},
		{Coordinate{Lon: 15, Lat: 83.9}, 'X'},
	}

	for _, tt := range tests {
		zone, err := ResolveZone(tt.c)
		if err != nil {
			t.Fatalf("ResolveZone(%v) error: %v", tt.c, err)
		}
		if zone.Band != tt.want {
			t.Errorf("ResolveZone(%v).Band = %c, want %c", tt.c, zone.Band, tt.want)
		}
	}
}

func TestResolveZoneEPSG(t *testing.T) {
	tests := []struct {
		c    Coordinate
		want int
	}{
		{Coordinate{Lon: 9.73, Lat: 52.37}, 32632},
		{Coordinate{Lon: 151.2, Lat: -33.87}, 32756},
		{Coordinate{Lon: 0, Lat: 0}, 32731}, // lat 0 resolves south
	}

	for _, tt := range tests {
		zone, err := ResolveZone(tt.c)
		if err != nil {
			t.Fatalf("ResolveZone(%v) error: %v", tt.c, err)
		}
		if got := zone.EPSG(); got != tt.want {
			t.Errorf("ResolveZone(%v).EPSG() = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestResolveZoneErrors(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want error
	}{
		{"longitude too low", Coordinate{Lon: -181, Lat: 0}, ErrInvalidCoordinate},
		{"longitude 180", Coordinate{Lon: 180, Lat: 0}, ErrInvalidCoordinate},
		{"latitude too high", Coordinate{Lon: 0, Lat: 91}, ErrInvalidCoordinate},
		{"north of band table", Coordinate{Lon: 0, Lat: 88}, ErrUnresolvedZone},
		{"south of band table", Coordinate{Lon: 0, Lat: -85}, ErrUnresolvedZone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveZone(tt.c)
			if !errors.Is(err, tt.want) {
				t.Errorf("ResolveZone(%v) error = %v, want %v", tt.c, err, tt.want)
			}
		})
	}
}

func TestZoneString(t *testing.T) {
	zone, err := ResolveZone(Coordinate{Lon: 9.73, Lat: 52.37})
	if err != nil {
		t.Fatal(err)
	}
	if zone.String() != "32U" {
		t.Errorf("String() = %s, want 32U", zone.String())
	}
}
