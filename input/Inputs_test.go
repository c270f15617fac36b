package input_test

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gehtsoft-usa/go_bankshot"
	"github.com/gehtsoft-usa/go_bankshot/bmath/unit"
	"github.com/gehtsoft-usa/go_bankshot/input"
)

const sample = `0.5
0.002
30
# barriers
12
3
60

80
4.5
-2   # head wind
0.005
1e-4
this line is ignored
`

func TestParse(t *testing.T) {
	config, err := input.Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"mass", config.Projectile().Mass().In(unit.WeightKilogram), 0.5},
		{"drag", config.Projectile().DragCoefficient(), 0.002},
		{"speed", config.LaunchVelocity().In(unit.VelocityMPS), 30},
		{"screen distance", config.Screen().Distance().In(unit.DistanceMeter), 12},
		{"screen height", config.Screen().Height().In(unit.DistanceMeter), 3},
		{"target", config.TargetDistance().In(unit.DistanceMeter), 60},
		{"wall distance", config.Wall().Distance().In(unit.DistanceMeter), 80},
		{"wall height", config.Wall().Height().In(unit.DistanceMeter), 4.5},
		{"wind", config.Wind().Velocity().In(unit.VelocityMPS), -2},
		{"time step", config.TimeStep(), 0.005},
		{"tolerance", config.Tolerance(), 1e-4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.expected) > 1e-12 {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		message string
	}{
		{"not a number", "1\n0\nfast\n", "line 3: initial speed"},
		{"too short", "1\n0\n20\n", "screen distance is missing"},
		{"invalid value", "0\n0\n20\n10\n0\n40\n50\n0\n0\n0.01\n0.001\n", "mass must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := input.Parse(strings.NewReader(tt.text))
			if !errors.Is(err, go_bankshot.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.message)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	original := go_bankshot.CreateDefaultPhysicalConfig()

	if err := input.Save(path, original); err != nil {
		t.Fatalf("cannot save: %v", err)
	}
	loaded, err := input.Load(path)
	if err != nil {
		t.Fatalf("cannot load: %v", err)
	}
	if loaded.TargetDistance().In(unit.DistanceMeter) != original.TargetDistance().In(unit.DistanceMeter) {
		t.Errorf("target distance changed: %v/%v", loaded.TargetDistance(), original.TargetDistance())
	}
	if loaded.Tolerances() != original.Tolerances() || loaded.TimeStep() != original.TimeStep() {
		t.Error("numeric parameters changed")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := input.Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("missing file must fail")
	}
}
