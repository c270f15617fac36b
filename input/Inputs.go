//Package input reads and writes the flat parameter file of a simulation run.
//
//The file keeps eleven numbers, one per line: mass (kg), drag coefficient
//(kg/m), initial speed (m/s), screen distance, screen height, target
//distance, wall distance, wall height (m), crosswind speed (m/s), time step
//(s) and tolerance. Empty lines are skipped and everything after # is a
//comment. Lines after the eleventh value are ignored.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gehtsoft-usa/go_bankshot"
	"github.com/gehtsoft-usa/go_bankshot/bmath/unit"
)

type field struct {
	name  string
	units string
}

var fields = [...]field{
	{"mass", "kg"},
	{"drag coefficient", "kg/m"},
	{"initial speed", "m/s"},
	{"screen distance", "m"},
	{"screen height", "m"},
	{"target distance", "m"},
	{"wall distance", "m"},
	{"wall height", "m"},
	{"crosswind speed", "m/s"},
	{"time step", "s"},
	{"tolerance", "m"},
}

//Parse reads the parameters and creates the physical configuration.
//
//Malformed or missing values produce an error wrapping go_bankshot.ErrInvalidConfig.
func Parse(r io.Reader) (go_bankshot.PhysicalConfig, error) {
	var values [len(fields)]float64
	n := 0

	scanner := bufio.NewScanner(r)
	line := 0
	for n < len(fields) && scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return go_bankshot.PhysicalConfig{}, fmt.Errorf("%w: line %d: %s: cannot parse %q",
				go_bankshot.ErrInvalidConfig, line, fields[n].name, text)
		}
		values[n] = v
		n++
	}
	if err := scanner.Err(); err != nil {
		return go_bankshot.PhysicalConfig{}, fmt.Errorf("reading parameters: %w", err)
	}
	if n < len(fields) {
		return go_bankshot.PhysicalConfig{}, fmt.Errorf("%w: %s is missing, expected %d values but got %d",
			go_bankshot.ErrInvalidConfig, fields[n].name, len(fields), n)
	}

	return go_bankshot.CreatePhysicalConfig(
		go_bankshot.CreateProjectile(unit.Kilograms(values[0]), values[1]),
		unit.MetersPerSecond(values[2]),
		go_bankshot.CreateBarrier(go_bankshot.ScreenName, unit.Meters(values[3]), unit.Meters(values[4])),
		unit.Meters(values[5]),
		go_bankshot.CreateBarrier(go_bankshot.WallName, unit.Meters(values[6]), unit.Meters(values[7])),
		go_bankshot.CreateCrosswind(unit.MetersPerSecond(values[8])),
		values[9],
		values[10])
}

//Load reads the parameter file
func Load(path string) (go_bankshot.PhysicalConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return go_bankshot.PhysicalConfig{}, fmt.Errorf("opening parameter file: %w", err)
	}
	defer f.Close()

	config, err := Parse(f)
	if err != nil {
		return go_bankshot.PhysicalConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

func values(config go_bankshot.PhysicalConfig) [len(fields)]float64 {
	return [len(fields)]float64{
		config.Projectile().Mass().In(unit.WeightKilogram),
		config.Projectile().DragCoefficient(),
		config.LaunchVelocity().In(unit.VelocityMPS),
		config.Screen().Distance().In(unit.DistanceMeter),
		config.Screen().Height().In(unit.DistanceMeter),
		config.TargetDistance().In(unit.DistanceMeter),
		config.Wall().Distance().In(unit.DistanceMeter),
		config.Wall().Height().In(unit.DistanceMeter),
		config.Wind().Velocity().In(unit.VelocityMPS),
		config.TimeStep(),
		config.Tolerance(),
	}
}

//Write writes the configuration in the format Parse reads. Every value is
//followed by a comment naming it.
func Write(w io.Writer, config go_bankshot.PhysicalConfig) error {
	bw := bufio.NewWriter(w)
	for i, v := range values(config) {
		if _, err := fmt.Fprintf(bw, "%s # %s, %s\n", strconv.FormatFloat(v, 'g', -1, 64), fields[i].name, fields[i].units); err != nil {
			return err
		}
	}
	return bw.Flush()
}

//Save writes the configuration to the file specified
func Save(path string, config go_bankshot.PhysicalConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating parameter file: %w", err)
	}
	if err := Write(f, config); err != nil {
		f.Close()
		return fmt.Errorf("writing parameter file: %w", err)
	}
	return f.Close()
}
