package go_bankshot

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_bankshot/bmath/unit"
)

//Barrier names used by the physical configuration
const (
	ScreenName = "screen"
	WallName   = "wall"
)

//PhysicalConfig keeps all parameters of one simulation run.
//
//The structure is immutable once created and is safe to share.
type PhysicalConfig struct {
	projectile     Projectile
	launchVelocity unit.Velocity
	screen         Barrier
	wall           Barrier
	targetDistance unit.Distance
	wind           Crosswind
	timeStep       float64
	tolerance      float64
	tolerances     Tolerances
}

//CreatePhysicalConfig creates the configuration of a simulation run.
//
//timeStep is the integration step in seconds and tolerance is the single
//tolerance used both for event detection and for the angle search
//(see WithTolerances to use different values).
//
//The function returns an error wrapping ErrInvalidConfig if any parameter
//is out of its valid range.
func CreatePhysicalConfig(projectile Projectile, launchVelocity unit.Velocity,
	screen Barrier, targetDistance unit.Distance, wall Barrier,
	wind Crosswind, timeStep float64, tolerance float64) (PhysicalConfig, error) {

	c := PhysicalConfig{
		projectile:     projectile,
		launchVelocity: launchVelocity,
		screen:         CreateBarrier(ScreenName, screen.distance, screen.height),
		wall:           CreateBarrier(WallName, wall.distance, wall.height),
		targetDistance: targetDistance,
		wind:           wind,
		timeStep:       timeStep,
		tolerance:      tolerance,
		tolerances:     UniformTolerances(tolerance),
	}
	if err := c.validate(); err != nil {
		return PhysicalConfig{}, err
	}
	return c, nil
}

//CreateDefaultPhysicalConfig creates a drag free configuration without barriers
//in which a 20 m/s shot reaches the target at 45 degrees
func CreateDefaultPhysicalConfig() PhysicalConfig {
	c, err := CreatePhysicalConfig(
		CreateProjectile(unit.Kilograms(1), 0),
		unit.MetersPerSecond(20),
		CreateBarrier(ScreenName, unit.Meters(10), unit.Meters(0)),
		unit.Meters(20*20/cGravityAcceleration),
		CreateBarrier(WallName, unit.Meters(50), unit.Meters(0)),
		CreateNoWind(),
		0.01,
		1e-3)
	if err != nil {
		panic(err)
	}
	return c
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (v PhysicalConfig) validate() error {
	mass := v.projectile.mass.In(unit.WeightKilogram)
	speed := v.launchVelocity.In(unit.VelocityMPS)
	screenHeight := v.screen.height.In(unit.DistanceMeter)
	wallHeight := v.wall.height.In(unit.DistanceMeter)

	values := []struct {
		name  string
		value float64
	}{
		{"mass", mass},
		{"drag", v.projectile.dragCoefficient},
		{"initial speed", speed},
		{"screen distance", v.screen.distance.In(unit.DistanceMeter)},
		{"screen height", screenHeight},
		{"target distance", v.targetDistance.In(unit.DistanceMeter)},
		{"wall distance", v.wall.distance.In(unit.DistanceMeter)},
		{"wall height", wallHeight},
		{"crosswind", v.wind.velocity.In(unit.VelocityMPS)},
		{"time step", v.timeStep},
		{"tolerance", v.tolerance},
	}
	for _, x := range values {
		if !finite(x.value) {
			return invalid("%s must be finite, got %v", x.name, x.value)
		}
	}

	switch {
	case mass <= 0:
		return invalid("mass must be positive, got %v", mass)
	case v.projectile.dragCoefficient < 0:
		return invalid("drag must not be negative, got %v", v.projectile.dragCoefficient)
	case speed < 0:
		return invalid("initial speed must not be negative, got %v", speed)
	case screenHeight < 0:
		return invalid("screen height must not be negative, got %v", screenHeight)
	case wallHeight < 0:
		return invalid("wall height must not be negative, got %v", wallHeight)
	case v.timeStep <= 0:
		return invalid("time step must be positive, got %v", v.timeStep)
	case v.tolerance <= 0:
		return invalid("tolerance must be positive, got %v", v.tolerance)
	}
	return validateTolerances(v.tolerances)
}

func validateTolerances(t Tolerances) error {
	switch {
	case !finite(t.BarrierBuffer) || t.BarrierBuffer <= 0:
		return invalid("barrier buffer must be positive, got %v", t.BarrierBuffer)
	case !finite(t.HeightAllowance) || t.HeightAllowance < 0:
		return invalid("height allowance must be finite and not negative, got %v", t.HeightAllowance)
	case !finite(t.Ground) || t.Ground < 0:
		return invalid("ground tolerance must be finite and not negative, got %v", t.Ground)
	case !finite(t.Convergence) || t.Convergence <= 0:
		return invalid("convergence tolerance must be positive, got %v", t.Convergence)
	}
	return nil
}

//WithTolerances returns a copy of the configuration which uses the tolerances specified
func (v PhysicalConfig) WithTolerances(t Tolerances) (PhysicalConfig, error) {
	if err := validateTolerances(t); err != nil {
		return PhysicalConfig{}, err
	}
	v.tolerances = t
	return v, nil
}

//Projectile returns the description of the projectile
func (v PhysicalConfig) Projectile() Projectile {
	return v.projectile
}

//LaunchVelocity returns the initial speed of the projectile
func (v PhysicalConfig) LaunchVelocity() unit.Velocity {
	return v.launchVelocity
}

//Screen returns the first barrier
func (v PhysicalConfig) Screen() Barrier {
	return v.screen
}

//Wall returns the second barrier
func (v PhysicalConfig) Wall() Barrier {
	return v.wall
}

//Barriers returns the barriers in the order they are checked
func (v PhysicalConfig) Barriers() []Barrier {
	return []Barrier{v.screen, v.wall}
}

//TargetDistance returns the distance at which the projectile must land
func (v PhysicalConfig) TargetDistance() unit.Distance {
	return v.targetDistance
}

//Wind returns the wind
func (v PhysicalConfig) Wind() Crosswind {
	return v.wind
}

//TimeStep returns the integration step, in seconds
func (v PhysicalConfig) TimeStep() float64 {
	return v.timeStep
}

//Tolerance returns the tolerance the configuration was created with
func (v PhysicalConfig) Tolerance() float64 {
	return v.tolerance
}

//Tolerances returns the tolerances used by the event detection and the solver
func (v PhysicalConfig) Tolerances() Tolerances {
	return v.tolerances
}
