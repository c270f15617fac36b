package go_bankshot

import (
	"math"

	"github.com/gehtsoft-usa/go_bankshot/bmath/unit"
	"github.com/gehtsoft-usa/go_bankshot/bmath/vector"
)

const cDefaultMaximumSteps int = 1000000

//TrajectoryCalculator integrates the flight of the projectile from the launch
//point to the ground
type TrajectoryCalculator struct {
	config       PhysicalConfig
	stepper      Stepper
	maximumSteps int
}

//CreateTrajectoryCalculator creates and instance of the trajectory calculator
func CreateTrajectoryCalculator(config PhysicalConfig, stepper Stepper) TrajectoryCalculator {
	return TrajectoryCalculator{
		config:       config,
		stepper:      stepper,
		maximumSteps: cDefaultMaximumSteps,
	}
}

//Config returns the physical configuration
func (v TrajectoryCalculator) Config() PhysicalConfig {
	return v.config
}

//Stepper returns the integration scheme
func (v TrajectoryCalculator) Stepper() Stepper {
	return v.stepper
}

//MaximumSteps returns the maximum number of steps of one shot
func (v TrajectoryCalculator) MaximumSteps() int {
	return v.maximumSteps
}

//SetMaximumSteps sets the maximum number of steps of one shot.
//
//A shot which does not land within this number of steps fails with ErrStepLimitExceeded.
//A value which is not positive restores the default.
func (v *TrajectoryCalculator) SetMaximumSteps(n int) {
	if n <= 0 {
		n = cDefaultMaximumSteps
	}
	v.maximumSteps = n
}

//GroundCrossing returns the point where the straight line from position to next
//crosses the ground.
//
//If both points are at the same height the crossing cannot be interpolated and
//position is returned as the crossing point.
func GroundCrossing(position, next vector.Vector) vector.Vector {
	p, _, _ := groundCrossing(position, next)
	return p
}

func groundCrossing(position, next vector.Vector) (vector.Vector, float64, bool) {
	if next.Y == position.Y {
		return position, 0, true
	}
	ratio := (0 - position.Y) / (next.Y - position.Y)
	return vector.Create(position.X+ratio*(next.X-position.X), 0), ratio, false
}

func (v TrajectoryCalculator) activeBarriers() []Barrier {
	barriers := make([]Barrier, 0, 2)
	for _, b := range v.config.Barriers() {
		if b.IsPresent() {
			barriers = append(barriers, b)
		}
	}
	return barriers
}

//advance makes one step from the current state. The candidate position is
//checked against every barrier in order and then against the ground.
func (v TrajectoryCalculator) advance(current State, step int, force ForceModel,
	barriers []Barrier, tolerances Tolerances) (State, []Collision, bool) {

	next := v.stepper.Step(current, v.config.timeStep, force)

	var collisions []Collision
	for _, b := range barriers {
		point, hit := b.Intersect(current.Position, next.Position, tolerances)
		if !hit {
			continue
		}
		reflected := next.Velocity.MirrorX()
		collisions = append(collisions, Collision{
			Barrier:        b.Name(),
			Step:           step,
			Point:          point,
			VelocityBefore: next.Velocity,
			VelocityAfter:  reflected,
		})
		next.Position = point
		next.Velocity = reflected
	}

	landed := v.stepper.GroundRule().Reached(next.Position.Y, tolerances.Ground) && next.Velocity.Y < 0
	return next, collisions, landed
}

//Shot calculates the flight of the projectile launched at the angle specified
//until it reaches the ground.
//
//The error wraps ErrStepLimitExceeded if the projectile is still flying after
//the maximum number of steps.
func (v TrajectoryCalculator) Shot(shot ShotParameters) (ShotResult, error) {
	angle := shot.Angle().In(unit.AngularRadian)
	speed := v.config.launchVelocity.In(unit.VelocityMPS)
	mass := v.config.projectile.mass.In(unit.WeightKilogram)
	force := CreateForceModel(v.config)
	barriers := v.activeBarriers()
	tolerances := v.config.tolerances

	maximumSteps := v.maximumSteps
	if maximumSteps <= 0 {
		maximumSteps = cDefaultMaximumSteps
	}

	state := State{
		Position: vector.Create(0, 0),
		Velocity: vector.Create(speed*math.Cos(angle), speed*math.Sin(angle)),
	}

	result := ShotResult{angle: shot.Angle(), apex: state.Position}
	if shot.RecordTrajectory() {
		result.trajectory = []vector.Vector{state.Position}
	}

	for step := 1; step <= maximumSteps; step++ {
		next, collisions, landed := v.advance(state, step, force, barriers, tolerances)
		result.collisions = append(result.collisions, collisions...)

		if landed {
			landing, ratio, degenerate := groundCrossing(state.Position, next.Position)
			result.landing = landing
			result.impactVelocity = next.Velocity
			result.time = Timespan{time: (float64(step-1) + ratio) * v.config.timeStep}
			result.steps = step
			result.degenerateLanding = degenerate
			result.energy = unit.MustCreateEnergy(0.5*mass*next.Velocity.MultiplyByVector(next.Velocity), unit.EnergyJoule)
			if shot.RecordTrajectory() {
				result.trajectory = append(result.trajectory, landing)
			}
			return result, nil
		}

		state = next
		if state.Position.Y > result.apex.Y {
			result.apex = state.Position
		}
		if shot.RecordTrajectory() {
			result.trajectory = append(result.trajectory, state.Position)
		}
	}

	return ShotResult{}, &ShotError{
		Angle:    shot.Angle(),
		Step:     maximumSteps,
		Position: state.Position,
		Wrapped:  ErrStepLimitExceeded,
	}
}
