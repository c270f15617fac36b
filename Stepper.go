package go_bankshot

import (
	"fmt"
	"strings"

	"github.com/gehtsoft-usa/go_bankshot/bmath/vector"
)

//State is the position and the velocity of the projectile
type State struct {
	Position vector.Vector
	Velocity vector.Vector
}

//GroundRule tells how the height of a descending projectile is
//compared with the ground tolerance
type GroundRule byte

const (
	//GroundBelow lands the projectile when its height is strictly below the tolerance
	GroundBelow GroundRule = iota
	//GroundAtOrBelow lands the projectile when its height is at or below the tolerance
	GroundAtOrBelow
)

//Reached returns true if the height y is on the ground
func (r GroundRule) Reached(y, tolerance float64) bool {
	if r == GroundAtOrBelow {
		return y <= tolerance
	}
	return y < tolerance
}

func (r GroundRule) String() string {
	if r == GroundAtOrBelow {
		return "at-or-below"
	}
	return "below"
}

//Stepper advances the state of the projectile by one time step
type Stepper interface {
	//Name returns the short name of the scheme
	Name() string
	//Step returns the candidate state after dt seconds
	Step(state State, dt float64, force ForceModel) State
	//GroundRule returns the comparison used to detect landing
	GroundRule() GroundRule
}

//EulerStepper is the first order explicit Euler scheme
type EulerStepper struct {
	groundRule GroundRule
}

//CreateEulerStepper creates the Euler scheme which lands the projectile
//strictly below the ground tolerance
func CreateEulerStepper() EulerStepper {
	return EulerStepper{groundRule: GroundBelow}
}

//WithGroundRule returns the stepper using the ground rule specified
func (s EulerStepper) WithGroundRule(rule GroundRule) EulerStepper {
	s.groundRule = rule
	return s
}

func (s EulerStepper) Name() string { return "euler" }

func (s EulerStepper) GroundRule() GroundRule { return s.groundRule }

func (s EulerStepper) Step(state State, dt float64, force ForceModel) State {
	return State{
		Position: state.Position.Add(state.Velocity.MultiplyByConst(dt)),
		Velocity: state.Velocity.Add(force.Acceleration(state.Velocity).MultiplyByConst(dt)),
	}
}

//RK4Stepper is the classical fourth order Runge-Kutta scheme
type RK4Stepper struct {
	groundRule GroundRule
}

//CreateRK4Stepper creates the Runge-Kutta scheme which lands the projectile
//at or below the ground tolerance
func CreateRK4Stepper() RK4Stepper {
	return RK4Stepper{groundRule: GroundAtOrBelow}
}

//WithGroundRule returns the stepper using the ground rule specified
func (s RK4Stepper) WithGroundRule(rule GroundRule) RK4Stepper {
	s.groundRule = rule
	return s
}

func (s RK4Stepper) Name() string { return "rk4" }

func (s RK4Stepper) GroundRule() GroundRule { return s.groundRule }

func (s RK4Stepper) Step(state State, dt float64, force ForceModel) State {
	v := state.Velocity

	k1v := v
	k1a := force.Acceleration(k1v)

	k2v := v.Add(k1a.MultiplyByConst(0.5 * dt))
	k2a := force.Acceleration(k2v)

	k3v := v.Add(k2a.MultiplyByConst(0.5 * dt))
	k3a := force.Acceleration(k3v)

	k4v := v.Add(k3a.MultiplyByConst(dt))
	k4a := force.Acceleration(k4v)

	velocitySum := k1v.Add(k2v.MultiplyByConst(2)).Add(k3v.MultiplyByConst(2)).Add(k4v).MultiplyByConst(1.0 / 6.0)
	accelerationSum := k1a.Add(k2a.MultiplyByConst(2)).Add(k3a.MultiplyByConst(2)).Add(k4a).MultiplyByConst(1.0 / 6.0)

	return State{
		Position: state.Position.Add(velocitySum.MultiplyByConst(dt)),
		Velocity: v.Add(accelerationSum.MultiplyByConst(dt)),
	}
}

//StepperByName returns the stepper with the default ground rule by its name
func StepperByName(name string) (Stepper, error) {
	switch strings.ToLower(name) {
	case "euler":
		return CreateEulerStepper(), nil
	case "rk4":
		return CreateRK4Stepper(), nil
	default:
		return nil, fmt.Errorf("unknown integration scheme %q", name)
	}
}
