package go_bankshot

import "github.com/gehtsoft-usa/go_bankshot/bmath/unit"

//Crosswind is a horizontal wind blowing along the flight axis.
//
//The positive velocity blows towards the target.
type Crosswind struct {
	velocity unit.Velocity
}

//Velocity returns the velocity of the wind
func (v Crosswind) Velocity() unit.Velocity {
	return v.velocity
}

//CreateNoWind creates a still air description
func CreateNoWind() Crosswind {
	return Crosswind{velocity: unit.MetersPerSecond(0)}
}

//CreateCrosswind creates a wind of the velocity specified
func CreateCrosswind(velocity unit.Velocity) Crosswind {
	return Crosswind{velocity: velocity}
}
