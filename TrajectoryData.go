package go_bankshot

import (
	"github.com/gehtsoft-usa/go_bankshot/bmath/unit"
	"github.com/gehtsoft-usa/go_bankshot/bmath/vector"
)

//Timespan keeps the amount of time spent
type Timespan struct {
	time float64
}

//TotalSeconds returns the total number of seconds
func (v Timespan) TotalSeconds() float64 {
	return v.time
}

//Collision describes one reflection of the projectile from a barrier
type Collision struct {
	Barrier        string
	Step           int
	Point          vector.Vector
	VelocityBefore vector.Vector
	VelocityAfter  vector.Vector
}

//ShotResult keeps the outcome of one shot, from the launch to the landing
type ShotResult struct {
	angle             unit.Angular
	landing           vector.Vector
	impactVelocity    vector.Vector
	energy            unit.Energy
	time              Timespan
	steps             int
	apex              vector.Vector
	collisions        []Collision
	trajectory        []vector.Vector
	degenerateLanding bool
}

//Angle returns the launch angle
func (v ShotResult) Angle() unit.Angular {
	return v.angle
}

//Landing returns the point where the projectile reached the ground
func (v ShotResult) Landing() vector.Vector {
	return v.landing
}

//LandingDistance returns the horizontal distance of the landing point
func (v ShotResult) LandingDistance() unit.Distance {
	return unit.Meters(v.landing.X)
}

//ImpactVelocity returns the velocity of the projectile at the landing
func (v ShotResult) ImpactVelocity() vector.Vector {
	return v.impactVelocity
}

//ImpactSpeed returns the speed of the projectile at the landing
func (v ShotResult) ImpactSpeed() unit.Velocity {
	return unit.MetersPerSecond(v.impactVelocity.Magnitude())
}

//Energy returns the kinetic energy of the projectile at the landing
func (v ShotResult) Energy() unit.Energy {
	return v.energy
}

//Time returns the time of flight
func (v ShotResult) Time() Timespan {
	return v.time
}

//Steps returns the number of integration steps made
func (v ShotResult) Steps() int {
	return v.steps
}

//Apex returns the highest point of the flight
func (v ShotResult) Apex() vector.Vector {
	return v.apex
}

//Collisions returns the reflections in the order they happened
func (v ShotResult) Collisions() []Collision {
	return v.collisions
}

//Trajectory returns the positions of the projectile from the launch point
//to the landing point.
//
//The trajectory is empty unless the shot was created by CreateRecordedShotParameters
func (v ShotResult) Trajectory() []vector.Vector {
	return v.trajectory
}

//DegenerateLanding returns true if the landing step did not change the height of the
//projectile, so the landing point could not be interpolated and the last position was used
func (v ShotResult) DegenerateLanding() bool {
	return v.degenerateLanding
}
