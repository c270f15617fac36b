package go_bankshot

import (
	"github.com/gehtsoft-usa/go_bankshot/bmath/unit"
	"github.com/gehtsoft-usa/go_bankshot/bmath/vector"
)

const cGravityAcceleration float64 = 9.81

//ForceModel calculates the acceleration of the projectile caused by
//gravity and by the quadratic drag of the air moving with the wind
type ForceModel struct {
	mass      float64
	drag      float64
	crosswind float64
}

//CreateForceModel creates the force model for the configuration specified
func CreateForceModel(config PhysicalConfig) ForceModel {
	return ForceModel{
		mass:      config.projectile.mass.In(unit.WeightKilogram),
		drag:      config.projectile.dragCoefficient,
		crosswind: config.wind.velocity.In(unit.VelocityMPS),
	}
}

//Acceleration returns the acceleration of the projectile moving with the velocity specified
func (f ForceModel) Acceleration(velocity vector.Vector) vector.Vector {
	relative := vector.Create(velocity.X-f.crosswind, velocity.Y)
	speed := relative.Magnitude()
	return vector.Create(
		-f.drag*relative.X*speed,
		-f.mass*cGravityAcceleration-f.drag*relative.Y*speed,
	).MultiplyByConst(1.0 / f.mass)
}
