package go_bankshot

import "github.com/gehtsoft-usa/go_bankshot/bmath/unit"

//Projectile keeps description of a projectile
type Projectile struct {
	mass            unit.Weight
	dragCoefficient float64
}

//CreateProjectile creates the description of a projectile
//
//dragCoefficient is the quadratic drag constant k (kg/m) of the
//drag force F = -k·|v|·v, where v is the velocity relative to the air.
func CreateProjectile(mass unit.Weight, dragCoefficient float64) Projectile {
	return Projectile{
		mass:            mass,
		dragCoefficient: dragCoefficient,
	}
}

//Mass returns the mass of the projectile
func (v Projectile) Mass() unit.Weight {
	return v.mass
}

//DragCoefficient returns the quadratic drag constant of the projectile
func (v Projectile) DragCoefficient() float64 {
	return v.dragCoefficient
}
