//The package provides simple operations on 2d vector
//required for the planar trajectory calculation
package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

//Vector is a 2D vector. X is the distance along the flight path and
//Y is the height above the ground.
type Vector r2.Vec

//Converts a vector into a string
func (v Vector) String() string {
	return fmt.Sprintf("[X=%f,Y=%f]", v.X, v.Y)
}

//Creates a vector from its coordinates
func Create(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

//Create a copy of the vector
func (v Vector) Copy() Vector {
	return Vector{X: v.X, Y: v.Y}
}

//Return a product of two vectors
//
//The product of two vectors is a sum of products of each coordinate
func (v Vector) MultiplyByVector(b Vector) float64 {
	return r2.Dot(r2.Vec(v), r2.Vec(b))
}

//Returns a magnitude of the vector
func (v Vector) Magnitude() float64 {
	return r2.Norm(r2.Vec(v))
}

//Multiplies the vector by the constant
func (v Vector) MultiplyByConst(a float64) Vector {
	return Vector(r2.Scale(a, r2.Vec(v)))
}

//Adds two vectors
func (a Vector) Add(b Vector) Vector {
	return Vector(r2.Add(r2.Vec(a), r2.Vec(b)))
}

//Subtracts one vector from another
func (a Vector) Subtract(b Vector) Vector {
	return Vector(r2.Sub(r2.Vec(a), r2.Vec(b)))
}

//Returns a vector which is simmetrical to this vector vs (0,0) point
func (v Vector) Negate() Vector {
	return Create(-v.X, -v.Y)
}

//MirrorX returns the vector with the horizontal component negated,
//as after an elastic hit against a vertical surface
func (v Vector) MirrorX() Vector {
	return Create(-v.X, v.Y)
}

//Returns a vector of magnitude one which is collinear to this vector
func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()

	if math.Abs(magnitude) < 1e-10 {
		return v.Copy()
	}
	return v.MultiplyByConst(1.0 / magnitude)
}
