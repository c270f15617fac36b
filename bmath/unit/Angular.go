package unit

import (
	"fmt"
	"math"
)

//AngularRadian is the value indicating that the angle is set in radians
const AngularRadian byte = 0

//AngularDegree is the value indicating that the angle is set in degrees
const AngularDegree byte = 1

//AngularMOA is the value indicating that the angle is set in minutes of arc
const AngularMOA byte = 2

//AngularMil is the value indicating that the angle is set in NATO mils (6400 per turn)
const AngularMil byte = 3

//AngularMRad is the value indicating that the angle is set in milliradians
const AngularMRad byte = 4

//AngularCmPer100M is the value indicating that the angle is set as centimeters at 100 meters
const AngularCmPer100M byte = 7

//Angular keeps an angle value
type Angular struct {
	value        float64
	defaultUnits byte
}

func toRadians(value float64, units byte) (float64, error) {
	switch units {
	case AngularRadian:
		return value, nil
	case AngularDegree:
		return value / 180 * math.Pi, nil
	case AngularMOA:
		return value / 180 * math.Pi / 60, nil
	case AngularMil:
		return value / 3200 * math.Pi, nil
	case AngularMRad:
		return value / 1000, nil
	case AngularCmPer100M:
		return math.Atan(value / 10000), nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", units)
	}
}

func fromRadians(value float64, units byte) (float64, error) {
	switch units {
	case AngularRadian:
		return value, nil
	case AngularDegree:
		return value * 180 / math.Pi, nil
	case AngularMOA:
		return value * 180 / math.Pi * 60, nil
	case AngularMil:
		return value * 3200 / math.Pi, nil
	case AngularMRad:
		return value * 1000, nil
	case AngularCmPer100M:
		return math.Tan(value) * 10000, nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", units)
	}
}

//CreateAngular creates an angle value.
//
//units are measurement unit and may be any value from
//unit.Angular* constants.
func CreateAngular(value float64, units byte) (Angular, error) {
	v, err := toRadians(value, units)
	if err != nil {
		return Angular{}, err
	}
	return Angular{value: v, defaultUnits: units}, nil
}

//MustCreateAngular creates the angle value but panics instead of returned a error
func MustCreateAngular(value float64, units byte) Angular {
	v, err := CreateAngular(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Radians creates an angle expressed in radians
func Radians(value float64) Angular {
	return Angular{value: value, defaultUnits: AngularRadian}
}

//Degrees creates an angle expressed in degrees
func Degrees(value float64) Angular {
	return MustCreateAngular(value, AngularDegree)
}

//Value returns the value of the angle in the specified units.
func (v Angular) Value(units byte) (float64, error) {
	return fromRadians(v.value, units)
}

//ValueOrZero returns the value in the specified units or 0 if the unit is not supported
func (v Angular) ValueOrZero(units byte) float64 {
	x, e := fromRadians(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Angular) In(units byte) float64 {
	return v.ValueOrZero(units)
}

//Convert converts the value into the specified units.
func (v Angular) Convert(units byte) Angular {
	return Angular{value: v.value, defaultUnits: units}
}

//Units return the units in which the value is measured
func (v Angular) Units() byte {
	return v.defaultUnits
}

func (v Angular) String() string {
	x, e := fromRadians(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	var accuracy int
	switch v.defaultUnits {
	case AngularRadian:
		unitName = "rad"
		accuracy = 6
	case AngularDegree:
		unitName = "°"
		accuracy = 4
	case AngularMOA:
		unitName = "moa"
		accuracy = 2
	case AngularMil:
		unitName = "mil"
		accuracy = 2
	case AngularMRad:
		unitName = "mrad"
		accuracy = 2
	case AngularCmPer100M:
		unitName = "cm/100m"
		accuracy = 2
	}
	return fmt.Sprintf(fmt.Sprintf("%%.%df%%s", accuracy), x, unitName)
}
