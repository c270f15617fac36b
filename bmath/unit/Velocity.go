package unit

//VelocityMPS is the value indicating that velocity value is expressed in meters per second
const VelocityMPS byte = 60

//VelocityKMH is the value indicating that velocity value is expressed in kilometers per hour
const VelocityKMH byte = 61

//VelocityFPS is the value indicating that velocity value is expressed in feet per second
const VelocityFPS byte = 62

//VelocityMPH is the value indicating that velocity value is expressed in miles per hour
const VelocityMPH byte = 63

//VelocityKT is the value indicating that velocity value is expressed in knots
const VelocityKT byte = 64

var velocityUnits = unitTable{
	VelocityMPS: {name: "m/s", accuracy: 0, factor: 1},
	VelocityKMH: {name: "km/h", accuracy: 1, factor: 1 / 3.6},
	VelocityFPS: {name: "ft/s", accuracy: 1, factor: 0.3048},
	VelocityMPH: {name: "mph", accuracy: 1, factor: 0.44704},
	VelocityKT:  {name: "kt", accuracy: 1, factor: 1852.0 / 3600.0},
}

//Velocity struct keeps velocity or speed values
type Velocity struct {
	value        float64
	defaultUnits byte
}

//CreateVelocity creates a velocity value.
//
//units are measurement unit and may be any value from
//unit.Velocity* constants.
func CreateVelocity(value float64, units byte) (Velocity, error) {
	v, err := velocityUnits.toDefault("Velocity", value, units)
	if err != nil {
		return Velocity{}, err
	}
	return Velocity{value: v, defaultUnits: units}, nil
}

//MustCreateVelocity creates the velocity value but panics instead of returned a error
func MustCreateVelocity(value float64, units byte) Velocity {
	v, err := CreateVelocity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//MetersPerSecond creates a velocity expressed in meters per second
func MetersPerSecond(value float64) Velocity {
	return Velocity{value: value, defaultUnits: VelocityMPS}
}

//Value returns the value of the velocity in the specified units.
//
//The method returns a error in case the unit is
//not supported.
func (v Velocity) Value(units byte) (float64, error) {
	return velocityUnits.fromDefault("Velocity", v.value, units)
}

//ValueOrZero returns the value in the specified units or 0 if the unit is not supported
func (v Velocity) ValueOrZero(units byte) float64 {
	return v.In(units)
}

//Convert converts the value into the specified units.
func (v Velocity) Convert(units byte) Velocity {
	return Velocity{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Velocity) In(units byte) float64 {
	x, e := v.Value(units)
	if e != nil {
		return 0
	}
	return x
}

func (v Velocity) String() string {
	return velocityUnits.format(v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Velocity) Units() byte {
	return v.defaultUnits
}
