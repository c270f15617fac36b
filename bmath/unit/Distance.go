package unit

//DistanceInch is the value indicating that the distance value is set in inches
const DistanceInch byte = 10

//DistanceFoot is the value indicating that the distance value is set in feet
const DistanceFoot byte = 11

//DistanceYard is the value indicating that the distance value is set in yards
const DistanceYard byte = 12

//DistanceMile is the value indicating that the distance value is set in miles
const DistanceMile byte = 13

//DistanceMillimeter is the value indicating that the distance value is set in millimeters
const DistanceMillimeter byte = 15

//DistanceCentimeter is the value indicating that the distance value is set in centimeters
const DistanceCentimeter byte = 16

//DistanceMeter is the value indicating that the distance value is set in meters
const DistanceMeter byte = 17

//DistanceKilometer is the value indicating that the distance value is set in kilometers
const DistanceKilometer byte = 18

var distanceUnits = unitTable{
	DistanceInch:       {name: "\"", accuracy: 1, factor: 0.0254},
	DistanceFoot:       {name: "'", accuracy: 2, factor: 0.3048},
	DistanceYard:       {name: "yd", accuracy: 3, factor: 0.9144},
	DistanceMile:       {name: "mi", accuracy: 3, factor: 1609.344},
	DistanceMillimeter: {name: "mm", accuracy: 0, factor: 0.001},
	DistanceCentimeter: {name: "cm", accuracy: 1, factor: 0.01},
	DistanceMeter:      {name: "m", accuracy: 2, factor: 1},
	DistanceKilometer:  {name: "km", accuracy: 3, factor: 1000},
}

//Distance structure keeps the distance value
type Distance struct {
	value        float64
	defaultUnits byte
}

//CreateDistance creates a distance value.
//
//units are measurement unit and may be any value from
//unit.Distance* constants.
func CreateDistance(value float64, units byte) (Distance, error) {
	v, err := distanceUnits.toDefault("Distance", value, units)
	if err != nil {
		return Distance{}, err
	}
	return Distance{value: v, defaultUnits: units}, nil
}

//MustCreateDistance creates the distance value but panics instead of returned a error
func MustCreateDistance(value float64, units byte) Distance {
	v, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Meters creates a distance expressed in meters
func Meters(value float64) Distance {
	return Distance{value: value, defaultUnits: DistanceMeter}
}

//Value returns the value of the distance in the specified units.
//
//The method returns a error in case the unit is
//not supported.
func (v Distance) Value(units byte) (float64, error) {
	return distanceUnits.fromDefault("Distance", v.value, units)
}

//ValueOrZero returns the value in the specified units or 0 if the unit is not supported
func (v Distance) ValueOrZero(units byte) float64 {
	return v.In(units)
}

//Convert converts the value into the specified units.
func (v Distance) Convert(units byte) Distance {
	return Distance{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Distance) In(units byte) float64 {
	x, e := v.Value(units)
	if e != nil {
		return 0
	}
	return x
}

func (v Distance) String() string {
	return distanceUnits.format(v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Distance) Units() byte {
	return v.defaultUnits
}
