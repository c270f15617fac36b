//Package unit keeps physical quantities together with the
//units they were expressed in.
//
//Every quantity is stored in SI units (meters, meters per second,
//kilograms, joules, radians) so the trajectory code can read
//the raw value without conversion.
package unit

import "fmt"

type unitInfo struct {
	name     string
	accuracy int
	factor   float64 //multiplier from the unit to the SI value
}

type unitTable map[byte]unitInfo

func (t unitTable) toDefault(kind string, value float64, units byte) (float64, error) {
	u, ok := t[units]
	if !ok {
		return 0, fmt.Errorf("%s: unit %d is not supported", kind, units)
	}
	return value * u.factor, nil
}

func (t unitTable) fromDefault(kind string, value float64, units byte) (float64, error) {
	u, ok := t[units]
	if !ok {
		return 0, fmt.Errorf("%s: unit %d is not supported", kind, units)
	}
	return value / u.factor, nil
}

func (t unitTable) format(value float64, units byte) string {
	u, ok := t[units]
	if !ok {
		return "!error: default units aren't correct"
	}
	return fmt.Sprintf(fmt.Sprintf("%%.%df%%s", u.accuracy), value/u.factor, u.name)
}
