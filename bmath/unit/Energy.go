package unit

//EnergyFootPound is the value indicating that the energy is set in foot-pounds
const EnergyFootPound byte = 30

//EnergyJoule is the value indicating that the energy is set in joules
const EnergyJoule byte = 31

var energyUnits = unitTable{
	EnergyFootPound: {name: "ft·lb", accuracy: 0, factor: 1 / 0.737562149277},
	EnergyJoule:     {name: "J", accuracy: 1, factor: 1},
}

//Energy keeps the kinetic energy of a body
type Energy struct {
	value        float64
	defaultUnits byte
}

//CreateEnergy creates a energy value.
//
//units are measurement unit and may be any value from
//unit.Energy* constants.
func CreateEnergy(value float64, units byte) (Energy, error) {
	v, err := energyUnits.toDefault("Energy", value, units)
	if err != nil {
		return Energy{}, err
	}
	return Energy{value: v, defaultUnits: units}, nil
}

//MustCreateEnergy creates the energy value but panics instead of returned a error
func MustCreateEnergy(value float64, units byte) Energy {
	v, err := CreateEnergy(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the energy in the specified units.
func (v Energy) Value(units byte) (float64, error) {
	return energyUnits.fromDefault("Energy", v.value, units)
}

//ValueOrZero returns the value in the specified units or 0 if the unit is not supported
func (v Energy) ValueOrZero(units byte) float64 {
	return v.In(units)
}

//Convert converts the value into the specified units.
func (v Energy) Convert(units byte) Energy {
	return Energy{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Energy) In(units byte) float64 {
	x, e := v.Value(units)
	if e != nil {
		return 0
	}
	return x
}

func (v Energy) String() string {
	return energyUnits.format(v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Energy) Units() byte {
	return v.defaultUnits
}
