package unit

//WeightGrain is the value indicating that the weight is set in grains
const WeightGrain byte = 70

//WeightOunce is the value indicating that the weight is set in ounces
const WeightOunce byte = 71

//WeightGram is the value indicating that the weight is set in grams
const WeightGram byte = 72

//WeightPound is the value indicating that the weight is set in pounds
const WeightPound byte = 73

//WeightKilogram is the value indicating that the weight is set in kilograms
const WeightKilogram byte = 74

var weightUnits = unitTable{
	WeightGrain:    {name: "gr", accuracy: 0, factor: 0.00006479891},
	WeightOunce:    {name: "oz", accuracy: 1, factor: 0.028349523125},
	WeightGram:     {name: "g", accuracy: 1, factor: 0.001},
	WeightPound:    {name: "lb", accuracy: 3, factor: 0.45359237},
	WeightKilogram: {name: "kg", accuracy: 3, factor: 1},
}

//Weight keeps the mass of a body
type Weight struct {
	value        float64
	defaultUnits byte
}

//CreateWeight creates a weight value.
//
//units are measurement unit and may be any value from
//unit.Weight* constants.
func CreateWeight(value float64, units byte) (Weight, error) {
	v, err := weightUnits.toDefault("Weight", value, units)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: v, defaultUnits: units}, nil
}

//MustCreateWeight creates the weight value but panics instead of returned a error
func MustCreateWeight(value float64, units byte) Weight {
	v, err := CreateWeight(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Kilograms creates a weight expressed in kilograms
func Kilograms(value float64) Weight {
	return Weight{value: value, defaultUnits: WeightKilogram}
}

//Value returns the value of the weight in the specified units.
//
//The method returns a error in case the unit is
//not supported.
func (v Weight) Value(units byte) (float64, error) {
	return weightUnits.fromDefault("Weight", v.value, units)
}

//ValueOrZero returns the value in the specified units or 0 if the unit is not supported
func (v Weight) ValueOrZero(units byte) float64 {
	return v.In(units)
}

//Convert converts the value into the specified units.
func (v Weight) Convert(units byte) Weight {
	return Weight{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Weight) In(units byte) float64 {
	x, e := v.Value(units)
	if e != nil {
		return 0
	}
	return x
}

func (v Weight) String() string {
	return weightUnits.format(v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Weight) Units() byte {
	return v.defaultUnits
}
