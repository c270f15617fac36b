package go_bankshot

//Tolerances keeps the small distances used by the event detection
//and by the angle search.
//
//All of them default to the single tolerance of the physical configuration.
type Tolerances struct {
	BarrierBuffer   float64 //the reflection plane is moved this far in front of a barrier, m
	HeightAllowance float64 //a step passing this close above a barrier top still hits it, m
	Ground          float64 //a descending projectile at or below this height has landed, m
	Convergence     float64 //the largest landing error accepted by the solver, m
}

//UniformTolerances creates the tolerances which all equal to the value specified
func UniformTolerances(tolerance float64) Tolerances {
	return Tolerances{
		BarrierBuffer:   tolerance,
		HeightAllowance: tolerance,
		Ground:          tolerance,
		Convergence:     tolerance,
	}
}
