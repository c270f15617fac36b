package go_bankshot

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gehtsoft-usa/go_bankshot/bmath/unit"
)

const cDefaultMaximumIterations int = 100
const cDefaultInitialUpperAngle float64 = 30
const cDefaultAngleIncrement float64 = 1
const cDefaultMaximumAngle float64 = 90
const cAngleSlack float64 = 1e-12

//SolverStatus tells whether the solver met the tolerance
type SolverStatus byte

const (
	//StatusConverged means the landing error is within the convergence tolerance
	StatusConverged SolverStatus = iota
	//StatusNotConverged means the iterations were exhausted and the best angle found is reported
	StatusNotConverged
)

func (s SolverStatus) String() string {
	if s == StatusConverged {
		return "converged"
	}
	return "not converged"
}

//AngleBracket is an interval of launch angles which contains the solution
type AngleBracket struct {
	Low       unit.Angular
	High      unit.Angular
	LowError  float64 //landing error at Low, m
	HighError float64 //landing error at High, m
}

//ErrorTrace keeps the signed landing error of every bisection iteration
type ErrorTrace []float64

//Last returns the error of the last iteration
func (t ErrorTrace) Last() float64 {
	if len(t) == 0 {
		return math.NaN()
	}
	return t[len(t)-1]
}

//Best returns the index of the iteration with the smallest absolute error
//or -1 if the trace is empty
func (t ErrorTrace) Best() int {
	if len(t) == 0 {
		return -1
	}
	abs := make([]float64, len(t))
	for i, e := range t {
		abs[i] = math.Abs(e)
	}
	return floats.MinIdx(abs)
}

//Iteration describes one bisection step to an observer
type Iteration struct {
	Index int //1-based
	Angle unit.Angular
	Error float64
	Shot  ShotResult
}

//IterationObserver is called after every bisection step
type IterationObserver func(Iteration)

//SolverResult keeps the outcome of the angle search
type SolverResult struct {
	angle      unit.Angular
	status     SolverStatus
	errorTrace ErrorTrace
	bracket    AngleBracket
	shot       ShotResult
}

//Angle returns the angle found. When the solver did not converge it is
//the best angle tried.
func (v SolverResult) Angle() unit.Angular {
	return v.angle
}

//Status returns whether the tolerance was met
func (v SolverResult) Status() SolverStatus {
	return v.status
}

//Converged is a shortcut for Status() == StatusConverged
func (v SolverResult) Converged() bool {
	return v.status == StatusConverged
}

//ErrorTrace returns the landing errors of all iterations
func (v SolverResult) ErrorTrace() ErrorTrace {
	return v.errorTrace
}

//Iterations returns the number of bisection iterations made
func (v SolverResult) Iterations() int {
	return len(v.errorTrace)
}

//Bracket returns the interval the bisection started from
func (v SolverResult) Bracket() AngleBracket {
	return v.bracket
}

//Shot returns the shot at the angle found
func (v SolverResult) Shot() ShotResult {
	return v.shot
}

//ShootingSolver searches the launch angle which lands the projectile at the target distance
type ShootingSolver struct {
	calculator        TrajectoryCalculator
	initialUpper      unit.Angular
	increment         unit.Angular
	maximumAngle      unit.Angular
	maximumIterations int
	observer          IterationObserver
	logger            *slog.Logger
}

//CreateShootingSolver creates the solver which starts the bracket search
//from 0 and 30 degrees, widens it by 1 degree up to 90 degrees and makes
//up to 100 bisection iterations
func CreateShootingSolver(calculator TrajectoryCalculator) ShootingSolver {
	return ShootingSolver{
		calculator:        calculator,
		initialUpper:      unit.Degrees(cDefaultInitialUpperAngle),
		increment:         unit.Degrees(cDefaultAngleIncrement),
		maximumAngle:      unit.Degrees(cDefaultMaximumAngle),
		maximumIterations: cDefaultMaximumIterations,
		logger:            slog.New(discardHandler{}),
	}
}

//Calculator returns the trajectory calculator used by the solver
func (v ShootingSolver) Calculator() TrajectoryCalculator {
	return v.calculator
}

//SetBracketSearch sets the first upper angle of the bracket search, the
//increment the upper angle grows by and the largest angle tried
func (v *ShootingSolver) SetBracketSearch(initialUpper, increment, maximum unit.Angular) error {
	u := initialUpper.In(unit.AngularRadian)
	i := increment.In(unit.AngularRadian)
	m := maximum.In(unit.AngularRadian)
	if !(i > 0) || !(u > 0) || u > m {
		return fmt.Errorf("%w: bracket search needs 0 < initial upper angle <= maximum angle and a positive increment (got %s, %s, %s)",
			ErrInvalidConfig, initialUpper, increment, maximum)
	}
	v.initialUpper = initialUpper
	v.increment = increment
	v.maximumAngle = maximum
	return nil
}

//SetMaximumIterations sets the maximum number of bisection iterations.
//A value which is not positive restores the default.
func (v *ShootingSolver) SetMaximumIterations(n int) {
	if n <= 0 {
		n = cDefaultMaximumIterations
	}
	v.maximumIterations = n
}

//SetObserver sets the function called after every bisection iteration.
//The shots passed to the observer have their trajectories recorded.
func (v *ShootingSolver) SetObserver(observer IterationObserver) {
	v.observer = observer
}

//SetLogger sets the logger of the solver. A nil logger discards the output.
func (v *ShootingSolver) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(discardHandler{})
	}
	v.logger = logger
}

func (v ShootingSolver) landingError(angle unit.Angular, record bool) (ShotResult, float64, error) {
	parameters := CreateShotParameters(angle)
	if record {
		parameters = CreateRecordedShotParameters(angle)
	}
	shot, err := v.calculator.Shot(parameters)
	if err != nil {
		return ShotResult{}, 0, err
	}
	target := v.calculator.config.targetDistance.In(unit.DistanceMeter)
	return shot, shot.landing.X - target, nil
}

func bracketed(lowError, highError, tolerance float64) bool {
	return lowError*highError <= 0 || math.Abs(lowError) < tolerance || math.Abs(highError) < tolerance
}

//Bracket searches the interval of angles whose landing errors have opposite
//signs, starting from 0 and the initial upper angle and widening the upper
//bound by the increment.
//
//The error wraps ErrBracketingFailure if the maximum angle is passed
//before the target is bracketed.
func (v ShootingSolver) Bracket() (AngleBracket, error) {
	tolerance := v.calculator.config.tolerances.Convergence

	low := unit.Radians(0)
	_, lowError, err := v.landingError(low, false)
	if err != nil {
		return AngleBracket{}, fmt.Errorf("evaluating lower bound: %w", err)
	}

	initial := v.initialUpper.In(unit.AngularRadian)
	increment := v.increment.In(unit.AngularRadian)
	maximum := v.maximumAngle.In(unit.AngularRadian)

	highError := math.NaN()
	for k := 0; ; k++ {
		angle := initial + float64(k)*increment
		if angle > maximum+cAngleSlack {
			return AngleBracket{}, fmt.Errorf("%w: landing error is %g m at %s and %g m at %s",
				ErrBracketingFailure, lowError, low.Convert(unit.AngularDegree), highError, v.maximumAngle)
		}
		high := unit.Radians(angle).Convert(unit.AngularDegree)

		_, highError, err = v.landingError(high, false)
		if err != nil {
			return AngleBracket{}, fmt.Errorf("evaluating upper bound %s: %w", high, err)
		}
		v.logger.Debug("bracket search", "upper_deg", high.In(unit.AngularDegree), "landing_error", highError)

		if bracketed(lowError, highError, tolerance) {
			bracket := AngleBracket{Low: low, High: high, LowError: lowError, HighError: highError}
			v.logger.Info("target bracketed",
				"low_deg", low.In(unit.AngularDegree), "high_deg", high.In(unit.AngularDegree),
				"low_error", lowError, "high_error", highError)
			return bracket, nil
		}
	}
}

//Solve brackets the target and bisects the bracket.
//
//When the iterations are exhausted the result is still returned, with
//StatusNotConverged, together with an error wrapping ErrNotConverged.
func (v ShootingSolver) Solve() (SolverResult, error) {
	bracket, err := v.Bracket()
	if err != nil {
		return SolverResult{}, err
	}
	return v.SolveWithin(bracket)
}

//SolveWithin bisects the bracket specified
func (v ShootingSolver) SolveWithin(bracket AngleBracket) (SolverResult, error) {
	tolerance := v.calculator.config.tolerances.Convergence
	low := bracket.Low.In(unit.AngularRadian)
	high := bracket.High.In(unit.AngularRadian)
	record := v.observer != nil

	maximumIterations := v.maximumIterations
	if maximumIterations <= 0 {
		maximumIterations = cDefaultMaximumIterations
	}

	result := SolverResult{
		status:     StatusNotConverged,
		bracket:    bracket,
		errorTrace: make(ErrorTrace, 0, maximumIterations),
	}
	bestError := math.Inf(1)

	for i := 1; i <= maximumIterations; i++ {
		mid := unit.Radians((low + high) / 2).Convert(unit.AngularDegree)
		shot, e, err := v.landingError(mid, record)
		if err != nil {
			return SolverResult{}, fmt.Errorf("bisection iteration %d at %s: %w", i, mid, err)
		}
		result.errorTrace = append(result.errorTrace, e)

		if math.Abs(e) < bestError {
			bestError = math.Abs(e)
			result.angle = mid
			result.shot = shot
		}

		v.logger.Debug("bisection iteration", "iteration", i, "angle_deg", mid.In(unit.AngularDegree), "landing_error", e)
		if v.observer != nil {
			v.observer(Iteration{Index: i, Angle: mid, Error: e, Shot: shot})
		}

		if math.Abs(e) < tolerance {
			result.status = StatusConverged
			result.angle = mid
			result.shot = shot
			v.logger.Info("solution found", "angle_deg", mid.In(unit.AngularDegree), "iterations", i, "landing_error", e)
			return result, nil
		} else if e > tolerance {
			high = mid.In(unit.AngularRadian)
		} else {
			low = mid.In(unit.AngularRadian)
		}
	}

	v.logger.Warn("bisection did not converge", "iterations", maximumIterations,
		"best_angle_deg", result.angle.In(unit.AngularDegree), "best_error", bestError)
	return result, fmt.Errorf("%w: %d iterations, best landing error %g m at %s",
		ErrNotConverged, maximumIterations, result.errorTrace[result.errorTrace.Best()], result.angle)
}
