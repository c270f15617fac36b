package go_bankshot

import (
	"errors"
	"fmt"

	"github.com/gehtsoft-usa/go_bankshot/bmath/unit"
	"github.com/gehtsoft-usa/go_bankshot/bmath/vector"
)

var (
	//ErrInvalidConfig indicates a physical parameter outside of its valid range
	ErrInvalidConfig = errors.New("bankshot: invalid configuration")

	//ErrStepLimitExceeded indicates a shot that did not reach the ground
	//within the maximum number of integration steps
	ErrStepLimitExceeded = errors.New("bankshot: step limit exceeded before the projectile reached the ground")

	//ErrBracketingFailure indicates that no launch angle up to the maximum
	//angle brackets the target distance
	ErrBracketingFailure = errors.New("bankshot: target distance cannot be bracketed")

	//ErrNotConverged indicates that bisection ran out of iterations before
	//the landing error fell within tolerance
	ErrNotConverged = errors.New("bankshot: bisection did not converge")
)

//ShotError describes the failure of one shot evaluation
type ShotError struct {
	Angle    unit.Angular
	Step     int
	Position vector.Vector
	Wrapped  error
}

func (e *ShotError) Error() string {
	return fmt.Sprintf("shot at %s failed at step %d (position %s): %v", e.Angle, e.Step, e.Position, e.Wrapped)
}

func (e *ShotError) Unwrap() error {
	return e.Wrapped
}
