package compare

import (
	"errors"

	"github.com/ezrec/griter/translate"
)

var f = translate.From

var (
	ErrDisagree = errors.New(f("steppers disagree"))
	ErrTooFew   = errors.New(f("at least two steppers required"))
	ErrSteps    = errors.New(f("step count negative"))
)

// ErrMismatch locates the first disagreement between two steppers.
type ErrMismatch struct {
	Step     int    // Completed steps when the disagreement was seen.
	Index    int    // Index of the disagreeing stepper.
	Expected string // Visible state of the first stepper.
	Got      string // Visible state of the disagreeing stepper.
}

func (err *ErrMismatch) Error() string {
	return f("step %d stepper %d: expected %v, got %v", err.Step, err.Index, err.Expected, err.Got)
}

func (err *ErrMismatch) Unwrap() error {
	return ErrDisagree
}
