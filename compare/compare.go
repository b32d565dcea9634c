// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package compare runs Gray code steppers in lockstep and checks that their
// visible states agree.
package compare

import (
	"fmt"
	"io"
	"log"

	"github.com/ezrec/griter/gray"
)

const (
	DEFAULT_WIDTH = 33 // Default column width of the output table.
)

// Compare is a lockstep comparison of several steppers.
type Compare struct {
	Verbose bool      // Set to log every round.
	Output  io.Writer // If set, a row of columns is written every round.
	Width   int       // Column width, or DEFAULT_WIDTH if zero.
}

// Agree is true if a and b are equal on their overlapping low order digits.
func Agree(a, b []bool) bool {
	count := min(len(a), len(b))
	a, b = a[len(a)-count:], b[len(b)-count:]
	for n := range count {
		if a[n] != b[n] {
			return false
		}
	}
	return true
}

// Run steps each stepper forward, steps times, checking agreement with the
// first stepper before the first step and after every step.
func (cmp *Compare) Run(steps int, steppers ...gray.Stepper) (err error) {
	if len(steppers) < 2 {
		err = ErrTooFew
		return
	}
	if steps < 0 {
		err = ErrSteps
		return
	}

	for step := 0; ; step++ {
		err = cmp.check(step, steppers)
		if err != nil {
			return
		}
		if step == steps {
			return
		}
		for _, stepper := range steppers {
			stepper.Next()
		}
	}
}

func (cmp *Compare) check(step int, steppers []gray.Stepper) (err error) {
	if cmp.Output != nil {
		err = cmp.row(steppers)
		if err != nil {
			return
		}
	}

	if cmp.Verbose {
		log.Printf("compare: step %d %v", step, steppers)
	}

	expect := steppers[0].Bits()
	for n, stepper := range steppers[1:] {
		if !Agree(expect, stepper.Bits()) {
			err = &ErrMismatch{
				Step:     step,
				Index:    n + 1,
				Expected: steppers[0].String(),
				Got:      stepper.String(),
			}
			return
		}
	}

	return
}

func (cmp *Compare) row(steppers []gray.Stepper) (err error) {
	width := cmp.Width
	if width == 0 {
		width = DEFAULT_WIDTH
	}

	for _, stepper := range steppers {
		_, err = fmt.Fprintf(cmp.Output, "%*s", width, stepper)
		if err != nil {
			return
		}
	}
	_, err = fmt.Fprintln(cmp.Output)
	return
}
