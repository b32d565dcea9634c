package gray

import (
	"fmt"
)

// Stepper is a Gray code counter that can be stepped forward and decoded.
type Stepper interface {
	Next()        // Step forward one code.
	Bits() []bool // Visible state, most significant first.
	fmt.Stringer  // Visible state, for display.
}

var (
	_ Stepper = (*State)(nil)
	_ Stepper = (*Log)(nil)
)
