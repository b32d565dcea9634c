// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gray

import (
	"fmt"
	"iter"
	"log"
	"strconv"
)

// Log is a forward-only Gray code counter over a packed integer.
//
// Bit 0 of the code is the hidden parity bit, and the upper 63 bits are the
// visible Gray code value. Log walks the same sequence as a forward State
// over "01", but is not width limited, so it never reflects.
//
// There is no backward step.
type Log struct {
	Verbose bool // Set to log every step.

	code uint64
}

// NewLog creates a counter from a raw Gray code value and a parity bit.
// Only the low bit of parity is used.
func NewLog(value uint64, parity uint64) *Log {
	return &Log{
		code: value<<1 | parity&1,
	}
}

// Next steps forward.
func (lg *Log) Next() {
	lg.code ^= 1

	// Double n past the trailing zeros of the code. If n runs off the
	// top of the word it is zero, and the flip is a no-op.
	n := uint64(2)
	for n != 0 && n/2 < lg.code && lg.code%n == 0 {
		n *= 2
	}
	lg.code ^= n

	if lg.Verbose {
		log.Printf("gray: %v [%d]", lg, lg.Parity())
	}
}

// Value is the visible Gray code value.
func (lg *Log) Value() uint64 {
	return lg.code >> 1
}

// Parity is the hidden parity bit.
func (lg *Log) Parity() uint64 {
	return lg.code & 1
}

// String returns the visible value in binary.
func (lg *Log) String() string {
	return strconv.FormatUint(lg.Value(), 2)
}

// Bits returns the binary digits of the visible value.
func (lg *Log) Bits() (bits []bool) {
	digits := lg.String()
	bits = make([]bool, len(digits))
	for n := range digits {
		bits[n] = digits[n] == '1'
	}
	return
}

// All yields the visible value, then steps forward, forever.
func (lg *Log) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			if !yield(lg.Value()) {
				return
			}
			lg.Next()
		}
	}
}

// GoString formats the counter for %#v.
func (lg *Log) GoString() string {
	return fmt.Sprintf("gray.Log{code: %d, parity: %d}", lg.Value(), lg.Parity())
}
