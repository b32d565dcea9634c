package internal

import (
	"iter"
)

// IterSeqLimit yields at most count values from seq.
func IterSeqLimit[T any](seq iter.Seq[T], count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if count <= 0 {
			return
		}
		n := 0
		for val := range seq {
			if !yield(val) {
				return // Stop if the consumer stops
			}
			n++
			if n >= count {
				return
			}
		}
	}
}
