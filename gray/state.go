// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package gray

import (
	"fmt"
	"iter"
	"log"
	"slices"
)

const (
	DEFAULT_CODE    = "000" // Default visible state.
	DEFAULT_SYMBOLS = "01"  // Default alphabet.
)

// State is a Gray code state machine over a two symbol alphabet.
//
// The stored code is the visible state followed by one hidden symbol. The
// hidden symbol starts as the zero symbol when the initial direction is
// forward, and as the one symbol otherwise. Both directions walk the same
// reflected sequence, from a different phase.
//
// The code has a fixed width, so the walk reflects at each end: the visible
// state repeats once and the sequence is retraced. A full cycle of the code,
// hidden symbol included, is 2^(n+1) steps for n visible symbols.
type State struct {
	Verbose bool // Set to log every step.

	alphabet Alphabet
	code     []rune
}

// NewState creates a state machine from an initial visible code, an alphabet
// of two symbols, and an initial direction.
func NewState(code string, symbols string, direction bool) (state *State, err error) {
	alphabet, err := NewAlphabet(symbols)
	if err != nil {
		return
	}

	runes := []rune(code)
	for n, symbol := range runes {
		if !alphabet.Contains(symbol) {
			err = ErrSymbol{Index: n, Symbol: symbol}
			return
		}
	}

	state = &State{
		alphabet: alphabet,
		code:     append(runes, alphabet.Symbol(!direction)),
	}

	return
}

// NewDefaultState creates a forward "000" state over "01".
func NewDefaultState() (state *State) {
	state, _ = NewState(DEFAULT_CODE, DEFAULT_SYMBOLS, true)
	return
}

// Inc steps forward.
func (st *State) Inc() {
	st.Go(true)
}

// Dec steps backward.
func (st *State) Dec() {
	st.Go(false)
}

// Next steps forward.
func (st *State) Next() {
	st.Inc()
}

// Go steps forward if oriented, otherwise backward.
//
// The two flips are applied in opposite orders, so a step in one direction is
// undone by a step in the other.
func (st *State) Go(oriented bool) {
	if oriented {
		st.flipLast()
	}
	st.flipBeforeLastOne()
	if !oriented {
		st.flipLast()
	}

	if st.Verbose {
		log.Printf("gray: %-5v %v [%c]", oriented, st, st.code[len(st.code)-1])
	}
}

func (st *State) flipLast() {
	last := len(st.code) - 1
	st.code[last] = st.alphabet.Flip(st.code[last])
}

// flipBeforeLastOne is a no-op when there is no one, or nothing to its left.
func (st *State) flipBeforeLastOne() {
	n := st.alphabet.LastOne(st.code)
	if n < 1 {
		return
	}
	st.code[n-1] = st.alphabet.Flip(st.code[n-1])
}

// Visible returns the visible state, without the hidden symbol.
func (st *State) Visible() string {
	return string(st.code[:len(st.code)-1])
}

// String returns the visible state.
func (st *State) String() string {
	return st.Visible()
}

// Bits returns the visible state, true for each one symbol.
func (st *State) Bits() (bits []bool) {
	visible := st.code[:len(st.code)-1]
	bits = make([]bool, len(visible))
	for n, symbol := range visible {
		bits[n] = symbol == st.alphabet.One
	}
	return
}

// Parity is 1 while the hidden symbol is the one symbol, otherwise 0.
func (st *State) Parity() uint64 {
	if st.code[len(st.code)-1] == st.alphabet.One {
		return 1
	}
	return 0
}

// Direction is true while the hidden symbol is the zero symbol.
func (st *State) Direction() bool {
	return st.code[len(st.code)-1] == st.alphabet.Zero
}

// Alphabet of the state.
func (st *State) Alphabet() Alphabet {
	return st.alphabet
}

// Equal compares the visible states.
func (st *State) Equal(other *State) bool {
	return st.Visible() == other.Visible()
}

// Clone returns an independent copy of the state.
func (st *State) Clone() *State {
	return &State{
		Verbose:  st.Verbose,
		alphabet: st.alphabet,
		code:     slices.Clone(st.code),
	}
}

// All yields the visible state, then steps forward, forever.
func (st *State) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(st.Visible()) {
				return
			}
			st.Inc()
		}
	}
}

// GoString formats the state for %#v.
func (st *State) GoString() string {
	return fmt.Sprintf("gray.State{code: %q, symbols: %q, direction: %v}",
		st.Visible(), st.alphabet.String(), st.Direction())
}
