package gray

// Alphabet is the ordered symbol pair of a symbolic code.
type Alphabet struct {
	Zero rune // Falsy symbol.
	One  rune // Truthy symbol.
}

// NewAlphabet parses a two symbol string, zero symbol first.
func NewAlphabet(symbols string) (alphabet Alphabet, err error) {
	runes := []rune(symbols)
	if len(runes) != 2 || runes[0] == runes[1] {
		err = ErrAlphabet(symbols)
		return
	}

	alphabet = Alphabet{Zero: runes[0], One: runes[1]}
	return
}

// Flip toggles a symbol. Anything that is not Zero flips to Zero.
func (a Alphabet) Flip(symbol rune) rune {
	if symbol == a.Zero {
		return a.One
	}
	return a.Zero
}

// Symbol of a boolean value.
func (a Alphabet) Symbol(value bool) rune {
	if value {
		return a.One
	}
	return a.Zero
}

// Contains is true if the symbol is one of the pair.
func (a Alphabet) Contains(symbol rune) bool {
	return symbol == a.Zero || symbol == a.One
}

// LastOne is the index of the right-most One in code, or -1.
func (a Alphabet) LastOne(code []rune) int {
	for n := len(code) - 1; n >= 0; n-- {
		if code[n] == a.One {
			return n
		}
	}
	return -1
}

// String returns the alphabet in the form accepted by NewAlphabet.
func (a Alphabet) String() string {
	return string([]rune{a.Zero, a.One})
}
