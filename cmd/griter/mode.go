package main

// Mode selects what the command line prints.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_STATE   = Mode(0) // state
	MODE_LOG     = Mode(1) // log
	MODE_COMPARE = Mode(2) // compare
)

// ErrMode is an unknown mode name.
type ErrMode string

func (err ErrMode) Error() string {
	return f("unknown mode %q", string(err))
}

// Set implements flag.Value.
func (m *Mode) Set(name string) error {
	for mode := MODE_STATE; mode <= MODE_COMPARE; mode++ {
		if mode.String() == name {
			*m = mode
			return nil
		}
	}
	return ErrMode(name)
}
