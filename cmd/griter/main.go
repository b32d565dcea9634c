// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ezrec/griter/compare"
	"github.com/ezrec/griter/gray"
	"github.com/ezrec/griter/internal"
)

const (
	WIDTH = 33 // Column width.
)

// config is the parsed command line.
type config struct {
	mode     Mode
	bits     int
	code     string
	symbols  string
	steps    string
	backward bool
	verbose  bool
}

// ErrArguments are unexpected positional arguments.
type ErrArguments []string

func (err ErrArguments) Error() string {
	return f("unknown arguments: %v", []string(err))
}

// ErrBits is a visible width a Log cannot hold.
type ErrBits int

func (err ErrBits) Error() string {
	return f("bits %d out of range", int(err))
}

func parse(args []string) (cfg config, err error) {
	cfg.mode = MODE_COMPARE

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.Var(&cfg.mode, "m", "Mode: state, log or compare")
	flags.IntVar(&cfg.bits, "b", 3, "Visible bits")
	flags.StringVar(&cfg.code, "c", "", "Initial code, overrides -b (default all zero symbols)")
	flags.StringVar(&cfg.symbols, "s", gray.DEFAULT_SYMBOLS, "Two symbol alphabet")
	flags.StringVar(&cfg.steps, "n", "cycle - 1", "Step count expression, over 'bits' and 'cycle'")
	flags.BoolVar(&cfg.backward, "r", false, "Step backward (state mode)")
	flags.BoolVar(&cfg.verbose, "v", false, "Verbose mode")

	err = flags.Parse(args[1:])
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		err = ErrArguments(flags.Args())
		return
	}

	if width := cfg.width(); width < 0 || width > 62 {
		err = ErrBits(width)
		return
	}

	return
}

// width is the visible width: the length of the initial code if given.
func (cfg *config) width() int {
	if len(cfg.code) != 0 {
		return utf8.RuneCountInString(cfg.code)
	}
	return cfg.bits
}

// state creates the symbolic state of the configuration.
func (cfg *config) state() (st *gray.State, err error) {
	code := cfg.code
	if len(code) == 0 {
		alphabet, err := gray.NewAlphabet(cfg.symbols)
		if err != nil {
			return nil, err
		}
		code = strings.Repeat(string(alphabet.Zero), cfg.bits)
	}

	st, err = gray.NewState(code, cfg.symbols, true)
	if err != nil {
		return
	}
	st.Verbose = cfg.verbose
	return
}

// logOf creates an integer counter holding the full code of a state.
//
// The two walk together until the state reaches the all zero code with a
// hidden one: the state then holds, where the integer form flips bit 1.
func logOf(st *gray.State, verbose bool) (lg *gray.Log) {
	var value uint64
	for _, bit := range st.Bits() {
		value <<= 1
		if bit {
			value |= 1
		}
	}

	lg = gray.NewLog(value, st.Parity())
	lg.Verbose = verbose
	return
}

func run(cfg config, out io.Writer) (err error) {
	steps, err := evalSteps(cfg.steps, cfg.width())
	if err != nil {
		return
	}

	st, err := cfg.state()
	if err != nil {
		return
	}

	switch cfg.mode {
	case MODE_STATE:
		for n := 0; ; n++ {
			_, err = fmt.Fprintf(out, "%*v\n", WIDTH, st)
			if err != nil || n == steps {
				return
			}
			st.Go(!cfg.backward)
		}
	case MODE_LOG:
		lg := logOf(st, cfg.verbose)
		for value := range internal.IterSeqLimit(lg.All(), steps+1) {
			_, err = fmt.Fprintf(out, "%*b\n", WIDTH, value)
			if err != nil {
				return
			}
		}
	case MODE_COMPARE:
		lg := logOf(st, cfg.verbose)

		_, err = fmt.Fprintf(out, "%*s%*s\n", WIDTH, "State", WIDTH, "Log")
		if err != nil {
			return
		}
		cmp := &compare.Compare{Verbose: cfg.verbose, Output: out, Width: WIDTH}
		err = cmp.Run(steps, st, lg)
	default:
		err = ErrMode(cfg.mode.String())
	}

	return
}

func main() {
	cfg, err := parse(os.Args)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	err = run(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
