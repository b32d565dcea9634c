package main

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/griter/translate"
)

var f = translate.From

// ErrExpression is an expression that is not a non-negative integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a step count", string(err))
}

// predeclared names for a step count expression over a bit width.
func predeclared(bits int) starlark.StringDict {
	return starlark.StringDict{
		"bits":  starlark.MakeInt(bits),
		"cycle": starlark.MakeInt64(int64(1) << bits),
	}
}

// evalSteps evaluates a step count expression.
func evalSteps(expr string, bits int) (steps int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "steps", prog, predeclared(bits))
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 {
		err = ErrExpression(expr)
		return
	}
	steps = int(st_int64)
	return
}
