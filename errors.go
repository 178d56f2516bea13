package main

import "errors"

var (
	errArenaFull = errors.New("dictionary arena exhausted")
	errDivByZero = errors.New("division by zero")
	errBadHandle = errors.New("invalid stream handle")
)
