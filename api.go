package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/thirdcore/internal/panicerr"
)

// New constructs a VM, applies opts over the defaults, installs the
// primitive dictionary and bootstrap streams, and returns it ready to Run.
func New(opts ...VMOption) *VM {
	vm := newVM()
	defaultOptions.apply(vm)
	VMOptions(opts...).apply(vm)
	vm.installBootstrap()
	return vm
}

// Run drives the outer interpreter to completion: first the bootstrap
// script, then (after its final (resume-stdin)) the configured stdin
// reader, until a word is undefined, a stack or arena invariant is
// violated, or input runs out cleanly.
//
// A halt, a bare runtime.Goexit, or an unrelated panic anywhere in the call
// tree are all recovered and reported as a plain error; a clean EOF is
// reported as nil, matching spec's "implementers should treat unrecoverable
// EOF on stdin as clean termination."
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		return vm.runUntil(ctx)
	})
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var he haltError
	if errors.As(err, &he) {
		return he.err
	}
	return err
}

// runUntil runs repl to completion, checking ctx between primitive steps is
// deliberately not done: the spec models a synchronous, uninterruptible
// machine whose only blocking point is reading input (5. CONCURRENCY &
// RESOURCE MODEL: "no scheduling, no suspension points"). ctx.Err is
// consulted once up front so a pre-cancelled context still short-circuits.
func (vm *VM) runUntil(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return vm.repl()
}

// Close closes every io.Closer the VM collected over its lifetime: files
// opened via open-read-file, and any writer passed to WithOutput or WithTee
// that implements io.Closer. The bootstrap and stdin readers are not closed.
func (vm *VM) Close() error {
	var first error
	for _, c := range vm.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
