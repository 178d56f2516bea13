package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/thirdcore/internal/flushio"
	"github.com/jcorbin/thirdcore/internal/iostream"
)

type mode int

const (
	modeNormal mode = iota
	modeCompile
)

// VM is the interpreter: a fixed-size byte arena, a parameter stack, a
// return stack, the inner interpreter's current/next registers, and the
// handle-addressed input streams.
type VM struct {
	mem [arenaSize]byte

	data Stack
	ret  Stack

	current Addr
	next    Addr
	mode    mode

	streams     iostream.Table
	in          *iostream.Stream
	inHandle    int
	stdinHandle int

	out     flushio.WriteFlusher
	closers []io.Closer

	stdinReader   io.Reader
	startupReader io.Reader

	logf  func(string, ...interface{})
	trace bool

	// wExit etc. cache the codeword addresses of a handful of primitives
	// that the compiler and bootstrap loader need to splice in directly,
	// without going through find by name every time.
	wExit, wLit, wBranch, wZBranch Addr
	latestBuiltin                  Addr

	wordBuf Addr // scratch buffer address used by the word primitive

	defining Addr // entry address of the colon definition in progress, or 0
}

func newVM() *VM {
	vm := &VM{
		data: newStack("data", stackCapacity),
		ret:  newStack("return", stackCapacity),
	}
	vm.setHereAddr(dictStart)
	vm.setLatestAddr(0)
	vm.installPrimitives()
	vm.wordBuf = vm.reserveScratch(nameBufCap + 1)
	return vm
}

// reserveScratch carves out n bytes at here for fixed internal use (never
// part of the dictionary proper), advancing here past them.
func (vm *VM) reserveScratch(n int) Addr {
	a := vm.hereAddr()
	for i := 0; i < n; i++ {
		vm.appendByte(0)
	}
	return a
}

// haltError is what halt panics with; Run's recover turns it back into a
// plain error.
type haltError struct{ err error }

func (he haltError) Error() string { return he.err.Error() }
func (he haltError) Unwrap() error { return he.err }

func (vm *VM) halt(err error) {
	if vm.out != nil {
		vm.out.Flush()
	}
	panic(haltError{err})
}

func (vm *VM) haltf(format string, args ...interface{}) {
	vm.halt(fmt.Errorf(format, args...))
}

func (vm *VM) logTrace(format string, args ...interface{}) {
	if vm.trace && vm.logf != nil {
		vm.logf(format, args...)
	}
}

// runWord executes w (the address of a dictionary entry) to completion: it
// is the inner interpreter's entry point, setting current/next up fresh and
// stepping until next again reads null.
func (vm *VM) runWord(entry Addr) {
	vm.current = vm.entryCodewordAddr(entry)
	vm.next = addrNull
	for {
		vm.step()
		if vm.next == addrNull {
			return
		}
		vm.current = Addr(vm.cellAt(vm.next))
		vm.next += cellSize
	}
}

// step dispatches the primitive whose id is stored at current.
func (vm *VM) step() {
	id := vm.cellAt(vm.current)
	if id < 0 || int(id) >= numPrimitives {
		vm.haltf("bad codeword %d at %d", id, vm.current)
	}
	vm.logTrace("step @%-5d next=%-5d %-12s data=%v ret=%v",
		vm.current, vm.next, primitiveNames[id], vm.data.snapshot(), vm.ret.snapshot())
	primitiveTable[id](vm)
}

// repl is the outer interpreter: read a token, number or dispatch it
// according to mode and the word's immediate flag, forever (or until a
// clean EOF).
func (vm *VM) repl() error {
	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				he, ok := r.(haltError)
				if !ok {
					panic(r)
				}
				runErr = he
			}
		}()
		for {
			tok, ok := vm.scanToken()
			if !ok {
				return
			}
			if n, isNum := parseNumber(tok); isNum {
				if vm.mode == modeCompile {
					vm.compileLiteral(Cell(n))
				} else {
					vm.data.push(vm, Cell(n))
				}
				continue
			}
			entry := vm.find(tok)
			if entry == 0 {
				vm.haltf("undefined word %q", tok)
			}
			if vm.mode == modeNormal || vm.entryFlags(entry)&flagImmediate != 0 {
				vm.runWord(entry)
			} else {
				vm.compileCall(entry)
			}
		}
	}()
	return runErr
}
