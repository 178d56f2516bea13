package main

import (
	"errors"
	"io"
	"os"

	"github.com/jcorbin/thirdcore/internal/iostream"
)

// opEmit pops a byte value and writes it to the output sink.
func opEmit(vm *VM) {
	v := vm.data.pop(vm)
	if v < 0 || v > 255 {
		vm.haltf("emit: %d out of byte range", v)
	}
	if _, err := vm.out.Write([]byte{byte(v)}); err != nil {
		vm.halt(err)
	}
}

// opKey reads one byte from the current input stream and pushes it. Running
// out of input here is not fatal the way it is for word: it is a normal,
// expected way for a program reading its own input a byte at a time to
// notice end of stream, so key simply logs a trace line and leaves the data
// stack untouched, leaving the decision of what to do next to the caller.
func opKey(vm *VM) {
	b, err := vm.in.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			vm.logTrace("key: eof on %s", vm.in.Location)
			return
		}
		vm.halt(err)
	}
	vm.data.push(vm, Cell(b))
}

// opTell pops the address of a NUL-terminated string and writes it to the
// output sink.
func opTell(vm *VM) {
	a := Addr(vm.data.pop(vm))
	s := vm.readCString(a)
	if _, err := vm.out.Write([]byte(s)); err != nil {
		vm.halt(err)
	}
}

// opStdin pushes the handle of the stream wired up as stdin at startup.
func opStdin(vm *VM) { vm.data.push(vm, Cell(vm.stdinHandle)) }

// opGetInputStream pushes the handle of the stream currently feeding the
// tokenizer.
func opGetInputStream(vm *VM) { vm.data.push(vm, Cell(vm.inHandle)) }

// opSetInputStream pops a handle and makes it the stream the tokenizer
// reads from.
func opSetInputStream(vm *VM) {
	h := int(vm.data.pop(vm))
	s := vm.streams.Get(h)
	if s == nil {
		vm.halt(errBadHandle)
	}
	vm.in = s
	vm.inHandle = h
}

// opOpenReadFile pops the address of a NUL-terminated path, opens it
// read-only, registers it as a new stream, and pushes its handle.
func opOpenReadFile(vm *VM) {
	a := Addr(vm.data.pop(vm))
	path := vm.readCString(a)
	f, err := os.Open(path)
	if err != nil {
		vm.halt(err)
	}
	s := iostream.Open(path, f)
	h := vm.streams.Register(s)
	vm.closers = append(vm.closers, f)
	vm.data.push(vm, Cell(h))
}

// opCloseFile pops a handle and closes its stream.
func opCloseFile(vm *VM) {
	h := int(vm.data.pop(vm))
	if err := vm.streams.Close(h); err != nil {
		vm.halt(err)
	}
}
