package main

// compileLiteral appends a call to lit followed by the literal cell itself,
// used by repl whenever a parsed number is seen in compile mode.
func (vm *VM) compileLiteral(v Cell) {
	vm.appendCell(Cell(vm.wLit))
	vm.appendCell(v)
}

// compileCall appends a call to entry's codeword, used by repl for any
// non-immediate word looked up in compile mode.
func (vm *VM) compileCall(entry Addr) {
	vm.appendCell(Cell(vm.entryCodewordAddr(entry)))
}

// opDefine (":") reads the following token as a name, opens a new header
// for it, links it into the dictionary immediately (so the definition can
// refer to itself for recursion), writes its docol codeword, and switches
// to compile mode.
func opDefine(vm *VM) {
	name, ok := vm.scanToken()
	if !ok {
		vm.haltf(": at end of input, expected a name")
	}
	e := vm.newHeader(name, 0)
	vm.appendCell(Cell(idDocol))
	vm.setLatestAddr(e)
	vm.defining = e
	vm.mode = modeCompile
}

// opSemi (";") closes the definition in progress by appending a call to
// exit, and returns to normal mode.
func opSemi(vm *VM) {
	if vm.defining == 0 {
		vm.haltf("; without matching :")
	}
	vm.appendCell(Cell(vm.wExit))
	vm.defining = 0
	vm.mode = modeNormal
}

// opComma appends the top of the data stack as a raw cell at here. Used by
// bootstrap-level compiling words to splice branch opcodes and operands
// into a definition under construction.
func opComma(vm *VM) {
	vm.appendCell(vm.data.pop(vm))
}

// opBracketOpen ("[") drops to normal mode from within a definition, so the
// following tokens are executed rather than compiled; it is itself
// immediate so that it takes effect even while compiling.
func opBracketOpen(vm *VM) { vm.mode = modeNormal }

// opBracketClose ("]") returns to compile mode, resuming the definition in
// progress.
func opBracketClose(vm *VM) { vm.mode = modeCompile }

// opImmediate marks the most recently defined word as immediate, so the
// outer interpreter executes it instead of compiling a call to it even
// while compiling.
func opImmediate(vm *VM) {
	e := vm.latestAddr()
	if e == 0 {
		vm.haltf("immediate with an empty dictionary")
	}
	vm.setByteAt(e+cellSize, vm.entryFlags(e)|flagImmediate)
}

// opHere and opLatest push the fixed addresses of the here and latest
// cursor cells, not their values; FORTH code reads the actual pointer with
// "here @" / "latest @".
func opHere(vm *VM)   { vm.data.push(vm, Cell(addrHere)) }
func opLatest(vm *VM) { vm.data.push(vm, Cell(addrLatest)) }

// opFetch ("@") and opStore ("!") are the general-purpose arena
// load/store primitives, used both on the here/latest cursor cells and on
// any other address a program computes.
func opFetch(vm *VM) {
	a := Addr(vm.data.pop(vm))
	vm.data.push(vm, vm.cellAt(a))
}

func opStore(vm *VM) {
	a := Addr(vm.data.pop(vm))
	v := vm.data.pop(vm)
	vm.setCellAt(a, v)
}

// opFindWord pops the address of a NUL-terminated name in the arena and
// pushes the dictionary entry address it names, or 0 if there is none.
func opFindWord(vm *VM) {
	a := Addr(vm.data.pop(vm))
	name := vm.readCString(a)
	vm.data.push(vm, Cell(vm.find(name)))
}

// opCodeWord pops a dictionary entry address and pushes its codeword
// address, the address actually compiled into callers' bodies. A null
// entry address (the find-word "not found" result) is a lookup failure,
// fatal the same way the outer interpreter's own lookup failures are.
func opCodeWord(vm *VM) {
	e := Addr(vm.data.pop(vm))
	if e == 0 {
		vm.haltf("code-word: null entry")
	}
	vm.data.push(vm, Cell(vm.entryCodewordAddr(e)))
}

// opWord reads the next whitespace-delimited token from the current input
// stream via the shared tokenizer, copies it into a reserved scratch
// buffer as a NUL-terminated string, and pushes the buffer's address.
// Unlike the outer interpreter's own end of input, which is a clean exit,
// running out of input here is fatal: word is only ever called from inside
// a definition that has no sensible way to keep going without its result.
func opWord(vm *VM) {
	tok, ok := vm.scanToken()
	if !ok {
		vm.haltf("word: end of input")
	}
	if len(tok) > nameBufCap {
		tok = tok[:nameBufCap]
	}
	vm.writeCString(vm.wordBuf, tok)
	vm.data.push(vm, Cell(vm.wordBuf))
}
