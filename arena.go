package main

import "encoding/binary"

// cellAt and setCellAt read/write an 8-byte little-endian cell.
func (vm *VM) cellAt(a Addr) Cell {
	return Cell(binary.LittleEndian.Uint64(vm.mem[a : a+cellSize]))
}

func (vm *VM) setCellAt(a Addr, v Cell) {
	binary.LittleEndian.PutUint64(vm.mem[a:a+cellSize], uint64(v))
}

func (vm *VM) byteAt(a Addr) byte     { return vm.mem[a] }
func (vm *VM) setByteAt(a Addr, b byte) { vm.mem[a] = b }

func (vm *VM) hereAddr() Addr      { return Addr(vm.cellAt(addrHere)) }
func (vm *VM) setHereAddr(a Addr)  { vm.setCellAt(addrHere, Cell(a)) }
func (vm *VM) latestAddr() Addr    { return Addr(vm.cellAt(addrLatest)) }
func (vm *VM) setLatestAddr(a Addr) { vm.setCellAt(addrLatest, Cell(a)) }

// appendByte writes one byte at here, advancing here. Halts on arena
// exhaustion.
func (vm *VM) appendByte(b byte) {
	h := vm.hereAddr()
	if int(h)+1 > len(vm.mem) {
		vm.halt(errArenaFull)
	}
	vm.mem[h] = b
	vm.setHereAddr(h + 1)
}

// appendCell writes one cell at here (which need not be pre-aligned, though
// in practice it always is past the initial header bytes), advancing here
// by a full cell, and returns the address written.
func (vm *VM) appendCell(v Cell) Addr {
	h := vm.hereAddr()
	if int(h)+cellSize > len(vm.mem) {
		vm.halt(errArenaFull)
	}
	vm.setCellAt(h, v)
	vm.setHereAddr(h + cellSize)
	return h
}

// appendName writes name's bytes, a NUL terminator, and pad bytes so that
// here ends up cell-aligned (so the codeword that follows is too).
func (vm *VM) appendName(name string) {
	for i := 0; i < len(name); i++ {
		vm.appendByte(name[i])
	}
	vm.appendByte(0)
	for vm.hereAddr()%cellSize != 0 {
		vm.appendByte(0)
	}
}

// newHeader writes the link and flag/name fields of a new entry at here and
// returns the entry's start address. The caller must still append a
// codeword (and, for colon words, a body) to complete it, and should update
// latest once the entry is fully written.
func (vm *VM) newHeader(name string, flags byte) Addr {
	e := vm.hereAddr()
	vm.appendCell(Cell(vm.latestAddr()))
	vm.appendByte(flags)
	vm.appendName(name)
	return e
}

// entryLink, entryFlags, entryName and entryCodewordAddr read the fields of
// an existing entry at e.
func (vm *VM) entryLink(e Addr) Addr   { return Addr(vm.cellAt(e)) }
func (vm *VM) entryFlags(e Addr) byte  { return vm.byteAt(e + cellSize) }

func (vm *VM) entryName(e Addr) string {
	p := e + cellSize + 1
	start := p
	for vm.byteAt(p) != 0 {
		p++
	}
	return string(vm.mem[start:p])
}

func (vm *VM) entryCodewordAddr(e Addr) Addr {
	p := e + cellSize + 1
	for vm.byteAt(p) != 0 {
		p++
	}
	p++ // skip NUL
	if rem := p % cellSize; rem != 0 {
		p += cellSize - rem
	}
	return p
}

// find scans the dictionary from latest backward for the entry named tok,
// returning 0 if none matches.
func (vm *VM) find(tok string) Addr {
	for e := vm.latestAddr(); e != 0; e = vm.entryLink(e) {
		if vm.entryName(e) == tok {
			return e
		}
	}
	return 0
}

// readCString reads a NUL-terminated string out of the arena at a, used by
// tell/open-read-file/find-word for their name-pointer arguments.
func (vm *VM) readCString(a Addr) string {
	p := a
	for vm.byteAt(p) != 0 {
		p++
	}
	return string(vm.mem[a:p])
}

// writeCString writes s followed by a NUL at a. Used by the word primitive
// to populate its scratch buffer.
func (vm *VM) writeCString(a Addr, s string) {
	p := a
	for i := 0; i < len(s); i++ {
		vm.mem[p] = s[i]
		p++
	}
	vm.mem[p] = 0
}

// pushPrimitive installs a primitive word: a header with no body, whose
// codeword is id itself.
func (vm *VM) pushPrimitive(name string, flags byte, id int) Addr {
	e := vm.newHeader(name, flags)
	vm.appendCell(Cell(id))
	vm.setLatestAddr(e)
	return e
}

// pushColonFromList installs a colon definition whose body calls each of
// entries in turn and then exits — the Go-level equivalent of
// ": name word1 word2 ... ;" for a fixed, known sequence of already-defined
// words.
func (vm *VM) pushColonFromList(name string, flags byte, entries []Addr) Addr {
	e := vm.newHeader(name, flags)
	vm.appendCell(Cell(idDocol))
	for _, ent := range entries {
		vm.appendCell(Cell(vm.entryCodewordAddr(ent)))
	}
	vm.appendCell(Cell(vm.wExit))
	vm.setLatestAddr(e)
	return e
}

// pushColonRaw installs a colon definition from a literal body (e.g. a
// lit/value pair), terminated with exit.
func (vm *VM) pushColonRaw(name string, flags byte, cells []Cell) Addr {
	e := vm.newHeader(name, flags)
	vm.appendCell(Cell(idDocol))
	for _, c := range cells {
		vm.appendCell(c)
	}
	vm.appendCell(Cell(vm.wExit))
	vm.setLatestAddr(e)
	return e
}
