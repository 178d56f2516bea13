package main

import (
	"fmt"
	"io"
)

// vmDumper renders a snapshot of the dictionary and both stacks, used by
// -dump. Unlike the teacher's flat-array dumper, entries here are found by
// walking the link chain rather than scanning a symbol table, since the
// arena carries entry names inline.
type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (d vmDumper) dump() {
	fmt.Fprintf(d.out, "# VM Dump\n")
	fmt.Fprintf(d.out, "  here: %d  latest: %d\n", d.vm.hereAddr(), d.vm.latestAddr())
	d.dumpStack()
	d.dumpDict()
}

func (d vmDumper) dumpStack() {
	fmt.Fprintf(d.out, "  data: %v\n", d.vm.data.snapshot())
	fmt.Fprintf(d.out, "  ret:  %v\n", d.vm.ret.snapshot())
}

func (d vmDumper) dumpDict() {
	fmt.Fprintf(d.out, "  dict:\n")
	for e := d.vm.latestAddr(); e != 0; e = d.vm.entryLink(e) {
		d.dumpEntry(e)
	}
}

func (d vmDumper) dumpEntry(e Addr) {
	name := d.vm.entryName(e)
	flags := d.vm.entryFlags(e)
	code := d.vm.entryCodewordAddr(e)
	id := d.vm.cellAt(code)

	immediate := ""
	if flags&flagImmediate != 0 {
		immediate = " immediate"
	}

	if id == idDocol {
		fmt.Fprintf(d.out, "    @%-6d : %s%s", e, name, immediate)
		d.dumpBody(code + cellSize)
		fmt.Fprintln(d.out)
		return
	}

	fmt.Fprintf(d.out, "    @%-6d : %s%s (primitive %s)\n", e, name, immediate, primitiveNames[id])
}

// dumpBody decodes a colon word's body, one compiled cell at a time,
// printing each cell as the word it calls, the primitive it calls, or (for
// lit/branch/0branch) the opcode plus its inline operand. It stops at exit.
func (d vmDumper) dumpBody(addr Addr) {
	for {
		target := Addr(d.vm.cellAt(addr))
		addr += cellSize

		if target == d.vm.wExit {
			fmt.Fprint(d.out, " exit")
			return
		}

		name, id := d.resolveCodeword(target)
		fmt.Fprintf(d.out, " %s", name)

		switch id {
		case idLit, idTick, idBranch, idZBranch:
			fmt.Fprintf(d.out, "(%d)", d.vm.cellAt(addr))
			addr += cellSize
		}
	}
}

// resolveCodeword identifies a compiled codeword address by finding the
// dictionary entry it belongs to: a primitive, by id, or a colon word, by
// name. Falls back to the bare address if no entry owns it (a stale or
// corrupt reference).
func (d vmDumper) resolveCodeword(target Addr) (string, int) {
	for e := d.vm.latestAddr(); e != 0; e = d.vm.entryLink(e) {
		if d.vm.entryCodewordAddr(e) != target {
			continue
		}
		id := int(d.vm.cellAt(target))
		if id == idDocol {
			return d.vm.entryName(e), idDocol
		}
		return primitiveNames[id], id
	}
	return fmt.Sprintf("@%d", target), -1
}
