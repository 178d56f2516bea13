package main

// Cell is the VM's machine word: every stack slot, dictionary link, and
// literal value is a Cell.
type Cell int64

// Addr is a byte offset into the dictionary arena. It is stored on the
// stacks and in memory as a Cell (there is no separate pointer type at
// runtime), but kept distinct in Go source wherever a value is known to be
// an address rather than an arbitrary number.
type Addr uint32

const (
	cellSize = 8

	// arenaSize is the dictionary's fixed capacity in bytes.
	arenaSize = 65536

	// addrHere and addrLatest are the two reserved cursor cells at the
	// bottom of the arena. here holds the next free byte; latest holds the
	// address of the most recently defined entry (0 before anything has
	// been defined).
	addrHere   Addr = 0
	addrLatest Addr = cellSize

	// dictStart is here's initial value: where the first real dictionary
	// entry begins, past the cursor cells. Arena addresses and primitive
	// ids are never dispatched from the same cells, so no id range needs
	// to be kept clear of addresses (see dispatch.go).
	dictStart Addr = 256

	// nameBufCap is the tokenizer's maximum accumulated token length (plus
	// the implicit NUL), per the boundary behavior of a truncating,
	// fixed-capacity name buffer.
	nameBufCap = 63

	// flagImmediate marks a dictionary entry as executed even while
	// compiling, rather than compiled into the enclosing definition.
	flagImmediate byte = 1 << 0

	// stackCapacity bounds the parameter and return stacks; spec.md calls
	// for "a fixed-capacity array of cells", without naming a size.
	stackCapacity = 1024
)

const addrNull Addr = 0
