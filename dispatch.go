package main

// Primitive ids. Every dictionary entry's codeword cell holds one of these
// (colon definitions always hold idDocol); real dictionary addresses only
// ever appear in body and link cells, which are never dispatched through
// this table directly, so there is no numeric range to reserve against
// arena addresses (see DESIGN.md, "codeword vs. address numeric
// collision").
const (
	idDocol = iota
	idLit
	idBranch
	idZBranch
	idExit
	idTick
	idDefine
	idSemi
	idComma
	idBracketOpen
	idBracketClose
	idImmediate
	idHere
	idLatest
	idFetch
	idStore
	idFindWord
	idCodeWord
	idWord
	idAdd
	idSub
	idMul
	idDivmod
	idEq
	idLt
	idGt
	idLe
	idGe
	idNot
	idAnd
	idOr
	idDup
	idDrop
	idSwap
	idOver
	idEmit
	idKey
	idTell
	idStdin
	idGetInputStream
	idSetInputStream
	idOpenReadFile
	idCloseFile

	numPrimitives
)

var primitiveTable [numPrimitives]func(*VM)
var primitiveNames [numPrimitives]string

// builtin describes one primitive dictionary entry to install at boot.
type builtin struct {
	id        int
	name      string
	fn        func(*VM)
	immediate bool
}

// builtins is installed in order; docol has no dictionary entry (it is
// never referenced by name, only ever stored as a colon word's codeword).
var builtins = []builtin{
	{idLit, "lit", opLit, false},
	{idBranch, "branch", opBranch, false},
	{idZBranch, "0branch", opZBranch, false},
	{idExit, "exit", opExit, false},
	{idTick, "'", opTick, false},
	{idDefine, ":", opDefine, true},
	{idSemi, ";", opSemi, true},
	{idComma, ",", opComma, false},
	{idBracketOpen, "[", opBracketOpen, true},
	{idBracketClose, "]", opBracketClose, false},
	{idImmediate, "immediate", opImmediate, true},
	{idHere, "here", opHere, false},
	{idLatest, "latest", opLatest, false},
	{idFetch, "@", opFetch, false},
	{idStore, "!", opStore, false},
	{idFindWord, "find-word", opFindWord, false},
	{idCodeWord, "code-word", opCodeWord, false},
	{idWord, "word", opWord, false},
	{idAdd, "+", opAdd, false},
	{idSub, "-", opSub, false},
	{idMul, "*", opMul, false},
	{idDivmod, "divmod", opDivmod, false},
	{idEq, "=", opEq, false},
	{idLt, "<", opLt, false},
	{idGt, ">", opGt, false},
	{idLe, "<=", opLe, false},
	{idGe, ">=", opGe, false},
	{idNot, "not", opNot, false},
	{idAnd, "and", opAnd, false},
	{idOr, "or", opOr, false},
	{idDup, "dup", opDup, false},
	{idDrop, "drop", opDrop, false},
	{idSwap, "swap", opSwap, false},
	{idOver, "over", opOver, false},
	{idEmit, "emit", opEmit, false},
	{idKey, "key", opKey, false},
	{idTell, "tell", opTell, false},
	{idStdin, "stdin", opStdin, false},
	{idGetInputStream, "get-input-stream", opGetInputStream, false},
	{idSetInputStream, "set-input-stream", opSetInputStream, false},
	{idOpenReadFile, "open-read-file", opOpenReadFile, false},
	{idCloseFile, "close-file", opCloseFile, false},
}

func init() {
	primitiveNames[idDocol] = "docol"
	primitiveTable[idDocol] = opDocol
	for _, b := range builtins {
		primitiveNames[b.id] = b.name
		primitiveTable[b.id] = b.fn
	}
}

// installPrimitives populates the dictionary with every builtin, in the
// order above, and caches the codeword addresses of the handful the
// compiler and bootstrap loader splice in directly.
func (vm *VM) installPrimitives() {
	var exitEntry, litEntry, branchEntry, zbranchEntry Addr
	for _, b := range builtins {
		flags := byte(0)
		if b.immediate {
			flags = flagImmediate
		}
		e := vm.pushPrimitive(b.name, flags, b.id)
		switch b.id {
		case idExit:
			exitEntry = e
		case idLit:
			litEntry = e
		case idBranch:
			branchEntry = e
		case idZBranch:
			zbranchEntry = e
		}
	}
	vm.wExit = vm.entryCodewordAddr(exitEntry)
	vm.wLit = vm.entryCodewordAddr(litEntry)
	vm.wBranch = vm.entryCodewordAddr(branchEntry)
	vm.wZBranch = vm.entryCodewordAddr(zbranchEntry)
}
