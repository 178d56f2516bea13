package main

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// scanToken reads the next whitespace-delimited token from the current
// input stream, skipping leading whitespace and "# ... \n" line comments.
// Tokens longer than nameBufCap are silently truncated, matching the fixed
// scratch buffer backing the word primitive. It returns ok=false only at
// end of input, never on an empty token.
func (vm *VM) scanToken() (string, bool) {
	for {
		b, err := vm.in.ReadByte()
		if err != nil {
			return "", false
		}
		if b == '#' {
			for {
				b2, err2 := vm.in.ReadByte()
				if err2 != nil {
					return "", false
				}
				if b2 == '\n' {
					break
				}
			}
			continue
		}
		if isSpace(b) {
			continue
		}
		buf := make([]byte, 0, nameBufCap)
		buf = append(buf, b)
		for {
			b2, err2 := vm.in.ReadByte()
			if err2 != nil {
				break
			}
			if isSpace(b2) {
				break
			}
			if len(buf) < nameBufCap {
				buf = append(buf, b2)
			}
		}
		return string(buf), true
	}
}

// parseNumber parses tok as a decimal integer, optionally begun with a '-'
// (no '+', per spec.md §4.2 — a leading '+' makes tok a word, not a
// number). It is not strconv.ParseInt: overflow wraps per Go's defined
// signed-integer arithmetic rather than erroring, matching the arithmetic
// primitives' forgiving treatment of overflow elsewhere in the VM.
func parseNumber(tok string) (Cell, bool) {
	if tok == "" {
		return 0, false
	}
	neg := false
	i := 0
	if tok[0] == '-' {
		neg = true
		i++
		if i == len(tok) {
			return 0, false
		}
	}
	var v Cell
	for ; i < len(tok); i++ {
		if !isDigit(tok[i]) {
			return 0, false
		}
		v = v*10 + Cell(tok[i]-'0')
	}
	if neg {
		v = -v
	}
	return v, true
}
