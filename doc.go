/* Package main implements a small, self-hosting, stack-based language in
the FORTH tradition.

The core is deliberately tiny: a fixed-size byte arena holds the
dictionary, every dictionary entry is a link cell, a flag byte, a
null-terminated name, a codeword, and (for colon definitions) a body of
cells; a parameter stack and a return stack of identical shape; and an
inner interpreter built from two registers, current and next, running
docol/exit threaded code. Primitives are rich enough to cover arithmetic,
comparisons, stack shuffling, memory access, and dictionary construction
directly in Go — but control structures (if/then/else/begin/until/while/
repeat), block comments, and the tick operator are bootstrapped from a
startup script written in the language itself, in startup.f.

At boot, the VM redirects its input to that startup script; the script's
last act is to switch input back to stdin and close its own stream, handing
control to the user. Errors are fatal: any violated invariant halts the
machine, surfaced as an error from Run.

By convention the dictionary's first two cells are reserved as cursors:
address 0 holds here (the dictionary's append pointer) and address 8 holds
latest (the most recently defined entry); addresses below the first real
dictionary entry are otherwise unused. here and latest, as primitives, push
the address of these cursor cells rather than their value, so @ and ! can
read and update them like any other memory location.
*/
package main
