package main

import (
	"os"

	"golang.org/x/term"

	"saneld/internal/linker"
)

// main forwards clang's link line to wasm-ld and exits with its status.
func main() {
	cmd := newRootCmd(linkWith(linker.New()))
	cmd.SetArgs(os.Args[1:])
	os.Exit(exitCode(cmd.Execute(), os.Stderr))
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
