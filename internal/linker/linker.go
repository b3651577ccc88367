// Package linker runs the real wasm-ld on behalf of the shim.
package linker

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// DefaultName is the linker binary, resolved through PATH.
const DefaultName = "wasm-ld"

// execCommand is replaced in tests.
var execCommand = exec.Command

// Linker describes how to invoke the linker process.
// Zero-valued streams fall back to the process's own.
type Linker struct {
	Name   string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Linker for wasm-ld bound to the process's standard streams.
func New() *Linker {
	return &Linker{
		Name:   DefaultName,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// SpawnError reports that the linker could not be started at all.
type SpawnError struct {
	Linker string
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Linker, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// NotFound reports whether the binary was missing from PATH.
func (e *SpawnError) NotFound() bool {
	return errors.Is(e.Err, exec.ErrNotFound) || errors.Is(e.Err, os.ErrNotExist)
}

// ExitError carries the status of a linker that ran and failed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("linker exited with status %d", e.Code)
}

// Run starts the linker with args, waits for it and returns nil when it
// exits cleanly, *ExitError when it exits nonzero or is killed, and
// *SpawnError when it never started.
func (l *Linker) Run(args []string) error {
	name := l.Name
	if name == "" {
		name = DefaultName
	}
	cmd := execCommand(name, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if l.Stdin != nil {
		cmd.Stdin = l.Stdin
	}
	if l.Stdout != nil {
		cmd.Stdout = l.Stdout
	}
	if l.Stderr != nil {
		cmd.Stderr = l.Stderr
	}

	if err := cmd.Start(); err != nil {
		return &SpawnError{Linker: name, Err: err}
	}
	err := cmd.Wait()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitStatus(exitErr.ProcessState)}
	}
	return fmt.Errorf("waiting for %s: %w", name, err)
}
