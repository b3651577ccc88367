//go:build unix

package linker

import (
	"os"
	"syscall"
)

// exitStatus follows the shell convention of 128+signo for killed children.
func exitStatus(ps *os.ProcessState) int {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return ps.ExitCode()
}
