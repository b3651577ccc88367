package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"saneld/internal/linker"
)

const (
	exitFailure    = 1
	exitCannotExec = 126
	exitNotFound   = 127
)

var errorLabel = color.New(color.FgRed, color.Bold)

// exitCode maps the result of a run to a process status. A linker that ran
// is relayed silently; anything else gets a one-line diagnostic on stderr.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *linker.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	code := exitFailure
	var spawnErr *linker.SpawnError
	if errors.As(err, &spawnErr) {
		code = exitCannotExec
		if spawnErr.NotFound() {
			code = exitNotFound
		}
	}
	useColor := false
	if f, ok := stderr.(*os.File); ok {
		useColor = isTerminal(f)
	}
	if useColor {
		errorLabel.EnableColor()
	} else {
		errorLabel.DisableColor()
	}
	_, _ = fmt.Fprintf(stderr, "sane-ld: %s %v\n", errorLabel.Sprint("error:"), err)
	return code
}
