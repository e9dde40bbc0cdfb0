package tui

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// TerminalSize returns the current terminal dimensions for fd, falling
// back to the COLUMNS/LINES environment variables and finally to 80x24.
// Modeled on Screen.getTerminalSize (screen.go), generalized to
// golang.org/x/term's cross-platform GetSize so the same call works on
// Windows too.
func TerminalSize(fd int) (width, height int) {
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		return w, h
	}
	if w, h, ok := sizeFromEnv(); ok {
		return w, h
	}
	return 80, 24
}

func sizeFromEnv() (width, height int, ok bool) {
	cols, err1 := strconv.Atoi(os.Getenv("COLUMNS"))
	rows, err2 := strconv.Atoi(os.Getenv("LINES"))
	if err1 != nil || err2 != nil || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return cols, rows, true
}
