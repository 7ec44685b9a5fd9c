package util

import (
	"os"

	"golang.org/x/term"
)

// DefaultColumns is used whenever the width of the output device cannot be determined
const DefaultColumns = 80

// Terminal abstracts the terminal queries we need so they can be replaced in tests
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

type systemTerminal struct{}

func (systemTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (systemTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// SystemTerminal is backed by golang.org/x/term
var SystemTerminal Terminal = systemTerminal{}

// TerminalColumns returns the width of the terminal attached to f, or fallback when f is
// not a terminal or its size cannot be read. Completion output itself is captured by the
// shell, so callers usually pass os.Stderr.
func TerminalColumns(t Terminal, f *os.File, fallback int) int {
	if f == nil {
		return fallback
	}

	fd := int(f.Fd())
	if !t.IsTerminal(fd) {
		return fallback
	}

	width, _, err := t.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}
