package completion

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// WordFlag carries the word being completed from the launcher to the program
	WordFlag = "tab_completion_word"
	// ColumnsFlag carries the width of the shell's terminal
	ColumnsFlag = "tab_completion_columns"
	// SuppressMarker is the lone line a program prints after a complete listing
	SuppressMarker = "~"
)

// Patterns shared by the fish and PowerShell launchers, which offer flag names as
// candidates instead of the raw listing. Both regex dialects accept them as written.
const (
	// flagLinePattern matches "  --name [default] description"
	flagLinePattern = `^\s*(--\S+) \[.*?\] ?(.*)$`
	// detailsLinePattern matches the first line of a detailed flag description
	detailsLinePattern = `^\s*\S.* '(--[^']+)':`
	// shortcutPattern matches the single shared-prefix line
	shortcutPattern = `^--\S+$`
)

var ErrUnsupportedShell = errors.New("unsupported shell")

// Generator writes the launcher script through which a shell asks a program to list its
// own flags
type Generator interface {
	Generate(programName string) string
}

var shells = []string{"bash", "zsh", "fish", "powershell"}

// SupportedShells returns the shells a launcher can be generated for
func SupportedShells() []string {
	return slices.Clone(shells)
}

func GetGenerator(shell string) (Generator, error) {
	switch shell {
	case "bash":
		return &BashGenerator{}, nil
	case "zsh":
		return &ZshGenerator{}, nil
	case "fish":
		return &FishGenerator{}, nil
	case "powershell":
		return &PowerShellGenerator{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedShell, shell)
	}
}
