package flagcomp

import (
	"errors"

	"github.com/napalu/flagcomp/completion"
	"github.com/napalu/flagcomp/types"
)

const (
	// DefaultColumns is the output width used when none is configured
	DefaultColumns = 80
	// DefaultLineBudget is the number of lines a shell shows without asking the user first
	DefaultLineBudget = 98
	// unboundedLineBudget applies when the user asked for every match with a trailing '+'
	unboundedLineBudget = 999999

	// suppressUpdateMarker is written last when every match was listed, so that the shell
	// does not collapse the listing to the matches' common prefix
	suppressUpdateMarker = completion.SuppressMarker
	perfectMatchFooter   = "=========="
	longFieldIndent      = "\n    "
	doubledNewlines      = "\n     \n"
	truncationTail       = "..."
)

var (
	ErrInvalidColumns    = errors.New("column width must be positive")
	ErrInvalidLineBudget = errors.New("line budget must be positive")
	ErrNilDescriber      = errors.New("describer must not be nil")
	ErrNilBundle         = errors.New("bundle must not be nil")
)

// Describer produces the detailed, multi-line description of a single flag that is shown
// for a perfect match. The text must contain "-<name>", " type:" and " default:"; the
// long format inserts line breaks in front of the latter two.
type Describer interface {
	Describe(f types.Flag) string
}

// DescriberFunc adapts a plain function to the Describer interface
type DescriberFunc func(f types.Flag) string

func (fn DescriberFunc) Describe(f types.Flag) string {
	return fn(f)
}

// ConfigureEngineFunc is used when configuring an Engine
type ConfigureEngineFunc func(e *Engine, err *error)

// searchModifiers are derived from the markers trailing the completion word. Only the
// composer changes suppressAutoUpdate, once it knows whether every match was listed.
type searchModifiers struct {
	nameSubstring        bool
	locationSubstring    bool
	descriptionSubstring bool
	returnAll            bool
	suppressAutoUpdate   bool
}

// relevanceBuckets partition the matching flags, highest priority first. A flag lands in
// at most one bucket; flags in none of them are "other" flags.
type relevanceBuckets struct {
	perfectMatch []types.Flag
	module       []types.Flag // defined in the binary's main file
	pkg          []types.Flag // defined next to the main file
	mostCommon   []types.Flag // no source populates this yet
	subpackage   []types.Flag // defined below the main file's directory
}

type displayGroup struct {
	header string
	footer string
	flags  []types.Flag
}

// sizeInLines counts one line per flag, one spare, and the header and footer if any
func (g displayGroup) sizeInLines() int {
	size := len(g.flags) + 1
	if g.header != "" {
		size++
	}
	if g.footer != "" {
		size++
	}

	return size
}
