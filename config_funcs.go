package flagcomp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/napalu/flagcomp/config"
	"github.com/napalu/flagcomp/i18n"
	"github.com/napalu/flagcomp/util"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// New creates an Engine using option functions. The caller should always test for error
// on return because Engine will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	engine, err := flagcomp.New(
//		flagcomp.WithColumns(120),
//		flagcomp.WithProgramName("server"),
//		flagcomp.WithLogger(logger))
func New(configs ...ConfigureEngineFunc) (*Engine, error) {
	e := &Engine{
		columns:     DefaultColumns,
		lineBudget:  DefaultLineBudget,
		programName: filepath.Base(os.Args[0]),
		describer:   DefaultDescriber{},
		logger:      zap.NewNop(),
		bundle:      i18n.Default(),
		lang:        language.English,
	}

	var err error
	for _, configure := range configs {
		configure(e, &err)
		if err != nil {
			return nil, err
		}
	}

	return e, nil
}

// WithColumns sets the output width used to truncate short lines and to lay out the
// detailed description of a perfect match
func WithColumns(columns int) ConfigureEngineFunc {
	return func(e *Engine, err *error) {
		if columns <= 0 {
			*err = fmt.Errorf("%w: %d", ErrInvalidColumns, columns)
			return
		}
		e.columns = columns
	}
}

// WithTerminalWidth uses the width of the terminal attached to f, keeping the current
// width when f is not a terminal
func WithTerminalWidth(t util.Terminal, f *os.File) ConfigureEngineFunc {
	return func(e *Engine, err *error) {
		e.columns = util.TerminalColumns(t, f, e.columns)
	}
}

// WithLineBudget caps the number of lines listed unless the user asks for all matches
func WithLineBudget(lines int) ConfigureEngineFunc {
	return func(e *Engine, err *error) {
		if lines <= 0 {
			*err = fmt.Errorf("%w: %d", ErrInvalidLineBudget, lines)
			return
		}
		e.lineBudget = lines
	}
}

// WithProgramName sets the short program name used to work out which source file is the
// binary's main file. Only the base name is kept.
func WithProgramName(name string) ConfigureEngineFunc {
	return func(e *Engine, err *error) {
		e.programName = filepath.Base(name)
	}
}

func WithDescriber(d Describer) ConfigureEngineFunc {
	return func(e *Engine, err *error) {
		if d == nil {
			*err = ErrNilDescriber
			return
		}
		e.describer = d
	}
}

// WithLogger sets the logger used for debug tracing. Nothing is logged above debug level.
func WithLogger(logger *zap.Logger) ConfigureEngineFunc {
	return func(e *Engine, err *error) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLanguage selects the language of group headers and messages
func WithLanguage(lang language.Tag) ConfigureEngineFunc {
	return func(e *Engine, err *error) {
		e.lang = lang
	}
}

// WithBundle replaces the embedded translations
func WithBundle(bundle *i18n.Bundle) ConfigureEngineFunc {
	return func(e *Engine, err *error) {
		if bundle == nil {
			*err = ErrNilBundle
			return
		}
		e.bundle = bundle
	}
}

// WithConfig applies the non-zero settings of cfg
func WithConfig(cfg *config.Config) ConfigureEngineFunc {
	return func(e *Engine, err *error) {
		if cfg == nil {
			return
		}
		if *err = cfg.Validate(); *err != nil {
			return
		}
		if cfg.Columns > 0 {
			e.columns = cfg.Columns
		}
		if cfg.LineBudget > 0 {
			e.lineBudget = cfg.LineBudget
		}
		if cfg.Language != "" {
			e.lang = cfg.Tag()
		}
	}
}
