// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package flagcomp lists the command-line flags matching a partially typed word, for
// display by an interactive shell when the user presses TAB.
//
// Flags are grouped by how close their definition is to the program's main file:
//
//	perfect match - the flag named exactly like the word, shown in detail
//	module        - flags defined in the main file itself
//	package       - flags defined next to the main file
//	sub-package   - flags defined below the main file's directory
//	other         - everything else
//
// The word may carry search markers. Each trailing '?' (up to three) widens the search to
// name substrings, then defining paths, then descriptions; a trailing '+' lists every match
// instead of stopping at about a screenful.
package flagcomp

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/napalu/flagcomp/completion"
	"github.com/napalu/flagcomp/env"
	"github.com/napalu/flagcomp/i18n"
	"github.com/napalu/flagcomp/parse"
	"github.com/napalu/flagcomp/registry"
	"github.com/napalu/flagcomp/types"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	// CompletionWordFlag names the flag through which the shell passes the word to complete
	CompletionWordFlag = completion.WordFlag
	// CompletionColumnsFlag names the flag through which the shell passes its width
	CompletionColumnsFlag = completion.ColumnsFlag
)

// Engine computes completion listings. An Engine holds no per-request state and may be
// shared between goroutines.
type Engine struct {
	columns     int
	lineBudget  int
	programName string
	describer   Describer
	logger      *zap.Logger
	bundle      *i18n.Bundle
	lang        language.Tag
}

// Result is the outcome of a single completion request
type Result struct {
	// Lines to display, in order
	Lines []string
	// Shortcut is set when the matches share a prefix longer than the word; Lines then
	// holds exactly "--<prefix>" so the shell extends the word in place
	Shortcut bool
	// SuppressAutoUpdate is set when every match was listed. The shell must then show the
	// listing rather than replace the word with the matches' common prefix.
	SuppressAutoUpdate bool
}

// WriteTo writes the result in the form expected by the completion scripts: a shortcut
// without a trailing newline, otherwise one line per entry followed by a lone "~" when
// automatic updating must be suppressed
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	if r.Shortcut {
		for _, line := range r.Lines {
			sb.WriteString(line)
		}
	} else {
		for _, line := range r.Lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		if r.SuppressAutoUpdate {
			sb.WriteString(suppressUpdateMarker)
			sb.WriteByte('\n')
		}
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Complete lists the flags of snap matching cursorWord. It never fails: an empty word, or
// a word nothing matches, yields an empty Result.
func (e *Engine) Complete(cursorWord string, snap types.Snapshot) *Result {
	token, mods := canonicalize(cursorWord)
	e.logger.Debug("canonicalized completion word",
		zap.String("word", cursorWord),
		zap.String("token", token),
		zap.Bool("name_substring", mods.nameSubstring),
		zap.Bool("location_substring", mods.locationSubstring),
		zap.Bool("description_substring", mods.descriptionSubstring),
		zap.Bool("return_all", mods.returnAll))
	if cursorWord == "" {
		return &Result{}
	}

	matches, prefix := findMatchingFlags(snap, mods, token)
	e.logger.Debug("matched flags",
		zap.Int("flags", len(snap)),
		zap.Int("matches", len(matches)),
		zap.String("common_prefix", prefix))
	if len(matches) == 0 {
		return &Result{}
	}

	if len(prefix) > len(token) {
		return &Result{Lines: []string{"--" + prefix}, Shortcut: true}
	}

	module, packageDir := findModuleAndPackageDir(snap, e.programName)
	buckets := categorizeAllMatchingFlags(matches, token, module, packageDir)
	e.logger.Debug("categorized matches",
		zap.String("module", module),
		zap.String("package_dir", packageDir),
		zap.Int("perfect", len(buckets.perfectMatch)),
		zap.Int("module_flags", len(buckets.module)),
		zap.Int("package_flags", len(buckets.pkg)),
		zap.Int("subpackage_flags", len(buckets.subpackage)))

	lines := e.finalizeCompletionOutput(matches, buckets, &mods)

	return &Result{Lines: lines, SuppressAutoUpdate: mods.suppressAutoUpdate}
}

// Columns returns the width completion lines are laid out for
func (e *Engine) Columns() int {
	return e.columns
}

func (e *Engine) translate(key string) string {
	return e.bundle.TL(e.lang, key)
}

// CompletionFlags holds the values of the flags a program registers so that the shell can
// ask it for completions
type CompletionFlags struct {
	Word    *string
	Columns *int32
}

// RegisterFlags defines --tab_completion_word and --tab_completion_columns on reg
func RegisterFlags(reg *registry.Registry) *CompletionFlags {
	bundle := i18n.Default()
	return &CompletionFlags{
		Word:    reg.String(CompletionWordFlag, "", bundle.T(types.FlagCompletionWordKey)),
		Columns: reg.Int32(CompletionColumnsFlag, DefaultColumns, bundle.T(types.FlagCompletionColumnsKey)),
	}
}

// HandleCompletions prints the completions for the word passed with --tab_completion_word
// and exits the program. It returns without doing anything when no completion was
// requested, so it can be called unconditionally right after parsing the command line.
//
// Shells that run the program as a completer command (bash "complete -C") do not pass any
// flag; the word is then taken from COMP_LINE and COMP_POINT. Call it before reporting
// parse errors, since the words being completed are usually not valid flags yet.
func HandleCompletions(reg *registry.Registry, flags *CompletionFlags, configs ...ConfigureEngineFunc) {
	if handleCompletions(os.Stdout, os.Stderr, &env.DefaultEnvResolver{}, os.Args, reg, flags, configs...) {
		os.Exit(0)
	}
}

func handleCompletions(out, errOut io.Writer, resolver env.Resolver, args []string, reg *registry.Registry, flags *CompletionFlags, configs ...ConfigureEngineFunc) bool {
	word := ""
	if flags != nil && flags.Word != nil {
		word = *flags.Word
	}

	if word == "" {
		var ok bool
		if word, ok = completerWord(resolver, args); !ok {
			return false
		}
	}

	columns := DefaultColumns
	if flags != nil && flags.Columns != nil && *flags.Columns > 0 {
		columns = int(*flags.Columns)
	}

	engine, err := New(append([]ConfigureEngineFunc{WithColumns(columns)}, configs...)...)
	if err != nil {
		fmt.Fprintf(errOut, "flag completion: %v\n", err)
		return true
	}

	if _, err = engine.Complete(word, reg.Snapshot()).WriteTo(out); err != nil {
		engine.logger.Debug("failed to write completions", zap.Error(err))
	}

	return true
}

// completerWord returns the word under the cursor when the process was started by bash
// "complete -C". Bash then exports COMP_LINE and COMP_TYPE and passes the command name,
// the current word and the previous word as arguments. Both are checked, since child
// processes of any completer inherit the COMP_* variables.
func completerWord(resolver env.Resolver, args []string) (string, bool) {
	line, ok := resolver.Lookup("COMP_LINE")
	if !ok {
		return "", false
	}
	if _, ok := resolver.Lookup("COMP_TYPE"); !ok {
		return "", false
	}
	if len(args) != 4 || args[1] == "" || !strings.HasPrefix(strings.TrimLeft(line, " \t"), args[1]) {
		return "", false
	}

	point, err := strconv.Atoi(resolver.Get("COMP_POINT"))
	if err != nil {
		point = len(line)
	}

	return parse.CursorWord(line, point), true
}
