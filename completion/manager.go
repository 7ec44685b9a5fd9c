package completion

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/flagcomp/env"
	"mvdan.cc/sh/v3/syntax"
)

var (
	ErrNoScript      = errors.New("no launcher script generated")
	ErrInvalidScript = errors.New("generated launcher script does not parse")
)

// Manager generates, checks and installs the launcher script for one program and shell
type Manager struct {
	Shell       string
	ProgramName string
	Paths       CompletionPaths
	generator   Generator
	script      string
}

// NewManager creates a manager for the launcher of programName in shell
func NewManager(r env.Resolver, shell, programName string) (*Manager, error) {
	generator, err := GetGenerator(shell)
	if err != nil {
		return nil, err
	}

	paths, err := GetCompletionPaths(r, shell)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion paths: %w", err)
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   generator,
	}, nil
}

// Generate creates the launcher script, checking bash scripts with a bash parser and
// normalising their layout
func (m *Manager) Generate() (string, error) {
	script := m.generator.Generate(m.ProgramName)
	if m.Shell == "bash" {
		formatted, err := formatBash(script, m.ProgramName)
		if err != nil {
			return "", err
		}
		script = formatted
	}
	m.script = script

	return script, nil
}

// Script returns the last generated launcher script
func (m *Manager) Script() string {
	return m.script
}

func formatBash(script, name string) (string, error) {
	parser := syntax.NewParser(syntax.KeepComments(true), syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(script), name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}

	var buf bytes.Buffer
	if err := syntax.NewPrinter(syntax.Indent(4)).Print(&buf, file); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}

	return buf.String(), nil
}

// Save writes the last generated script into the shell's completion directory and returns
// the path written
func (m *Manager) Save() (string, error) {
	if m.script == "" {
		return "", ErrNoScript
	}

	dir, err := m.ensureCompletionPath()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, m.fileName())
	if err := os.WriteFile(path, []byte(m.script), 0644); err != nil {
		return "", fmt.Errorf("failed to write completion file: %w", err)
	}

	return path, ensurePermission(path, 0644)
}

// ensureCompletionPath returns the primary directory, or the fallback when the primary
// cannot be created or fixed up
func (m *Manager) ensureCompletionPath() (string, error) {
	perm := os.FileMode(0755)
	err := os.MkdirAll(m.Paths.Primary, perm)
	if err == nil {
		if err = ensurePermission(m.Paths.Primary, perm); err == nil {
			return m.Paths.Primary, nil
		}
	}

	if m.Paths.Fallback != "" {
		if err := os.MkdirAll(m.Paths.Fallback, perm); err != nil {
			return "", fmt.Errorf("failed to create fallback completion directory: %w", err)
		}
		return m.Paths.Fallback, ensurePermission(m.Paths.Fallback, perm)
	}

	return "", fmt.Errorf("failed to create completion directories: %w", err)
}

// fileName follows each shell's lookup convention: zsh autoloads "_<program>", fish and
// PowerShell need an extension, bash-completion looks for the bare program name
func (m *Manager) fileName() string {
	switch m.Shell {
	case "zsh":
		return "_" + m.ProgramName
	case "fish":
		return m.ProgramName + ".fish"
	case "powershell":
		return m.ProgramName + ".ps1"
	default:
		return m.ProgramName
	}
}
