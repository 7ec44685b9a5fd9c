package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverSnapshot = `
[[flag]]
name = "port"
type = "int32"
default = "8080"
description = "Port to listen on"
defined_in = "/src/server/server.go"

[[flag]]
name = "port_range"
type = "string"
default = "8000-9000"
description = "Ports tried when port is taken"
defined_in = "/src/server/server.go"

[[flag]]
name = "log_dir"
type = "string"
default = "/var/log"
description = "Where logs go"
defined_in = "/lib/log/log.go"
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, name := range []string{"FLAGCOMP_CONFIG", "FLAGCOMP_COLUMNS", "FLAGCOMP_LINE_BUDGET", "FLAGCOMP_LANG", "FLAGCOMP_DEBUG"} {
		t.Setenv(name, "")
	}
	color.NoColor = true

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(serverSnapshot), 0644))

	out, err := run(t, "query", "port", "--snapshot", path, "--program", "server", "--columns", "80")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "  Details for '--port':"), lines[0])
	assert.Equal(t, " ==========", lines[1])
	assert.Equal(t, "-* Matching module flags *-", lines[2])
	assert.Equal(t, "--port_range ['8000-9000'] Ports tried when port is taken", lines[4])
	assert.Equal(t, "~", lines[6])
}

func TestQueryShortcut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(serverSnapshot), 0644))

	out, err := run(t, "query", "--snapshot", path, "--columns", "80", "--", "--lo")
	require.NoError(t, err)
	assert.Equal(t, "--log_dir", out)
}

func TestQueryFlagsDoNotCarryOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(serverSnapshot), 0644))

	withProgram, err := run(t, "query", "port", "--snapshot", path, "--program", "server", "--columns", "40")
	require.NoError(t, err)
	assert.Contains(t, withProgram, "-* Matching module flags *-")

	withoutProgram, err := run(t, "query", "port", "--snapshot", path)
	require.NoError(t, err)
	assert.NotContains(t, withoutProgram, "-* Matching module flags *-")
	assert.Contains(t, withoutProgram, "-* Other flags *-")
	assert.Contains(t, withoutProgram, "--port_range ['8000-9000'] Ports tried when port is taken\n")
}

func TestQueryMissingSnapshot(t *testing.T) {
	_, err := run(t, "query", "port", "--snapshot", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to open snapshot")
}

func TestScript(t *testing.T) {
	out, err := run(t, "script", "mytool", "--shell", "zsh")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#compdef mytool\n"))

	_, err = run(t, "script", "mytool", "--shell", "tcsh")
	assert.ErrorContains(t, err, "unsupported shell")
}

func TestInstall(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "install", "mytool", "--shell", "fish", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "fish launcher for mytool written to "+filepath.Join(dir, "mytool.fish"))

	content, err := os.ReadFile(filepath.Join(dir, "mytool.fish"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "complete -c 'mytool' -f")
}
