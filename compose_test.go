package flagcomp

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/napalu/flagcomp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const (
	moduleHeader  = "-* Matching module flags *-"
	packageHeader = "-* Matching package flags *-"
	otherHeader   = "-* Other flags *-"
	hiddenLine    = "~ (Remaining flags hidden) ~"
)

func underline(indent, header string) string {
	return indent + strings.Repeat("-", len(header))
}

func footer(indent, header string) string {
	return indent + strings.Repeat("=", len(header))
}

func greeterSnapshot() types.Snapshot {
	return types.Snapshot{
		{Name: "help", Type: "bool", DefaultValue: "false", CurrentValue: "false", Description: "Show help", DefinedIn: "/lib/flags/help.go"},
		{Name: "height", Type: "int32", DefaultValue: "0", CurrentValue: "0", Description: "Box height", DefinedIn: "/src/demo/demo.go"},
		{Name: "hello", Type: "string", Description: "Greeting", DefinedIn: "/src/demo/greet.go"},
		{Name: "shell", Type: "string", DefaultValue: "sh", CurrentValue: "sh", Description: "Shell to use", DefinedIn: "/lib/exec/run.go"},
		{Name: "host", Type: "string", DefaultValue: "localhost", CurrentValue: "localhost", Description: "Server host", DefinedIn: "/src/demo/demo.go"},
		{Name: "hostname", Type: "string", Description: "Advertised name", DefinedIn: "/src/demo/demo.go"},
		{Name: "store_dir", Type: "string", DefaultValue: "/var/lib", CurrentValue: "/var/lib", Description: "Data directory", DefinedIn: "/src/demo/storage/store.go"},
		{Name: "store_mode", Type: "string", DefaultValue: "rw", CurrentValue: "rw", Description: "Open mode", DefinedIn: "/src/demo/storage/mode.go"},
	}
}

func TestCompletePrefixGroupsByLocation(t *testing.T) {
	e := newTestEngine(t)

	got := e.Complete("--he", greeterSnapshot())
	want := []string{
		"  " + moduleHeader,
		underline("  ", moduleHeader),
		"  --height [0] Box height",
		footer("  ", moduleHeader),
		" " + packageHeader,
		underline(" ", packageHeader),
		" --hello [''] Greeting",
		footer(" ", packageHeader),
		otherHeader,
		underline("", otherHeader),
		"--help [false] Show help",
	}
	if diff := cmp.Diff(want, got.Lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, got.Shortcut)
	assert.True(t, got.SuppressAutoUpdate)
}

func TestCompleteQuestionMarkMatchesInsideNames(t *testing.T) {
	e := newTestEngine(t)

	got := e.Complete("hel?", greeterSnapshot())
	assert.False(t, got.Shortcut)
	assert.Contains(t, got.Lines, "--shell ['sh'] Shell to use")
	assert.Contains(t, got.Lines, " --hello [''] Greeting")
	assert.Contains(t, got.Lines, "--help [false] Show help")
	assert.True(t, got.SuppressAutoUpdate)

	withoutMarker := e.Complete("hel", greeterSnapshot())
	for _, line := range withoutMarker.Lines {
		assert.NotContains(t, line, "--shell")
	}
}

func TestCompletePlusListsBeyondLineBudget(t *testing.T) {
	var snap types.Snapshot
	for i := 0; i < 150; i++ {
		snap = append(snap, types.Flag{Name: fmt.Sprintf("x%03d", i), Type: "bool", DefaultValue: "false", DefinedIn: "/lib/x.go"})
	}
	e := newTestEngine(t)

	all := e.Complete("x+", snap)
	require.Len(t, all.Lines, 152)
	assert.Equal(t, otherHeader, all.Lines[0])
	assert.Equal(t, "--x149 [false] ", all.Lines[151])
	assert.NotContains(t, all.Lines, hiddenLine)
	assert.True(t, all.SuppressAutoUpdate)

	capped := e.Complete("x", snap)
	require.Len(t, capped.Lines, 99)
	assert.Equal(t, "--x095 [false] ", capped.Lines[97])
	assert.Equal(t, hiddenLine, capped.Lines[98])
	assert.False(t, capped.SuppressAutoUpdate)
}

func TestCompleteExactNameShowsDetails(t *testing.T) {
	e := newTestEngine(t)

	got := e.Complete("host", greeterSnapshot())
	require.Len(t, got.Lines, 6)

	long := fmt.Sprintf("%-80s%-80s%-80s%-80s%s",
		"  Details for '--host':",
		"    --host (Server host)",
		"    type: string",
		`    default: "localhost"`,
		"    defined: /src/demo/demo.go")
	assert.Equal(t, long, got.Lines[0])
	assert.Equal(t, " "+perfectMatchFooter, got.Lines[1])
	assert.Equal(t, []string{
		moduleHeader,
		underline("", moduleHeader),
		"--hostname [''] Advertised name",
		footer("", moduleHeader),
	}, got.Lines[2:])
	assert.True(t, got.SuppressAutoUpdate)
}

func TestCompleteSubpackageGroup(t *testing.T) {
	e := newTestEngine(t)

	got := e.Complete("store_", greeterSnapshot())
	assert.Equal(t, []string{
		"-* Matching sub-package flags *-",
		underline("", "-* Matching sub-package flags *-"),
		"--store_dir ['/var/lib'] Data directory",
		"--store_mode ['rw'] Open mode",
		footer("", "-* Matching sub-package flags *-"),
	}, got.Lines)
}

func TestCompleteShortcut(t *testing.T) {
	snap := types.Snapshot{{Name: "verbose"}, {Name: "verbosity"}}
	e := newTestEngine(t)

	got := e.Complete("--ver", snap)
	assert.True(t, got.Shortcut)
	assert.Equal(t, []string{"--verbos"}, got.Lines)
	assert.False(t, got.SuppressAutoUpdate)

	// a single match completes to the whole name
	got = e.Complete("verbosi", snap)
	assert.True(t, got.Shortcut)
	assert.Equal(t, []string{"--verbosity"}, got.Lines)
}

func TestCompleteEmptyResults(t *testing.T) {
	e := newTestEngine(t)

	assert.Empty(t, e.Complete("", greeterSnapshot()).Lines)
	assert.Empty(t, e.Complete("zzz", greeterSnapshot()).Lines)
	assert.Empty(t, e.Complete("he", nil).Lines)
}

func TestCompleteHidesGroupWithoutRoomForHeader(t *testing.T) {
	snap := types.Snapshot{
		{Name: "port_a", Type: "int", DefaultValue: "1", DefinedIn: "/src/demo/demo.go"},
		{Name: "port_b", Type: "int", DefaultValue: "2", DefinedIn: "/src/demo/b.go"},
	}
	e := newTestEngine(t, WithLineBudget(5))

	got := e.Complete("port_", snap)
	assert.Equal(t, []string{
		" " + moduleHeader,
		underline(" ", moduleHeader),
		" --port_a [1] ",
		footer(" ", moduleHeader),
		hiddenLine,
	}, got.Lines)
	assert.False(t, got.SuppressAutoUpdate)
}

func TestCompletePerfectMatchIgnoresBudget(t *testing.T) {
	snap := types.Snapshot{
		{Name: "port", Type: "int", DefaultValue: "1", CurrentValue: "1", DefinedIn: "/src/demo/demo.go"},
		{Name: "port_x", Type: "int", DefaultValue: "2", DefinedIn: "/src/demo/demo.go"},
	}
	e := newTestEngine(t, WithLineBudget(1))

	got := e.Complete("port", snap)
	require.Len(t, got.Lines, 2)
	assert.True(t, strings.HasPrefix(got.Lines[0], " Details for '--port':"))
	assert.Equal(t, hiddenLine, got.Lines[1])
}

func TestCompleteTranslatesHeaders(t *testing.T) {
	e := newTestEngine(t, WithLanguage(language.German))

	got := e.Complete("he", greeterSnapshot())
	assert.Equal(t, "  -* Passende Modul-Flags *-", got.Lines[0])
	assert.Equal(t, underline("  ", "-* Passende Modul-Flags *-"), got.Lines[1])
}

var flagLine = regexp.MustCompile(`^\s*--(\S+) \[`)

func TestCompleteListsOnlyMatchingFlags(t *testing.T) {
	snap := greeterSnapshot()
	e := newTestEngine(t)

	for _, word := range []string{"h", "ho", "s?", "demo??", "directory???", "e???+"} {
		token, mods := canonicalize(word)
		got := e.Complete(word, snap)
		if got.Shortcut {
			continue
		}
		for _, line := range got.Lines {
			m := flagLine.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			f, ok := snap.Lookup(m[1])
			require.True(t, ok, line)
			assert.True(t, flagMatches(f, mods, token), "%s listed for %q", f.Name, word)
		}
	}
}

func TestCompleteIsDeterministic(t *testing.T) {
	e := newTestEngine(t)
	for _, word := range []string{"h", "host", "s??", "x+"} {
		first := e.Complete(word, greeterSnapshot())
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, e.Complete(word, greeterSnapshot()), word)
		}
	}
}

func TestCompleteRespectsLineBudget(t *testing.T) {
	var snap types.Snapshot
	for i := 0; i < 40; i++ {
		dir := []string{"/src/demo/demo.go", "/src/demo/more.go", "/src/demo/sub/s.go", "/lib/l.go"}[i%4]
		snap = append(snap, types.Flag{Name: fmt.Sprintf("opt%02d", i), Type: "int", DefaultValue: "0", DefinedIn: dir})
	}

	for _, budget := range []int{1, 2, 5, 10, 20, 50} {
		e := newTestEngine(t, WithLineBudget(budget))
		got := e.Complete("opt", snap)

		listed, hidden := 0, 0
		for _, line := range got.Lines {
			if flagLine.MatchString(line) {
				listed++
			}
			if line == hiddenLine {
				hidden++
			}
		}
		assert.LessOrEqual(t, listed, budget)
		if listed < len(snap) {
			assert.Equal(t, 1, hidden, "budget %d", budget)
			assert.False(t, got.SuppressAutoUpdate)
		} else {
			assert.Zero(t, hidden)
			assert.True(t, got.SuppressAutoUpdate)
		}
	}
}

func TestDisplayGroupSize(t *testing.T) {
	one := []types.Flag{{Name: "a"}}
	assert.Equal(t, 2, displayGroup{flags: one}.sizeInLines())
	assert.Equal(t, 3, displayGroup{footer: perfectMatchFooter, flags: one}.sizeInLines())
	assert.Equal(t, 3, displayGroup{header: otherHeader, flags: one}.sizeInLines())
	assert.Equal(t, 4, displayGroup{header: moduleHeader, footer: "=", flags: one}.sizeInLines())
}
