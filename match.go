package flagcomp

import (
	"strings"

	"github.com/napalu/flagcomp/types"
	"github.com/samber/lo"
)

// flagMatches tries the cheapest predicate first
func flagMatches(f types.Flag, mods searchModifiers, token string) bool {
	switch {
	case strings.HasPrefix(f.Name, token):
		return true
	case mods.nameSubstring && strings.Contains(f.Name, token):
		return true
	case mods.locationSubstring && strings.Contains(f.DefinedIn, token):
		return true
	case mods.descriptionSubstring && strings.Contains(f.Description, token):
		return true
	}

	return false
}

// findMatchingFlags returns the matching flags in snapshot order together with the
// longest prefix shared by all of their names
func findMatchingFlags(all types.Snapshot, mods searchModifiers, token string) ([]types.Flag, string) {
	matches := lo.UniqBy(lo.Filter(all, func(f types.Flag, _ int) bool {
		return flagMatches(f, mods, token)
	}), func(f types.Flag) string {
		return f.Name
	})

	if len(matches) == 0 {
		return matches, ""
	}

	prefix := matches[0].Name
	for _, f := range matches[1:] {
		if prefix == "" {
			break
		}
		prefix = commonPrefix(prefix, f.Name)
	}

	return matches, prefix
}

// commonPrefix compares bytes, so a prefix may end inside a multi-byte rune
func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}

	return a[:n]
}
