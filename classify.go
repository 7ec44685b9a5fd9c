package flagcomp

import (
	"strings"

	"github.com/napalu/flagcomp/types"
	"github.com/samber/lo"
)

// categorizeAllMatchingFlags places each match in its most relevant bucket. Flags that fit
// none of them are left for the "other" group.
func categorizeAllMatchingFlags(matches []types.Flag, token, module, packageDir string) relevanceBuckets {
	var b relevanceBuckets
	for _, f := range matches {
		pos := -1
		if packageDir != "" {
			pos = strings.Index(f.DefinedIn, packageDir)
		}
		inPackage := pos >= 0
		nested := inPackage && hasSlashFrom(f.DefinedIn, pos+len(packageDir)+1)

		switch {
		case f.Name == token:
			b.perfectMatch = append(b.perfectMatch, f)
		case module != "" && f.DefinedIn == module:
			b.module = append(b.module, f)
		case inPackage && !nested:
			b.pkg = append(b.pkg, f)
		case inPackage && nested:
			b.subpackage = append(b.subpackage, f)
		}
	}

	return b
}

// hasSlashFrom reports whether s has a '/' at or after start; a start past the end of s
// never matches
func hasSlashFrom(s string, start int) bool {
	if start > len(s) {
		return false
	}

	return strings.IndexByte(s[start:], '/') >= 0
}

// unplaced returns the matches that ended up in no bucket, in match order
func (b relevanceBuckets) unplaced(matches []types.Flag) []types.Flag {
	placed := lo.SliceToMap(
		lo.Flatten([][]types.Flag{b.perfectMatch, b.module, b.pkg, b.mostCommon, b.subpackage}),
		func(f types.Flag) (string, struct{}) { return f.Name, struct{}{} })

	return lo.Filter(matches, func(f types.Flag, _ int) bool {
		_, ok := placed[f.Name]
		return !ok
	})
}
