package flagcomp

import (
	"strings"

	"github.com/napalu/flagcomp/types"
)

// mainFileSuffixes are appended to "/<program>" to recognise the file holding main
var mainFileSuffixes = []string{".", "-main.", "_main.", "-test.", "_test.", "-unittest.", "_unittest."}

// findModuleAndPackageDir guesses the binary's main file from the defining paths. The
// first flag, in snapshot order, whose path matches any pattern wins.
func findModuleAndPackageDir(all types.Snapshot, programName string) (module, packageDir string) {
	patterns := make([]string, len(mainFileSuffixes))
	for i, suffix := range mainFileSuffixes {
		patterns[i] = "/" + programName + suffix
	}

	for _, f := range all {
		for _, pattern := range patterns {
			if !strings.Contains(f.DefinedIn, pattern) {
				continue
			}
			module = f.DefinedIn
			if sep := strings.LastIndexByte(module, '/'); sep >= 0 {
				packageDir = module[:sep]
			}
			return module, packageDir
		}
	}

	return "", ""
}
