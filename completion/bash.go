package completion

import (
	"fmt"
)

// BashGenerator registers a completion function for words starting with a dash. The lone
// "~" a program prints after a complete listing is kept: it shares no prefix with the
// other lines, so bash shows the listing instead of inserting a common prefix. Lines are
// read with mapfile so headers like "-* Other flags *-" never go through pathname
// expansion.
type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string) string {
	return fmt.Sprintf(`#!/bin/bash
# bash completion for %[1]s

%[2]s() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    if [[ "${cur}" != -* ]]; then
        return 0
    fi

    local columns="${COLUMNS:-80}"
    mapfile -t COMPREPLY < <("${COMP_WORDS[0]}" --%[3]s="${columns}" --%[4]s="${cur}" 2>/dev/null)
    return 0
}

complete -o default -o nospace -F %[2]s %[5]s
`, programName, functionName(programName), ColumnsFlag, WordFlag, quotePOSIX(programName))
}
