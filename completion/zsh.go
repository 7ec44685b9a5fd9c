package completion

import (
	"fmt"
)

// ZshGenerator completes a single returned line in place and shows a listing as a message
type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string) string {
	return fmt.Sprintf(`#compdef %[1]s

%[2]s() {
    local cur="${words[CURRENT]}"
    [[ "${cur}" == -* ]] || return 1

    local -a lines
    lines=("${(@f)$("${words[1]}" --%[3]s="${COLUMNS:-80}" --%[4]s="${cur}" 2>/dev/null)}")
    lines=("${(@)lines:#%[5]s}")
    (( ${#lines} )) || return 1

    if (( ${#lines} == 1 )) && [[ "${lines[1]}" != *' '* ]]; then
        compadd -Q -S '' -- "${lines[1]}"
        return 0
    fi

    _message -r "${(F)lines}"
    return 1
}

compdef %[2]s %[1]s
`, programName, functionName(programName), ColumnsFlag, WordFlag, `\~`)
}
