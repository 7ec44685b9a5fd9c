package completion

import (
	"fmt"
)

// FishGenerator turns the listing into candidates: a lone shared prefix is offered as is,
// flag lines become "--name<TAB>description" and every other line is dropped
type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string) string {
	return fmt.Sprintf(`# fish completion for %[1]s

function %[2]s
    set -l cur (commandline -ct)
    string match -q -- '-*' $cur; or return

    set -l columns $COLUMNS
    test -n "$columns"; or set columns 80

    set -l lines (command %[3]s --%[4]s=$columns --%[5]s=$cur 2>/dev/null)
    if test (count $lines) -eq 1; and string match -qr -- %[6]s $lines[1]
        echo $lines[1]
        return
    end

    for line in $lines
        string replace -rf -- %[7]s '$1'\t'$2' $line; and continue
        string replace -rf -- %[8]s '$1' $line
    end
end

complete -c %[3]s -f -a '(%[2]s)'
`, programName, functionName(programName), quoteFish(programName), ColumnsFlag, WordFlag,
		quoteFish(shortcutPattern), quoteFish(flagLinePattern), quoteFish(detailsLinePattern))
}
