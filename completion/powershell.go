package completion

import (
	"fmt"
)

// PowerShellGenerator registers a native argument completer. A lone shared prefix is
// completed as is; otherwise each flag line becomes a result holding the flag name, with
// the description as tooltip. Headers, footers and markers are dropped.
type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string) string {
	return fmt.Sprintf(`# PowerShell completion for %[1]s

Register-ArgumentCompleter -Native -CommandName %[2]s -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    if (-not $wordToComplete.StartsWith('-')) {
        return
    }

    $columns = $Host.UI.RawUI.WindowSize.Width
    if (-not $columns) {
        $columns = 80
    }

    $lines = @(& %[2]s "--%[3]s=$columns" "--%[4]s=$wordToComplete" 2>$null)
    if ($lines.Count -eq 1 -and $lines[0] -match %[5]s) {
        [System.Management.Automation.CompletionResult]::new($lines[0], $lines[0], 'ParameterName', $lines[0])
        return
    }

    foreach ($line in $lines) {
        if ($line -match %[6]s) {
            $name = $Matches[1]
            $tip = $Matches[2]
            if (-not $tip) {
                $tip = $name
            }
            [System.Management.Automation.CompletionResult]::new($name, $name, 'ParameterName', $tip)
        } elseif ($line -match %[7]s) {
            $name = $Matches[1]
            [System.Management.Automation.CompletionResult]::new($name, $name, 'ParameterName', $name)
        }
    }
}
`, programName, quotePowerShell(programName), ColumnsFlag, WordFlag,
		quotePowerShell(shortcutPattern), quotePowerShell(flagLinePattern), quotePowerShell(detailsLinePattern))
}
