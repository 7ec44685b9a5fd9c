package completion

import (
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"
)

// functionName derives a shell function name from a program name such as "my-tool.v2"
func functionName(programName string) string {
	return "__" + strcase.ToSnake(filepath.Base(programName)) + "_flagcomp"
}

// quotePOSIX single-quotes s for bash and zsh
func quotePOSIX(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func quoteFish(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func quotePowerShell(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
