package flagcomp

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/napalu/flagcomp/types"
)

// shortFlagLine renders "--name [default] description", cutting the description to fit
// the configured width. Descriptions of string flags have their default single-quoted.
func (e *Engine) shortFlagLine(indent string, f types.Flag) string {
	quote := ""
	if f.IsString() {
		quote = "'"
	}
	prefix := fmt.Sprintf("%s--%s [%s%s%s] ", indent, f.Name, quote, f.DefaultValue, quote)

	remainder := e.columns - runewidth.StringWidth(prefix)
	if remainder <= 0 {
		return prefix
	}
	if runewidth.StringWidth(f.Description) <= remainder {
		return prefix + f.Description
	}

	return prefix + truncate.StringWithTail(f.Description, uint(remainder), truncationTail)
}

// longFlagLine renders the detailed description of a flag as a single line in which
// every line break has been replaced by padding up to the next multiple of the width
func (e *Engine) longFlagLine(indent string, f types.Flag) string {
	description := e.describer.Describe(f)

	oldName := "-" + f.Name
	if i := strings.Index(description, oldName); i >= 0 {
		description = description[:i] + "-" + description[i:]
	}
	description = breakBefore(description, " type:")
	description = breakBefore(description, " default:")

	output := fmt.Sprintf("%s %s '--%s':\n%s    %s: %s",
		indent,
		e.translate(types.MsgDetailsForKey),
		f.Name,
		description,
		e.translate(types.MsgDefinedKey),
		f.DefinedIn)

	for strings.Contains(output, doubledNewlines) {
		output = strings.Replace(output, doubledNewlines, "\n", 1)
	}

	return reflowFixedWidth(output, e.columns)
}

// breakBefore replaces the space starting the first occurrence of marker with an indented
// line break
func breakBefore(s, marker string) string {
	i := strings.Index(s, marker)
	if i < 0 {
		return s
	}

	return s[:i] + longFieldIndent + s[i+1:]
}

// reflowFixedWidth replaces each newline with enough spaces to push the following text to
// the start of the next row of a terminal that is columns wide
func reflowFixedWidth(s string, columns int) string {
	var sb strings.Builder
	sb.Grow(len(s))
	width := 0
	for _, r := range s {
		if r != '\n' {
			sb.WriteRune(r)
			width += runewidth.RuneWidth(r)
			continue
		}
		missing := columns - width%columns
		sb.WriteString(strings.Repeat(" ", missing))
		width += missing
	}

	return sb.String()
}
