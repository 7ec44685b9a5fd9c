package flagcomp

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/napalu/flagcomp/types"
)

const (
	describeLineLength   = 80
	describeContinuation = "\n      "
)

// DefaultDescriber lays a flag out the way --help listings of gflags-style programs do:
//
//	-name (description) type: T default: V currently: V
//
// wrapped below 80 columns with continuation lines indented by six spaces
type DefaultDescriber struct{}

func (DefaultDescriber) Describe(f types.Flag) string {
	main := fmt.Sprintf("    -%s (%s)", f.Name, f.Description)
	rows := strings.Split(wordwrap.String(main, describeLineLength-len(describeContinuation)), "\n")

	var sb strings.Builder
	sb.WriteString(strings.Join(rows, describeContinuation))
	lineWidth := runewidth.StringWidth(rows[len(rows)-1])
	if len(rows) > 1 {
		lineWidth += len(describeContinuation) - 1
	}

	add := func(s string) {
		width := runewidth.StringWidth(s)
		if lineWidth+1+width >= describeLineLength {
			sb.WriteString(describeContinuation)
			lineWidth = len(describeContinuation) - 1
		} else {
			sb.WriteByte(' ')
			lineWidth++
		}
		sb.WriteString(s)
		lineWidth += width
	}

	add("type: " + f.Type)
	add(quotedValue(f, "default", f.DefaultValue))
	if !f.IsDefault() {
		add(quotedValue(f, "currently", f.CurrentValue))
	}
	sb.WriteByte('\n')

	return sb.String()
}

func quotedValue(f types.Flag, label, value string) string {
	if f.IsString() {
		return label + `: "` + value + `"`
	}

	return label + ": " + value
}
