package parse

import (
	"strings"
	"unicode"

	"github.com/google/shlex"
)

func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}

// CursorWord returns the word being completed in a shell command line, given the byte
// offset of the cursor (bash's COMP_LINE and COMP_POINT). The word is empty when the
// cursor follows whitespace. A point outside the line is clamped to the line end.
func CursorWord(line string, point int) string {
	if point < 0 || point > len(line) {
		point = len(line)
	}

	head := line[:point]
	if head == "" || unicode.IsSpace(rune(head[len(head)-1])) {
		return ""
	}

	words, err := Split(head)
	if err != nil {
		// an unterminated quote is normal while typing; keep the raw word, quote included
		words = strings.Fields(head)
	}
	if len(words) == 0 {
		return ""
	}

	return words[len(words)-1]
}
