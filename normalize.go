package flagcomp

import "strings"

const (
	maxQuestionMarks = 3
	maxPlusSigns     = 1
)

// canonicalize strips the quoting, dashes and search markers from the word under the
// cursor. Up to three trailing '?' widen the search and a single trailing '+' lifts the
// line budget; the two may be mixed in any order.
func canonicalize(cursorWord string) (string, searchModifiers) {
	var mods searchModifiers
	if cursorWord == "" {
		return "", mods
	}

	token := strings.TrimPrefix(cursorWord, `"`)
	token = strings.TrimLeft(token, "-")

	questionMarks, plusSigns := 0, 0
	for token != "" {
		last := token[len(token)-1]
		if last == '?' && questionMarks < maxQuestionMarks {
			questionMarks++
		} else if last == '+' && plusSigns < maxPlusSigns {
			plusSigns++
		} else {
			break
		}
		token = token[:len(token)-1]
	}

	mods.nameSubstring = questionMarks >= 1
	mods.locationSubstring = questionMarks >= 2
	mods.descriptionSubstring = questionMarks >= 3
	mods.returnAll = plusSigns > 0

	return token, mods
}
