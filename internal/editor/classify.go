package editor

import "unicode"

// CharClass groups characters for word motions and word deletion. A word is
// a maximal run of characters of the same class.
type CharClass int

const (
	ClassWhitespace CharClass = iota
	ClassWord                 // letters, digits, underscore
	ClassPunctuation          // any other non-space character
)

// Classify returns the class of r.
func Classify(r rune) CharClass {
	switch {
	case unicode.IsSpace(r):
		return ClassWhitespace
	case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
		return ClassWord
	default:
		return ClassPunctuation
	}
}

func isSpace(r rune) bool { return Classify(r) == ClassWhitespace }

// runEnd returns the index one past the run of same-class characters that
// contains col.
func runEnd(chars []rune, col int) int {
	cls := Classify(chars[col])
	for col < len(chars) && Classify(chars[col]) == cls {
		col++
	}
	return col
}

// runStart returns the index of the first character of the run containing col.
func runStart(chars []rune, col int) int {
	cls := Classify(chars[col])
	for col > 0 && Classify(chars[col-1]) == cls {
		col--
	}
	return col
}

// skipSpace returns the first index at or after col that is not whitespace,
// or len(chars).
func skipSpace(chars []rune, col int) int {
	for col < len(chars) && isSpace(chars[col]) {
		col++
	}
	return col
}

// wordExtent returns the index where a forward word motion starting at col
// lands on the same line: past the run under col, then past any whitespace.
// The result is len(chars) when no further word starts on the line.
func wordExtent(chars []rune, col int) int {
	return skipSpace(chars, runEnd(chars, col))
}
