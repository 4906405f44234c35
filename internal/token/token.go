package token

import (
	"unicode"
)

// Def is a single token definition: a symbolic name and its literal spelling or description.
type Def struct {
	Name string
	Text string
}

// D is a shorthand constructor used by the static tables.
func D(name, text string) Def { return Def{Name: name, Text: text} }

// IsValidName reports whether name is an ASCII identifier usable by ANTLR and Go alike.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r > unicode.MaxASCII {
			return false
		}
		if i == 0 && r != '_' && !unicode.IsLetter(r) {
			return false
		}
		if i > 0 && r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsOperatorText reports whether text is a non-empty run of symbols:
// no letters, digits or whitespace.
func IsOperatorText(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsKeywordText reports whether text can be used as a reserved word spelling.
func IsKeywordText(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}
