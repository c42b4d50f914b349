package names

import (
	"regexp"
	"unicode/utf8"
)

// Class is the role a single token can play in a name
type Class uint8

const (
	// ClassUnknown is anything not matched by the other classes
	ClassUnknown Class = iota
	// ClassNickname is a quoted alias such as "Bocha"
	ClassNickname
	// ClassInitial is one or two uppercase letters and a period, e.g. A. or CH.
	ClassInitial
	// ClassPreposition is one of de, del, la, las, los, el
	ClassPreposition
	// ClassKnownGivenName is a word found in the known-name set
	ClassKnownGivenName
)

// String returns a stable lowercase label
func (c Class) String() string {
	switch c {
	case ClassNickname:
		return "nickname"
	case ClassInitial:
		return "initial"
	case ClassPreposition:
		return "preposition"
	case ClassKnownGivenName:
		return "known"
	default:
		return "unknown"
	}
}

var initialRe = regexp.MustCompile(`^[A-ZÁÉÍÓÚÜÑ]{1,2}\.$`)

// prepositions is closed on purpose; no dictionary lookup
var prepositions = map[string]struct{}{
	"de": {}, "del": {}, "la": {}, "las": {}, "los": {}, "el": {},
}

// IsPreposition reports whether word is one of the linking particles
func IsPreposition(word string) bool {
	_, ok := prepositions[Key(word)]
	return ok
}

// isNickname checks that the token is wrapped in a matching quote pair
func isNickname(text string) bool {
	if utf8.RuneCountInString(text) < 2 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(text)
	last, _ := utf8.DecodeLastRuneInString(text)
	return isOpener(first) && closes(first, last)
}

// Classify assigns exactly one class to tok.
// Nickname and Initial win over Preposition and KnownGivenName
func Classify(tok Token, known KnownSet) Class {
	switch {
	case isNickname(tok.Text):
		return ClassNickname
	case initialRe.MatchString(tok.Text):
		return ClassInitial
	case IsPreposition(tok.Text):
		return ClassPreposition
	case known.Has(tok.Text):
		return ClassKnownGivenName
	default:
		return ClassUnknown
	}
}

// ClassifyAll classifies every token once, in order
func ClassifyAll(toks []Token, known KnownSet) []Class {
	out := make([]Class, len(toks))
	for i, t := range toks {
		out[i] = Classify(t, known)
	}
	return out
}
