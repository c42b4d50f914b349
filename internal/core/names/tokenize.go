// Package names splits Spanish/Argentine full names into a given-name part and
// a family-name part.
// Pipeline
// 1 Tokenize into words, keeping quoted nickname spans whole
// 2 Classify every token once (nickname, initial, preposition, known given name, unknown)
// 3 Segment the classified sequence with a fixed rule priority
//
// Everything here is pure and safe for concurrent use
package names

import (
	"unicode"
	"unicode/utf8"
)

// Token is one word of a full name; Start is the byte offset of Text in the input
type Token struct {
	Text  string
	Start int
}

// isOpener reports whether r may start a nickname span
func isOpener(r rune) bool {
	switch r {
	case '"', '\'', '«', '“', '”':
		return true
	}
	return false
}

// closes reports whether r terminates a span opened with open.
// Guillemets pair strictly, any quote glyph closes the other openers
func closes(open, r rune) bool {
	if open == '«' {
		return r == '»'
	}
	switch r {
	case '"', '\'', '“', '”', '‘', '’':
		return true
	}
	return false
}

// Tokenize splits s on whitespace into ordered tokens.
// A quote that opens the string, follows whitespace or directly follows a closed span
// starts a nickname span that is kept verbatim (delimiters and inner spaces included)
// up to its closing quote.
// An unterminated span degrades to plain whitespace splitting of the remainder
func Tokenize(s string) []Token {
	var out []Token
	start := -1 // start of the ordinary token being read, -1 between tokens
	canOpen := true // at a token boundary

	for i := 0; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])

		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, Token{Text: s[start:i], Start: start})
				start = -1
			}
			canOpen = true
			i += sz
			continue
		}

		if canOpen && isOpener(r) {
			end, ok := spanEnd(s, i+sz, r)
			if !ok {
				return append(out, fields(s[i:], i)...)
			}
			out = append(out, Token{Text: s[i:end], Start: i})
			canOpen = true
			i = end
			continue
		}

		if start < 0 {
			start = i
		}
		canOpen = false
		i += sz
	}
	if start >= 0 {
		out = append(out, Token{Text: s[start:], Start: start})
	}
	return out
}

// spanEnd finds the byte index just past the quote closing a span opened with open.
// from is the index right after the opener
func spanEnd(s string, from int, open rune) (int, bool) {
	for i := from; i < len(s); {
		r, sz := utf8.DecodeRuneInString(s[i:])
		if closes(open, r) {
			return i + sz, true
		}
		i += sz
	}
	return 0, false
}

// fields splits s on whitespace with no span handling; base offsets Start
func fields(s string, base int) []Token {
	var out []Token
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, Token{Text: s[start:i], Start: base + start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, Token{Text: s[start:], Start: base + start})
	}
	return out
}
