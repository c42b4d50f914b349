// Package strings provides helpers for optional (*string) name parts
package strings

import std "strings"

// Ptr returns a pointer to s, or nil if s is blank
func Ptr(s string) *string {
	if std.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Deref returns "" if ps is nil, else *ps
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

// Equal compares two optional strings exactly, treating nil and "" as the same value
func Equal(a, b *string) bool { return Deref(a) == Deref(b) }

// SQLNullPtr returns nil if ps is nil or points to a blank string, else the dereferenced string.
// Useful for query args where NULL is desired for blanks
func SQLNullPtr(ps *string) any {
	if ps == nil || std.TrimSpace(*ps) == "" {
		return nil
	}
	return *ps
}

// FirstWord returns the first whitespace separated word of ps, or ""
func FirstWord(ps *string) string {
	f := std.Fields(Deref(ps))
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// Or returns *ps, or def when ps is nil or blank
func Or(ps *string, def string) string {
	if ps == nil || std.TrimSpace(*ps) == "" {
		return def
	}
	return *ps
}
