package names

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// keyPool holds fresh NFC+fold chains; transformers are stateful
var keyPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFC, cases.Fold())
	},
}

// Key is the only normalization applied to names before comparison:
// trim, Unicode NFC composition, then case folding.
// Diacritics are kept so "María" and "maria" are different keys
func Key(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	tr := keyPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	keyPool.Put(tr)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// KnownSet is an immutable case-insensitive set of given names.
// The zero value is an empty set
type KnownSet struct {
	m map[string]struct{}
}

// NewKnownSet builds a set from raw names; blanks are ignored
func NewKnownSet(names ...string) KnownSet {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		if k := Key(n); k != "" {
			m[k] = struct{}{}
		}
	}
	return KnownSet{m: m}
}

// Has reports whether name is a known given name
func (k KnownSet) Has(name string) bool {
	if len(k.m) == 0 {
		return false
	}
	_, ok := k.m[Key(name)]
	return ok
}

// Len returns the number of distinct keys
func (k KnownSet) Len() int { return len(k.m) }

// Names returns the distinct keys in sorted order
func (k KnownSet) Names() []string {
	out := make([]string, 0, len(k.m))
	for n := range k.m {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// With returns a new set holding k plus names; k is not modified
func (k KnownSet) With(names ...string) KnownSet {
	m := make(map[string]struct{}, len(k.m)+len(names))
	for n := range k.m {
		m[n] = struct{}{}
	}
	for _, n := range names {
		if key := Key(n); key != "" {
			m[key] = struct{}{}
		}
	}
	return KnownSet{m: m}
}
