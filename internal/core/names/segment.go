package names

import "strings"

// Rule identifies which branch of the engine produced a Result
type Rule uint8

const (
	// RuleEmpty is blank input
	RuleEmpty Rule = iota
	// RuleSingleToken is a lone word, always a surname
	RuleSingleToken
	// RuleNicknameOrInitial is any name carrying a quoted alias or an initial
	RuleNicknameOrInitial
	// RuleNoKnownName is an institutional or band name with no known given name
	RuleNoKnownName
	// RuleKnownPrefix is a known given-name prefix followed by the surname
	RuleKnownPrefix
	// RuleLeadingUnknown keeps an unrecognized first word as the given name
	RuleLeadingUnknown
)

// String returns a stable label for logs
func (r Rule) String() string {
	switch r {
	case RuleEmpty:
		return "empty"
	case RuleSingleToken:
		return "single_token"
	case RuleNicknameOrInitial:
		return "nickname_or_initial"
	case RuleNoKnownName:
		return "no_known_name"
	case RuleKnownPrefix:
		return "known_prefix"
	case RuleLeadingUnknown:
		return "leading_unknown"
	default:
		return "unknown"
	}
}

// Result is a split name. An empty span is nil, never ""
type Result struct {
	FirstName *string
	LastName  *string
}

// Analysis carries the intermediate facts behind a Result
type Analysis struct {
	Tokens  []Token
	Classes []Class
	Rule    Rule
	Result  Result
}

// Has reports whether any token has class c
func (a Analysis) Has(c Class) bool {
	for _, x := range a.Classes {
		if x == c {
			return true
		}
	}
	return false
}

// Segment splits fullName into given name and surname
func Segment(fullName string, known KnownSet) Result {
	return Analyze(fullName, known).Result
}

// Analyze runs the engine and keeps the tokens, classes and rule it used.
// Rule priority
// 1 empty input
// 2 single token -> surname
// 3 nickname or initial present -> prefix of nickname/initial/known tokens
// 4 no known given name -> whole name is the surname
// 5 prefix of known tokens, prepositions attach to a following known name
func Analyze(fullName string, known KnownSet) Analysis {
	toks := Tokenize(fullName)
	a := Analysis{Tokens: toks, Classes: ClassifyAll(toks, known)}

	if len(toks) == 0 {
		a.Rule = RuleEmpty
		return a
	}
	if len(toks) == 1 {
		a.Rule = RuleSingleToken
		a.Result = Result{LastName: join(toks)}
		return a
	}

	var cut int
	switch {
	case a.Has(ClassNickname) || a.Has(ClassInitial):
		a.Rule = RuleNicknameOrInitial
		cut = givenPrefix(a.Classes, isGivenMarker)
	case !a.Has(ClassKnownGivenName):
		a.Rule = RuleNoKnownName
		cut = 0
	default:
		a.Rule = RuleKnownPrefix
		cut = givenPrefix(a.Classes, isKnown)
		if cut == 0 {
			// an unrecognized leading word is kept as the given name
			a.Rule = RuleLeadingUnknown
			cut = 1
		}
	}
	// the surname span is never empty
	if cut == len(toks) {
		cut--
	}

	a.Result = Result{FirstName: join(toks[:cut]), LastName: join(toks[cut:])}
	return a
}

func isGivenMarker(c Class) bool {
	return c == ClassNickname || c == ClassInitial || c == ClassKnownGivenName
}

func isKnown(c Class) bool { return c == ClassKnownGivenName }

// givenPrefix returns how many leading tokens belong to the given name.
// A run of prepositions is admitted only when the token right after it is accepted
func givenPrefix(classes []Class, accept func(Class) bool) int {
	i := 0
	for i < len(classes) {
		c := classes[i]
		if accept(c) {
			i++
			continue
		}
		if c != ClassPreposition {
			break
		}
		j := i
		for j < len(classes) && classes[j] == ClassPreposition {
			j++
		}
		if j == len(classes) || !accept(classes[j]) {
			break
		}
		i = j
	}
	return i
}

// join rejoins tokens with single spaces; nil when there are none
func join(toks []Token) *string {
	if len(toks) == 0 {
		return nil
	}
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.Text
	}
	s := strings.Join(parts, " ")
	return &s
}

// JoinParts rebuilds a full name from stored parts, skipping nil and blank ones
func JoinParts(parts ...*string) string {
	xs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == nil {
			continue
		}
		if s := strings.TrimSpace(*p); s != "" {
			xs = append(xs, s)
		}
	}
	return strings.Join(xs, " ")
}
