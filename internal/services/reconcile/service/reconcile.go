package service

import (
	"filmnames/internal/core/names"
	str "filmnames/internal/platform/strings"
	pdom "filmnames/internal/services/people/domain"
	"filmnames/internal/services/reconcile/domain"
)

// Reconcile re-derives the split of every record and returns the ones that differ,
// in input order. It is pure and safe for concurrent use
func Reconcile(records []pdom.Record, known names.KnownSet) []domain.Candidate {
	var out []domain.Candidate
	for _, r := range records {
		if c, ok := Check(r, known); ok {
			out = append(out, c)
		}
	}
	return out
}

// Check segments one record; ok is false when the stored split already matches.
// nil and "" compare equal, everything else is exact
func Check(r pdom.Record, known names.KnownSet) (domain.Candidate, bool) {
	a := names.Analyze(names.JoinParts(r.FirstName, r.LastName), known)
	if str.Equal(a.Result.FirstName, r.FirstName) && str.Equal(a.Result.LastName, r.LastName) {
		return domain.Candidate{}, false
	}
	return domain.Candidate{
		ID:                 r.ID,
		Slug:               r.Slug,
		CurrentFirstName:   r.FirstName,
		CurrentLastName:    r.LastName,
		SuggestedFirstName: a.Result.FirstName,
		SuggestedLastName:  a.Result.LastName,
		Reason:             reasonFor(a, r.LastName, known),
	}, true
}

func reasonFor(a names.Analysis, currentLast *string, known names.KnownSet) domain.Reason {
	switch {
	case a.Rule == names.RuleSingleToken:
		return domain.ReasonSingleWord
	case a.Has(names.ClassNickname):
		return domain.ReasonNickname
	case a.Has(names.ClassInitial):
		return domain.ReasonInitials
	case a.Rule == names.RuleNoKnownName:
		return domain.ReasonNoKnownName
	}

	fw := str.FirstWord(currentLast)
	switch {
	case fw != "" && known.Has(fw):
		return domain.ReasonSurnameStartsWithGivenName
	case fw != "" && names.IsPreposition(fw):
		return domain.ReasonSurnameStartsWithPreposition
	default:
		return domain.ReasonReorganized
	}
}
