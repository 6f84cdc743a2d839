// Package resolver maps free-text player queries onto the available board.
//
// Matching runs in tiers and the first tier with any hit wins:
// exact full name, exact surname, then substring of the full name.
// Names are compared after Normalize, so "D.J. Moore Jr." and "dj moore" are equal.
package resolver

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"draftboard/internal/model"
)

var (
	ErrPlayerNotFound = errors.New("no available player matched")
	ErrAmbiguous      = errors.New("multiple available players matched")
)

// AmbiguousError carries the candidates of an ambiguous query in available order.
type AmbiguousError struct {
	Query      string
	Candidates []model.PlayerRecord
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%q: %v (%d candidates)", e.Query, ErrAmbiguous, len(e.Candidates))
}

func (e *AmbiguousError) Unwrap() error { return ErrAmbiguous }

// Status is the outcome class of a resolution.
type Status int

const (
	NotFound Status = iota
	Resolved
	Ambiguous
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Ambiguous:
		return "ambiguous"
	}
	return "not_found"
}

// Tier says which matching rule produced a resolution.
type Tier int

const (
	TierNone Tier = iota
	TierFullName
	TierSurname
	TierSubstring
)

// Resolution is the result of Resolve. Player is set when Resolved;
// Candidates holds every match, in available order.
type Resolution struct {
	Query      string
	Status     Status
	Tier       Tier
	Player     model.PlayerRecord
	Candidates []model.PlayerRecord
}

// Err converts a non-resolved outcome into its error form.
func (r Resolution) Err() error {
	switch r.Status {
	case Resolved:
		return nil
	case Ambiguous:
		return &AmbiguousError{Query: r.Query, Candidates: r.Candidates}
	}
	return fmt.Errorf("%q: %w", r.Query, ErrPlayerNotFound)
}

// Resolve matches query against the available players. It does not mutate anything.
func Resolve(available []model.PlayerRecord, query string) Resolution {
	res := Resolution{Query: strings.TrimSpace(query)}
	q := Normalize(query)
	if q == "" {
		return res
	}

	type entry struct {
		full, last string
	}
	keys := make([]entry, len(available))
	for i := range available {
		full := Normalize(available[i].FullName)
		keys[i] = entry{full: full, last: lastToken(full)}
	}

	tiers := []struct {
		tier  Tier
		match func(e entry) bool
	}{
		{TierFullName, func(e entry) bool { return e.full == q }},
		{TierSurname, func(e entry) bool { return e.last != "" && e.last == q }},
		{TierSubstring, func(e entry) bool { return strings.Contains(e.full, q) }},
	}
	for _, t := range tiers {
		var hits []model.PlayerRecord
		for i, k := range keys {
			if t.match(k) {
				hits = append(hits, available[i])
			}
		}
		if len(hits) == 0 {
			continue
		}
		res.Tier = t.tier
		res.Candidates = hits
		if len(hits) == 1 {
			res.Status = Resolved
			res.Player = hits[0]
		} else {
			res.Status = Ambiguous
		}
		return res
	}
	return res
}

var suffixes = map[string]bool{"jr": true, "sr": true, "ii": true, "iii": true, "iv": true, "v": true}

// Normalize lowercases a name, drops everything but letters, apostrophes and spaces,
// removes generational suffixes and collapses whitespace.
func Normalize(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), r == '\'':
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		}
		return -1
	}, name)

	toks := strings.Fields(cleaned)
	kept := toks[:0]
	for _, t := range toks {
		if !suffixes[t] {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, " ")
}

func lastToken(normalized string) string {
	if i := strings.LastIndexByte(normalized, ' '); i >= 0 {
		return normalized[i+1:]
	}
	return normalized
}
