package resolver

import (
	"errors"
	"testing"

	"draftboard/internal/model"
)

func board() []model.PlayerRecord {
	return []model.PlayerRecord{
		{Index: 0, FullName: "Josh Allen", Position: "QB", AdjustedPoints: model.Float(300)},
		{Index: 1, FullName: "Keenan Allen", Position: "WR", AdjustedPoints: model.Float(150)},
		{Index: 2, FullName: "D.J. Moore", Position: "WR"},
		{Index: 3, FullName: "Marvin Harrison Jr.", Position: "WR"},
		{Index: 4, FullName: "Allen Lazard", Position: "WR"},
	}
}

func TestResolve_AmbiguousSurname(t *testing.T) {
	r := Resolve(board(), "Allen")
	if r.Status != Ambiguous || r.Tier != TierSurname {
		t.Fatalf("expected ambiguous surname match, got %v tier %d", r.Status, r.Tier)
	}
	if len(r.Candidates) != 2 || r.Candidates[0].FullName != "Josh Allen" || r.Candidates[1].FullName != "Keenan Allen" {
		t.Errorf("unexpected candidates: %+v", r.Candidates)
	}
	var amb *AmbiguousError
	if err := r.Err(); !errors.As(err, &amb) || len(amb.Candidates) != 2 || !errors.Is(err, ErrAmbiguous) {
		t.Errorf("expected AmbiguousError, got %v", err)
	}
}

func TestResolve_ExactFullName(t *testing.T) {
	r := Resolve(board(), "  josh ALLEN ")
	if r.Status != Resolved || r.Player.FullName != "Josh Allen" || r.Tier != TierFullName {
		t.Fatalf("expected Josh Allen, got %+v", r)
	}
	if r.Err() != nil {
		t.Errorf("unexpected error: %v", r.Err())
	}
}

func TestResolve_Tiers(t *testing.T) {
	cases := []struct {
		query string
		want  string
		tier  Tier
	}{
		{"dj moore", "D.J. Moore", TierFullName},
		{"Marvin Harrison", "Marvin Harrison Jr.", TierFullName},
		{"harrison", "Marvin Harrison Jr.", TierSurname},
		{"lazard", "Allen Lazard", TierSurname},
		{"keen", "Keenan Allen", TierSubstring},
		{"allen laz", "Allen Lazard", TierSubstring},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			r := Resolve(board(), tc.query)
			if r.Status != Resolved || r.Player.FullName != tc.want || r.Tier != tc.tier {
				t.Errorf("expected %s via tier %d, got %+v", tc.want, tc.tier, r)
			}
		})
	}
}

func TestResolve_SubstringAmbiguous(t *testing.T) {
	r := Resolve(board(), "all")
	if r.Status != Ambiguous || len(r.Candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %+v", r)
	}
	if r.Candidates[2].FullName != "Allen Lazard" {
		t.Errorf("candidates must keep available order: %+v", r.Candidates)
	}
}

func TestResolve_NotFound(t *testing.T) {
	for _, q := range []string{"Mahomes", "", "  ", "123", "jr"} {
		r := Resolve(board(), q)
		if r.Status != NotFound {
			t.Errorf("%q: expected not found, got %v", q, r.Status)
		}
		if !errors.Is(r.Err(), ErrPlayerNotFound) {
			t.Errorf("%q: expected ErrPlayerNotFound, got %v", q, r.Err())
		}
	}
}

func TestResolve_OnlyAvailable(t *testing.T) {
	avail := board()[1:]
	r := Resolve(avail, "Allen")
	if r.Status != Resolved || r.Player.FullName != "Keenan Allen" {
		t.Errorf("expected Keenan Allen once Josh is gone, got %+v", r)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"D.J. Moore":           "dj moore",
		"  Ja'Marr   Chase ":   "ja'marr chase",
		"Kenneth Walker III":   "kenneth walker",
		"Amon-Ra St. Brown":    "amonra st brown",
		"Odell Beckham Jr.":    "odell beckham",
		"Patrick Mahomes II":   "patrick mahomes",
		"Michael Pittman Jr. ": "michael pittman",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
	if got := lastToken(Normalize("Kenneth Walker III")); got != "walker" {
		t.Errorf("expected walker, got %q", got)
	}
}
