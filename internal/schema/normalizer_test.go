package schema

import (
	"errors"
	"testing"

	"draftboard/internal/model"
)

func TestNormalize_MapsAliases(t *testing.T) {
	tbl := Table{
		Headers: []string{"  FULL   name ", "Position", "Team Abbrev", "Adjusted Projected Points", "Rank", "Auction Value"},
		Rows: []map[string]string{
			{"  FULL   name ": "Josh Allen", "Position": "qb", "Team Abbrev": "BUF", "Adjusted Projected Points": "300.5", "Rank": "1", "Auction Value": "$45"},
		},
	}
	res, err := NewNormalizer(nil).Normalize(tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(res.Records))
	}
	r := res.Records[0]
	if r.FullName != "Josh Allen" || r.Position != "QB" || r.Team != "BUF" {
		t.Errorf("unexpected record: %+v", r)
	}
	if r.AdjustedPoints == nil || *r.AdjustedPoints != 300.5 {
		t.Errorf("expected adjusted points 300.5, got %v", r.AdjustedPoints)
	}
	if r.AuctionValue == nil || *r.AuctionValue != 45 {
		t.Errorf("expected auction value 45, got %v", r.AuctionValue)
	}
	if r.ProjPoints != nil || r.ADP != nil {
		t.Error("missing columns must stay absent")
	}
	if res.Columns[model.FieldFullName] != "  FULL   name " {
		t.Errorf("expected original header kept, got %q", res.Columns[model.FieldFullName])
	}
}

func TestNormalize_SkipsNamelessRows(t *testing.T) {
	tbl := Table{
		Headers: []string{"Player", "Projected Fantasy Points"},
		Rows: []map[string]string{
			{"Player": "A", "Projected Fantasy Points": "10"},
			{"Player": "   ", "Projected Fantasy Points": "9"},
			{"Projected Fantasy Points": "8"},
			{"Player": "B", "Projected Fantasy Points": ""},
		},
	}
	res, err := NewNormalizer(nil).Normalize(tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Skipped != 2 {
		t.Errorf("expected 2 skipped, got %d", res.Skipped)
	}
	if len(res.Records) != 2 || res.Records[1].Index != 1 {
		t.Fatalf("unexpected records: %+v", res.Records)
	}
	if res.Records[1].ProjPoints != nil {
		t.Error("blank cell must be absent, not zero")
	}
	if res.Key.Points != model.FieldProjected {
		t.Errorf("expected projected key, got %q", res.Key.Points)
	}
}

func TestNormalize_ZeroIsNotAbsent(t *testing.T) {
	tbl := Table{
		Headers: []string{"Name", "ADP"},
		Rows:    []map[string]string{{"Name": "A", "ADP": "0"}},
	}
	res, err := NewNormalizer(nil).Normalize(tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Records[0].ADP == nil || *res.Records[0].ADP != 0 {
		t.Errorf("expected real zero, got %v", res.Records[0].ADP)
	}
}

func TestNormalize_LoadErrors(t *testing.T) {
	cases := []struct {
		name string
		tbl  Table
	}{
		{"no name column", Table{Headers: []string{"Position"}, Rows: []map[string]string{{"Position": "QB"}}}},
		{"no rows", Table{Headers: []string{"Name"}}},
		{"all skipped", Table{Headers: []string{"Name"}, Rows: []map[string]string{{"Name": ""}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewNormalizer(nil).Normalize(tc.tbl)
			if !errors.Is(err, ErrLoad) {
				t.Errorf("expected ErrLoad, got %v", err)
			}
		})
	}
}

func TestDetectKey(t *testing.T) {
	adj := []model.PlayerRecord{{FullName: "A", ProjPoints: model.Float(5)}, {FullName: "B", AdjustedPoints: model.Float(1)}}
	if k := DetectKey(adj); k.Points != model.FieldAdjustedPoints || k.UseOverallRank {
		t.Errorf("unexpected key: %+v", k)
	}
	none := []model.PlayerRecord{{FullName: "A", OverallRank: model.Float(1)}}
	if k := DetectKey(none); k.HasPoints() || !k.UseOverallRank {
		t.Errorf("unexpected key: %+v", k)
	}
}

func TestNormalize_ExtraAliases(t *testing.T) {
	n := NewNormalizer(map[model.Field][]string{model.FieldProjected: {"FPTS"}})
	res, err := n.Normalize(Table{
		Headers: []string{"Name", "fpts"},
		Rows:    []map[string]string{{"Name": "A", "fpts": "12"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Records[0].ProjPoints == nil || *res.Records[0].ProjPoints != 12 {
		t.Errorf("expected 12 from extra alias, got %v", res.Records[0].ProjPoints)
	}
}
