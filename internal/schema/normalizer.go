package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"draftboard/internal/model"
)

// ErrLoad is returned when a table yields no usable players.
var ErrLoad = errors.New("load board")

// Table is a raw ranked list as read by a source: ordered headers plus rows keyed by header.
// A missing key and an empty cell both mean "absent".
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// Result is the outcome of normalizing a Table.
type Result struct {
	Records []model.PlayerRecord
	Skipped int
	Key     model.RankingKey
	// Columns maps each canonical field found to the header it was read from.
	Columns map[model.Field]string
}

// DefaultAliases maps normalized header text to a canonical field.
var DefaultAliases = map[string]model.Field{
	"full name":                 model.FieldFullName,
	"player":                    model.FieldFullName,
	"player name":               model.FieldFullName,
	"name":                      model.FieldFullName,
	"position":                  model.FieldPosition,
	"pos":                       model.FieldPosition,
	"team abbrev":               model.FieldTeam,
	"team":                      model.FieldTeam,
	"adjusted projected points": model.FieldAdjustedPoints,
	"adjpts":                    model.FieldAdjustedPoints,
	"adj pts":                   model.FieldAdjustedPoints,
	"projected fantasy points":  model.FieldProjected,
	"projected points":          model.FieldProjected,
	"projpts":                   model.FieldProjected,
	"proj pts":                  model.FieldProjected,
	"adp":                       model.FieldADP,
	"positional rank":           model.FieldPositionalRank,
	"posrank":                   model.FieldPositionalRank,
	"pos rank":                  model.FieldPositionalRank,
	"auction value":             model.FieldAuctionValue,
	"auc$":                      model.FieldAuctionValue,
	"rank":                      model.FieldOverallRank,
	"overall rank":              model.FieldOverallRank,
}

// Normalizer maps arbitrary headers onto the internal schema.
type Normalizer struct {
	aliases map[string]model.Field
}

// NewNormalizer creates a Normalizer using DefaultAliases plus any extra header names per field.
func NewNormalizer(extra map[model.Field][]string) *Normalizer {
	aliases := make(map[string]model.Field, len(DefaultAliases))
	for k, v := range DefaultAliases {
		aliases[k] = v
	}
	for field, names := range extra {
		for _, n := range names {
			aliases[headerKey(n)] = field
		}
	}
	return &Normalizer{aliases: aliases}
}

// MapHeaders resolves each canonical field to the first header that aliases it.
func (n *Normalizer) MapHeaders(headers []string) map[model.Field]string {
	cols := make(map[model.Field]string)
	for _, h := range headers {
		f, ok := n.aliases[headerKey(h)]
		if !ok {
			continue
		}
		if _, seen := cols[f]; !seen {
			cols[f] = h
		}
	}
	return cols
}

// Normalize converts a Table into PlayerRecords. Rows without a name are skipped and counted.
// Original indices are assigned densely over the accepted rows.
func (n *Normalizer) Normalize(t Table) (*Result, error) {
	cols := n.MapHeaders(t.Headers)
	if _, ok := cols[model.FieldFullName]; !ok {
		return nil, fmt.Errorf("%w: no player name column among %q", ErrLoad, t.Headers)
	}

	res := &Result{Columns: cols}
	for _, row := range t.Rows {
		name := strings.TrimSpace(row[cols[model.FieldFullName]])
		if name == "" {
			res.Skipped++
			continue
		}
		rec := model.PlayerRecord{
			Index:    len(res.Records),
			FullName: name,
			Position: strings.ToUpper(strings.TrimSpace(cell(row, cols, model.FieldPosition))),
			Team:     strings.TrimSpace(cell(row, cols, model.FieldTeam)),
		}
		for f := range cols {
			if model.IsNumeric(f) {
				rec.SetNumber(f, parseNumber(row[cols[f]]))
			}
		}
		res.Records = append(res.Records, rec)
	}

	if len(res.Records) == 0 {
		return nil, fmt.Errorf("%w: no valid rows (%d skipped)", ErrLoad, res.Skipped)
	}
	res.Key = DetectKey(res.Records)
	return res, nil
}

// DetectKey picks adjusted points when any record carries them, else projected points,
// else no points key.
func DetectKey(records []model.PlayerRecord) model.RankingKey {
	var key model.RankingKey
	switch {
	case anyValue(records, model.FieldAdjustedPoints):
		key.Points = model.FieldAdjustedPoints
	case anyValue(records, model.FieldProjected):
		key.Points = model.FieldProjected
	}
	key.UseOverallRank = anyValue(records, model.FieldOverallRank)
	return key
}

func anyValue(records []model.PlayerRecord, f model.Field) bool {
	for i := range records {
		if records[i].Number(f) != nil {
			return true
		}
	}
	return false
}

func cell(row map[string]string, cols map[model.Field]string, f model.Field) string {
	h, ok := cols[f]
	if !ok {
		return ""
	}
	return row[h]
}

func headerKey(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

// parseNumber returns nil for blanks and anything that is not a finite number.
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
