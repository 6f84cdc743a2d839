package ranking

import (
	"sort"
	"strings"

	"draftboard/internal/model"
)

// Engine computes top-N views over a board's available players.
// Records missing the active sort value are left out of a view, never ranked first or last.
type Engine struct {
	Key model.RankingKey
}

// NewEngine creates an Engine for the given ranking key.
func NewEngine(key model.RankingKey) *Engine {
	return &Engine{Key: key}
}

// TopOverall returns up to n players by ascending overall rank when any available player
// has one, otherwise by descending points.
func (e *Engine) TopOverall(available []model.PlayerRecord, n int) []model.PlayerRecord {
	if n <= 0 {
		return nil
	}
	if e.Key.UseOverallRank {
		ranked := withValue(available, model.FieldOverallRank)
		if len(ranked) > 0 {
			return take(sortBy(ranked, model.FieldOverallRank, true), n)
		}
	}
	return e.byPoints(available, n)
}

// TopByPosition returns up to n players at position by descending points. Never pads.
func (e *Engine) TopByPosition(available []model.PlayerRecord, position string, n int) []model.PlayerRecord {
	if n <= 0 {
		return nil
	}
	position = strings.TrimSpace(position)
	var group []model.PlayerRecord
	for _, r := range available {
		if strings.EqualFold(r.Position, position) {
			group = append(group, r)
		}
	}
	return e.byPoints(group, n)
}

func (e *Engine) byPoints(recs []model.PlayerRecord, n int) []model.PlayerRecord {
	if !e.Key.HasPoints() {
		return nil
	}
	return take(sortBy(withValue(recs, e.Key.Points), e.Key.Points, false), n)
}

func withValue(recs []model.PlayerRecord, f model.Field) []model.PlayerRecord {
	out := make([]model.PlayerRecord, 0, len(recs))
	for i := range recs {
		if recs[i].Number(f) != nil {
			out = append(out, recs[i])
		}
	}
	return out
}

// sortBy orders recs on f, breaking ties by original index.
func sortBy(recs []model.PlayerRecord, f model.Field, ascending bool) []model.PlayerRecord {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := *recs[i].Number(f), *recs[j].Number(f)
		if a != b {
			if ascending {
				return a < b
			}
			return a > b
		}
		return recs[i].Index < recs[j].Index
	})
	return recs
}

func take(recs []model.PlayerRecord, n int) []model.PlayerRecord {
	if len(recs) > n {
		return recs[:n]
	}
	return recs
}
