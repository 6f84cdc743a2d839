package model

// RankingKey is derived from the loaded schema and decides how views sort.
type RankingKey struct {
	// Points is the "higher is better" field, or "" when the board has no points column.
	Points Field
	// UseOverallRank is set when the board carries an overall rank column.
	UseOverallRank bool
}

// HasPoints reports whether points-based views are available.
func (k RankingKey) HasPoints() bool { return k.Points != "" }
