package model

import "strings"

// Field names a canonical column of the board.
type Field string

const (
	FieldFullName       Field = "full_name"
	FieldPosition       Field = "position"
	FieldTeam           Field = "team"
	FieldAdjustedPoints Field = "adjusted_points"
	FieldProjected      Field = "projected_points"
	FieldADP            Field = "adp"
	FieldPositionalRank Field = "positional_rank"
	FieldAuctionValue   Field = "auction_value"
	FieldOverallRank    Field = "overall_rank"
)

// Fields lists every canonical field in display/export order.
var Fields = []Field{
	FieldFullName,
	FieldPosition,
	FieldTeam,
	FieldAdjustedPoints,
	FieldProjected,
	FieldADP,
	FieldPositionalRank,
	FieldAuctionValue,
	FieldOverallRank,
}

// Positions is the known position enum. Anything else is kept verbatim.
var Positions = []string{"QB", "RB", "WR", "TE", "K", "DST"}

// IsPosition reports whether s names a known position, ignoring case.
func IsPosition(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, p := range Positions {
		if p == s {
			return true
		}
	}
	return false
}

// PlayerRecord is one row of the board. Nil numeric fields were absent in the input.
type PlayerRecord struct {
	Index          int // original row position, stable for the whole session
	FullName       string
	Position       string
	Team           string
	AdjustedPoints *float64
	ProjPoints     *float64
	ADP            *float64
	PositionalRank *float64
	AuctionValue   *float64
	OverallRank    *float64
}

// Number returns the numeric value stored under f, or nil.
func (p *PlayerRecord) Number(f Field) *float64 {
	switch f {
	case FieldAdjustedPoints:
		return p.AdjustedPoints
	case FieldProjected:
		return p.ProjPoints
	case FieldADP:
		return p.ADP
	case FieldPositionalRank:
		return p.PositionalRank
	case FieldAuctionValue:
		return p.AuctionValue
	case FieldOverallRank:
		return p.OverallRank
	}
	return nil
}

// SetNumber stores v under f. Non-numeric fields are ignored.
func (p *PlayerRecord) SetNumber(f Field, v *float64) {
	switch f {
	case FieldAdjustedPoints:
		p.AdjustedPoints = v
	case FieldProjected:
		p.ProjPoints = v
	case FieldADP:
		p.ADP = v
	case FieldPositionalRank:
		p.PositionalRank = v
	case FieldAuctionValue:
		p.AuctionValue = v
	case FieldOverallRank:
		p.OverallRank = v
	}
}

// IsNumeric reports whether f holds a number.
func IsNumeric(f Field) bool {
	switch f {
	case FieldFullName, FieldPosition, FieldTeam:
		return false
	}
	return true
}

// Float returns a pointer to v, for building records in code.
func Float(v float64) *float64 { return &v }
