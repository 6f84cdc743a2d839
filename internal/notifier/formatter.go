package notifier

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"draftboard/internal/model"
)

var labels = map[model.Field]string{
	model.FieldFullName:       "Player",
	model.FieldPosition:       "Pos",
	model.FieldTeam:           "Team",
	model.FieldAdjustedPoints: "AdjPts",
	model.FieldProjected:      "ProjPts",
	model.FieldADP:            "ADP",
	model.FieldPositionalRank: "PosRank",
	model.FieldAuctionValue:   "Auc$",
	model.FieldOverallRank:    "Rank",
}

// FormatPlayer renders "Name (POS, TEAM)".
func FormatPlayer(r model.PlayerRecord) string {
	parts := make([]string, 0, 2)
	if r.Position != "" {
		parts = append(parts, r.Position)
	}
	if r.Team != "" {
		parts = append(parts, r.Team)
	}
	if len(parts) == 0 {
		return r.FullName
	}
	return fmt.Sprintf("%s (%s)", r.FullName, strings.Join(parts, ", "))
}

// FormatTable renders players as an aligned table with a title line.
func FormatTable(title string, recs []model.PlayerRecord, fields []model.Field) string {
	return formatTable(title, recs, fields, false)
}

// FormatCandidates renders an ambiguous match as a 1-based numbered list.
func FormatCandidates(query string, recs []model.PlayerRecord, fields []model.Field) string {
	title := fmt.Sprintf("Multiple matches for %q. Enter the number of the player to remove:", query)
	return formatTable(title, recs, fields, true)
}

func formatTable(title string, recs []model.PlayerRecord, fields []model.Field, numbered bool) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	header := make([]string, 0, len(fields)+1)
	if numbered {
		header = append(header, "#")
	}
	for _, f := range fields {
		header = append(header, labels[f])
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i := range recs {
		row := make([]string, 0, len(fields)+1)
		if numbered {
			row = append(row, strconv.Itoa(i+1))
		}
		for _, f := range fields {
			row = append(row, value(&recs[i], f))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
	return strings.TrimRight(b.String(), "\n")
}

func value(r *model.PlayerRecord, f model.Field) string {
	switch f {
	case model.FieldFullName:
		return r.FullName
	case model.FieldPosition:
		return r.Position
	case model.FieldTeam:
		return r.Team
	}
	if v := r.Number(f); v != nil {
		return strconv.FormatFloat(*v, 'f', -1, 64)
	}
	return "-"
}

// HelpText lists the session commands.
const HelpText = `Commands:
  <name>              -> remove player from available (last name or part/full name)
  remove <name>       -> same as above; explicitly remove by name (alias: rm)
  QB/RB/WR/TE/K/DST   -> show top available at that position
  top                 -> show top available overall
  list <pos>          -> same as typing the position code
  save <file.csv>     -> save remaining board to CSV
  undo [n]            -> restore last removed player(s), default n=1
  history             -> show removed players, oldest first
  help                -> show commands
  quit                -> exit`
