package session

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"draftboard/internal/board"
	"draftboard/internal/model"
	"draftboard/internal/notifier"
	"draftboard/internal/resolver"
)

// Input channels. Each keeps its own pending disambiguation.
const (
	ChannelTerminal = "terminal"
	ChannelTelegram = "telegram"
)

// Execute runs one terminal command to completion and returns the reply.
// quit is true when the user asked to end the session.
func (m *Manager) Execute(input string) (reply string, quit bool) {
	return m.execute(ChannelTerminal, input)
}

func (m *Manager) execute(channel, input string) (reply string, quit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cmd := strings.TrimSpace(input)
	if cmd == "" {
		return "", false
	}

	if _, ok := m.pending[channel]; ok {
		if n, err := strconv.Atoi(cmd); err == nil {
			return m.choose(channel, n), false
		}
		delete(m.pending, channel)
	}

	verb, arg := splitCommand(cmd)
	switch {
	case model.IsPosition(cmd):
		return m.positionView(cmd), false
	case verb == "TOP" && arg == "":
		return m.overallView(), false
	case verb == "LIST":
		if arg == "" {
			return "Usage: list <pos>", false
		}
		return m.positionView(arg), false
	case verb == "UNDO":
		return m.undoCommand(arg), false
	case verb == "REMOVE" || verb == "RM":
		if arg == "" {
			return "Usage: remove <name>", false
		}
		return m.removeByName(channel, arg), false
	case verb == "SAVE":
		if arg == "" {
			return "Usage: save <file.csv>", false
		}
		return m.saveCommand(arg), false
	case verb == "HISTORY" && arg == "":
		return m.historyView(), false
	case (verb == "HELP" || verb == "H" || verb == "?") && arg == "":
		return notifier.HelpText, false
	case (verb == "QUIT" || verb == "EXIT" || verb == "Q") && arg == "":
		return "Bye!", true
	}
	return m.removeByName(channel, cmd), false
}

// HandleCommand serves remote channels, which cannot end the session.
func (m *Manager) HandleCommand(input string) string {
	verb, arg := splitCommand(strings.TrimSpace(input))
	if arg == "" && (verb == "QUIT" || verb == "EXIT" || verb == "Q") {
		return "quit is only available from the terminal"
	}
	reply, _ := m.execute(ChannelTelegram, input)
	return reply
}

// Overview renders the default top overall view.
func (m *Manager) Overview() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overallView()
}

func splitCommand(cmd string) (verb, arg string) {
	parts := strings.SplitN(cmd, " ", 2)
	verb = strings.ToUpper(parts[0])
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return verb, arg
}

func (m *Manager) removeByName(channel, query string) string {
	res := resolver.Resolve(m.board.Available(), query)
	if err := res.Err(); err != nil {
		var amb *resolver.AmbiguousError
		if errors.As(err, &amb) {
			m.pending[channel] = &pending{query: query, candidates: amb.Candidates}
			return notifier.FormatCandidates(query, amb.Candidates, m.candidateFields())
		}
		if errors.Is(err, resolver.ErrPlayerNotFound) {
			return fmt.Sprintf("No available player matched '%s'. Try typing more of the name.", query)
		}
		return fmt.Sprintf("Remove failed: %v", err)
	}
	return m.removeIndex(res.Player.Index, query)
}

func (m *Manager) choose(channel string, n int) string {
	p := m.pending[channel]
	if n < 1 || n > len(p.candidates) {
		return fmt.Sprintf("Out of range. Please select a number from 1 to %d.", len(p.candidates))
	}
	delete(m.pending, channel)
	return m.removeIndex(p.candidates[n-1].Index, p.query)
}

func (m *Manager) removeIndex(index int, query string) string {
	rec, err := m.remove(index, query)
	if err != nil {
		if errors.Is(err, board.ErrNotFound) {
			log.Printf("[WARN] stale removal: %v", err)
			return "That player is no longer available. Try the name again."
		}
		return fmt.Sprintf("Remove failed: %v", err)
	}
	return "Removed from available: " + notifier.FormatPlayer(rec) + "\n\n" + m.overallView()
}

func (m *Manager) undoCommand(arg string) string {
	count := 1
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return "Usage: undo [n]"
		}
		count = n
	}

	restored := m.undo(count)
	var b strings.Builder
	if len(restored) == 0 {
		b.WriteString("Nothing to undo.")
	}
	for i, rec := range restored {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Restored: " + notifier.FormatPlayer(rec))
	}
	b.WriteString("\n\n" + m.overallView())
	return b.String()
}

func (m *Manager) saveCommand(path string) string {
	if err := m.saveCSV(path); err != nil {
		log.Printf("[ERROR] save board: %v", err)
		return fmt.Sprintf("Save failed: %v", err)
	}
	return "Saved remaining board to " + path
}

func (m *Manager) historyView() string {
	hist := m.board.History()
	if len(hist) == 0 {
		return "No players removed yet."
	}
	var b strings.Builder
	b.WriteString("Removed players (oldest first):")
	for i, h := range hist {
		fmt.Fprintf(&b, "\n%3d. %s", i+1, notifier.FormatPlayer(h.Record))
	}
	return b.String()
}

func (m *Manager) overallView() string {
	n := m.opts.TopOverall
	top := m.engine.TopOverall(m.board.Available(), n)
	if len(top) == 0 {
		return "No players available"
	}
	return notifier.FormatTable(fmt.Sprintf("Top %d available:", n), top, m.viewFields())
}

func (m *Manager) positionView(pos string) string {
	pos = strings.ToUpper(strings.TrimSpace(pos))
	n := m.opts.TopPosition
	top := m.engine.TopByPosition(m.board.Available(), pos, n)
	if len(top) == 0 {
		return "No players available at " + pos
	}
	return notifier.FormatTable(fmt.Sprintf("Top %d available (%s):", n, pos), top, m.viewFields())
}

func (m *Manager) viewFields() []model.Field {
	fields := []model.Field{model.FieldFullName, model.FieldPosition, model.FieldTeam}
	if m.key.HasPoints() {
		fields = append(fields, m.key.Points)
	}
	return m.present(fields, model.FieldADP, model.FieldPositionalRank, model.FieldOverallRank)
}

func (m *Manager) candidateFields() []model.Field {
	return m.present([]model.Field{model.FieldFullName},
		model.FieldPosition, model.FieldTeam, model.FieldAdjustedPoints,
		model.FieldProjected, model.FieldADP, model.FieldPositionalRank)
}

// present appends the fields that were loaded from the input to base.
func (m *Manager) present(base []model.Field, fields ...model.Field) []model.Field {
	out := make([]model.Field, 0, len(base)+len(fields))
	for _, f := range base {
		if _, ok := m.columns[f]; ok {
			out = append(out, f)
		}
	}
	for _, f := range fields {
		if _, ok := m.columns[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
