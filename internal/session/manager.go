package session

import (
	"fmt"
	"log"
	"sync"

	"draftboard/internal/board"
	"draftboard/internal/model"
	"draftboard/internal/ranking"
	"draftboard/internal/recorder"
	"draftboard/internal/schema"
	"draftboard/internal/source"
)

// Options configures a Manager.
type Options struct {
	SessionID   string
	Source      string
	TopOverall  int
	TopPosition int
	StateFile   string // empty disables resume
}

// Manager owns the board for one draft session and serialises every command on it.
type Manager struct {
	mu          sync.Mutex
	board       *board.Board
	engine      *ranking.Engine
	columns     map[model.Field]string
	key         model.RankingKey
	rec         recorder.Recorder
	opts        Options
	fingerprint string
	pending     map[string]*pending // keyed by input channel
}

// pending is an ambiguous match waiting for a numeric choice.
type pending struct {
	query      string
	candidates []model.PlayerRecord
}

// NewManager loads the normalized board, replays a matching saved state and records the session.
func NewManager(res *schema.Result, rec recorder.Recorder, opts Options) (*Manager, error) {
	if opts.TopOverall <= 0 {
		opts.TopOverall = 3
	}
	if opts.TopPosition <= 0 {
		opts.TopPosition = 5
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}

	m := &Manager{
		board:       board.Load(res.Records),
		engine:      ranking.NewEngine(res.Key),
		columns:     res.Columns,
		key:         res.Key,
		rec:         rec,
		opts:        opts,
		fingerprint: Fingerprint(res.Records),
		pending:     make(map[string]*pending),
	}

	resumed, err := m.resume()
	if err != nil {
		return nil, fmt.Errorf("resume session: %w", err)
	}

	if err := rec.RecordSession(&recorder.SessionEvent{
		SessionID: opts.SessionID,
		Source:    opts.Source,
		Players:   m.board.Len(),
		Skipped:   res.Skipped,
		PointsKey: string(res.Key.Points),
		Resumed:   resumed,
	}); err != nil {
		log.Printf("[ERROR] record session: %v", err)
	}
	return m, nil
}

// resume replays removals from the state file when it belongs to the same board.
func (m *Manager) resume() (int, error) {
	if m.opts.StateFile == "" {
		return 0, nil
	}
	st, err := LoadState(m.opts.StateFile)
	if err != nil {
		return 0, err
	}
	if st.Fingerprint == "" {
		return 0, nil
	}
	if st.Fingerprint != m.fingerprint {
		log.Printf("[WARN] state file %s belongs to a different board, starting fresh", m.opts.StateFile)
		return 0, nil
	}

	replayed := 0
	for _, r := range st.Removals {
		rec, ok := m.board.Record(r.Index)
		if !ok || rec.FullName != r.FullName {
			log.Printf("[WARN] skipping saved removal %d (%s): not on board", r.Index, r.FullName)
			continue
		}
		if _, err := m.board.RemoveByIndex(r.Index); err != nil {
			log.Printf("[WARN] skipping saved removal %d: %v", r.Index, err)
			continue
		}
		replayed++
	}
	if replayed > 0 {
		log.Printf("[INFO] resumed %d removals from %s", replayed, m.opts.StateFile)
	}
	return replayed, nil
}

// Key returns the active ranking key.
func (m *Manager) Key() model.RankingKey { return m.key }

// Available returns the current available players in load order.
func (m *Manager) Available() []model.PlayerRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.board.Available()
}

// SaveTo exports the remaining board to a CSV file using the loaded header names.
func (m *Manager) SaveTo(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCSV(path)
}

func (m *Manager) saveCSV(path string) error {
	return source.SaveCSV(path, m.columns, m.board.Export())
}

// remove takes a known index off the board, records it and persists state.
func (m *Manager) remove(index int, query string) (model.PlayerRecord, error) {
	rec, err := m.board.RemoveByIndex(index)
	if err != nil {
		return model.PlayerRecord{}, err
	}
	hist := m.board.History()
	m.recordPick(recorder.ActionRemove, hist[len(hist)-1].Seq, rec, query)
	m.saveState()
	return rec, nil
}

// undo restores up to n removals, records each and persists state.
func (m *Manager) undo(n int) []model.PlayerRecord {
	hist := m.board.History()
	restored := m.board.RestoreLast(n)
	for i, rec := range restored {
		m.recordPick(recorder.ActionUndo, hist[len(hist)-1-i].Seq, rec, "")
	}
	if len(restored) > 0 {
		m.saveState()
	}
	return restored
}

func (m *Manager) recordPick(action string, seq int64, rec model.PlayerRecord, query string) {
	if err := m.rec.RecordPick(&recorder.PickEvent{
		SessionID: m.opts.SessionID,
		Seq:       seq,
		Action:    action,
		Index:     rec.Index,
		FullName:  rec.FullName,
		Position:  rec.Position,
		Team:      rec.Team,
		Query:     query,
	}); err != nil {
		log.Printf("[ERROR] record pick: %v", err)
	}
}

func (m *Manager) saveState() {
	if m.opts.StateFile == "" {
		return
	}
	if err := SaveState(m.opts.StateFile, snapshot(m.fingerprint, m.opts.SessionID, m.board.History())); err != nil {
		log.Printf("[ERROR] failed to save session state: %v", err)
	}
}
