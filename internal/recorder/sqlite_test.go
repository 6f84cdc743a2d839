package recorder

import (
	"path/filepath"
	"testing"
)

func TestSQLiteRecorder_Picks(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "draft.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rec.Close()

	if err := rec.RecordSession(&SessionEvent{SessionID: "s1", Source: "file:board.csv", Players: 10, PointsKey: "adjusted_points"}); err != nil {
		t.Fatalf("record session: %v", err)
	}
	events := []PickEvent{
		{SessionID: "s1", Seq: 1, Action: ActionRemove, Index: 3, FullName: "Josh Allen", Position: "QB", Team: "BUF", Query: "allen"},
		{SessionID: "s2", Seq: 1, Action: ActionRemove, Index: 0, FullName: "Other"},
		{SessionID: "s1", Seq: 1, Action: ActionUndo, Index: 3, FullName: "Josh Allen", Position: "QB", Team: "BUF"},
	}
	for i := range events {
		if err := rec.RecordPick(&events[i]); err != nil {
			t.Fatalf("record pick %d: %v", i, err)
		}
	}

	got, err := picks(rec, "s1")
	if err != nil {
		t.Fatalf("picks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(got))
	}
	if got[0] != events[0] || got[1] != events[2] {
		t.Errorf("unexpected picks: %+v", got)
	}
}

func TestSQLiteRecorder_DuplicateSession(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "draft.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rec.Close()

	if err := rec.RecordSession(&SessionEvent{SessionID: "dup"}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := rec.RecordSession(&SessionEvent{SessionID: "dup"}); err == nil {
		t.Error("expected unique constraint violation")
	}
}

func picks(r *SQLiteRecorder, sessionID string) ([]PickEvent, error) {
	rows, err := r.db.Query(`SELECT session_id, seq, action, row_index, full_name, position, team, query
		FROM pick_history WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PickEvent
	for rows.Next() {
		var p PickEvent
		if err := rows.Scan(&p.SessionID, &p.Seq, &p.Action, &p.Index, &p.FullName, &p.Position, &p.Team, &p.Query); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
