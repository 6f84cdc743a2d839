package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists draft history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS draft_sessions (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id  TEXT NOT NULL,
			timestamp   INTEGER NOT NULL,
			source      TEXT,
			players     INTEGER,
			skipped     INTEGER,
			points_key  TEXT,
			resumed     INTEGER
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sessions_sid ON draft_sessions(session_id)`,

		`CREATE TABLE IF NOT EXISTS pick_history (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id  TEXT NOT NULL,
			timestamp   INTEGER NOT NULL,
			seq         INTEGER,
			action      TEXT,
			row_index   INTEGER,
			full_name   TEXT,
			position    TEXT,
			team        TEXT,
			query       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_picks_session ON pick_history(session_id, id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSession(evt *SessionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO draft_sessions
		(session_id, timestamp, source, players, skipped, points_key, resumed)
		VALUES (?,?,?,?,?,?,?)`,
		evt.SessionID, time.Now().Unix(), evt.Source,
		evt.Players, evt.Skipped, evt.PointsKey, evt.Resumed,
	)
	return err
}

func (r *SQLiteRecorder) RecordPick(evt *PickEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO pick_history
		(session_id, timestamp, seq, action, row_index, full_name, position, team, query)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		evt.SessionID, time.Now().Unix(), evt.Seq, evt.Action,
		evt.Index, evt.FullName, evt.Position, evt.Team, evt.Query,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
