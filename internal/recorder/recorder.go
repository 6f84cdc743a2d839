package recorder

// Pick actions.
const (
	ActionRemove = "REMOVE"
	ActionUndo   = "UNDO"
)

// SessionEvent describes a loaded board at session start.
type SessionEvent struct {
	SessionID string
	Source    string
	Players   int
	Skipped   int
	PointsKey string // "" when the board has no points column
	Resumed   int    // removals replayed from a saved state
}

// PickEvent records one removal or restore.
type PickEvent struct {
	SessionID string
	Seq       int64
	Action    string // ActionRemove or ActionUndo
	Index     int
	FullName  string
	Position  string
	Team      string
	Query     string // user text that led to the pick, empty for undo
}

// Recorder persists draft history for later review.
type Recorder interface {
	RecordSession(evt *SessionEvent) error
	RecordPick(evt *PickEvent) error
	Close() error
}
