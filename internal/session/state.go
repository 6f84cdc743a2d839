package session

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"draftboard/internal/board"
	"draftboard/internal/model"
)

// SavedRemoval is one persisted undo-log entry.
type SavedRemoval struct {
	Seq      int64  `json:"seq"`
	Index    int    `json:"index"`
	FullName string `json:"full_name"`
}

// State is the resumable part of a session.
type State struct {
	Fingerprint string         `json:"fingerprint"`
	SessionID   string         `json:"session_id"`
	Removals    []SavedRemoval `json:"removals"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// LoadState reads a session state file. Returns a zero state if the file doesn't exist.
func LoadState(filePath string) (*State, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveState writes the session state to a JSON file.
func SaveState(filePath string, state *State) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0o644)
}

// Fingerprint identifies a loaded board by its player names in load order.
func Fingerprint(records []model.PlayerRecord) string {
	h := sha256.New()
	for _, r := range records {
		h.Write([]byte(r.FullName))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func snapshot(fingerprint, sessionID string, history []board.Removal) *State {
	st := &State{
		Fingerprint: fingerprint,
		SessionID:   sessionID,
		Removals:    make([]SavedRemoval, 0, len(history)),
	}
	for _, h := range history {
		st.Removals = append(st.Removals, SavedRemoval{Seq: h.Seq, Index: h.Index, FullName: h.Record.FullName})
	}
	return st
}
