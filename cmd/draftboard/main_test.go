package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"draftboard/internal/model"
	"draftboard/internal/schema"
	"draftboard/internal/session"
	"draftboard/internal/source"
)

const board = `Full Name,Position,Team Abbrev,Adjusted Projected Points,Rank
Josh Allen,QB,BUF,300,2
Keenan Allen,WR,CHI,150,5
Bijan Robinson,RB,ATL,280,1
`

func newSession(t *testing.T) *session.Manager {
	t.Helper()
	tbl, err := source.ReadCSV(strings.NewReader(board))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	res, err := loadBoard(context.Background(), &source.MockSource{Table: tbl}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	mgr, err := session.NewManager(res, nil, session.Options{})
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return mgr
}

func TestLoadBoard_Errors(t *testing.T) {
	fetchErr := errors.New("connection refused")
	if _, err := loadBoard(context.Background(), &source.MockSource{Err: fetchErr}, nil); !errors.Is(err, fetchErr) {
		t.Errorf("expected fetch error, got %v", err)
	}
	empty := &source.MockSource{Table: schema.Table{Headers: []string{"Name"}}}
	if _, err := loadBoard(context.Background(), empty, nil); !errors.Is(err, schema.ErrLoad) {
		t.Errorf("expected ErrLoad, got %v", err)
	}
}

func TestLoadBoard_ExtraAliases(t *testing.T) {
	src := &source.MockSource{Table: schema.Table{
		Headers: []string{"Name", "FPTS"},
		Rows:    []map[string]string{{"Name": "A", "FPTS": "10"}},
	}}
	res, err := loadBoard(context.Background(), src, map[model.Field][]string{model.FieldProjected: {"fpts"}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Key.Points != model.FieldProjected {
		t.Errorf("expected projected points key, got %q", res.Key.Points)
	}
}

func TestRun_QuitsOnCommand(t *testing.T) {
	mgr := newSession(t)
	var out bytes.Buffer
	run(context.Background(), mgr, strings.NewReader("allen\n1\nquit\nbijan\n"), &out)

	got := out.String()
	if !strings.Contains(got, "Multiple matches") || !strings.Contains(got, "Removed from available: Josh Allen (QB, BUF)") {
		t.Errorf("unexpected output:\n%s", got)
	}
	if !strings.HasSuffix(got, "Bye!\n") {
		t.Errorf("expected to end on quit, got:\n%s", got)
	}
	if len(mgr.Available()) != 2 {
		t.Errorf("commands after quit must not run, available=%d", len(mgr.Available()))
	}
}

func TestRun_EOF(t *testing.T) {
	mgr := newSession(t)
	var out bytes.Buffer
	run(context.Background(), mgr, strings.NewReader("undo\n"), &out)
	if !strings.Contains(out.String(), "Nothing to undo.") || !strings.HasSuffix(out.String(), "Bye!\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRun_Cancelled(t *testing.T) {
	mgr := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	r, w := io.Pipe()
	defer w.Close()
	run(ctx, mgr, r, &out)
	if !strings.HasSuffix(out.String(), "Bye!\n") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
