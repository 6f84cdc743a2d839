package scheduler

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"
)

// Saver exports the remaining board to a file.
type Saver interface {
	SaveTo(path string) error
}

// Scheduler runs periodic background jobs for a session.
type Scheduler struct {
	Cron  *cron.Cron
	Saver Saver
}

// NewScheduler creates a Scheduler. Specs accept an optional seconds field and descriptors
// such as "@every 1m".
func NewScheduler(saver Saver) *Scheduler {
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return &Scheduler{
		Cron:  cron.New(cron.WithParser(parser)),
		Saver: saver,
	}
}

// RegisterAutosave exports the remaining board to path on every tick of spec.
func (s *Scheduler) RegisterAutosave(spec, path string) error {
	if _, err := s.Cron.AddFunc(spec, func() { s.autosave(path) }); err != nil {
		return fmt.Errorf("register autosave task: %w", err)
	}
	log.Printf("[INFO] autosave registered: %s -> %s", spec, path)
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) autosave(path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("[ERROR] autosave: %v", err)
		return
	}
	tmp := path + ".tmp"
	if err := s.Saver.SaveTo(tmp); err != nil {
		log.Printf("[ERROR] autosave: %v", err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		log.Printf("[ERROR] autosave rename: %v", err)
	}
}
