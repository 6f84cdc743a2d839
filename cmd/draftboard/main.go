package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"draftboard/internal/config"
	"draftboard/internal/model"
	"draftboard/internal/notifier"
	"draftboard/internal/recorder"
	"draftboard/internal/scheduler"
	"draftboard/internal/schema"
	"draftboard/internal/session"
	"draftboard/internal/source"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if len(os.Args) > 1 {
		cfg.Board.Source = os.Args[1]
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load board
	src := source.New(cfg.Board.Source, cfg.Proxy)
	res, err := loadBoard(ctx, src, cfg.Board.ExtraAliases)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	if res.Skipped > 0 {
		log.Printf("[WARN] skipped %d rows without a player name", res.Skipped)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	defer rec.Close()

	mgr, err := session.NewManager(res, rec, session.Options{
		SessionID:   uuid.NewString(),
		Source:      src.Name(),
		TopOverall:  cfg.Display.TopOverall,
		TopPosition: cfg.Display.TopPosition,
		StateFile:   cfg.Session.StateFile,
	})
	if err != nil {
		log.Fatalf("[FATAL] init session: %v", err)
	}
	if !mgr.Key().HasPoints() {
		log.Println("[WARN] no adjusted or projected points column, points views will be empty")
	}

	if cfg.Autosave.Cron != "" {
		sched := scheduler.NewScheduler(mgr)
		if err := sched.RegisterAutosave(cfg.Autosave.Cron, cfg.Autosave.Path); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	if cfg.TelegramEnabled() {
		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		go tn.StartPolling(ctx, mgr.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	fmt.Println("Loaded players:", len(mgr.Available()))
	fmt.Println(notifier.HelpText)
	fmt.Println()
	fmt.Println(mgr.Overview())

	run(ctx, mgr, os.Stdin, os.Stdout)
}

// loadBoard fetches the raw table from src and normalizes it.
func loadBoard(ctx context.Context, src source.Source, extra map[model.Field][]string) (*schema.Result, error) {
	tbl, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("read board from %s: %w", src.Name(), err)
	}
	return schema.NewNormalizer(extra).Normalize(tbl)
}

// run feeds stdin lines to the session until quit, EOF or a signal.
func run(ctx context.Context, mgr *session.Manager, in io.Reader, out io.Writer) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	for {
		fmt.Fprint(out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nBye!")
			return
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out, "\nBye!")
				return
			}
			reply, quit := mgr.Execute(line)
			if reply != "" {
				fmt.Fprintln(out, reply)
			}
			if quit {
				return
			}
		}
	}
}
