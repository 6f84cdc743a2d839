package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"draftboard/internal/model"
)

// DefaultSource is the board file used when nothing else is configured.
const DefaultSource = "custom_ranked_draftboard.csv"

// Config holds all application configuration.
type Config struct {
	Board struct {
		Source       string                   `yaml:"source"`
		ExtraAliases map[model.Field][]string `yaml:"extra_aliases"`
	} `yaml:"board"`
	Display struct {
		TopOverall  int `yaml:"top_overall"`
		TopPosition int `yaml:"top_position"`
	} `yaml:"display"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Session struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"session"`
	Autosave struct {
		Cron string `yaml:"cron"`
		Path string `yaml:"path"`
	} `yaml:"autosave"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DRAFTBOARD_SOURCE"); v != "" {
		cfg.Board.Source = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("STATE_FILE"); v != "" {
		cfg.Session.StateFile = v
	}
	if v := os.Getenv("AUTOSAVE_CRON"); v != "" {
		cfg.Autosave.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Board.Source == "" {
		cfg.Board.Source = DefaultSource
	}
	if cfg.Display.TopOverall == 0 {
		cfg.Display.TopOverall = 3
	}
	if cfg.Display.TopPosition == 0 {
		cfg.Display.TopPosition = 5
	}
	if cfg.Autosave.Cron != "" && cfg.Autosave.Path == "" {
		cfg.Autosave.Path = "data/autosave.csv"
	}

	return cfg, nil
}

// TelegramEnabled reports whether the remote command channel is configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Board.Source == "" {
		return fmt.Errorf("board.source is required")
	}
	if c.Display.TopOverall < 0 || c.Display.TopPosition < 0 {
		return fmt.Errorf("display counts must be positive")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	for f := range c.Board.ExtraAliases {
		if !known(f) {
			return fmt.Errorf("board.extra_aliases: unknown field %q", f)
		}
	}
	return nil
}

func known(f model.Field) bool {
	for _, k := range model.Fields {
		if k == f {
			return true
		}
	}
	return false
}
