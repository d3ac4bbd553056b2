package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the bot's runtime configuration, read from the environment
type Config struct {
	Discord   DiscordConfig
	Redis     RedisConfig
	SQLite    SQLiteConfig
	Hangman   HangmanConfig
	Todo      TodoConfig
	Checklist ChecklistConfig
	Log       LogConfig

	// MessageTone selects plain or playful error replies
	MessageTone string `env:"MESSAGE_TONE" envDefault:"neutral"`
}

// DiscordConfig holds the bot credentials and command registration scope
type DiscordConfig struct {
	Token         string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID registers slash commands to one guild for development
	GuildID string `env:"GUILD_ID"`

	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`
}

// RedisConfig holds the connection used for hangman and todo state
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// SQLiteConfig holds the database file used for checklists and world clocks
type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" envDefault:"homebot.db"`
}

// HangmanConfig tunes hangman games
type HangmanConfig struct {
	GameTTL time.Duration `env:"HANGMAN_GAME_TTL" envDefault:"8h"`
}

// TodoConfig tunes the todo list
type TodoConfig struct {
	InsertMode string `env:"TODO_INSERT_MODE" envDefault:"positional"`
}

// ChecklistConfig defines when a checklist day starts
type ChecklistConfig struct {
	Timezone     string `env:"CHECKLIST_TIMEZONE" envDefault:"America/Los_Angeles"`
	DayStartHour int    `env:"CHECKLIST_DAY_START_HOUR" envDefault:"4"`
}

// LogConfig selects the log handler
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads .env files, when present, and parses the environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values the environment parser can't
func (c *Config) Validate() error {
	switch c.Todo.InsertMode {
	case "positional", "append":
	default:
		return fmt.Errorf("TODO_INSERT_MODE must be positional or append, got %q", c.Todo.InsertMode)
	}

	if c.Checklist.DayStartHour < 1 || c.Checklist.DayStartHour > 23 {
		return fmt.Errorf("CHECKLIST_DAY_START_HOUR must be between 1 and 23, got %d", c.Checklist.DayStartHour)
	}

	if _, err := time.LoadLocation(c.Checklist.Timezone); err != nil {
		return fmt.Errorf("CHECKLIST_TIMEZONE: %w", err)
	}

	if c.Hangman.GameTTL <= 0 {
		return fmt.Errorf("HANGMAN_GAME_TTL must be positive, got %s", c.Hangman.GameTTL)
	}

	switch c.MessageTone {
	case "neutral", "funny":
	default:
		return fmt.Errorf("MESSAGE_TONE must be neutral or funny, got %q", c.MessageTone)
	}

	return nil
}
