package hangman

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/homebot/internal/common/clock"
	"github.com/KirkDiggler/homebot/internal/common/uuid"
	"github.com/KirkDiggler/homebot/internal/hangman"
	"github.com/KirkDiggler/homebot/internal/models"
	hangmanRepo "github.com/KirkDiggler/homebot/internal/repositories/hangman"
)

// DefaultGameTTL is how long a game stays playable after it starts
const DefaultGameTTL = 8 * time.Hour

// Config holds configuration for the hangman service
type Config struct {
	// GameTTL is how long a game stays active; zero means DefaultGameTTL
	GameTTL time.Duration

	// Repository dependencies
	GameRepo hangmanRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Picker chooses the perfect game line; nil omits it
	Picker hangman.Picker

	// Logger defaults to slog.Default
	Logger *slog.Logger
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// GuildID is the Discord guild the game is played in
	GuildID string

	// UserID is the Discord user who set the phrase
	UserID string

	// Phrase is the hidden phrase
	Phrase string

	// NumGuesses caps incorrect guesses; nil means unlimited
	NumGuesses *int
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	// Success indicates a new game was created
	Success bool

	// Message is shown to the user; the rendered board on success
	Message string

	// Invalid marks a phrase rejected before any lookup
	Invalid bool

	// Game is the new game when Success is set
	Game *models.HangmanGame
}

// GuessInput contains parameters for guessing letters
type GuessInput struct {
	GuildID string
	Letters string
}

// GuessOutput contains the result of a guess
type GuessOutput struct {
	// Success indicates the guess was applied
	Success bool

	// Message is the rendered board, or why the guess was rejected
	Message string

	// Invalid marks letters rejected before any lookup
	Invalid bool

	// Game is the updated game when Success is set
	Game *models.HangmanGame
}

// GetBoardInput contains parameters for showing the board
type GetBoardInput struct {
	GuildID string
}

// GetBoardOutput contains the rendered board of the active game
type GetBoardOutput struct {
	Success bool
	Message string
	Game    *models.HangmanGame

	// ExpiresAt is when the game stops being active
	ExpiresAt time.Time
}

// FindActiveGameInput contains parameters for finding the active game
type FindActiveGameInput struct {
	GuildID string
}

// FindActiveGameOutput contains the active game, or nil when there is none
type FindActiveGameOutput struct {
	Game *models.HangmanGame
}
