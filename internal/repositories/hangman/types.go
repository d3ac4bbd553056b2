package hangman

import (
	"time"

	"github.com/KirkDiggler/homebot/internal/models"
)

// SaveGameInput contains parameters for saving a game
type SaveGameInput struct {
	Game *models.HangmanGame
}

// UpdateGameInput contains parameters for updating a stored game
type UpdateGameInput struct {
	GameID string

	// Update mutates the freshly read game; it may run more than once
	Update func(game *models.HangmanGame) error
}

// GetActiveGameInput contains parameters for finding a guild's active game
type GetActiveGameInput struct {
	GuildID string

	// CreatedAfter excludes games created at or before this instant
	CreatedAfter time.Time
}
