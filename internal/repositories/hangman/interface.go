package hangman

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/homebot/internal/repositories/hangman Repository

import (
	"context"

	"github.com/KirkDiggler/homebot/internal/models"
)

// Repository defines the interface for hangman game persistence
type Repository interface {
	// SaveGame persists a game and indexes it under its guild
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// UpdateGame atomically applies an update to an unfinished game and returns the saved game
	UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.HangmanGame, error)

	// GetActiveGame retrieves the newest unfinished game for a guild created after a cutoff
	GetActiveGame(ctx context.Context, input *GetActiveGameInput) (*models.HangmanGame, error)
}
