package hangman

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/homebot/internal/services/hangman Service

import "context"

// Service defines the interface for hangman operations
type Service interface {
	// StartGame starts a game in a guild unless one is already active
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// Guess applies guessed letters to the guild's active game
	Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error)

	// GetBoard renders the guild's active game
	GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error)

	// FindActiveGame returns the guild's active game, if any
	FindActiveGame(ctx context.Context, input *FindActiveGameInput) (*FindActiveGameOutput, error)
}
