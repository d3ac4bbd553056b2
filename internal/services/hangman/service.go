package hangman

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/homebot/internal/common/clock"
	"github.com/KirkDiggler/homebot/internal/common/uuid"
	"github.com/KirkDiggler/homebot/internal/hangman"
	"github.com/KirkDiggler/homebot/internal/models"
	hangmanRepo "github.com/KirkDiggler/homebot/internal/repositories/hangman"
)

// service implements the Service interface
type service struct {
	gameTTL       time.Duration
	gameRepo      hangmanRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	picker        hangman.Picker
	logger        *slog.Logger
}

// New creates a new hangman service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	gameTTL := cfg.GameTTL
	if gameTTL <= 0 {
		gameTTL = DefaultGameTTL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		gameTTL:       gameTTL,
		gameRepo:      cfg.GameRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		picker:        cfg.Picker,
		logger:        logger,
	}, nil
}

// StartGame starts a game in a guild unless one is already active
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	if strings.TrimSpace(input.Phrase) == "" {
		return &StartGameOutput{Message: MessageEmptyPhrase, Invalid: true}, nil
	}

	if input.NumGuesses != nil && *input.NumGuesses < 1 {
		return &StartGameOutput{Message: MessageGuessLimit, Invalid: true}, nil
	}

	if err := hangman.Validate(input.Phrase); err != nil {
		return &StartGameOutput{Message: err.Error(), Invalid: true}, nil
	}

	active, err := s.FindActiveGame(ctx, &FindActiveGameInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	if active.Game != nil {
		return &StartGameOutput{Message: MessageGameActive}, nil
	}

	game := hangman.NewGame(
		s.uuidGenerator.NewUUID(),
		input.GuildID,
		input.UserID,
		input.Phrase,
		input.NumGuesses,
		s.clock.Now(),
	)

	if err := s.gameRepo.SaveGame(ctx, &hangmanRepo.SaveGameInput{
		Game: game,
	}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	s.logger.InfoContext(ctx, "hangman game started",
		"game_id", game.ID,
		"guild_id", game.GuildID,
		"user_id", game.UserID,
	)

	return &StartGameOutput{
		Success: true,
		Message: hangman.Render(game, s.picker),
		Game:    game,
	}, nil
}

// Guess applies guessed letters to the guild's active game
func (s *service) Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	if strings.TrimSpace(input.Letters) == "" {
		return &GuessOutput{Message: MessageEmptyGuess, Invalid: true}, nil
	}

	if err := hangman.Validate(input.Letters); err != nil {
		return &GuessOutput{Message: err.Error(), Invalid: true}, nil
	}

	active, err := s.FindActiveGame(ctx, &FindActiveGameInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	if active.Game == nil {
		return &GuessOutput{Message: MessageNoActiveGame}, nil
	}

	// The guess is applied to a fresh read inside the transaction
	game, err := s.gameRepo.UpdateGame(ctx, &hangmanRepo.UpdateGameInput{
		GameID: active.Game.ID,
		Update: func(game *models.HangmanGame) error {
			hangman.Guess(game, input.Letters)
			return nil
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, hangmanRepo.ErrGameOver), errors.Is(err, hangmanRepo.ErrGameNotFound):
			return &GuessOutput{Message: MessageNoActiveGame}, nil
		case errors.Is(err, hangmanRepo.ErrContention):
			return nil, ErrBusy
		}
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.GameOver {
		s.logger.InfoContext(ctx, "hangman game over",
			"game_id", game.ID,
			"guild_id", game.GuildID,
			"solved", hangman.Solved(game),
		)
	}

	return &GuessOutput{
		Success: true,
		Message: hangman.Render(game, s.picker),
		Game:    game,
	}, nil
}

// GetBoard renders the guild's active game
func (s *service) GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	active, err := s.FindActiveGame(ctx, &FindActiveGameInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	game := active.Game
	if game == nil {
		return &GetBoardOutput{Message: MessageNoActiveGame}, nil
	}

	return &GetBoardOutput{
		Success:   true,
		Message:   hangman.Render(game, s.picker),
		Game:      game,
		ExpiresAt: game.CreatedAt.Add(s.gameTTL),
	}, nil
}

// FindActiveGame returns the newest unfinished game created within the TTL.
// Expired games are never touched; they simply stop matching.
func (s *service) FindActiveGame(ctx context.Context, input *FindActiveGameInput) (*FindActiveGameOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	game, err := s.gameRepo.GetActiveGame(ctx, &hangmanRepo.GetActiveGameInput{
		GuildID:      input.GuildID,
		CreatedAfter: s.clock.Now().Add(-s.gameTTL),
	})
	if err != nil {
		if errors.Is(err, hangmanRepo.ErrGameNotFound) {
			return &FindActiveGameOutput{}, nil
		}
		return nil, fmt.Errorf("failed to find active game: %w", err)
	}

	return &FindActiveGameOutput{
		Game: game,
	}, nil
}
