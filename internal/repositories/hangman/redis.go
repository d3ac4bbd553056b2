package hangman

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/homebot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix  = "hangman:game:"
	guildKeyPrefix = "hangman:guild:" // Sorted set of game IDs scored by creation time

	// maxTxRetries bounds optimistic transaction retries per update
	maxTxRetries = 10
)

var (
	// ErrGameNotFound is returned when a game is not found
	ErrGameNotFound = errors.New("hangman game not found")

	// ErrGameOver is returned when an update targets a finished game
	ErrGameOver = errors.New("hangman game is over")

	// ErrContention is returned when the game kept changing under a transaction
	ErrContention = errors.New("hangman game changed too often, try again")
)

// Config holds configuration for the Redis hangman repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed hangman repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" || input.Game.GuildID == "" {
		return errors.New("game ID and guild ID cannot be empty")
	}

	// Marshal the game to JSON
	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	// Write the game and its guild index together
	pipe := r.client.TxPipeline()

	pipe.Set(ctx, gameKeyPrefix+input.Game.ID, gameJSON, 0)
	pipe.ZAdd(ctx, guildKeyPrefix+input.Game.GuildID, redis.Z{
		Score:  float64(input.Game.CreatedAt.UnixMilli()),
		Member: input.Game.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// UpdateGame applies Update to the stored game under WATCH and saves the
// result. Finished games are never rewritten.
func (r *redisRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) (*models.HangmanGame, error) {
	if input == nil || input.GameID == "" || input.Update == nil {
		return nil, errors.New("input, game ID and update cannot be empty")
	}

	gameKey := gameKeyPrefix + input.GameID

	var updated *models.HangmanGame
	txf := func(tx *redis.Tx) error {
		game, err := r.readGame(ctx, tx, input.GameID)
		if err != nil {
			return err
		}

		if game.GameOver {
			return ErrGameOver
		}

		if err := input.Update(game); err != nil {
			return err
		}

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, gameKey, gameJSON, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = game
		return nil
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, gameKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	return nil, ErrContention
}

// readGame loads a single game
func (r *redisRepository) readGame(ctx context.Context, cmd redis.Cmdable, gameID string) (*models.HangmanGame, error) {
	gameJSON, err := cmd.Get(ctx, gameKeyPrefix+gameID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.HangmanGame
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// GetActiveGame returns the most recently created game for the guild that is
// not over and was created after the cutoff
func (r *redisRepository) GetActiveGame(ctx context.Context, input *GetActiveGameInput) (*models.HangmanGame, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	// Only games created strictly after the cutoff are candidates
	gameIDs, err := r.client.ZRevRangeByScore(ctx, guildKeyPrefix+input.GuildID, &redis.ZRangeBy{
		Max: "+inf",
		Min: "(" + strconv.FormatInt(input.CreatedAfter.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get guild games: %w", err)
	}

	games, err := r.getGames(ctx, gameIDs)
	if err != nil {
		return nil, err
	}

	for _, game := range games {
		if !game.GameOver && game.CreatedAt.After(input.CreatedAfter) {
			return game, nil
		}
	}

	return nil, ErrGameNotFound
}

// getGames loads games in one pipeline and orders them newest first
func (r *redisRepository) getGames(ctx context.Context, gameIDs []string) ([]*models.HangmanGame, error) {
	if len(gameIDs) == 0 {
		return []*models.HangmanGame{}, nil
	}

	pipe := r.client.Pipeline()
	gameCommands := make([]*redis.StringCmd, len(gameIDs))
	for i, gameID := range gameIDs {
		gameCommands[i] = pipe.Get(ctx, gameKeyPrefix+gameID)
	}

	// A missing key surfaces as redis.Nil on Exec; handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	games := make([]*models.HangmanGame, 0, len(gameIDs))
	for i, cmd := range gameCommands {
		gameJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Game was deleted between reading the index and fetching the game
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameIDs[i], err)
		}

		var game models.HangmanGame
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameIDs[i], err)
		}

		games = append(games, &game)
	}

	// Scores are millisecond precision; break ties on the full timestamp
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].CreatedAt.After(games[j].CreatedAt)
	})

	return games, nil
}
