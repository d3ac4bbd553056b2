package todo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/homebot/internal/common/uuid"
	"github.com/KirkDiggler/homebot/internal/models"
	"github.com/KirkDiggler/homebot/internal/ordering"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	itemKeyPrefix = "todo:item:"
	listKeyPrefix = "todo:list:" // Sorted set of item IDs scored by position

	// maxTxRetries bounds optimistic transaction retries per operation
	maxTxRetries = 10
)

// Config holds configuration for the Redis todo repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUIDGenerator generates item IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis.
// Each owner's list is a sorted set whose scores are the positions.
type redisRepository struct {
	client        *redis.Client
	uuidGenerator uuid.UUID
}

// NewRedis creates a new Redis-backed todo repository
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

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	return &redisRepository{
		client:        cfg.RedisClient,
		uuidGenerator: uuidGenerator,
	}, nil
}

// AddItem inserts an item at the resolved position
func (r *redisRepository) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	item := &models.ListItem{
		ID:        r.uuidGenerator.NewUUID(),
		OwnerID:   input.OwnerID,
		Content:   input.Content,
		CreatedAt: input.CreatedAt,
	}

	listKey := listKeyPrefix + input.OwnerID
	err := r.transact(ctx, listKey, func(tx *redis.Tx) error {
		count, err := tx.ZCard(ctx, listKey).Result()
		if err != nil {
			return fmt.Errorf("failed to count items: %w", err)
		}

		item.SortOrder = ordering.InsertPosition(int(count), input.Position, input.Mode)

		shifted, err := r.idsInShift(ctx, tx, listKey, ordering.InsertShift(item.SortOrder))
		if err != nil {
			return err
		}

		itemJSON, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal item: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, id := range shifted {
				pipe.ZIncrBy(ctx, listKey, 1, id)
			}
			pipe.Set(ctx, itemKeyPrefix+item.ID, itemJSON, 0)
			pipe.ZAdd(ctx, listKey, redis.Z{
				Score:  float64(item.SortOrder),
				Member: item.ID,
			})
			return nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &AddItemOutput{
		Item: item,
	}, nil
}

// RemoveItem deletes the item at a position and shifts later items up
func (r *redisRepository) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	var removed *models.ListItem
	listKey := listKeyPrefix + input.OwnerID
	err := r.transact(ctx, listKey, func(tx *redis.Tx) error {
		item, err := r.itemAt(ctx, tx, input.OwnerID, input.Position)
		if err != nil {
			return err
		}

		shifted, err := r.idsInShift(ctx, tx, listKey, ordering.RemoveShift(input.Position))
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.ZRem(ctx, listKey, item.ID)
			pipe.Del(ctx, itemKeyPrefix+item.ID)
			for _, id := range shifted {
				pipe.ZIncrBy(ctx, listKey, -1, id)
			}
			return nil
		})
		if err != nil {
			return err
		}

		removed = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RemoveItemOutput{
		Item: removed,
	}, nil
}

// MoveItem moves an item and shifts the items between the two positions
func (r *redisRepository) MoveItem(ctx context.Context, input *MoveItemInput) (*MoveItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	var moved *models.ListItem
	listKey := listKeyPrefix + input.OwnerID
	err := r.transact(ctx, listKey, func(tx *redis.Tx) error {
		count, err := tx.ZCard(ctx, listKey).Result()
		if err != nil {
			return fmt.Errorf("failed to count items: %w", err)
		}

		if !ordering.ValidPosition(int(count), input.OldPosition) || !ordering.ValidPosition(int(count), input.NewPosition) {
			return ErrInvalidPosition
		}

		item, err := r.itemAt(ctx, tx, input.OwnerID, input.OldPosition)
		if err != nil {
			return err
		}

		shift := ordering.MoveShift(input.OldPosition, input.NewPosition)
		shifted, err := r.idsInShift(ctx, tx, listKey, shift)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, id := range shifted {
				pipe.ZIncrBy(ctx, listKey, float64(shift.Delta), id)
			}
			pipe.ZAdd(ctx, listKey, redis.Z{
				Score:  float64(input.NewPosition),
				Member: item.ID,
			})
			return nil
		})
		if err != nil {
			return err
		}

		item.SortOrder = input.NewPosition
		moved = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &MoveItemOutput{
		Item: moved,
	}, nil
}

// EditItem replaces the content of the item at a position
func (r *redisRepository) EditItem(ctx context.Context, input *EditItemInput) (*EditItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	var output *EditItemOutput
	listKey := listKeyPrefix + input.OwnerID
	err := r.transact(ctx, listKey, func(tx *redis.Tx) error {
		item, err := r.itemAt(ctx, tx, input.OwnerID, input.Position)
		if err != nil {
			return err
		}

		previous := item.Content
		item.Content = input.Content

		itemJSON, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal item: %w", err)
		}

		// Writing through MULTI aborts if the item was removed or moved meanwhile
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, itemKeyPrefix+item.ID, itemJSON, 0)
			return nil
		})
		if err != nil {
			return err
		}

		output = &EditItemOutput{
			Item:            item,
			PreviousContent: previous,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetItem retrieves the item at a position
func (r *redisRepository) GetItem(ctx context.Context, input *GetItemInput) (*models.ListItem, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	return r.itemAt(ctx, r.client, input.OwnerID, input.Position)
}

// ListItems retrieves every item for an owner in position order
func (r *redisRepository) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	entries, err := r.client.ZRangeWithScores(ctx, listKeyPrefix+input.OwnerID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get item IDs: %w", err)
	}

	// If there are no items, return an empty slice
	if len(entries) == 0 {
		return &ListItemsOutput{
			Items: []*models.ListItem{},
		}, nil
	}

	// Get all item records using a pipeline
	pipe := r.client.Pipeline()
	itemCommands := make([]*redis.StringCmd, len(entries))
	for i, entry := range entries {
		itemCommands[i] = pipe.Get(ctx, itemKeyPrefix+entry.Member.(string))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	items := make([]*models.ListItem, 0, len(entries))
	for i, cmd := range itemCommands {
		itemJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Item was removed between reading the index and fetching the item
				continue
			}
			return nil, fmt.Errorf("failed to get item: %w", err)
		}

		item, err := decodeItem(itemJSON, int(entries[i].Score))
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return &ListItemsOutput{
		Items: items,
	}, nil
}

// transact runs fn under WATCH on the list key, retrying when another
// writer touched the list before EXEC
func (r *redisRepository) transact(ctx context.Context, listKey string, fn func(tx *redis.Tx) error) error {
	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, fn, listKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return ErrContention
}

// itemAt loads the item stored at a position
func (r *redisRepository) itemAt(ctx context.Context, cmd redis.Cmdable, ownerID string, position int) (*models.ListItem, error) {
	bound := strconv.Itoa(position)
	ids, err := cmd.ZRangeByScore(ctx, listKeyPrefix+ownerID, &redis.ZRangeBy{
		Min: bound,
		Max: bound,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	if len(ids) == 0 {
		return nil, ErrItemNotFound
	}

	itemJSON, err := cmd.Get(ctx, itemKeyPrefix+ids[0]).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return decodeItem(itemJSON, position)
}

// idsInShift returns the IDs whose positions the shift moves
func (r *redisRepository) idsInShift(ctx context.Context, cmd redis.Cmdable, listKey string, shift ordering.Shift) ([]string, error) {
	if shift.Empty() {
		return nil, nil
	}

	upper := strconv.Itoa(shift.To)
	if shift.To >= ordering.Last {
		upper = "+inf"
	}

	ids, err := cmd.ZRangeByScore(ctx, listKey, &redis.ZRangeBy{
		Min: strconv.Itoa(shift.From),
		Max: upper,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get items to shift: %w", err)
	}

	return ids, nil
}

// decodeItem unmarshals an item; the sorted set score is the source of truth for position
func decodeItem(itemJSON string, position int) (*models.ListItem, error) {
	var item models.ListItem
	if err := json.Unmarshal([]byte(itemJSON), &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	item.SortOrder = position
	return &item, nil
}
