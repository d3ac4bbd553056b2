package worldclock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KirkDiggler/homebot/internal/common/uuid"
	"github.com/KirkDiggler/homebot/internal/database/sqlite"
	"github.com/KirkDiggler/homebot/internal/models"
	"github.com/Masterminds/squirrel"
)

const clocksTable = "world_clocks"

var clockColumns = []string{"id", "guild_id", "timezone", "label", "created_at"}

var (
	// ErrClockNotFound is returned when a guild has no such timezone
	ErrClockNotFound = errors.New("world clock not found")

	// ErrClockExists is returned when a guild already has the timezone
	ErrClockExists = errors.New("world clock already exists")
)

// Config holds configuration for the SQLite world clock repository
type Config struct {
	// DB is an open database with migrations applied
	DB *sql.DB

	// UUIDGenerator generates clock IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db            *sql.DB
	uuidGenerator uuid.UUID
}

// NewSQLite creates a new SQLite-backed world clock repository
func NewSQLite(cfg *Config) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	return &sqliteRepository{
		db:            cfg.DB,
		uuidGenerator: uuidGenerator,
	}, nil
}

// AddClock stores a timezone for a guild
func (r *sqliteRepository) AddClock(ctx context.Context, input *AddClockInput) (*models.WorldClock, error) {
	if input == nil || input.GuildID == "" || input.Timezone == "" {
		return nil, errors.New("input, guild ID and timezone cannot be empty")
	}

	clock := &models.WorldClock{
		ID:        r.uuidGenerator.NewUUID(),
		GuildID:   input.GuildID,
		Timezone:  input.Timezone,
		Label:     input.Label,
		CreatedAt: input.CreatedAt,
	}

	query, args, err := sqlite.Builder.
		Insert(clocksTable).
		Columns(clockColumns...).
		Values(clock.ID, clock.GuildID, clock.Timezone, clock.Label, sqlite.ToMillis(clock.CreatedAt)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if sqlite.IsUniqueViolation(err) {
			return nil, ErrClockExists
		}
		return nil, fmt.Errorf("insert world clock: %w", err)
	}

	return clock, nil
}

// RemoveClock deletes a guild's timezone
func (r *sqliteRepository) RemoveClock(ctx context.Context, input *RemoveClockInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	query, args, err := sqlite.Builder.
		Delete(clocksTable).
		Where(squirrel.Eq{"guild_id": input.GuildID, "timezone": input.Timezone}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	return r.execOne(ctx, "delete world clock", query, args)
}

// UpdateLabel changes the label shown next to a guild's timezone
func (r *sqliteRepository) UpdateLabel(ctx context.Context, input *UpdateLabelInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	query, args, err := sqlite.Builder.
		Update(clocksTable).
		Set("label", input.Label).
		Where(squirrel.Eq{"guild_id": input.GuildID, "timezone": input.Timezone}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	return r.execOne(ctx, "update world clock", query, args)
}

// GetClock retrieves a guild's timezone
func (r *sqliteRepository) GetClock(ctx context.Context, input *GetClockInput) (*models.WorldClock, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	query, args, err := sqlite.Builder.
		Select(clockColumns...).
		From(clocksTable).
		Where(squirrel.Eq{"guild_id": input.GuildID, "timezone": input.Timezone}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	clock, err := scanClock(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClockNotFound
		}
		return nil, fmt.Errorf("get world clock: %w", err)
	}

	return clock, nil
}

// ListClocks retrieves a guild's timezones in the order they were added
func (r *sqliteRepository) ListClocks(ctx context.Context, input *ListClocksInput) (*ListClocksOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	query, args, err := sqlite.Builder.
		Select(clockColumns...).
		From(clocksTable).
		Where(squirrel.Eq{"guild_id": input.GuildID}).
		OrderBy("created_at ASC", "rowid ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list world clocks: %w", err)
	}
	defer rows.Close()

	clocks := []*models.WorldClock{}
	for rows.Next() {
		clock, err := scanClock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan world clock: %w", err)
		}
		clocks = append(clocks, clock)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate world clocks: %w", err)
	}

	return &ListClocksOutput{
		Clocks: clocks,
	}, nil
}

// execOne runs a statement that must touch exactly one clock
func (r *sqliteRepository) execOne(ctx context.Context, action, query string, args []any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}

	if affected == 0 {
		return ErrClockNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClock(row rowScanner) (*models.WorldClock, error) {
	var (
		clock     models.WorldClock
		createdAt int64
	)
	if err := row.Scan(&clock.ID, &clock.GuildID, &clock.Timezone, &clock.Label, &createdAt); err != nil {
		return nil, err
	}

	clock.CreatedAt = sqlite.FromMillis(createdAt)
	return &clock, nil
}
