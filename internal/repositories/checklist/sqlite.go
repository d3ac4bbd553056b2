package checklist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KirkDiggler/homebot/internal/common/uuid"
	"github.com/KirkDiggler/homebot/internal/database/sqlite"
	"github.com/KirkDiggler/homebot/internal/models"
	"github.com/KirkDiggler/homebot/internal/ordering"
	"github.com/Masterminds/squirrel"
)

const (
	itemsTable  = "checklist_items"
	checksTable = "checklist_checks"
)

var itemColumns = []string{"id", "owner_id", "content", "sort_order", "created_at", "deleted_at"}

// Config holds configuration for the SQLite checklist repository
type Config struct {
	// DB is an open database with migrations applied
	DB *sql.DB

	// UUIDGenerator generates item IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db            *sql.DB
	uuidGenerator uuid.UUID
}

// NewSQLite creates a new SQLite-backed checklist repository
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

// AddItem inserts an item, shifting later items when inserting mid-list
func (r *sqliteRepository) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	item := &models.ListItem{
		ID:        r.uuidGenerator.NewUUID(),
		OwnerID:   input.OwnerID,
		Content:   input.Content,
		CreatedAt: input.CreatedAt,
	}

	err := sqlite.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		count, err := r.countActive(ctx, tx, input.OwnerID)
		if err != nil {
			return err
		}

		item.SortOrder = ordering.InsertPosition(count, input.Position, input.Mode)

		if err := r.applyShift(ctx, tx, input.OwnerID, ordering.InsertShift(item.SortOrder)); err != nil {
			return err
		}

		query, args, err := sqlite.Builder.
			Insert(itemsTable).
			Columns("id", "owner_id", "content", "sort_order", "created_at").
			Values(item.ID, item.OwnerID, item.Content, item.SortOrder, sqlite.ToMillis(item.CreatedAt)).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert checklist item: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AddItemOutput{
		Item: item,
	}, nil
}

// RemoveItem soft deletes the item at a position and shifts later items up
func (r *sqliteRepository) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	var removed *models.ListItem
	err := sqlite.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		item, err := r.itemAt(ctx, tx, input.OwnerID, input.Position)
		if err != nil {
			return err
		}

		// Deleted rows leave the ordering with sort_order 0
		query, args, err := sqlite.Builder.
			Update(itemsTable).
			Set("deleted_at", sqlite.ToMillis(input.DeletedAt)).
			Set("sort_order", 0).
			Where(squirrel.Eq{"id": item.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build delete: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete checklist item: %w", err)
		}

		if err := r.applyShift(ctx, tx, input.OwnerID, ordering.RemoveShift(input.Position)); err != nil {
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
func (r *sqliteRepository) MoveItem(ctx context.Context, input *MoveItemInput) (*MoveItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	var moved *models.ListItem
	err := sqlite.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		count, err := r.countActive(ctx, tx, input.OwnerID)
		if err != nil {
			return err
		}

		if !ordering.ValidPosition(count, input.OldPosition) || !ordering.ValidPosition(count, input.NewPosition) {
			return ErrInvalidPosition
		}

		item, err := r.itemAt(ctx, tx, input.OwnerID, input.OldPosition)
		if err != nil {
			return err
		}

		if err := r.applyShift(ctx, tx, input.OwnerID, ordering.MoveShift(input.OldPosition, input.NewPosition)); err != nil {
			return err
		}

		query, args, err := sqlite.Builder.
			Update(itemsTable).
			Set("sort_order", input.NewPosition).
			Where(squirrel.Eq{"id": item.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build move: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("move checklist item: %w", err)
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
func (r *sqliteRepository) EditItem(ctx context.Context, input *EditItemInput) (*EditItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	var output *EditItemOutput
	err := sqlite.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		item, err := r.itemAt(ctx, tx, input.OwnerID, input.Position)
		if err != nil {
			return err
		}

		query, args, err := sqlite.Builder.
			Update(itemsTable).
			Set("content", input.Content).
			Where(squirrel.Eq{"id": item.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build edit: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("edit checklist item: %w", err)
		}

		previous := item.Content
		item.Content = input.Content
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

// GetItem retrieves the active item at a position
func (r *sqliteRepository) GetItem(ctx context.Context, input *GetItemInput) (*models.ListItem, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	return r.itemAt(ctx, r.db, input.OwnerID, input.Position)
}

// ListItems retrieves the owner's active items in position order
func (r *sqliteRepository) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	query, args, err := sqlite.Builder.
		Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"owner_id": input.OwnerID, "deleted_at": nil}).
		OrderBy("sort_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list checklist items: %w", err)
	}
	defer rows.Close()

	items := []*models.ListItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checklist items: %w", err)
	}

	return &ListItemsOutput{
		Items: items,
	}, nil
}

// CheckItem records a completion mark for the item at a position
func (r *sqliteRepository) CheckItem(ctx context.Context, input *CheckItemInput) (*CheckItemOutput, error) {
	if input == nil || input.OwnerID == "" || input.Day == "" {
		return nil, errors.New("input, owner ID and day cannot be empty")
	}

	var output *CheckItemOutput
	err := sqlite.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		item, err := r.itemAt(ctx, tx, input.OwnerID, input.Position)
		if err != nil {
			return err
		}

		mark := &models.CompletionMark{
			ItemID:    item.ID,
			Day:       input.Day,
			CreatedAt: input.CheckedAt,
		}

		query, args, err := sqlite.Builder.
			Insert(checksTable).
			Columns("item_id", "day", "created_at").
			Values(mark.ItemID, mark.Day, sqlite.ToMillis(mark.CreatedAt)).
			ToSql()
		if err != nil {
			return fmt.Errorf("build check: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if sqlite.IsUniqueViolation(err) {
				return ErrAlreadyChecked
			}
			return fmt.Errorf("check checklist item: %w", err)
		}

		output = &CheckItemOutput{
			Item: item,
			Mark: mark,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// UncheckItem removes the completion mark for the item at a position
func (r *sqliteRepository) UncheckItem(ctx context.Context, input *UncheckItemInput) (*UncheckItemOutput, error) {
	if input == nil || input.OwnerID == "" || input.Day == "" {
		return nil, errors.New("input, owner ID and day cannot be empty")
	}

	var unchecked *models.ListItem
	err := sqlite.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		item, err := r.itemAt(ctx, tx, input.OwnerID, input.Position)
		if err != nil {
			return err
		}

		query, args, err := sqlite.Builder.
			Delete(checksTable).
			Where(squirrel.Eq{"item_id": item.ID, "day": input.Day}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build uncheck: %w", err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("uncheck checklist item: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("uncheck checklist item: %w", err)
		}

		if affected == 0 {
			return ErrNotChecked
		}

		unchecked = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UncheckItemOutput{
		Item: unchecked,
	}, nil
}

// ListItemsForDate returns every item that existed at the end of the day's
// window together with whether it was checked on that day
func (r *sqliteRepository) ListItemsForDate(ctx context.Context, input *ListItemsForDateInput) (*ListItemsForDateOutput, error) {
	if input == nil || input.OwnerID == "" || input.Day == "" {
		return nil, errors.New("input, owner ID and day cannot be empty")
	}

	windowEnd := sqlite.ToMillis(input.WindowEnd)
	query, args, err := sqlite.Builder.
		Select(
			"i.id", "i.owner_id", "i.content", "i.sort_order", "i.created_at", "i.deleted_at",
			"c.item_id IS NOT NULL",
		).
		From(itemsTable+" i").
		LeftJoin(checksTable+" c ON c.item_id = i.id AND c.day = ?", input.Day).
		Where(squirrel.Eq{"i.owner_id": input.OwnerID}).
		Where(squirrel.LtOrEq{"i.created_at": windowEnd}).
		Where(squirrel.Or{
			squirrel.Eq{"i.deleted_at": nil},
			squirrel.Gt{"i.deleted_at": windowEnd},
		}).
		OrderBy("i.sort_order ASC", "i.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list checklist history: %w", err)
	}
	defer rows.Close()

	entries := []*models.ChecklistEntry{}
	for rows.Next() {
		var (
			item      models.ListItem
			createdAt int64
			deletedAt sql.NullInt64
			checked   bool
		)
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Content, &item.SortOrder, &createdAt, &deletedAt, &checked); err != nil {
			return nil, fmt.Errorf("scan checklist history: %w", err)
		}

		setTimes(&item, createdAt, deletedAt)
		entries = append(entries, &models.ChecklistEntry{
			Item:    &item,
			Checked: checked,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checklist history: %w", err)
	}

	return &ListItemsForDateOutput{
		Entries: entries,
	}, nil
}

// countActive returns the number of active items for an owner
func (r *sqliteRepository) countActive(ctx context.Context, q querier, ownerID string) (int, error) {
	query, args, err := sqlite.Builder.
		Select("COUNT(*)").
		From(itemsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count checklist items: %w", err)
	}

	return count, nil
}

// itemAt loads the active item at a position
func (r *sqliteRepository) itemAt(ctx context.Context, q querier, ownerID string, position int) (*models.ListItem, error) {
	query, args, err := sqlite.Builder.
		Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"owner_id": ownerID, "sort_order": position, "deleted_at": nil}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item lookup: %w", err)
	}

	item, err := scanItem(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return item, nil
}

// applyShift moves the active positions covered by shift
func (r *sqliteRepository) applyShift(ctx context.Context, q querier, ownerID string, shift ordering.Shift) error {
	if shift.Empty() {
		return nil
	}

	query, args, err := sqlite.Builder.
		Update(itemsTable).
		Set("sort_order", squirrel.Expr("sort_order + ?", shift.Delta)).
		Where(squirrel.Eq{"owner_id": ownerID, "deleted_at": nil}).
		Where(squirrel.GtOrEq{"sort_order": shift.From}).
		Where(squirrel.LtOrEq{"sort_order": shift.To}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build shift: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("shift checklist items: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.ListItem, error) {
	var (
		item      models.ListItem
		createdAt int64
		deletedAt sql.NullInt64
	)
	if err := row.Scan(&item.ID, &item.OwnerID, &item.Content, &item.SortOrder, &createdAt, &deletedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan checklist item: %w", err)
	}

	setTimes(&item, createdAt, deletedAt)
	return &item, nil
}

func setTimes(item *models.ListItem, createdAt int64, deletedAt sql.NullInt64) {
	item.CreatedAt = sqlite.FromMillis(createdAt)
	if deletedAt.Valid {
		deleted := sqlite.FromMillis(deletedAt.Int64)
		item.DeletedAt = &deleted
	}
}
