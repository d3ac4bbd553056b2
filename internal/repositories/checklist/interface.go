package checklist

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/homebot/internal/repositories/checklist Repository

import (
	"context"

	"github.com/KirkDiggler/homebot/internal/models"
)

// Repository defines the interface for daily checklist persistence.
// Removed items are soft deleted so that past days can still be listed.
type Repository interface {
	// AddItem inserts an item at the resolved position
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)

	// RemoveItem soft deletes the item at a position and closes the gap
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)

	// MoveItem moves the item at one position to another
	MoveItem(ctx context.Context, input *MoveItemInput) (*MoveItemOutput, error)

	// EditItem replaces the content of the item at a position
	EditItem(ctx context.Context, input *EditItemInput) (*EditItemOutput, error)

	// GetItem retrieves the active item at a position
	GetItem(ctx context.Context, input *GetItemInput) (*models.ListItem, error)

	// ListItems retrieves the owner's active items in position order
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)

	// CheckItem marks the item at a position as completed for a day
	CheckItem(ctx context.Context, input *CheckItemInput) (*CheckItemOutput, error)

	// UncheckItem clears the completion mark of the item at a position for a day
	UncheckItem(ctx context.Context, input *UncheckItemInput) (*UncheckItemOutput, error)

	// ListItemsForDate reconstructs the checklist as it stood on a day
	ListItemsForDate(ctx context.Context, input *ListItemsForDateInput) (*ListItemsForDateOutput, error)
}
