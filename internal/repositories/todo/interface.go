package todo

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/homebot/internal/repositories/todo Repository

import (
	"context"

	"github.com/KirkDiggler/homebot/internal/models"
)

// Repository defines the interface for todo list persistence.
// Positions are 1-based and dense for every owner after each call.
type Repository interface {
	// AddItem inserts an item, shifting later items down when inserting mid-list
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)

	// RemoveItem deletes the item at a position and closes the gap
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)

	// MoveItem moves the item at one position to another
	MoveItem(ctx context.Context, input *MoveItemInput) (*MoveItemOutput, error)

	// EditItem replaces the content of the item at a position
	EditItem(ctx context.Context, input *EditItemInput) (*EditItemOutput, error)

	// GetItem retrieves the item at a position
	GetItem(ctx context.Context, input *GetItemInput) (*models.ListItem, error)

	// ListItems retrieves every item for an owner in position order
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
}
