package todo

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/homebot/internal/services/todo Service

import "context"

// Service defines the interface for a user's todo list
type Service interface {
	// AddItem adds a task, at a position when one is requested
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)

	// RemoveItem removes the task at a position
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)

	// MoveItem moves a task to a new position
	MoveItem(ctx context.Context, input *MoveItemInput) (*MoveItemOutput, error)

	// EditItem replaces the text of a task
	EditItem(ctx context.Context, input *EditItemInput) (*EditItemOutput, error)

	// GetItem looks up the task at a position
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)

	// ListItems renders the whole list
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
}
