package todo

import (
	"log/slog"

	"github.com/KirkDiggler/homebot/internal/common/clock"
	"github.com/KirkDiggler/homebot/internal/models"
	"github.com/KirkDiggler/homebot/internal/ordering"
	todoRepo "github.com/KirkDiggler/homebot/internal/repositories/todo"
)

// Config holds configuration for the todo service
type Config struct {
	// InsertMode decides whether a requested add position is honored
	InsertMode ordering.InsertMode

	// Repository dependencies
	TodoRepo todoRepo.Repository

	// Service dependencies
	Clock clock.Clock

	// Logger defaults to slog.Default
	Logger *slog.Logger
}

// AddItemInput contains parameters for adding a task
type AddItemInput struct {
	OwnerID string
	Content string

	// Position is the requested 1-based slot; nil appends
	Position *int
}

// AddItemOutput contains the result of adding a task
type AddItemOutput struct {
	Success bool
	Message string
	Item    *models.ListItem
}

// RemoveItemInput contains parameters for removing a task
type RemoveItemInput struct {
	OwnerID  string
	Position int
}

// RemoveItemOutput contains the result of removing a task
type RemoveItemOutput struct {
	Success bool
	Message string
}

// MoveItemInput contains parameters for moving a task
type MoveItemInput struct {
	OwnerID     string
	OldPosition int
	NewPosition int
}

// MoveItemOutput contains the result of moving a task
type MoveItemOutput struct {
	Success bool
	Message string
}

// EditItemInput contains parameters for editing a task
type EditItemInput struct {
	OwnerID  string
	Position int
	Content  string
}

// EditItemOutput contains the result of editing a task
type EditItemOutput struct {
	Success bool
	Message string
}

// GetItemInput contains parameters for looking up a task
type GetItemInput struct {
	OwnerID  string
	Position int
}

// GetItemOutput contains the task when it exists
type GetItemOutput struct {
	Success bool
	Message string
	Item    *models.ListItem
}

// ListItemsInput contains parameters for listing tasks
type ListItemsInput struct {
	OwnerID string
}

// ListItemsOutput contains the rendered list
type ListItemsOutput struct {
	Success bool
	Message string
	Items   []*models.ListItem
}
