package todo

import (
	"time"

	"github.com/KirkDiggler/homebot/internal/models"
	"github.com/KirkDiggler/homebot/internal/ordering"
)

// AddItemInput contains parameters for adding an item
type AddItemInput struct {
	OwnerID string
	Content string

	// Position is the requested 1-based slot; nil appends
	Position *int

	// Mode decides whether Position is honored
	Mode ordering.InsertMode

	CreatedAt time.Time
}

// AddItemOutput contains the stored item
type AddItemOutput struct {
	Item *models.ListItem
}

// RemoveItemInput contains parameters for removing an item
type RemoveItemInput struct {
	OwnerID  string
	Position int
}

// RemoveItemOutput contains the removed item
type RemoveItemOutput struct {
	Item *models.ListItem
}

// MoveItemInput contains parameters for moving an item
type MoveItemInput struct {
	OwnerID     string
	OldPosition int
	NewPosition int
}

// MoveItemOutput contains the moved item at its new position
type MoveItemOutput struct {
	Item *models.ListItem
}

// EditItemInput contains parameters for editing an item
type EditItemInput struct {
	OwnerID  string
	Position int
	Content  string
}

// EditItemOutput contains the item after the edit and its previous content
type EditItemOutput struct {
	Item            *models.ListItem
	PreviousContent string
}

// GetItemInput contains parameters for retrieving an item
type GetItemInput struct {
	OwnerID  string
	Position int
}

// ListItemsInput contains parameters for listing an owner's items
type ListItemsInput struct {
	OwnerID string
}

// ListItemsOutput contains an owner's items in position order
type ListItemsOutput struct {
	Items []*models.ListItem
}
