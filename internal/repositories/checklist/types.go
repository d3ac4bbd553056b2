package checklist

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
	OwnerID   string
	Position  int
	DeletedAt time.Time
}

// RemoveItemOutput contains the removed item as it was before removal
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

// ListItemsInput contains parameters for listing active items
type ListItemsInput struct {
	OwnerID string
}

// ListItemsOutput contains active items in position order
type ListItemsOutput struct {
	Items []*models.ListItem
}

// CheckItemInput contains parameters for checking an item off
type CheckItemInput struct {
	OwnerID   string
	Position  int
	Day       string
	CheckedAt time.Time
}

// CheckItemOutput contains the item that was checked and its new mark
type CheckItemOutput struct {
	Item *models.ListItem
	Mark *models.CompletionMark
}

// UncheckItemInput contains parameters for unchecking an item
type UncheckItemInput struct {
	OwnerID  string
	Position int
	Day      string
}

// UncheckItemOutput contains the item that was unchecked
type UncheckItemOutput struct {
	Item *models.ListItem
}

// ListItemsForDateInput contains parameters for listing a past or current day
type ListItemsForDateInput struct {
	OwnerID string

	// Day is the checklist day whose completion marks are read
	Day string

	// WindowEnd is the end of the day's window; items created after it or
	// deleted at or before it are excluded
	WindowEnd time.Time
}

// ListItemsForDateOutput contains the day's items with their completion state
type ListItemsForDateOutput struct {
	Entries []*models.ChecklistEntry
}
