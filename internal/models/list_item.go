package models

import (
	"time"
)

// ListKind identifies which positional list an item belongs to
type ListKind string

const (
	// ListKindTodo is a user's todo list
	ListKindTodo ListKind = "todo"

	// ListKindChecklist is a user's daily checklist
	ListKindChecklist ListKind = "checklist"
)

// ListItem is an entry in a user's ordered list
type ListItem struct {
	// ID is the unique identifier for the item
	ID string

	// OwnerID is the Discord user whose list this is
	OwnerID string

	// Content is the free text of the item
	Content string

	// SortOrder is the 1-based position among the owner's active items
	SortOrder int

	// CreatedAt is when the item was added
	CreatedAt time.Time

	// DeletedAt is set when a checklist item is removed; todo items are hard deleted
	DeletedAt *time.Time
}

// IsDeleted reports whether the item has been soft deleted
func (i *ListItem) IsDeleted() bool {
	return i.DeletedAt != nil
}
