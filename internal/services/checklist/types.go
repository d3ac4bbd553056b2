package checklist

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/homebot/internal/common/clock"
	"github.com/KirkDiggler/homebot/internal/models"
	"github.com/KirkDiggler/homebot/internal/ordering"
	checklistRepo "github.com/KirkDiggler/homebot/internal/repositories/checklist"
)

// Config holds configuration for the checklist service
type Config struct {
	// Location is the reference timezone for checklist days; nil loads DefaultTimezone
	Location *time.Location

	// DayStartHour is the local hour a day begins; zero means DefaultDayStartHour
	DayStartHour int

	// InsertMode decides whether a requested add position is honored
	InsertMode ordering.InsertMode

	// Repository dependencies
	ChecklistRepo checklistRepo.Repository

	// Service dependencies
	Clock clock.Clock

	// Logger defaults to slog.Default
	Logger *slog.Logger
}

// AddItemInput contains parameters for adding an item
type AddItemInput struct {
	OwnerID string
	Content string

	// Position is the requested 1-based slot; nil appends
	Position *int
}

// AddItemOutput contains the result of adding an item
type AddItemOutput struct {
	Success bool
	Message string
	Item    *models.ListItem
}

// RemoveItemInput contains parameters for removing an item
type RemoveItemInput struct {
	OwnerID  string
	Position int
}

// RemoveItemOutput contains the result of removing an item
type RemoveItemOutput struct {
	Success bool
	Message string
}

// MoveItemInput contains parameters for moving an item
type MoveItemInput struct {
	OwnerID     string
	OldPosition int
	NewPosition int
}

// MoveItemOutput contains the result of moving an item
type MoveItemOutput struct {
	Success bool
	Message string
}

// EditItemInput contains parameters for editing an item
type EditItemInput struct {
	OwnerID  string
	Position int
	Content  string
}

// EditItemOutput contains the result of editing an item
type EditItemOutput struct {
	Success bool
	Message string
}

// GetItemInput contains parameters for looking up an item
type GetItemInput struct {
	OwnerID  string
	Position int
}

// GetItemOutput contains the item when it exists
type GetItemOutput struct {
	Success bool
	Message string
	Item    *models.ListItem
}

// CheckItemInput contains parameters for checking an item off
type CheckItemInput struct {
	OwnerID  string
	Position int
}

// CheckItemOutput contains the result of checking an item off
type CheckItemOutput struct {
	Success bool
	Message string
}

// UncheckItemInput contains parameters for unchecking an item
type UncheckItemInput struct {
	OwnerID  string
	Position int
}

// UncheckItemOutput contains the result of unchecking an item
type UncheckItemOutput struct {
	Success bool
	Message string
}

// GetChecklistInput contains parameters for rendering a checklist
type GetChecklistInput struct {
	OwnerID string

	// Day is a YYYY-MM-DD checklist day; empty means the current day
	Day string
}

// GetChecklistOutput contains the rendered checklist
type GetChecklistOutput struct {
	Success bool
	Message string

	// Day is the checklist day that was rendered
	Day string

	Entries []*models.ChecklistEntry
}
