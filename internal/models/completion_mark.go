package models

import (
	"time"
)

// DayLayout is the storage and display format for a checklist day
const DayLayout = "2006-01-02"

// CompletionMark records that a checklist item was checked for a checklist day
type CompletionMark struct {
	// ItemID is the checklist item that was checked
	ItemID string

	// Day is the checklist day, formatted with DayLayout
	Day string

	// CreatedAt is when the mark was recorded
	CreatedAt time.Time
}

// ChecklistEntry is a checklist item together with its completion state for a day
type ChecklistEntry struct {
	Item    *ListItem
	Checked bool
}
