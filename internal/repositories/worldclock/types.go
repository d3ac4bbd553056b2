package worldclock

import (
	"time"

	"github.com/KirkDiggler/homebot/internal/models"
)

// AddClockInput contains parameters for adding a timezone
type AddClockInput struct {
	GuildID   string
	Timezone  string
	Label     string
	CreatedAt time.Time
}

// RemoveClockInput contains parameters for removing a timezone
type RemoveClockInput struct {
	GuildID  string
	Timezone string
}

// UpdateLabelInput contains parameters for relabeling a timezone
type UpdateLabelInput struct {
	GuildID  string
	Timezone string
	Label    string
}

// GetClockInput contains parameters for retrieving a timezone
type GetClockInput struct {
	GuildID  string
	Timezone string
}

// ListClocksInput contains parameters for listing a guild's timezones
type ListClocksInput struct {
	GuildID string
}

// ListClocksOutput contains a guild's timezones
type ListClocksOutput struct {
	Clocks []*models.WorldClock
}
