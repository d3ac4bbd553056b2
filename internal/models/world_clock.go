package models

import (
	"time"
)

// WorldClock is a timezone a guild has pinned to its world clock
type WorldClock struct {
	// ID is the unique identifier for the entry
	ID string

	// GuildID is the Discord guild the entry belongs to
	GuildID string

	// Timezone is the canonical IANA zone name, e.g. America/New_York
	Timezone string

	// Label is an optional display label
	Label string

	// CreatedAt is when the zone was added
	CreatedAt time.Time
}
