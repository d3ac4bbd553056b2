package worldclock

import (
	"log/slog"

	"github.com/KirkDiggler/homebot/internal/common/clock"
	"github.com/KirkDiggler/homebot/internal/models"
	worldclockRepo "github.com/KirkDiggler/homebot/internal/repositories/worldclock"
)

// Config holds configuration for the world clock service
type Config struct {
	// Repository dependencies
	ClockRepo worldclockRepo.Repository

	// Service dependencies
	Clock clock.Clock

	// Resolver matches zone names; defaults to NewResolver
	Resolver *Resolver

	// Logger defaults to slog.Default
	Logger *slog.Logger
}

// AddClockInput contains parameters for adding a timezone
type AddClockInput struct {
	GuildID  string
	Timezone string
	Label    string
}

// AddClockOutput contains the result of adding a timezone
type AddClockOutput struct {
	Success bool
	Message string
	Clock   *models.WorldClock
}

// RemoveClockInput contains parameters for removing a timezone
type RemoveClockInput struct {
	GuildID  string
	Timezone string
}

// RemoveClockOutput contains the result of removing a timezone
type RemoveClockOutput struct {
	Success bool
	Message string
}

// UpdateLabelInput contains parameters for relabeling a timezone
type UpdateLabelInput struct {
	GuildID  string
	Timezone string
	Label    string
}

// UpdateLabelOutput contains the result of relabeling a timezone
type UpdateLabelOutput struct {
	Success bool
	Message string
}

// GetClockInput contains parameters for showing one timezone
type GetClockInput struct {
	GuildID  string
	Timezone string
}

// GetClockOutput contains the formatted time in one timezone
type GetClockOutput struct {
	Success bool
	Message string
}

// ListClocksInput contains parameters for showing a guild's world clock
type ListClocksInput struct {
	GuildID string
}

// ListClocksOutput contains the formatted world clock
type ListClocksOutput struct {
	Success bool
	Message string
	Clocks  []*models.WorldClock
}
