package worldclock

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/homebot/internal/repositories/worldclock Repository

import (
	"context"

	"github.com/KirkDiggler/homebot/internal/models"
)

// Repository defines the interface for world clock persistence
type Repository interface {
	// AddClock stores a timezone for a guild
	AddClock(ctx context.Context, input *AddClockInput) (*models.WorldClock, error)

	// RemoveClock deletes a guild's timezone
	RemoveClock(ctx context.Context, input *RemoveClockInput) error

	// UpdateLabel changes the label shown next to a guild's timezone
	UpdateLabel(ctx context.Context, input *UpdateLabelInput) error

	// GetClock retrieves a guild's timezone
	GetClock(ctx context.Context, input *GetClockInput) (*models.WorldClock, error)

	// ListClocks retrieves a guild's timezones in the order they were added
	ListClocks(ctx context.Context, input *ListClocksInput) (*ListClocksOutput, error)
}
