package worldclock

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/homebot/internal/services/worldclock Service

import "context"

// Service defines the interface for a guild's world clock
type Service interface {
	// AddClock pins a timezone to the guild's world clock
	AddClock(ctx context.Context, input *AddClockInput) (*AddClockOutput, error)

	// RemoveClock unpins a timezone
	RemoveClock(ctx context.Context, input *RemoveClockInput) (*RemoveClockOutput, error)

	// UpdateLabel changes the label shown next to a timezone
	UpdateLabel(ctx context.Context, input *UpdateLabelInput) (*UpdateLabelOutput, error)

	// GetClock shows the current time in one pinned timezone
	GetClock(ctx context.Context, input *GetClockInput) (*GetClockOutput, error)

	// ListClocks shows the current time in every pinned timezone
	ListClocks(ctx context.Context, input *ListClocksInput) (*ListClocksOutput, error)
}
