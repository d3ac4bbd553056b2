package worldclock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/homebot/internal/common/clock"
	"github.com/KirkDiggler/homebot/internal/models"
	worldclockRepo "github.com/KirkDiggler/homebot/internal/repositories/worldclock"
)

// service implements the Service interface
type service struct {
	clockRepo worldclockRepo.Repository
	clock     clock.Clock
	resolver  *Resolver
	logger    *slog.Logger
}

// New creates a new world clock service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ClockRepo == nil {
		return nil, ErrNilClockRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	resolver := cfg.Resolver
	if resolver == nil {
		resolver = NewResolver()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		clockRepo: cfg.ClockRepo,
		clock:     cfg.Clock,
		resolver:  resolver,
		logger:    logger,
	}, nil
}

// AddClock pins a timezone to the guild's world clock
func (s *service) AddClock(ctx context.Context, input *AddClockInput) (*AddClockOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	zone, _, ok := s.resolver.Resolve(input.Timezone)
	if !ok {
		return &AddClockOutput{Message: MessageInvalidTimezone}, nil
	}

	label := strings.TrimSpace(input.Label)
	created, err := s.clockRepo.AddClock(ctx, &worldclockRepo.AddClockInput{
		GuildID:   input.GuildID,
		Timezone:  zone,
		Label:     label,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, worldclockRepo.ErrClockExists) {
			return &AddClockOutput{Message: fmt.Sprintf("Timezone already exists: %s", zone)}, nil
		}
		return nil, fmt.Errorf("failed to add world clock: %w", err)
	}

	message := fmt.Sprintf("Timezone added: %s", zone)
	if label != "" {
		message += fmt.Sprintf(" with label %s", label)
	}

	return &AddClockOutput{
		Success: true,
		Message: message,
		Clock:   created,
	}, nil
}

// RemoveClock unpins a timezone
func (s *service) RemoveClock(ctx context.Context, input *RemoveClockInput) (*RemoveClockOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	zone, _, ok := s.resolver.Resolve(input.Timezone)
	if !ok {
		return &RemoveClockOutput{Message: MessageTimezoneNotFound}, nil
	}

	err := s.clockRepo.RemoveClock(ctx, &worldclockRepo.RemoveClockInput{
		GuildID:  input.GuildID,
		Timezone: zone,
	})
	if err != nil {
		if errors.Is(err, worldclockRepo.ErrClockNotFound) {
			return &RemoveClockOutput{Message: MessageTimezoneNotFound}, nil
		}
		return nil, fmt.Errorf("failed to remove world clock: %w", err)
	}

	return &RemoveClockOutput{
		Success: true,
		Message: fmt.Sprintf("Timezone %s removed", zone),
	}, nil
}

// UpdateLabel changes the label shown next to a timezone
func (s *service) UpdateLabel(ctx context.Context, input *UpdateLabelInput) (*UpdateLabelOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	zone, _, ok := s.resolver.Resolve(input.Timezone)
	if !ok {
		return &UpdateLabelOutput{Message: MessageTimezoneNotFound}, nil
	}

	err := s.clockRepo.UpdateLabel(ctx, &worldclockRepo.UpdateLabelInput{
		GuildID:  input.GuildID,
		Timezone: zone,
		Label:    strings.TrimSpace(input.Label),
	})
	if err != nil {
		if errors.Is(err, worldclockRepo.ErrClockNotFound) {
			return &UpdateLabelOutput{Message: MessageTimezoneNotFound}, nil
		}
		return nil, fmt.Errorf("failed to update world clock label: %w", err)
	}

	return &UpdateLabelOutput{
		Success: true,
		Message: MessageLabelUpdated,
	}, nil
}

// GetClock shows the current time in one pinned timezone
func (s *service) GetClock(ctx context.Context, input *GetClockInput) (*GetClockOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	zone, _, ok := s.resolver.Resolve(input.Timezone)
	if !ok {
		return &GetClockOutput{Message: MessageTimezoneNotFound}, nil
	}

	pinned, err := s.clockRepo.GetClock(ctx, &worldclockRepo.GetClockInput{
		GuildID:  input.GuildID,
		Timezone: zone,
	})
	if err != nil {
		if errors.Is(err, worldclockRepo.ErrClockNotFound) {
			return &GetClockOutput{Message: MessageTimezoneNotFound}, nil
		}
		return nil, fmt.Errorf("failed to get world clock: %w", err)
	}

	line, ok := s.formatClock(pinned, s.clock.Now())
	if !ok {
		return &GetClockOutput{Message: MessageTimezoneNotFound}, nil
	}

	return &GetClockOutput{
		Success: true,
		Message: line,
	}, nil
}

// ListClocks shows the current time in every pinned timezone
func (s *service) ListClocks(ctx context.Context, input *ListClocksInput) (*ListClocksOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	output, err := s.clockRepo.ListClocks(ctx, &worldclockRepo.ListClocksInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list world clocks: %w", err)
	}

	if len(output.Clocks) == 0 {
		return &ListClocksOutput{
			Success: true,
			Message: MessageNoClocks,
		}, nil
	}

	now := s.clock.Now()
	lines := make([]string, 0, len(output.Clocks))
	for _, pinned := range output.Clocks {
		line, ok := s.formatClock(pinned, now)
		if !ok {
			s.logger.WarnContext(ctx, "Skipping unknown world clock timezone",
				"guild_id", input.GuildID,
				"timezone", pinned.Timezone,
			)
			continue
		}
		lines = append(lines, line)
	}

	return &ListClocksOutput{
		Success: true,
		Message: strings.Join(lines, "\n"),
		Clocks:  output.Clocks,
	}, nil
}

func (s *service) formatClock(pinned *models.WorldClock, now time.Time) (string, bool) {
	location, err := time.LoadLocation(pinned.Timezone)
	if err != nil {
		return "", false
	}

	prefix := ""
	if pinned.Label != "" {
		prefix = pinned.Label + " | "
	}

	return fmt.Sprintf("%s%s: **%s**", prefix, pinned.Timezone, now.In(location).Format(TimeLayout)), true
}
