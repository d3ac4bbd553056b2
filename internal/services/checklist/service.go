package checklist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/homebot/internal/common/clock"
	"github.com/KirkDiggler/homebot/internal/models"
	"github.com/KirkDiggler/homebot/internal/ordering"
	checklistRepo "github.com/KirkDiggler/homebot/internal/repositories/checklist"
)

// service implements the Service interface
type service struct {
	dayRule       DayRule
	insertMode    ordering.InsertMode
	checklistRepo checklistRepo.Repository
	clock         clock.Clock
	logger        *slog.Logger
}

// New creates a new checklist service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ChecklistRepo == nil {
		return nil, ErrNilChecklistRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	location := cfg.Location
	if location == nil {
		loaded, err := time.LoadLocation(DefaultTimezone)
		if err != nil {
			return nil, fmt.Errorf("failed to load checklist timezone: %w", err)
		}
		location = loaded
	}

	startHour := cfg.DayStartHour
	if startHour <= 0 {
		startHour = DefaultDayStartHour
	}

	insertMode := cfg.InsertMode
	if insertMode == "" {
		insertMode = ordering.InsertModePositional
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		dayRule: DayRule{
			Location:  location,
			StartHour: startHour,
		},
		insertMode:    insertMode,
		checklistRepo: cfg.ChecklistRepo,
		clock:         cfg.Clock,
		logger:        logger,
	}, nil
}

// AddItem adds an item to the owner's checklist
func (s *service) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return &AddItemOutput{Message: MessageEmptyItem}, nil
	}

	output, err := s.checklistRepo.AddItem(ctx, &checklistRepo.AddItemInput{
		OwnerID:   input.OwnerID,
		Content:   content,
		Position:  input.Position,
		Mode:      s.insertMode,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add checklist item: %w", err)
	}

	return &AddItemOutput{
		Success: true,
		Message: fmt.Sprintf("Item added: %s", content),
		Item:    output.Item,
	}, nil
}

// RemoveItem removes the item at a position
func (s *service) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	output, err := s.checklistRepo.RemoveItem(ctx, &checklistRepo.RemoveItemInput{
		OwnerID:   input.OwnerID,
		Position:  input.Position,
		DeletedAt: s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, checklistRepo.ErrItemNotFound) {
			return &RemoveItemOutput{Message: MessageInvalidPosition}, nil
		}
		return nil, fmt.Errorf("failed to remove checklist item: %w", err)
	}

	s.logger.InfoContext(ctx, "AUDIT_LOG",
		"action", "daily_checklist_remove",
		"user_id", input.OwnerID,
		"item_id", output.Item.ID,
		slog.Group("before", "item", output.Item.Content, "position", input.Position),
	)

	return &RemoveItemOutput{
		Success: true,
		Message: MessageItemRemoved,
	}, nil
}

// MoveItem moves the item at one position to another
func (s *service) MoveItem(ctx context.Context, input *MoveItemInput) (*MoveItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	output, err := s.checklistRepo.MoveItem(ctx, &checklistRepo.MoveItemInput{
		OwnerID:     input.OwnerID,
		OldPosition: input.OldPosition,
		NewPosition: input.NewPosition,
	})
	if err != nil {
		switch {
		case errors.Is(err, checklistRepo.ErrInvalidPosition):
			return &MoveItemOutput{Message: MessageInvalidPosition}, nil
		case errors.Is(err, checklistRepo.ErrItemNotFound):
			return &MoveItemOutput{Message: MessageItemNotFound}, nil
		}
		return nil, fmt.Errorf("failed to move checklist item: %w", err)
	}

	s.logger.InfoContext(ctx, "AUDIT_LOG",
		"action", "daily_checklist_move",
		"user_id", input.OwnerID,
		"item_id", output.Item.ID,
		slog.Group("before", "position", input.OldPosition),
		slog.Group("after", "position", input.NewPosition),
	)

	return &MoveItemOutput{
		Success: true,
		Message: fmt.Sprintf("Moved item from position %d to %d.", input.OldPosition, input.NewPosition),
	}, nil
}

// EditItem replaces the text of the item at a position
func (s *service) EditItem(ctx context.Context, input *EditItemInput) (*EditItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return &EditItemOutput{Message: MessageEmptyItem}, nil
	}

	output, err := s.checklistRepo.EditItem(ctx, &checklistRepo.EditItemInput{
		OwnerID:  input.OwnerID,
		Position: input.Position,
		Content:  content,
	})
	if err != nil {
		if errors.Is(err, checklistRepo.ErrItemNotFound) {
			return &EditItemOutput{Message: MessageInvalidPosition}, nil
		}
		return nil, fmt.Errorf("failed to edit checklist item: %w", err)
	}

	s.logger.InfoContext(ctx, "AUDIT_LOG",
		"action", "daily_checklist_edit",
		"user_id", input.OwnerID,
		"item_id", output.Item.ID,
		"position", input.Position,
		slog.Group("before", "item", output.PreviousContent),
		slog.Group("after", "item", output.Item.Content),
	)

	return &EditItemOutput{
		Success: true,
		Message: MessageItemUpdated,
	}, nil
}

// GetItem looks up the item at a position
func (s *service) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	item, err := s.checklistRepo.GetItem(ctx, &checklistRepo.GetItemInput{
		OwnerID:  input.OwnerID,
		Position: input.Position,
	})
	if err != nil {
		if errors.Is(err, checklistRepo.ErrItemNotFound) {
			return &GetItemOutput{Message: MessageInvalidPosition}, nil
		}
		return nil, fmt.Errorf("failed to get checklist item: %w", err)
	}

	return &GetItemOutput{
		Success: true,
		Message: item.Content,
		Item:    item,
	}, nil
}

// CheckItem marks the item at a position done for the current day
func (s *service) CheckItem(ctx context.Context, input *CheckItemInput) (*CheckItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	now := s.clock.Now()
	output, err := s.checklistRepo.CheckItem(ctx, &checklistRepo.CheckItemInput{
		OwnerID:   input.OwnerID,
		Position:  input.Position,
		Day:       s.dayRule.CurrentDay(now),
		CheckedAt: now,
	})
	if err != nil {
		switch {
		case errors.Is(err, checklistRepo.ErrItemNotFound):
			return &CheckItemOutput{Message: MessageInvalidPosition}, nil
		case errors.Is(err, checklistRepo.ErrAlreadyChecked):
			return &CheckItemOutput{Message: MessageAlreadyChecked}, nil
		}
		return nil, fmt.Errorf("failed to check checklist item: %w", err)
	}

	return &CheckItemOutput{
		Success: true,
		Message: fmt.Sprintf("Item '%s' marked as completed for today.", output.Item.Content),
	}, nil
}

// UncheckItem clears the mark of the item at a position for the current day
func (s *service) UncheckItem(ctx context.Context, input *UncheckItemInput) (*UncheckItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	output, err := s.checklistRepo.UncheckItem(ctx, &checklistRepo.UncheckItemInput{
		OwnerID:  input.OwnerID,
		Position: input.Position,
		Day:      s.dayRule.CurrentDay(s.clock.Now()),
	})
	if err != nil {
		switch {
		case errors.Is(err, checklistRepo.ErrItemNotFound):
			return &UncheckItemOutput{Message: MessageInvalidPosition}, nil
		case errors.Is(err, checklistRepo.ErrNotChecked):
			return &UncheckItemOutput{Message: MessageNotChecked}, nil
		}
		return nil, fmt.Errorf("failed to uncheck checklist item: %w", err)
	}

	return &UncheckItemOutput{
		Success: true,
		Message: fmt.Sprintf("Item '%s' unchecked.", output.Item.Content),
	}, nil
}

// GetChecklist renders the checklist as it stood on a day
func (s *service) GetChecklist(ctx context.Context, input *GetChecklistInput) (*GetChecklistOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	today := s.dayRule.CurrentDay(s.clock.Now())
	day := strings.TrimSpace(input.Day)
	if day == "" {
		day = today
	}

	_, windowEnd, err := s.dayRule.Window(day)
	if err != nil {
		return &GetChecklistOutput{Message: MessageInvalidDate}, nil
	}

	output, err := s.checklistRepo.ListItemsForDate(ctx, &checklistRepo.ListItemsForDateInput{
		OwnerID:   input.OwnerID,
		Day:       day,
		WindowEnd: windowEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist: %w", err)
	}

	return &GetChecklistOutput{
		Success: true,
		Message: formatChecklist(output.Entries, day, day == today),
		Day:     day,
		Entries: output.Entries,
	}, nil
}

// formatChecklist renders entries with their completion marks
func formatChecklist(entries []*models.ChecklistEntry, day string, isToday bool) string {
	suffix := ""
	if !isToday {
		suffix = " for " + day
	}

	if len(entries) == 0 {
		return "Your daily checklist" + suffix + " is empty."
	}

	var b strings.Builder
	b.WriteString("**Your Daily Checklist" + suffix + ":**\n")

	allChecked := true
	for i, entry := range entries {
		mark := "❌"
		if entry.Checked {
			mark = "✅"
		} else {
			allChecked = false
		}

		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s [%s]", entry.Item.SortOrder, entry.Item.Content, mark)
	}

	if allChecked {
		b.WriteString("\n\n" + MessageAllCompleted)
	}

	return b.String()
}
