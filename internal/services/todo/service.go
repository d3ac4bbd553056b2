package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/homebot/internal/common/clock"
	"github.com/KirkDiggler/homebot/internal/models"
	"github.com/KirkDiggler/homebot/internal/ordering"
	todoRepo "github.com/KirkDiggler/homebot/internal/repositories/todo"
)

// service implements the Service interface
type service struct {
	insertMode ordering.InsertMode
	todoRepo   todoRepo.Repository
	clock      clock.Clock
	logger     *slog.Logger
}

// New creates a new todo service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.TodoRepo == nil {
		return nil, ErrNilTodoRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
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
		insertMode: insertMode,
		todoRepo:   cfg.TodoRepo,
		clock:      cfg.Clock,
		logger:     logger,
	}, nil
}

// AddItem adds a task to the owner's list
func (s *service) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return &AddItemOutput{Message: MessageEmptyTask}, nil
	}

	output, err := s.todoRepo.AddItem(ctx, &todoRepo.AddItemInput{
		OwnerID:   input.OwnerID,
		Content:   content,
		Position:  input.Position,
		Mode:      s.insertMode,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		if errors.Is(err, todoRepo.ErrContention) {
			return nil, ErrBusy
		}
		return nil, fmt.Errorf("failed to add task: %w", err)
	}

	return &AddItemOutput{
		Success: true,
		Message: fmt.Sprintf("Task added: %s", content),
		Item:    output.Item,
	}, nil
}

// RemoveItem removes the task at a position
func (s *service) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	output, err := s.todoRepo.RemoveItem(ctx, &todoRepo.RemoveItemInput{
		OwnerID:  input.OwnerID,
		Position: input.Position,
	})
	if err != nil {
		switch {
		case errors.Is(err, todoRepo.ErrItemNotFound):
			return &RemoveItemOutput{Message: MessageTaskNotFound}, nil
		case errors.Is(err, todoRepo.ErrContention):
			return nil, ErrBusy
		}
		return nil, fmt.Errorf("failed to remove task: %w", err)
	}

	s.logger.InfoContext(ctx, "AUDIT_LOG",
		"action", "todo_remove",
		"user_id", input.OwnerID,
		"item_id", output.Item.ID,
		slog.Group("before", "task", output.Item.Content, "position", input.Position),
	)

	return &RemoveItemOutput{
		Success: true,
		Message: fmt.Sprintf("Task %d removed: %s", input.Position, output.Item.Content),
	}, nil
}

// MoveItem moves a task to a new position
func (s *service) MoveItem(ctx context.Context, input *MoveItemInput) (*MoveItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	if input.OldPosition == input.NewPosition {
		return &MoveItemOutput{Message: MessageSamePosition}, nil
	}

	output, err := s.todoRepo.MoveItem(ctx, &todoRepo.MoveItemInput{
		OwnerID:     input.OwnerID,
		OldPosition: input.OldPosition,
		NewPosition: input.NewPosition,
	})
	if err != nil {
		switch {
		case errors.Is(err, todoRepo.ErrItemNotFound), errors.Is(err, todoRepo.ErrInvalidPosition):
			return &MoveItemOutput{Message: MessageTaskNotFound}, nil
		case errors.Is(err, todoRepo.ErrContention):
			return nil, ErrBusy
		}
		return nil, fmt.Errorf("failed to move task: %w", err)
	}

	s.logger.InfoContext(ctx, "AUDIT_LOG",
		"action", "todo_move",
		"user_id", input.OwnerID,
		"item_id", output.Item.ID,
		slog.Group("before", "position", input.OldPosition),
		slog.Group("after", "position", input.NewPosition),
	)

	return &MoveItemOutput{
		Success: true,
		Message: fmt.Sprintf("Task moved to position %d.", input.NewPosition),
	}, nil
}

// EditItem replaces the text of the task at a position
func (s *service) EditItem(ctx context.Context, input *EditItemInput) (*EditItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return &EditItemOutput{Message: MessageEmptyTask}, nil
	}

	output, err := s.todoRepo.EditItem(ctx, &todoRepo.EditItemInput{
		OwnerID:  input.OwnerID,
		Position: input.Position,
		Content:  content,
	})
	if err != nil {
		switch {
		case errors.Is(err, todoRepo.ErrItemNotFound):
			return &EditItemOutput{Message: MessageTaskNotFound}, nil
		case errors.Is(err, todoRepo.ErrContention):
			return nil, ErrBusy
		}
		return nil, fmt.Errorf("failed to edit task: %w", err)
	}

	s.logger.InfoContext(ctx, "AUDIT_LOG",
		"action", "todo_edit",
		"user_id", input.OwnerID,
		"item_id", output.Item.ID,
		"position", input.Position,
		slog.Group("before", "task", output.PreviousContent),
		slog.Group("after", "task", output.Item.Content),
	)

	return &EditItemOutput{
		Success: true,
		Message: fmt.Sprintf("Task %d updated successfully!", input.Position),
	}, nil
}

// GetItem looks up the task at a position
func (s *service) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	item, err := s.todoRepo.GetItem(ctx, &todoRepo.GetItemInput{
		OwnerID:  input.OwnerID,
		Position: input.Position,
	})
	if err != nil {
		if errors.Is(err, todoRepo.ErrItemNotFound) {
			return &GetItemOutput{Message: MessageTaskNotFound}, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &GetItemOutput{
		Success: true,
		Message: item.Content,
		Item:    item,
	}, nil
}

// ListItems renders the owner's list as a fixed width table
func (s *service) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	output, err := s.todoRepo.ListItems(ctx, &todoRepo.ListItemsInput{
		OwnerID: input.OwnerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &ListItemsOutput{
		Success: true,
		Message: formatList(output.Items),
		Items:   output.Items,
	}, nil
}

func formatList(items []*models.ListItem) string {
	if len(items) == 0 {
		return MessageEmptyList
	}

	var b strings.Builder
	b.WriteString("**Todo List:**\n```Order | Task\n")
	b.WriteString(messageListSeparator + "\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%-5d | %s\n", item.SortOrder, item.Content)
	}
	b.WriteString("```")

	return b.String()
}
