package checklist

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/homebot/internal/services/checklist Service

import "context"

// Service defines the interface for daily checklist operations.
// Domain conditions come back as unsuccessful outputs with a message;
// only storage failures are returned as errors.
type Service interface {
	// AddItem adds an item to the owner's checklist
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)

	// RemoveItem removes the item at a position
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)

	// MoveItem moves the item at one position to another
	MoveItem(ctx context.Context, input *MoveItemInput) (*MoveItemOutput, error)

	// EditItem replaces the text of the item at a position
	EditItem(ctx context.Context, input *EditItemInput) (*EditItemOutput, error)

	// GetItem looks up the item at a position
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)

	// CheckItem marks the item at a position done for the current day
	CheckItem(ctx context.Context, input *CheckItemInput) (*CheckItemOutput, error)

	// UncheckItem clears the mark of the item at a position for the current day
	UncheckItem(ctx context.Context, input *UncheckItemInput) (*UncheckItemOutput, error)

	// GetChecklist renders the checklist for the current or a past day
	GetChecklist(ctx context.Context, input *GetChecklistInput) (*GetChecklistOutput, error)
}
