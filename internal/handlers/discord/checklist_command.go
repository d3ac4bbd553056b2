package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/homebot/internal/services/checklist"
	"github.com/bwmarrin/discordgo"
)

// Prefix replies for the daily checklist
const (
	messageChecklistUsage           = "Please provide a subcommand (add, remove, list, check, uncheck, move, edit, history)"
	messageChecklistInvalidPosition = "Please provide a valid number for the position."
	messageChecklistInvalidMove     = "Please provide valid numbers for positions."
	messageChecklistMoveUsage       = "Please provide both old and new positions."
	messageChecklistEditUsage       = "Please provide the position and the new item."
)

// positionUsage is the reply when a single position argument is missing
var positionUsage = map[string]string{
	"remove":  "Please provide the position of the item to remove.",
	"check":   "Please provide the position of the item to check off.",
	"uncheck": "Please provide the position of the item to uncheck.",
}

// ChecklistCommand handles the /checklist command
type ChecklistCommand struct {
	BaseCommand
	checklistService checklist.Service
}

// NewChecklistCommand creates a new checklist command handler
func NewChecklistCommand(checklistService checklist.Service) *ChecklistCommand {
	return &ChecklistCommand{
		BaseCommand: BaseCommand{
			Name:        "checklist",
			Aliases:     []string{"daily"},
			Description: "Manage your daily checklist",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("add", "Add an item to your daily checklist",
					stringOption("item", "The item to add", true),
					intOption(optionPosition, "Where to put the item", false, 1, 100),
				),
				subcommand("list", "Show today's checklist"),
				subcommand("remove", "Remove an item",
					intOption(optionPosition, "The item to remove", true, 1, 100),
				),
				subcommand("check", "Mark an item done for today",
					intOption(optionPosition, "The item to check off", true, 1, 100),
				),
				subcommand("uncheck", "Clear today's mark on an item",
					intOption(optionPosition, "The item to uncheck", true, 1, 100),
				),
				subcommand("move", "Reorder an item",
					intOption(optionOldPosition, "The item to move", true, 1, 100),
					intOption(optionNewPosition, "Where to move it", true, 1, 100),
				),
				subcommand("edit", "Edit an item",
					intOption(optionPosition, "The item to edit", true, 1, 100),
					stringOption("item", "The new text", true),
				),
				subcommand("history", "Show the checklist for a past day",
					stringOption("date", "The day, as YYYY-MM-DD", false),
				),
			},
		},
		checklistService: checklistService,
	}
}

// ParseArgs handles `!checklist <subcommand> ...`
func (c *ChecklistCommand) ParseArgs(msg *PrefixMessage) (*Invocation, string) {
	if len(msg.Args) == 0 {
		return nil, messageChecklistUsage
	}

	sub := strings.ToLower(msg.Args[0])
	rest := msg.Args[1:]
	inv := newInvocation(msg, sub)

	switch sub {
	case "add":
		if len(rest) == 0 {
			return nil, checklist.MessageEmptyItem
		}
		inv.Options["item"] = strings.Join(rest, " ")
	case "list":
	case "remove", "check", "uncheck":
		if len(rest) == 0 {
			return nil, positionUsage[sub]
		}
		if !isNumber(rest[0]) {
			return nil, messageChecklistInvalidPosition
		}
		inv.Options[optionPosition] = rest[0]
	case "move":
		if len(rest) < 2 {
			return nil, messageChecklistMoveUsage
		}
		if !isNumber(rest[0]) || !isNumber(rest[1]) {
			return nil, messageChecklistInvalidMove
		}
		inv.Options[optionOldPosition] = rest[0]
		inv.Options[optionNewPosition] = rest[1]
	case "edit":
		if len(rest) < 2 {
			return nil, messageChecklistEditUsage
		}
		if !isNumber(rest[0]) {
			return nil, messageChecklistInvalidPosition
		}
		inv.Options[optionPosition] = rest[0]
		inv.Options["item"] = strings.Join(rest[1:], " ")
	case "history":
		if len(rest) > 0 {
			inv.Options["date"] = rest[0]
		}
	default:
		return nil, fmt.Sprintf("Invalid subcommand '%s'. Available subcommands: add, remove, list, check, uncheck, move, edit, history", sub)
	}

	return inv, ""
}

// Execute runs a checklist subcommand against the caller's checklist
func (c *ChecklistCommand) Execute(ctx context.Context, inv *Invocation) (string, error) {
	owner := inv.UserID

	switch inv.Subcommand {
	case "add":
		output, err := c.checklistService.AddItem(ctx, &checklist.AddItemInput{
			OwnerID:  owner,
			Content:  inv.String("item"),
			Position: inv.OptionalInt(optionPosition),
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	case "list", "history":
		output, err := c.checklistService.GetChecklist(ctx, &checklist.GetChecklistInput{
			OwnerID: owner,
			Day:     inv.String("date"),
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	case "remove":
		position, ok, err := inv.Int(optionPosition)
		if !ok || err != nil {
			return messageChecklistInvalidPosition, nil
		}
		output, err := c.checklistService.RemoveItem(ctx, &checklist.RemoveItemInput{
			OwnerID:  owner,
			Position: position,
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	case "check":
		position, ok, err := inv.Int(optionPosition)
		if !ok || err != nil {
			return messageChecklistInvalidPosition, nil
		}
		output, err := c.checklistService.CheckItem(ctx, &checklist.CheckItemInput{
			OwnerID:  owner,
			Position: position,
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	case "uncheck":
		position, ok, err := inv.Int(optionPosition)
		if !ok || err != nil {
			return messageChecklistInvalidPosition, nil
		}
		output, err := c.checklistService.UncheckItem(ctx, &checklist.UncheckItemInput{
			OwnerID:  owner,
			Position: position,
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	case "move":
		oldPosition, okOld, errOld := inv.Int(optionOldPosition)
		newPosition, okNew, errNew := inv.Int(optionNewPosition)
		if !okOld || !okNew || errOld != nil || errNew != nil {
			return messageChecklistInvalidMove, nil
		}
		output, err := c.checklistService.MoveItem(ctx, &checklist.MoveItemInput{
			OwnerID:     owner,
			OldPosition: oldPosition,
			NewPosition: newPosition,
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	case "edit":
		position, ok, err := inv.Int(optionPosition)
		if !ok || err != nil {
			return messageChecklistEditUsage, nil
		}
		output, err := c.checklistService.EditItem(ctx, &checklist.EditItemInput{
			OwnerID:  owner,
			Position: position,
			Content:  inv.String("item"),
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	default:
		return messageChecklistUsage, nil
	}
}
