package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/homebot/internal/services/todo"
	"github.com/bwmarrin/discordgo"
)

// Prefix replies for the todo list
const (
	messageTodoUsage           = "Please provide a subcommand (add, remove, list, move, edit)."
	messageTodoManyMentions    = "Can only work on one todo list at a time. Do not mention multiple users"
	messageTodoRemoveOther     = "Cannot remove task using ! version for another user. please use `/todo remove` and select the user"
	messageTodoRemoveUsage     = "Please provide the ID of the task to remove."
	messageTodoMoveUsage       = "Please provide both old and new positions."
	messageTodoEditUsage       = "Please provide the position and the new task."
	messageTodoInvalidPosition = "Please provide a valid number for the position."
)

// TodoCommand handles the /todo command
type TodoCommand struct {
	BaseCommand
	todoService todo.Service
}

// NewTodoCommand creates a new todo command handler
func NewTodoCommand(todoService todo.Service) *TodoCommand {
	return &TodoCommand{
		BaseCommand: BaseCommand{
			Name:        "todo",
			Description: "Manage your todo list",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("add", "Add a task to your todo list",
					stringOption("task", "The task to add", true),
					intOption(optionPosition, "Where to put the task", false, 1, 100),
					userOption("Whose list to add to"),
				),
				subcommand("list", "List all your tasks",
					userOption("Whose list to show"),
				),
				subcommand("remove", "Remove a task from your todo list",
					intOption(optionPosition, "The task to remove", true, 1, 100),
					userOption("Whose list to remove from"),
				),
				subcommand("move", "Set the priority of a task",
					intOption(optionOldPosition, "The task to move", true, 1, 100),
					intOption(optionNewPosition, "Where to move it", true, 1, 100),
					userOption("Whose list to reorder"),
				),
				subcommand("edit", "Edit a task",
					intOption(optionPosition, "The task to edit", true, 1, 100),
					stringOption("task", "The new text", true),
					userOption("Whose list to edit"),
				),
			},
		},
		todoService: todoService,
	}
}

// ParseArgs handles `!todo <add|remove|list|move|edit> ...`, optionally with one mention
func (c *TodoCommand) ParseArgs(msg *PrefixMessage) (*Invocation, string) {
	if len(msg.Args) == 0 {
		return nil, messageTodoUsage
	}

	if len(msg.MentionIDs) > 1 {
		return nil, messageTodoManyMentions
	}

	sub := strings.ToLower(msg.Args[0])
	rest := withoutMentions(msg.Args[1:])

	inv := newInvocation(msg, sub)
	if len(msg.MentionIDs) == 1 {
		inv.Options[optionUser] = msg.MentionIDs[0]
	}

	switch sub {
	case "add":
		if len(rest) == 0 {
			return nil, todo.MessageEmptyTask
		}
		inv.Options["task"] = strings.Join(rest, " ")
	case "remove":
		if len(msg.MentionIDs) > 0 {
			return nil, messageTodoRemoveOther
		}
		if len(rest) == 0 || !isNumber(rest[0]) {
			return nil, messageTodoRemoveUsage
		}
		inv.Options[optionPosition] = rest[0]
	case "list":
	case "move":
		if len(rest) < 2 {
			return nil, messageTodoMoveUsage
		}
		if !isNumber(rest[0]) || !isNumber(rest[1]) {
			return nil, messageTodoInvalidPosition
		}
		inv.Options[optionOldPosition] = rest[0]
		inv.Options[optionNewPosition] = rest[1]
	case "edit":
		if len(rest) < 2 {
			return nil, messageTodoEditUsage
		}
		if !isNumber(rest[0]) {
			return nil, messageTodoInvalidPosition
		}
		inv.Options[optionPosition] = rest[0]
		inv.Options["task"] = strings.Join(rest[1:], " ")
	default:
		return nil, fmt.Sprintf("Invalid subcommand %s. %s", sub, messageTodoUsage)
	}

	return inv, ""
}

// Execute runs a todo subcommand against the target user's list
func (c *TodoCommand) Execute(ctx context.Context, inv *Invocation) (string, error) {
	owner := inv.TargetUserID()

	switch inv.Subcommand {
	case "add":
		output, err := c.todoService.AddItem(ctx, &todo.AddItemInput{
			OwnerID:  owner,
			Content:  inv.String("task"),
			Position: inv.OptionalInt(optionPosition),
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	case "list":
		output, err := c.todoService.ListItems(ctx, &todo.ListItemsInput{
			OwnerID: owner,
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	case "remove":
		position, ok, err := inv.Int(optionPosition)
		if !ok || err != nil {
			return messageTodoRemoveUsage, nil
		}
		output, err := c.todoService.RemoveItem(ctx, &todo.RemoveItemInput{
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
			return messageTodoMoveUsage, nil
		}
		output, err := c.todoService.MoveItem(ctx, &todo.MoveItemInput{
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
			return messageTodoEditUsage, nil
		}
		output, err := c.todoService.EditItem(ctx, &todo.EditItemInput{
			OwnerID:  owner,
			Position: position,
			Content:  inv.String("task"),
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	default:
		return messageTodoUsage, nil
	}
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
