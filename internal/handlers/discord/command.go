package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
)

// errGuildOnly is returned by commands that need a server to act on
var errGuildOnly = errors.New("command requires a guild")

// privateReply is a reply meant only for the user who ran the command.
// Slash commands answer it ephemerally; prefix commands have no private channel.
type privateReply string

// Error implements the error interface
func (r privateReply) Error() string {
	return string(r)
}

// CommandHandler defines the interface for Discord command handlers.
// A handler serves both the slash command and its prefix form.
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetAliases returns extra prefix names for the command
	GetAliases() []string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// ParseArgs turns prefix arguments into an invocation, or returns a usage message
	ParseArgs(msg *PrefixMessage) (*Invocation, string)

	// Execute runs an invocation and returns the reply
	Execute(ctx context.Context, inv *Invocation) (string, error)
}

// Autocompleter is implemented by commands that suggest option values
type Autocompleter interface {
	Autocomplete(ctx context.Context, inv *Invocation, focused string) []*discordgo.ApplicationCommandOptionChoice
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Aliases     []string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetAliases returns extra prefix names for the command
func (c *BaseCommand) GetAliases() []string {
	return c.Aliases
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// subcommand builds a subcommand option
func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func intOption(name, description string, required bool, minValue, maxValue float64) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
		MinValue:    &minValue,
		MaxValue:    maxValue,
	}
}

func userOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        optionUser,
		Description: description,
	}
}
