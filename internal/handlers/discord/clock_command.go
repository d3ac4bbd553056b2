package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/homebot/internal/services/worldclock"
	"github.com/bwmarrin/discordgo"
)

// maxChoices is the most autocomplete suggestions Discord accepts
const maxChoices = 25

// Prefix replies for the world clock
const (
	messageClockUsage       = "Please provide a subcommand (add, remove, list, label)."
	messageClockAddUsage    = "Please provide a timezone to add."
	messageClockRemoveUsage = "Please provide the timezone to remove."
	messageClockLabelUsage  = "Please provide the timezone and the new label."
)

// ClockCommand handles the /clock command
type ClockCommand struct {
	BaseCommand
	worldClockService worldclock.Service
	resolver          *worldclock.Resolver
}

// NewClockCommand creates a new world clock command handler
func NewClockCommand(worldClockService worldclock.Service, resolver *worldclock.Resolver) *ClockCommand {
	timezone := func(description string) *discordgo.ApplicationCommandOption {
		opt := stringOption("timezone", description, true)
		opt.Autocomplete = true
		return opt
	}

	return &ClockCommand{
		BaseCommand: BaseCommand{
			Name:        "clock",
			Aliases:     []string{"clocks", "worldclock"},
			Description: "Manage your world clock",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("list", "List all clocks in your world clock"),
				subcommand("add", "Add a clock to your world clock",
					timezone("The IANA timezone, e.g. America/New_York"),
					stringOption("label", "A label to show next to it", false),
				),
				subcommand("remove", "Remove a clock from your world clock",
					timezone("The timezone to remove"),
				),
				subcommand("edit", "Edit a clock label from your world clock",
					timezone("The timezone to relabel"),
					stringOption("label", "The new label", true),
				),
				subcommand("show", "Show the time in one clock",
					timezone("The timezone to show"),
				),
			},
		},
		worldClockService: worldClockService,
		resolver:          resolver,
	}
}

// ParseArgs handles `!clock <add|remove|list|label> ...`
func (c *ClockCommand) ParseArgs(msg *PrefixMessage) (*Invocation, string) {
	if len(msg.Args) == 0 {
		return nil, messageClockUsage
	}

	sub := strings.ToLower(msg.Args[0])
	rest := msg.Args[1:]
	inv := newInvocation(msg, sub)

	switch sub {
	case "add":
		if len(rest) == 0 {
			return nil, messageClockAddUsage
		}
		inv.Options["timezone"] = strings.Join(rest, " ")
	case "remove":
		if len(rest) == 0 {
			return nil, messageClockRemoveUsage
		}
		inv.Options["timezone"] = strings.Join(rest, " ")
	case "list":
	case "label", "edit":
		if len(rest) < 2 {
			return nil, messageClockLabelUsage
		}
		inv.Subcommand = "edit"
		inv.Options["timezone"] = rest[0]
		inv.Options["label"] = strings.Join(rest[1:], " ")
	default:
		return nil, fmt.Sprintf("Invalid subcommand %s. %s", sub, messageClockUsage)
	}

	return inv, ""
}

// Execute runs a world clock subcommand for the guild
func (c *ClockCommand) Execute(ctx context.Context, inv *Invocation) (string, error) {
	if inv.GuildID == "" {
		return "", errGuildOnly
	}

	switch inv.Subcommand {
	case "list":
		output, err := c.worldClockService.ListClocks(ctx, &worldclock.ListClocksInput{
			GuildID: inv.GuildID,
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	case "add":
		output, err := c.worldClockService.AddClock(ctx, &worldclock.AddClockInput{
			GuildID:  inv.GuildID,
			Timezone: inv.String("timezone"),
			Label:    inv.String("label"),
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	case "remove":
		output, err := c.worldClockService.RemoveClock(ctx, &worldclock.RemoveClockInput{
			GuildID:  inv.GuildID,
			Timezone: inv.String("timezone"),
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	case "edit":
		output, err := c.worldClockService.UpdateLabel(ctx, &worldclock.UpdateLabelInput{
			GuildID:  inv.GuildID,
			Timezone: inv.String("timezone"),
			Label:    inv.String("label"),
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	case "show":
		output, err := c.worldClockService.GetClock(ctx, &worldclock.GetClockInput{
			GuildID:  inv.GuildID,
			Timezone: inv.String("timezone"),
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil

	default:
		return messageClockUsage, nil
	}
}

// Autocomplete suggests every known zone when adding, and the guild's zones otherwise
func (c *ClockCommand) Autocomplete(ctx context.Context, inv *Invocation, focused string) []*discordgo.ApplicationCommandOptionChoice {
	if focused != "timezone" {
		return nil
	}

	var zones []string
	if inv.Subcommand == "add" {
		if c.resolver != nil {
			zones = c.resolver.Zones()
		}
	} else if inv.GuildID != "" {
		output, err := c.worldClockService.ListClocks(ctx, &worldclock.ListClocksInput{
			GuildID: inv.GuildID,
		})
		if err == nil {
			for _, pinned := range output.Clocks {
				zones = append(zones, pinned.Timezone)
			}
		}
	}

	return matchChoices(zones, inv.String("timezone"))
}

// matchChoices keeps the zones containing the typed text, case-insensitively
func matchChoices(zones []string, typed string) []*discordgo.ApplicationCommandOptionChoice {
	typed = strings.ToLower(strings.TrimSpace(typed))

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxChoices)
	for _, zone := range zones {
		if typed != "" && !strings.Contains(strings.ToLower(zone), typed) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  zone,
			Value: zone,
		})
		if len(choices) == maxChoices {
			break
		}
	}
	return choices
}
