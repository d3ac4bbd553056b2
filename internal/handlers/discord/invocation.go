package discord

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Option names shared across commands
const (
	optionUser        = "user"
	optionPosition    = "position"
	optionOldPosition = "old_position"
	optionNewPosition = "new_position"
)

var mentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)

// Invocation is a command call, from either a slash interaction or a prefix message
type Invocation struct {
	GuildID    string
	UserID     string
	Subcommand string

	// Options holds option values by name, integers and users as strings
	Options map[string]string

	// FromPrefix is set for prefix messages
	FromPrefix bool
}

// PrefixMessage is a prefix command message split into arguments
type PrefixMessage struct {
	GuildID string
	UserID  string

	// Args are the words after the command name
	Args []string

	// MentionIDs are the users mentioned in the message
	MentionIDs []string
}

// String returns an option value, or empty
func (inv *Invocation) String(name string) string {
	return inv.Options[name]
}

// Int returns an integer option; ok is false when the option is absent
func (inv *Invocation) Int(name string) (value int, ok bool, err error) {
	raw, ok := inv.Options[name]
	if !ok || raw == "" {
		return 0, false, nil
	}

	value, err = strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf("option %s is not a number: %w", name, err)
	}
	return value, true, nil
}

// OptionalInt returns a pointer to an integer option, nil when absent or malformed
func (inv *Invocation) OptionalInt(name string) *int {
	value, ok, err := inv.Int(name)
	if !ok || err != nil {
		return nil
	}
	return &value
}

// TargetUserID is the user whose data the invocation acts on
func (inv *Invocation) TargetUserID() string {
	if target := inv.Options[optionUser]; target != "" {
		return target
	}
	return inv.UserID
}

// newInvocation creates an invocation for a prefix message
func newInvocation(msg *PrefixMessage, subcommand string) *Invocation {
	return &Invocation{
		GuildID:    msg.GuildID,
		UserID:     msg.UserID,
		Subcommand: subcommand,
		Options:    make(map[string]string),
		FromPrefix: true,
	}
}

// invocationFromInteraction flattens a slash command's subcommand and options
func invocationFromInteraction(i *discordgo.InteractionCreate) (*Invocation, string) {
	data := i.ApplicationCommandData()

	inv := &Invocation{
		GuildID: i.GuildID,
		UserID:  interactionUserID(i),
		Options: make(map[string]string),
	}

	options := data.Options
	if len(options) > 0 && options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		inv.Subcommand = options[0].Name
		options = options[0].Options
	}

	focused := ""
	for _, opt := range options {
		if opt.Focused {
			focused = opt.Name
		}

		switch opt.Type {
		case discordgo.ApplicationCommandOptionString:
			inv.Options[opt.Name] = opt.StringValue()
		case discordgo.ApplicationCommandOptionInteger:
			inv.Options[opt.Name] = strconv.FormatInt(opt.IntValue(), 10)
		case discordgo.ApplicationCommandOptionUser:
			inv.Options[opt.Name] = opt.UserValue(nil).ID
		default:
			inv.Options[opt.Name] = fmt.Sprint(opt.Value)
		}
	}

	return inv, focused
}

// interactionUserID returns the invoking user in guilds and direct messages
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// splitPrefixCommand splits "!todo add milk" into "todo" and its arguments.
// ok is false when the content doesn't start with the prefix.
func splitPrefixCommand(prefix, content string) (name string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}

	return strings.ToLower(fields[0]), fields[1:], true
}

// withoutMentions drops mention tokens from arguments
func withoutMentions(args []string) []string {
	kept := make([]string, 0, len(args))
	for _, arg := range args {
		if !mentionPattern.MatchString(arg) {
			kept = append(kept, arg)
		}
	}
	return kept
}
