package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/homebot/internal/services/checklist"
	"github.com/KirkDiggler/homebot/internal/services/hangman"
	"github.com/KirkDiggler/homebot/internal/services/messaging"
	"github.com/KirkDiggler/homebot/internal/services/todo"
	"github.com/KirkDiggler/homebot/internal/services/worldclock"
	"github.com/bwmarrin/discordgo"
)

// commandTimeout bounds the work done for one command
const commandTimeout = 5 * time.Second

// DefaultCommandPrefix starts prefix commands when none is configured
const DefaultCommandPrefix = "!"

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	handlers         []CommandHandler
	commands         map[string]CommandHandler
	prefixCommands   map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	messagingService messaging.Service
	logger           *slog.Logger
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// CommandPrefix starts prefix commands; defaults to DefaultCommandPrefix
	CommandPrefix string

	// Feature services
	HangmanService    hangman.Service
	TodoService       todo.Service
	ChecklistService  checklist.Service
	WorldClockService worldclock.Service
	MessagingService  messaging.Service

	// Resolver suggests zones for the clock command; optional
	Resolver *worldclock.Resolver

	// Logger defaults to slog.Default
	Logger *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	switch {
	case cfg.HangmanService == nil:
		return nil, errors.New("hangman service cannot be nil")
	case cfg.TodoService == nil:
		return nil, errors.New("todo service cannot be nil")
	case cfg.ChecklistService == nil:
		return nil, errors.New("checklist service cannot be nil")
	case cfg.WorldClockService == nil:
		return nil, errors.New("world clock service cannot be nil")
	case cfg.MessagingService == nil:
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.CommandPrefix == "" {
		cfg.CommandPrefix = DefaultCommandPrefix
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		prefixCommands:   make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		messagingService: cfg.MessagingService,
		logger:           logger,
		config:           cfg,
	}

	bot.addCommand(NewHangmanCommand(cfg.HangmanService))
	bot.addCommand(NewTodoCommand(cfg.TodoService))
	bot.addCommand(NewChecklistCommand(cfg.ChecklistService))
	bot.addCommand(NewClockCommand(cfg.WorldClockService, cfg.Resolver))

	// Register the gateway handlers
	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessage)

	return bot, nil
}

// addCommand makes a handler reachable by slash name, prefix name and aliases
func (b *Bot) addCommand(cmd CommandHandler) {
	b.handlers = append(b.handlers, cmd)
	b.commands[cmd.GetName()] = cmd
	b.prefixCommands[cmd.GetName()] = cmd
	for _, alias := range cmd.GetAliases() {
		b.prefixCommands[alias] = cmd
	}
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.handlers {
		if err := b.RegisterCommand(cmd); err != nil {
			return err
		}
	}

	b.logger.Info("Bot is now running", "prefix", b.config.CommandPrefix)
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("Failed to delete command", "command", cmdName, "command_id", cmdID, "error", err)
		} else {
			b.logger.Info("Deleted command", "command", cmdName, "command_id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord.
// Commands are registered for GuildID when it is set, globally otherwise.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("Registered command",
		"command", cmd.GetName(),
		"command_id", createdCmd.ID,
		"guild_id", b.config.GuildID,
	)

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		reply, ephemeral, ok := b.dispatchInteraction(ctx, i)
		if !ok {
			return
		}
		if ephemeral {
			err = RespondWithEphemeralMessage(s, i, reply)
		} else {
			err = RespondWithMessage(s, i, reply)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		err = RespondWithChoices(s, i, b.autocomplete(ctx, i))
	}

	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to respond to interaction",
			"interaction_id", i.ID,
			"error", err,
		)
	}
}

// handleMessage handles prefix commands in messages
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	mentionIDs := make([]string, 0, len(m.Mentions))
	for _, user := range m.Mentions {
		mentionIDs = append(mentionIDs, user.ID)
	}

	reply, ok := b.dispatchMessage(ctx, m.GuildID, m.Author.ID, m.Content, mentionIDs)
	if !ok {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, truncate(reply)); err != nil {
		b.logger.ErrorContext(ctx, "Failed to send message",
			"channel_id", m.ChannelID,
			"error", err,
		)
	}
}

// dispatchInteraction runs a slash command; ok is false for unknown commands
func (b *Bot) dispatchInteraction(ctx context.Context, i *discordgo.InteractionCreate) (reply string, ephemeral bool, ok bool) {
	cmd, ok := b.commands[i.ApplicationCommandData().Name]
	if !ok {
		return "", false, false
	}

	inv, _ := invocationFromInteraction(i)
	reply, ephemeral = b.execute(ctx, cmd, inv)
	return reply, ephemeral, true
}

// dispatchMessage runs a prefix command; ok is false when the message isn't one
func (b *Bot) dispatchMessage(ctx context.Context, guildID, userID, content string, mentionIDs []string) (string, bool) {
	name, args, ok := splitPrefixCommand(b.config.CommandPrefix, content)
	if !ok {
		return "", false
	}

	cmd, ok := b.prefixCommands[name]
	if !ok {
		return b.errorMessage(ctx, messaging.ErrorTypeUnknownCommand), true
	}

	inv, usage := cmd.ParseArgs(&PrefixMessage{
		GuildID:    guildID,
		UserID:     userID,
		Args:       args,
		MentionIDs: mentionIDs,
	})
	if inv == nil {
		return usage, true
	}

	reply, _ := b.execute(ctx, cmd, inv)
	return reply, true
}

// autocomplete collects suggestions from commands that offer them
func (b *Bot) autocomplete(ctx context.Context, i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandOptionChoice {
	cmd, ok := b.commands[i.ApplicationCommandData().Name]
	if !ok {
		return nil
	}

	completer, ok := cmd.(Autocompleter)
	if !ok {
		return nil
	}

	inv, focused := invocationFromInteraction(i)
	return completer.Autocomplete(ctx, inv, focused)
}

// execute runs a command, turning failures into a friendly reply
func (b *Bot) execute(ctx context.Context, cmd CommandHandler, inv *Invocation) (string, bool) {
	reply, err := cmd.Execute(ctx, inv)
	if err == nil {
		return reply, false
	}

	var private privateReply
	if errors.As(err, &private) {
		return string(private), true
	}

	if errors.Is(err, errGuildOnly) {
		return b.errorMessage(ctx, messaging.ErrorTypeGuildOnly), true
	}

	if errors.Is(err, hangman.ErrBusy) || errors.Is(err, todo.ErrBusy) {
		b.logger.WarnContext(ctx, "Command hit a busy record",
			"command", cmd.GetName(),
			"subcommand", inv.Subcommand,
			"guild_id", inv.GuildID,
			"user_id", inv.UserID,
		)
		return b.errorMessage(ctx, messaging.ErrorTypeBusy), true
	}

	b.logger.ErrorContext(ctx, "Error handling command",
		"command", cmd.GetName(),
		"subcommand", inv.Subcommand,
		"guild_id", inv.GuildID,
		"user_id", inv.UserID,
		"prefix", inv.FromPrefix,
		"error", err,
	)

	return b.errorMessage(ctx, messaging.ErrorTypeInternal), true
}

// errorMessage asks the messaging service for a reply, falling back to a plain one
func (b *Bot) errorMessage(ctx context.Context, errorType messaging.ErrorType) string {
	output, err := b.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType,
	})
	if err != nil || output.Message == "" {
		return messaging.MessageInternal
	}
	return output.Message
}
