package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/homebot/internal/services/hangman"
	"github.com/bwmarrin/discordgo"
)

// Prefix replies for hangman
const (
	messageHangmanUsage       = "Please provide a subcommand (display, guess)."
	messageHangmanPrefixStart = "Start a game with `/hangman startgame` so the phrase stays hidden."
	messageHangmanEmptyGuess  = "Please provide the letters to guess."
)

// HangmanCommand handles the /hangman command
type HangmanCommand struct {
	BaseCommand
	hangmanService hangman.Service
}

// NewHangmanCommand creates a new hangman command handler
func NewHangmanCommand(hangmanService hangman.Service) *HangmanCommand {
	return &HangmanCommand{
		BaseCommand: BaseCommand{
			Name:        "hangman",
			Description: "Play hangman",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("startgame", "Start a game of hangman",
					stringOption("phrase", "The phrase to guess", true),
					intOption("num_guesses", "How many wrong guesses are allowed", false, 1, 26),
				),
				subcommand("display", "Display the state of the current hangman game"),
				subcommand("guess", "Guess some letters for the current hangman game",
					stringOption("guess", "The letters to guess", true),
				),
			},
		},
		hangmanService: hangmanService,
	}
}

// ParseArgs handles `!hangman [display|guess <letters>]`
func (c *HangmanCommand) ParseArgs(msg *PrefixMessage) (*Invocation, string) {
	if len(msg.Args) == 0 {
		return newInvocation(msg, "display"), ""
	}

	sub := strings.ToLower(msg.Args[0])
	rest := msg.Args[1:]

	switch sub {
	case "display", "board":
		return newInvocation(msg, "display"), ""
	case "guess":
		if len(rest) == 0 {
			return nil, messageHangmanEmptyGuess
		}
		inv := newInvocation(msg, "guess")
		inv.Options["guess"] = strings.Join(rest, " ")
		return inv, ""
	case "start", "startgame":
		return nil, messageHangmanPrefixStart
	default:
		return nil, messageHangmanUsage
	}
}

// Execute runs a hangman subcommand
func (c *HangmanCommand) Execute(ctx context.Context, inv *Invocation) (string, error) {
	if inv.GuildID == "" {
		return "", errGuildOnly
	}

	switch inv.Subcommand {
	case "startgame":
		return c.handleStartGame(ctx, inv)
	case "display":
		return c.handleDisplay(ctx, inv)
	case "guess":
		return c.handleGuess(ctx, inv)
	default:
		return messageHangmanUsage, nil
	}
}

func (c *HangmanCommand) handleStartGame(ctx context.Context, inv *Invocation) (string, error) {
	output, err := c.hangmanService.StartGame(ctx, &hangman.StartGameInput{
		GuildID:    inv.GuildID,
		UserID:     inv.UserID,
		Phrase:     inv.String("phrase"),
		NumGuesses: inv.OptionalInt("num_guesses"),
	})
	if err != nil {
		return "", err
	}

	if output.Invalid {
		return "", privateReply(output.Message)
	}
	return output.Message, nil
}

func (c *HangmanCommand) handleDisplay(ctx context.Context, inv *Invocation) (string, error) {
	output, err := c.hangmanService.GetBoard(ctx, &hangman.GetBoardInput{
		GuildID: inv.GuildID,
	})
	if err != nil {
		return "", err
	}

	if !output.Success {
		return output.Message, nil
	}

	return fmt.Sprintf("%s\nGame expires <t:%d:R>", output.Message, output.ExpiresAt.Unix()), nil
}

func (c *HangmanCommand) handleGuess(ctx context.Context, inv *Invocation) (string, error) {
	output, err := c.hangmanService.Guess(ctx, &hangman.GuessInput{
		GuildID: inv.GuildID,
		Letters: inv.String("guess"),
	})
	if err != nil {
		return "", err
	}

	if output.Invalid {
		return "", privateReply(output.Message)
	}
	return output.Message, nil
}
