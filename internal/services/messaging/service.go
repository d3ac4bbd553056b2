package messaging

import (
	"context"
	"errors"

	"github.com/KirkDiggler/homebot/internal/dice"
)

// Plain messages, one per error type
const (
	MessageInternal       = "Uh Oh, something went wrong"
	MessageUnknownCommand = "Command not recognized."
	MessageGuildOnly      = "This command only works in a server."
	MessageBusy           = "That is busy right now, please try again."
)

var plainMessages = map[ErrorType]string{
	ErrorTypeInternal:       MessageInternal,
	ErrorTypeUnknownCommand: MessageUnknownCommand,
	ErrorTypeGuildOnly:      MessageGuildOnly,
	ErrorTypeBusy:           MessageBusy,
}

var funnyMessages = map[ErrorType][]string{
	ErrorTypeInternal: {
		MessageInternal,
		"Uh Oh, something went wrong. I blame the hamsters powering the server.",
		"Something broke. It wasn't me. Probably.",
		"Well that didn't work. Give it another shot in a bit.",
	},
	ErrorTypeUnknownCommand: {
		MessageUnknownCommand,
		"Command not recognized. Did you make that one up?",
		"I don't know that one. Try !help in your heart.",
	},
	ErrorTypeGuildOnly: {
		MessageGuildOnly,
		"This one needs an audience. Try it in a server.",
	},
	ErrorTypeBusy: {
		MessageBusy,
		"Whoa, too many cooks in here. Try again.",
	},
}

// service implements the Service interface
type service struct {
	roller *dice.Roller
	tone   MessageTone
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.New(nil)
	}

	tone := cfg.Tone
	if tone == "" {
		tone = ToneNeutral
	}

	return &service{
		roller: roller,
		tone:   tone,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.Tone
	if tone == "" {
		tone = s.tone
	}

	plain, ok := plainMessages[input.ErrorType]
	if !ok {
		plain = MessageInternal
	}

	if tone != ToneFunny {
		return &GetErrorMessageOutput{
			Message: plain,
			Tone:    tone,
		}, nil
	}

	variants, ok := funnyMessages[input.ErrorType]
	if !ok {
		variants = funnyMessages[ErrorTypeInternal]
	}

	return &GetErrorMessageOutput{
		Message: s.roller.Pick(variants),
		Tone:    tone,
	}, nil
}
