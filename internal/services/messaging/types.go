package messaging

import (
	"github.com/KirkDiggler/homebot/internal/dice"
)

// ErrorType categorizes the failures users get told about
type ErrorType string

const (
	// ErrorTypeInternal is an unexpected failure, usually storage
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeUnknownCommand is a prefix command nobody handles
	ErrorTypeUnknownCommand ErrorType = "unknown_command"

	// ErrorTypeGuildOnly is a server-only command used in a direct message
	ErrorTypeGuildOnly ErrorType = "guild_only"

	// ErrorTypeBusy is a list or game that kept changing while it was being updated
	ErrorTypeBusy ErrorType = "busy"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral always returns the plain message
	ToneNeutral MessageTone = "neutral"

	// ToneFunny picks one of a handful of livelier variants
	ToneFunny MessageTone = "funny"
)

// Config holds configuration for the messaging service
type Config struct {
	// Roller picks among message variants; defaults to a time seeded roller
	Roller *dice.Roller

	// Tone is used when a request doesn't ask for one; defaults to ToneNeutral
	Tone MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType

	// Tone overrides the configured tone (optional)
	Tone MessageTone
}

// GetErrorMessageOutput contains the selected error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
