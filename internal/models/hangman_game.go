package models

import (
	"time"
)

// HangmanGame represents a phrase guessing game scoped to a Discord guild
type HangmanGame struct {
	// ID is the unique identifier for the game
	ID string

	// GuildID is the Discord guild the game belongs to
	GuildID string

	// UserID is the Discord user who started the game
	UserID string

	// Phrase is the text to guess, case preserved
	Phrase string

	// GuessedCharacters holds every lowercase character guessed so far, sorted
	GuessedCharacters string

	// NumGuesses caps incorrect guesses; nil means unlimited
	NumGuesses *int

	// GameOver is set once the phrase is solved or the guesses run out
	GameOver bool

	// Board is the display string derived from Phrase and GuessedCharacters
	Board string

	// CreatedAt is when the game was started
	CreatedAt time.Time
}
