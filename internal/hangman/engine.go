// Package hangman implements the phrase guessing rules: board computation,
// guess handling and win/loss detection over a plain models.HangmanGame record.
package hangman

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/KirkDiggler/homebot/internal/models"
)

// Placeholder stands in for an unguessed character. The backslash keeps
// Discord markdown from reading runs of underscores as italics.
const Placeholder = `\_`

// passThrough characters are always shown, guessed or not
var passThrough = map[rune]bool{
	' ': true, '?': true, '!': true, '\'': true, '"': true, '.': true, ',': true,
	'<': true, '>': true, '=': true, '-': true, '+': true, '*': true, '/': true,
	':': true, ';': true, '(': true, ')': true, '{': true, '}': true, '[': true,
	']': true, '|': true, '@': true, '#': true, '$': true, '%': true, '^': true,
	'&': true, '`': true, '~': true,
}

// NewGame builds a fresh game with its board already computed
func NewGame(id, guildID, userID, phrase string, numGuesses *int, createdAt time.Time) *models.HangmanGame {
	game := &models.HangmanGame{
		ID:         id,
		GuildID:    guildID,
		UserID:     userID,
		Phrase:     phrase,
		NumGuesses: numGuesses,
		CreatedAt:  createdAt,
	}
	RecomputeBoard(game)
	return game
}

// Guess adds letters to the guessed set and recomputes the board.
// Guesses against a finished game are ignored.
func Guess(game *models.HangmanGame, letters string) {
	if game == nil || game.GameOver {
		return
	}

	guessed := make(map[rune]bool)
	for _, r := range game.GuessedCharacters {
		guessed[r] = true
	}
	for _, r := range strings.ToLower(letters) {
		guessed[r] = true
	}
	delete(guessed, ' ')

	runes := make([]rune, 0, len(guessed))
	for r := range guessed {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	game.GuessedCharacters = string(runes)

	RecomputeBoard(game)
}

// RecomputeBoard rebuilds the board from the phrase and guessed characters and
// flags the game over when it is solved or out of guesses.
func RecomputeBoard(game *models.HangmanGame) {
	if game == nil {
		return
	}

	board, hidden := buildBoard(game)
	game.Board = board

	if hidden == 0 {
		game.GameOver = true
		return
	}
	if game.NumGuesses != nil && len(IncorrectGuesses(game)) >= *game.NumGuesses {
		game.GameOver = true
	}
}

// IncorrectGuesses returns the sorted guessed characters that appear nowhere in the phrase
func IncorrectGuesses(game *models.HangmanGame) []string {
	phrase := strings.ToLower(game.Phrase)
	var incorrect []string
	for _, r := range game.GuessedCharacters {
		if !strings.ContainsRune(phrase, r) {
			incorrect = append(incorrect, string(r))
		}
	}
	sort.Strings(incorrect)
	return incorrect
}

// Solved reports whether every character of the phrase is visible
func Solved(game *models.HangmanGame) bool {
	_, hidden := buildBoard(game)
	return hidden == 0
}

// Lost reports whether the incorrect guesses have used up the limit
func Lost(game *models.HangmanGame) bool {
	return game.NumGuesses != nil && RemainingGuesses(game) <= 0
}

// RemainingGuesses is the number of incorrect guesses left, never below zero.
// Unlimited games always report zero; check NumGuesses first.
func RemainingGuesses(game *models.HangmanGame) int {
	if game.NumGuesses == nil {
		return 0
	}
	remaining := *game.NumGuesses - len(IncorrectGuesses(game))
	if remaining < 0 {
		return 0
	}
	return remaining
}

func buildBoard(game *models.HangmanGame) (string, int) {
	guessed := make(map[rune]bool, len(game.GuessedCharacters))
	for _, r := range game.GuessedCharacters {
		guessed[r] = true
	}

	var b strings.Builder
	hidden := 0
	for _, r := range game.Phrase {
		lower := unicode.ToLower(r)
		if passThrough[lower] || guessed[lower] {
			b.WriteRune(r)
			continue
		}
		b.WriteString(Placeholder)
		hidden++
	}
	return b.String(), hidden
}
