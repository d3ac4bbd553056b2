package hangman

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/homebot/internal/models"
)

// PerfectGameLines are the congratulations shown when a game is won without a miss
var PerfectGameLines = []string{
	"Amazing, a perfect game!",
	"Wow, not a single letter guessed wrong!",
	"You nailed it, a perfect game!",
	"Great job not missing even once.",
}

// Picker chooses one line from a pool
type Picker interface {
	Pick(options []string) string
}

// Render returns the board with the guess summary and any win or loss banner
func Render(game *models.HangmanGame, picker Picker) string {
	var b strings.Builder
	b.WriteString(game.Board)

	incorrect := IncorrectGuesses(game)
	if len(incorrect) > 0 {
		fmt.Fprintf(&b, "\nIncorrect guesses: %s", strings.Join(incorrect, ", "))
	}

	lost := false
	if game.NumGuesses != nil {
		remaining := RemainingGuesses(game)
		fmt.Fprintf(&b, "\n%d/%d guesses remaining", remaining, *game.NumGuesses)
		if remaining <= 0 {
			lost = true
			fmt.Fprintf(&b, "\n**You Lose!** :regional_indicator_f:\nPhrase: %s", game.Phrase)
		}
	}

	if !lost && Solved(game) {
		b.WriteString("\n**You Win!!!** 🎉")
		if len(incorrect) == 0 && picker != nil {
			b.WriteString("\n" + picker.Pick(PerfectGameLines))
		}
	}

	return b.String()
}
