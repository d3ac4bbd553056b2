package hangman

import (
	"regexp"

	"github.com/forPelevin/gomoji"
)

// ValidationError describes why a phrase cannot be used
type ValidationError string

// Error implements the error interface
func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrNonASCII     ValidationError = "Your phrase contains non-ASCII characters. Only basic English letters and punctuation are allowed."
	ErrUnprintable  ValidationError = "Your phrase contains unprintable characters like tabs or line breaks."
	ErrCustomEmoji  ValidationError = "Custom emojis are not allowed in the hangman phrase."
	ErrUnicodeEmoji ValidationError = "Unicode emojis are not allowed in the hangman phrase."
)

var customEmojiPattern = regexp.MustCompile(`<a?:\w+:\d+>`)

// Validate checks a phrase before a game is created and returns the first
// problem it finds. Every Unicode emoji lies outside printable ASCII, so the
// emoji check only decides anything if the ASCII rule is ever relaxed.
func Validate(phrase string) error {
	for _, r := range phrase {
		if r > 0x7e {
			return ErrNonASCII
		}
		if r < 0x20 {
			return ErrUnprintable
		}
	}

	if customEmojiPattern.MatchString(phrase) {
		return ErrCustomEmoji
	}

	if gomoji.ContainsEmoji(phrase) {
		return ErrUnicodeEmoji
	}

	return nil
}
