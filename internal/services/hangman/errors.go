package hangman

// ServiceError is a custom error type for hangman service errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        ServiceError = "config cannot be nil"
	ErrNilGameRepo      ServiceError = "game repository cannot be nil"
	ErrNilClock         ServiceError = "clock cannot be nil"
	ErrNilUUIDGenerator ServiceError = "UUID generator cannot be nil"
	ErrBusy             ServiceError = "hangman game is busy"
)

// User facing messages
const (
	MessageGameActive   = "There is already an active hangman game."
	MessageNoActiveGame = "No hangman game active."
	MessageEmptyPhrase  = "Please provide a phrase for the hangman game."
	MessageEmptyGuess   = "Please provide some letters to guess."
	MessageGuessLimit   = "Number of guesses must be at least 1."
)
