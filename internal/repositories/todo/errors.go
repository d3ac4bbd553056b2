package todo

// RepositoryError is a domain error raised by the todo repository
type RepositoryError string

// Error implements the error interface
func (e RepositoryError) Error() string {
	return string(e)
}

const (
	// ErrItemNotFound is returned when no item exists at a position
	ErrItemNotFound RepositoryError = "todo item not found"

	// ErrInvalidPosition is returned when a position is outside 1..N
	ErrInvalidPosition RepositoryError = "todo position out of range"

	// ErrContention is returned when the list kept changing under a transaction
	ErrContention RepositoryError = "todo list changed too often, try again"
)
