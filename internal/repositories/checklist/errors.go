package checklist

// RepositoryError is a domain error raised by the checklist repository
type RepositoryError string

// Error implements the error interface
func (e RepositoryError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrItemNotFound    RepositoryError = "checklist item not found"
	ErrInvalidPosition RepositoryError = "checklist position out of range"
	ErrAlreadyChecked  RepositoryError = "checklist item already checked for day"
	ErrNotChecked      RepositoryError = "checklist item not checked for day"
)
