package checklist

// ServiceError is a custom error type for checklist service errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        ServiceError = "config cannot be nil"
	ErrNilChecklistRepo ServiceError = "checklist repository cannot be nil"
	ErrNilClock         ServiceError = "clock cannot be nil"
)

// User facing messages
const (
	MessageEmptyItem       = "Please provide an item to add."
	MessageInvalidPosition = "Invalid position."
	MessageItemNotFound    = "Item not found."
	MessageItemRemoved     = "Item removed."
	MessageItemUpdated     = "Item updated."
	MessageAlreadyChecked  = "Item already checked for today."
	MessageNotChecked      = "Item is not checked."
	MessageInvalidDate     = "Invalid date format. Please use YYYY-MM-DD"
	MessageAllCompleted    = "🎉 Congratulations! All items completed!"
)
