package worldclock

// ServiceError is a custom error type for world clock service errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    ServiceError = "config cannot be nil"
	ErrNilClockRepo ServiceError = "world clock repository cannot be nil"
	ErrNilClock     ServiceError = "clock cannot be nil"
)

// User facing messages
const (
	MessageInvalidTimezone  = "Timezone not found"
	MessageTimezoneNotFound = "Timezone not found."
	MessageLabelUpdated     = "Label updated successfully!"
	MessageNoClocks         = "No timezones added to world clock"
)

// TimeLayout is how each pinned timezone's current time is shown
const TimeLayout = "Monday January 02 03:04 PM"
