package todo

// ServiceError is a custom error type for todo service errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig   ServiceError = "config cannot be nil"
	ErrNilTodoRepo ServiceError = "todo repository cannot be nil"
	ErrNilClock    ServiceError = "clock cannot be nil"
	ErrBusy        ServiceError = "todo list is busy"
)

// User facing messages
const (
	MessageEmptyTask     = "Please provide a task to add."
	MessageTaskNotFound  = "Task not found."
	MessageSamePosition  = "Task is already in that position."
	MessageEmptyList     = "Your todo list is empty!"
	messageListSeparator = "------------------------------"
)
