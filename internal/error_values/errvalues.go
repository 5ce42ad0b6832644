package errorvalues

import "errors"

var (
	ErrUserNotFound     = errors.New("user doesn't exist")
	ErrEmailTaken       = errors.New("email already registered")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid session token")

	ErrExpenseNotFound  = errors.New("expense doesn't exist")
	ErrHabitNotFound    = errors.New("habit doesn't exist")
	ErrHabitLogNotFound = errors.New("habit log doesn't exist")
	ErrTaskNotFound     = errors.New("task doesn't exist")
	ErrWrongOwner       = errors.New("resource has different owner")
)

// ValidationError carries the user-facing message of the first rule
// a request payload violated.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(message string) error {
	return &ValidationError{Message: message}
}
