package user

import "errors"

// Validation errors raised by the User entity. Callers discriminate with
// errors.Is and present the kind-specific message.
var (
	ErrInvalidUsername     = errors.New("username must be at least 3 characters long")
	ErrInvalidPhone        = errors.New("phone number must match 09xxxxxxxxx or be empty")
	ErrInvalidBirthDate    = errors.New("invalid birth date")
	ErrInvalidPassword     = errors.New("invalid password format")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
