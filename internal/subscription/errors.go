package subscription

import "errors"

// Validation errors raised at construction and creation time.
var (
	ErrInvalidSubscriptionType = errors.New("invalid subscription type")
	ErrInvalidDate             = errors.New("invalid date")
)
