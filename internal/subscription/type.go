package subscription

import "fmt"

// Type is the closed set of subscription tiers. Bronze represents the
// absence of a paid tier and is never persisted by the normal flow.
type Type string

const (
	Bronze Type = "bronze"
	Silver Type = "silver"
	Gold   Type = "gold"
)

// Valid reports whether t is one of the three known tiers.
func (t Type) Valid() bool {
	switch t {
	case Bronze, Silver, Gold:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }

// ParseType converts a stored tier name into a Type, rejecting anything
// outside the enumerated set.
func ParseType(value string) (Type, error) {
	t := Type(value)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSubscriptionType, value)
	}
	return t, nil
}
