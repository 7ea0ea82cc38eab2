package store

import (
	"context"
	"errors"

	"cinema-ticket-go/internal/models"
)

// Sentinel errors shared across all backend implementations.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameExists       = errors.New("username already exists")
	ErrSubscriptionNotFound = errors.New("no subscription found for user")
)

// Store defines the contract that every persistence backend (JSON files,
// SQLite, ...) must satisfy. Each mutating call is a full read-modify-write
// cycle over a single record; backends serialize cycles within one process
// but offer no isolation across processes, so concurrent writers for the
// same record are last-writer-wins.
type Store interface {
	// --- Users ---
	GetUser(ctx context.Context, userId string) (*models.UserRecord, error)
	GetUserByUsername(ctx context.Context, username string) (*models.UserRecord, error)
	PutUser(ctx context.Context, record *models.UserRecord) error

	// --- Subscriptions ---
	GetSubscription(ctx context.Context, userId string) (*models.SubscriptionRecord, error)
	PutSubscription(ctx context.Context, record *models.SubscriptionRecord) error

	// --- Lifecycle ---
	Close() error
}
