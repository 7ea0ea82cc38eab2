package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRecord is the persisted form of a user. Monetary values are stored
// as canonical decimal strings by every backend.
type UserRecord struct {
	Id            string          `json:"id" db:"id"`
	Username      string          `json:"username" db:"username"`
	Phone         string          `json:"phone,omitempty" db:"phone"`
	BirthDate     string          `json:"birth_date" db:"birth_date"`
	Salt          string          `json:"salt" db:"salt"`
	PasswordHash  string          `json:"password_hash" db:"password_hash"`
	WalletBalance decimal.Decimal `json:"wallet_balance" db:"wallet_balance"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// SubscriptionRecord is the persisted form of a subscription, one per user.
// A new subscription for the same user overwrites the previous record.
type SubscriptionRecord struct {
	UserId           string `json:"user_id" db:"user_id"`
	SubscriptionType string `json:"subscription_type" db:"subscription_type"`
	StartDate        string `json:"start_date" db:"start_date"`
	EndDate          string `json:"end_date,omitempty" db:"end_date"`
	RemainingCredits int    `json:"remaining_credits" db:"remaining_credits"`
	DrinkBenefits    int    `json:"drink_benefits" db:"drink_benefits"`
}

// WalletTransaction is a gateway-side record of a wallet movement.
// Deposits carry a positive amount, withdrawals a negative one.
type WalletTransaction struct {
	Id          string          `json:"id"`
	UserId      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
