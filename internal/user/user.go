package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"cinema-ticket-go/internal/dates"
	"cinema-ticket-go/internal/models"
	"cinema-ticket-go/internal/security"

	"github.com/shopspring/decimal"
)

var phonePattern = regexp.MustCompile(`^09[0-9]{9}$`)

// User is the domain model for a system account: identity, validated
// profile fields, salted credentials and a wallet with exact decimal
// arithmetic. All mutation goes through methods so invariants hold.
type User struct {
	id             string
	username       string
	phone          string
	birthDate      time.Time
	salt           string
	passwordHash   string
	walletBalance  decimal.Decimal
	createdAt      time.Time
	hashIterations int
}

// NewParams carries the inputs for registering a new user.
type NewParams struct {
	Username       string
	Password       string
	BirthDate      string
	Phone          string
	HashIterations int // 0 means security.DefaultHashIterations
}

// New validates the profile fields, hashes the password and returns a
// user with a zero wallet balance.
func New(params NewParams) (*User, error) {
	u := &User{
		id:             security.NewID(),
		createdAt:      time.Now(),
		walletBalance:  decimal.Zero,
		hashIterations: params.HashIterations,
	}

	if err := u.SetUsername(params.Username); err != nil {
		return nil, err
	}
	if err := u.SetBirthDate(params.BirthDate); err != nil {
		return nil, err
	}
	if err := u.SetPhone(params.Phone); err != nil {
		return nil, err
	}
	if err := u.SetPassword(params.Password); err != nil {
		return nil, err
	}

	return u, nil
}

// FromRecord rebuilds a user from its persisted form, re-running field
// validation so corrupt records are rejected on load.
func FromRecord(record *models.UserRecord, hashIterations int) (*User, error) {
	u := &User{
		id:             record.Id,
		salt:           record.Salt,
		passwordHash:   record.PasswordHash,
		createdAt:      record.CreatedAt,
		hashIterations: hashIterations,
	}

	if err := u.SetUsername(record.Username); err != nil {
		return nil, err
	}
	if err := u.SetBirthDate(record.BirthDate); err != nil {
		return nil, err
	}
	if err := u.SetPhone(record.Phone); err != nil {
		return nil, err
	}

	if record.WalletBalance.IsNegative() {
		return nil, fmt.Errorf("%w: stored balance %s is negative", ErrInvalidAmount, record.WalletBalance.String())
	}
	u.walletBalance = record.WalletBalance

	return u, nil
}

// ToRecord converts the user to its persisted form.
func (u *User) ToRecord() *models.UserRecord {
	return &models.UserRecord{
		Id:            u.id,
		Username:      u.username,
		Phone:         u.phone,
		BirthDate:     u.BirthDate(),
		Salt:          u.salt,
		PasswordHash:  u.passwordHash,
		WalletBalance: u.walletBalance,
		CreatedAt:     u.createdAt,
	}
}

func (u *User) Id() string           { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Phone() string        { return u.phone }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) Salt() string         { return u.salt }
func (u *User) PasswordHash() string { return u.passwordHash }

// BirthDate returns the birth date in canonical YYYY-MM-DD form.
func (u *User) BirthDate() string { return u.birthDate.Format(dates.Layout) }

// Age returns the user's age in full years as of today.
func (u *User) Age() int {
	today := dates.Truncate(time.Now())
	years := today.Year() - u.birthDate.Year()
	anniversary := time.Date(today.Year(), u.birthDate.Month(), u.birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if today.Before(anniversary) {
		years--
	}
	return years
}

// SetUsername trims and validates the username (minimum 3 characters).
func (u *User) SetUsername(value string) error {
	value = strings.TrimSpace(value)
	if len(value) < 3 {
		return fmt.Errorf("%w: %q", ErrInvalidUsername, value)
	}
	u.username = value
	return nil
}

// SetPhone accepts an empty value or an 11 digit number starting with 09.
func (u *User) SetPhone(value string) error {
	if strings.TrimSpace(value) == "" {
		u.phone = ""
		return nil
	}
	if !phonePattern.MatchString(value) {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, value)
	}
	u.phone = value
	return nil
}

// SetBirthDate parses the accepted date formats and rejects future or
// unrealistically old dates.
func (u *User) SetBirthDate(value string) error {
	parsed, err := dates.Parse(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBirthDate, err)
	}
	if parsed.After(dates.Truncate(time.Now())) {
		return fmt.Errorf("%w: %q is in the future", ErrInvalidBirthDate, value)
	}
	if parsed.Year() < 1900 {
		return fmt.Errorf("%w: %q is unrealistically old", ErrInvalidBirthDate, value)
	}
	u.birthDate = parsed
	return nil
}

// WalletBalance returns the current balance.
func (u *User) WalletBalance() decimal.Decimal { return u.walletBalance }

// Deposit adds a positive amount to the wallet.
func (u *User) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount.String())
	}
	u.walletBalance = u.walletBalance.Add(amount)
	return nil
}

// Withdraw removes a positive amount from the wallet, bounded by the
// current balance.
func (u *User) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount.String())
	}
	if amount.GreaterThan(u.walletBalance) {
		return fmt.Errorf("%w: required %s, available %s",
			ErrInsufficientBalance, amount.String(), u.walletBalance.String())
	}
	u.walletBalance = u.walletBalance.Sub(amount)
	return nil
}

// SetPassword enforces the password policy (minimum 8 characters with an
// uppercase letter, a lowercase letter and a digit) and stores a fresh
// salt and PBKDF2 digest.
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: must be at least 8 characters", ErrInvalidPassword)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("%w: must contain an uppercase letter", ErrInvalidPassword)
	}
	if !hasLower {
		return fmt.Errorf("%w: must contain a lowercase letter", ErrInvalidPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: must contain a number", ErrInvalidPassword)
	}

	u.salt, u.passwordHash = security.Hash(password, u.hashIterations)
	return nil
}

// CheckPassword verifies a password against the stored salt and digest.
func (u *User) CheckPassword(password string) (bool, error) {
	return security.Verify(u.salt, u.passwordHash, password, u.hashIterations)
}
