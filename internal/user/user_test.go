package user

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

const testIterations = 1000

func newTestUser(t *testing.T) *User {
	t.Helper()
	u, err := New(NewParams{
		Username:       "maryam",
		Password:       "StrongPass123",
		BirthDate:      "1995-05-05",
		Phone:          "09123456789",
		HashIterations: testIterations,
	})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return u
}

func TestNew_Valid(t *testing.T) {
	u := newTestUser(t)

	if u.Id() == "" {
		t.Error("Expected a generated id")
	}
	if u.Username() != "maryam" {
		t.Errorf("Username = %q", u.Username())
	}
	if u.BirthDate() != "1995-05-05" {
		t.Errorf("BirthDate = %q", u.BirthDate())
	}
	if !u.WalletBalance().Equal(decimal.Zero) {
		t.Errorf("Expected zero balance, got %s", u.WalletBalance().String())
	}
}

func TestNew_ValidationFailures(t *testing.T) {
	cases := []struct {
		name    string
		params  NewParams
		wantErr error
	}{
		{
			name:    "short username",
			params:  NewParams{Username: "ab", Password: "StrongPass123", BirthDate: "1995-05-05"},
			wantErr: ErrInvalidUsername,
		},
		{
			name:    "bad phone",
			params:  NewParams{Username: "maryam", Password: "StrongPass123", BirthDate: "1995-05-05", Phone: "12345"},
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "unparseable birth date",
			params:  NewParams{Username: "maryam", Password: "StrongPass123", BirthDate: "05-05-1995"},
			wantErr: ErrInvalidBirthDate,
		},
		{
			name:    "future birth date",
			params:  NewParams{Username: "maryam", Password: "StrongPass123", BirthDate: "2999-01-01"},
			wantErr: ErrInvalidBirthDate,
		},
		{
			name:    "ancient birth date",
			params:  NewParams{Username: "maryam", Password: "StrongPass123", BirthDate: "1850-01-01"},
			wantErr: ErrInvalidBirthDate,
		},
		{
			name:    "weak password",
			params:  NewParams{Username: "maryam", Password: "short", BirthDate: "1995-05-05"},
			wantErr: ErrInvalidPassword,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.params.HashIterations = testIterations
			if _, err := New(tc.params); !errors.Is(err, tc.wantErr) {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSetPassword_Policy(t *testing.T) {
	u := newTestUser(t)

	cases := []string{
		"Sh0rt",        // too short
		"alllower123",  // no uppercase
		"ALLUPPER123",  // no lowercase
		"NoDigitsHere", // no number
	}
	for _, password := range cases {
		if err := u.SetPassword(password); !errors.Is(err, ErrInvalidPassword) {
			t.Errorf("SetPassword(%q): expected ErrInvalidPassword, got %v", password, err)
		}
	}

	if err := u.SetPassword("NewStrongPass1"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}
	ok, err := u.CheckPassword("NewStrongPass1")
	if err != nil {
		t.Fatalf("CheckPassword failed: %v", err)
	}
	if !ok {
		t.Error("Expected new password to verify")
	}
}

func TestDepositAndWithdraw(t *testing.T) {
	u := newTestUser(t)

	if err := u.Deposit(decimal.RequireFromString("100.00")); err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}
	if err := u.Withdraw(decimal.RequireFromString("40.50")); err != nil {
		t.Fatalf("Withdraw failed: %v", err)
	}

	expected := decimal.RequireFromString("59.50")
	if !u.WalletBalance().Equal(expected) {
		t.Errorf("Balance = %s, expected %s", u.WalletBalance().String(), expected.String())
	}
}

func TestDeposit_RejectsNonPositive(t *testing.T) {
	u := newTestUser(t)

	for _, amount := range []string{"0", "-5"} {
		if err := u.Deposit(decimal.RequireFromString(amount)); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Deposit(%s): expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestWithdraw_InsufficientBalance(t *testing.T) {
	u := newTestUser(t)

	if err := u.Deposit(decimal.RequireFromString("10")); err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}
	err := u.Withdraw(decimal.RequireFromString("10.01"))
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("Expected ErrInsufficientBalance, got %v", err)
	}
	if !u.WalletBalance().Equal(decimal.RequireFromString("10")) {
		t.Errorf("Balance changed on failed withdrawal: %s", u.WalletBalance().String())
	}
}

func TestRecordRoundTrip(t *testing.T) {
	u := newTestUser(t)
	if err := u.Deposit(decimal.RequireFromString("42.42")); err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}

	restored, err := FromRecord(u.ToRecord(), testIterations)
	if err != nil {
		t.Fatalf("FromRecord failed: %v", err)
	}

	if restored.Id() != u.Id() {
		t.Errorf("Id = %q, expected %q", restored.Id(), u.Id())
	}
	if restored.Username() != u.Username() {
		t.Errorf("Username = %q, expected %q", restored.Username(), u.Username())
	}
	if !restored.WalletBalance().Equal(u.WalletBalance()) {
		t.Errorf("Balance = %s, expected %s", restored.WalletBalance().String(), u.WalletBalance().String())
	}

	ok, err := restored.CheckPassword("StrongPass123")
	if err != nil {
		t.Fatalf("CheckPassword failed: %v", err)
	}
	if !ok {
		t.Error("Expected password to survive the round trip")
	}
}

func TestRecordRoundTrip_DateNormalization(t *testing.T) {
	u, err := New(NewParams{
		Username:       "maryam",
		Password:       "StrongPass123",
		BirthDate:      "05/05/1995",
		HashIterations: testIterations,
	})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	if u.ToRecord().BirthDate != "1995-05-05" {
		t.Errorf("BirthDate = %q, expected normalized form", u.ToRecord().BirthDate)
	}
}
