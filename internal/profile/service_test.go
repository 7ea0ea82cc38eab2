package profile

import (
	"context"
	"errors"
	"testing"

	"cinema-ticket-go/internal/jsonstore"
	"cinema-ticket-go/internal/models"
	"cinema-ticket-go/internal/store"
	"cinema-ticket-go/internal/user"

	"go.uber.org/zap"
)

const testIterations = 1000

func setupProfileTest(t *testing.T) (*Service, *user.User) {
	t.Helper()

	st, err := jsonstore.New(models.StorageConfig{DataDir: t.TempDir()}, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}

	u, err := user.New(user.NewParams{
		Username:       "maryam",
		Password:       "StrongPass123",
		BirthDate:      "1995-05-05",
		Phone:          "09123456789",
		HashIterations: testIterations,
	})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if err := st.PutUser(context.Background(), u.ToRecord()); err != nil {
		t.Fatalf("Failed to store user: %v", err)
	}

	return NewService(st, testIterations, zap.NewNop()), u
}

func TestChangePhone(t *testing.T) {
	service, u := setupProfileTest(t)
	ctx := context.Background()

	updated, err := service.ChangePhone(ctx, u.Id(), "09998887766")
	if err != nil {
		t.Fatalf("ChangePhone failed: %v", err)
	}
	if updated.Phone() != "09998887766" {
		t.Errorf("Phone = %q", updated.Phone())
	}

	reloaded, err := service.Get(ctx, u.Id())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if reloaded.Phone() != "09998887766" {
		t.Errorf("Persisted phone = %q", reloaded.Phone())
	}
}

func TestChangePhone_Invalid(t *testing.T) {
	service, u := setupProfileTest(t)

	_, err := service.ChangePhone(context.Background(), u.Id(), "12345")
	if !errors.Is(err, user.ErrInvalidPhone) {
		t.Errorf("Expected ErrInvalidPhone, got %v", err)
	}
}

func TestChangePhone_UserNotFound(t *testing.T) {
	service, _ := setupProfileTest(t)

	_, err := service.ChangePhone(context.Background(), "missing-id", "09998887766")
	if !errors.Is(err, store.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestChangeUsername(t *testing.T) {
	service, u := setupProfileTest(t)
	ctx := context.Background()

	updated, err := service.ChangeUsername(ctx, u.Id(), "newname")
	if err != nil {
		t.Fatalf("ChangeUsername failed: %v", err)
	}
	if updated.Username() != "newname" {
		t.Errorf("Username = %q", updated.Username())
	}

	reloaded, err := service.Get(ctx, u.Id())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if reloaded.Username() != "newname" {
		t.Errorf("Persisted username = %q", reloaded.Username())
	}
}

func TestChangeUsername_Taken(t *testing.T) {
	service, u := setupProfileTest(t)
	ctx := context.Background()

	other, err := user.New(user.NewParams{
		Username:       "duplicate",
		Password:       "StrongPass123",
		BirthDate:      "1990-01-01",
		HashIterations: testIterations,
	})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if err := service.store.PutUser(ctx, other.ToRecord()); err != nil {
		t.Fatalf("Failed to store user: %v", err)
	}

	_, err = service.ChangeUsername(ctx, u.Id(), "duplicate")
	if !errors.Is(err, store.ErrUsernameExists) {
		t.Errorf("Expected ErrUsernameExists, got %v", err)
	}
}

func TestChangeUsername_SameNameIsNoop(t *testing.T) {
	service, u := setupProfileTest(t)

	updated, err := service.ChangeUsername(context.Background(), u.Id(), "maryam")
	if err != nil {
		t.Fatalf("ChangeUsername failed: %v", err)
	}
	if updated.Username() != "maryam" {
		t.Errorf("Username = %q", updated.Username())
	}
}

func TestChangePassword(t *testing.T) {
	service, u := setupProfileTest(t)
	ctx := context.Background()

	if _, err := service.ChangePassword(ctx, u.Id(), "StrongPass123", "NewStrongPass1", "NewStrongPass1"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	reloaded, err := service.Get(ctx, u.Id())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	ok, err := reloaded.CheckPassword("NewStrongPass1")
	if err != nil {
		t.Fatalf("CheckPassword failed: %v", err)
	}
	if !ok {
		t.Error("Expected new password to verify after change")
	}
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	service, u := setupProfileTest(t)

	_, err := service.ChangePassword(context.Background(), u.Id(), "WrongPass123", "NewStrongPass1", "NewStrongPass1")
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("Expected ErrWrongPassword, got %v", err)
	}
}

func TestChangePassword_ConfirmationMismatch(t *testing.T) {
	service, u := setupProfileTest(t)

	_, err := service.ChangePassword(context.Background(), u.Id(), "StrongPass123", "NewStrongPass1", "DifferentPass1")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("Expected ErrPasswordMismatch, got %v", err)
	}
}

func TestChangePassword_SamePasswordIsNoop(t *testing.T) {
	service, u := setupProfileTest(t)
	ctx := context.Background()

	if _, err := service.ChangePassword(ctx, u.Id(), "StrongPass123", "StrongPass123", "StrongPass123"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	reloaded, err := service.Get(ctx, u.Id())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	ok, err := reloaded.CheckPassword("StrongPass123")
	if err != nil {
		t.Fatalf("CheckPassword failed: %v", err)
	}
	if !ok {
		t.Error("Expected original password to still verify")
	}
}
