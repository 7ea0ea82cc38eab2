package account

import (
	"context"
	"errors"
	"testing"

	"cinema-ticket-go/internal/jsonstore"
	"cinema-ticket-go/internal/models"
	"cinema-ticket-go/internal/store"

	"go.uber.org/zap"
)

const testIterations = 1000

func setupAccountTest(t *testing.T) *Service {
	t.Helper()

	st, err := jsonstore.New(models.StorageConfig{DataDir: t.TempDir()}, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	return NewService(st, testIterations, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	service := setupAccountTest(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, RegisterParams{
		Username:  "maryam",
		Password:  "StrongPass123",
		BirthDate: "1995-05-05",
		Phone:     "09123456789",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if registered.Id() == "" {
		t.Error("Expected a generated user id")
	}

	loggedIn, err := service.Login(ctx, "maryam", "StrongPass123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.Id() != registered.Id() {
		t.Errorf("Login returned id %q, expected %q", loggedIn.Id(), registered.Id())
	}
}

func TestRegister_TrimsUsername(t *testing.T) {
	service := setupAccountTest(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, RegisterParams{
		Username:  "  maryam  ",
		Password:  "StrongPass123",
		BirthDate: "1995-05-05",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := service.Login(ctx, "maryam", "StrongPass123"); err != nil {
		t.Errorf("Login with trimmed username failed: %v", err)
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	service := setupAccountTest(t)
	ctx := context.Background()

	params := RegisterParams{Username: "maryam", Password: "StrongPass123", BirthDate: "1995-05-05"}
	if _, err := service.Register(ctx, params); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := service.Register(ctx, params)
	if !errors.Is(err, store.ErrUsernameExists) {
		t.Errorf("Expected ErrUsernameExists, got %v", err)
	}
}

func TestRegister_PropagatesValidationErrors(t *testing.T) {
	service := setupAccountTest(t)

	_, err := service.Register(context.Background(), RegisterParams{
		Username:  "maryam",
		Password:  "weak",
		BirthDate: "1995-05-05",
	})
	if err == nil {
		t.Error("Expected weak password to be rejected")
	}
}

func TestLogin_UnknownUsername(t *testing.T) {
	service := setupAccountTest(t)

	_, err := service.Login(context.Background(), "nobody", "StrongPass123")
	if !errors.Is(err, store.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	service := setupAccountTest(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, RegisterParams{
		Username:  "maryam",
		Password:  "StrongPass123",
		BirthDate: "1995-05-05",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := service.Login(ctx, "maryam", "WrongPass123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}
