package profile

import (
	"context"
	"errors"
	"fmt"

	"cinema-ticket-go/internal/store"
	"cinema-ticket-go/internal/user"

	"go.uber.org/zap"
)

var (
	// ErrWrongPassword is returned when the current password check fails
	// during a password change.
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrPasswordMismatch is returned when the new password and its
	// confirmation differ.
	ErrPasswordMismatch = errors.New("new password and confirmation do not match")
)

// Service provides authenticated mutation of profile data: username,
// phone number and password. Each operation is a load-modify-save cycle.
type Service struct {
	store          store.Store
	hashIterations int
	logger         *zap.Logger
}

func NewService(st store.Store, hashIterations int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.L()
	}
	return &Service{store: st, hashIterations: hashIterations, logger: logger}
}

func (s *Service) load(ctx context.Context, userId string) (*user.User, error) {
	record, err := s.store.GetUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	u, err := user.FromRecord(record, s.hashIterations)
	if err != nil {
		return nil, fmt.Errorf("unable to load user %s: %w", userId, err)
	}
	return u, nil
}

func (s *Service) save(ctx context.Context, u *user.User) error {
	if err := s.store.PutUser(ctx, u.ToRecord()); err != nil {
		return err
	}
	s.logger.Debug("User saved", zap.String("user_id", u.Id()), zap.String("username", u.Username()))
	return nil
}

// Get returns the user's profile.
func (s *Service) Get(ctx context.Context, userId string) (*user.User, error) {
	return s.load(ctx, userId)
}

// ChangePhone updates the user's phone number.
func (s *Service) ChangePhone(ctx context.Context, userId, newPhone string) (*user.User, error) {
	u, err := s.load(ctx, userId)
	if err != nil {
		return nil, err
	}

	if err := u.SetPhone(newPhone); err != nil {
		s.logger.Error("Change phone failed", zap.String("user_id", userId), zap.Error(err))
		return nil, err
	}

	if err := s.save(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("Phone updated", zap.String("user_id", userId))
	return u, nil
}

// ChangeUsername renames the user if the new username is available. A
// no-op when the username is unchanged.
func (s *Service) ChangeUsername(ctx context.Context, userId, newUsername string) (*user.User, error) {
	owner, err := s.store.GetUserByUsername(ctx, newUsername)
	if err == nil && owner.Id != userId {
		return nil, fmt.Errorf("%w: %s", store.ErrUsernameExists, newUsername)
	}
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}

	u, err := s.load(ctx, userId)
	if err != nil {
		return nil, err
	}

	if u.Username() == newUsername {
		s.logger.Info("Username unchanged", zap.String("user_id", userId))
		return u, nil
	}

	oldUsername := u.Username()
	if err := u.SetUsername(newUsername); err != nil {
		return nil, err
	}

	if err := s.save(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("Username changed", zap.String("user_id", userId),
		zap.String("old", oldUsername), zap.String("new", u.Username()))
	return u, nil
}

// ChangePassword verifies the current password, checks the confirmation
// and stores a fresh salt and digest. Setting the same password again is
// a no-op.
func (s *Service) ChangePassword(ctx context.Context, userId, currentPassword, newPassword, confirmPassword string) (*user.User, error) {
	u, err := s.load(ctx, userId)
	if err != nil {
		return nil, err
	}

	ok, err := u.CheckPassword(currentPassword)
	if err != nil {
		return nil, fmt.Errorf("unable to verify current password: %w", err)
	}
	if !ok {
		s.logger.Warn("Change password failed, wrong current password", zap.String("user_id", userId))
		return nil, ErrWrongPassword
	}

	if newPassword != confirmPassword {
		s.logger.Warn("Change password failed, confirmation mismatch", zap.String("user_id", userId))
		return nil, ErrPasswordMismatch
	}

	if newPassword == currentPassword {
		s.logger.Info("Password unchanged", zap.String("user_id", userId))
		return u, nil
	}

	if err := u.SetPassword(newPassword); err != nil {
		s.logger.Error("Change password failed", zap.String("user_id", userId), zap.Error(err))
		return nil, err
	}

	if err := s.save(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("Password changed", zap.String("user_id", userId))
	return u, nil
}
