/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinema-ticket-go/internal/store"
	"cinema-ticket-go/internal/user"

	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned on login when the password is wrong
// or the stored record cannot be used to authenticate.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Service handles registration and login against the persistence backend.
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

// RegisterParams carries the inputs for registering a new account.
type RegisterParams struct {
	Username  string
	Password  string
	BirthDate string
	Phone     string
}

// Register creates a new user after checking username uniqueness through
// the username index.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*user.User, error) {
	username := strings.TrimSpace(params.Username)

	_, err := s.store.GetUserByUsername(ctx, username)
	if err == nil {
		s.logger.Warn("Registration failed, username exists", zap.String("username", username))
		return nil, fmt.Errorf("%w: %s", store.ErrUsernameExists, username)
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("unable to check username: %w", err)
	}

	u, err := user.New(user.NewParams{
		Username:       username,
		Password:       params.Password,
		BirthDate:      params.BirthDate,
		Phone:          params.Phone,
		HashIterations: s.hashIterations,
	})
	if err != nil {
		s.logger.Error("User creation failed", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	if err := s.store.PutUser(ctx, u.ToRecord()); err != nil {
		s.logger.Error("Failed to save user", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	s.logger.Info("User registered", zap.String("username", username), zap.String("user_id", u.Id()))
	return u, nil
}

// Login authenticates a user by username and password.
func (s *Service) Login(ctx context.Context, username, password string) (*user.User, error) {
	username = strings.TrimSpace(username)

	record, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Warn("Login failed, username not found", zap.String("username", username))
		}
		return nil, err
	}

	u, err := user.FromRecord(record, s.hashIterations)
	if err != nil {
		s.logger.Error("Failed to load user record", zap.String("username", username), zap.Error(err))
		return nil, ErrInvalidCredentials
	}

	ok, err := u.CheckPassword(password)
	if err != nil {
		s.logger.Error("Password verification failed", zap.String("username", username), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if !ok {
		s.logger.Warn("Login failed, wrong password", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("User logged in", zap.String("username", username), zap.String("user_id", u.Id()))
	return u, nil
}
