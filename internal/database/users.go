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

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cinema-ticket-go/internal/models"
	"cinema-ticket-go/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (s *Service) scanUser(row *sql.Row) (*models.UserRecord, error) {
	var record models.UserRecord
	var balanceStr string
	err := row.Scan(&record.Id, &record.Username, &record.Phone, &record.BirthDate,
		&record.Salt, &record.PasswordHash, &balanceStr, &record.CreatedAt)
	if err != nil {
		return nil, err
	}

	record.WalletBalance, err = decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse wallet balance %q: %w", balanceStr, err)
	}
	return &record, nil
}

func (s *Service) GetUser(ctx context.Context, userId string) (*models.UserRecord, error) {
	zap.L().Debug("Querying user by ID", zap.String("user_id", userId))

	record, err := s.scanUser(s.db.QueryRowContext(ctx, queryGetUserById, userId))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", store.ErrUserNotFound, userId)
		}
		zap.L().Error("Failed to query user by ID", zap.String("user_id", userId), zap.Error(err))
		return nil, fmt.Errorf("unable to query user by ID: %w", err)
	}
	return record, nil
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	zap.L().Debug("Querying user by username", zap.String("username", username))

	record, err := s.scanUser(s.db.QueryRowContext(ctx, queryGetUserByUsername, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: username %s", store.ErrUserNotFound, username)
		}
		zap.L().Error("Failed to query user by username", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("unable to query user by username: %w", err)
	}
	return record, nil
}

func (s *Service) PutUser(ctx context.Context, record *models.UserRecord) error {
	zap.L().Debug("Storing user", zap.String("user_id", record.Id), zap.String("username", record.Username))

	// Reject a username already owned by another user before touching the
	// row, so the caller gets the sentinel instead of a driver error.
	var ownerId string
	err := s.db.QueryRowContext(ctx, queryFindUsernameOwner, record.Username, record.Id).Scan(&ownerId)
	if err == nil {
		return fmt.Errorf("%w: %s", store.ErrUsernameExists, record.Username)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("unable to check username uniqueness: %w", err)
	}

	_, err = s.db.ExecContext(ctx, queryUpsertUser,
		record.Id, record.Username, record.Phone, record.BirthDate,
		record.Salt, record.PasswordHash, record.WalletBalance.String(), record.CreatedAt)
	if err != nil {
		zap.L().Error("Failed to store user", zap.String("user_id", record.Id), zap.Error(err))
		return fmt.Errorf("unable to store user: %w", err)
	}
	return nil
}
