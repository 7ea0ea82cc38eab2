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

package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"cinema-ticket-go/internal/models"
	"cinema-ticket-go/internal/store"

	"go.uber.org/zap"
)

// Compile-time check: *Store must satisfy store.Store.
var _ store.Store = (*Store)(nil)

// usersFile is the on-disk layout of the users collection: records keyed
// by id plus a secondary username index for O(1) login lookups.
type usersFile struct {
	ById          map[string]*models.UserRecord `json:"by_id"`
	UsernameIndex map[string]string             `json:"username_index"`
}

// subscriptionsFile is the on-disk layout of the subscriptions
// collection, keyed by owning user id.
type subscriptionsFile struct {
	ByUserId map[string]*models.SubscriptionRecord `json:"by_user_id"`
}

// Store persists users and subscriptions as JSON flat files. Every
// mutation loads the whole collection, modifies one record in memory and
// rewrites the file. A mutex serializes cycles within this process; there
// is no isolation across processes.
type Store struct {
	mu                sync.Mutex
	usersPath         string
	subscriptionsPath string
	logger            *zap.Logger
}

// New creates the data directory if needed and returns a JSON file store.
func New(cfg models.StorageConfig, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.L()
	}
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create data directory %s: %w", cfg.DataDir, err)
	}

	usersFileName := cfg.UsersFile
	if usersFileName == "" {
		usersFileName = "users.json"
	}
	subscriptionsFileName := cfg.SubscriptionsFile
	if subscriptionsFileName == "" {
		subscriptionsFileName = "subscriptions.json"
	}

	return &Store{
		usersPath:         resolvePath(cfg.DataDir, usersFileName),
		subscriptionsPath: resolvePath(cfg.DataDir, subscriptionsFileName),
		logger:            logger,
	}, nil
}

func resolvePath(dataDir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dataDir, file)
}

// loadJSON reads a collection file into target. A missing or corrupt file
// degrades to the provided default state rather than failing.
func (s *Store) loadJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Collection file not found, using empty default", zap.String("path", path))
			return nil
		}
		return fmt.Errorf("unable to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		s.logger.Error("Corrupted collection file, using empty default",
			zap.String("path", path), zap.Error(err))
		return nil
	}
	return nil
}

func (s *Store) saveJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "    ")
	if err != nil {
		return fmt.Errorf("unable to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	s.logger.Debug("Collection file saved", zap.String("path", path))
	return nil
}

func (s *Store) loadUsers() (*usersFile, error) {
	users := &usersFile{
		ById:          map[string]*models.UserRecord{},
		UsernameIndex: map[string]string{},
	}
	if err := s.loadJSON(s.usersPath, users); err != nil {
		return nil, err
	}
	if users.ById == nil {
		users.ById = map[string]*models.UserRecord{}
	}
	if users.UsernameIndex == nil {
		users.UsernameIndex = map[string]string{}
	}
	return users, nil
}

func (s *Store) loadSubscriptions() (*subscriptionsFile, error) {
	subscriptions := &subscriptionsFile{ByUserId: map[string]*models.SubscriptionRecord{}}
	if err := s.loadJSON(s.subscriptionsPath, subscriptions); err != nil {
		return nil, err
	}
	if subscriptions.ByUserId == nil {
		subscriptions.ByUserId = map[string]*models.SubscriptionRecord{}
	}
	return subscriptions, nil
}

func (s *Store) GetUser(ctx context.Context, userId string) (*models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}

	record, ok := users.ById[userId]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", store.ErrUserNotFound, userId)
	}
	return record, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}

	userId, ok := users.UsernameIndex[username]
	if !ok {
		return nil, fmt.Errorf("%w: username %s", store.ErrUserNotFound, username)
	}

	record, ok := users.ById[userId]
	if !ok {
		// Index points at a missing record; treat as not found.
		s.logger.Error("Username index is inconsistent",
			zap.String("username", username), zap.String("user_id", userId))
		return nil, fmt.Errorf("%w: username %s", store.ErrUserNotFound, username)
	}
	return record, nil
}

func (s *Store) PutUser(ctx context.Context, record *models.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return err
	}

	if ownerId, ok := users.UsernameIndex[record.Username]; ok && ownerId != record.Id {
		return fmt.Errorf("%w: %s", store.ErrUsernameExists, record.Username)
	}

	// Drop stale index entries from a username change.
	for username, userId := range users.UsernameIndex {
		if userId == record.Id && username != record.Username {
			delete(users.UsernameIndex, username)
		}
	}

	users.ById[record.Id] = record
	users.UsernameIndex[record.Username] = record.Id

	return s.saveJSON(s.usersPath, users)
}

func (s *Store) GetSubscription(ctx context.Context, userId string) (*models.SubscriptionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscriptions, err := s.loadSubscriptions()
	if err != nil {
		return nil, err
	}

	record, ok := subscriptions.ByUserId[userId]
	if !ok {
		return nil, fmt.Errorf("%w: user id %s", store.ErrSubscriptionNotFound, userId)
	}
	return record, nil
}

func (s *Store) PutSubscription(ctx context.Context, record *models.SubscriptionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subscriptions, err := s.loadSubscriptions()
	if err != nil {
		return err
	}

	subscriptions.ByUserId[record.UserId] = record
	return s.saveJSON(s.subscriptionsPath, subscriptions)
}

func (s *Store) Close() error { return nil }
