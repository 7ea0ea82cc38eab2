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

const (
	// User queries
	queryGetUserById = `
		SELECT id, username, phone, birth_date, salt, password_hash, wallet_balance, created_at
		FROM users
		WHERE id = ?`

	queryGetUserByUsername = `
		SELECT id, username, phone, birth_date, salt, password_hash, wallet_balance, created_at
		FROM users
		WHERE username = ?`

	queryFindUsernameOwner = `
		SELECT id FROM users WHERE username = ? AND id <> ?`

	queryUpsertUser = `
		INSERT INTO users (id, username, phone, birth_date, salt, password_hash, wallet_balance, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			phone = excluded.phone,
			birth_date = excluded.birth_date,
			salt = excluded.salt,
			password_hash = excluded.password_hash,
			wallet_balance = excluded.wallet_balance`

	// Subscription queries
	queryGetSubscription = `
		SELECT user_id, subscription_type, start_date, end_date, remaining_credits, drink_benefits
		FROM subscriptions
		WHERE user_id = ?`

	queryUpsertSubscription = `
		INSERT INTO subscriptions (user_id, subscription_type, start_date, end_date, remaining_credits, drink_benefits)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			subscription_type = excluded.subscription_type,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			remaining_credits = excluded.remaining_credits,
			drink_benefits = excluded.drink_benefits`
)
