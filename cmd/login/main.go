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

package main

import (
	"context"
	"flag"
	"fmt"

	"cinema-ticket-go/internal/common"
	"cinema-ticket-go/internal/config"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	usernameFlag := flag.String("username", "", "Username (required)")
	passwordFlag := flag.String("password", "", "Password (required)")
	flag.Parse()

	if *usernameFlag == "" || *passwordFlag == "" {
		zap.L().Fatal("Required flags: --username and --password")
	}

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	user, err := services.Accounts.Login(ctx, *usernameFlag, *passwordFlag)
	if err != nil {
		zap.L().Fatal("Login failed", zap.Error(err))
	}

	tier, err := services.Subscriptions.SubscriptionType(ctx, user.Id())
	if err != nil {
		zap.L().Fatal("Failed to determine subscription type", zap.Error(err))
	}

	common.PrintHeader("PROFILE", common.DefaultWidth)
	fmt.Printf("ID:           %s\n", user.Id())
	fmt.Printf("Username:     %s\n", user.Username())
	fmt.Printf("Birth date:   %s (age %d)\n", user.BirthDate(), user.Age())
	if user.Phone() != "" {
		fmt.Printf("Phone:        %s\n", user.Phone())
	}
	fmt.Printf("Balance:      %s\n", user.WalletBalance().String())
	fmt.Printf("Subscription: %s\n", tier)
	common.PrintSeparator("=", common.DefaultWidth)
}
