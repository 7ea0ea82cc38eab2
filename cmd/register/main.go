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
	"errors"
	"flag"
	"fmt"

	"cinema-ticket-go/internal/account"
	"cinema-ticket-go/internal/common"
	"cinema-ticket-go/internal/config"
	"cinema-ticket-go/internal/store"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	usernameFlag := flag.String("username", "", "Username, at least 3 characters (required)")
	passwordFlag := flag.String("password", "", "Password (required)")
	birthDateFlag := flag.String("birth-date", "", "Birth date, e.g. 1995-05-05 or 05/05/1995 (required)")
	phoneFlag := flag.String("phone", "", "Phone number, e.g. 09123456789 (optional)")
	flag.Parse()

	if *usernameFlag == "" || *passwordFlag == "" || *birthDateFlag == "" {
		zap.L().Fatal("Required flags: --username, --password and --birth-date")
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

	user, err := services.Accounts.Register(ctx, account.RegisterParams{
		Username:  *usernameFlag,
		Password:  *passwordFlag,
		BirthDate: *birthDateFlag,
		Phone:     *phoneFlag,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			zap.L().Fatal("Username already taken", zap.String("username", *usernameFlag))
		}
		zap.L().Fatal("Failed to register user", zap.Error(err))
	}

	common.PrintHeader("USER REGISTERED", common.DefaultWidth)
	fmt.Printf("ID:         %s\n", user.Id())
	fmt.Printf("Username:   %s\n", user.Username())
	fmt.Printf("Birth date: %s\n", user.BirthDate())
	if user.Phone() != "" {
		fmt.Printf("Phone:      %s\n", user.Phone())
	}
	common.PrintSeparator("=", common.DefaultWidth)
}
