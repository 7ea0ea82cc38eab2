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

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	usernameFlag := flag.String("username", "", "Username (required)")
	passwordFlag := flag.String("password", "", "Password (required)")
	actionFlag := flag.String("action", "balance", "Action: balance, deposit or withdraw")
	amountFlag := flag.String("amount", "", "Amount for deposit/withdraw, e.g. 25.00")
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

	switch *actionFlag {
	case "balance":
		// Nothing to do, balance is printed below.

	case "deposit", "withdraw":
		if *amountFlag == "" {
			zap.L().Fatal("Flag --amount is required for deposit and withdraw")
		}
		amount, err := decimal.NewFromString(*amountFlag)
		if err != nil {
			zap.L().Fatal("Invalid amount", zap.String("amount", *amountFlag), zap.Error(err))
		}

		if *actionFlag == "deposit" {
			err = services.Wallet.DepositToWallet(ctx, user, amount, "wallet CLI deposit")
		} else {
			err = services.Wallet.WithdrawFromWallet(ctx, user, amount, "wallet CLI withdrawal")
		}
		if err != nil {
			zap.L().Fatal("Wallet operation failed", zap.Error(err))
		}

	default:
		zap.L().Fatal("Unknown action", zap.String("action", *actionFlag))
	}

	common.PrintHeader("WALLET", common.DefaultWidth)
	fmt.Printf("User:    %s\n", user.Username())
	fmt.Printf("Balance: %s\n", user.WalletBalance().String())
	common.PrintSeparator("=", common.DefaultWidth)
}
