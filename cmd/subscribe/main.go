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
	"cinema-ticket-go/internal/subscription"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	usernameFlag := flag.String("username", "", "Username (required)")
	passwordFlag := flag.String("password", "", "Password (required)")
	tierFlag := flag.String("tier", "", "Subscription tier to create: silver or gold")
	drinkFlag := flag.Bool("drink", false, "Consume the gold drink perk")
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

	if *tierFlag != "" {
		tier, err := subscription.ParseType(*tierFlag)
		if err != nil {
			zap.L().Fatal("Invalid tier", zap.String("tier", *tierFlag), zap.Error(err))
		}

		sub, err := services.Subscriptions.CreateSubscription(ctx, user.Id(), tier)
		if err != nil {
			zap.L().Fatal("Failed to create subscription", zap.Error(err))
		}

		common.PrintHeader("SUBSCRIPTION CREATED", common.DefaultWidth)
		fmt.Printf("User:       %s\n", user.Username())
		fmt.Printf("Tier:       %s\n", sub.SubscriptionType())
		fmt.Printf("Start date: %s\n", sub.StartDate())
		if sub.EndDate() != "" {
			fmt.Printf("End date:   %s\n", sub.EndDate())
		}
		common.PrintSeparator("=", common.DefaultWidth)
		return
	}

	if *drinkFlag {
		consumed, err := services.Subscriptions.ConsumeDrinkBenefit(ctx, user)
		if err != nil {
			zap.L().Fatal("Failed to consume drink benefit", zap.Error(err))
		}
		if consumed {
			fmt.Println("Enjoy your free drink!")
		} else {
			fmt.Println("No drink benefit available.")
		}
		return
	}

	tier, err := services.Subscriptions.SubscriptionType(ctx, user.Id())
	if err != nil {
		zap.L().Fatal("Failed to determine subscription type", zap.Error(err))
	}

	common.PrintHeader("SUBSCRIPTION", common.DefaultWidth)
	fmt.Printf("User: %s\n", user.Username())
	fmt.Printf("Tier: %s\n", tier)
	if sub, err := services.Subscriptions.GetUserSubscription(ctx, user.Id()); err == nil && sub != nil {
		fmt.Printf("Start date:        %s\n", sub.StartDate())
		if sub.EndDate() != "" {
			fmt.Printf("End date:          %s\n", sub.EndDate())
		}
		fmt.Printf("Remaining credits: %d\n", sub.RemainingCredits())
		fmt.Printf("Drink benefits:    %d\n", sub.DrinkBenefits())
	}
	common.PrintSeparator("=", common.DefaultWidth)
}
