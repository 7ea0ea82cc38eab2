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

// checkout charges a purchase amount against the user's wallet after
// applying the active subscription's benefits.
func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	usernameFlag := flag.String("username", "", "Username (required)")
	passwordFlag := flag.String("password", "", "Password (required)")
	amountFlag := flag.String("amount", "", "Purchase amount, e.g. 100.00 (required)")
	descriptionFlag := flag.String("description", "ticket purchase", "Purchase description")
	flag.Parse()

	if *usernameFlag == "" || *passwordFlag == "" || *amountFlag == "" {
		zap.L().Fatal("Required flags: --username, --password and --amount")
	}

	amount, err := decimal.NewFromString(*amountFlag)
	if err != nil {
		zap.L().Fatal("Invalid amount", zap.String("amount", *amountFlag), zap.Error(err))
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

	finalAmount, err := services.Subscriptions.ApplyBenefits(ctx, user, amount)
	if err != nil {
		zap.L().Fatal("Failed to apply subscription benefits", zap.Error(err))
	}

	if err := services.Wallet.WithdrawFromWallet(ctx, user, finalAmount, *descriptionFlag); err != nil {
		zap.L().Fatal("Payment failed", zap.Error(err))
	}

	common.PrintHeader("PURCHASE COMPLETE", common.DefaultWidth)
	fmt.Printf("User:         %s\n", user.Username())
	fmt.Printf("List price:   %s\n", amount.String())
	fmt.Printf("Charged:      %s\n", finalAmount.String())
	fmt.Printf("Balance:      %s\n", user.WalletBalance().String())
	common.PrintSeparator("=", common.DefaultWidth)
}
