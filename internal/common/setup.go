package common

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cinema-ticket-go/internal/account"
	"cinema-ticket-go/internal/database"
	"cinema-ticket-go/internal/gateway"
	"cinema-ticket-go/internal/jsonstore"
	"cinema-ticket-go/internal/models"
	"cinema-ticket-go/internal/profile"
	"cinema-ticket-go/internal/store"
	"cinema-ticket-go/internal/subscription"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// init loads environment variables from .env file if it exists
func init() {
	// Environment variables can also be set via shell export or the
	// service manager, so a missing .env file is fine.
	if err := godotenv.Load(); err == nil {
		log.Println("✓ Loaded environment variables from .env file")
	}
}

// Services bundles the wired application services for the CLI tools.
type Services struct {
	Store         store.Store
	Accounts      *account.Service
	Profiles      *profile.Service
	Subscriptions *subscription.Service
	Wallet        *gateway.Service
}

func InitializeLogger() (*zap.Logger, func()) {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	zap.ReplaceGlobals(logger)

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			if !isIgnorableSyncError(err) {
				log.Printf("Failed to sync logger: %v\n", err)
			}
		}
	}

	return logger, cleanup
}

// InitializeStore opens the persistence backend selected by the
// configuration: JSON flat files or SQLite.
func InitializeStore(ctx context.Context, cfg *models.Config) (store.Store, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return database.NewService(ctx, cfg.Database)
	case "json":
		return jsonstore.New(cfg.Storage, zap.L())
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// InitializeServices wires the store, tier policy and domain services.
func InitializeServices(ctx context.Context, cfg *models.Config) (*Services, error) {
	st, err := InitializeStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	policy, err := LoadTierPolicy(cfg.Tiers.PolicyFile)
	if err != nil {
		if closeErr := st.Close(); closeErr != nil {
			zap.L().Warn("Failed to close store", zap.Error(closeErr))
		}
		return nil, err
	}

	gw := gateway.New("wallet-gateway", zap.L())

	return &Services{
		Store:         st,
		Accounts:      account.NewService(st, cfg.Security.HashIterations, zap.L()),
		Profiles:      profile.NewService(st, cfg.Security.HashIterations, zap.L()),
		Subscriptions: subscription.NewService(st, policy, zap.L()),
		Wallet:        gateway.NewService(gw, st, zap.L()),
	}, nil
}

func (cs *Services) Close() {
	if cs.Store != nil {
		if err := cs.Store.Close(); err != nil {
			zap.L().Warn("Failed to close store", zap.Error(err))
		}
	}
}

func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "sync /dev/stderr: inappropriate ioctl for device") ||
		strings.Contains(msg, "sync /dev/stdout: inappropriate ioctl for device")
}
