package gateway

import (
	"fmt"
	"sync"
	"time"

	"cinema-ticket-go/internal/models"
	"cinema-ticket-go/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Gateway records wallet movements passed through the payment gateway.
// Deposits are recorded with a positive amount, withdrawals with a
// negative one. The transaction log lives in memory for the lifetime of
// the gateway.
type Gateway struct {
	id     string
	logger *zap.Logger

	mu           sync.Mutex
	transactions []models.WalletTransaction
}

func New(id string, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.L()
	}
	logger.Info("Gateway initialized", zap.String("gateway_id", id))
	return &Gateway{id: id, logger: logger}
}

func (g *Gateway) Id() string { return g.id }

// Process records a signed wallet movement for a user. Zero amounts are
// rejected.
func (g *Gateway) Process(userId string, amount decimal.Decimal, description string) (*models.WalletTransaction, error) {
	if amount.IsZero() {
		g.logger.Error("Invalid amount", zap.String("user_id", userId), zap.String("amount", amount.String()))
		return nil, fmt.Errorf("%w: got %s", user.ErrInvalidAmount, amount.String())
	}

	tx := models.WalletTransaction{
		Id:          uuid.NewString(),
		UserId:      userId,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	}

	g.mu.Lock()
	g.transactions = append(g.transactions, tx)
	g.mu.Unlock()

	g.logger.Info("Processed wallet movement",
		zap.String("transaction_id", tx.Id),
		zap.String("user_id", userId),
		zap.String("amount", amount.String()),
		zap.String("description", description))
	return &tx, nil
}

// Transactions returns a copy of the recorded movements.
func (g *Gateway) Transactions() []models.WalletTransaction {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]models.WalletTransaction, len(g.transactions))
	copy(out, g.transactions)
	return out
}
