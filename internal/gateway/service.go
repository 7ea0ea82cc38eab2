package gateway

import (
	"context"
	"fmt"

	"cinema-ticket-go/internal/store"
	"cinema-ticket-go/internal/user"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service fronts wallet deposits and withdrawals: it mutates the user's
// wallet, records the movement with the gateway and persists the updated
// user record.
type Service struct {
	gateway *Gateway
	store   store.Store
	logger  *zap.Logger
}

func NewService(gw *Gateway, st store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.L()
	}
	return &Service{gateway: gw, store: st, logger: logger}
}

// DepositToWallet credits the user's wallet and persists the new balance.
func (s *Service) DepositToWallet(ctx context.Context, u *user.User, amount decimal.Decimal, description string) error {
	if err := u.Deposit(amount); err != nil {
		s.logger.Error("Deposit failed", zap.String("user_id", u.Id()), zap.Error(err))
		return err
	}

	if _, err := s.gateway.Process(u.Id(), amount, description); err != nil {
		return err
	}

	if err := s.store.PutUser(ctx, u.ToRecord()); err != nil {
		return fmt.Errorf("unable to persist wallet balance: %w", err)
	}

	s.logger.Info("Deposit completed", zap.String("user_id", u.Id()),
		zap.String("amount", amount.String()), zap.String("balance", u.WalletBalance().String()))
	return nil
}

// WithdrawFromWallet debits the user's wallet, bounded by the balance,
// and persists the new balance.
func (s *Service) WithdrawFromWallet(ctx context.Context, u *user.User, amount decimal.Decimal, description string) error {
	if err := u.Withdraw(amount); err != nil {
		s.logger.Error("Withdrawal failed", zap.String("user_id", u.Id()), zap.Error(err))
		return err
	}

	if _, err := s.gateway.Process(u.Id(), amount.Neg(), description); err != nil {
		return err
	}

	if err := s.store.PutUser(ctx, u.ToRecord()); err != nil {
		return fmt.Errorf("unable to persist wallet balance: %w", err)
	}

	s.logger.Info("Withdrawal completed", zap.String("user_id", u.Id()),
		zap.String("amount", amount.String()), zap.String("balance", u.WalletBalance().String()))
	return nil
}
