package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cinema-ticket-go/internal/models"
	"cinema-ticket-go/internal/store"

	"go.uber.org/zap"
)

func (s *Service) GetSubscription(ctx context.Context, userId string) (*models.SubscriptionRecord, error) {
	zap.L().Debug("Querying subscription", zap.String("user_id", userId))

	var record models.SubscriptionRecord
	err := s.db.QueryRowContext(ctx, queryGetSubscription, userId).Scan(
		&record.UserId, &record.SubscriptionType, &record.StartDate, &record.EndDate,
		&record.RemainingCredits, &record.DrinkBenefits)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user id %s", store.ErrSubscriptionNotFound, userId)
		}
		zap.L().Error("Failed to query subscription", zap.String("user_id", userId), zap.Error(err))
		return nil, fmt.Errorf("unable to query subscription: %w", err)
	}
	return &record, nil
}

func (s *Service) PutSubscription(ctx context.Context, record *models.SubscriptionRecord) error {
	zap.L().Debug("Storing subscription", zap.String("user_id", record.UserId),
		zap.String("type", record.SubscriptionType))

	_, err := s.db.ExecContext(ctx, queryUpsertSubscription,
		record.UserId, record.SubscriptionType, record.StartDate, record.EndDate,
		record.RemainingCredits, record.DrinkBenefits)
	if err != nil {
		zap.L().Error("Failed to store subscription", zap.String("user_id", record.UserId), zap.Error(err))
		return fmt.Errorf("unable to store subscription: %w", err)
	}
	return nil
}
