package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-ticket-go/internal/dates"
	"cinema-ticket-go/internal/models"
	"cinema-ticket-go/internal/store"
	"cinema-ticket-go/internal/user"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service is the subscription benefit engine: it creates subscriptions,
// determines the active tier for a user and applies the tier's benefit
// policy to transaction amounts. Every mutation is a load-modify-save
// cycle against the store.
type Service struct {
	store  store.Store
	policy models.TierPolicy
	logger *zap.Logger
}

// NewService wires the engine to a persistence backend and a tier policy.
// A nil logger falls back to the global one.
func NewService(st store.Store, policy models.TierPolicy, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.L()
	}
	return &Service{store: st, policy: policy, logger: logger}
}

// load fetches and deserializes the persisted subscription for a user.
// A missing record is returned as (nil, nil).
func (s *Service) load(ctx context.Context, userId string) (*Subscription, error) {
	record, err := s.store.GetSubscription(ctx, userId)
	if err != nil {
		if errors.Is(err, store.ErrSubscriptionNotFound) {
			s.logger.Debug("No subscription record", zap.String("user_id", userId))
			return nil, nil
		}
		return nil, fmt.Errorf("unable to load subscription for user %s: %w", userId, err)
	}

	sub, err := FromRecord(record)
	if err != nil {
		s.logger.Error("Failed to deserialize subscription",
			zap.String("user_id", userId), zap.Error(err))
		return nil, err
	}
	return sub, nil
}

func (s *Service) save(ctx context.Context, sub *Subscription) error {
	if err := s.store.PutSubscription(ctx, sub.ToRecord()); err != nil {
		return fmt.Errorf("unable to save subscription for user %s: %w", sub.userId, err)
	}
	s.logger.Info("Subscription saved", zap.String("user_id", sub.userId),
		zap.String("type", sub.subscriptionType.String()))
	return nil
}

// GetUserSubscription returns the user's subscription, or (nil, nil) when
// no record exists or the record is no longer active. Callers cannot
// distinguish "never subscribed" from "expired" through this call.
func (s *Service) GetUserSubscription(ctx context.Context, userId string) (*Subscription, error) {
	sub, err := s.load(ctx, userId)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	if !sub.IsActive(time.Now()) {
		s.logger.Info("Subscription is not active",
			zap.String("user_id", userId), zap.String("type", sub.subscriptionType.String()))
		return nil, nil
	}
	return sub, nil
}

// CreateSubscription creates and persists a subscription starting today,
// overwriting any prior record for the user. Gold subscriptions get a
// calendar expiry window; other tiers have no end date.
func (s *Service) CreateSubscription(ctx context.Context, userId string, subscriptionType Type) (*Subscription, error) {
	if !subscriptionType.Valid() {
		s.logger.Error("Invalid subscription type", zap.String("type", string(subscriptionType)))
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubscriptionType, string(subscriptionType))
	}

	start := dates.Truncate(time.Now())
	endDate := ""
	if subscriptionType == Gold {
		endDate = start.AddDate(0, 0, s.policy.GoldDurationDays).Format(dates.Layout)
	}

	sub, err := New(userId, subscriptionType, start.Format(dates.Layout), endDate)
	if err != nil {
		return nil, err
	}
	if subscriptionType == Silver {
		sub.remainingCredits = s.policy.SilverCredits
	}
	if subscriptionType == Gold {
		sub.drinkBenefits = s.policy.GoldDrinkBenefits
	}

	if err := s.save(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("Created subscription", zap.String("user_id", userId),
		zap.String("type", subscriptionType.String()),
		zap.String("start_date", sub.startDate), zap.String("end_date", sub.endDate))
	return sub, nil
}

// HasActiveSubscription reports whether the user currently has an active
// subscription of any paid tier.
func (s *Service) HasActiveSubscription(ctx context.Context, userId string) (bool, error) {
	sub, err := s.GetUserSubscription(ctx, userId)
	if err != nil {
		return false, err
	}
	return sub != nil, nil
}

// SubscriptionType returns the user's active tier, defaulting to bronze
// when no active subscription exists.
func (s *Service) SubscriptionType(ctx context.Context, userId string) (Type, error) {
	sub, err := s.GetUserSubscription(ctx, userId)
	if err != nil {
		return "", err
	}
	if sub == nil {
		return Bronze, nil
	}
	return sub.subscriptionType, nil
}

// ApplyBenefits applies the active tier's benefit policy to a transaction
// amount and returns the amount to charge.
//
// Silver credits the cashback to the user's wallet and consumes one
// credit, but the charged amount stays unchanged; the benefit is
// delivered entirely through the wallet deposit. Gold halves the charge
// with no wallet mutation. Bronze, an exhausted silver subscription and
// any unknown tier leave the amount untouched.
func (s *Service) ApplyBenefits(ctx context.Context, u *user.User, amount decimal.Decimal) (decimal.Decimal, error) {
	sub, err := s.GetUserSubscription(ctx, u.Id())
	if err != nil {
		return decimal.Zero, err
	}
	if sub == nil {
		s.logger.Info("No active subscription, no benefits applied", zap.String("user_id", u.Id()))
		return amount, nil
	}

	switch sub.subscriptionType {
	case Silver:
		if sub.remainingCredits <= 0 {
			s.logger.Info("Silver credits exhausted, no benefits applied", zap.String("user_id", u.Id()))
			return amount, nil
		}

		cashback := amount.Mul(s.policy.SilverCashbackRate)
		if err := u.Deposit(cashback); err != nil {
			return decimal.Zero, fmt.Errorf("unable to deposit cashback: %w", err)
		}
		sub.remainingCredits--
		if err := s.save(ctx, sub); err != nil {
			return decimal.Zero, err
		}

		s.logger.Info("Applied silver cashback",
			zap.String("user_id", u.Id()),
			zap.String("amount", amount.String()),
			zap.String("cashback", cashback.String()),
			zap.Int("remaining_credits", sub.remainingCredits))
		return amount, nil

	case Gold:
		discount := amount.Mul(s.policy.GoldDiscountRate)
		final := amount.Sub(discount)
		s.logger.Info("Applied gold discount",
			zap.String("user_id", u.Id()),
			zap.String("amount", amount.String()),
			zap.String("discount", discount.String()),
			zap.String("final_amount", final.String()))
		return final, nil

	default:
		s.logger.Warn("Unknown subscription type, no benefits applied",
			zap.String("user_id", u.Id()), zap.String("type", string(sub.subscriptionType)))
		return amount, nil
	}
}

// ConsumeDrinkBenefit consumes the one-shot gold drink perk if it is
// still available, persisting the consumption. It returns true exactly
// once per subscription creation for an active gold user.
func (s *Service) ConsumeDrinkBenefit(ctx context.Context, u *user.User) (bool, error) {
	sub, err := s.GetUserSubscription(ctx, u.Id())
	if err != nil {
		return false, err
	}
	if sub == nil || sub.subscriptionType != Gold {
		s.logger.Info("No active gold subscription, no drink benefit", zap.String("user_id", u.Id()))
		return false, nil
	}
	if sub.drinkBenefits <= 0 {
		s.logger.Info("Drink benefit already used", zap.String("user_id", u.Id()))
		return false, nil
	}

	sub.drinkBenefits--
	if err := s.save(ctx, sub); err != nil {
		return false, err
	}

	s.logger.Info("Consumed gold drink benefit", zap.String("user_id", u.Id()),
		zap.Int("remaining", sub.drinkBenefits))
	return true, nil
}
