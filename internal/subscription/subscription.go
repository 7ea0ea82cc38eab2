package subscription

import (
	"fmt"
	"time"

	"cinema-ticket-go/internal/dates"
	"cinema-ticket-go/internal/models"
)

// Subscription is the domain model for one user's subscription: tier,
// validity window, consumable silver credits and the one-shot gold drink
// perk. Dates are held in canonical YYYY-MM-DD form; an empty end date
// means the subscription has no calendar expiry.
type Subscription struct {
	userId           string
	subscriptionType Type
	startDate        string
	endDate          string
	remainingCredits int
	drinkBenefits    int
}

// New validates tier and dates and initializes the consumable counters:
// three cashback credits for silver, one drink perk for gold. The end
// date may be empty for non-gold tiers.
func New(userId string, subscriptionType Type, startDate, endDate string) (*Subscription, error) {
	if userId == "" {
		return nil, fmt.Errorf("subscription requires a user id")
	}
	if !subscriptionType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubscriptionType, string(subscriptionType))
	}

	normalizedStart, err := dates.Normalize(startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	normalizedEnd := ""
	if endDate != "" {
		normalizedEnd, err = dates.Normalize(endDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		if normalizedEnd < normalizedStart {
			return nil, fmt.Errorf("%w: end date %s cannot be before start date %s",
				ErrInvalidDate, normalizedEnd, normalizedStart)
		}
	}

	s := &Subscription{
		userId:           userId,
		subscriptionType: subscriptionType,
		startDate:        normalizedStart,
		endDate:          normalizedEnd,
	}
	if subscriptionType == Silver {
		s.remainingCredits = 3
	}
	if subscriptionType == Gold {
		s.drinkBenefits = 1
	}

	return s, nil
}

// FromRecord rebuilds a subscription from its persisted form, rejecting
// unknown tier values and re-validating the dates.
func FromRecord(record *models.SubscriptionRecord) (*Subscription, error) {
	subscriptionType, err := ParseType(record.SubscriptionType)
	if err != nil {
		return nil, err
	}

	s, err := New(record.UserId, subscriptionType, record.StartDate, record.EndDate)
	if err != nil {
		return nil, err
	}

	s.remainingCredits = record.RemainingCredits
	s.drinkBenefits = record.DrinkBenefits
	return s, nil
}

// ToRecord converts the subscription to its persisted form.
func (s *Subscription) ToRecord() *models.SubscriptionRecord {
	return &models.SubscriptionRecord{
		UserId:           s.userId,
		SubscriptionType: string(s.subscriptionType),
		StartDate:        s.startDate,
		EndDate:          s.endDate,
		RemainingCredits: s.remainingCredits,
		DrinkBenefits:    s.drinkBenefits,
	}
}

func (s *Subscription) UserId() string         { return s.userId }
func (s *Subscription) SubscriptionType() Type { return s.subscriptionType }
func (s *Subscription) StartDate() string      { return s.startDate }
func (s *Subscription) EndDate() string        { return s.endDate }
func (s *Subscription) RemainingCredits() int  { return s.remainingCredits }
func (s *Subscription) DrinkBenefits() int     { return s.drinkBenefits }

// IsActive reports whether the subscription is active on the calendar day
// of now. Gold is active inside its inclusive [start, end] window; silver
// is active while credits remain, regardless of dates; bronze never is.
func (s *Subscription) IsActive(now time.Time) bool {
	switch s.subscriptionType {
	case Gold:
		if s.endDate == "" {
			return false
		}
		today := dates.Truncate(now)
		start, err := time.Parse(dates.Layout, s.startDate)
		if err != nil {
			return false
		}
		end, err := time.Parse(dates.Layout, s.endDate)
		if err != nil {
			return false
		}
		return !today.Before(start) && !today.After(end)
	case Silver:
		return s.remainingCredits > 0
	default:
		return false
	}
}

func (s *Subscription) String() string {
	return fmt.Sprintf("Subscription(user_id=%s, type=%s, start=%s, end=%s)",
		s.userId, s.subscriptionType, s.startDate, s.endDate)
}
