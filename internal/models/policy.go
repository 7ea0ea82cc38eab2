package models

import "github.com/shopspring/decimal"

// TierPolicy holds the benefit parameters per subscription tier.
type TierPolicy struct {
	SilverCredits      int
	SilverCashbackRate decimal.Decimal
	GoldDiscountRate   decimal.Decimal
	GoldDurationDays   int
	GoldDrinkBenefits  int
}

// DefaultTierPolicy returns the standard benefit policy: three silver
// cashback credits at 20%, a 50% gold discount over a 30 day window, and
// one gold drink perk.
func DefaultTierPolicy() TierPolicy {
	return TierPolicy{
		SilverCredits:      3,
		SilverCashbackRate: decimal.RequireFromString("0.2"),
		GoldDiscountRate:   decimal.RequireFromString("0.5"),
		GoldDurationDays:   30,
		GoldDrinkBenefits:  1,
	}
}
