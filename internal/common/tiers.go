package common

import (
	"fmt"
	"os"
	"path/filepath"

	"cinema-ticket-go/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

type tierFileConfig struct {
	Silver struct {
		Credits      int    `yaml:"credits"`
		CashbackRate string `yaml:"cashback_rate"`
	} `yaml:"silver"`
	Gold struct {
		DiscountRate  string `yaml:"discount_rate"`
		DurationDays  int    `yaml:"duration_days"`
		DrinkBenefits int    `yaml:"drink_benefits"`
	} `yaml:"gold"`
}

// LoadTierPolicy reads the tier benefit parameters from a YAML file. An
// empty path returns the default policy.
func LoadTierPolicy(policyFile string) (models.TierPolicy, error) {
	policy := models.DefaultTierPolicy()
	if policyFile == "" {
		return policy, nil
	}

	var policyPath string
	if filepath.IsAbs(policyFile) {
		policyPath = policyFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return policy, fmt.Errorf("failed to get working directory: %w", err)
		}
		policyPath = filepath.Join(wd, policyFile)
	}

	data, err := os.ReadFile(policyPath)
	if err != nil {
		return policy, fmt.Errorf("unable to read %s: %w", policyFile, err)
	}

	var config tierFileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return policy, fmt.Errorf("unable to parse %s: %w", policyFile, err)
	}

	if config.Silver.Credits > 0 {
		policy.SilverCredits = config.Silver.Credits
	}
	if config.Silver.CashbackRate != "" {
		rate, err := parseRate(config.Silver.CashbackRate)
		if err != nil {
			return policy, fmt.Errorf("invalid silver cashback_rate: %w", err)
		}
		policy.SilverCashbackRate = rate
	}
	if config.Gold.DiscountRate != "" {
		rate, err := parseRate(config.Gold.DiscountRate)
		if err != nil {
			return policy, fmt.Errorf("invalid gold discount_rate: %w", err)
		}
		policy.GoldDiscountRate = rate
	}
	if config.Gold.DurationDays > 0 {
		policy.GoldDurationDays = config.Gold.DurationDays
	}
	if config.Gold.DrinkBenefits > 0 {
		policy.GoldDrinkBenefits = config.Gold.DrinkBenefits
	}

	return policy, nil
}

func parseRate(value string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, err
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("rate %s must be between 0 and 1", rate.String())
	}
	return rate, nil
}
