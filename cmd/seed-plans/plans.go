package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// planSeed describes one plan and its pricings. Prices are strings so YAML
// amounts like "29.99" survive without float rounding.
type planSeed struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	GroupName   string        `yaml:"group_name"`
	PosLimit    int           `yaml:"pos_limit"`
	IsFreeTrial bool          `yaml:"is_free_trial"`
	TrialDays   int           `yaml:"trial_days"`
	Pricings    []pricingSeed `yaml:"pricings"`
}

type pricingSeed struct {
	Interval string `yaml:"interval"`
	Price    string `yaml:"price"`
	Currency string `yaml:"currency"`
}

func (p pricingSeed) amount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(p.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", p.Price, err)
	}
	return amount, nil
}

// defaultPlans is the catalog seeded when no plans file is given.
func defaultPlans() []planSeed {
	return []planSeed{
		{
			Name:        "starter",
			Description: "Single shop essentials",
			GroupName:   "standard",
			PosLimit:    1,
			Pricings: []pricingSeed{
				{Interval: "month", Price: "9.99", Currency: "eur"},
				{Interval: "year", Price: "99.00", Currency: "eur"},
			},
		},
		{
			Name:        "premium",
			Description: "Growing businesses with several points of sale",
			GroupName:   "standard",
			PosLimit:    5,
			Pricings: []pricingSeed{
				{Interval: "month", Price: "29.99", Currency: "eur"},
				{Interval: "semester", Price: "149.99", Currency: "eur"},
				{Interval: "year", Price: "299.00", Currency: "eur"},
			},
		},
		{
			Name:        "enterprise",
			Description: "Unlimited points of sale",
			GroupName:   "standard",
			PosLimit:    0,
			Pricings: []pricingSeed{
				{Interval: "month", Price: "99.00", Currency: "eur"},
				{Interval: "year", Price: "990.00", Currency: "eur"},
			},
		},
		{
			Name:        "free-trial",
			Description: "Thirty day trial with premium limits",
			GroupName:   "trial",
			PosLimit:    5,
			IsFreeTrial: true,
			TrialDays:   30,
			Pricings: []pricingSeed{
				{Interval: "month", Price: "0", Currency: "eur"},
			},
		},
	}
}

func loadPlansFromYAML(path string) ([]planSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plans file: %w", err)
	}

	var doc struct {
		Plans []planSeed `yaml:"plans"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse plans file: %w", err)
	}
	if len(doc.Plans) == 0 {
		return nil, fmt.Errorf("plans file %s declares no plans", path)
	}

	return doc.Plans, nil
}
