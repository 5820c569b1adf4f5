package country

import (
	"countryfx/internal/domain"
	"math/rand/v2"
	"strings"
)

const (
	minGDPMultiplier = 1000
	maxGDPMultiplier = 2000
)

// ExtractCurrencyCode returns the first currency code in source order, or nil.
func ExtractCurrencyCode(desc domain.CountryDescriptor) *string {
	if len(desc.Currencies) == 0 {
		return nil
	}
	code := strings.TrimSpace(desc.Currencies[0].Code)
	if code == "" {
		return nil
	}
	return &code
}

// LookupRate returns the USD-based rate for code, nil when unknown or unusable.
func LookupRate(rates map[string]float64, code *string) *float64 {
	if code == nil {
		return nil
	}
	rate, ok := rates[*code]
	if !ok || rate <= 0 {
		return nil
	}
	return &rate
}

// RandomMultiplier draws uniformly from [1000, 2000).
func RandomMultiplier() float64 {
	return minGDPMultiplier + rand.Float64()*(maxGDPMultiplier-minGDPMultiplier)
}

type GDPEstimator struct {
	multiplier func() float64
}

// Estimate computes population * multiplier / rate. The multiplier is redrawn on every call,
// so estimates for identical inputs differ between refreshes.
func (e *GDPEstimator) Estimate(population int64, rate *float64) *float64 {
	if rate == nil || *rate <= 0 {
		return nil
	}
	gdp := float64(population) * e.multiplier() / *rate
	return &gdp
}

// NewGDPEstimator uses a random multiplier unless fixed is positive.
func NewGDPEstimator(fixed float64) *GDPEstimator {
	if fixed > 0 {
		return &GDPEstimator{multiplier: func() float64 { return fixed }}
	}
	return &GDPEstimator{multiplier: RandomMultiplier}
}

// BuildCountry assembles the stored record for one upstream descriptor.
func BuildCountry(desc domain.CountryDescriptor, rates map[string]float64, estimator *GDPEstimator) domain.Country {
	code := ExtractCurrencyCode(desc)
	rate := LookupRate(rates, code)

	return domain.Country{
		Name:         desc.Name,
		Capital:      desc.Capital,
		Region:       desc.Region,
		Population:   desc.Population,
		CurrencyCode: code,
		ExchangeRate: rate,
		EstimatedGDP: estimator.Estimate(desc.Population, rate),
		FlagURL:      desc.FlagURL,
	}
}
