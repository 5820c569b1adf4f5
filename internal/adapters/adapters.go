package adapters

import (
	"context"
	"countryfx/internal/domain"
	"encoding/json"
	"time"
)

type CountriesClient interface {
	FetchCountries(ctx context.Context) ([]json.RawMessage, error)
}

type RatesClient interface {
	FetchExchangeRates(ctx context.Context) (map[string]float64, error)
}

type CountryRepository interface {
	FindByName(ctx context.Context, name string) (domain.Country, error)
	FindAll(ctx context.Context, filters domain.CountryFilters) ([]domain.Country, error)
	Insert(ctx context.Context, country domain.Country) (int64, error)
	Update(ctx context.Context, name string, country domain.Country) error
	DeleteByName(ctx context.Context, name string) (bool, error)
	Count(ctx context.Context) (int64, error)
	TopByGDP(ctx context.Context, limit int) ([]domain.Country, error)
}

type SettingsRepository interface {
	UpdateLastRefreshedAt(ctx context.Context, at time.Time) error
	GetLastRefreshedAt(ctx context.Context) (*time.Time, error)
}

type CountryCache interface {
	Get(name string) (domain.Country, bool)
	Set(country domain.Country)
	Delete(name string)
	Clear()
}

type SummaryRenderer interface {
	Generate(ctx context.Context) error
}
