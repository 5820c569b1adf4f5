package country

import (
	"context"
	"countryfx/internal/domain"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"
)

// --- Testify mocks ---

type MockCountriesClient struct{ mock.Mock }

func (m *MockCountriesClient) FetchCountries(ctx context.Context) ([]json.RawMessage, error) {
	args := m.Called(ctx)
	raw, _ := args.Get(0).([]json.RawMessage)
	return raw, args.Error(1)
}

type MockRatesClient struct{ mock.Mock }

func (m *MockRatesClient) FetchExchangeRates(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	rates, _ := args.Get(0).(map[string]float64)
	return rates, args.Error(1)
}

type MockCountryRepository struct{ mock.Mock }

func (m *MockCountryRepository) FindByName(ctx context.Context, name string) (domain.Country, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(domain.Country)
	return c, args.Error(1)
}

func (m *MockCountryRepository) FindAll(ctx context.Context, filters domain.CountryFilters) ([]domain.Country, error) {
	args := m.Called(ctx, filters)
	countries, _ := args.Get(0).([]domain.Country)
	return countries, args.Error(1)
}

func (m *MockCountryRepository) Insert(ctx context.Context, country domain.Country) (int64, error) {
	args := m.Called(ctx, country)
	id, _ := args.Get(0).(int64)
	return id, args.Error(1)
}

func (m *MockCountryRepository) Update(ctx context.Context, name string, country domain.Country) error {
	args := m.Called(ctx, name, country)
	return args.Error(0)
}

func (m *MockCountryRepository) DeleteByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCountryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func (m *MockCountryRepository) TopByGDP(ctx context.Context, limit int) ([]domain.Country, error) {
	args := m.Called(ctx, limit)
	countries, _ := args.Get(0).([]domain.Country)
	return countries, args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) UpdateLastRefreshedAt(ctx context.Context, at time.Time) error {
	args := m.Called(ctx, at)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetLastRefreshedAt(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	at, _ := args.Get(0).(*time.Time)
	return at, args.Error(1)
}

type MockCountryCache struct{ mock.Mock }

func (m *MockCountryCache) Get(name string) (domain.Country, bool) {
	args := m.Called(name)
	c, _ := args.Get(0).(domain.Country)
	return c, args.Bool(1)
}

func (m *MockCountryCache) Set(country domain.Country) { m.Called(country) }

func (m *MockCountryCache) Delete(name string) { m.Called(name) }

func (m *MockCountryCache) Clear() { m.Called() }

type MockSummaryRenderer struct{ mock.Mock }

func (m *MockSummaryRenderer) Generate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockBatchRefresher struct{ mock.Mock }

func (m *MockBatchRefresher) Refresh(ctx context.Context) (domain.RefreshResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(domain.RefreshResult)
	return res, args.Error(1)
}

func strPtr(s string) *string { return &s }
func fPtr(f float64) *float64 { return &f }
