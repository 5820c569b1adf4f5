package country

import (
	"context"
	"countryfx/internal/adapters"
	"countryfx/internal/domain"
	"fmt"
)

type Service struct {
	countryRepo  adapters.CountryRepository
	settingsRepo adapters.SettingsRepository
	cache        adapters.CountryCache
}

func (s *Service) List(ctx context.Context, filters domain.CountryFilters) ([]domain.Country, error) {
	return s.countryRepo.FindAll(ctx, filters)
}

// GetByName serves from the lookup cache when warm; the cache is cleared on every refresh.
func (s *Service) GetByName(ctx context.Context, name string) (domain.Country, error) {
	if c, ok := s.cache.Get(name); ok {
		return c, nil
	}

	c, err := s.countryRepo.FindByName(ctx, name)
	if err != nil {
		return domain.Country{}, err
	}

	s.cache.Set(c)
	return c, nil
}

func (s *Service) DeleteByName(ctx context.Context, name string) error {
	deleted, err := s.countryRepo.DeleteByName(ctx, name)
	if err != nil {
		return err
	}

	s.cache.Delete(name)
	if !deleted {
		return domain.ErrCountryNotFound
	}
	return nil
}

func (s *Service) Status(ctx context.Context) (domain.Status, error) {
	total, err := s.countryRepo.Count(ctx)
	if err != nil {
		return domain.Status{}, fmt.Errorf("failed to count countries: %w", err)
	}

	lastRefreshedAt, err := s.settingsRepo.GetLastRefreshedAt(ctx)
	if err != nil {
		return domain.Status{}, fmt.Errorf("failed to get last refresh time: %w", err)
	}

	return domain.Status{TotalCountries: total, LastRefreshedAt: lastRefreshedAt}, nil
}

func NewService(countryRepo adapters.CountryRepository, settingsRepo adapters.SettingsRepository, cache adapters.CountryCache) *Service {
	return &Service{countryRepo: countryRepo, settingsRepo: settingsRepo, cache: cache}
}
