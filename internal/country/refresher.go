package country

import (
	"context"
	"countryfx/internal/adapters"
	"countryfx/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type Refresher struct {
	countriesClient adapters.CountriesClient
	ratesClient     adapters.RatesClient
	countryRepo     adapters.CountryRepository
	settingsRepo    adapters.SettingsRepository
	cache           adapters.CountryCache
	summary         adapters.SummaryRenderer
	estimator       *GDPEstimator
	now             func() time.Time
	// -----
	mu sync.Mutex
}

type fetchResult struct {
	countries []json.RawMessage
	rates     map[string]float64
}

// Refresh pulls both upstream feeds, upserts every country and records the batch timestamp.
// Calls are serialized; a second caller waits for the running batch to finish.
func (r *Refresher) Refresh(ctx context.Context) (domain.RefreshResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	execID := uuid.NewString()
	timer := prometheus.NewTimer(refreshDuration)
	defer timer.ObserveDuration()

	log := logrus.WithField("exec_id", execID)
	log.Info("Refresh started")

	// STEP 1: both feeds must be available before anything is written
	fetched, err := r.fetch(ctx)
	if err != nil {
		refreshRunsTotal.WithLabelValues(outcomeSourceUnavailable).Inc()
		log.WithError(err).Warn("Refresh aborted, external source unavailable")
		return domain.RefreshResult{ExecID: execID}, err
	}

	// STEP 2: each record is isolated, a failure is counted and the loop continues
	result := r.process(ctx, log, fetched)
	result.ExecID = execID

	// STEP 3: cache, timestamp, summary image
	if err = r.finalize(ctx, log); err != nil {
		refreshRunsTotal.WithLabelValues(outcomeError).Inc()
		return result, err
	}

	refreshRunsTotal.WithLabelValues(outcomeSuccess).Inc()
	refreshRecordsTotal.WithLabelValues("succeeded").Add(float64(result.Succeeded))
	refreshRecordsTotal.WithLabelValues("failed").Add(float64(result.Failed))

	log.WithFields(logrus.Fields{
		"total":     result.Total,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	}).Info("Refresh finished")
	return result, nil
}

func (r *Refresher) fetch(ctx context.Context) (fetchResult, error) {
	var (
		wg                    sync.WaitGroup
		res                   fetchResult
		countriesErr, rateErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		res.countries, countriesErr = r.countriesClient.FetchCountries(ctx)
	}()
	go func() {
		defer wg.Done()
		res.rates, rateErr = r.ratesClient.FetchExchangeRates(ctx)
	}()
	wg.Wait()

	if countriesErr != nil {
		return fetchResult{}, asUnavailable("Countries API", countriesErr)
	}
	if rateErr != nil {
		return fetchResult{}, asUnavailable("Exchange Rates API", rateErr)
	}
	return res, nil
}

func asUnavailable(source string, err error) error {
	var unavailable *domain.SourceUnavailableError
	if errors.As(err, &unavailable) {
		return err
	}
	return &domain.SourceUnavailableError{Source: source, Err: err}
}

func (r *Refresher) process(ctx context.Context, log *logrus.Entry, fetched fetchResult) domain.RefreshResult {
	result := domain.RefreshResult{Total: len(fetched.countries)}

	for i, raw := range fetched.countries {
		name, err := r.upsert(ctx, raw, fetched.rates)
		if err != nil {
			recErr := domain.RecordError{Index: i, Name: name, Err: err}
			result.Failures = append(result.Failures, recErr)
			result.Failed++
			log.WithError(err).WithFields(logrus.Fields{
				"index":   i,
				"country": name,
			}).Warn("Failed to process country")
			continue
		}
		result.Succeeded++
	}
	return result
}

// upsert returns the country name when it could be parsed, so failures can be attributed.
func (r *Refresher) upsert(ctx context.Context, raw json.RawMessage, rates map[string]float64) (string, error) {
	desc, err := ParseDescriptor(raw)
	if err != nil {
		return "", err
	}

	c := BuildCountry(desc, rates, r.estimator)

	_, err = r.countryRepo.FindByName(ctx, c.Name)
	switch {
	case err == nil:
		if err = r.countryRepo.Update(ctx, c.Name, c); err != nil {
			return c.Name, err
		}
	case errors.Is(err, domain.ErrCountryNotFound):
		if _, err = r.countryRepo.Insert(ctx, c); err != nil {
			return c.Name, err
		}
	default:
		return c.Name, err
	}
	return c.Name, nil
}

// finalize runs once rows may have changed, so the cache is dropped before anything can fail.
func (r *Refresher) finalize(ctx context.Context, log *logrus.Entry) error {
	r.cache.Clear()

	if err := r.settingsRepo.UpdateLastRefreshedAt(ctx, r.now()); err != nil {
		log.WithError(err).Error("Failed to record refresh timestamp")
		return fmt.Errorf("failed to record refresh timestamp: %w", err)
	}

	if err := r.summary.Generate(ctx); err != nil {
		log.WithError(err).Warn("Failed to generate summary image")
	}
	return nil
}

func NewRefresher(
	countriesClient adapters.CountriesClient,
	ratesClient adapters.RatesClient,
	countryRepo adapters.CountryRepository,
	settingsRepo adapters.SettingsRepository,
	cache adapters.CountryCache,
	summary adapters.SummaryRenderer,
	estimator *GDPEstimator,
) *Refresher {
	return &Refresher{
		countriesClient: countriesClient,
		ratesClient:     ratesClient,
		countryRepo:     countryRepo,
		settingsRepo:    settingsRepo,
		cache:           cache,
		summary:         summary,
		estimator:       estimator,
		now:             time.Now,
	}
}
