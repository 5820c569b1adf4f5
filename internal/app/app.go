package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"countryfx/internal/adapters/cache"
	"countryfx/internal/adapters/httpclient"
	"countryfx/internal/adapters/postgres"
	"countryfx/internal/adapters/summary"
	"countryfx/internal/api"
	"countryfx/internal/config"
	"countryfx/internal/country"
	"countryfx/internal/country/handler"
	"countryfx/internal/platform/db"
	httpserver "countryfx/internal/platform/http"

	"github.com/sirupsen/logrus"
)

const defaultHTTPClientTimeout = 30 * time.Second

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (migrations, DB connect)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if appCfg.DbServer.MigrateOnStart {
		if migrateErr := db.Migrate(startupCtx, appCfg.DbServer); migrateErr != nil {
			logrus.WithError(migrateErr).Error("Error applying migrations")
			return migrateErr
		}
		logrus.Info("✅ Database migrations applied")
	}

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Base HTTP client shared by both external sources
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = defaultHTTPClientTimeout
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	countriesClient := httpclient.NewCountriesClient(baseHTTPClient, appCfg.Sources.CountriesURL)
	ratesClient := httpclient.NewExchangeRateClient(baseHTTPClient, appCfg.Sources.ExchangeRateURL)

	// Repositories and cache
	countryRepo := postgres.NewCountryRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)

	countryCache, err := cache.NewCountryCache(appCfg.Cache.MaxItems, time.Duration(appCfg.Cache.TTLSeconds)*time.Second)
	if err != nil {
		logrus.WithError(err).Error("Failed to create country cache")
		return err
	}
	defer countryCache.Close()

	renderer := summary.NewSVGRenderer(countryRepo, settingsRepo, appCfg.Summary.ImagePath)

	// Services
	refresher := country.NewRefresher(
		countriesClient,
		ratesClient,
		countryRepo,
		settingsRepo,
		countryCache,
		renderer,
		country.NewGDPEstimator(appCfg.GDP.FixedMultiplier),
	)
	countryService := country.NewService(countryRepo, settingsRepo, countryCache)

	scheduler := country.NewScheduler(refresher, time.Duration(appCfg.Refresh.IntervalSeconds)*time.Second)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	countryHandler := handler.NewCountryHandler(countryService, refresher, renderer)
	router := api.NewRouter(countryHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
