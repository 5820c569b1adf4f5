package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	URL            string `mapstructure:"url"`
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Pass           string `mapstructure:"pass"`
	Name           string `mapstructure:"name"`
	MaxConns       int32  `mapstructure:"max_conns"`
	MigrateOnStart bool   `mapstructure:"migrate_on_start"`
}

// GetConnectionStr prefers a full DATABASE_URL over the individual fields.
func (config *DbServer) GetConnectionStr() string {
	if config.URL != "" {
		return config.URL
	}
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Sources struct {
	CountriesURL    string `mapstructure:"countries_url"`
	ExchangeRateURL string `mapstructure:"exchange_rate_url"`
}

type Summary struct {
	ImagePath string `mapstructure:"image_path"`
}

type Refresh struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
}

type GDP struct {
	FixedMultiplier float64 `mapstructure:"fixed_multiplier"`
}

type Cache struct {
	MaxItems   int64 `mapstructure:"max_items"`
	TTLSeconds int   `mapstructure:"ttl_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Sources    Sources    `mapstructure:"sources"`
	Summary    Summary    `mapstructure:"summary"`
	Refresh    Refresh    `mapstructure:"refresh"`
	GDP        GDP        `mapstructure:"gdp"`
	Cache      Cache      `mapstructure:"cache"`
	Logging    Logging    `mapstructure:"logging"`
}

// Init loads .env and config.yaml from the working directory. Both are optional.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return Load("config.yaml")
}

// Load reads file (if present), applies defaults and env overrides.
func Load(file string) (*AppConfig, error) {
	var cfg AppConfig
	v := viper.New()

	if file != "" {
		if _, statErr := os.Stat(file); statErr == nil {
			v.SetConfigFile(file)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetDefault("http_server.port", "3000")
	v.SetDefault("db_server.host", "localhost")
	v.SetDefault("db_server.port", "5432")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("db_server.migrate_on_start", true)
	v.SetDefault("http_client.timeout_seconds", 30)
	v.SetDefault("sources.countries_url", "https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies")
	v.SetDefault("sources.exchange_rate_url", "https://open.er-api.com/v6/latest/USD")
	v.SetDefault("summary.image_path", "cache/summary.svg")
	v.SetDefault("refresh.interval_seconds", 0)
	v.SetDefault("gdp.fixed_multiplier", 0)
	v.SetDefault("cache.max_items", 1024)
	v.SetDefault("cache.ttl_seconds", 300)
	v.SetDefault("logging.level", "info")

	// http server env vars
	_ = v.BindEnv("http_server.port", "PORT")

	// db server env vars
	_ = v.BindEnv("db_server.url", "DATABASE_URL")
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")
	_ = v.BindEnv("db_server.migrate_on_start", "DB_MIGRATE_ON_START")

	// http client and sources
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = v.BindEnv("sources.countries_url", "COUNTRIES_API_URL")
	_ = v.BindEnv("sources.exchange_rate_url", "EXCHANGE_API_URL")

	_ = v.BindEnv("summary.image_path", "SUMMARY_IMAGE_PATH")
	_ = v.BindEnv("refresh.interval_seconds", "REFRESH_INTERVAL_SECONDS")
	_ = v.BindEnv("gdp.fixed_multiplier", "GDP_FIXED_MULTIPLIER")
	_ = v.BindEnv("cache.max_items", "CACHE_MAX_ITEMS")
	_ = v.BindEnv("cache.ttl_seconds", "CACHE_TTL_SECONDS")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
