package postgres

import (
	"context"
	"countryfx/internal/domain"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	DefaultTopLimit = 5
	MaxTopLimit     = 250
)

const countryColumns = `id, name, capital, region, population, currency_code, exchange_rate, estimated_gdp, flag_url, last_refreshed_at`

// orderClauses is the only source of ORDER BY text; user input never reaches the query string.
var orderClauses = map[domain.SortOrder]string{
	domain.SortByName:         `order by name asc`,
	domain.SortGDPDesc:        `order by estimated_gdp desc nulls last, name asc`,
	domain.SortGDPAsc:         `order by estimated_gdp asc nulls last, name asc`,
	domain.SortPopulationDesc: `order by population desc, name asc`,
	domain.SortPopulationAsc:  `order by population asc, name asc`,
}

type CountryRepository struct {
	pool *pgxpool.Pool
}

func (r *CountryRepository) FindByName(ctx context.Context, name string) (domain.Country, error) {
	q := `select ` + countryColumns + ` from countries where lower(name) = lower($1) limit 1;`

	country, err := scanCountry(r.pool.QueryRow(ctx, q, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Country{}, domain.ErrCountryNotFound
		}
		return domain.Country{}, fmt.Errorf("failed to select country %q: %w", name, err)
	}
	return country, nil
}

func (r *CountryRepository) FindAll(ctx context.Context, filters domain.CountryFilters) ([]domain.Country, error) {
	order, ok := orderClauses[filters.Sort]
	if !ok {
		return nil, fmt.Errorf("unsupported sort order %q", filters.Sort)
	}

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if filters.Region != "" {
		args = append(args, filters.Region)
		conditions = append(conditions, "lower(region) = lower($"+strconv.Itoa(len(args))+")")
	}
	if filters.Currency != "" {
		args = append(args, filters.Currency)
		conditions = append(conditions, "lower(currency_code) = lower($"+strconv.Itoa(len(args))+")")
	}

	var sb strings.Builder
	sb.WriteString(`select ` + countryColumns + ` from countries`)
	if len(conditions) > 0 {
		sb.WriteString(` where ` + strings.Join(conditions, " and "))
	}
	sb.WriteString(` ` + order)

	return r.queryCountries(ctx, sb.String(), args...)
}

func (r *CountryRepository) Insert(ctx context.Context, c domain.Country) (int64, error) {
	const q = `
		insert into countries
			(name, capital, region, population, currency_code, exchange_rate, estimated_gdp, flag_url, last_refreshed_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8, now())
		returning id;
	`

	var id int64
	err := r.pool.QueryRow(ctx, q,
		c.Name, c.Capital, c.Region, c.Population, c.CurrencyCode, c.ExchangeRate, c.EstimatedGDP, c.FlagURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert country %q: %w", c.Name, err)
	}
	return id, nil
}

// Update replaces every mutable field of the row matching name. No match is not an error.
func (r *CountryRepository) Update(ctx context.Context, name string, c domain.Country) error {
	const q = `
		update countries
		set capital = $1, region = $2, population = $3, currency_code = $4,
		    exchange_rate = $5, estimated_gdp = $6, flag_url = $7, last_refreshed_at = now()
		where lower(name) = lower($8);
	`

	_, err := r.pool.Exec(ctx, q,
		c.Capital, c.Region, c.Population, c.CurrencyCode, c.ExchangeRate, c.EstimatedGDP, c.FlagURL, name,
	)
	if err != nil {
		return fmt.Errorf("failed to update country %q: %w", name, err)
	}
	return nil
}

func (r *CountryRepository) DeleteByName(ctx context.Context, name string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `delete from countries where lower(name) = lower($1);`, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete country %q: %w", name, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CountryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `select count(*) from countries;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count countries: %w", err)
	}
	return count, nil
}

// TopByGDP returns countries with a known GDP, largest first. limit is coerced into
// [1, MaxTopLimit] and bound as a parameter.
func (r *CountryRepository) TopByGDP(ctx context.Context, limit int) ([]domain.Country, error) {
	q := `select ` + countryColumns + `
		from countries
		where estimated_gdp is not null
		order by estimated_gdp desc, name asc
		limit $1;`

	return r.queryCountries(ctx, q, SafeLimit(limit))
}

// SafeLimit coerces a requested row limit into a positive bounded integer.
func SafeLimit(limit int) int {
	if limit <= 0 {
		return DefaultTopLimit
	}
	if limit > MaxTopLimit {
		return MaxTopLimit
	}
	return limit
}

func (r *CountryRepository) queryCountries(ctx context.Context, q string, args ...any) ([]domain.Country, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	countries := make([]domain.Country, 0, 64)
	for rows.Next() {
		c, scanErr := scanCountry(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan country: %w", scanErr)
		}
		countries = append(countries, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating countries: %w", err)
	}
	return countries, nil
}

func scanCountry(row pgx.Row) (domain.Country, error) {
	var c domain.Country
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Capital,
		&c.Region,
		&c.Population,
		&c.CurrencyCode,
		&c.ExchangeRate,
		&c.EstimatedGDP,
		&c.FlagURL,
		&c.LastRefreshedAt,
	)
	return c, err
}

func NewCountryRepository(pool *pgxpool.Pool) *CountryRepository {
	return &CountryRepository{pool: pool}
}
