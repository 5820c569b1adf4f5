package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const lastRefreshedAtKey = "last_refreshed_at"

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func (r *SettingsRepository) UpdateLastRefreshedAt(ctx context.Context, at time.Time) error {
	const q = `
		insert into settings (key_name, value, updated_at) values ($1, $2, now())
		on conflict (key_name) do update
		set value = excluded.value, updated_at = now();
	`

	if _, err := r.pool.Exec(ctx, q, lastRefreshedAtKey, at.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to update %s: %w", lastRefreshedAtKey, err)
	}
	return nil
}

// GetLastRefreshedAt returns nil when no refresh has completed yet.
func (r *SettingsRepository) GetLastRefreshedAt(ctx context.Context) (*time.Time, error) {
	const q = `select value from settings where key_name = $1;`

	var raw *string
	rows, err := r.pool.Query(ctx, q, lastRefreshedAtKey)
	if err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", lastRefreshedAtKey, err)
	}
	defer rows.Close()
	if rows.Next() {
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", lastRefreshedAtKey, err)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", lastRefreshedAtKey, err)
	}
	if raw == nil || *raw == "" {
		return nil, nil
	}

	at, err := time.Parse(time.RFC3339Nano, *raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s value %q: %w", lastRefreshedAtKey, *raw, err)
	}
	return &at, nil
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}
