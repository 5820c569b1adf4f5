package httpclient

import (
	"context"
	"countryfx/internal/domain"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// getJSON performs a single GET and decodes the body into dst. Any failure is reported
// as a SourceUnavailableError for the given source.
func getJSON(ctx context.Context, client *http.Client, rawURL string, source string, dst any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return unavailable(source, fmt.Errorf("failed to parse URL: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return unavailable(source, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return unavailable(source, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return unavailable(source, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, resp.Status))
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return unavailable(source, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

func unavailable(source string, err error) error {
	return &domain.SourceUnavailableError{Source: source, Err: err}
}
