package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
)

const countriesSource = "Countries API"

type CountriesClient struct {
	http *http.Client
	url  string
}

// FetchCountries returns the upstream country list with every element left undecoded,
// so a single malformed element is reported by the caller instead of failing the fetch.
func (c *CountriesClient) FetchCountries(ctx context.Context) ([]json.RawMessage, error) {
	var body []json.RawMessage
	if err := getJSON(ctx, c.http, c.url, countriesSource, &body); err != nil {
		return nil, err
	}
	if body == nil {
		body = []json.RawMessage{}
	}
	return body, nil
}

func NewCountriesClient(httpClient *http.Client, url string) *CountriesClient {
	return &CountriesClient{http: httpClient, url: url}
}
