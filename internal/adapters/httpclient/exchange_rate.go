package httpclient

import (
	"context"
	"fmt"
	"net/http"
)

const ratesSource = "Exchange Rates API"

type ExchangeRateClient struct {
	http *http.Client
	url  string
}

type ratesResponse struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

// FetchExchangeRates returns rates quoted against the base currency of the configured URL.
// Non-positive rates are dropped.
func (c *ExchangeRateClient) FetchExchangeRates(ctx context.Context) (map[string]float64, error) {
	var body ratesResponse
	if err := getJSON(ctx, c.http, c.url, ratesSource, &body); err != nil {
		return nil, err
	}

	if body.Result != "success" {
		return nil, unavailable(ratesSource, fmt.Errorf("api returned non-success result: %s", body.Result))
	}

	rates := make(map[string]float64, len(body.Rates))
	for code, v := range body.Rates {
		if v > 0 {
			rates[code] = v
		}
	}
	return rates, nil
}

func NewExchangeRateClient(httpClient *http.Client, url string) *ExchangeRateClient {
	return &ExchangeRateClient{http: httpClient, url: url}
}
