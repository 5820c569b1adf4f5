package httpclient

import (
	"context"
	"countryfx/internal/domain"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExchangeRateClient_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "result": "success",
            "base_code": "USD",
            "rates": {"EUR": 0.92, "NGN": 1600.5, "BAD": 0, "NEG": -3}
        }`))
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateClient(srv.Client(), srv.URL+"/v6/latest/USD")

	rates, err := c.FetchExchangeRates(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/v6/latest/USD", gotPath)
	require.Len(t, rates, 2)
	require.InDelta(t, 0.92, rates["EUR"], 1e-9)
	require.InDelta(t, 1600.5, rates["NGN"], 1e-9)
	_, hasZero := rates["BAD"]
	require.False(t, hasZero)
}

func TestExchangeRateClient_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateClient(srv.Client(), srv.URL+"/latest/USD")

	_, err := c.FetchExchangeRates(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 503")
	require.Contains(t, err.Error(), "Exchange Rates API")

	var srcErr *domain.SourceUnavailableError
	require.ErrorAs(t, err, &srcErr)
	require.Equal(t, "Exchange Rates API", srcErr.Source)
}

func TestExchangeRateClient_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateClient(srv.Client(), srv.URL+"/latest/USD")

	_, err := c.FetchExchangeRates(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode response")
}

func TestExchangeRateClient_NonSuccessResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result": "error", "base_code": "USD", "rates": {}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewExchangeRateClient(srv.Client(), srv.URL+"/latest/USD")

	_, err := c.FetchExchangeRates(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "api returned non-success result: error")
}

func TestExchangeRateClient_URLParseError(t *testing.T) {
	c := NewExchangeRateClient(&http.Client{}, "http://::1]")
	_, err := c.FetchExchangeRates(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse URL")
}

func TestExchangeRateClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	client := srv.Client()
	client.Timeout = 50 * time.Millisecond
	c := NewExchangeRateClient(client, srv.URL)

	_, err := c.FetchExchangeRates(context.Background())
	require.Error(t, err)
	var srcErr *domain.SourceUnavailableError
	require.ErrorAs(t, err, &srcErr)
	require.Contains(t, err.Error(), "failed to execute request")
}
