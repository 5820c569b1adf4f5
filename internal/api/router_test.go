package api

import (
	"context"
	"countryfx/internal/country/handler"
	"countryfx/internal/domain"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubService struct {
	panicOnList bool
	lastName    string
}

func (s *stubService) List(context.Context, domain.CountryFilters) ([]domain.Country, error) {
	if s.panicOnList {
		panic("unexpected nil row")
	}
	return []domain.Country{{ID: 1, Name: "Nigeria"}}, nil
}

func (s *stubService) GetByName(_ context.Context, name string) (domain.Country, error) {
	s.lastName = name
	return domain.Country{ID: 1, Name: name}, nil
}

func (s *stubService) DeleteByName(_ context.Context, name string) error {
	s.lastName = name
	return domain.ErrCountryNotFound
}

func (s *stubService) Status(context.Context) (domain.Status, error) {
	return domain.Status{TotalCountries: 1}, nil
}

type stubRefresher struct{}

func (stubRefresher) Refresh(context.Context) (domain.RefreshResult, error) {
	return domain.RefreshResult{Total: 1, Succeeded: 1}, nil
}

type stubImage struct{}

func (stubImage) ImagePath() (string, error) { return "", domain.ErrSummaryNotFound }

func newTestRouter(svc *stubService) http.Handler {
	return NewRouter(handler.NewCountryHandler(svc, stubRefresher{}, stubImage{}))
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestRouter_UnknownRoute(t *testing.T) {
	rr := do(t, newTestRouter(&stubService{}), http.MethodGet, "/nope")

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "Endpoint not found", decode(t, rr)["error"])
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	rr := do(t, newTestRouter(&stubService{}), http.MethodPut, "/status")

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestRouter_Healthz(t *testing.T) {
	rr := do(t, newTestRouter(&stubService{}), http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_Metrics(t *testing.T) {
	rr := do(t, newTestRouter(&stubService{}), http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestRouter_CountriesRoutes(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	require.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/countries").Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/countries/refresh").Code)
	require.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/countries/image").Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/status").Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/").Code)

	require.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/countries/United%20States").Code)
	require.Equal(t, "United States", svc.lastName)

	require.Equal(t, http.StatusNotFound, do(t, router, http.MethodDelete, "/countries/Atlantis").Code)
	require.Equal(t, "Atlantis", svc.lastName)
}

func TestRouter_CountryNameDecodedOnce(t *testing.T) {
	svc := &stubService{}
	router := newTestRouter(svc)

	require.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/countries/100%2541").Code)
	require.Equal(t, "100%41", svc.lastName)

	require.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/countries/AC%2FDC").Code)
	require.Equal(t, "AC/DC", svc.lastName)
}

func TestRouter_PanicBecomesJSON500(t *testing.T) {
	rr := do(t, newTestRouter(&stubService{panicOnList: true}), http.MethodGet, "/countries")

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decode(t, rr)
	require.Equal(t, "Internal server error", body["error"])
	require.Equal(t, "unexpected nil row", body["details"])
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/countries", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	rr := httptest.NewRecorder()

	newTestRouter(&stubService{}).ServeHTTP(rr, req)

	require.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
