package handler

import (
	"context"
	"countryfx/internal/domain"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

type Service interface {
	List(ctx context.Context, filters domain.CountryFilters) ([]domain.Country, error)
	GetByName(ctx context.Context, name string) (domain.Country, error)
	DeleteByName(ctx context.Context, name string) error
	Status(ctx context.Context) (domain.Status, error)
}

type Refresher interface {
	Refresh(ctx context.Context) (domain.RefreshResult, error)
}

type SummaryImage interface {
	ImagePath() (string, error)
}

type Handler struct {
	service   Service
	refresher Refresher
	summary   SummaryImage
}

func NewCountryHandler(service Service, refresher Refresher, summary SummaryImage) *Handler {
	return &Handler{service: service, refresher: refresher, summary: summary}
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeErrorDetails(w, statusCode, errorMsg, "")
}

func writeErrorDetails(w http.ResponseWriter, statusCode int, errorMsg, details string) {
	writeJSON(w, statusCode, errorResponse{
		Error:   errorMsg,
		Details: details,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// nameParam returns the trimmed {name} path segment. chi routes on RawPath when it is set,
// and only then is the segment still escaped.
func nameParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		if decoded, err := url.PathUnescape(raw); err == nil {
			raw = decoded
		}
	}
	return strings.TrimSpace(raw)
}
