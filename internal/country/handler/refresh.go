package handler

import (
	"countryfx/internal/domain"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

type RefreshResponse struct {
	Message        string `json:"message" example:"Countries refreshed successfully"`
	SuccessCount   int    `json:"success_count" example:"249"`
	FailCount      int    `json:"fail_count" example:"1"`
	TotalProcessed int    `json:"total_processed" example:"250"`
}

// Refresh godoc
// @Summary Refresh countries
// @Description Fetch countries and exchange rates from the external sources and upsert them
// @Tags Countries
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 503 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /countries/refresh [post]
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	res, err := h.refresher.Refresh(r.Context())
	if err != nil {
		var unavailable *domain.SourceUnavailableError
		if errors.As(err, &unavailable) {
			writeErrorDetails(w, http.StatusServiceUnavailable, "External data source unavailable", err.Error())
			return
		}
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "Refresh", "exec_id": res.ExecID}).Error("refresh failed")
		writeErrorDetails(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, RefreshResponse{
		Message:        "Countries refreshed successfully",
		SuccessCount:   res.Succeeded,
		FailCount:      res.Failed,
		TotalProcessed: res.Total,
	})
}
