package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type StatusResponse struct {
	TotalCountries  int64      `json:"total_countries" example:"250"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
}

// Status godoc
// @Summary Service status
// @Description Number of cached countries and time of the last refresh
// @Tags Meta
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 500 {object} errorResponse
// @Router /status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Status(r.Context())
	if err != nil {
		logrus.WithError(err).WithField("handler", "Status").Error("failed to get status")
		writeErrorDetails(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	res := StatusResponse{TotalCountries: st.TotalCountries}
	if st.LastRefreshedAt != nil {
		at := st.LastRefreshedAt.UTC()
		res.LastRefreshedAt = &at
	}
	writeJSON(w, http.StatusOK, res)
}
