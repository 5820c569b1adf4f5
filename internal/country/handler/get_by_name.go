package handler

import (
	"countryfx/internal/domain"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

// GetByName godoc
// @Summary Get country
// @Description Get one cached country by name, case-insensitive
// @Tags Countries
// @Produce json
// @Param name path string true "Country name" example(Nigeria)
// @Success 200 {object} CountryResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /countries/{name} [get]
func (h *Handler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	if name == "" {
		writeError(w, http.StatusNotFound, "Country not found")
		return
	}

	c, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrCountryNotFound) {
			writeError(w, http.StatusNotFound, "Country not found")
			return
		}
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetByName", "name": name}).Error("failed to get country")
		writeErrorDetails(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toCountryResponse(c))
}
