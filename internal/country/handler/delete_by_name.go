package handler

import (
	"countryfx/internal/domain"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

// DeleteByName godoc
// @Summary Delete country
// @Description Remove one cached country by name, case-insensitive
// @Tags Countries
// @Produce json
// @Param name path string true "Country name" example(Nigeria)
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /countries/{name} [delete]
func (h *Handler) DeleteByName(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	if name == "" {
		writeError(w, http.StatusNotFound, "Country not found")
		return
	}

	if err := h.service.DeleteByName(r.Context(), name); err != nil {
		if errors.Is(err, domain.ErrCountryNotFound) {
			writeError(w, http.StatusNotFound, "Country not found")
			return
		}
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteByName", "name": name}).Error("failed to delete country")
		writeErrorDetails(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Country deleted successfully"})
}
