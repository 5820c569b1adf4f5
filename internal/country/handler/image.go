package handler

import (
	"countryfx/internal/domain"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Image godoc
// @Summary Summary image
// @Description SVG summary generated after the last successful refresh
// @Tags Countries
// @Produce image/svg+xml
// @Success 200 {file} file
// @Failure 404 {object} errorResponse
// @Router /countries/image [get]
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	path, err := h.summary.ImagePath()
	if err != nil {
		if errors.Is(err, domain.ErrSummaryNotFound) {
			writeError(w, http.StatusNotFound, "Summary image not found")
			return
		}
		logrus.WithError(err).WithField("handler", "Image").Error("failed to locate summary image")
		writeErrorDetails(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, path)
}
