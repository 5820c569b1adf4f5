package handler

import (
	"countryfx/internal/country"
	"countryfx/internal/domain"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// List godoc
// @Summary List countries
// @Description Cached countries, optionally filtered by region and currency and sorted
// @Tags Countries
// @Produce json
// @Param region query string false "Region, case-insensitive" example(Africa)
// @Param currency query string false "Currency code, case-insensitive" example(NGN)
// @Param sort query string false "Sort order" Enums(gdp_desc, gdp_asc, population_desc, population_asc)
// @Success 200 {array} CountryResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /countries [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sort, err := country.ParseSort(q.Get("sort"))
	if err != nil {
		writeErrorDetails(w, http.StatusBadRequest, "Invalid sort value",
			"supported values: "+strings.Join(country.SupportedSorts(), ", "))
		return
	}

	filters := domain.CountryFilters{
		Region:   strings.TrimSpace(q.Get("region")),
		Currency: strings.TrimSpace(q.Get("currency")),
		Sort:     sort,
	}

	countries, err := h.service.List(r.Context(), filters)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "List", "region": filters.Region, "currency": filters.Currency}).Error("failed to list countries")
		writeErrorDetails(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}

	res := make([]CountryResponse, 0, len(countries))
	for _, c := range countries {
		res = append(res, toCountryResponse(c))
	}
	writeJSON(w, http.StatusOK, res)
}
