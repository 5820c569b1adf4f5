package country

import (
	"countryfx/internal/domain"
	"errors"
	"strings"
)

var ErrUnsupportedSort = errors.New("unsupported sort value")

var supportedSorts = map[string]domain.SortOrder{
	"":                domain.SortByName,
	"gdp_desc":        domain.SortGDPDesc,
	"gdp_asc":         domain.SortGDPAsc,
	"population_desc": domain.SortPopulationDesc,
	"population_asc":  domain.SortPopulationAsc,
}

// ParseSort maps the sort query parameter onto a known order. Empty means by name.
func ParseSort(raw string) (domain.SortOrder, error) {
	sort, ok := supportedSorts[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", ErrUnsupportedSort
	}
	return sort, nil
}

// SupportedSorts lists accepted non-default sort values.
func SupportedSorts() []string {
	return []string{
		string(domain.SortGDPDesc),
		string(domain.SortGDPAsc),
		string(domain.SortPopulationDesc),
		string(domain.SortPopulationAsc),
	}
}
