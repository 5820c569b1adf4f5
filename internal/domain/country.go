package domain

import "time"

// Country is one cached row of the countries table. Nil pointers mean "no value".
type Country struct {
	ID              int64
	Name            string
	Capital         *string
	Region          *string
	Population      int64
	CurrencyCode    *string
	ExchangeRate    *float64
	EstimatedGDP    *float64
	FlagURL         *string
	LastRefreshedAt time.Time
}

// Currency is one entry of the upstream currency list.
type Currency struct {
	Code   string
	Name   string
	Symbol string
}

// CountryDescriptor is a validated upstream country record.
type CountryDescriptor struct {
	Name       string
	Capital    *string
	Region     *string
	Population int64
	FlagURL    *string
	Currencies []Currency
}

type SortOrder string

const (
	SortByName         SortOrder = ""
	SortGDPDesc        SortOrder = "gdp_desc"
	SortGDPAsc         SortOrder = "gdp_asc"
	SortPopulationDesc SortOrder = "population_desc"
	SortPopulationAsc  SortOrder = "population_asc"
)

type CountryFilters struct {
	Region   string
	Currency string
	Sort     SortOrder
}

type Status struct {
	TotalCountries  int64
	LastRefreshedAt *time.Time
}
