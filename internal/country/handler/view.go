package handler

import (
	"countryfx/internal/domain"
	"time"
)

type CountryResponse struct {
	ID              int64     `json:"id" example:"1"`
	Name            string    `json:"name" example:"Nigeria"`
	Capital         *string   `json:"capital" example:"Abuja"`
	Region          *string   `json:"region" example:"Africa"`
	Population      int64     `json:"population" example:"206139589"`
	CurrencyCode    *string   `json:"currency_code" example:"NGN"`
	ExchangeRate    *float64  `json:"exchange_rate" example:"1600.23"`
	EstimatedGDP    *float64  `json:"estimated_gdp" example:"25767448125.2"`
	FlagURL         *string   `json:"flag_url" example:"https://flagcdn.com/ng.svg"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

func toCountryResponse(c domain.Country) CountryResponse {
	return CountryResponse{
		ID:              c.ID,
		Name:            c.Name,
		Capital:         c.Capital,
		Region:          c.Region,
		Population:      c.Population,
		CurrencyCode:    c.CurrencyCode,
		ExchangeRate:    c.ExchangeRate,
		EstimatedGDP:    c.EstimatedGDP,
		FlagURL:         c.FlagURL,
		LastRefreshedAt: c.LastRefreshedAt.UTC(),
	}
}
