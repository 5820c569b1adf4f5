package country

import (
	"bytes"
	"countryfx/internal/domain"
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError reports why one upstream country element was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid country record: " + e.Reason
	}
	return fmt.Sprintf("invalid country record: %s %s", e.Field, e.Reason)
}

type rawCurrency struct {
	Code   *string `json:"code"`
	Name   *string `json:"name"`
	Symbol *string `json:"symbol"`
}

type rawCountry struct {
	Name       *string       `json:"name"`
	Capital    *string       `json:"capital"`
	Region     *string       `json:"region"`
	Population *float64      `json:"population"`
	Flag       *string       `json:"flag"`
	Currencies []rawCurrency `json:"currencies"`
}

// ParseDescriptor validates one raw element of the countries feed.
func ParseDescriptor(raw json.RawMessage) (domain.CountryDescriptor, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.CountryDescriptor{}, &ValidationError{Reason: "element is not a JSON object"}
	}

	var rc rawCountry
	if err := json.Unmarshal(trimmed, &rc); err != nil {
		return domain.CountryDescriptor{}, &ValidationError{Reason: err.Error()}
	}

	if rc.Name == nil || strings.TrimSpace(*rc.Name) == "" {
		return domain.CountryDescriptor{}, &ValidationError{Field: "name", Reason: "is required"}
	}
	if rc.Population == nil {
		return domain.CountryDescriptor{}, &ValidationError{Field: "population", Reason: "is required"}
	}
	pop := *rc.Population
	if pop < 0 || pop != float64(int64(pop)) {
		return domain.CountryDescriptor{}, &ValidationError{Field: "population", Reason: "must be a non-negative integer"}
	}

	desc := domain.CountryDescriptor{
		Name:       strings.TrimSpace(*rc.Name),
		Capital:    nonEmpty(rc.Capital),
		Region:     nonEmpty(rc.Region),
		Population: int64(pop),
		FlagURL:    nonEmpty(rc.Flag),
		Currencies: make([]domain.Currency, 0, len(rc.Currencies)),
	}
	for _, c := range rc.Currencies {
		desc.Currencies = append(desc.Currencies, domain.Currency{
			Code:   deref(c.Code),
			Name:   deref(c.Name),
			Symbol: deref(c.Symbol),
		})
	}
	return desc, nil
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
