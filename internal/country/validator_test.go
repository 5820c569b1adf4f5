package country

import (
	"countryfx/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.SortOrder
	}{
		{"", domain.SortByName},
		{"gdp_desc", domain.SortGDPDesc},
		{"GDP_ASC", domain.SortGDPAsc},
		{" population_desc ", domain.SortPopulationDesc},
		{"population_asc", domain.SortPopulationAsc},
	}
	for _, tc := range tests {
		got, err := ParseSort(tc.raw)
		require.NoError(t, err, tc.raw)
		require.Equal(t, tc.want, got)
	}
}

func TestParseSort_Unsupported(t *testing.T) {
	for _, raw := range []string{"name_desc", "gdp", "1; drop table countries"} {
		_, err := ParseSort(raw)
		require.ErrorIs(t, err, ErrUnsupportedSort, raw)
	}
}

func TestSupportedSorts(t *testing.T) {
	for _, s := range SupportedSorts() {
		_, err := ParseSort(s)
		require.NoError(t, err)
	}
}
