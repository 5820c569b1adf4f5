package country

import (
	"context"
	"countryfx/internal/domain"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *MockCountryRepository, *MockSettingsRepository, *MockCountryCache) {
	repo := new(MockCountryRepository)
	settings := new(MockSettingsRepository)
	cache := new(MockCountryCache)
	return NewService(repo, settings, cache), repo, settings, cache
}

// --- List ---

func TestService_List_PassesFilters(t *testing.T) {
	svc, repo, _, _ := newTestService()
	filters := domain.CountryFilters{Region: "Europe", Sort: domain.SortPopulationDesc}
	want := []domain.Country{{Name: "Germany"}, {Name: "France"}}

	repo.On("FindAll", mock.Anything, filters).Return(want, nil).Once()

	got, err := svc.List(context.Background(), filters)
	require.NoError(t, err)
	require.Equal(t, want, got)
	repo.AssertExpectations(t)
}

// --- GetByName ---

func TestService_GetByName_CacheHit(t *testing.T) {
	svc, repo, _, cache := newTestService()
	cache.On("Get", "nigeria").Return(domain.Country{Name: "Nigeria"}, true).Once()

	c, err := svc.GetByName(context.Background(), "nigeria")
	require.NoError(t, err)
	require.Equal(t, "Nigeria", c.Name)
	repo.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
}

func TestService_GetByName_CacheMissPopulatesCache(t *testing.T) {
	svc, repo, _, cache := newTestService()
	country := domain.Country{ID: 1, Name: "Nigeria"}

	cache.On("Get", "NIGERIA").Return(domain.Country{}, false).Once()
	repo.On("FindByName", mock.Anything, "NIGERIA").Return(country, nil).Once()
	cache.On("Set", country).Return().Once()

	c, err := svc.GetByName(context.Background(), "NIGERIA")
	require.NoError(t, err)
	require.Equal(t, country, c)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_GetByName_NotFound(t *testing.T) {
	svc, repo, _, cache := newTestService()

	cache.On("Get", "Atlantis").Return(domain.Country{}, false).Once()
	repo.On("FindByName", mock.Anything, "Atlantis").Return(domain.Country{}, domain.ErrCountryNotFound).Once()

	_, err := svc.GetByName(context.Background(), "Atlantis")
	require.ErrorIs(t, err, domain.ErrCountryNotFound)
	cache.AssertNotCalled(t, "Set", mock.Anything)
}

// --- DeleteByName ---

func TestService_DeleteByName_Success(t *testing.T) {
	svc, repo, _, cache := newTestService()

	repo.On("DeleteByName", mock.Anything, "nigeria").Return(true, nil).Once()
	cache.On("Delete", "nigeria").Return().Once()

	require.NoError(t, svc.DeleteByName(context.Background(), "nigeria"))
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_DeleteByName_NotFound(t *testing.T) {
	svc, repo, _, cache := newTestService()

	repo.On("DeleteByName", mock.Anything, "Atlantis").Return(false, nil).Once()
	cache.On("Delete", "Atlantis").Return().Once()

	err := svc.DeleteByName(context.Background(), "Atlantis")
	require.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestService_DeleteByName_RepoError(t *testing.T) {
	svc, repo, _, cache := newTestService()
	wantErr := errors.New("db temporarily unavailable")

	repo.On("DeleteByName", mock.Anything, "Nigeria").Return(false, wantErr).Once()

	err := svc.DeleteByName(context.Background(), "Nigeria")
	require.ErrorIs(t, err, wantErr)
	cache.AssertNotCalled(t, "Delete", mock.Anything)
}

// --- Status ---

func TestService_Status(t *testing.T) {
	svc, repo, settings, _ := newTestService()
	at := time.Date(2025, 10, 22, 18, 0, 0, 0, time.UTC)

	repo.On("Count", mock.Anything).Return(int64(250), nil).Once()
	settings.On("GetLastRefreshedAt", mock.Anything).Return(&at, nil).Once()

	st, err := svc.Status(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(250), st.TotalCountries)
	require.Equal(t, at, *st.LastRefreshedAt)
}

func TestService_Status_NeverRefreshed(t *testing.T) {
	svc, repo, settings, _ := newTestService()

	repo.On("Count", mock.Anything).Return(int64(0), nil).Once()
	settings.On("GetLastRefreshedAt", mock.Anything).Return(nil, nil).Once()

	st, err := svc.Status(context.Background())
	require.NoError(t, err)
	require.Nil(t, st.LastRefreshedAt)
}

func TestService_Status_CountError(t *testing.T) {
	svc, repo, settings, _ := newTestService()
	repo.On("Count", mock.Anything).Return(int64(0), errors.New("boom")).Once()

	_, err := svc.Status(context.Background())
	require.Error(t, err)
	settings.AssertNotCalled(t, "GetLastRefreshedAt", mock.Anything)
}
