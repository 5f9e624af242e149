package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naijastream/models"
)

type fakeCatalogService struct {
	configured bool
	movies     []models.Movie
	movie      *models.Movie
	err        error

	searchQuery string
	detailID    int64
}

func (f *fakeCatalogService) IsConfigured() bool { return f.configured }

func (f *fakeCatalogService) Trending(context.Context) ([]models.Movie, error) {
	return f.movies, f.err
}

func (f *fakeCatalogService) NewLocal(context.Context) ([]models.Movie, error) {
	return f.movies, f.err
}

func (f *fakeCatalogService) CheapestPicks(context.Context) ([]models.Movie, error) {
	return f.movies, f.err
}

func (f *fakeCatalogService) LowDataPicks(context.Context) ([]models.Movie, error) {
	return f.movies, f.err
}

func (f *fakeCatalogService) Search(_ context.Context, query string) ([]models.Movie, error) {
	f.searchQuery = query
	return f.movies, f.err
}

func (f *fakeCatalogService) MovieByID(_ context.Context, id int64) (*models.Movie, error) {
	f.detailID = id
	return f.movie, f.err
}

func TestTrendingReturnsMovies(t *testing.T) {
	svc := &fakeCatalogService{
		configured: true,
		movies:     []models.Movie{{ID: 1, Title: "Anikulapo"}, {ID: 2, Title: "King of Boys"}},
	}
	h := NewMovieHandler(svc)

	rec := httptest.NewRecorder()
	h.Trending(rec, httptest.NewRequest(http.MethodGet, "/api/movies/trending", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Anikulapo", got[0].Title)
}

func TestFeedWithoutCredential(t *testing.T) {
	h := NewMovieHandler(&fakeCatalogService{configured: false})

	rec := httptest.NewRecorder()
	h.Trending(rec, httptest.NewRequest(http.MethodGet, "/api/movies/trending", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "TMDB_API_KEY is not configured.", body["error"])
}

func TestFeedUpstreamFailure(t *testing.T) {
	h := NewMovieHandler(&fakeCatalogService{configured: true, err: errors.New("tmdb down")})

	rec := httptest.NewRecorder()
	h.Cheapest(rec, httptest.NewRequest(http.MethodGet, "/api/movies/cheapest", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to load cheapest picks.", body["error"])
}

func TestSearchPassesQuery(t *testing.T) {
	svc := &fakeCatalogService{configured: true, movies: []models.Movie{}}
	h := NewMovieHandler(svc)

	rec := httptest.NewRecorder()
	h.Search(rec, httptest.NewRequest(http.MethodGet, "/api/movies/search?query=lagos", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "lagos", svc.searchQuery)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestByID(t *testing.T) {
	svc := &fakeCatalogService{configured: true, movie: &models.Movie{ID: 42, Title: "Shanty Town"}}
	h := NewMovieHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/movies/42", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	rec := httptest.NewRecorder()
	h.ByID(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.detailID)

	var got models.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Shanty Town", got.Title)
}

func TestByIDRejectsBadID(t *testing.T) {
	h := NewMovieHandler(&fakeCatalogService{configured: true})

	req := httptest.NewRequest(http.MethodGet, "/api/movies/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rec := httptest.NewRecorder()
	h.ByID(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
