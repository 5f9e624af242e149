package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sourcegraph/conc/iter"

	"naijastream/models"
)

const (
	feedLimit         = 12
	searchLimit       = 20
	lowDataRuntimeMax = 110

	maxProviderCacheEntries = 512
)

// Service aggregates TMDB data into the application's canonical movie feeds.
// The provider cache is owned by the service, not module-level state, so
// tests get isolated instances.
type Service struct {
	tmdb      *tmdbClient
	genres    *genreResolver
	providers *memoCache[[]models.Platform]
}

func NewService(apiKey, region string, httpc *http.Client, cacheTTL time.Duration) *Service {
	tmdb := newTMDBClient(apiKey, region, httpc)
	return &Service{
		tmdb:      tmdb,
		genres:    newGenreResolver(tmdb),
		providers: newMemoCache[[]models.Platform](cacheTTL, maxProviderCacheEntries),
	}
}

// IsConfigured reports whether the TMDB credential is present. Feed handlers
// refuse to serve without it; they never fall back to fabricated data.
func (s *Service) IsConfigured() bool {
	return s.tmdb.isConfigured()
}

// Trending returns this week's trending movies for the home region.
func (s *Service) Trending(ctx context.Context) ([]models.Movie, error) {
	var resp tmdbListResponse
	params := url.Values{"region": {s.tmdb.region}}
	if err := s.tmdb.get(ctx, "/trending/movie/week", params, &resp); err != nil {
		return nil, err
	}
	return s.normalizeFeed(ctx, resp.Results, feedLimit)
}

// NewLocal returns the newest releases originating from the home region.
func (s *Service) NewLocal(ctx context.Context) ([]models.Movie, error) {
	var resp tmdbListResponse
	params := url.Values{
		"region":              {s.tmdb.region},
		"with_origin_country": {s.tmdb.region},
		"sort_by":             {"release_date.desc"},
		"include_adult":       {"false"},
	}
	if err := s.tmdb.get(ctx, "/discover/movie", params, &resp); err != nil {
		return nil, err
	}
	return s.normalizeFeed(ctx, resp.Results, feedLimit)
}

// CheapestPicks returns movies watchable for free, with ads, or on a
// subscription the user likely already has.
func (s *Service) CheapestPicks(ctx context.Context) ([]models.Movie, error) {
	var resp tmdbListResponse
	params := url.Values{
		"region":                        {s.tmdb.region},
		"with_watch_monetization_types": {"free|ads|flatrate"},
		"watch_region":                  {s.tmdb.region},
	}
	if err := s.tmdb.get(ctx, "/discover/movie", params, &resp); err != nil {
		return nil, err
	}
	return s.normalizeFeed(ctx, resp.Results, feedLimit)
}

// LowDataPicks returns popular movies short enough to stream on a tight
// data budget (runtime at most 110 minutes).
func (s *Service) LowDataPicks(ctx context.Context) ([]models.Movie, error) {
	var resp tmdbListResponse
	params := url.Values{
		"region":           {s.tmdb.region},
		"with_runtime.lte": {fmt.Sprintf("%d", lowDataRuntimeMax)},
		"sort_by":          {"popularity.desc"},
		"include_adult":    {"false"},
	}
	if err := s.tmdb.get(ctx, "/discover/movie", params, &resp); err != nil {
		return nil, err
	}
	return s.normalizeFeed(ctx, resp.Results, feedLimit)
}

// Search returns movies matching a free-text query. A blank query
// short-circuits to an empty result without any upstream call.
func (s *Service) Search(ctx context.Context, query string) ([]models.Movie, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Movie{}, nil
	}
	var resp tmdbListResponse
	params := url.Values{
		"query":         {query},
		"include_adult": {"false"},
		"region":        {s.tmdb.region},
	}
	if err := s.tmdb.get(ctx, "/search/movie", params, &resp); err != nil {
		return nil, err
	}
	return s.normalizeFeed(ctx, resp.Results, searchLimit)
}

// MovieByID fetches a single movie from the detail endpoint and hydrates it
// for the details page.
func (s *Service) MovieByID(ctx context.Context, id int64) (*models.Movie, error) {
	var detail tmdbMovie
	if err := s.tmdb.get(ctx, fmt.Sprintf("/movie/%d", id), url.Values{"language": {"en-US"}}, &detail); err != nil {
		return nil, err
	}
	platforms, err := s.WatchProviders(ctx, detail.ID)
	if err != nil {
		return nil, err
	}

	genres := make([]string, 0, len(detail.Genres))
	for _, genre := range detail.Genres {
		genres = append(genres, genre.Name)
	}
	base := models.Movie{
		ID:              detail.ID,
		Title:           firstNonEmpty(detail.Title, fallbackTitle),
		Year:            parseReleaseYear(detail.ReleaseDate),
		Genres:          genres,
		Rating:          roundRating(detail.VoteAverage),
		PosterURL:       buildTMDBImage(detail.PosterPath, tmdbPosterSize),
		BackdropURL:     buildTMDBImage(detail.BackdropPath, tmdbBackdropSize),
		Description:     firstNonEmpty(detail.Overview, fallbackOverview),
		Platforms:       platforms,
		Tags:            []string{},
		LowDataFriendly: detail.Runtime > 0 && detail.Runtime <= lowDataRuntimeMax,
		IsAfro:          hasHomeCountry(detail, s.tmdb.region),
		PriceCategory:   DerivePriceCategory(platforms),
	}

	hydrated, err := s.Hydrate(ctx, base)
	if err != nil {
		return nil, err
	}
	return &hydrated, nil
}

// normalizeFeed caps the raw list and normalizes each item concurrently,
// preserving the upstream-provided order.
func (s *Service) normalizeFeed(ctx context.Context, items []tmdbMovie, limit int) ([]models.Movie, error) {
	if len(items) > limit {
		items = items[:limit]
	}
	movies, err := iter.MapErr(items, func(item *tmdbMovie) (models.Movie, error) {
		return s.normalizeMovie(ctx, *item)
	})
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies, nil
}

func hasHomeCountry(detail tmdbMovie, region string) bool {
	for _, country := range detail.ProductionCountries {
		if country.ISO3166_1 == region {
			return true
		}
	}
	return false
}
