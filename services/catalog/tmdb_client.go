package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

// Minimal TMDB v3 client (the trending/discover/search/detail endpoints we need)

const (
	tmdbBaseURL      = "https://api.themoviedb.org/3"
	tmdbImageBaseURL = "https://image.tmdb.org/t/p"

	tmdbPosterSize   = "w500"
	tmdbBackdropSize = "w1280"
	tmdbLogoSize     = "w92"
)

// ErrNotConfigured is returned when the TMDB credential is absent. Handlers
// translate it into a configuration error rather than an upstream failure.
var ErrNotConfigured = errors.New("TMDB_API_KEY is not configured")

type tmdbClient struct {
	apiKey string
	region string
	httpc  *http.Client
}

func newTMDBClient(apiKey, region string, httpc *http.Client) *tmdbClient {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &tmdbClient{
		apiKey: strings.TrimSpace(apiKey),
		region: strings.TrimSpace(region),
		httpc:  httpc,
	}
}

func (c *tmdbClient) isConfigured() bool {
	return c.apiKey != ""
}

type tmdbGenre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type tmdbMovie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int64 `json:"genre_ids"`

	// Detail-endpoint only
	Runtime             int         `json:"runtime"`
	Genres              []tmdbGenre `json:"genres"`
	ProductionCountries []struct {
		ISO3166_1 string `json:"iso_3166_1"`
	} `json:"production_countries"`
}

type tmdbListResponse struct {
	Results []tmdbMovie `json:"results"`
}

type tmdbGenreListResponse struct {
	Genres []tmdbGenre `json:"genres"`
}

type tmdbVideo struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type tmdbVideosResponse struct {
	Results []tmdbVideo `json:"results"`
}

type tmdbProviderOffer struct {
	ProviderID   int64  `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

type tmdbRegionProviders struct {
	Flatrate []tmdbProviderOffer `json:"flatrate"`
	Ads      []tmdbProviderOffer `json:"ads"`
	Rent     []tmdbProviderOffer `json:"rent"`
	Buy      []tmdbProviderOffer `json:"buy"`
}

type tmdbWatchProvidersResponse struct {
	Results map[string]tmdbRegionProviders `json:"results"`
}

// get issues a GET against the TMDB API and decodes the JSON body into out.
// Transient failures (network errors, 429, 5xx) are retried with backoff;
// any other non-2xx status fails immediately.
func (c *tmdbClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if !c.isConfigured() {
		return ErrNotConfigured
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	endpoint := tmdbBaseURL + path + "?" + params.Encode()

	return retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("create tmdb request: %w", err))
			}
			resp, err := c.httpc.Do(req)
			if err != nil {
				return fmt.Errorf("tmdb request failed: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				io.Copy(io.Discard, resp.Body)
				return fmt.Errorf("tmdb request failed: status %d", resp.StatusCode)
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
				return retry.Unrecoverable(fmt.Errorf("tmdb request failed: status %d: %s",
					resp.StatusCode, strings.TrimSpace(string(body))))
			}
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decode tmdb response: %w", err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}

// buildTMDBImage returns an absolute image URL for a TMDB image path, or ""
// when the path is absent upstream.
func buildTMDBImage(path, size string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", tmdbImageBaseURL, size, path)
}

// parseReleaseYear reads the year as the first four characters of a TMDB
// date string (YYYY-MM-DD), returning 0 when absent or unparseable.
func parseReleaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

// roundRating rounds an upstream vote average to one decimal place.
func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
