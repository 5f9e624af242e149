// Package client is a small Go consumer of the naijastream API. When the
// backend is unreachable it degrades to the bundled sample catalog so UIs
// always have something to render.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/lo"

	"naijastream/models"
	"naijastream/services/catalog"
)

const (
	fallbackTagline      = "A must-watch for the weekend!"
	offlineTagline       = "The vibiest movie in Naija right now!"
	aiUnavailableMessage = "AI not configured."
	aiErrorMessage       = "Error getting AI insights"
)

// statusError marks a response the server did send, as opposed to a
// transport failure.
type statusError int

func (e statusError) Error() string {
	return fmt.Sprintf("api request failed: %d", int(e))
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:5174/api".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient is New with a caller-supplied http.Client, mainly for tests.
func NewWithHTTPClient(baseURL string, httpc *http.Client) *Client {
	c := New(baseURL)
	c.httpc = httpc
	return c
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// TrendingMovies returns the trending feed, or the full sample catalog offline.
func (c *Client) TrendingMovies(ctx context.Context) []models.Movie {
	var movies []models.Movie
	if err := c.getJSON(ctx, "/movies/trending", &movies); err != nil {
		return catalog.DemoCatalog()
	}
	return movies
}

// NewAfroFilms returns the new-releases feed, or the Afro slice of the samples.
func (c *Client) NewAfroFilms(ctx context.Context) []models.Movie {
	var movies []models.Movie
	if err := c.getJSON(ctx, "/movies/new", &movies); err != nil {
		return lo.Filter(catalog.DemoCatalog(), func(m models.Movie, _ int) bool {
			return m.IsAfro
		})
	}
	return movies
}

// CheapestPicks returns the budget feed, falling back to free and
// subscription titles from the samples.
func (c *Client) CheapestPicks(ctx context.Context) []models.Movie {
	var movies []models.Movie
	if err := c.getJSON(ctx, "/movies/cheapest", &movies); err != nil {
		return lo.Filter(catalog.DemoCatalog(), func(m models.Movie, _ int) bool {
			return m.PriceCategory == models.PriceFree || m.PriceCategory == models.PriceSubscription
		})
	}
	return movies
}

// LowDataPicks returns the low-data feed, or the low-data slice of the samples.
func (c *Client) LowDataPicks(ctx context.Context) []models.Movie {
	var movies []models.Movie
	if err := c.getJSON(ctx, "/movies/low-data", &movies); err != nil {
		return lo.Filter(catalog.DemoCatalog(), func(m models.Movie, _ int) bool {
			return m.LowDataFriendly
		})
	}
	return movies
}

// MovieByID returns one hydrated movie, or the matching sample, or nil.
func (c *Client) MovieByID(ctx context.Context, id int64) *models.Movie {
	var movie models.Movie
	if err := c.getJSON(ctx, fmt.Sprintf("/movies/%d", id), &movie); err != nil {
		if found, ok := lo.Find(catalog.DemoCatalog(), func(m models.Movie) bool {
			return m.ID == id
		}); ok {
			return &found
		}
		return nil
	}
	return &movie
}

// SearchMovies queries the catalog. A blank query returns an empty slice
// without a network call. Offline it matches sample titles and tags.
func (c *Client) SearchMovies(ctx context.Context, query string) []models.Movie {
	if query == "" {
		return []models.Movie{}
	}
	var movies []models.Movie
	path := "/movies/search?query=" + url.QueryEscape(query)
	if err := c.getJSON(ctx, path, &movies); err != nil {
		q := strings.ToLower(query)
		return lo.Filter(catalog.DemoCatalog(), func(m models.Movie, _ int) bool {
			if strings.Contains(strings.ToLower(m.Title), q) {
				return true
			}
			return lo.SomeBy(m.Tags, func(tag string) bool {
				return strings.Contains(strings.ToLower(tag), q)
			})
		})
	}
	return movies
}

// GenerateNaijaTagline asks the backend for a promo line. It always returns
// usable text, never an error.
func (c *Client) GenerateNaijaTagline(ctx context.Context, title, description string) string {
	var out struct {
		Tagline string `json:"tagline"`
	}
	err := c.postJSON(ctx, "/generate-tagline", map[string]string{
		"title":       title,
		"description": description,
	}, &out)
	if err != nil {
		var se statusError
		if errors.As(err, &se) {
			return fallbackTagline
		}
		return offlineTagline
	}
	if out.Tagline == "" {
		return fallbackTagline
	}
	return out.Tagline
}

// AIPicks sends a free-form prompt through the tagline endpoint.
func (c *Client) AIPicks(ctx context.Context, prompt string) string {
	var out struct {
		Tagline string `json:"tagline"`
	}
	err := c.postJSON(ctx, "/generate-tagline", map[string]string{
		"title":       "AI Picks",
		"description": prompt,
	}, &out)
	if err != nil {
		var se statusError
		if errors.As(err, &se) {
			return aiUnavailableMessage
		}
		return aiErrorMessage
	}
	return out.Tagline
}

// Subscribe registers an email for release alerts.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.postJSON(ctx, "/subscribe", map[string]string{"email": email}, &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return fmt.Errorf("subscribe rejected: %s", out.Status)
	}
	return nil
}
