package catalog

import (
	"context"
	"net/url"
	"sync"
)

// genreResolver translates numeric TMDB genre ids into display names. The
// id-to-name table is fetched at most once per process and reused for every
// subsequent call.
type genreResolver struct {
	tmdb *tmdbClient

	mu     sync.Mutex
	loaded bool
	names  map[int64]string
}

func newGenreResolver(tmdb *tmdbClient) *genreResolver {
	return &genreResolver{tmdb: tmdb}
}

func (g *genreResolver) table(ctx context.Context) (map[int64]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.loaded {
		return g.names, nil
	}
	// Without a credential the table stays empty; no fetch, no error.
	if !g.tmdb.isConfigured() {
		return nil, nil
	}
	var resp tmdbGenreListResponse
	if err := g.tmdb.get(ctx, "/genre/movie/list", url.Values{"language": {"en-US"}}, &resp); err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(resp.Genres))
	for _, genre := range resp.Genres {
		names[genre.ID] = genre.Name
	}
	g.names = names
	g.loaded = true
	return g.names, nil
}

// Resolve maps genre ids to names, preserving input order and silently
// dropping ids with no known name.
func (g *genreResolver) Resolve(ctx context.Context, ids []int64) ([]string, error) {
	names := make([]string, 0, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	table, err := g.table(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if name, ok := table[id]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}
