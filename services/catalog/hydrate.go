package catalog

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"naijastream/models"
)

// Hydrate enriches an already-normalized movie with detail-endpoint data:
// full genre names, runtime, trailer link and origin-country flags. The
// detail and video lookups run concurrently. Without a configured credential
// the movie is returned untouched with no network activity.
func (s *Service) Hydrate(ctx context.Context, movie models.Movie) (models.Movie, error) {
	if !s.tmdb.isConfigured() {
		return movie, nil
	}

	var (
		detail    tmdbMovie
		detailErr error
		videos    tmdbVideosResponse
		videosErr error
	)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		detailErr = s.tmdb.get(ctx, fmt.Sprintf("/movie/%d", movie.ID),
			url.Values{"language": {"en-US"}}, &detail)
	}()
	go func() {
		defer wg.Done()
		videosErr = s.tmdb.get(ctx, fmt.Sprintf("/movie/%d/videos", movie.ID),
			url.Values{"language": {"en-US"}}, &videos)
	}()
	wg.Wait()
	if detailErr != nil {
		return models.Movie{}, fmt.Errorf("fetch movie detail: %w", detailErr)
	}
	if videosErr != nil {
		return models.Movie{}, fmt.Errorf("fetch movie videos: %w", videosErr)
	}

	// Detail-endpoint genres replace the base names entirely when present.
	if detail.Genres != nil {
		names := make([]string, 0, len(detail.Genres))
		for _, genre := range detail.Genres {
			names = append(names, genre.Name)
		}
		movie.Genres = names
	}
	if detail.Runtime > 0 {
		movie.Runtime = detail.Runtime
		movie.LowDataFriendly = detail.Runtime <= lowDataRuntimeMax
	}
	for _, country := range detail.ProductionCountries {
		if country.ISO3166_1 == s.tmdb.region {
			movie.IsAfro = true
			break
		}
	}
	if trailer := pickTrailer(videos.Results); trailer != nil {
		movie.TrailerURL = ToYouTubeEmbed(trailer.Key)
	}
	return movie, nil
}

// pickTrailer returns the first YouTube video typed Trailer or Teaser, in
// upstream order, or nil when the list has none.
func pickTrailer(videos []tmdbVideo) *tmdbVideo {
	for i := range videos {
		v := &videos[i]
		if v.Site == "YouTube" && (v.Type == "Trailer" || v.Type == "Teaser") {
			return v
		}
	}
	return nil
}
