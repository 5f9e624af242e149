package catalog

import (
	"context"
	"fmt"
	"sync"

	"naijastream/models"
)

const (
	fallbackTitle    = "Untitled"
	fallbackOverview = "No description available."
)

// normalizeMovie maps one raw upstream search/discovery result into the
// canonical Movie. The item's watch providers and genre names have no
// dependency on each other and are resolved concurrently; the movie is not
// returned until both lookups complete.
//
// lowDataFriendly and isAfro stay false here: list feeds never hydrate, so
// those flags are only reliable on the detail endpoint.
func (s *Service) normalizeMovie(ctx context.Context, item tmdbMovie) (models.Movie, error) {
	var (
		platforms []models.Platform
		provErr   error
		genres    []string
		genreErr  error
	)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		platforms, provErr = s.WatchProviders(ctx, item.ID)
	}()
	go func() {
		defer wg.Done()
		genres, genreErr = s.genres.Resolve(ctx, item.GenreIDs)
	}()
	wg.Wait()
	if provErr != nil {
		return models.Movie{}, fmt.Errorf("resolve watch providers: %w", provErr)
	}
	if genreErr != nil {
		return models.Movie{}, fmt.Errorf("resolve genres: %w", genreErr)
	}

	return models.Movie{
		ID:            item.ID,
		Title:         firstNonEmpty(item.Title, item.Name, fallbackTitle),
		Year:          parseReleaseYear(item.ReleaseDate),
		Genres:        genres,
		Rating:        roundRating(item.VoteAverage),
		PosterURL:     buildTMDBImage(item.PosterPath, tmdbPosterSize),
		BackdropURL:   buildTMDBImage(item.BackdropPath, tmdbBackdropSize),
		Description:   firstNonEmpty(item.Overview, fallbackOverview),
		Platforms:     platforms,
		Tags:          []string{},
		PriceCategory: DerivePriceCategory(platforms),
	}, nil
}

// DerivePriceCategory collapses a platform list into the coarse category
// shown on cards: Free, then Subscription, then Rent, then Buy; an empty
// list defaults to Subscription.
//
// This aggregate order intentionally differs from the per-provider label
// order in providerPriceLabel; both are observed behavior the UI filters
// rely on. Do not unify them without a product decision.
func DerivePriceCategory(platforms []models.Platform) string {
	for _, category := range []string{
		models.PriceFree,
		models.PriceSubscription,
		models.PriceRent,
		models.PriceBuy,
	} {
		for _, p := range platforms {
			if p.Price == category {
				return category
			}
		}
	}
	return models.PriceSubscription
}
