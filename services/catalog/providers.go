package catalog

import (
	"context"
	"fmt"

	"naijastream/models"
)

// WatchProviders returns the watch-provider offers for a movie in the home
// region. Results are cached per movie id; an unconfigured client always
// resolves to an empty list without touching the cache, so a later correctly
// configured process never inherits poisoned empties.
func (s *Service) WatchProviders(ctx context.Context, movieID int64) ([]models.Platform, error) {
	if !s.tmdb.isConfigured() {
		return []models.Platform{}, nil
	}
	if cached, ok := s.providers.get(movieID); ok {
		return cached, nil
	}

	var resp tmdbWatchProvidersResponse
	if err := s.tmdb.get(ctx, fmt.Sprintf("/movie/%d/watch/providers", movieID), nil, &resp); err != nil {
		return nil, err
	}
	platforms := mapRegionProviders(movieID, resp.Results[s.tmdb.region])
	s.providers.set(movieID, platforms)
	return platforms, nil
}

// mapRegionProviders flattens the region's monetization lists into Platform
// records. Category order is fixed (flatrate, ads, rent, buy); order within a
// category is whatever upstream returned.
func mapRegionProviders(movieID int64, region tmdbRegionProviders) []models.Platform {
	offers := make([]tmdbProviderOffer, 0,
		len(region.Flatrate)+len(region.Ads)+len(region.Rent)+len(region.Buy))
	offers = append(offers, region.Flatrate...)
	offers = append(offers, region.Ads...)
	offers = append(offers, region.Rent...)
	offers = append(offers, region.Buy...)

	platforms := make([]models.Platform, 0, len(offers))
	for _, offer := range offers {
		platforms = append(platforms, models.Platform{
			Name:  offer.ProviderName,
			Link:  fmt.Sprintf("https://www.themoviedb.org/movie/%d/watch", movieID),
			Price: providerPriceLabel(region, offer.ProviderID),
			Logo:  buildTMDBImage(offer.LogoPath, tmdbLogoSize),
		})
	}
	return platforms
}

// providerPriceLabel assigns the billing label for a single provider, checked
// in the order rent, buy, ads, subscription; first match wins. A provider
// listed under both rent and flatrate is therefore labeled Rent. Downstream
// UI filters depend on this exact order.
func providerPriceLabel(region tmdbRegionProviders, providerID int64) string {
	switch {
	case hasProvider(region.Rent, providerID):
		return models.PriceRent
	case hasProvider(region.Buy, providerID):
		return models.PriceBuy
	case hasProvider(region.Ads, providerID):
		return models.PriceFree
	default:
		return models.PriceSubscription
	}
}

func hasProvider(offers []tmdbProviderOffer, providerID int64) bool {
	for _, offer := range offers {
		if offer.ProviderID == providerID {
			return true
		}
	}
	return false
}
