package catalog

import "naijastream/models"

// Static sample catalog simulating a Nigerian-focused response. The client
// library serves it whenever the backend is unreachable so the UI always has
// something to render; the backend itself never serves it.
var demoMovies = []models.Movie{
	{
		ID:              1,
		Title:           "Anikulapo",
		Year:            2022,
		Genres:          []string{"Drama", "Fantasy"},
		Rating:          8.5,
		PosterURL:       "https://picsum.photos/seed/anikulapo/400/600",
		BackdropURL:     "https://picsum.photos/seed/anikulapo-bg/1200/600",
		TrailerURL:      "https://www.youtube.com/embed/5-XQjD5Tz4c",
		Description:     "After an affair with the king's wife leads to his demise, a traveler encounters a mystical bird with the power to give him another life.",
		LowDataFriendly: true,
		IsAfro:          true,
		PriceCategory:   models.PriceSubscription,
		Platforms: []models.Platform{
			{Name: "Netflix", Link: "https://netflix.com", Price: "Subscription", Logo: "https://upload.wikimedia.org/wikipedia/commons/0/08/Netflix_2015_logo.svg"},
		},
		Tags: []string{"Nollywood", "Epic", "Cultural"},
	},
	{
		ID:              2,
		Title:           "The Wedding Party",
		Year:            2016,
		Genres:          []string{"Comedy", "Romance"},
		Rating:          7.9,
		PosterURL:       "https://picsum.photos/seed/wedding/400/600",
		BackdropURL:     "https://picsum.photos/seed/wedding-bg/1200/600",
		TrailerURL:      "https://www.youtube.com/embed/SAsXmQ-W63c",
		Description:     "As their big day arrives, a couple's lavish wedding plans turn into a chaotic nightmare.",
		LowDataFriendly: true,
		IsAfro:          true,
		PriceCategory:   models.PriceSubscription,
		Platforms: []models.Platform{
			{Name: "Netflix", Link: "https://netflix.com", Price: "Subscription", Logo: "https://upload.wikimedia.org/wikipedia/commons/0/08/Netflix_2015_logo.svg"},
			{Name: "Showmax", Link: "https://showmax.com", Price: "₦1,200/mo", Logo: "https://upload.wikimedia.org/wikipedia/en/thumb/5/52/Showmax_Logo.svg/1200px-Showmax_Logo.svg.png"},
		},
		Tags: []string{"Classic", "Party Vibes", "Lagos Life"},
	},
	{
		ID:              3,
		Title:           "King of Boys",
		Year:            2018,
		Genres:          []string{"Crime", "Drama"},
		Rating:          9.1,
		PosterURL:       "https://picsum.photos/seed/kob/400/600",
		BackdropURL:     "https://picsum.photos/seed/kob-bg/1200/600",
		TrailerURL:      "https://www.youtube.com/embed/k-pY8L3j6o8",
		Description:     "Eniola Salami, a businesswoman and philanthropist with a checkered past and a promising political future.",
		LowDataFriendly: false,
		IsAfro:          true,
		PriceCategory:   models.PriceSubscription,
		Platforms: []models.Platform{
			{Name: "Netflix", Link: "https://netflix.com", Price: "Subscription", Logo: "https://upload.wikimedia.org/wikipedia/commons/0/08/Netflix_2015_logo.svg"},
		},
		Tags: []string{"Must Watch", "Eniola Salami", "Power"},
	},
	{
		ID:              4,
		Title:           "Shanty Town",
		Year:            2023,
		Genres:          []string{"Action", "Crime"},
		Rating:          7.5,
		PosterURL:       "https://picsum.photos/seed/shanty/400/600",
		BackdropURL:     "https://picsum.photos/seed/shanty-bg/1200/600",
		TrailerURL:      "https://www.youtube.com/embed/abc",
		Description:     "A group of courtesans attempts to escape the clutches of a notorious kingpin.",
		LowDataFriendly: true,
		IsAfro:          true,
		PriceCategory:   models.PriceSubscription,
		Platforms: []models.Platform{
			{Name: "Netflix", Link: "https://netflix.com", Price: "Subscription", Logo: "https://upload.wikimedia.org/wikipedia/commons/0/08/Netflix_2015_logo.svg"},
		},
		Tags: []string{"Action", "Gritty", "Series"},
	},
	{
		ID:              5,
		Title:           "Spider-Man: Across the Spider-Verse",
		Year:            2023,
		Genres:          []string{"Animation", "Action"},
		Rating:          8.9,
		PosterURL:       "https://picsum.photos/seed/spidey/400/600",
		BackdropURL:     "https://picsum.photos/seed/spidey-bg/1200/600",
		TrailerURL:      "https://www.youtube.com/embed/shW9i6k8cB0",
		Description:     "Miles Morales catapults across the Multiverse, where he encounters a team of Spider-People charged with protecting its very existence.",
		LowDataFriendly: false,
		IsAfro:          false,
		PriceCategory:   models.PriceRent,
		Platforms: []models.Platform{
			{Name: "Apple TV", Link: "https://apple.com", Price: "₦2,500", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/2/2a/Apple_TV_logo.svg/1200px-Apple_TV_logo.svg.png"},
			{Name: "Google Play", Link: "https://play.google.com", Price: "₦1,800", Logo: "https://upload.wikimedia.org/wikipedia/commons/d/d0/Google_Play_Arrow_logo.svg"},
		},
		Tags: []string{"Blockbuster", "Global"},
	},
}

// DemoCatalog returns a fresh copy of the sample catalog so callers can
// filter it without touching the shared backing data.
func DemoCatalog() []models.Movie {
	out := make([]models.Movie, len(demoMovies))
	copy(out, demoMovies)
	return out
}
