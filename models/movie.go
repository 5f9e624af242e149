package models

// Price category labels shown to users. These are the only values the
// aggregation layer produces; historical sample data also carries raw price
// strings (e.g. "₦1,200/mo") in the per-platform field.
const (
	PriceFree         = "Free"
	PriceSubscription = "Subscription"
	PriceRent         = "Rent"
	PriceBuy          = "Buy"
)

// Platform is one streaming/rental/purchase service offering a movie.
// Link always points at the movie's watch page, not a provider deep link.
type Platform struct {
	Name  string `json:"name"`
	Link  string `json:"link"`
	Price string `json:"price"`
	Logo  string `json:"logo"`
}

// Movie is the canonical representation served to both clients. It is built
// fresh per request and never mutated after construction.
type Movie struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Year            int        `json:"year"`
	Genres          []string   `json:"genres"`
	Rating          float64    `json:"rating"`
	PosterURL       string     `json:"poster_url"`
	BackdropURL     string     `json:"backdrop_url"`
	TrailerURL      string     `json:"trailer_url"`
	Description     string     `json:"description"`
	Platforms       []Platform `json:"platforms"`
	Tags            []string   `json:"tags"`
	LowDataFriendly bool       `json:"lowDataFriendly"`
	IsAfro          bool       `json:"isAfro"`
	PriceCategory   string     `json:"priceCategory"`
	Runtime         int        `json:"runtime,omitempty"` // minutes, set after hydration
}
