package models

// MediaType discriminates the two catalog item variants.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// Valid reports whether the media type is one of the two known variants.
func (t MediaType) Valid() bool {
	return t == MediaTypeMovie || t == MediaTypeTV
}

// MediaItem is the unified view model for a catalog item. Movie-shaped and
// tv-shaped source items map onto the same base fields; TV is populated only
// when MediaType is "tv".
type MediaItem struct {
	ID                 int       `json:"id"`
	Title              string    `json:"title"`
	Overview           string    `json:"overview"`
	MediaType          MediaType `json:"mediaType"`
	Genres             []string  `json:"genres"`
	PosterURL          string    `json:"posterUrl,omitempty"`
	BackdropURL        string    `json:"backdropUrl,omitempty"`
	Href               string    `json:"href,omitempty"`
	ReleaseDate        string    `json:"releaseDate"`
	VoteAverage        float64   `json:"voteAverage"`
	VoteCount          int       `json:"voteCount"`
	Popularity         float64   `json:"popularity"`
	Tagline            string    `json:"tagline"`
	Status             string    `json:"status"`
	OriginCountry      []string  `json:"originCountry"`
	OriginCountryNames []string  `json:"originCountryNames,omitempty"`

	TV *TVInfo `json:"tv,omitempty"`
}

// TVInfo carries the fields that only exist on tv-shaped items.
type TVInfo struct {
	NumberOfSeasons  int `json:"numberOfSeasons"`
	NumberOfEpisodes int `json:"numberOfEpisodes"`
}

const (
	overviewSummaryLimit = 120
	overviewFallback     = "No overview available"
)

// OverviewSummary returns the compact-list projection of the overview: clipped
// to 120 runes with an ellipsis suffix, or a fallback text when the source
// overview is empty. The full overview stays untouched on the item.
func (m MediaItem) OverviewSummary() string {
	if m.Overview == "" {
		return overviewFallback
	}
	runes := []rune(m.Overview)
	if len(runes) <= overviewSummaryLimit {
		return m.Overview
	}
	return string(runes[:overviewSummaryLimit]) + "..."
}

// MediaPage is a paginated catalog listing.
type MediaPage struct {
	Page         int         `json:"page"`
	Results      []MediaItem `json:"results"`
	TotalPages   int         `json:"totalPages"`
	TotalResults int         `json:"totalResults"`
}
