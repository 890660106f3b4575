package tmdb

// Genre is a genre as the catalog API returns it.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreListResponse is the genre/{type}/list response.
type GenreListResponse struct {
	Genres []Genre `json:"genres"`
}

// RawItem is a catalog item exactly as the upstream API shapes it. Movie and
// tv results share the base fields; the MediaType discriminator decides which
// of the variant-specific groups is meaningful. Listing endpoints carry
// GenreIDs, detail endpoints carry resolved Genres.
type RawItem struct {
	ID               int      `json:"id"`
	MediaType        string   `json:"media_type"`
	Overview         string   `json:"overview"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	GenreIDs         []int    `json:"genre_ids"`
	Genres           []Genre  `json:"genres"`
	Popularity       float64  `json:"popularity"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Tagline          string   `json:"tagline"`
	Status           string   `json:"status"`
	OriginCountry    []string `json:"origin_country"`
	OriginalLanguage string   `json:"original_language"`

	// movie variant
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`

	// tv variant
	Name             string `json:"name"`
	FirstAirDate     string `json:"first_air_date"`
	NumberOfSeasons  int    `json:"number_of_seasons"`
	NumberOfEpisodes int    `json:"number_of_episodes"`
}

// PagedResponse is the shape of every paged listing response upstream.
type PagedResponse struct {
	Page         int       `json:"page"`
	Results      []RawItem `json:"results"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
}
