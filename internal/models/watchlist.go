package models

import "time"

// DefaultWatchStatus is the watch-progress label assigned to new entries.
const DefaultWatchStatus = "not watched"

// WatchlistEntry is one saved item in a user's watchlist. The media fields are
// a point-in-time copy taken when the entry was created; they are never
// refreshed from the catalog afterwards.
type WatchlistEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	MediaID     int       `json:"media_id"`
	MediaType   MediaType `json:"media_type"`
	Title       string    `json:"title"`
	Overview    string    `json:"overview"`
	PosterURL   string    `json:"poster_url,omitempty"`
	BackdropURL string    `json:"backdrop_url,omitempty"`
	ReleaseDate string    `json:"release_date"`
	Genres      []string  `json:"genres"`
	VoteAverage float64   `json:"vote_average"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// MediaSnapshot is the denormalized copy of catalog fields a client submits
// when adding an entry. It doubles as the add request body.
type MediaSnapshot struct {
	MediaID     int       `json:"media_id"`
	MediaType   MediaType `json:"media_type"`
	Title       string    `json:"title"`
	Overview    string    `json:"overview"`
	PosterURL   string    `json:"poster_url"`
	BackdropURL string    `json:"backdrop_url"`
	ReleaseDate string    `json:"release_date"`
	Genres      []string  `json:"genres"`
	VoteAverage float64   `json:"vote_average"`
}

// RemoveWatchlistRequest is the remove request body.
type RemoveWatchlistRequest struct {
	MediaID int `json:"media_id"`
}
