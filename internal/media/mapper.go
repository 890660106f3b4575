// Package media holds the pure data-flow pieces between the raw catalog
// schema and the view models: the item mapper and the listing criteria
// assembler.
package media

import (
	"fmt"

	"github.com/iamahmadmhd/cinemora/internal/models"
	"github.com/iamahmadmhd/cinemora/internal/tmdb"
)

// GenreIndex maps catalog genre ids to display names.
type GenreIndex map[int]string

// NewGenreIndex builds a GenreIndex from a fetched genre list.
func NewGenreIndex(genres []tmdb.Genre) GenreIndex {
	idx := make(GenreIndex, len(genres))
	for _, g := range genres {
		idx[g.ID] = g.Name
	}
	return idx
}

const unknownGenre = "Unknown"

// ResolveGenres resolves genre ids through the index, preserving input order.
// Ids absent from the index resolve to "Unknown".
func (idx GenreIndex) ResolveGenres(ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := idx[id]
		if !ok || name == "" {
			name = unknownGenre
		}
		names = append(names, name)
	}
	return names
}

// ImageConfig builds absolute image URLs from the relative paths the catalog
// returns. An empty source path yields an empty URL.
type ImageConfig struct {
	BaseURL      string
	PosterSize   string
	BackdropSize string
}

// ListingImages returns the image sizes used on listing screens.
func ListingImages(baseURL string) ImageConfig {
	return ImageConfig{BaseURL: baseURL, PosterSize: "w342", BackdropSize: "w780"}
}

// DetailImages returns the image sizes used on detail screens.
func DetailImages(baseURL string) ImageConfig {
	return ImageConfig{BaseURL: baseURL, PosterSize: "w780", BackdropSize: "w1280"}
}

func (ic ImageConfig) posterURL(path string) string {
	if path == "" || ic.BaseURL == "" {
		return ""
	}
	return ic.BaseURL + "/" + ic.PosterSize + path
}

func (ic ImageConfig) backdropURL(path string) string {
	if path == "" || ic.BaseURL == "" {
		return ""
	}
	return ic.BaseURL + "/" + ic.BackdropSize + path
}

// Map translates one raw catalog item into the unified view model. The second
// return value is false when the discriminator names neither known variant;
// such items must be skipped, never misclassified. Mapping is permissive:
// missing base fields become zero values rather than errors.
func Map(raw tmdb.RawItem, genres GenreIndex, images ImageConfig) (models.MediaItem, bool) {
	item := models.MediaItem{
		ID:                 raw.ID,
		Overview:           raw.Overview,
		Genres:             resolveItemGenres(raw, genres),
		PosterURL:          images.posterURL(raw.PosterPath),
		BackdropURL:        images.backdropURL(raw.BackdropPath),
		VoteAverage:        raw.VoteAverage,
		VoteCount:          raw.VoteCount,
		Popularity:         raw.Popularity,
		Status:             raw.Status,
		OriginCountry:      raw.OriginCountry,
		OriginCountryNames: DisplayCountryNames(raw.OriginCountry),
	}

	switch models.MediaType(raw.MediaType) {
	case models.MediaTypeMovie:
		item.MediaType = models.MediaTypeMovie
		item.Title = raw.Title
		item.ReleaseDate = raw.ReleaseDate
	case models.MediaTypeTV:
		item.MediaType = models.MediaTypeTV
		item.Title = raw.Name
		item.ReleaseDate = raw.FirstAirDate
		item.TV = &models.TVInfo{
			NumberOfSeasons:  raw.NumberOfSeasons,
			NumberOfEpisodes: raw.NumberOfEpisodes,
		}
	default:
		return models.MediaItem{}, false
	}

	item.Tagline = raw.Tagline
	if item.Tagline == "" {
		item.Tagline = item.Title
	}
	item.Href = fmt.Sprintf("/%s/%d", item.MediaType, item.ID)

	return item, true
}

// resolveItemGenres prefers the resolved genre objects detail responses
// carry; listing responses only carry ids.
func resolveItemGenres(raw tmdb.RawItem, idx GenreIndex) []string {
	if len(raw.Genres) > 0 {
		names := make([]string, 0, len(raw.Genres))
		for _, g := range raw.Genres {
			name := g.Name
			if name == "" {
				name = unknownGenre
			}
			names = append(names, name)
		}
		return names
	}
	return idx.ResolveGenres(raw.GenreIDs)
}

// MapPage maps a raw paged response, dropping items with an unknown
// discriminator.
func MapPage(resp *tmdb.PagedResponse, genres GenreIndex, images ImageConfig) *models.MediaPage {
	items := make([]models.MediaItem, 0, len(resp.Results))
	for _, raw := range resp.Results {
		if item, ok := Map(raw, genres, images); ok {
			items = append(items, item)
		}
	}
	return &models.MediaPage{
		Page:         resp.Page,
		Results:      items,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	}
}
