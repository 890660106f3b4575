package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamahmadmhd/cinemora/internal/handler"
	"github.com/iamahmadmhd/cinemora/internal/models"
	"github.com/iamahmadmhd/cinemora/internal/service"
	"github.com/iamahmadmhd/cinemora/internal/tmdb"
)

// stubCatalog serves one canned page for every listing endpoint.
type stubCatalog struct {
	page   *tmdb.PagedResponse
	detail *tmdb.RawItem
	genres []tmdb.Genre
	err    error
}

func (s *stubCatalog) Discover(ctx context.Context, mediaType models.MediaType, params url.Values) (*tmdb.PagedResponse, error) {
	return s.page, s.err
}

func (s *stubCatalog) Search(ctx context.Context, mediaType models.MediaType, params url.Values) (*tmdb.PagedResponse, error) {
	return s.page, s.err
}

func (s *stubCatalog) Trending(ctx context.Context, mediaType models.MediaType, window string) (*tmdb.PagedResponse, error) {
	return s.page, s.err
}

func (s *stubCatalog) Detail(ctx context.Context, mediaType models.MediaType, id int) (*tmdb.RawItem, error) {
	return s.detail, s.err
}

func (s *stubCatalog) Genres(ctx context.Context, mediaType models.MediaType) ([]tmdb.Genre, error) {
	return s.genres, s.err
}

func newCatalogApp(catalog *stubCatalog) *fiber.App {
	svc := service.NewCatalogService(catalog, nil, "https://image.tmdb.org/t/p")
	h := handler.NewCatalogHandler(svc)

	app := fiber.New()
	app.Get("/api/health", h.Health)
	app.Get("/api/movie", h.ListMovies)
	app.Get("/api/movie/:id", h.MovieDetail)
	app.Get("/api/tv", h.ListTVShows)
	app.Get("/api/tv/:id", h.TVDetail)
	app.Get("/api/trending/:mediaType", h.Trending)
	app.Get("/api/genres/:mediaType", h.Genres)
	return app
}

func TestHealth(t *testing.T) {
	app := newCatalogApp(&stubCatalog{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListMovies(t *testing.T) {
	app := newCatalogApp(&stubCatalog{
		page: &tmdb.PagedResponse{
			Page:         1,
			Results:      []tmdb.RawItem{{ID: 27205, MediaType: "movie", Title: "Inception", GenreIDs: []int{28}}},
			TotalPages:   1,
			TotalResults: 1,
		},
		genres: []tmdb.Genre{{ID: 28, Name: "Action"}},
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/movie?genres=28&sort_by=popularity", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var page models.MediaPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Inception", page.Results[0].Title)
	assert.Equal(t, []string{"Action"}, page.Results[0].Genres)
}

func TestListMoviesRejectsBadCriteria(t *testing.T) {
	app := newCatalogApp(&stubCatalog{})

	for _, target := range []string{
		"/api/movie?releaseYear=20x0",
		"/api/movie?page=0",
		"/api/movie?sort_by=box_office",
		"/api/tv?genres=drama",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "expected 400 for %s", target)
	}
}

func TestDetailRejectsNonNumericID(t *testing.T) {
	app := newCatalogApp(&stubCatalog{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/movie/inception", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDetailNotFoundIs404(t *testing.T) {
	app := newCatalogApp(&stubCatalog{err: models.ErrNotFound})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/movie/999999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListingUpstreamFailureIs502(t *testing.T) {
	app := newCatalogApp(&stubCatalog{err: models.ErrUpstream})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/tv", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestTrendingRejectsUnknownMediaType(t *testing.T) {
	app := newCatalogApp(&stubCatalog{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/trending/person", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGenresEndpoint(t *testing.T) {
	app := newCatalogApp(&stubCatalog{genres: []tmdb.Genre{{ID: 18, Name: "Drama"}}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/genres/tv", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var genres []tmdb.Genre
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&genres))
	assert.Equal(t, []tmdb.Genre{{ID: 18, Name: "Drama"}}, genres)
}
