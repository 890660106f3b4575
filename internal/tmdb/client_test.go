package tmdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamahmadmhd/cinemora/internal/models"
	"github.com/iamahmadmhd/cinemora/internal/tmdb"
)

func TestDiscoverSendsBearerTokenAndFoldsSort(t *testing.T) {
	var gotAuth string
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		assert.Equal(t, "/discover/movie", r.URL.Path)
		w.Write([]byte(`{"page":1,"results":[{"id":27205,"title":"Inception"}],"total_pages":1,"total_results":1}`))
	}))
	defer srv.Close()

	client := tmdb.NewClient("test-token", srv.URL)
	params := url.Values{}
	params.Set("with_genres", "28")
	params.Set("sort_by", "popularity")
	params.Set("order", "desc")

	resp, err := client.Discover(context.Background(), models.MediaTypeMovie, params)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "popularity.desc", gotQuery.Get("sort_by"))
	assert.Empty(t, gotQuery.Get("order"), "order must be folded into sort_by, never sent upstream")
	assert.Equal(t, "28", gotQuery.Get("with_genres"))

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "movie", resp.Results[0].MediaType, "discover results carry no media_type and must be stamped")
}

func TestSearchHitsSearchPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/tv", r.URL.Path)
		assert.Equal(t, "dream", r.URL.Query().Get("query"))
		w.Write([]byte(`{"page":1,"results":[],"total_pages":0,"total_results":0}`))
	}))
	defer srv.Close()

	client := tmdb.NewClient("test-token", srv.URL)
	params := url.Values{}
	params.Set("query", "dream")

	_, err := client.Search(context.Background(), models.MediaTypeTV, params)
	require.NoError(t, err)
}

func TestTrendingKeepsPayloadMediaType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/week", r.URL.Path)
		w.Write([]byte(`{"page":1,"results":[{"id":1,"media_type":"movie"},{"id":2}],"total_pages":1,"total_results":2}`))
	}))
	defer srv.Close()

	client := tmdb.NewClient("test-token", srv.URL)
	resp, err := client.Trending(context.Background(), models.MediaTypeMovie, "week")
	require.NoError(t, err)

	require.Len(t, resp.Results, 2)
	assert.Equal(t, "movie", resp.Results[0].MediaType)
	assert.Equal(t, "movie", resp.Results[1].MediaType)
}

func TestDetailStampsRequestedType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1399", r.URL.Path)
		w.Write([]byte(`{"id":1399,"name":"Game of Thrones","number_of_seasons":8}`))
	}))
	defer srv.Close()

	client := tmdb.NewClient("test-token", srv.URL)
	item, err := client.Detail(context.Background(), models.MediaTypeTV, 1399)
	require.NoError(t, err)

	assert.Equal(t, "tv", item.MediaType)
	assert.Equal(t, 8, item.NumberOfSeasons)
}

func TestDetailNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := tmdb.NewClient("test-token", srv.URL)
	_, err := client.Detail(context.Background(), models.MediaTypeMovie, 999999)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestUpstreamFailuresAreWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status_message":"Internal error"}`))
	}))
	defer srv.Close()

	client := tmdb.NewClient("test-token", srv.URL)
	_, err := client.Discover(context.Background(), models.MediaTypeMovie, nil)
	assert.True(t, errors.Is(err, models.ErrUpstream))
}

func TestMalformedResponseIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":`))
	}))
	defer srv.Close()

	client := tmdb.NewClient("test-token", srv.URL)
	_, err := client.Genres(context.Background(), models.MediaTypeMovie)
	assert.True(t, errors.Is(err, models.ErrUpstream))
}

func TestGenres(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/movie/list", r.URL.Path)
		w.Write([]byte(`{"genres":[{"id":28,"name":"Action"},{"id":18,"name":"Drama"}]}`))
	}))
	defer srv.Close()

	client := tmdb.NewClient("test-token", srv.URL)
	genres, err := client.Genres(context.Background(), models.MediaTypeMovie)
	require.NoError(t, err)

	assert.Equal(t, []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}}, genres)
}
