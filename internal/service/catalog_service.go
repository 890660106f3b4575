package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sourcegraph/conc"

	"github.com/iamahmadmhd/cinemora/internal/media"
	"github.com/iamahmadmhd/cinemora/internal/models"
	"github.com/iamahmadmhd/cinemora/internal/tmdb"
)

const (
	catalogListCacheTTL   = 5 * time.Minute
	catalogDetailCacheTTL = 30 * time.Minute
	trendingCacheTTL      = 30 * time.Minute
	genreCacheTTL         = 24 * time.Hour

	trendingLimit = 8
)

// CatalogClient is the upstream surface the catalog service needs.
type CatalogClient interface {
	Discover(ctx context.Context, mediaType models.MediaType, params url.Values) (*tmdb.PagedResponse, error)
	Search(ctx context.Context, mediaType models.MediaType, params url.Values) (*tmdb.PagedResponse, error)
	Trending(ctx context.Context, mediaType models.MediaType, window string) (*tmdb.PagedResponse, error)
	Detail(ctx context.Context, mediaType models.MediaType, id int) (*tmdb.RawItem, error)
	Genres(ctx context.Context, mediaType models.MediaType) ([]tmdb.Genre, error)
}

// CatalogService handles listing, trending and detail fetches against the
// catalog API, mapping raw items into view models.
type CatalogService struct {
	catalog      CatalogClient
	redis        *redis.Client
	listImages   media.ImageConfig
	detailImages media.ImageConfig
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalog CatalogClient, rdb *redis.Client, imagesBaseURL string) *CatalogService {
	return &CatalogService{
		catalog:      catalog,
		redis:        rdb,
		listImages:   media.ListingImages(imagesBaseURL),
		detailImages: media.DetailImages(imagesBaseURL),
	}
}

// ListMedia returns one listing page for the given criteria. A keywords term
// routes the fetch to the search endpoint; all other criteria go through
// discover. The listing and the genre index are fetched concurrently.
func (s *CatalogService) ListMedia(ctx context.Context, mediaType models.MediaType, criteria media.Criteria) (*models.MediaPage, error) {
	params := criteria.QueryParams(mediaType)

	cacheKey := fmt.Sprintf("catalog:list:%s:%s", mediaType, params.Encode())
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		var page models.MediaPage
		if json.Unmarshal([]byte(cached), &page) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return &page, nil
		}
	}

	var (
		resp     *tmdb.PagedResponse
		idx      media.GenreIndex
		fetchErr error
		genreErr error
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		if criteria.Keywords != "" {
			resp, fetchErr = s.catalog.Search(ctx, mediaType, params)
		} else {
			resp, fetchErr = s.catalog.Discover(ctx, mediaType, params)
		}
	})
	wg.Go(func() {
		idx, genreErr = s.genreIndex(ctx, mediaType)
	})
	wg.Wait()

	if fetchErr != nil {
		return nil, fmt.Errorf("failed to list %s: %w", mediaType, fetchErr)
	}
	if genreErr != nil {
		return nil, fmt.Errorf("failed to resolve genres for %s: %w", mediaType, genreErr)
	}

	page := media.MapPage(resp, idx, s.listImages)

	if data, err := json.Marshal(page); err == nil {
		s.setCache(ctx, cacheKey, string(data), catalogListCacheTTL)
	}

	return page, nil
}

// Trending returns the top weekly trending items for the media type, with the
// overview replaced by its compact summary projection.
func (s *CatalogService) Trending(ctx context.Context, mediaType models.MediaType) ([]models.MediaItem, error) {
	cacheKey := fmt.Sprintf("catalog:trending:%s", mediaType)
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		var items []models.MediaItem
		if json.Unmarshal([]byte(cached), &items) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return items, nil
		}
	}

	var (
		resp     *tmdb.PagedResponse
		idx      media.GenreIndex
		fetchErr error
		genreErr error
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		resp, fetchErr = s.catalog.Trending(ctx, mediaType, "week")
	})
	wg.Go(func() {
		idx, genreErr = s.genreIndex(ctx, mediaType)
	})
	wg.Wait()

	if fetchErr != nil {
		return nil, fmt.Errorf("failed to fetch trending %s: %w", mediaType, fetchErr)
	}
	if genreErr != nil {
		return nil, fmt.Errorf("failed to resolve genres for %s: %w", mediaType, genreErr)
	}

	page := media.MapPage(resp, idx, s.listImages)
	items := page.Results
	if len(items) > trendingLimit {
		items = items[:trendingLimit]
	}
	for i := range items {
		items[i].Overview = items[i].OverviewSummary()
	}

	if data, err := json.Marshal(items); err == nil {
		s.setCache(ctx, cacheKey, string(data), trendingCacheTTL)
	}

	return items, nil
}

// Detail returns the full view model for one item. Detail responses carry
// resolved genre names, so no genre index fetch is needed.
func (s *CatalogService) Detail(ctx context.Context, mediaType models.MediaType, id int) (*models.MediaItem, error) {
	cacheKey := fmt.Sprintf("catalog:detail:%s:%d", mediaType, id)
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		var item models.MediaItem
		if json.Unmarshal([]byte(cached), &item) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return &item, nil
		}
	}

	raw, err := s.catalog.Detail(ctx, mediaType, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s %d: %w", mediaType, id, err)
	}

	item, ok := media.Map(*raw, nil, s.detailImages)
	if !ok {
		return nil, fmt.Errorf("%w: detail response had unknown media type", models.ErrUpstream)
	}

	if data, err := json.Marshal(item); err == nil {
		s.setCache(ctx, cacheKey, string(data), catalogDetailCacheTTL)
	}

	return &item, nil
}

// GenreList returns the raw genre id/name list for filter UIs.
func (s *CatalogService) GenreList(ctx context.Context, mediaType models.MediaType) ([]tmdb.Genre, error) {
	genres, err := s.genres(ctx, mediaType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch genres for %s: %w", mediaType, err)
	}
	return genres, nil
}

func (s *CatalogService) genreIndex(ctx context.Context, mediaType models.MediaType) (media.GenreIndex, error) {
	genres, err := s.genres(ctx, mediaType)
	if err != nil {
		return nil, err
	}
	return media.NewGenreIndex(genres), nil
}

// genres is cache-aside over the upstream genre list; the caller is the one
// responsible for freshness, not the mapper.
func (s *CatalogService) genres(ctx context.Context, mediaType models.MediaType) ([]tmdb.Genre, error) {
	cacheKey := fmt.Sprintf("catalog:genres:%s", mediaType)
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		var genres []tmdb.Genre
		if json.Unmarshal([]byte(cached), &genres) == nil {
			return genres, nil
		}
	}

	genres, err := s.catalog.Genres(ctx, mediaType)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(genres); err == nil {
		s.setCache(ctx, cacheKey, string(data), genreCacheTTL)
	}

	return genres, nil
}

// ---- Redis Helpers ----

func (s *CatalogService) getFromCache(ctx context.Context, key string) (string, error) {
	if s.redis == nil {
		return "", fmt.Errorf("redis not available")
	}
	return s.redis.Get(ctx, key).Result()
}

func (s *CatalogService) setCache(ctx context.Context, key, value string, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}
