package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iamahmadmhd/cinemora/internal/models"
)

const (
	membershipCacheTTL = 5 * time.Minute
	listCacheTTL       = 5 * time.Minute
)

// WatchlistStore is the persistence surface the watchlist service needs.
type WatchlistStore interface {
	Exists(ctx context.Context, userID string, mediaID int) (bool, error)
	Upsert(ctx context.Context, userID string, snap models.MediaSnapshot) (*models.WatchlistEntry, error)
	Delete(ctx context.Context, userID string, mediaID int) error
	ListByUser(ctx context.Context, userID string) ([]models.WatchlistEntry, error)
}

// WatchlistService handles business logic for watchlist membership.
type WatchlistService struct {
	store WatchlistStore
	redis *redis.Client
}

// NewWatchlistService creates a new WatchlistService.
func NewWatchlistService(store WatchlistStore, rdb *redis.Client) *WatchlistService {
	return &WatchlistService{store: store, redis: rdb}
}

// Exists reports whether the user has saved the given media item. It returns
// false, never an error, for an unauthenticated caller, a missing row, or a
// failed lookup: callers cannot distinguish "definitely not saved" from
// "could not determine".
func (s *WatchlistService) Exists(ctx context.Context, userID string, mediaID int) bool {
	if userID == "" || mediaID <= 0 {
		return false
	}

	cacheKey := membershipKey(userID, mediaID)
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		return cached == "1"
	}

	exists, err := s.store.Exists(ctx, userID, mediaID)
	if err != nil {
		slog.Warn("membership lookup failed, reading as not saved",
			"user_id", userID, "media_id", mediaID, "error", err)
		return false
	}

	s.setCache(ctx, cacheKey, boolValue(exists), membershipCacheTTL)
	return exists
}

// Add saves a media item to the user's watchlist. Adding an item that is
// already saved succeeds and returns the existing entry (upsert semantics);
// two concurrent adds are resolved by the store's uniqueness constraint, not
// by locking here.
func (s *WatchlistService) Add(ctx context.Context, userID string, snap models.MediaSnapshot) (*models.WatchlistEntry, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}
	if snap.MediaID <= 0 {
		return nil, fmt.Errorf("media id is required: %w", models.ErrInvalidInput)
	}
	if snap.MediaType == "" {
		snap.MediaType = models.MediaTypeMovie
	}
	if !snap.MediaType.Valid() {
		return nil, fmt.Errorf("unknown media type %q: %w", snap.MediaType, models.ErrInvalidInput)
	}

	entry, err := s.store.Upsert(ctx, userID, snap)
	if err != nil {
		return nil, fmt.Errorf("failed to add watchlist entry: %w", err)
	}

	s.setCache(ctx, membershipKey(userID, snap.MediaID), "1", membershipCacheTTL)
	s.delCache(ctx, listKey(userID))

	return entry, nil
}

// Remove deletes the user's entry for the given media item. Removing an
// entry that does not exist succeeds.
func (s *WatchlistService) Remove(ctx context.Context, userID string, mediaID int) error {
	if userID == "" {
		return models.ErrUnauthenticated
	}
	if mediaID <= 0 {
		return fmt.Errorf("media id is required: %w", models.ErrInvalidInput)
	}

	if err := s.store.Delete(ctx, userID, mediaID); err != nil {
		return fmt.Errorf("failed to remove watchlist entry: %w", err)
	}

	s.setCache(ctx, membershipKey(userID, mediaID), "0", membershipCacheTTL)
	s.delCache(ctx, listKey(userID))

	return nil
}

// List returns the user's watchlist entries, newest first.
func (s *WatchlistService) List(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}

	cacheKey := listKey(userID)
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		var entries []models.WatchlistEntry
		if json.Unmarshal([]byte(cached), &entries) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return entries, nil
		}
	}

	entries, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}

	if data, err := json.Marshal(entries); err == nil {
		s.setCache(ctx, cacheKey, string(data), listCacheTTL)
	}

	return entries, nil
}

func membershipKey(userID string, mediaID int) string {
	return fmt.Sprintf("watchlist:member:%s:%d", userID, mediaID)
}

func listKey(userID string) string {
	return fmt.Sprintf("watchlist:list:%s", userID)
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// ---- Redis Helpers ----

func (s *WatchlistService) getFromCache(ctx context.Context, key string) (string, error) {
	if s.redis == nil {
		return "", fmt.Errorf("redis not available")
	}
	return s.redis.Get(ctx, key).Result()
}

func (s *WatchlistService) setCache(ctx context.Context, key, value string, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}

func (s *WatchlistService) delCache(ctx context.Context, key string) {
	if s.redis == nil {
		return
	}
	s.redis.Del(ctx, key)
}
