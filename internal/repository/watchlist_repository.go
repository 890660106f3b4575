package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/iamahmadmhd/cinemora/internal/models"
)

// WatchlistRepository handles database operations for watchlist entries.
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates a new WatchlistRepository.
func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

const entryColumns = `id, user_id, media_id, media_type, title, overview,
	poster_url, backdrop_url, release_date, genres, vote_average, status, created_at`

// Exists reports whether the user has saved the given media item.
func (r *WatchlistRepository) Exists(ctx context.Context, userID string, mediaID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM watchlists WHERE user_id = $1 AND media_id = $2)
	`, userID, mediaID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("membership query failed: %w", err)
	}
	return exists, nil
}

// Upsert inserts a watchlist entry and returns it. A duplicate add returns
// the existing row unchanged: the conflict update is a self-assignment, so
// the stored snapshot is never refreshed after creation.
func (r *WatchlistRepository) Upsert(ctx context.Context, userID string, snap models.MediaSnapshot) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO watchlists (id, user_id, media_id, media_type, title, overview,
			poster_url, backdrop_url, release_date, genres, vote_average, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id, media_id) DO UPDATE SET status = watchlists.status
		RETURNING `+entryColumns+`
	`, uuid.NewString(), userID, snap.MediaID, snap.MediaType, snap.Title, snap.Overview,
		snap.PosterURL, snap.BackdropURL, snap.ReleaseDate, pq.Array(snap.Genres),
		snap.VoteAverage, models.DefaultWatchStatus).Scan(
		&entry.ID, &entry.UserID, &entry.MediaID, &entry.MediaType, &entry.Title,
		&entry.Overview, &entry.PosterURL, &entry.BackdropURL, &entry.ReleaseDate,
		pq.Array(&entry.Genres), &entry.VoteAverage, &entry.Status, &entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert watchlist entry: %w", err)
	}
	return &entry, nil
}

// Delete removes the user's entry for the given media item. Deleting an
// entry that does not exist is not an error.
func (r *WatchlistRepository) Delete(ctx context.Context, userID string, mediaID int) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM watchlists WHERE user_id = $1 AND media_id = $2
	`, userID, mediaID)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist entry: %w", err)
	}
	return nil
}

// ListByUser returns the user's watchlist entries, newest first.
func (r *WatchlistRepository) ListByUser(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM watchlists
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}
	defer rows.Close()

	entries := make([]models.WatchlistEntry, 0)
	for rows.Next() {
		var entry models.WatchlistEntry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.MediaID, &entry.MediaType, &entry.Title,
			&entry.Overview, &entry.PosterURL, &entry.BackdropURL, &entry.ReleaseDate,
			pq.Array(&entry.Genres), &entry.VoteAverage, &entry.Status, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
