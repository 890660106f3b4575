package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/iamahmadmhd/cinemora/internal/models"
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// ProfileRepository handles database operations for user profiles.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a profile for the user. A second profile for the same user
// fails with ErrDuplicate.
func (r *ProfileRepository) Create(ctx context.Context, userID string, req models.CreateProfileRequest) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO profiles (id, user_id, firstname, lastname, email, avatar, birthdate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, firstname, lastname, email, avatar, birthdate, created_at
	`, uuid.NewString(), userID, req.Firstname, req.Lastname, req.Email, req.Avatar, req.Birthdate).Scan(
		&profile.ID, &profile.UserID, &profile.Firstname, &profile.Lastname,
		&profile.Email, &profile.Avatar, &profile.Birthdate, &profile.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("profile for user %s: %w", userID, models.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

// GetByUserID returns the user's profile, or ErrNotFound.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, firstname, lastname, email, avatar, birthdate, created_at
		FROM profiles WHERE user_id = $1
	`, userID).Scan(
		&profile.ID, &profile.UserID, &profile.Firstname, &profile.Lastname,
		&profile.Email, &profile.Avatar, &profile.Birthdate, &profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile for user %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}
