package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/iamahmadmhd/cinemora/internal/models"
)

// ProfileStore is the persistence surface the profile service needs.
type ProfileStore interface {
	Create(ctx context.Context, userID string, req models.CreateProfileRequest) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
}

// ProfileService handles business logic for user profiles.
type ProfileService struct {
	store ProfileStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

// Create creates the user's profile. First and last name are required.
func (s *ProfileService) Create(ctx context.Context, userID string, req models.CreateProfileRequest) (*models.Profile, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}
	req.Firstname = strings.TrimSpace(req.Firstname)
	req.Lastname = strings.TrimSpace(req.Lastname)
	if req.Firstname == "" || req.Lastname == "" {
		return nil, fmt.Errorf("firstname and lastname are required: %w", models.ErrInvalidInput)
	}
	return s.store.Create(ctx, userID, req)
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}
	return s.store.GetByUserID(ctx, userID)
}
