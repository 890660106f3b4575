package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/iamahmadmhd/cinemora/internal/middleware"
	"github.com/iamahmadmhd/cinemora/internal/models"
	"github.com/iamahmadmhd/cinemora/internal/service"
)

// ProfileHandler handles HTTP requests for user profiles.
type ProfileHandler struct {
	svc *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Create creates the caller's profile.
func (h *ProfileHandler) Create(c fiber.Ctx) error {
	var req models.CreateProfileRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	profile, err := h.svc.Create(c.Context(), middleware.UserID(c), req)
	if err != nil {
		slog.Error("failed to create profile", "error", err)
		return fail(c, err, "failed to create profile")
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// Get returns the caller's profile.
func (h *ProfileHandler) Get(c fiber.Ctx) error {
	profile, err := h.svc.Get(c.Context(), middleware.UserID(c))
	if err != nil {
		slog.Error("failed to get profile", "error", err)
		return fail(c, err, "failed to retrieve profile")
	}

	return c.JSON(profile)
}
