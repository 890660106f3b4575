package handler

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/iamahmadmhd/cinemora/internal/middleware"
	"github.com/iamahmadmhd/cinemora/internal/models"
	"github.com/iamahmadmhd/cinemora/internal/service"
)

// WatchlistHandler handles HTTP requests for watchlist membership.
type WatchlistHandler struct {
	svc *service.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(svc *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{svc: svc}
}

// Check reports membership for one media item: 200 when saved, 404 when not.
func (h *WatchlistHandler) Check(c fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "unauthorized"})
	}

	mediaID, err := strconv.Atoi(c.Query("movie_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "movie_id is required"})
	}

	if !h.svc.Exists(c.Context(), userID, mediaID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"exists": false})
	}
	return c.JSON(fiber.Map{"exists": true})
}

// Add saves a media item to the caller's watchlist and returns the created
// entry. Duplicate adds return the existing entry.
func (h *WatchlistHandler) Add(c fiber.Ctx) error {
	var snap models.MediaSnapshot
	if err := c.Bind().JSON(&snap); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	entry, err := h.svc.Add(c.Context(), middleware.UserID(c), snap)
	if err != nil {
		slog.Error("failed to add watchlist entry", "media_id", snap.MediaID, "error", err)
		return fail(c, err, "failed to add item to watchlist")
	}

	return c.JSON(entry)
}

// Remove deletes a media item from the caller's watchlist. Removing an item
// that is not saved succeeds.
func (h *WatchlistHandler) Remove(c fiber.Ctx) error {
	var req models.RemoveWatchlistRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	if err := h.svc.Remove(c.Context(), middleware.UserID(c), req.MediaID); err != nil {
		slog.Error("failed to remove watchlist entry", "media_id", req.MediaID, "error", err)
		return fail(c, err, "failed to remove item from watchlist")
	}

	return c.JSON(fiber.Map{"message": "Item removed successfully"})
}

// List returns the caller's watchlist entries, newest first.
func (h *WatchlistHandler) List(c fiber.Ctx) error {
	entries, err := h.svc.List(c.Context(), middleware.UserID(c))
	if err != nil {
		slog.Error("failed to list watchlist", "error", err)
		return fail(c, err, "failed to retrieve watchlist")
	}

	if entries == nil {
		entries = []models.WatchlistEntry{}
	}
	return c.JSON(entries)
}
