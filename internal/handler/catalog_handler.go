package handler

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/iamahmadmhd/cinemora/internal/media"
	"github.com/iamahmadmhd/cinemora/internal/models"
	"github.com/iamahmadmhd/cinemora/internal/service"
)

// CatalogHandler handles HTTP requests for catalog listings and details.
type CatalogHandler struct {
	svc *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Health returns service health status.
func (h *CatalogHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "cinemora",
	})
}

// ListMovies returns a filtered, sorted movie listing page.
func (h *CatalogHandler) ListMovies(c fiber.Ctx) error {
	return h.list(c, models.MediaTypeMovie)
}

// ListTVShows returns a filtered, sorted tv listing page.
func (h *CatalogHandler) ListTVShows(c fiber.Ctx) error {
	return h.list(c, models.MediaTypeTV)
}

func (h *CatalogHandler) list(c fiber.Ctx, mediaType models.MediaType) error {
	criteria, err := media.ParseCriteria(c.Queries())
	if err != nil {
		return fail(c, err, "invalid listing parameters")
	}

	page, err := h.svc.ListMedia(c.Context(), mediaType, criteria)
	if err != nil {
		slog.Error("failed to list media", "media_type", mediaType, "error", err)
		return fail(c, err, "failed to retrieve listing")
	}

	return c.JSON(page)
}

// MovieDetail returns the full view model for one movie.
func (h *CatalogHandler) MovieDetail(c fiber.Ctx) error {
	return h.detail(c, models.MediaTypeMovie)
}

// TVDetail returns the full view model for one tv show.
func (h *CatalogHandler) TVDetail(c fiber.Ctx) error {
	return h.detail(c, models.MediaTypeTV)
}

func (h *CatalogHandler) detail(c fiber.Ctx, mediaType models.MediaType) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid media ID"})
	}

	item, err := h.svc.Detail(c.Context(), mediaType, id)
	if err != nil {
		slog.Error("failed to get media detail", "media_type", mediaType, "id", id, "error", err)
		return fail(c, err, "failed to retrieve media details")
	}

	return c.JSON(item)
}

// Trending returns the weekly trending items for a media type.
func (h *CatalogHandler) Trending(c fiber.Ctx) error {
	mediaType := models.MediaType(c.Params("mediaType"))
	if !mediaType.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "unknown media type"})
	}

	items, err := h.svc.Trending(c.Context(), mediaType)
	if err != nil {
		slog.Error("failed to get trending", "media_type", mediaType, "error", err)
		return fail(c, err, "failed to retrieve trending media")
	}

	return c.JSON(items)
}

// Genres returns the genre list for a media type, for filter UIs.
func (h *CatalogHandler) Genres(c fiber.Ctx) error {
	mediaType := models.MediaType(c.Params("mediaType"))
	if !mediaType.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "unknown media type"})
	}

	genres, err := h.svc.GenreList(c.Context(), mediaType)
	if err != nil {
		slog.Error("failed to get genres", "media_type", mediaType, "error", err)
		return fail(c, err, "failed to retrieve genres")
	}

	return c.JSON(genres)
}
