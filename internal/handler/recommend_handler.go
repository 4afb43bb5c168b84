package handler

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"movie-explorer-service/internal/models"
	"movie-explorer-service/internal/service"
)

// RecommendHandler handles HTTP requests for recommendations.
type RecommendHandler struct {
	svc *service.RecommendService
}

// NewRecommendHandler creates a new RecommendHandler.
func NewRecommendHandler(svc *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

// Collaborative returns the collaborative-filtering recommendations.
// @Summary Collaborative filtering recommendations
// @Tags recommendations
// @Accept json
// @Produce json
// @Param body body models.CollaborativeRequest true "Favorites and ratings"
// @Success 200 {object} models.CollaborativeResponse
// @Failure 400 {object} ErrorResponse
// @Router /recommendations/collaborative [post]
func (h *RecommendHandler) Collaborative(c fiber.Ctx) error {
	var req models.CollaborativeRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}

	slog.Debug("collaborative filtering", "favorites", len(req.Favorites))
	return c.JSON(h.svc.Collaborative(req))
}

// Genre returns genre-matched movies above a rating bound.
// @Summary Genre-based recommendations
// @Tags recommendations
// @Produce json
// @Param rating query number false "Minimum average vote" default(7.0)
// @Param genres query string false "Comma-separated genre IDs"
// @Success 200 {object} models.SearchResponse
// @Failure 500 {object} ErrorResponse
// @Router /recommendations/genre [get]
func (h *RecommendHandler) Genre(c fiber.Ctx) error {
	minRating, err := strconv.ParseFloat(c.Query("rating", "7.0"), 64)
	if err != nil {
		minRating = 7.0
	}

	var genreIDs []int
	if raw := c.Query("genres"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				genreIDs = append(genreIDs, id)
			}
		}
	}

	result, err := h.svc.Genre(c.Context(), genreIDs, minRating)
	if err != nil {
		slog.Error("failed to fetch genre recommendations", "genres", genreIDs, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to fetch recommendations",
		})
	}

	return c.JSON(result)
}

// Sections returns the assembled recommendation sections.
// @Summary Assembled recommendation sections
// @Tags recommendations
// @Produce json
// @Success 200 {object} models.SectionsResponse
// @Router /recommendations/sections [get]
func (h *RecommendHandler) Sections(c fiber.Ctx) error {
	sections := h.svc.Sections(c.Context())
	if sections == nil {
		sections = []models.Section{}
	}
	return c.JSON(models.SectionsResponse{Sections: sections})
}
