package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"movie-explorer-service/internal/favorites"
	"movie-explorer-service/internal/models"
)

// FavoritesHandler handles HTTP requests for the favorites store.
type FavoritesHandler struct {
	store *favorites.Store
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(store *favorites.Store) *FavoritesHandler {
	return &FavoritesHandler{store: store}
}

// List returns all favorites.
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /favorites [get]
func (h *FavoritesHandler) List(c fiber.Ctx) error {
	favs := h.store.All()
	return c.JSON(fiber.Map{
		"favorites": favs,
		"count":     len(favs),
	})
}

// Add saves a favorite with a rating and optional note.
// @Summary Add a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param body body models.AddFavoriteRequest true "Movie, rating and note"
// @Success 201 {object} models.Favorite
// @Failure 400 {object} ErrorResponse
// @Router /favorites [post]
func (h *FavoritesHandler) Add(c fiber.Ctx) error {
	var req models.AddFavoriteRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}
	if req.Movie.ID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "movie is required",
		})
	}

	fav, err := h.store.Add(req.Movie, req.Rating, req.Note)
	if err != nil {
		if errors.Is(err, favorites.ErrInvalidRating) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to save favorite",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fav)
}

// Get returns a single favorite by movie id.
// @Summary Get a favorite
// @Tags favorites
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Favorite
// @Failure 404 {object} ErrorResponse
// @Router /favorites/{id} [get]
func (h *FavoritesHandler) Get(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid movie ID",
		})
	}

	fav, ok := h.store.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "favorite not found",
		})
	}
	return c.JSON(fav)
}

// Update edits the rating and note of an existing favorite.
// @Summary Update a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param body body models.UpdateFavoriteRequest true "Rating and note"
// @Success 200 {object} models.Favorite
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /favorites/{id} [put]
func (h *FavoritesHandler) Update(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid movie ID",
		})
	}

	var req models.UpdateFavoriteRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}

	fav, ok, err := h.store.Update(id, req.Rating, req.Note)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "favorite not found",
		})
	}
	return c.JSON(fav)
}

// Remove deletes a favorite. Removing an unknown id succeeds.
// @Summary Remove a favorite
// @Tags favorites
// @Param id path int true "Movie ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /favorites/{id} [delete]
func (h *FavoritesHandler) Remove(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid movie ID",
		})
	}

	h.store.Remove(id)
	return c.SendStatus(fiber.StatusNoContent)
}
