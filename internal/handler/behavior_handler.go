package handler

import (
	"github.com/gofiber/fiber/v3"

	"movie-explorer-service/internal/behavior"
	"movie-explorer-service/internal/models"
)

// BehaviorHandler handles HTTP requests for the behavior log.
type BehaviorHandler struct {
	tracker *behavior.Tracker
}

// NewBehaviorHandler creates a new BehaviorHandler.
func NewBehaviorHandler(tracker *behavior.Tracker) *BehaviorHandler {
	return &BehaviorHandler{tracker: tracker}
}

// Record appends a user action to the behavior log. Tracking is
// best-effort, so a valid action is always accepted.
// @Summary Record a user action
// @Tags behavior
// @Accept json
// @Produce json
// @Param body body models.RecordActionRequest true "Action"
// @Success 202 {object} models.UserAction
// @Failure 400 {object} ErrorResponse
// @Router /actions [post]
func (h *BehaviorHandler) Record(c fiber.Ctx) error {
	var req models.RecordActionRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}
	if !models.ValidActionTypes[req.Type] {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid action type: " + req.Type,
		})
	}

	recorded := h.tracker.Record(models.UserAction{
		Type:    req.Type,
		MovieID: req.MovieID,
		Query:   req.Query,
		Rating:  req.Rating,
	})
	return c.Status(fiber.StatusAccepted).JSON(recorded)
}

// Actions returns the current action log, oldest first.
// @Summary List recorded actions
// @Tags behavior
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /actions [get]
func (h *BehaviorHandler) Actions(c fiber.Ctx) error {
	actions := h.tracker.Actions()
	return c.JSON(fiber.Map{
		"actions": actions,
		"count":   len(actions),
	})
}

// Summary returns the derived behavior summary.
// @Summary Get the behavior summary
// @Tags behavior
// @Produce json
// @Success 200 {object} models.UserBehavior
// @Router /behavior [get]
func (h *BehaviorHandler) Summary(c fiber.Ctx) error {
	return c.JSON(h.tracker.Summary())
}

// Clear removes the action log and the derived summary.
// @Summary Clear behavior data
// @Tags behavior
// @Success 204
// @Router /actions [delete]
func (h *BehaviorHandler) Clear(c fiber.Ctx) error {
	h.tracker.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
