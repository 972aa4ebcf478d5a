package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/kirankuma274/feedback-collection-system/internal/apperr"
	"github.com/kirankuma274/feedback-collection-system/internal/models"
	"github.com/kirankuma274/feedback-collection-system/internal/services"
	"github.com/kirankuma274/feedback-collection-system/internal/store"
)

// AdminHandler exposes the reporting endpoints plus the user listing.
// Every route it serves sits behind the auth and admin middleware.
type AdminHandler struct {
	reports *services.ReportService
	users   store.UserStore
}

func NewAdminHandler(reports *services.ReportService, users store.UserStore) *AdminHandler {
	return &AdminHandler{reports: reports, users: users}
}

// ListFeedback handles GET /feedback/all with optional category,
// minRating and maxRating query filters.
func (h *AdminHandler) ListFeedback(c *fiber.Ctx) error {
	filter := models.FeedbackFilter{
		Category: models.Category(c.Query("category")),
	}
	if raw := c.Query("minRating"); raw != "" {
		min, err := strconv.Atoi(raw)
		if err != nil {
			return apperr.Respond(c, apperr.Validation("minRating must be an integer"))
		}
		filter.MinRating = min
	}
	if raw := c.Query("maxRating"); raw != "" {
		max, err := strconv.Atoi(raw)
		if err != nil {
			return apperr.Respond(c, apperr.Validation("maxRating must be an integer"))
		}
		filter.MaxRating = max
	}

	feedbacks, err := h.reports.List(c.Context(), filter)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(feedbacks)
}

// Summary handles GET /feedback/summary.
func (h *AdminHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.reports.Summary(c.Context())
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(summary)
}

// ExportCSV handles GET /feedback/export/csv.
func (h *AdminHandler) ExportCSV(c *fiber.Ctx) error {
	data, err := h.reports.ExportCSV(c.Context())
	if err != nil {
		return apperr.Respond(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="feedbacks.csv"`)
	return c.Send(data)
}

// DeleteFeedback handles DELETE /feedback/:id.
func (h *AdminHandler) DeleteFeedback(c *fiber.Ctx) error {
	if err := h.reports.Delete(c.Context(), c.Params("id")); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(fiber.Map{"message": "Feedback deleted"})
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListAll(c.Context())
	if err != nil {
		return apperr.Respond(c, apperr.Internal("Failed to fetch users"))
	}
	return c.JSON(users)
}
