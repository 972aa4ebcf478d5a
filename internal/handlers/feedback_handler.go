package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/kirankuma274/feedback-collection-system/internal/apperr"
	"github.com/kirankuma274/feedback-collection-system/internal/middleware"
	"github.com/kirankuma274/feedback-collection-system/internal/services"
)

type FeedbackHandler struct {
	feedback *services.FeedbackService
}

func NewFeedbackHandler(feedback *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Submit handles POST /feedback/submit. The body is multipart so a
// single optional file can ride along with the form fields.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	submitter, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Respond(c, apperr.Unauthenticated("Missing token"))
	}

	rating, err := strconv.Atoi(c.FormValue("rating"))
	if err != nil {
		return apperr.Respond(c, apperr.Validation("rating must be an integer between 1 and 5"))
	}

	input := services.SubmissionInput{
		Category:    c.FormValue("category"),
		Message:     c.FormValue("message"),
		Rating:      rating,
		IsAnonymous: c.FormValue("isAnonymous") == "true",
	}

	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return apperr.Respond(c, apperr.Storage("failed to read uploaded file"))
		}
		defer file.Close()
		input.File = &services.FilePayload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Reader:      file,
		}
	}

	if _, err := h.feedback.Submit(c.Context(), submitter, input); err != nil {
		return apperr.Respond(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Feedback submitted successfully!",
	})
}
