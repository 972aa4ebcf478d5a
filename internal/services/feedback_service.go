package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/kirankuma274/feedback-collection-system/internal/apperr"
	"github.com/kirankuma274/feedback-collection-system/internal/models"
	"github.com/kirankuma274/feedback-collection-system/internal/notifier"
	"github.com/kirankuma274/feedback-collection-system/internal/storage"
	"github.com/kirankuma274/feedback-collection-system/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionInput is one feedback submission as received from the
// HTTP layer. File is nil when no file was attached.
type SubmissionInput struct {
	Category    string
	Message     string
	Rating      int
	IsAnonymous bool
	File        *FilePayload
}

type FilePayload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// FeedbackService orchestrates validation, file storage, persistence
// and the post-response thank-you email for a submission.
type FeedbackService struct {
	feedbacks  store.FeedbackStore
	blobs      storage.BlobStore
	mailer     notifier.Notifier
	dispatcher *notifier.Dispatcher
}

func NewFeedbackService(feedbacks store.FeedbackStore, blobs storage.BlobStore, mailer notifier.Notifier, dispatcher *notifier.Dispatcher) *FeedbackService {
	return &FeedbackService{feedbacks: feedbacks, blobs: blobs, mailer: mailer, dispatcher: dispatcher}
}

// Submit validates and persists one feedback record for the given
// submitter. On success the record is durable before Submit returns;
// the thank-you email is queued in the background and its outcome
// never affects the result.
func (s *FeedbackService) Submit(ctx context.Context, submitter models.User, input SubmissionInput) (models.Feedback, error) {
	category, err := models.ParseCategory(input.Category)
	if err != nil {
		return models.Feedback{}, apperr.Validation("category must be one of Bug, Feature, UI/UX, Performance, Suggestion")
	}
	if input.Message == "" {
		return models.Feedback{}, apperr.Validation("message is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return models.Feedback{}, apperr.Validation("rating must be between 1 and 5")
	}

	feedbackID := primitive.NewObjectID()

	// Store the file before the record so a saved record never points
	// at a file that was lost.
	var fileURL string
	if input.File != nil {
		objectName := fmt.Sprintf("%s_%s", feedbackID.Hex(), input.File.Filename)
		err := s.blobs.Put(ctx, objectName, input.File.Reader, input.File.Size, input.File.ContentType)
		if err != nil {
			return models.Feedback{}, apperr.Storage("failed to store uploaded file")
		}
		fileURL = objectName
	}

	feedback := models.Feedback{
		ID:          feedbackID,
		IsAnonymous: input.IsAnonymous,
		Category:    category,
		Message:     input.Message,
		Rating:      input.Rating,
		FileURL:     fileURL,
		CreatedAt:   time.Now(),
	}
	if !input.IsAnonymous {
		// Anonymous submissions discard the identity outright rather
		// than hiding it.
		id := submitter.ID
		feedback.UserID = &id
	}

	if err := s.feedbacks.Insert(ctx, feedback); err != nil {
		return models.Feedback{}, apperr.Internal("failed to save feedback")
	}

	if !input.IsAnonymous && submitter.Email != "" {
		s.queueThankYouEmail(submitter, category)
	}

	return feedback, nil
}

func (s *FeedbackService) queueThankYouEmail(user models.User, category models.Category) {
	subject := "Thank you for your feedback!"
	plainText := fmt.Sprintf("Hi %s,\n\nWe received your feedback on %q.\n\nThank you!\n— Feedback Team", user.Name, category)
	htmlContent := fmt.Sprintf(`
  <div style="font-family: Arial, sans-serif; padding: 20px;">
    <h2 style="color: #4CAF50;">Thank you for your feedback, %s!</h2>
    <p>We have successfully received your feedback on:</p>
    <p><strong>Category:</strong> %s</p>
    <p style="margin-top: 16px;">We appreciate your input and value your time.</p>
    <br>
    <p>— The Feedback Team</p>
  </div>`, user.Name, category)

	s.dispatcher.Dispatch(func() {
		if err := s.mailer.Send(user.Name, user.Email, subject, plainText, htmlContent); err != nil {
			log.Printf("Email error for %s: %v", user.Email, err)
			return
		}
		log.Printf("Email sent to %s", user.Email)
	})
}
