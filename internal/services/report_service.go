package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"strconv"
	"time"

	"github.com/kirankuma274/feedback-collection-system/internal/apperr"
	"github.com/kirankuma274/feedback-collection-system/internal/models"
	"github.com/kirankuma274/feedback-collection-system/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// csvHeader is the fixed column order of the admin export.
var csvHeader = []string{"_id", "category", "message", "rating", "isAnonymous", "createdAt", "user.name", "user.email"}

// ReportService serves the admin-facing read side: filtered listings,
// the statistics summary, CSV export and record deletion.
type ReportService struct {
	feedbacks store.FeedbackStore
}

func NewReportService(feedbacks store.FeedbackStore) *ReportService {
	return &ReportService{feedbacks: feedbacks}
}

// List returns all records matching the filter with owners expanded.
func (s *ReportService) List(ctx context.Context, filter models.FeedbackFilter) ([]models.FeedbackWithUser, error) {
	results, err := s.feedbacks.List(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("failed to fetch feedbacks")
	}
	if results == nil {
		results = []models.FeedbackWithUser{}
	}
	return results, nil
}

// Summary computes the aggregate statistics. An empty store yields
// total 0 and average 0 rather than an error.
func (s *ReportService) Summary(ctx context.Context) (models.Summary, error) {
	total, avg, byCategory, err := s.feedbacks.Aggregate(ctx)
	if err != nil {
		return models.Summary{}, apperr.Internal("failed to compute summary")
	}
	return models.Summary{
		TotalFeedbacks:    total,
		AverageRating:     math.Round(avg*100) / 100,
		CategoryBreakdown: byCategory,
	}, nil
}

// ExportCSV serializes every record, ignoring filters. User columns
// stay blank for anonymous records and for records whose owner account
// no longer exists.
func (s *ReportService) ExportCSV(ctx context.Context) ([]byte, error) {
	records, err := s.feedbacks.List(ctx, models.FeedbackFilter{})
	if err != nil {
		return nil, apperr.Internal("failed to fetch feedbacks")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, apperr.Internal("failed to write CSV")
	}
	for _, record := range records {
		userName, userEmail := "", ""
		if record.User != nil {
			userName = record.User.Name
			userEmail = record.User.Email
		}
		row := []string{
			record.ID.Hex(),
			string(record.Category),
			record.Message,
			strconv.Itoa(record.Rating),
			strconv.FormatBool(record.IsAnonymous),
			record.CreatedAt.UTC().Format(time.RFC3339),
			userName,
			userEmail,
		}
		if err := writer.Write(row); err != nil {
			return nil, apperr.Internal("failed to write CSV")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, apperr.Internal("failed to write CSV")
	}
	return buf.Bytes(), nil
}

// Delete removes one record by id. A well-formed id that matches
// nothing still succeeds.
func (s *ReportService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.Validation("invalid feedback ID format")
	}
	if err := s.feedbacks.Delete(ctx, objID); err != nil {
		return apperr.Internal("failed to delete feedback")
	}
	return nil
}
