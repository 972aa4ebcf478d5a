package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kirankuma274/feedback-collection-system/internal/apperr"
	"github.com/kirankuma274/feedback-collection-system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedFeedback(store *fakeFeedbackStore, category models.Category, rating int, user *models.PublicUser) models.FeedbackWithUser {
	fb := models.Feedback{
		ID:          primitive.NewObjectID(),
		IsAnonymous: user == nil,
		Category:    category,
		Message:     "seeded",
		Rating:      rating,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	record := models.FeedbackWithUser{Feedback: fb, User: user}
	store.records = append(store.records, record)
	return record
}

func TestSummaryEmptyStore(t *testing.T) {
	service := NewReportService(&fakeFeedbackStore{})

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, summary.TotalFeedbacks)
	assert.Equal(t, 0.0, summary.AverageRating)
	assert.Empty(t, summary.CategoryBreakdown)
}

func TestSummaryAverageAndBreakdown(t *testing.T) {
	store := &fakeFeedbackStore{}
	seedFeedback(store, models.CategoryBug, 5, nil)
	seedFeedback(store, models.CategoryBug, 3, nil)
	seedFeedback(store, models.CategoryFeature, 4, nil)
	service := NewReportService(store)

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, summary.TotalFeedbacks)
	assert.Equal(t, 4.00, summary.AverageRating)
	assert.EqualValues(t, 2, summary.CategoryBreakdown[models.CategoryBug])
	assert.EqualValues(t, 1, summary.CategoryBreakdown[models.CategoryFeature])
	_, present := summary.CategoryBreakdown[models.CategoryPerformance]
	assert.False(t, present, "categories without records are omitted")

	var sum int64
	for _, count := range summary.CategoryBreakdown {
		sum += count
	}
	assert.Equal(t, summary.TotalFeedbacks, sum)
}

func TestSummaryRoundsToTwoDecimals(t *testing.T) {
	store := &fakeFeedbackStore{}
	seedFeedback(store, models.CategoryBug, 4, nil)
	seedFeedback(store, models.CategoryBug, 4, nil)
	seedFeedback(store, models.CategoryBug, 5, nil)
	service := NewReportService(store)

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	// 13/3 = 4.333...
	assert.Equal(t, 4.33, summary.AverageRating)
}

func TestListAppliesFilterConjunction(t *testing.T) {
	store := &fakeFeedbackStore{}
	match := seedFeedback(store, models.CategoryBug, 4, nil)
	seedFeedback(store, models.CategoryBug, 2, nil)      // rating below bound
	seedFeedback(store, models.CategoryFeature, 5, nil)  // wrong category
	service := NewReportService(store)

	results, err := service.List(context.Background(), models.FeedbackFilter{
		Category:  models.CategoryBug,
		MinRating: 3,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, match.ID, results[0].ID)
}

func TestListEmptyResultIsNotNil(t *testing.T) {
	service := NewReportService(&fakeFeedbackStore{})

	results, err := service.List(context.Background(), models.FeedbackFilter{})
	require.NoError(t, err)
	assert.NotNil(t, results, "empty listings serialize as [] not null")
}

func TestExportCSVUserColumns(t *testing.T) {
	store := &fakeFeedbackStore{}
	anon := seedFeedback(store, models.CategoryBug, 2, nil)
	owned := seedFeedback(store, models.CategoryFeature, 5, &models.PublicUser{
		Name:  "Asha",
		Email: "asha@example.com",
		Role:  models.RoleUser,
	})
	service := NewReportService(store)

	data, err := service.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "_id,category,message,rating,isAnonymous,createdAt,user.name,user.email", lines[0])

	var anonLine, ownedLine string
	for _, line := range lines[1:] {
		switch {
		case strings.HasPrefix(line, anon.ID.Hex()):
			anonLine = line
		case strings.HasPrefix(line, owned.ID.Hex()):
			ownedLine = line
		}
	}
	require.NotEmpty(t, anonLine)
	require.NotEmpty(t, ownedLine)

	assert.True(t, strings.HasSuffix(anonLine, ",,"), "anonymous rows leave user columns blank")
	assert.Contains(t, ownedLine, ",Asha,asha@example.com")
	assert.Contains(t, anonLine, ",true,")
	assert.Contains(t, ownedLine, ",false,")
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := &fakeFeedbackStore{}
	record := seedFeedback(store, models.CategoryBug, 3, nil)
	service := NewReportService(store)

	require.NoError(t, service.Delete(context.Background(), record.ID.Hex()))
	assert.Empty(t, store.records)

	// Deleting again is still a success, not not_found.
	require.NoError(t, service.Delete(context.Background(), record.ID.Hex()))
}

func TestDeleteRejectsMalformedID(t *testing.T) {
	service := NewReportService(&fakeFeedbackStore{})

	err := service.Delete(context.Background(), "not-a-hex-id")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "validation_error", appErr.Code)
}
