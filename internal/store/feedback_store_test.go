package store

import (
	"testing"

	"github.com/kirankuma274/feedback-collection-system/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFeedbackQuery(t *testing.T) {
	assert.Equal(t, bson.M{}, BuildFeedbackQuery(models.FeedbackFilter{}))

	assert.Equal(t,
		bson.M{"category": models.CategoryBug},
		BuildFeedbackQuery(models.FeedbackFilter{Category: models.CategoryBug}))

	assert.Equal(t,
		bson.M{"rating": bson.M{"$gte": 2}},
		BuildFeedbackQuery(models.FeedbackFilter{MinRating: 2}))

	assert.Equal(t,
		bson.M{"rating": bson.M{"$lte": 4}},
		BuildFeedbackQuery(models.FeedbackFilter{MaxRating: 4}))

	// Both predicates land in one query document, so Mongo applies
	// them conjunctively.
	assert.Equal(t,
		bson.M{
			"category": models.CategoryBug,
			"rating":   bson.M{"$gte": 3, "$lte": 5},
		},
		BuildFeedbackQuery(models.FeedbackFilter{
			Category:  models.CategoryBug,
			MinRating: 3,
			MaxRating: 5,
		}))
}
