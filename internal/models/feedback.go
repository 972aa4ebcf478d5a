package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the closed set of feedback categories.
type Category string

const (
	CategoryBug         Category = "Bug"
	CategoryFeature     Category = "Feature"
	CategoryUIUX        Category = "UI/UX"
	CategoryPerformance Category = "Performance"
	CategorySuggestion  Category = "Suggestion"
)

// Categories lists every valid category, in the order the submission
// form presents them.
var Categories = []Category{
	CategoryBug,
	CategoryFeature,
	CategoryUIUX,
	CategoryPerformance,
	CategorySuggestion,
}

// ParseCategory validates a category string against the known set.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type Feedback struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID      *primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	IsAnonymous bool                `bson:"is_anonymous" json:"isAnonymous"`
	Category    Category            `bson:"category" json:"category"`
	Message     string              `bson:"message" json:"message"`
	Rating      int                 `bson:"rating" json:"rating"`
	FileURL     string              `bson:"file_url,omitempty" json:"fileUrl,omitempty"`
	CreatedAt   time.Time           `bson:"created_at" json:"createdAt"`
}

// FeedbackWithUser is a Feedback record with its owner expanded for
// admin listings. User is nil for anonymous records and for records
// whose owner account has since been deleted.
type FeedbackWithUser struct {
	Feedback `bson:",inline"`
	User     *PublicUser `bson:"user_info,omitempty" json:"user,omitempty"`
}

// FeedbackFilter narrows admin listings. Zero values mean "no bound".
type FeedbackFilter struct {
	Category  Category
	MinRating int
	MaxRating int
}

// Matches reports whether a record satisfies every set condition.
func (f FeedbackFilter) Matches(fb Feedback) bool {
	if f.Category != "" && fb.Category != f.Category {
		return false
	}
	if f.MinRating > 0 && fb.Rating < f.MinRating {
		return false
	}
	if f.MaxRating > 0 && fb.Rating > f.MaxRating {
		return false
	}
	return true
}

// Summary holds the aggregate statistics over the whole store.
type Summary struct {
	TotalFeedbacks    int64              `json:"totalFeedbacks"`
	AverageRating     float64            `json:"averageRating"`
	CategoryBreakdown map[Category]int64 `json:"categoryBreakdown"`
}
