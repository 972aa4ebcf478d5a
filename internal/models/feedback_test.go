package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"Bug", "Feature", "UI/UX", "Performance", "Suggestion"} {
		category, err := ParseCategory(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, Category(valid), category)
	}

	for _, invalid := range []string{"", "bug", "Other", "UI", "Suggestion "} {
		_, err := ParseCategory(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, role)

	role, err = ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = ParseRole("superuser")
	assert.Error(t, err)
}

func TestFeedbackFilterMatches(t *testing.T) {
	bug3 := Feedback{Category: CategoryBug, Rating: 3}
	bug1 := Feedback{Category: CategoryBug, Rating: 1}
	feature5 := Feedback{Category: CategoryFeature, Rating: 5}

	// Every set condition must hold, not just one.
	filter := FeedbackFilter{Category: CategoryBug, MinRating: 3}
	assert.True(t, filter.Matches(bug3))
	assert.False(t, filter.Matches(bug1))
	assert.False(t, filter.Matches(feature5))

	assert.True(t, FeedbackFilter{}.Matches(bug1))
	assert.True(t, FeedbackFilter{MinRating: 1, MaxRating: 5}.Matches(bug3))
	assert.False(t, FeedbackFilter{MaxRating: 4}.Matches(feature5))
}
