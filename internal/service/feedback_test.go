package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
)

func TestSubmitFeedback_RatingCoercion(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := &internal.User{ID: "u1", Username: "maria"}

	cases := []struct {
		raw  string
		want *int
	}{
		{"3", intPtr(3)},
		{"1", intPtr(1)},
		{"5", intPtr(5)},
		{"6", nil},
		{"0", nil},
		{"abc", nil},
		{"", nil},
	}
	for _, tc := range cases {
		entry, err := SubmitFeedback(ctx, s, user, &FeedbackRequest{
			Type: "bug", Page: "sleep", Message: "m", Rating: tc.raw,
		})
		assert.NoError(t, err, "rating %q must never be rejected", tc.raw)
		if tc.want == nil {
			assert.Nil(t, entry.Rating, "rating %q should be stored as absent", tc.raw)
		} else {
			assert.NotNil(t, entry.Rating)
			assert.Equal(t, *tc.want, *entry.Rating)
		}
		assert.False(t, entry.CreatedAt.IsZero())
	}
}

func TestValidateFeedbackRequest_NormalizesAndChecksVocabulary(t *testing.T) {
	req := &FeedbackRequest{Type: "  Bug ", Page: "SLEEP", Message: " broken chart "}
	assert.NoError(t, ValidateFeedbackRequest(req))
	assert.Equal(t, "bug", req.Type)
	assert.Equal(t, "sleep", req.Page)
	assert.Equal(t, "broken chart", req.Message)

	bad := &FeedbackRequest{Type: "rant", Page: "sleep", Message: "x"}
	assert.Error(t, ValidateFeedbackRequest(bad))
}

func TestRecentFeedback_NewestFirstAndLimited(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := &internal.User{ID: "u1", Username: "maria"}

	for i := 0; i < DefaultFeedbackLimit+5; i++ {
		_, err := SubmitFeedback(ctx, s, user, &FeedbackRequest{
			Type: "idea", Page: "home", Message: "m",
		})
		assert.NoError(t, err)
	}

	entries := RecentFeedback(ctx, s, internal.NopLogger(), user.ID)
	assert.Len(t, entries, DefaultFeedbackLimit)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i-1].CreatedAt.Before(entries[i].CreatedAt))
	}
}

func intPtr(v int) *int { return &v }
