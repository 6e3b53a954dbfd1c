package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/storage"
)

// DefaultFeedbackLimit caps the recent-feedback listing.
const DefaultFeedbackLimit = 20

type FeedbackRequest struct {
	Type    string `form:"type" validate:"required,oneof=bug idea praise"`
	Page    string `form:"page" validate:"required,oneof=home sleep workout diet other"`
	Message string `form:"message" validate:"required,max=2000"`
	Rating  string `form:"rating"` // free-form on purpose; coerced, never rejected
	Email   string `form:"email" validate:"omitempty,email"`
}

func (r *FeedbackRequest) normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Page = strings.ToLower(strings.TrimSpace(r.Page))
	r.Message = strings.TrimSpace(r.Message)
	r.Email = strings.TrimSpace(r.Email)
}

func ValidateFeedbackRequest(req *FeedbackRequest) error {
	req.normalize()
	return validate.Struct(req)
}

// coerceRating maps anything outside an integer 1–5 to absent.
func coerceRating(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 || v > 5 {
		return nil
	}
	return &v
}

func SubmitFeedback(ctx context.Context, repo storage.FeedbackRepository, user *internal.User, req *FeedbackRequest) (*internal.FeedbackEntry, error) {
	entry := &internal.FeedbackEntry{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		Type:         req.Type,
		Page:         req.Page,
		Message:      req.Message,
		Rating:       coerceRating(req.Rating),
		ContactEmail: req.Email,
		CreatedAt:    time.Now(),
	}
	if err := repo.SaveFeedback(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func RecentFeedback(ctx context.Context, repo storage.FeedbackRepository, logger internal.Logger, userID string) []internal.FeedbackEntry {
	entries, err := repo.ListFeedback(ctx, userID, DefaultFeedbackLimit)
	if err != nil {
		logger.Errorf("listing feedback degraded to empty: %v", err)
		return nil
	}
	return entries
}
