package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/storage"
)

var validate = validator.New()

type SleepEntryRequest struct {
	Date     time.Time `form:"date" time_format:"2006-01-02" validate:"required"`
	Duration float64   `form:"duration" validate:"required,gt=0,lte=24"`
	Rating   int       `form:"rating" validate:"required,gte=1,lte=5"`
	Notes    string    `form:"notes" validate:"omitempty,max=1000"`
}

func ValidateSleepEntryRequest(body *SleepEntryRequest) error {
	return validate.Struct(body)
}

func CreateSleepEntry(ctx context.Context, repo storage.SleepRepository, user *internal.User, body *SleepEntryRequest) (*internal.SleepEntry, error) {
	entry := &internal.SleepEntry{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Date:     body.Date,
		Duration: body.Duration,
		Rating:   body.Rating,
		Notes:    body.Notes,
	}
	if err := repo.SaveSleepEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListSleepEntries degrades to an empty list on storage failure; the read
// path favors availability over surfacing errors.
func ListSleepEntries(ctx context.Context, repo storage.SleepRepository, logger internal.Logger, userID string) []internal.SleepEntry {
	entries, err := repo.ListSleepEntries(ctx, userID)
	if err != nil {
		logger.Errorf("listing sleep entries degraded to empty: %v", err)
		return nil
	}
	return entries
}

func SleepChart(ctx context.Context, repo storage.SleepRepository, logger internal.Logger, userID string) []internal.ChartPoint {
	points, err := repo.SleepChart(ctx, userID)
	if err != nil {
		logger.Errorf("sleep chart degraded to empty: %v", err)
		return nil
	}
	return points
}
