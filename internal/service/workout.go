package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/storage"
)

type WorkoutEntryRequest struct {
	Date      time.Time `form:"date" time_format:"2006-01-02" validate:"required"`
	Name      string    `form:"name" validate:"required,max=200"`
	Duration  float64   `form:"duration" validate:"required,gt=0"`
	Intensity float64   `form:"intensity" validate:"required,gte=1,lte=10"`
	Type      string    `form:"type" validate:"omitempty,max=100"`
	Rating    int       `form:"rating" validate:"required,gte=1,lte=5"`
	Notes     string    `form:"notes" validate:"omitempty,max=1000"`
}

func ValidateWorkoutEntryRequest(body *WorkoutEntryRequest) error {
	return validate.Struct(body)
}

func CreateWorkoutEntry(ctx context.Context, repo storage.WorkoutRepository, user *internal.User, body *WorkoutEntryRequest) (*internal.WorkoutEntry, error) {
	entry := &internal.WorkoutEntry{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Date:      body.Date,
		Name:      body.Name,
		Duration:  body.Duration,
		Intensity: body.Intensity,
		Type:      body.Type,
		Rating:    body.Rating,
		Notes:     body.Notes,
	}
	if err := repo.SaveWorkoutEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func ListWorkoutEntries(ctx context.Context, repo storage.WorkoutRepository, logger internal.Logger, userID string) []internal.WorkoutEntry {
	entries, err := repo.ListWorkoutEntries(ctx, userID)
	if err != nil {
		logger.Errorf("listing workout entries degraded to empty: %v", err)
		return nil
	}
	return entries
}

func WorkoutChart(ctx context.Context, repo storage.WorkoutRepository, logger internal.Logger, userID string) []internal.ChartPoint {
	points, err := repo.WorkoutChart(ctx, userID)
	if err != nil {
		logger.Errorf("workout chart degraded to empty: %v", err)
		return nil
	}
	return points
}
