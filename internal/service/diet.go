package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/storage"
)

type DietEntryRequest struct {
	Date     time.Time `form:"date" time_format:"2006-01-02" validate:"required"`
	MealName string    `form:"mealname" validate:"required,max=200"`
	Rating   int       `form:"rating" validate:"required,gte=1,lte=5"`
	Notes    string    `form:"notes" validate:"omitempty,max=1000"`
}

func ValidateDietEntryRequest(body *DietEntryRequest) error {
	return validate.Struct(body)
}

func CreateDietEntry(ctx context.Context, repo storage.DietRepository, user *internal.User, body *DietEntryRequest) (*internal.DietEntry, error) {
	entry := &internal.DietEntry{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Date:     body.Date,
		MealName: body.MealName,
		Rating:   body.Rating,
		Notes:    body.Notes,
	}
	if err := repo.SaveDietEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func ListDietEntries(ctx context.Context, repo storage.DietRepository, logger internal.Logger, userID string) []internal.DietEntry {
	entries, err := repo.ListDietEntries(ctx, userID)
	if err != nil {
		logger.Errorf("listing diet entries degraded to empty: %v", err)
		return nil
	}
	return entries
}

func DietChart(ctx context.Context, repo storage.DietRepository, logger internal.Logger, userID string) []internal.ChartPoint {
	points, err := repo.DietChart(ctx, userID)
	if err != nil {
		logger.Errorf("diet chart degraded to empty: %v", err)
		return nil
	}
	return points
}
