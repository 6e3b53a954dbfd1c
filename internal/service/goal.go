package service

import (
	"context"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/storage"
)

type GoalRequest struct {
	SleepLength  float64 `form:"duration" validate:"required,gt=0,lte=24"`
	SleepQuality float64 `form:"quality" validate:"required,gte=1,lte=5"`
	Intensity    float64 `form:"intense" validate:"required,gte=1,lte=10"`
	Diet         float64 `form:"diet" validate:"required,gte=1,lte=5"`
}

func ValidateGoalRequest(req *GoalRequest) error {
	return validate.Struct(req)
}

// UpsertGoal replaces the user's goal wholesale; at most one goal row exists
// per user and the storage layer resolves concurrent writes atomically.
func UpsertGoal(ctx context.Context, repo storage.GoalRepository, user *internal.User, req *GoalRequest) (*internal.Goal, error) {
	goal := &internal.Goal{
		UserID:       user.ID,
		SleepLength:  req.SleepLength,
		SleepQuality: req.SleepQuality,
		Intensity:    req.Intensity,
		Diet:         req.Diet,
	}
	if err := repo.UpsertGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// CurrentGoal degrades to nil on storage failure, which the tip engine
// treats the same as "no goal set yet".
func CurrentGoal(ctx context.Context, repo storage.GoalRepository, logger internal.Logger, userID string) *internal.Goal {
	goal, err := repo.GetGoal(ctx, userID)
	if err != nil {
		logger.Errorf("goal lookup degraded to none: %v", err)
		return nil
	}
	return goal
}
