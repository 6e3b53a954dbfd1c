package storage

import (
	"context"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *internal.User) error
	GetUserByID(ctx context.Context, id string) (*internal.User, error)
	GetUserByUsername(ctx context.Context, username string) (*internal.User, error)
}

type SleepRepository interface {
	SaveSleepEntry(ctx context.Context, entry *internal.SleepEntry) error
	ListSleepEntries(ctx context.Context, userID string) ([]internal.SleepEntry, error)
	SleepChart(ctx context.Context, userID string) ([]internal.ChartPoint, error)
}

type DietRepository interface {
	SaveDietEntry(ctx context.Context, entry *internal.DietEntry) error
	ListDietEntries(ctx context.Context, userID string) ([]internal.DietEntry, error)
	DietChart(ctx context.Context, userID string) ([]internal.ChartPoint, error)
}

type WorkoutRepository interface {
	SaveWorkoutEntry(ctx context.Context, entry *internal.WorkoutEntry) error
	ListWorkoutEntries(ctx context.Context, userID string) ([]internal.WorkoutEntry, error)
	WorkoutChart(ctx context.Context, userID string) ([]internal.ChartPoint, error)
}

type GoalRepository interface {
	// UpsertGoal inserts or replaces the user's goal as a single atomic write.
	UpsertGoal(ctx context.Context, goal *internal.Goal) error
	// GetGoal returns nil (and no error) when the user has no goal yet.
	GetGoal(ctx context.Context, userID string) (*internal.Goal, error)
}

type FeedbackRepository interface {
	SaveFeedback(ctx context.Context, entry *internal.FeedbackEntry) error
	ListFeedback(ctx context.Context, userID string, limit int) ([]internal.FeedbackEntry, error)
}

// Repositories bundles every store the application needs.
type Repositories struct {
	Users    UserRepository
	Sleep    SleepRepository
	Diet     DietRepository
	Workout  WorkoutRepository
	Goals    GoalRepository
	Feedback FeedbackRepository
}
