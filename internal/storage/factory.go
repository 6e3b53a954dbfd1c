package storage

import (
	"fmt"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/config"
)

// NewRepositories builds the repository bundle for the configured backend.
func NewRepositories(cfg *config.Config, logger internal.Logger) (*Repositories, error) {
	switch cfg.StorageType {
	case "postgres":
		s, err := NewPostgresStorage(cfg.PostgresDSN, logger)
		if err != nil {
			return nil, err
		}
		return bundle(s), nil
	case "file":
		s, err := NewFileStorage(cfg.DataDir, logger)
		if err != nil {
			return nil, err
		}
		return bundle(s), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageType)
	}
}

type allRepositories interface {
	UserRepository
	SleepRepository
	DietRepository
	WorkoutRepository
	GoalRepository
	FeedbackRepository
}

func bundle(s allRepositories) *Repositories {
	return &Repositories{
		Users:    s,
		Sleep:    s,
		Diet:     s,
		Workout:  s,
		Goals:    s,
		Feedback: s,
	}
}
