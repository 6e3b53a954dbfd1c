package api

import (
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/auth"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Sessions() *auth.SessionManager
	Users() storage.UserRepository
	Sleep() storage.SleepRepository
	Diet() storage.DietRepository
	Workout() storage.WorkoutRepository
	Goals() storage.GoalRepository
	Feedback() storage.FeedbackRepository
}

type application struct {
	logger   internal.Logger
	sessions *auth.SessionManager
	repos    *storage.Repositories
}

func NewApp(logger internal.Logger, sessions *auth.SessionManager, repos *storage.Repositories) App {
	return &application{logger: logger, sessions: sessions, repos: repos}
}

func (a *application) Logger() internal.Logger              { return a.logger }
func (a *application) Sessions() *auth.SessionManager       { return a.sessions }
func (a *application) Users() storage.UserRepository        { return a.repos.Users }
func (a *application) Sleep() storage.SleepRepository       { return a.repos.Sleep }
func (a *application) Diet() storage.DietRepository         { return a.repos.Diet }
func (a *application) Workout() storage.WorkoutRepository   { return a.repos.Workout }
func (a *application) Goals() storage.GoalRepository        { return a.repos.Goals }
func (a *application) Feedback() storage.FeedbackRepository { return a.repos.Feedback }
