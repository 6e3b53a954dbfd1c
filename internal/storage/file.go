package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
)

// FileStorage is a JSON-file backed implementation of every repository.
// It exists for development and tests; postgres is the production backend.
type FileStorage struct {
	mu     sync.RWMutex
	dir    string
	logger internal.Logger

	users    []internal.User
	sleep    []internal.SleepEntry
	diet     []internal.DietEntry
	workout  []internal.WorkoutEntry
	goals    map[string]internal.Goal // userID -> goal
	feedback []internal.FeedbackEntry
}

func NewFileStorage(dir string, logger internal.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &FileStorage{dir: dir, logger: logger, goals: make(map[string]internal.Goal)}
	for file, target := range map[string]any{
		"users.json":    &s.users,
		"sleep.json":    &s.sleep,
		"diet.json":     &s.diet,
		"workout.json":  &s.workout,
		"goals.json":    &s.goals,
		"feedback.json": &s.feedback,
	} {
		if err := s.load(file, target); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *FileStorage) load(file string, target any) error {
	b, err := os.ReadFile(filepath.Join(s.dir, file))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, target)
}

// save must be called with the write lock held.
func (s *FileStorage) save(file string, data any) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, file), b, 0o644); err != nil {
		s.logger.Errorf("failed to write %s: %v", file, err)
		return err
	}
	return nil
}

// --- UserRepository ---

func (s *FileStorage) CreateUser(_ context.Context, user *internal.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return internal.ErrDuplicateUsername
		}
	}
	s.users = append(s.users, *user)
	return s.save("users.json", s.users)
}

func (s *FileStorage) GetUserByID(_ context.Context, id string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, internal.ErrNotFound
}

func (s *FileStorage) GetUserByUsername(_ context.Context, username string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, internal.ErrNotFound
}

// --- SleepRepository ---

func (s *FileStorage) SaveSleepEntry(_ context.Context, entry *internal.SleepEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sleep = append(s.sleep, *entry)
	return s.save("sleep.json", s.sleep)
}

func (s *FileStorage) ListSleepEntries(_ context.Context, userID string) ([]internal.SleepEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []internal.SleepEntry
	for _, e := range s.sleep {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries, nil
}

func (s *FileStorage) SleepChart(_ context.Context, userID string) ([]internal.ChartPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var points []internal.ChartPoint
	for _, e := range s.sleep {
		if e.UserID == userID {
			points = append(points, internal.ChartPoint{Date: e.Date, Value: e.Duration})
		}
	}
	sortChart(points)
	return points, nil
}

// --- DietRepository ---

func (s *FileStorage) SaveDietEntry(_ context.Context, entry *internal.DietEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diet = append(s.diet, *entry)
	return s.save("diet.json", s.diet)
}

func (s *FileStorage) ListDietEntries(_ context.Context, userID string) ([]internal.DietEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []internal.DietEntry
	for _, e := range s.diet {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries, nil
}

func (s *FileStorage) DietChart(_ context.Context, userID string) ([]internal.ChartPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var points []internal.ChartPoint
	for _, e := range s.diet {
		if e.UserID == userID {
			points = append(points, internal.ChartPoint{Date: e.Date, Value: float64(e.Rating)})
		}
	}
	sortChart(points)
	return points, nil
}

// --- WorkoutRepository ---

func (s *FileStorage) SaveWorkoutEntry(_ context.Context, entry *internal.WorkoutEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workout = append(s.workout, *entry)
	return s.save("workout.json", s.workout)
}

func (s *FileStorage) ListWorkoutEntries(_ context.Context, userID string) ([]internal.WorkoutEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []internal.WorkoutEntry
	for _, e := range s.workout {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries, nil
}

func (s *FileStorage) WorkoutChart(_ context.Context, userID string) ([]internal.ChartPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var points []internal.ChartPoint
	for _, e := range s.workout {
		if e.UserID == userID {
			points = append(points, internal.ChartPoint{Date: e.Date, Value: e.Duration})
		}
	}
	sortChart(points)
	return points, nil
}

func sortChart(points []internal.ChartPoint) {
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
}

// --- GoalRepository ---

func (s *FileStorage) UpsertGoal(_ context.Context, goal *internal.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals[goal.UserID] = *goal
	return s.save("goals.json", s.goals)
}

func (s *FileStorage) GetGoal(_ context.Context, userID string) (*internal.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.goals[userID]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

// --- FeedbackRepository ---

func (s *FileStorage) SaveFeedback(_ context.Context, entry *internal.FeedbackEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = append(s.feedback, *entry)
	return s.save("feedback.json", s.feedback)
}

func (s *FileStorage) ListFeedback(_ context.Context, userID string, limit int) ([]internal.FeedbackEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []internal.FeedbackEntry
	for _, e := range s.feedback {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// --- Compile-time assertions ---
var _ UserRepository = (*FileStorage)(nil)
var _ SleepRepository = (*FileStorage)(nil)
var _ DietRepository = (*FileStorage)(nil)
var _ WorkoutRepository = (*FileStorage)(nil)
var _ GoalRepository = (*FileStorage)(nil)
var _ FeedbackRepository = (*FileStorage)(nil)
