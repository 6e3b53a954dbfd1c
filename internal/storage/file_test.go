package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
)

func newFileStorage(t *testing.T) *FileStorage {
	t.Helper()
	s, err := NewFileStorage(t.TempDir(), internal.NopLogger())
	assert.NoError(t, err)
	return s
}

func date(offset int) time.Time {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestUpsertGoal_SecondWriteReplaces(t *testing.T) {
	s := newFileStorage(t)
	ctx := context.Background()

	assert.NoError(t, s.UpsertGoal(ctx, &internal.Goal{UserID: "u1", SleepLength: 7, SleepQuality: 3, Intensity: 5, Diet: 3}))
	assert.NoError(t, s.UpsertGoal(ctx, &internal.Goal{UserID: "u1", SleepLength: 8, SleepQuality: 4, Intensity: 6, Diet: 4}))

	goal, err := s.GetGoal(ctx, "u1")
	assert.NoError(t, err)
	assert.NotNil(t, goal)
	assert.Equal(t, 8.0, goal.SleepLength)
	assert.Equal(t, 4.0, goal.SleepQuality)
	assert.Equal(t, 6.0, goal.Intensity)
	assert.Equal(t, 4.0, goal.Diet)
}

func TestGetGoal_AbsentIsNilNotError(t *testing.T) {
	s := newFileStorage(t)

	goal, err := s.GetGoal(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, goal)
}

func TestListSleepEntries_NewestFirstAndScopedToUser(t *testing.T) {
	s := newFileStorage(t)
	ctx := context.Background()

	assert.NoError(t, s.SaveSleepEntry(ctx, &internal.SleepEntry{ID: "a", UserID: "u1", Date: date(0), Duration: 7, Rating: 3}))
	assert.NoError(t, s.SaveSleepEntry(ctx, &internal.SleepEntry{ID: "b", UserID: "u1", Date: date(2), Duration: 6, Rating: 4}))
	assert.NoError(t, s.SaveSleepEntry(ctx, &internal.SleepEntry{ID: "c", UserID: "u2", Date: date(1), Duration: 9, Rating: 5}))

	entries, err := s.ListSleepEntries(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)
}

func TestSleepChart_AscendingByDate(t *testing.T) {
	s := newFileStorage(t)
	ctx := context.Background()

	assert.NoError(t, s.SaveSleepEntry(ctx, &internal.SleepEntry{ID: "a", UserID: "u1", Date: date(2), Duration: 6, Rating: 3}))
	assert.NoError(t, s.SaveSleepEntry(ctx, &internal.SleepEntry{ID: "b", UserID: "u1", Date: date(0), Duration: 8, Rating: 4}))

	points, err := s.SleepChart(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, points, 2)
	assert.Equal(t, 8.0, points[0].Value)
	assert.Equal(t, 6.0, points[1].Value)
	assert.True(t, points[0].Date.Before(points[1].Date))
}

func TestDietChart_UsesRating(t *testing.T) {
	s := newFileStorage(t)
	ctx := context.Background()

	assert.NoError(t, s.SaveDietEntry(ctx, &internal.DietEntry{ID: "a", UserID: "u1", Date: date(0), MealName: "oats", Rating: 4}))

	points, err := s.DietChart(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, points, 1)
	assert.Equal(t, 4.0, points[0].Value)
}

func TestFileStorage_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewFileStorage(dir, internal.NopLogger())
	assert.NoError(t, err)
	assert.NoError(t, s.CreateUser(ctx, &internal.User{ID: "u1", Username: "maria", PasswordHash: "x"}))
	assert.NoError(t, s.SaveWorkoutEntry(ctx, &internal.WorkoutEntry{ID: "w1", UserID: "u1", Date: date(0), Name: "run", Duration: 30, Intensity: 6, Rating: 4}))

	reopened, err := NewFileStorage(dir, internal.NopLogger())
	assert.NoError(t, err)

	user, err := reopened.GetUserByUsername(ctx, "maria")
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	entries, err := reopened.ListWorkoutEntries(ctx, "u1")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "run", entries[0].Name)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s := newFileStorage(t)
	ctx := context.Background()

	assert.NoError(t, s.CreateUser(ctx, &internal.User{ID: "u1", Username: "maria", PasswordHash: "x"}))
	err := s.CreateUser(ctx, &internal.User{ID: "u2", Username: "maria", PasswordHash: "y"})
	assert.ErrorIs(t, err, internal.ErrDuplicateUsername)
}

func TestGetUser_NotFound(t *testing.T) {
	s := newFileStorage(t)

	_, err := s.GetUserByID(context.Background(), "missing")
	assert.ErrorIs(t, err, internal.ErrNotFound)
}
