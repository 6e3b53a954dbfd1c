package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
)

func day(offset int) time.Time {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestSleepTips_NoData(t *testing.T) {
	goal := &internal.Goal{SleepLength: 8, SleepQuality: 4}

	assert.Equal(t, []string{NoDataTip}, SleepTips(nil, goal))
	assert.Equal(t, []string{NoDataTip}, SleepTips([]internal.SleepEntry{{Duration: 8}}, nil))
	assert.Equal(t, []string{NoDataTip}, DietTips(nil, goal))
	assert.Equal(t, []string{NoDataTip}, WorkoutTips(nil, goal))
}

func TestSleepTips_BelowGoalScenario(t *testing.T) {
	// Newest first: {6h, quality 3}, {7h, quality 4}; goal 7h / quality 4.
	entries := []internal.SleepEntry{
		{Date: day(1), Duration: 6, Rating: 3},
		{Date: day(0), Duration: 7, Rating: 4},
	}
	goal := &internal.Goal{SleepLength: 7, SleepQuality: 4}

	tips := SleepTips(entries, goal)

	assert.Len(t, tips, 5)
	assert.Equal(t, "Your Average length of sleep (6.50) is currently below your goal!", tips[0])
	assert.Equal(t, "Your newest length of sleep (6) is below your goal! Don't let this become a trend.", tips[1])
	assert.Equal(t, "Your average quality of sleep (3.50) is currently below your goal!", tips[2])
	assert.Equal(t, "For better sleep quality, try not to use any screens for at least an hour before bed.", tips[3])
	assert.Equal(t, "Your most recent sleep (3) is below your goal!", tips[4])
}

func TestSleepTips_MeetsOnEquality(t *testing.T) {
	entries := []internal.SleepEntry{
		{Date: day(0), Duration: 8, Rating: 4},
	}
	goal := &internal.Goal{SleepLength: 8, SleepQuality: 4}

	tips := SleepTips(entries, goal)

	// Average == goal and newest == goal both count as meeting it.
	assert.Len(t, tips, 4)
	assert.Equal(t, "Your Average length of sleep (8.00) currently meets or is passing your goal!", tips[0])
	assert.Equal(t, "Your newest length of sleep (8) is above your goal! Keep it up!", tips[1])
	assert.Equal(t, "Your average quality of sleep (4.00) is above your goal! Keep it up!", tips[2])
	assert.Equal(t, "Your most recent sleep (4) meets or is above your goal!", tips[3])
}

func TestDietTips(t *testing.T) {
	entries := []internal.DietEntry{
		{Date: day(1), Rating: 5},
		{Date: day(0), Rating: 2},
	}
	goal := &internal.Goal{Diet: 4}

	tips := DietTips(entries, goal)

	assert.Len(t, tips, 2)
	assert.Equal(t, "Your Average (3.50) is currently below your goal!", tips[0])
	assert.Equal(t, "Your newest (5) is above your goal! Keep it up!", tips[1])
}

func TestWorkoutTips_OvertrainingCaution(t *testing.T) {
	// Newest intensity 9 with goal 5: meets on both counts plus the caution.
	entries := []internal.WorkoutEntry{
		{Date: day(1), Intensity: 9},
		{Date: day(0), Intensity: 6},
	}
	goal := &internal.Goal{Intensity: 5}

	tips := WorkoutTips(entries, goal)

	assert.Len(t, tips, 3)
	assert.Equal(t, "Your Average intensity (7.50) currently meets or is passing your goal!", tips[0])
	assert.Equal(t, "Your most recent intensity (9) meets or is above your goal!", tips[1])
	assert.Equal(t, "Try not to go too intense too often; it's okay to take a break occasionally.", tips[2])
}

func TestWorkoutTips_BelowGoalAddsCoaching(t *testing.T) {
	entries := []internal.WorkoutEntry{
		{Date: day(1), Intensity: 3},
		{Date: day(0), Intensity: 4},
	}
	goal := &internal.Goal{Intensity: 6}

	tips := WorkoutTips(entries, goal)

	assert.Len(t, tips, 4)
	assert.Equal(t, "Your Average intensity (3.50) is currently below your goal!", tips[0])
	assert.Equal(t, "If you're using weights, try increasing the weight or amount of reps.", tips[1])
	assert.Equal(t, "Your newest (3) is below your goal!", tips[2])
	assert.Equal(t, "If you're taking a break that's okay, but try to increase the intensity when you're ready.", tips[3])
}

func TestWorkoutTips_HighIntensityBelowGoalNoCaution(t *testing.T) {
	// The caution only fires when the newest entry also meets the goal.
	entries := []internal.WorkoutEntry{
		{Date: day(0), Intensity: 8.5},
	}
	goal := &internal.Goal{Intensity: 9}

	tips := WorkoutTips(entries, goal)

	for _, tip := range tips {
		assert.NotContains(t, tip, "too intense")
	}
}
