package service

import (
	"fmt"
	"strconv"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
)

// NoDataTip is the single tip returned when there are no entries or no goal.
const NoDataTip = "Not enough data yet..."

// highIntensityThreshold triggers the overtraining caution (1–10 scale).
const highIntensityThreshold = 8

// num renders a value the way it was entered: no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SleepTips compares sleep duration and quality against the goal. Entries
// must be ordered newest first. Ties count as meeting the goal.
func SleepTips(entries []internal.SleepEntry, goal *internal.Goal) []string {
	tips := []string{}
	if len(entries) == 0 || goal == nil {
		return append(tips, NoDataTip)
	}

	var lenAvg, qualAvg float64
	for _, e := range entries {
		lenAvg += e.Duration
		qualAvg += float64(e.Rating)
	}
	lenAvg /= float64(len(entries))
	qualAvg /= float64(len(entries))
	newestLen := entries[0].Duration
	newestQual := entries[0].Rating

	if lenAvg >= goal.SleepLength {
		tips = append(tips, fmt.Sprintf("Your Average length of sleep (%.2f) currently meets or is passing your goal!", lenAvg))
	} else {
		tips = append(tips, fmt.Sprintf("Your Average length of sleep (%.2f) is currently below your goal!", lenAvg))
	}
	if newestLen >= goal.SleepLength {
		tips = append(tips, fmt.Sprintf("Your newest length of sleep (%s) is above your goal! Keep it up!", num(newestLen)))
	} else {
		tips = append(tips, fmt.Sprintf("Your newest length of sleep (%s) is below your goal! Don't let this become a trend.", num(newestLen)))
	}
	if qualAvg >= goal.SleepQuality {
		tips = append(tips, fmt.Sprintf("Your average quality of sleep (%.2f) is above your goal! Keep it up!", qualAvg))
	} else {
		tips = append(tips, fmt.Sprintf("Your average quality of sleep (%.2f) is currently below your goal!", qualAvg))
		tips = append(tips, "For better sleep quality, try not to use any screens for at least an hour before bed.")
	}
	if float64(newestQual) >= goal.SleepQuality {
		tips = append(tips, fmt.Sprintf("Your most recent sleep (%d) meets or is above your goal!", newestQual))
	} else {
		tips = append(tips, fmt.Sprintf("Your most recent sleep (%d) is below your goal!", newestQual))
	}
	return tips
}

// DietTips compares meal ratings against the diet goal.
func DietTips(entries []internal.DietEntry, goal *internal.Goal) []string {
	tips := []string{}
	if len(entries) == 0 || goal == nil {
		return append(tips, NoDataTip)
	}

	var avg float64
	for _, e := range entries {
		avg += float64(e.Rating)
	}
	avg /= float64(len(entries))
	newest := entries[0].Rating

	if avg >= goal.Diet {
		tips = append(tips, fmt.Sprintf("Your Average (%.2f) currently meets or is passing your goal!", avg))
	} else {
		tips = append(tips, fmt.Sprintf("Your Average (%.2f) is currently below your goal!", avg))
	}
	if float64(newest) >= goal.Diet {
		tips = append(tips, fmt.Sprintf("Your newest (%d) is above your goal! Keep it up!", newest))
	} else {
		tips = append(tips, fmt.Sprintf("Your newest (%d) is below your goal! Don't let this become a trend.", newest))
	}
	return tips
}

// WorkoutTips compares workout intensity against the intensity goal. The
// overtraining caution only fires when the newest entry meets the goal and
// sits at or above the high-intensity threshold.
func WorkoutTips(entries []internal.WorkoutEntry, goal *internal.Goal) []string {
	tips := []string{}
	if len(entries) == 0 || goal == nil {
		return append(tips, NoDataTip)
	}

	var avg float64
	for _, e := range entries {
		avg += e.Intensity
	}
	avg /= float64(len(entries))
	newest := entries[0].Intensity

	if avg >= goal.Intensity {
		tips = append(tips, fmt.Sprintf("Your Average intensity (%.2f) currently meets or is passing your goal!", avg))
	} else {
		tips = append(tips, fmt.Sprintf("Your Average intensity (%.2f) is currently below your goal!", avg))
		tips = append(tips, "If you're using weights, try increasing the weight or amount of reps.")
	}
	if newest >= goal.Intensity {
		tips = append(tips, fmt.Sprintf("Your most recent intensity (%s) meets or is above your goal!", num(newest)))
		if newest >= highIntensityThreshold {
			tips = append(tips, "Try not to go too intense too often; it's okay to take a break occasionally.")
		}
	} else {
		tips = append(tips, fmt.Sprintf("Your newest (%s) is below your goal!", num(newest)))
		tips = append(tips, "If you're taking a break that's okay, but try to increase the intensity when you're ready.")
	}
	return tips
}
