package internal

import "time"

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type SleepEntry struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Date     time.Time `json:"date"`
	Duration float64   `json:"duration"` // hours
	Rating   int       `json:"rating"`   // 1–5 scale
	Notes    string    `json:"notes,omitempty"`
}

type DietEntry struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Date     time.Time `json:"date"`
	MealName string    `json:"meal_name"`
	Notes    string    `json:"notes,omitempty"`
	Rating   int       `json:"rating"` // 1–5 scale
}

type WorkoutEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`
	Name      string    `json:"name"`
	Duration  float64   `json:"duration"` // minutes
	Intensity float64   `json:"intensity"`
	Type      string    `json:"type,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Rating    int       `json:"rating"`
}

// Goal is the per-user singleton target record. Submitting a new goal
// replaces the stored one wholesale; no history is kept.
type Goal struct {
	UserID       string  `json:"user_id"`
	SleepLength  float64 `json:"sleep_length_goal"`
	SleepQuality float64 `json:"sleep_quality_goal"`
	Intensity    float64 `json:"intensity_goal"`
	Diet         float64 `json:"diet_goal"`
}

type FeedbackEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"` // bug, idea, praise
	Page         string    `json:"page"`
	Message      string    `json:"message"`
	Rating       *int      `json:"rating,omitempty"` // 1–5, absent when not given
	ContactEmail string    `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ChartPoint is one (date, value) pair of a chart series, ascending by date.
type ChartPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
