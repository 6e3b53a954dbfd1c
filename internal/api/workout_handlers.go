package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/service"
)

func WorkoutPage(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderWorkout(c, app, currentUser(c), http.StatusOK, "")
	}
}

func PostWorkout(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var body service.WorkoutEntryRequest
		if err := c.ShouldBind(&body); err != nil {
			renderWorkout(c, app, user, http.StatusBadRequest, "Please enter a valid date and numeric duration, intensity, and rating.")
			return
		}
		if err := service.ValidateWorkoutEntryRequest(&body); err != nil {
			renderWorkout(c, app, user, http.StatusBadRequest, validationMessage(err))
			return
		}

		if _, err := service.CreateWorkoutEntry(c.Request.Context(), app.Workout(), user, &body); err != nil {
			app.Logger().Errorf("[request_id=%s] failed to save workout entry: %v", c.GetString("request_id"), err)
			renderWorkout(c, app, user, http.StatusInternalServerError, "Something went wrong saving your entry. Please try again.")
			return
		}

		renderWorkout(c, app, user, http.StatusOK, "")
	}
}

func renderWorkout(c *gin.Context, app App, user *internal.User, status int, errMsg string) {
	ctx := c.Request.Context()
	entries := service.ListWorkoutEntries(ctx, app.Workout(), app.Logger(), user.ID)
	goal := service.CurrentGoal(ctx, app.Goals(), app.Logger(), user.ID)
	c.HTML(status, "workout.html", gin.H{
		"Title":   "Workout",
		"User":    user.Username,
		"Error":   errMsg,
		"Entries": entries,
		"Tips":    service.WorkoutTips(entries, goal),
		"Chart":   service.WorkoutChart(ctx, app.Workout(), app.Logger(), user.ID),
	})
}
